package swift

import (
	"fmt"
	"regexp"

	"golang.org/x/text/encoding"
)

// Profile describes a message dialect: how blocks are framed, how raw lines are decoded and
// which handler is responsible for every field tag
type Profile struct {
	Name    string
	Header  *regexp.Regexp
	Trailer string

	// Encoding of the raw input. Nil means the input is already UTF-8.
	Encoding encoding.Encoding

	Handlers HandlerTable
}

// MT940 returns the generic MT940 profile
func MT940() *Profile {
	return &Profile{
		Name:     "mt940",
		Header:   HeaderPattern,
		Trailer:  DefaultTrailer,
		Handlers: MT940Handlers(),
	}
}

// MT942 returns the generic MT942 profile
func MT942() *Profile {
	return &Profile{
		Name:     "mt942",
		Header:   HeaderPattern,
		Trailer:  DefaultTrailer,
		Handlers: MT942Handlers(),
	}
}

// Frame returns the block delimiters of the profile
func (p *Profile) Frame() Frame {
	return Frame{Header: p.Header, Trailer: p.Trailer}
}

// Transcode decodes every raw line to UTF-8
func (p *Profile) Transcode(lines []string) ([]string, error) {
	if p.Encoding == nil {
		return lines, nil
	}

	dec := p.Encoding.NewDecoder()
	decoded := make([]string, len(lines))
	for i, line := range lines {
		s, err := dec.String(line)
		if err != nil {
			return nil, fmt.Errorf("decoding line %d: %w", i+1, err)
		}
		decoded[i] = s
	}
	return decoded, nil
}
