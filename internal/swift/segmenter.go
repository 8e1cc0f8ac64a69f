package swift

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultTrailer closes block 4 of a SWIFT FIN message
const DefaultTrailer = "-}"

// HeaderPattern matches the basic, application and optional user header blocks followed by the start of the text block
var HeaderPattern = regexp.MustCompile(`^\{1:[^{}]*\}\{2:[^{}]*\}(?:\{3:(?:\{[^{}]*\})*\})?\{4:$`)

// Frame describes how statement blocks are delimited in a file
type Frame struct {
	// Header is nil for header-less dialects
	Header  *regexp.Regexp
	Trailer string
}

// Line is one input line and its 1-based position in the file
type Line struct {
	No   int
	Text string
}

// Block is the body of one statement, without header and trailer
type Block []Line

// Segment splits lines into statement blocks and passes each one to emit as soon as its trailer is read
func Segment(lines []string, frame Frame, emit func(Block) error) error {
	trailer := frame.Trailer
	if trailer == "" {
		trailer = DefaultTrailer
	}

	inMessage := frame.Header == nil
	headerLine := 0
	var block Block

	for i, raw := range lines {
		text := strings.TrimRight(raw, " \t\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}

		if !inMessage {
			if !frame.Header.MatchString(text) {
				return fmt.Errorf("%w: line %d: %q", ErrInvalidHeader, i+1, text)
			}
			inMessage = true
			headerLine = i + 1
			continue
		}

		if strings.HasPrefix(text, trailer) {
			if len(block) > 0 {
				if err := emit(block); err != nil {
					return err
				}
			}
			block = nil
			inMessage = frame.Header == nil
			continue
		}

		block = append(block, Line{No: i + 1, Text: text})
	}

	if len(block) > 0 {
		return fmt.Errorf("%w: block starting at line %d has no trailer %q", ErrUnfinishedStatement, block[0].No, trailer)
	}
	if frame.Header != nil && inMessage {
		return fmt.Errorf("%w: message opened at line %d has no trailer %q", ErrUnfinishedStatement, headerLine, trailer)
	}

	return nil
}
