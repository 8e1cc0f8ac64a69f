package swift

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tirasundara/mt940-parser/internal/domain"
)

// Parser turns the raw lines of one file into statements using a profile.
// A Parser is not safe for concurrent use.
type Parser struct {
	profile  *Profile
	handlers HandlerTable
	logger   logrus.FieldLogger
}

// Option configures a Parser
type Option func(*Parser)

// WithLogger sets the logger used for field level debug output
func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser resolves the handler table of profile and returns a Parser for it
func NewParser(profile *Profile, opts ...Option) (*Parser, error) {
	if profile == nil {
		return nil, fmt.Errorf("%w: nil profile", ErrInvalidProfile)
	}
	if err := profile.Handlers.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", profile.Name, err)
	}

	p := &Parser{
		profile:  profile,
		handlers: profile.Handlers.Clone(),
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Name returns the name of the profile
func (p *Parser) Name() string {
	return p.profile.Name
}

// Parse parses every statement in lines. Any error aborts the whole input and no statements are returned.
func (p *Parser) Parse(lines []string) ([]*domain.Statement, error) {
	decoded, err := p.profile.Transcode(lines)
	if err != nil {
		return nil, fmt.Errorf("transcoding input: %w", err)
	}

	b := NewBuilder()
	err = Segment(decoded, p.profile.Frame(), func(block Block) error {
		if err := ExtractFields(block, func(f Field) error {
			return p.dispatch(b, f)
		}); err != nil {
			return err
		}

		b.CloseStatement()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return b.Statements(), nil
}

func (p *Parser) dispatch(b *Builder, f Field) error {
	handler, ok := p.handlers[f.Tag]
	if !ok {
		return &FieldError{Tag: f.Tag, Value: f.Value, Line: f.Line, Err: ErrMissingFieldParser}
	}

	if f.Tag != TagReference && b.Statement() == nil {
		return &FieldError{Tag: f.Tag, Value: f.Value, Line: f.Line, Err: ErrRunawayField}
	}

	p.logger.WithFields(logrus.Fields{
		"profile":   p.profile.Name,
		"tag":       f.Tag,
		"line":      f.Line,
		"subfields": len(f.Subfields),
	}).Debug("dispatching field")

	if err := handler(b, f); err != nil {
		return &FieldError{Tag: f.Tag, Value: f.Value, Line: f.Line, Err: err}
	}
	return nil
}
