package swift

import (
	"errors"
	"fmt"
)

// Parsing errors. All of them abort the parse of the current file.
var (
	// ErrInvalidFieldValue is returned when a field value does not match its grammar
	ErrInvalidFieldValue = errors.New("invalid field value")

	// ErrMissingFieldParser is returned for a tag the active profile has no handler for
	ErrMissingFieldParser = errors.New("missing field parser")

	// ErrRunawayField is returned for a field other than 20 outside of an open statement
	ErrRunawayField = errors.New("runaway field")

	// ErrNoTransaction is returned for a transaction update without an open transaction
	ErrNoTransaction = errors.New("no current transaction")

	// ErrUnfinishedStatement is returned when the input ends before a trailer
	ErrUnfinishedStatement = errors.New("unfinished statement")

	// ErrInvalidHeader is returned when a message header does not match the header pattern
	ErrInvalidHeader = errors.New("invalid header")

	// ErrInvalidProfile is returned by NewParser for an unusable handler table
	ErrInvalidProfile = errors.New("invalid profile")
)

// FieldError describes the field that caused a parse to fail
type FieldError struct {
	Tag   string
	Value string
	Line  int
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field :%s: at line %d (%q): %v", e.Tag, e.Line, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Invalidf returns an ErrInvalidFieldValue with details
func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidFieldValue, fmt.Sprintf(format, args...))
}
