package swift

import (
	"fmt"

	"github.com/tirasundara/mt940-parser/internal/domain"
)

// UpdateMode selects how UpdateTransaction treats the previous value of an attribute
type UpdateMode int

const (
	// Replace overwrites the attribute
	Replace UpdateMode = iota
	// Append concatenates the new text to the old one
	Append
)

func (m UpdateMode) String() string {
	if m == Append {
		return "append"
	}
	return "replace"
}

// Attr names a text attribute of a transaction that narrative decoding may set
type Attr int

// Transaction attributes
const (
	AttrBusinessCode Attr = iota
	AttrBookingText
	AttrVariableSymbol
	AttrSpecificSymbol
	AttrConstantSymbol
	AttrOtherAccount
	AttrOtherName
	AttrPOSNumber
	AttrMessage
	AttrEndToEndRef
)

var attrNames = map[Attr]string{
	AttrBusinessCode:   "business_code",
	AttrBookingText:    "booking_text",
	AttrVariableSymbol: "vs",
	AttrSpecificSymbol: "ss",
	AttrConstantSymbol: "ks",
	AttrOtherAccount:   "other_account",
	AttrOtherName:      "other_name",
	AttrPOSNumber:      "pos_number",
	AttrMessage:        "message",
	AttrEndToEndRef:    "end_to_end_ref",
}

func (a Attr) String() string {
	if name, ok := attrNames[a]; ok {
		return name
	}
	return fmt.Sprintf("attr(%d)", int(a))
}

func attrField(txn *domain.Transaction, a Attr) *string {
	switch a {
	case AttrBusinessCode:
		return &txn.BusinessCode
	case AttrBookingText:
		return &txn.BookingText
	case AttrVariableSymbol:
		return &txn.VariableSymbol
	case AttrSpecificSymbol:
		return &txn.SpecificSymbol
	case AttrConstantSymbol:
		return &txn.ConstantSymbol
	case AttrOtherAccount:
		return &txn.OtherAccount
	case AttrOtherName:
		return &txn.OtherName
	case AttrPOSNumber:
		return &txn.POSNumber
	case AttrMessage:
		return &txn.Message
	case AttrEndToEndRef:
		return &txn.EndToEndRef
	}
	return nil
}

// Builder accumulates the statements of one file. It holds the current statement and
// transaction cursors, so a new Builder is needed for every parse.
type Builder struct {
	statements  []*domain.Statement
	current     *domain.Statement
	transaction *domain.Transaction
}

// NewBuilder creates an empty Builder
func NewBuilder() *Builder {
	return &Builder{
		statements: make([]*domain.Statement, 0),
	}
}

// OpenStatement appends a new statement and makes it current
func (b *Builder) OpenStatement(ref string) *domain.Statement {
	b.current = domain.NewStatement(ref)
	b.transaction = nil
	b.statements = append(b.statements, b.current)
	return b.current
}

// CloseStatement clears the cursors once the statement trailer is read
func (b *Builder) CloseStatement() {
	b.current = nil
	b.transaction = nil
}

// Statement returns the current statement or nil
func (b *Builder) Statement() *domain.Statement {
	return b.current
}

// Transaction returns the current transaction or nil
func (b *Builder) Transaction() *domain.Transaction {
	return b.transaction
}

// Statements returns every statement opened so far
func (b *Builder) Statements() []*domain.Statement {
	return b.statements
}

// UpdateStatement applies fn to the current statement
func (b *Builder) UpdateStatement(fn func(*domain.Statement)) error {
	if b.current == nil {
		return fmt.Errorf("%w: no open statement", ErrRunawayField)
	}
	fn(b.current)
	return nil
}

// OpenTransaction appends txn to the current statement and makes it current
func (b *Builder) OpenTransaction(txn *domain.Transaction) error {
	if b.current == nil {
		return fmt.Errorf("%w: no open statement", ErrRunawayField)
	}
	b.current.Transactions = append(b.current.Transactions, txn)
	b.transaction = txn
	return nil
}

// UpdateTransaction sets a text attribute of the current transaction
func (b *Builder) UpdateTransaction(mode UpdateMode, attr Attr, value string) error {
	if b.transaction == nil {
		return fmt.Errorf("%w: cannot set %s", ErrNoTransaction, attr)
	}

	field := attrField(b.transaction, attr)
	if field == nil {
		return fmt.Errorf("unknown transaction attribute %s", attr)
	}

	if mode == Append {
		*field += value
	} else {
		*field = value
	}
	return nil
}
