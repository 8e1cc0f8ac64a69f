package domain

import (
	"github.com/shopspring/decimal"
)

// Mark is the debit/credit mark of a statement line or balance
type Mark string

// Debit/credit marks
const (
	Credit Mark = "C"
	Debit  Mark = "D"
)

// Signed returns amount negated for debits
func (m Mark) Signed(amount decimal.Decimal) decimal.Decimal {
	if m == Debit {
		return amount.Neg()
	}
	return amount
}

// Transaction represents one statement line (field 61) and the narrative decoded from field 86
type Transaction struct {
	ValueDate   Date            `json:"value_date" yaml:"value_date"`
	EntryDate   Date            `json:"entry_date" yaml:"entry_date"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Mark        Mark            `json:"mark" yaml:"mark"`
	TypeCode    string          `json:"type_code" yaml:"type_code"`
	CustomerRef string          `json:"cust_ref,omitempty" yaml:"cust_ref,omitempty"`
	BankRef     string          `json:"bank_ref,omitempty" yaml:"bank_ref,omitempty"`

	// Bank profile attributes
	BusinessCode   string `json:"business_code,omitempty" yaml:"business_code,omitempty"`
	BookingText    string `json:"booking_text,omitempty" yaml:"booking_text,omitempty"`
	VariableSymbol string `json:"vs,omitempty" yaml:"vs,omitempty"`
	SpecificSymbol string `json:"ss,omitempty" yaml:"ss,omitempty"`
	ConstantSymbol string `json:"ks,omitempty" yaml:"ks,omitempty"`
	OtherAccount   string `json:"other_account,omitempty" yaml:"other_account,omitempty"`
	OtherName      string `json:"other_name,omitempty" yaml:"other_name,omitempty"`
	POSNumber      string `json:"pos_number,omitempty" yaml:"pos_number,omitempty"`
	Message        string `json:"message,omitempty" yaml:"message,omitempty"`
	EndToEndRef    string `json:"end_to_end_ref,omitempty" yaml:"end_to_end_ref,omitempty"`
}
