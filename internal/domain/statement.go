package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is a booked or available balance (fields 60, 62, 64, 65)
type Balance struct {
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Currency string          `json:"currency" yaml:"currency"`
	Date     Date            `json:"date" yaml:"date"`
}

// FloorLimit is an MT942 floor limit indicator (field 34F)
type FloorLimit struct {
	Currency string          `json:"currency" yaml:"currency"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
}

// Summary is an MT942 number and sum of entries (fields 90D and 90C)
type Summary struct {
	Count    int             `json:"count" yaml:"count"`
	Currency string          `json:"currency" yaml:"currency"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
}

// Statement represents one MT940 statement or MT942 interim report
type Statement struct {
	TransactionRef string `json:"transaction_ref" yaml:"transaction_ref"`
	Number         string `json:"number,omitempty" yaml:"number,omitempty"`
	Sequence       string `json:"sequence,omitempty" yaml:"sequence,omitempty"`
	Account        string `json:"account,omitempty" yaml:"account,omitempty"`
	OtherAccount   string `json:"other_account,omitempty" yaml:"other_account,omitempty"`

	OpeningBalance          *Balance `json:"opening_balance,omitempty" yaml:"opening_balance,omitempty"`
	ClosingBalance          *Balance `json:"closing_balance,omitempty" yaml:"closing_balance,omitempty"`
	ClosingAvailableBalance *Balance `json:"closing_available_balance,omitempty" yaml:"closing_available_balance,omitempty"`
	ForwardAvailableBalance *Balance `json:"forward_available_balance,omitempty" yaml:"forward_available_balance,omitempty"`

	// MT942 only
	ReportTime       *time.Time  `json:"report_time,omitempty" yaml:"report_time,omitempty"`
	DebitFloorLimit  *FloorLimit `json:"debit_floor_limit,omitempty" yaml:"debit_floor_limit,omitempty"`
	CreditFloorLimit *FloorLimit `json:"credit_floor_limit,omitempty" yaml:"credit_floor_limit,omitempty"`
	DebitSummary     *Summary    `json:"debit_summary,omitempty" yaml:"debit_summary,omitempty"`
	CreditSummary    *Summary    `json:"credit_summary,omitempty" yaml:"credit_summary,omitempty"`

	Transactions []*Transaction `json:"transactions" yaml:"transactions"`
}

// NewStatement creates an empty statement for the given transaction reference
func NewStatement(ref string) *Statement {
	return &Statement{
		TransactionRef: ref,
		Transactions:   make([]*Transaction, 0),
	}
}

// Turnover returns the sum of all transaction amounts
func (s *Statement) Turnover() decimal.Decimal {
	total := decimal.Zero
	for _, txn := range s.Transactions {
		total = total.Add(txn.Amount)
	}
	return total
}
