package swift

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/tirasundara/mt940-parser/internal/domain"
)

// TagReference is the tag that opens a statement
const TagReference = "20"

var tagPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]?$`)

// Handler validates one field and applies it to the builder
type Handler func(b *Builder, f Field) error

// HandlerTable maps field tags to handlers
type HandlerTable map[string]Handler

// Clone returns a shallow copy of the table
func (t HandlerTable) Clone() HandlerTable {
	clone := make(HandlerTable, len(t))
	for tag, h := range t {
		clone[tag] = h
	}
	return clone
}

// Override returns a copy of the table where every entry of overrides replaces the entry with the same tag
func (t HandlerTable) Override(overrides HandlerTable) HandlerTable {
	table := t.Clone()
	for tag, h := range overrides {
		table[tag] = h
	}
	return table
}

// Tags returns the registered tags in sorted order
func (t HandlerTable) Tags() []string {
	tags := make([]string, 0, len(t))
	for tag := range t {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Validate checks the table before any input is parsed
func (t HandlerTable) Validate() error {
	if _, ok := t[TagReference]; !ok {
		return fmt.Errorf("%w: no handler for field %s", ErrInvalidProfile, TagReference)
	}

	for _, tag := range t.Tags() {
		if !tagPattern.MatchString(tag) {
			return fmt.Errorf("%w: malformed tag %q", ErrInvalidProfile, tag)
		}
		if t[tag] == nil {
			return fmt.Errorf("%w: nil handler for field %s", ErrInvalidProfile, tag)
		}
	}

	return nil
}

// MT940Handlers returns the generic MT940 table. Field 86 has no generic grammar and is left to profiles.
func MT940Handlers() HandlerTable {
	return HandlerTable{
		"20":  HandleReference,
		"25":  HandleAccount,
		"28C": HandleStatementNumber,
		"61":  HandleStatementLine,
		"60F": BalanceHandler(setOpeningBalance),
		"60M": BalanceHandler(setOpeningBalance),
		"62F": BalanceHandler(setClosingBalance),
		"62M": BalanceHandler(setClosingBalance),
		"64":  BalanceHandler(setClosingAvailableBalance),
		"65":  BalanceHandler(setForwardAvailableBalance),
	}
}

// MT942Handlers returns the generic MT942 table: the MT940 fields plus the interim report fields
func MT942Handlers() HandlerTable {
	return MT940Handlers().Override(HandlerTable{
		"13D": HandleReportTime,
		"34F": HandleFloorLimit,
		"90D": SummaryHandler(domain.Debit),
		"90C": SummaryHandler(domain.Credit),
	})
}

// Ignore accepts a field without looking at it
func Ignore(_ *Builder, _ Field) error {
	return nil
}

// HandleReference opens a new statement (field 20)
func HandleReference(b *Builder, f Field) error {
	ref, err := ParseReference(f.Value)
	if err != nil {
		return err
	}
	b.OpenStatement(ref)
	return nil
}

// HandleAccount sets the account identification (field 25)
func HandleAccount(b *Builder, f Field) error {
	account, err := ParseAccount(f.Value)
	if err != nil {
		return err
	}
	return b.UpdateStatement(func(s *domain.Statement) {
		s.Account = account
	})
}

// HandleStatementNumber sets the statement and sequence numbers (field 28C)
func HandleStatementNumber(b *Builder, f Field) error {
	num, err := ParseStatementNumber(f.Value)
	if err != nil {
		return err
	}
	return b.UpdateStatement(func(s *domain.Statement) {
		s.Number = num.Number
		s.Sequence = num.Sequence
	})
}

// HandleStatementLine opens a new transaction (field 61)
func HandleStatementLine(b *Builder, f Field) error {
	line, err := ParseStatementLine(f.Value)
	if err != nil {
		return err
	}
	return b.OpenTransaction(&domain.Transaction{
		ValueDate:   line.ValueDate,
		EntryDate:   line.EntryDate,
		Amount:      line.Amount,
		Mark:        line.Mark,
		TypeCode:    line.TypeCode,
		CustomerRef: line.CustomerRef,
		BankRef:     line.BankRef,
	})
}

// BalanceHandler returns a handler that decodes a balance field and stores it with set
func BalanceHandler(set func(*domain.Statement, *domain.Balance)) Handler {
	return func(b *Builder, f Field) error {
		balance, err := ParseBalance(f.Value)
		if err != nil {
			return err
		}
		return b.UpdateStatement(func(s *domain.Statement) {
			set(s, &balance)
		})
	}
}

func setOpeningBalance(s *domain.Statement, bal *domain.Balance) { s.OpeningBalance = bal }

func setClosingBalance(s *domain.Statement, bal *domain.Balance) { s.ClosingBalance = bal }

func setClosingAvailableBalance(s *domain.Statement, bal *domain.Balance) {
	s.ClosingAvailableBalance = bal
}

func setForwardAvailableBalance(s *domain.Statement, bal *domain.Balance) {
	s.ForwardAvailableBalance = bal
}

// HandleReportTime sets the MT942 report timestamp (field 13D)
func HandleReportTime(b *Builder, f Field) error {
	t, err := ParseReportTime(f.Value)
	if err != nil {
		return err
	}
	return b.UpdateStatement(func(s *domain.Statement) {
		s.ReportTime = &t
	})
}

// HandleFloorLimit sets the MT942 floor limits (field 34F).
// An explicit D/C mark selects the limit. Without a mark the value applies to both limits
// when neither is set, fills the one still unset, or else replaces the credit limit.
func HandleFloorLimit(b *Builder, f Field) error {
	fl, err := ParseFloorLimit(f.Value)
	if err != nil {
		return err
	}
	return b.UpdateStatement(func(s *domain.Statement) {
		limit := fl.Limit
		switch {
		case fl.Mark == domain.Debit:
			s.DebitFloorLimit = &limit
		case fl.Mark == domain.Credit:
			s.CreditFloorLimit = &limit
		case s.DebitFloorLimit == nil && s.CreditFloorLimit == nil:
			debit, credit := limit, limit
			s.DebitFloorLimit = &debit
			s.CreditFloorLimit = &credit
		case s.DebitFloorLimit == nil:
			s.DebitFloorLimit = &limit
		default:
			s.CreditFloorLimit = &limit
		}
	})
}

// SummaryHandler returns a handler for the MT942 entry summaries (fields 90D and 90C)
func SummaryHandler(mark domain.Mark) Handler {
	return func(b *Builder, f Field) error {
		summary, err := ParseSummary(f.Value)
		if err != nil {
			return err
		}
		return b.UpdateStatement(func(s *domain.Statement) {
			if mark == domain.Debit {
				s.DebitSummary = &summary
			} else {
				s.CreditSummary = &summary
			}
		})
	}
}
