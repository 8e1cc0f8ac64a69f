package report

import (
	"github.com/kozaktomas/diacritics"
	"github.com/tirasundara/mt940-parser/internal/domain"
)

// Transliterate strips diacritics from the free-text attributes of every
// transaction in place. Text that cannot be transliterated is kept as is.
func Transliterate(statements []*domain.Statement) {
	for _, st := range statements {
		for _, txn := range st.Transactions {
			for _, s := range []*string{
				&txn.BookingText,
				&txn.OtherName,
				&txn.Message,
				&txn.EndToEndRef,
			} {
				*s = removeDiacritics(*s)
			}
		}
	}
}

func removeDiacritics(s string) string {
	if s == "" {
		return s
	}
	plain, err := diacritics.Remove(s)
	if err != nil {
		return s
	}
	return plain
}
