package taba

import (
	"fmt"
	"regexp"

	"github.com/tirasundara/mt940-parser/internal/domain"
	"github.com/tirasundara/mt940-parser/internal/swift"
)

var ibanPattern = regexp.MustCompile(`^SK(\d{2})(\d{4})(\d{6})(\d{10})$`)

// Customer references that change the meaning of subfields ?31 and ?38
var (
	namedCounterpartRefs = map[string]bool{"DEPOSIT": true, "FEES": true, "WITHDRAWAL": true}
	noCounterpartRefs    = map[string]bool{"COLLECTION": true, "INTER.CAPITALIS.": true}
)

var mt940Subfields = subfieldRules{
	"20": set(swift.AttrVariableSymbol, "VS"),
	"21": set(swift.AttrSpecificSymbol, "SS"),
	"22": set(swift.AttrConstantSymbol, "KS"),
	"23": set(swift.AttrPOSNumber, "POS"),
	"24": set(swift.AttrMessage, ""),
	"25": appendNonEmpty(swift.AttrMessage),
	"26": appendNonEmpty(swift.AttrMessage),
	"27": appendNonEmpty(swift.AttrMessage),
	"28": appendNonEmpty(swift.AttrMessage),
	"29": appendNonEmpty(swift.AttrMessage),
	"31": counterpart,
	"32": set(swift.AttrOtherName, ""),
	"33": appendText(swift.AttrOtherName, " "),
	"38": statementCounterpart,
	"60": set(swift.AttrEndToEndRef, ""),
}

// MT940 returns the Tatra banka MT940 (.STA) profile
func MT940() *swift.Profile {
	return &swift.Profile{
		Name:     "taba940",
		Trailer:  Trailer,
		Encoding: Encoding,
		Handlers: swift.MT940Handlers().Override(swift.HandlerTable{
			"25": handleIBAN,
			"86": decodeNarrative(mt940Subfields),
		}),
	}
}

// handleIBAN reformats SK<check><bank><prefix><account> to prefix-account/bank
func handleIBAN(b *swift.Builder, f swift.Field) error {
	m := ibanPattern.FindStringSubmatch(f.Value)
	if m == nil {
		return swift.Invalidf("account must be a Slovak IBAN")
	}

	return b.UpdateStatement(func(s *domain.Statement) {
		s.Account = fmt.Sprintf("%s-%s/%s", m[3], m[4], m[2])
	})
}

// counterpart is either a name or an account number, depending on the kind of transaction
func counterpart(b *swift.Builder, n narrative, text string) error {
	switch {
	case namedCounterpartRefs[n.custRef]:
		return b.UpdateTransaction(swift.Replace, swift.AttrOtherName, text)
	case noCounterpartRefs[n.custRef]:
		return nil
	default:
		return b.UpdateTransaction(swift.Replace, swift.AttrOtherAccount, text)
	}
}

// statementCounterpart sets the counterpart account on the statement, not the transaction
func statementCounterpart(b *swift.Builder, n narrative, text string) error {
	if namedCounterpartRefs[n.custRef] || noCounterpartRefs[n.custRef] {
		return nil
	}
	return b.UpdateStatement(func(s *domain.Statement) {
		s.OtherAccount = text
	})
}
