// Package taba implements the Tatra banka (Slovakia) dialects of MT940 and MT942.
//
// Tatra banka files carry no FIN header, end every statement with a bare "-" and are
// encoded in IBM code page 852. Field 86 starts with a three digit business code and
// the booking text ("051?00Platba"), followed by coded subfields, one per line:
//
//	?20VS0000001234
//	?21SS0000000000
//	?32JOZKO MRKVICKA
//
// Which subfield carries what differs between the MT940 and MT942 files.
package taba

import (
	"regexp"
	"strings"

	"github.com/tirasundara/mt940-parser/internal/domain"
	"github.com/tirasundara/mt940-parser/internal/swift"
	"golang.org/x/text/encoding/charmap"
)

// Trailer ends every statement in Tatra banka files
const Trailer = "-"

// Encoding of Tatra banka statement files
var Encoding = charmap.CodePage852

var (
	narrativePattern      = regexp.MustCompile(`^(\d{3})\?00(.*)$`)
	subfieldPattern       = regexp.MustCompile(`^\?(\d{2})(.*)$`)
	emptySubfieldPattern  = regexp.MustCompile(`^\?\d\d$`)
	embeddedSymbolPattern = regexp.MustCompile(`[VSK]S[0-9]{0,10}`)
)

// narrative is the state a subfield rule may look at
type narrative struct {
	custRef string
	credit  bool
}

// subfieldRule applies the text of one ?NN subfield
type subfieldRule func(b *swift.Builder, n narrative, text string) error

// subfieldRules maps two digit subfield codes to rules
type subfieldRules map[string]subfieldRule

// set replaces attr with the subfield text, dropping an optional literal prefix such as "VS"
func set(attr swift.Attr, prefix string) subfieldRule {
	return func(b *swift.Builder, _ narrative, text string) error {
		return b.UpdateTransaction(swift.Replace, attr, strings.TrimPrefix(text, prefix))
	}
}

// appendText appends the subfield text to attr, prefixed with sep
func appendText(attr swift.Attr, sep string) subfieldRule {
	return func(b *swift.Builder, _ narrative, text string) error {
		return b.UpdateTransaction(swift.Append, attr, sep+text)
	}
}

// appendNonEmpty appends the subfield text to attr unless it is blank
func appendNonEmpty(attr swift.Attr) subfieldRule {
	return func(b *swift.Builder, _ narrative, text string) error {
		if text == "" {
			return nil
		}
		return b.UpdateTransaction(swift.Append, attr, text)
	}
}

// decodeNarrative is the field 86 handler shared by both dialects
func decodeNarrative(rules subfieldRules) swift.Handler {
	return func(b *swift.Builder, f swift.Field) error {
		m := narrativePattern.FindStringSubmatch(f.Value)
		if m == nil {
			return swift.Invalidf("narrative must start with NNN?00")
		}

		if err := b.UpdateTransaction(swift.Replace, swift.AttrBusinessCode, m[1]); err != nil {
			return err
		}
		if err := b.UpdateTransaction(swift.Replace, swift.AttrBookingText, m[2]); err != nil {
			return err
		}

		txn := b.Transaction()
		n := narrative{
			custRef: txn.CustomerRef,
			credit:  txn.Mark == domain.Credit,
		}

		for _, line := range f.Subfields {
			if emptySubfieldPattern.MatchString(line) {
				continue
			}

			sm := subfieldPattern.FindStringSubmatch(line)
			if sm == nil {
				continue
			}

			rule, ok := rules[sm[1]]
			if !ok {
				continue
			}
			if err := rule(b, n, sm[2]); err != nil {
				return err
			}
		}

		return fillEmbeddedSymbols(b)
	}
}

// fillEmbeddedSymbols recovers payment symbols that were written into the end-to-end
// reference ("VS0001//SS000123") instead of their own subfields. Symbols set by a
// dedicated subfield are kept.
func fillEmbeddedSymbols(b *swift.Builder) error {
	txn := b.Transaction()
	if txn.EndToEndRef == "" {
		return nil
	}

	for _, token := range embeddedSymbolPattern.FindAllString(txn.EndToEndRef, -1) {
		value := token[2:]
		if value == "" {
			continue
		}

		var attr swift.Attr
		var current string
		switch token[:2] {
		case "VS":
			attr, current = swift.AttrVariableSymbol, txn.VariableSymbol
		case "SS":
			attr, current = swift.AttrSpecificSymbol, txn.SpecificSymbol
		case "KS":
			attr, current = swift.AttrConstantSymbol, txn.ConstantSymbol
		}

		if current != "" {
			continue
		}
		if err := b.UpdateTransaction(swift.Replace, attr, value); err != nil {
			return err
		}
	}

	return nil
}
