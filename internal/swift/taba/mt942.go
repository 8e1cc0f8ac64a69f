package taba

import (
	"fmt"
	"regexp"
	"time"

	"github.com/tirasundara/mt940-parser/internal/domain"
	"github.com/tirasundara/mt940-parser/internal/swift"
)

var (
	reportTimePattern = regexp.MustCompile(`^\d{10}$`)
	reportRefPattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{2}\.\d{2}$`)
	accountPattern    = regexp.MustCompile(`^(\d{4})/(\d{10})$`)
)

// ReportLocation is used for MT942 report timestamps, which carry no zone
var ReportLocation = time.UTC

var mt942Subfields = subfieldRules{
	"24": set(swift.AttrEndToEndRef, ""),
	"25": appendText(swift.AttrMessage, ""),
	"31": creditorAccount,
	"32": set(swift.AttrOtherName, ""),
	"33": appendText(swift.AttrOtherName, ""),
	"60": set(swift.AttrMessage, ""),
	"61": appendNonEmpty(swift.AttrMessage),
	"62": appendNonEmpty(swift.AttrMessage),
	"63": appendNonEmpty(swift.AttrMessage),
	"64": appendNonEmpty(swift.AttrMessage),
	"65": appendNonEmpty(swift.AttrMessage),
}

// MT942 returns the Tatra banka MT942 (.VML) profile. Entry summaries (90D, 90C) are accepted but not kept.
func MT942() *swift.Profile {
	return &swift.Profile{
		Name:     "taba942",
		Trailer:  Trailer,
		Encoding: Encoding,
		Handlers: swift.MT942Handlers().Override(swift.HandlerTable{
			"13":  handleReportTime,
			"20":  handleReportReference,
			"25":  handleAccount,
			"86":  decodeNarrative(mt942Subfields),
			"90D": swift.Ignore,
			"90C": swift.Ignore,
		}),
	}
}

func handleReportTime(b *swift.Builder, f swift.Field) error {
	if !reportTimePattern.MatchString(f.Value) {
		return swift.Invalidf("report time must be YYMMDDHHmm")
	}

	t, err := swift.ParseLocalReportTime(f.Value, ReportLocation)
	if err != nil {
		return err
	}
	return b.UpdateStatement(func(s *domain.Statement) {
		s.ReportTime = &t
	})
}

// handleReportReference accepts only the dotted YYYY-MM-DD-HH.MM reference and keeps it verbatim
func handleReportReference(b *swift.Builder, f swift.Field) error {
	if !reportRefPattern.MatchString(f.Value) {
		return swift.Invalidf("reference must be YYYY-MM-DD-HH.MM")
	}
	return swift.HandleReference(b, f)
}

// handleAccount reformats bank/account to 000000-account/bank
func handleAccount(b *swift.Builder, f swift.Field) error {
	m := accountPattern.FindStringSubmatch(f.Value)
	if m == nil {
		return swift.Invalidf("account must be bank/account")
	}

	return b.UpdateStatement(func(s *domain.Statement) {
		s.Account = fmt.Sprintf("000000-%s/%s", m[2], m[1])
	})
}

// creditorAccount keeps the counterpart account of incoming payments only
func creditorAccount(b *swift.Builder, n narrative, text string) error {
	if !n.credit {
		return nil
	}
	return b.UpdateTransaction(swift.Replace, swift.AttrOtherAccount, text)
}
