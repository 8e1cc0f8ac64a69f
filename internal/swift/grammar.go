package swift

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/mt940-parser/internal/domain"
)

var (
	referencePattern       = regexp.MustCompile(`^.{1,16}$`)
	accountPattern         = regexp.MustCompile(`^.{1,35}$`)
	statementNumberPattern = regexp.MustCompile(`^(\d{1,4})(?:/(\d{1,5}))?$`)
	statementLinePattern   = regexp.MustCompile(`^(\d{6})(\d{4})([CD])(\d+(?:,\d*)?)([A-Z]{4})(.*)$`)
	referenceTextPattern   = regexp.MustCompile(`^[\w/. -]{0,16}$`)
	balancePattern         = regexp.MustCompile(`^([CD])(\d{6})([A-Z]{3})(\d+(?:,\d*)?)$`)
	reportTimePattern      = regexp.MustCompile(`^(\d{10})([+-])(\d{2})(\d{2})$`)
	floorLimitPattern      = regexp.MustCompile(`^([A-Z]{3})([CD]?)(\d+(?:,\d*)?)$`)
	summaryPattern         = regexp.MustCompile(`^(\d{1,5})([A-Z]{3})(\d+(?:,\d*)?)$`)
)

// ReportTimeLayout is the YYMMDDHHmm layout of MT942 report timestamps
const ReportTimeLayout = "0601021504"

// StatementNumber is the decoded value of field 28C
type StatementNumber struct {
	Number   string
	Sequence string
}

// StatementLine is the decoded value of field 61
type StatementLine struct {
	ValueDate   domain.Date
	EntryDate   domain.Date
	Mark        domain.Mark
	Amount      decimal.Decimal // signed
	TypeCode    string
	CustomerRef string
	BankRef     string
}

// FloorLimit is the decoded value of field 34F. Mark is empty when the field has no D/C indicator.
type FloorLimit struct {
	Mark  domain.Mark
	Limit domain.FloorLimit
}

// ParseReference validates field 20
func ParseReference(value string) (string, error) {
	if !referencePattern.MatchString(value) {
		return "", Invalidf("reference must be 1-16 characters")
	}
	return value, nil
}

// ParseAccount validates field 25
func ParseAccount(value string) (string, error) {
	if !accountPattern.MatchString(value) {
		return "", Invalidf("account must be 1-35 characters")
	}
	return value, nil
}

// ParseStatementNumber decodes field 28C
func ParseStatementNumber(value string) (StatementNumber, error) {
	m := statementNumberPattern.FindStringSubmatch(value)
	if m == nil {
		return StatementNumber{}, Invalidf("statement number must be n{1,4}[/n{1,5}]")
	}
	return StatementNumber{Number: m[1], Sequence: m[2]}, nil
}

// ParseStatementLine decodes field 61
func ParseStatementLine(value string) (StatementLine, error) {
	m := statementLinePattern.FindStringSubmatch(value)
	if m == nil {
		return StatementLine{}, Invalidf("malformed statement line")
	}

	valueDate, err := ParseShortDate(m[1])
	if err != nil {
		return StatementLine{}, err
	}

	entryDate, err := calendarDate(valueDate.Year(), m[2][0:2], m[2][2:4])
	if err != nil {
		return StatementLine{}, err
	}

	amount, err := ParseAmount(m[4])
	if err != nil {
		return StatementLine{}, err
	}

	custRef, bankRef := m[6], ""
	if i := strings.Index(custRef, "//"); i >= 0 {
		custRef, bankRef = custRef[:i], custRef[i+2:]
	}
	if !referenceTextPattern.MatchString(custRef) {
		return StatementLine{}, Invalidf("customer reference %q", custRef)
	}
	if !referenceTextPattern.MatchString(bankRef) {
		return StatementLine{}, Invalidf("bank reference %q", bankRef)
	}

	mark := domain.Mark(m[3])
	return StatementLine{
		ValueDate:   valueDate,
		EntryDate:   entryDate,
		Mark:        mark,
		Amount:      mark.Signed(amount),
		TypeCode:    m[5],
		CustomerRef: custRef,
		BankRef:     bankRef,
	}, nil
}

// ParseBalance decodes fields 60F, 60M, 62F, 62M, 64 and 65
func ParseBalance(value string) (domain.Balance, error) {
	m := balancePattern.FindStringSubmatch(value)
	if m == nil {
		return domain.Balance{}, Invalidf("malformed balance")
	}

	date, err := ParseShortDate(m[2])
	if err != nil {
		return domain.Balance{}, err
	}

	amount, err := ParseAmount(m[4])
	if err != nil {
		return domain.Balance{}, err
	}

	return domain.Balance{
		Amount:   domain.Mark(m[1]).Signed(amount),
		Currency: m[3],
		Date:     date,
	}, nil
}

// ParseReportTime decodes field 13D: YYMMDDHHmm followed by a UTC offset
func ParseReportTime(value string) (time.Time, error) {
	m := reportTimePattern.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, Invalidf("report time must be YYMMDDHHmm±hhmm")
	}

	hours, _ := strconv.Atoi(m[3])
	minutes, _ := strconv.Atoi(m[4])
	offset := hours*3600 + minutes*60
	if m[2] == "-" {
		offset = -offset
	}

	return ParseLocalReportTime(m[1], time.FixedZone("", offset))
}

// ParseLocalReportTime decodes a YYMMDDHHmm timestamp in the given location
func ParseLocalReportTime(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(ReportTimeLayout, value, loc)
	if err != nil {
		return time.Time{}, Invalidf("report time %q: %v", value, err)
	}
	return t, nil
}

// ParseFloorLimit decodes field 34F
func ParseFloorLimit(value string) (FloorLimit, error) {
	m := floorLimitPattern.FindStringSubmatch(value)
	if m == nil {
		return FloorLimit{}, Invalidf("malformed floor limit")
	}

	amount, err := ParseAmount(m[3])
	if err != nil {
		return FloorLimit{}, err
	}

	return FloorLimit{
		Mark:  domain.Mark(m[2]),
		Limit: domain.FloorLimit{Currency: m[1], Amount: amount},
	}, nil
}

// ParseSummary decodes fields 90D and 90C
func ParseSummary(value string) (domain.Summary, error) {
	m := summaryPattern.FindStringSubmatch(value)
	if m == nil {
		return domain.Summary{}, Invalidf("malformed entry summary")
	}

	count, err := strconv.Atoi(m[1])
	if err != nil {
		return domain.Summary{}, Invalidf("entry count %q", m[1])
	}

	amount, err := ParseAmount(m[3])
	if err != nil {
		return domain.Summary{}, err
	}

	return domain.Summary{Count: count, Currency: m[2], Amount: amount}, nil
}

// ParseAmount converts a comma-decimal amount ("1234,56") to an exact decimal
func ParseAmount(s string) (decimal.Decimal, error) {
	normalized := strings.Replace(s, ",", ".", 1)
	if strings.HasSuffix(normalized, ".") {
		normalized += "0"
	}

	amount, err := decimal.NewFromString(normalized)
	if err != nil || strings.ContainsAny(normalized, ",eE") {
		return decimal.Decimal{}, Invalidf("amount %q", s)
	}
	return amount, nil
}

// ParseShortDate converts YYMMDD to a date in the 21st century
func ParseShortDate(s string) (domain.Date, error) {
	if len(s) != 6 {
		return domain.Date{}, Invalidf("date %q must be YYMMDD", s)
	}

	year, err := strconv.Atoi(s[0:2])
	if err != nil {
		return domain.Date{}, Invalidf("date %q must be YYMMDD", s)
	}

	return calendarDate(2000+year, s[2:4], s[4:6])
}

// calendarDate rejects dates time.Date would normalize, such as month 13 or February 30
func calendarDate(year int, mm, dd string) (domain.Date, error) {
	month, err := strconv.Atoi(mm)
	if err != nil {
		return domain.Date{}, Invalidf("month %q", mm)
	}
	day, err := strconv.Atoi(dd)
	if err != nil {
		return domain.Date{}, Invalidf("day %q", dd)
	}

	d := domain.NewDate(year, time.Month(month), day)
	if int(d.Month()) != month || d.Day() != day {
		return domain.Date{}, Invalidf("no such date %04d-%s-%s", year, mm, dd)
	}
	return d, nil
}
