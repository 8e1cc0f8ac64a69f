package taba_test

import (
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/mt940-parser/internal/domain"
	"github.com/tirasundara/mt940-parser/internal/swift"
	"github.com/tirasundara/mt940-parser/internal/swift/taba"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(string(data), "\n")
}

func parse(t *testing.T, p *swift.Profile, lines []string) ([]*domain.Statement, error) {
	t.Helper()

	logger, _ := test.NewNullLogger()
	parser, err := swift.NewParser(p, swift.WithLogger(logger))
	require.NoError(t, err)
	return parser.Parse(lines)
}

// statementWith wraps narrative lines of a single transaction into a complete statement
func statementWith(statementLine string, narrative ...string) []string {
	lines := []string{
		":20:MC94012345600000",
		":25:SK3111000000002612345678",
		":28C:1",
		":60F:C230115EUR0,00",
		":61:" + statementLine,
	}
	lines = append(lines, narrative...)
	return append(lines, ":62F:C230116EUR0,00", "-")
}

func TestMT940_Statement(t *testing.T) {
	statements, err := parse(t, taba.MT940(), readLines(t, "testdata/statement.sta"))
	require.NoError(t, err)
	require.Len(t, statements, 1)

	stmt := statements[0]
	assert.Equal(t, "MC94012345600000", stmt.TransactionRef)
	assert.Equal(t, "000000-2612345678/1100", stmt.Account)
	assert.Equal(t, "SK9911000000001111111111", stmt.OtherAccount)
	assert.True(t, stmt.ClosingBalance.Amount.Equal(decimal.RequireFromString("1379.50")))
	require.Len(t, stmt.Transactions, 2)

	deposit := stmt.Transactions[0]
	assert.Equal(t, "051", deposit.BusinessCode)
	assert.Equal(t, "Vklad hotovosti", deposit.BookingText)
	assert.Equal(t, "JOZKO MRKVICKA ST.", deposit.OtherName)
	assert.Empty(t, deposit.OtherAccount)
	assert.Equal(t, "0000001234", deposit.VariableSymbol)

	payment := stmt.Transactions[1]
	assert.Equal(t, "PAYMENT", payment.CustomerRef)
	assert.Equal(t, "TB123", payment.BankRef)
	assert.Equal(t, "Faktura 2023/001", payment.Message)
	assert.Equal(t, "SK0000000000001234567890", payment.OtherAccount)
	assert.Equal(t, "ACME S.R.O.", payment.OtherName)
	assert.Equal(t, "VS0001//SS000123", payment.EndToEndRef)
	assert.Equal(t, "0001", payment.VariableSymbol)
	assert.Equal(t, "000123", payment.SpecificSymbol)
	assert.Empty(t, payment.ConstantSymbol)
}

func TestMT940_EmbeddedSymbolsDoNotOverrideSubfields(t *testing.T) {
	lines := statementWith("2301160116D1,00NTRFPAYMENT",
		":86:052?00Platba",
		"?21SS999",
		"?60/ROC/SS000123/KS0308",
	)

	statements, err := parse(t, taba.MT940(), lines)
	require.NoError(t, err)

	txn := statements[0].Transactions[0]
	assert.Equal(t, "999", txn.SpecificSymbol)
	assert.Equal(t, "0308", txn.ConstantSymbol)
	assert.Empty(t, txn.VariableSymbol)
}

func TestMT940_EmbeddedSymbolOnly(t *testing.T) {
	lines := statementWith("2301160116D1,00NTRFPAYMENT",
		":86:052?00Platba",
		"?60NOTPROVIDED SS000123",
	)

	statements, err := parse(t, taba.MT940(), lines)
	require.NoError(t, err)
	assert.Equal(t, "000123", statements[0].Transactions[0].SpecificSymbol)
}

func TestMT940_CounterpartDependsOnCustomerReference(t *testing.T) {
	tests := []struct {
		custRef      string
		otherName    string
		otherAccount string
		stmtAccount  string
	}{
		{"DEPOSIT", "JOZKO", "", ""},
		{"FEES", "JOZKO", "", ""},
		{"WITHDRAWAL", "JOZKO", "", ""},
		{"COLLECTION", "", "", ""},
		{"INTER.CAPITALIS.", "", "", ""},
		{"PAYMENT", "", "JOZKO", "SK99"},
	}

	for _, tt := range tests {
		t.Run(tt.custRef, func(t *testing.T) {
			lines := statementWith("2301160116C1,00NTRF"+tt.custRef,
				":86:051?00Platba",
				"?31JOZKO",
				"?38SK99",
			)

			statements, err := parse(t, taba.MT940(), lines)
			require.NoError(t, err)

			txn := statements[0].Transactions[0]
			assert.Equal(t, tt.otherName, txn.OtherName)
			assert.Equal(t, tt.otherAccount, txn.OtherAccount)
			assert.Equal(t, tt.stmtAccount, statements[0].OtherAccount)
		})
	}
}

func TestMT940_Transcoding(t *testing.T) {
	// 0xA1 is "í" and 0xA0 is "á" in code page 852
	lines := statementWith("2301160116D1,00NTRFPAYMENT",
		":86:052?00Pr\xa1kaz",
		"?32Tatra banka \xa0.s.",
	)

	statements, err := parse(t, taba.MT940(), lines)
	require.NoError(t, err)

	txn := statements[0].Transactions[0]
	assert.Equal(t, "Príkaz", txn.BookingText)
	assert.Equal(t, "Tatra banka á.s.", txn.OtherName)
}

func TestMT940_Errors(t *testing.T) {
	_, err := parse(t, taba.MT940(), statementWith("2301160116D1,00NTRF", ":86:Platba bez kodu"))
	assert.ErrorIs(t, err, swift.ErrInvalidFieldValue)

	lines := statementWith("2301160116D1,00NTRF")
	lines[1] = ":25:CZ3111000000002612345678"
	_, err = parse(t, taba.MT940(), lines)
	assert.ErrorIs(t, err, swift.ErrInvalidFieldValue)

	_, err = parse(t, taba.MT940(), []string{":20:A", ":86:051?00Platba", "-"})
	assert.ErrorIs(t, err, swift.ErrNoTransaction)

	_, err = parse(t, taba.MT940(), []string{":20:A", ":25:SK3111000000002612345678"})
	assert.ErrorIs(t, err, swift.ErrUnfinishedStatement)
}
