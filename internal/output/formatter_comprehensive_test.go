package output

import (
	"bytes"
	"compress/zlib"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rgehrsitz/paygo/internal/calculation"
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func buildTestPaystub(t *testing.T) *domain.Paystub {
	t.Helper()
	req := domain.PaystubRequest{
		Employee: domain.EmployeeProfile{
			Name:         "Jane Smith",
			EmployeeID:   "E-1001",
			Address:      "12 Elm St\nSpringfield, IL 62701",
			HourlyRate:   decimal.NewFromInt(25),
			FilingStatus: domain.FilingSingle,
			StateCode:    domain.DefaultStateCode,
			PayFrequency: domain.PayBiweekly,
		},
		TimeWorked: domain.TimeWorked{
			ClockIn:  domain.MustParseClockTime("08:00"),
			ClockOut: domain.MustParseClockTime("17:00"),
		},
		PayPeriod: domain.PayPeriod{
			Start: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		},
	}
	stub, err := calculation.NewCalculationEngine().GeneratePaystub(req)
	require.NoError(t, err)
	return stub
}

func TestFormatterFunc_Format(t *testing.T) {
	called := false
	var received *domain.Paystub

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(stub *domain.Paystub) ([]byte, error) {
			called = true
			received = stub
			return []byte("test output"), nil
		},
	}

	stub := buildTestPaystub(t)
	out, err := formatter.Format(stub)

	assert.NoError(t, err)
	assert.True(t, called, "Should call the function")
	assert.Same(t, stub, received, "Should pass the paystub")
	assert.Equal(t, []byte("test output"), out)
	assert.Equal(t, "test-formatter", formatter.Name())
}

func TestWriteFormatted(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer os.Chdir(originalDir)

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(stub *domain.Paystub) ([]byte, error) {
			return []byte("test output content"), nil
		},
	}

	filename, err := WriteFormatted(formatter, buildTestPaystub(t), "txt")
	require.NoError(t, err)
	assert.Equal(t, "paystub_E-1001_2024-04-01.txt", filename)

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "test output content", string(content))
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	formatter := FormatterFunc{
		ID: "error-formatter",
		F: func(stub *domain.Paystub) ([]byte, error) {
			return nil, fmt.Errorf("formatter error")
		},
	}

	filename, err := WriteFormatted(formatter, buildTestPaystub(t), "txt")
	assert.Error(t, err)
	assert.Empty(t, filename)
	assert.Contains(t, err.Error(), "formatter error")
}

func TestSanitizeFilePart(t *testing.T) {
	assert.Equal(t, "E-1001", sanitizeFilePart("E-1001"))
	assert.Equal(t, "a_b_c", sanitizeFilePart("a/b c"))
}

func TestConsoleFormatter_Format(t *testing.T) {
	formatter := ConsoleFormatter{}
	assert.Equal(t, "console", formatter.Name())

	out, err := formatter.Format(buildTestPaystub(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "EARNINGS STATEMENT")
	assert.Contains(t, content, "Jane Smith")
	assert.Contains(t, content, "Springfield, IL 62701")
	assert.Contains(t, content, "Apr 1, 2024 - Apr 15, 2024")
	assert.Contains(t, content, "period 1 of 26")
	assert.Contains(t, content, "$225.00")
	assert.Contains(t, content, "$11.25")
	assert.Contains(t, content, "$13.95")
	assert.Contains(t, content, "$3.26")
	assert.Contains(t, content, "$196.54")
	assert.Contains(t, content, "87%")
	for _, a := range DefaultAssumptions {
		assert.Contains(t, content, a)
	}
}

func TestConsoleLiteFormatter_Format(t *testing.T) {
	formatter := ConsoleLiteFormatter{}
	assert.Equal(t, "console-lite", formatter.Name())

	out, err := formatter.Format(buildTestPaystub(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "Jane Smith (E-1001)")
	assert.Contains(t, content, "(9.00 hrs)")
	assert.Contains(t, content, "$196.54")
	assert.Contains(t, content, "87% of gross")
	assert.NotContains(t, content, "EARNINGS STATEMENT")
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := JSONFormatter{}
	assert.Equal(t, "json", formatter.Name())

	stub := buildTestPaystub(t)
	out, err := formatter.Format(stub)
	require.NoError(t, err)

	var decoded domain.Paystub
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, stub.StubNumber, decoded.StubNumber)
	assert.True(t, decoded.NetPay.Current.Equal(decimal.RequireFromString("196.54")))
	assert.True(t, decoded.Deductions.Taxes.Medicare.Current.Equal(decimal.RequireFromString("3.26")))

	pretty, err := JSONFormatter{Pretty: true}.Format(stub)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"stub_number\"")
}

func TestYAMLFormatter_Format(t *testing.T) {
	formatter := YAMLFormatter{}
	assert.Equal(t, "yaml", formatter.Name())

	out, err := formatter.Format(buildTestPaystub(t))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "stub_number")
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, string(out), "clock_in: \"08:00\"")
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := CSVFormatter{}
	assert.Equal(t, "csv", formatter.Name())

	stub := buildTestPaystub(t)
	out, err := formatter.Format(stub)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(LineItems(stub))+1)
	assert.Equal(t, "Section", records[0][4])

	last := records[len(records)-1]
	assert.Equal(t, "Net Pay", last[5])
	assert.Equal(t, "196.54", last[8])
	assert.Equal(t, "E-1001", last[1])
	assert.Equal(t, "2024-04-15", last[3])
}

func TestHTMLFormatter_Format(t *testing.T) {
	formatter := HTMLFormatter{}
	assert.Equal(t, "html", formatter.Name())

	out, err := formatter.Format(buildTestPaystub(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "<!DOCTYPE html>")
	assert.Contains(t, content, "<title>Earnings Statement Jane Smith")
	assert.Contains(t, content, "Federal Income Tax")
	assert.Contains(t, content, "$196.54")
	assert.Contains(t, content, "Single")
}

func TestPDFFormatter_Format(t *testing.T) {
	formatter := PDFFormatter{}
	assert.Equal(t, "pdf", formatter.Name())

	out, err := formatter.Format(buildTestPaystub(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "Should be a PDF document")
}

func TestPDFFormatter_EncodesNamesAsCP1252(t *testing.T) {
	stub := buildTestPaystub(t)
	stub.Employee.Name = "José Núñez"
	stub.Employee.Address = "1 Calle Peñasco"

	out, err := PDFFormatter{}.Format(stub)
	require.NoError(t, err)

	text := pdfStreams(t, out)
	assert.Contains(t, text, "Jos\xe9 N\xfa\xf1ez")
	assert.Contains(t, text, "Calle Pe\xf1asco")
	assert.NotContains(t, text, "José")
}

// pdfStreams inflates every compressed stream in a PDF and concatenates the results
func pdfStreams(t *testing.T, pdf []byte) string {
	t.Helper()
	var sb strings.Builder
	start, end := []byte("\nstream\n"), []byte("\nendstream")
	for {
		i := bytes.Index(pdf, start)
		if i < 0 {
			break
		}
		pdf = pdf[i+len(start):]
		j := bytes.Index(pdf, end)
		if j < 0 {
			break
		}
		if r, err := zlib.NewReader(bytes.NewReader(pdf[:j])); err == nil {
			data, _ := io.ReadAll(r)
			sb.Write(data)
		}
		pdf = pdf[j:]
	}
	return sb.String()
}

func TestLineItems_MatchRecord(t *testing.T) {
	stub := buildTestPaystub(t)
	items := LineItems(stub)

	sections := GroupLineItems(items)
	names := make([]string, 0, len(sections))
	for _, s := range sections {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{SectionEarnings, SectionPreTax, SectionTaxes, SectionPostTax, SectionNet}, names)

	byLabel := map[string]LineItem{}
	for _, item := range items {
		byLabel[item.Label] = item
	}
	assert.True(t, byLabel["Gross Pay"].Current.Equal(stub.Earnings.Gross))
	assert.True(t, byLabel["Total Deductions"].Current.Equal(stub.Deductions.Total.Current))
	assert.True(t, byLabel["Social Security"].YTD.Equal(stub.Deductions.Taxes.SocialSecurity.YTD))
	assert.False(t, byLabel["Parking"].HasYTD)
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"5", "$5.00"},
		{"999.995", "$1,000.00"},
		{"1234567.891", "$1,234,567.89"},
		{"-5", "-$5.00"},
		{"-0.001", "$0.00"},
		{"100000", "$100,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatPercentageAndHours(t *testing.T) {
	assert.Equal(t, "87%", FormatPercentage(decimal.NewFromInt(87)))
	assert.Equal(t, "9.00", FormatHours(decimal.NewFromInt(9)))
	assert.Equal(t, "8.50", FormatHours(decimal.RequireFromString("8.5")))
}

func TestFilingStatusLabel(t *testing.T) {
	assert.Equal(t, "Married Filing Jointly", FilingStatusLabel(domain.FilingMarriedJointly))
	assert.Equal(t, "Head of Household", FilingStatusLabel(domain.FilingHeadOfHousehold))
	assert.Equal(t, "other", FilingStatusLabel(domain.FilingStatus("other")))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "console-lite", "csv", "html", "json", "pdf", "yaml"}, AvailableFormatterNames())
}

func TestAvailableFormatAliases(t *testing.T) {
	aliases := AvailableFormatAliases()
	assert.Contains(t, aliases, "verbose")
	assert.Contains(t, aliases, "yml")
	assert.Contains(t, aliases, "print")
}

func TestGetFormatterByName(t *testing.T) {
	f := GetFormatterByName("console-lite")
	require.NotNil(t, f)
	assert.Equal(t, "console-lite", f.Name())

	f = GetFormatterByName(" YML ")
	require.NotNil(t, f)
	assert.Equal(t, "yaml", f.Name())

	assert.Nil(t, GetFormatterByName("non-existent"))
}
