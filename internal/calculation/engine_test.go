package calculation

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() domain.PaystubRequest {
	return domain.PaystubRequest{
		Employee: domain.EmployeeProfile{
			Name:          "John Doe",
			EmployeeID:    "200000",
			Address:       "1234 Main Street",
			HourlyRate:    d("25"),
			FilingStatus:  domain.FilingSingle,
			StateCode:     domain.DefaultStateCode,
			PayFrequency:  domain.PayBiweekly,
			YTDGrossPrior: decimal.Zero,
		},
		TimeWorked: shift("08:00", "17:00"),
		PayPeriod: domain.PayPeriod{
			Start: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, label string) {
	t.Helper()
	assert.True(t, got.Equal(d(want)), "%s: expected %s, got %s", label, want, got)
}

func TestNewCalculationEngine(t *testing.T) {
	engine := NewCalculationEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Tables, "Should initialize tax tables")
	assert.NotNil(t, engine.FederalTax, "Should initialize federal calculator")
	assert.NotNil(t, engine.StateTax, "Should initialize state calculator")
	assert.NotNil(t, engine.FICATax, "Should initialize FICA calculator")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.False(t, engine.RequireNonZeroShift)
	assert.Equal(t, 2024, engine.Tables.Year())
}

func TestCalculationEngine_SetLogger(t *testing.T) {
	engine := NewCalculationEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	// nil restores the no-op logger
	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestGeneratePaystub_DefaultEmployee(t *testing.T) {
	engine := NewCalculationEngine()

	stub, err := engine.GeneratePaystub(testRequest())
	require.NoError(t, err)
	require.NotNil(t, stub)

	assertAmount(t, "9", stub.Earnings.HoursWorked, "hours")
	assertAmount(t, "225", stub.Earnings.Regular.Amount, "regular pay")
	assertAmount(t, "0", stub.Earnings.Overtime.Amount, "overtime pay")
	assertAmount(t, "37.5", stub.Earnings.Overtime.Rate, "overtime rate")
	assertAmount(t, "50", stub.Earnings.DoubleTime.Rate, "double time rate")
	assertAmount(t, "225", stub.Earnings.Gross, "gross")

	taxes := stub.Deductions.Taxes
	assertAmount(t, "0", taxes.FederalIncomeTax.Current, "federal")
	assertAmount(t, "11.25", taxes.StateIncomeTax.Current, "state")
	assertAmount(t, "0", taxes.SDI.Current, "sdi")
	assertAmount(t, "13.95", taxes.SocialSecurity.Current, "social security")
	assertAmount(t, "3.26", taxes.Medicare.Current, "medicare")
	assertAmount(t, "0", taxes.AdditionalMedicare.Current, "additional medicare")
	assertAmount(t, "168600", taxes.SocialSecurity.WageBase, "wage base")
	assertAmount(t, "10453.2", taxes.SocialSecurity.MaxTax, "max tax")
	assertAmount(t, "200000", taxes.AdditionalMedicare.Threshold, "threshold")

	assertAmount(t, "28.46", stub.Deductions.Total.Current, "total deductions")
	assertAmount(t, "196.54", stub.NetPay.Current, "net pay")

	assert.Equal(t, 1, stub.PayInfo.CurrentPeriod)
	assert.Equal(t, 26, stub.PayInfo.PeriodsPerYear)
	assert.Equal(t, domain.PayBiweekly, stub.PayInfo.Frequency)
	assert.Equal(t, 2024, stub.TaxYear)

	assertAmount(t, "11.25", stub.Summary.TotalTaxes, "summary taxes exclude FICA")
	assertAmount(t, "0", stub.Summary.TotalBenefitDeductions, "summary benefits")
	assertAmount(t, "5", stub.Summary.TaxPercentage, "tax percentage")
	assertAmount(t, "0", stub.Summary.BenefitPercentage, "benefit percentage")
	assertAmount(t, "87", stub.Summary.NetPercentage, "net percentage")

	assertAmount(t, "225", stub.YTD.Gross, "ytd gross")
	assertAmount(t, "196.54", stub.YTD.Net, "ytd net")
}

func TestGeneratePaystub_WithDeductions(t *testing.T) {
	engine := NewCalculationEngine()
	req := testRequest()
	req.Employee.Deductions = domain.ElectedDeductions{
		Health:                d("20"),
		Retirement401kPercent: d("10"),
	}

	stub, err := engine.GeneratePaystub(req)
	require.NoError(t, err)

	assertAmount(t, "22.5", stub.Deductions.PreTax.Items.Retirement401k, "401k")
	assertAmount(t, "42.5", stub.Deductions.PreTax.Total, "pre-tax total")
	assertAmount(t, "182.5", stub.Deductions.Taxes.StateIncomeTax.TaxableWages, "income taxable wages")
	assertAmount(t, "205", stub.Deductions.Taxes.SocialSecurity.TaxableWages, "fica taxable wages")
	assertAmount(t, "9.13", stub.Deductions.Taxes.StateIncomeTax.Current, "state")
	assertAmount(t, "12.71", stub.Deductions.Taxes.SocialSecurity.Current, "social security")
	assertAmount(t, "2.97", stub.Deductions.Taxes.Medicare.Current, "medicare")
	assertAmount(t, "67.31", stub.Deductions.Total.Current, "total")
	assertAmount(t, "157.69", stub.NetPay.Current, "net")

	assertAmount(t, "4", stub.Summary.TaxPercentage, "tax percentage")
	assertAmount(t, "19", stub.Summary.BenefitPercentage, "benefit percentage")
	assertAmount(t, "70", stub.Summary.NetPercentage, "net percentage")
}

func TestGeneratePaystub_YTDProjection(t *testing.T) {
	engine := NewCalculationEngine()
	req := testRequest()
	req.Employee.YTDGrossPrior = d("450")

	stub, err := engine.GeneratePaystub(req)
	require.NoError(t, err)

	assert.Equal(t, 3, stub.PayInfo.CurrentPeriod)
	assertAmount(t, "675", stub.YTD.Gross, "ytd gross uses the supplied prior gross")
	assertAmount(t, "589.62", stub.NetPay.YTD, "ytd net")
	assertAmount(t, "33.75", stub.Deductions.Taxes.StateIncomeTax.YTD, "ytd state")
	assertAmount(t, "85.38", stub.Deductions.Total.YTD, "ytd deductions")
	assertAmount(t, stub.Deductions.Total.YTD.String(), stub.YTD.Deductions, "ytd summary deductions")
}

func TestGeneratePaystub_NetEqualsGrossMinusDeductions(t *testing.T) {
	engine := NewCalculationEngine()

	rates := []string{"7.25", "18.33", "41.17", "99.99", "250"}
	shifts := [][2]string{{"08:00", "17:00"}, {"22:15", "06:40"}, {"00:00", "23:59"}, {"09:07", "09:08"}}
	states := []string{"CA", "NY", "TX", "ZZ"}

	for _, rate := range rates {
		for _, s := range shifts {
			for _, state := range states {
				for _, status := range domain.FilingStatuses {
					req := testRequest()
					req.Employee.HourlyRate = d(rate)
					req.Employee.StateCode = state
					req.Employee.FilingStatus = status
					req.Employee.Deductions = domain.ElectedDeductions{
						Health:                d("12.34"),
						Retirement401kPercent: d("3.3"),
						Parking:               d("7.5"),
					}
					req.TimeWorked = shift(s[0], s[1])

					stub, err := engine.GeneratePaystub(req)
					require.NoError(t, err)

					net := stub.Earnings.Gross.Sub(stub.Deductions.Total.Current)
					assert.True(t, stub.NetPay.Current.Equal(net), "%s/%v/%s/%s: net %s != gross - deductions %s",
						rate, s, state, status, stub.NetPay.Current, net)
					assert.True(t, stub.NetPay.Current.Equal(stub.NetPay.Current.Round(2)), "net pay must be in cents")
				}
			}
		}
	}
}

func TestGeneratePaystub_Deterministic(t *testing.T) {
	engine := NewCalculationEngine()

	first, err := engine.GeneratePaystub(testRequest())
	require.NoError(t, err)
	second, err := engine.GeneratePaystub(testRequest())
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical requests produce identical paystubs")

	parsed, err := uuid.Parse(first.StubNumber)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())

	req := testRequest()
	req.PayPeriod.Start = req.PayPeriod.Start.AddDate(0, 0, 14)
	other, err := engine.GeneratePaystub(req)
	require.NoError(t, err)
	assert.NotEqual(t, first.StubNumber, other.StubNumber, "a different period gets a different stub number")
}

func TestGeneratePaystub_ZeroLengthShift(t *testing.T) {
	engine := NewCalculationEngine()
	req := testRequest()
	req.TimeWorked = shift("08:00", "08:00")

	stub, err := engine.GeneratePaystub(req)
	require.NoError(t, err)
	assert.True(t, stub.Earnings.Gross.IsZero())
	assert.True(t, stub.NetPay.Current.IsZero())
	assert.True(t, stub.Summary.TaxPercentage.IsZero(), "zero gross gives zero percentages")
	assert.True(t, stub.Summary.BenefitPercentage.IsZero())
	assert.True(t, stub.Summary.NetPercentage.IsZero())
	assert.Equal(t, 1, stub.PayInfo.CurrentPeriod)

	engine.RequireNonZeroShift = true
	stub, err = engine.GeneratePaystub(req)
	assert.ErrorIs(t, err, ErrZeroLengthShift)
	assert.Nil(t, stub)
}

func TestGeneratePaystub_InvalidClockTime(t *testing.T) {
	engine := NewCalculationEngine()
	req := testRequest()
	req.TimeWorked.ClockOut = domain.ClockTime{Hour: 24, Minute: 0}

	_, err := engine.GeneratePaystub(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidClockTime)
	assert.Contains(t, err.Error(), "clock out")
}

func TestGeneratePaystub_UnknownStateWarns(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	req := testRequest()
	req.Employee.StateCode = "ZZ"
	stub, err := engine.GeneratePaystub(req)
	require.NoError(t, err)

	assertAmount(t, "11.25", stub.Deductions.Taxes.StateIncomeTax.Current, "default state rate")
	assert.Equal(t, "ZZ", stub.Employee.StateCode, "the snapshot keeps the requested code")
	assert.True(t, logger.has("WARN: state %q not in tax tables"), "messages: %v", logger.messages)
	assert.True(t, logger.has("INFO: paystub"), "messages: %v", logger.messages)
}

func TestGeneratePaystub_CaliforniaSDI(t *testing.T) {
	engine := NewCalculationEngine()
	req := testRequest()
	req.Employee.StateCode = "CA"

	stub, err := engine.GeneratePaystub(req)
	require.NoError(t, err)

	assertAmount(t, "2.25", stub.Deductions.Taxes.StateIncomeTax.Current, "state")
	assertAmount(t, "2.03", stub.Deductions.Taxes.SDI.Current, "sdi")
	assertAmount(t, "4.28", stub.Deductions.StateTax.Current, "state total includes SDI")
}

func TestGeneratePaystub_NoTables(t *testing.T) {
	engine := &CalculationEngine{Logger: NopLogger{}}
	_, err := engine.GeneratePaystub(testRequest())
	assert.Error(t, err)
}

func TestPercentOf(t *testing.T) {
	assertAmount(t, "0", percentOf(d("10"), decimal.Zero), "zero gross")
	assertAmount(t, "87", percentOf(d("196.54"), d("225")), "net share")
	assertAmount(t, "50", percentOf(d("0.5"), d("1")), "exact")
}

// TestLogger records formats for assertions
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}

func (tl *TestLogger) has(prefix string) bool {
	for _, m := range tl.messages {
		if strings.HasPrefix(m, prefix) {
			return true
		}
	}
	return false
}
