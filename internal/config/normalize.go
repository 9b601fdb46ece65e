package config

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidDate is returned for pay period dates that are not YYYY-MM-DD
var ErrInvalidDate = errors.New("invalid date")

// Field names used in FieldDefaults and Adjustment records
const (
	FieldName          = "employee.name"
	FieldEmployeeID    = "employee.employee_id"
	FieldAddress       = "employee.address"
	FieldHourlyRate    = "employee.hourly_rate"
	FieldFilingStatus  = "employee.filing_status"
	FieldStateCode     = "employee.state_code"
	FieldPayFrequency  = "employee.pay_frequency"
	FieldYTDGross      = "employee.ytd_gross"
	FieldHealth        = "employee.deductions.health"
	FieldDental        = "employee.deductions.dental"
	FieldRetirement401 = "employee.deductions.retirement_401k_percent"
	FieldHSA           = "employee.deductions.hsa"
	FieldParking       = "employee.deductions.parking"
	FieldLifeInsurance = "employee.deductions.life_insurance"
	FieldGarnishment   = "employee.deductions.garnishment"
	FieldClockIn       = "time_worked.clock_in"
	FieldClockOut      = "time_worked.clock_out"
	FieldPeriodStart   = "pay_period.start"
	FieldPeriodEnd     = "pay_period.end"
)

// FieldDefaults is the single table of values substituted for missing or malformed input
var FieldDefaults = map[string]string{
	FieldName:          "John Doe",
	FieldEmployeeID:    "200000",
	FieldAddress:       "1234 Main Street\nSanta Monica, CA 90401",
	FieldHourlyRate:    "25.00",
	FieldFilingStatus:  string(domain.FilingSingle),
	FieldStateCode:     domain.DefaultStateCode,
	FieldPayFrequency:  string(domain.PayBiweekly),
	FieldYTDGross:      "0",
	FieldHealth:        "0",
	FieldDental:        "0",
	FieldRetirement401: "0",
	FieldHSA:           "0",
	FieldParking:       "0",
	FieldLifeInsurance: "0",
	FieldGarnishment:   "0",
	FieldClockIn:       "08:00",
	FieldClockOut:      "17:00",
	FieldPeriodStart:   "2024-04-01",
	FieldPeriodEnd:     "2024-04-15",
}

// Reasons recorded on an Adjustment
const (
	ReasonMissing         = "missing"
	ReasonNotANumber      = "not a number"
	ReasonNegative        = "negative"
	ReasonOutOfRange      = "out of range"
	ReasonUnknownStatus   = "unknown filing status"
	ReasonUnknownFreq     = "unknown pay frequency"
	ReasonNormalizedValue = "normalized"
)

// Adjustment records a value that normalization replaced
type Adjustment struct {
	Field   string `yaml:"field" json:"field"`
	Value   string `yaml:"value" json:"value"`
	Applied string `yaml:"applied" json:"applied"`
	Reason  string `yaml:"reason" json:"reason"`
}

func (a Adjustment) String() string {
	return fmt.Sprintf("%s: %q -> %q (%s)", a.Field, a.Value, a.Applied, a.Reason)
}

// maxAmountScale is the most fractional digits kept from an input amount
const maxAmountScale = 16

// leadingNumber matches the numeric prefix a browser number parser would accept
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

type normalizer struct {
	adjustments []Adjustment
}

func (n *normalizer) adjust(field, value, applied, reason string) {
	n.adjustments = append(n.adjustments, Adjustment{Field: field, Value: value, Applied: applied, Reason: reason})
}

// text returns the trimmed value, or the field default when it is blank
func (n *normalizer) text(field, value string) string {
	if strings.TrimSpace(value) == "" {
		def := FieldDefaults[field]
		n.adjust(field, value, def, ReasonMissing)
		return def
	}
	return strings.TrimSpace(value)
}

// amount parses a non-negative decimal. Blank, non-numeric and negative values take the
// field default; trailing junk after a numeric prefix is ignored ("12abc" is 12).
func (n *normalizer) amount(field, value string) decimal.Decimal {
	def := decimal.RequireFromString(FieldDefaults[field])
	s := strings.TrimSpace(value)
	if s == "" {
		n.adjust(field, value, FieldDefaults[field], ReasonMissing)
		return def
	}
	prefix := leadingNumber.FindString(s)
	if prefix == "" {
		n.adjust(field, value, FieldDefaults[field], ReasonNotANumber)
		return def
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		n.adjust(field, value, FieldDefaults[field], ReasonNotANumber)
		return def
	}
	// amounts must be finite float64 values; huge exponents never reach the engine
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsInf(f, 0) || (f == 0 && !d.IsZero()) {
		n.adjust(field, value, FieldDefaults[field], ReasonOutOfRange)
		return def
	}
	if d.Exponent() < -maxAmountScale {
		d = decimal.NewFromFloat(f)
	}
	if d.IsNegative() {
		n.adjust(field, value, FieldDefaults[field], ReasonNegative)
		return def
	}
	if prefix != s {
		n.adjust(field, value, d.String(), ReasonNormalizedValue)
	}
	return d
}

func (n *normalizer) filingStatus(value string) domain.FilingStatus {
	s := strings.TrimSpace(value)
	if s == "" {
		n.adjust(FieldFilingStatus, value, FieldDefaults[FieldFilingStatus], ReasonMissing)
		return domain.FilingSingle
	}
	for _, fs := range domain.FilingStatuses {
		if strings.EqualFold(s, string(fs)) {
			return fs
		}
	}
	n.adjust(FieldFilingStatus, value, FieldDefaults[FieldFilingStatus], ReasonUnknownStatus)
	return domain.FilingSingle
}

func (n *normalizer) payFrequency(value string) domain.PayFrequency {
	s := strings.TrimSpace(value)
	if s == "" {
		n.adjust(FieldPayFrequency, value, FieldDefaults[FieldPayFrequency], ReasonMissing)
		return domain.PayBiweekly
	}
	pf := domain.PayFrequency(strings.ToLower(s))
	if !pf.IsValid() {
		n.adjust(FieldPayFrequency, value, FieldDefaults[FieldPayFrequency], ReasonUnknownFreq)
		return domain.PayBiweekly
	}
	return pf
}

func (n *normalizer) clock(field, value string) (domain.ClockTime, error) {
	ct, err := domain.ParseClockTime(n.text(field, value))
	if err != nil {
		return domain.ClockTime{}, fmt.Errorf("%s: %w", field, err)
	}
	return ct, nil
}

func (n *normalizer) date(field, value string) (time.Time, error) {
	s := n.text(field, value)
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w: %q", field, ErrInvalidDate, s)
	}
	return t, nil
}

// Normalize turns raw form or file input into a complete engine request. Malformed
// numbers and unknown enum values are replaced from FieldDefaults and reported as
// adjustments; only unparseable clock times and dates are errors. State codes are
// upper-cased here and resolved against the tax tables by the engine.
func Normalize(raw RawPaystubRequest) (domain.PaystubRequest, []Adjustment, error) {
	n := &normalizer{}
	e := raw.Employee
	d := e.Deductions

	req := domain.PaystubRequest{
		Employee: domain.EmployeeProfile{
			Name:          n.text(FieldName, e.Name),
			EmployeeID:    n.text(FieldEmployeeID, e.EmployeeID),
			Address:       n.text(FieldAddress, e.Address),
			HourlyRate:    n.amount(FieldHourlyRate, e.HourlyRate),
			FilingStatus:  n.filingStatus(e.FilingStatus),
			StateCode:     strings.ToUpper(n.text(FieldStateCode, e.StateCode)),
			PayFrequency:  n.payFrequency(e.PayFrequency),
			YTDGrossPrior: n.amount(FieldYTDGross, e.YTDGross),
			Deductions: domain.ElectedDeductions{
				Health:                n.amount(FieldHealth, d.Health),
				Dental:                n.amount(FieldDental, d.Dental),
				Retirement401kPercent: n.amount(FieldRetirement401, d.Retirement401k),
				HSA:                   n.amount(FieldHSA, d.HSA),
				Parking:               n.amount(FieldParking, d.Parking),
				LifeInsurance:         n.amount(FieldLifeInsurance, d.LifeInsurance),
				Garnishment:           n.amount(FieldGarnishment, d.Garnishment),
			},
		},
	}

	var err error
	if req.TimeWorked.ClockIn, err = n.clock(FieldClockIn, raw.TimeWorked.ClockIn); err != nil {
		return domain.PaystubRequest{}, n.adjustments, err
	}
	if req.TimeWorked.ClockOut, err = n.clock(FieldClockOut, raw.TimeWorked.ClockOut); err != nil {
		return domain.PaystubRequest{}, n.adjustments, err
	}
	if req.PayPeriod.Start, err = n.date(FieldPeriodStart, raw.PayPeriod.Start); err != nil {
		return domain.PaystubRequest{}, n.adjustments, err
	}
	if req.PayPeriod.End, err = n.date(FieldPeriodEnd, raw.PayPeriod.End); err != nil {
		return domain.PaystubRequest{}, n.adjustments, err
	}

	return req, n.adjustments, nil
}
