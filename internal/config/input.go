package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/paygo/internal/domain"
	"gopkg.in/yaml.v3"
)

// RawPaystubRequest is a paystub request as it arrives from a form or file. Every
// value is kept as text so malformed numbers can be coerced instead of failing the parse.
type RawPaystubRequest struct {
	Employee   RawEmployee   `yaml:"employee" json:"employee"`
	TimeWorked RawTimeWorked `yaml:"time_worked" json:"time_worked"`
	PayPeriod  RawPayPeriod  `yaml:"pay_period" json:"pay_period"`
}

// RawEmployee is the unvalidated employee section
type RawEmployee struct {
	Name         string        `yaml:"name" json:"name"`
	EmployeeID   string        `yaml:"employee_id" json:"employee_id"`
	Address      string        `yaml:"address" json:"address"`
	HourlyRate   string        `yaml:"hourly_rate" json:"hourly_rate"`
	FilingStatus string        `yaml:"filing_status" json:"filing_status"`
	StateCode    string        `yaml:"state_code" json:"state_code"`
	PayFrequency string        `yaml:"pay_frequency" json:"pay_frequency"`
	YTDGross     string        `yaml:"ytd_gross" json:"ytd_gross"`
	Deductions   RawDeductions `yaml:"deductions" json:"deductions"`
}

// RawDeductions is the unvalidated deduction elections. Retirement401k is a percent of gross.
type RawDeductions struct {
	Health         string `yaml:"health" json:"health"`
	Dental         string `yaml:"dental" json:"dental"`
	Retirement401k string `yaml:"retirement_401k_percent" json:"retirement_401k_percent"`
	HSA            string `yaml:"hsa" json:"hsa"`
	Parking        string `yaml:"parking" json:"parking"`
	LifeInsurance  string `yaml:"life_insurance" json:"life_insurance"`
	Garnishment    string `yaml:"garnishment" json:"garnishment"`
}

// RawTimeWorked holds HH:MM clock strings
type RawTimeWorked struct {
	ClockIn  string `yaml:"clock_in" json:"clock_in"`
	ClockOut string `yaml:"clock_out" json:"clock_out"`
}

// RawPayPeriod holds YYYY-MM-DD date strings
type RawPayPeriod struct {
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

// InputParser handles parsing of paystub request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a raw request from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*RawPaystubRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes a raw request from YAML or JSON bytes
func (ip *InputParser) Parse(data []byte) (*RawPaystubRequest, error) {
	var raw RawPaystubRequest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &raw, nil
}

// LoadRequest loads and normalizes a request file in one step
func (ip *InputParser) LoadRequest(filename string) (domain.PaystubRequest, []Adjustment, error) {
	raw, err := ip.LoadFromFile(filename)
	if err != nil {
		return domain.PaystubRequest{}, nil, err
	}
	req, adjustments, err := Normalize(*raw)
	if err != nil {
		return domain.PaystubRequest{}, adjustments, fmt.Errorf("request validation failed: %w", err)
	}
	return req, adjustments, nil
}
