package transform

import (
	"strings"
	"testing"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

func TestTransformRegistry_ParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()
	base := createTestRequest()

	tests := []struct {
		spec  string
		check func(domain.PaystubRequest) bool
	}{
		{"set_rate:rate=32.50", func(r domain.PaystubRequest) bool {
			return r.Employee.HourlyRate.Equal(decimal.RequireFromString("32.5"))
		}},
		{"raise:percent=4", func(r domain.PaystubRequest) bool { return r.Employee.HourlyRate.Equal(decimal.NewFromInt(26)) }},
		{"set_filing_status:status=headofhousehold", func(r domain.PaystubRequest) bool {
			return r.Employee.FilingStatus == domain.FilingHeadOfHousehold
		}},
		{"set_state:code=ny", func(r domain.PaystubRequest) bool { return r.Employee.StateCode == "NY" }},
		{"set_frequency:frequency=Monthly", func(r domain.PaystubRequest) bool { return r.Employee.PayFrequency == domain.PayMonthly }},
		{"set_shift:in=09:00,out=18:30", func(r domain.PaystubRequest) bool { return r.TimeWorked.ClockOut.String() == "18:30" }},
		{"set_ytd:amount=1200", func(r domain.PaystubRequest) bool { return r.Employee.YTDGrossPrior.Equal(decimal.NewFromInt(1200)) }},
		{"set_401k:percent=0", func(r domain.PaystubRequest) bool { return r.Employee.Deductions.Retirement401kPercent.IsZero() }},
		{"set_deduction: item = Dental , amount = 12", func(r domain.PaystubRequest) bool {
			return r.Employee.Deductions.Dental.Equal(decimal.NewFromInt(12))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			transform, err := registry.ParseTransformSpec(tt.spec)
			if err != nil {
				t.Fatalf("ParseTransformSpec(%q) error: %v", tt.spec, err)
			}
			result, err := ApplyTransforms(base, []RequestTransform{transform})
			if err != nil {
				t.Fatalf("Apply error: %v", err)
			}
			if !tt.check(result) {
				t.Errorf("Transform %q did not produce the expected request", tt.spec)
			}
		})
	}
}

func TestTransformRegistry_ParseErrors(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		spec    string
		wantMsg string
	}{
		{"set_rate", "expected 'name:params'"},
		{"set_rate:30", "expected 'key=value'"},
		{"bogus:x=1", "unknown transform"},
		{"set_rate:", "requires 'rate'"},
		{"set_rate:rate=abc", "invalid rate value"},
		{"set_filing_status:status=married", "invalid status value"},
		{"set_frequency:frequency=daily", "invalid frequency value"},
		{"set_shift:in=09:00", "requires 'out'"},
		{"set_shift:in=9am,out=17:00", "invalid in value"},
		{"set_deduction:amount=5", "requires 'item'"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := registry.ParseTransformSpec(tt.spec)
			if err == nil {
				t.Fatalf("Expected error for %q", tt.spec)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Expected error containing %q, got %v", tt.wantMsg, err)
			}
		})
	}
}

func TestTransformRegistry_List(t *testing.T) {
	names := NewTransformRegistry().List()
	if len(names) != 9 {
		t.Errorf("Expected 9 transforms, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("List is not sorted: %v", names)
		}
	}
}

func TestCreateBuiltInTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates([]string{"CA", "TX"})

	for _, name := range []string{"file_marriedJointly", "FILE_SINGLE", "pay_weekly", "state_ca", "state_tx", "raise_3pct", "no_401k", "overnight_shift"} {
		if _, ok := registry.Get(name); !ok {
			t.Errorf("Expected template %s", name)
		}
	}
	if _, ok := registry.Get("state_ny"); ok {
		t.Error("Did not expect a template for an unconfigured state")
	}

	tmpl, _ := registry.Get("state_ca")
	result, err := ApplyTemplate(createTestRequest(), tmpl)
	if err != nil {
		t.Fatalf("ApplyTemplate error: %v", err)
	}
	if result.Employee.StateCode != "CA" {
		t.Errorf("Expected CA, got %s", result.Employee.StateCode)
	}

	tmpl, _ = registry.Get("raise_10pct")
	result, err = ApplyTemplate(createTestRequest(), tmpl)
	if err != nil {
		t.Fatalf("ApplyTemplate error: %v", err)
	}
	if !result.Employee.HourlyRate.Equal(decimal.RequireFromString("27.5")) {
		t.Errorf("Expected 27.50, got %s", result.Employee.HourlyRate)
	}
}

func TestParseTemplateList(t *testing.T) {
	if got := ParseTemplateList(""); got != nil {
		t.Errorf("Expected nil, got %v", got)
	}
	got := ParseTemplateList(" state_ca, ,pay_weekly ")
	if len(got) != 2 || got[0] != "state_ca" || got[1] != "pay_weekly" {
		t.Errorf("Unexpected list %v", got)
	}
}

func TestGetTemplateHelp(t *testing.T) {
	if got := GetTemplateHelp(NewTemplateRegistry()); got != "No templates registered" {
		t.Errorf("Unexpected help for empty registry: %q", got)
	}

	help := GetTemplateHelp(CreateBuiltInTemplates([]string{"CA"}))
	for _, want := range []string{"Filing Status:", "Pay Frequency:", "State:", "Compensation & Deductions:", "state_ca", "paygo compare"} {
		if !strings.Contains(help, want) {
			t.Errorf("Expected help to contain %q", want)
		}
	}
	if strings.Index(help, "Filing Status:") > strings.Index(help, "State:") {
		t.Error("Expected categories in display order")
	}
}
