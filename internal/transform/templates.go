package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in what-if templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Category    string
	Description string
	Transforms  []RequestTransform
}

// Template categories, in help display order
const (
	CategoryFilingStatus = "Filing Status"
	CategoryFrequency    = "Pay Frequency"
	CategoryState        = "State"
	CategoryCompensation = "Compensation & Deductions"
)

var categoryOrder = []string{CategoryFilingStatus, CategoryFrequency, CategoryState, CategoryCompensation}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names in sorted order
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a registry with one template per filing status, pay
// frequency and configured state code, plus common compensation changes
func CreateBuiltInTemplates(stateCodes []string) *TemplateRegistry {
	registry := NewTemplateRegistry()

	for _, fs := range domain.FilingStatuses {
		registry.Register(Template{
			Name:        "file_" + string(fs),
			Category:    CategoryFilingStatus,
			Description: fmt.Sprintf("File as %s", fs),
			Transforms:  []RequestTransform{&SetFilingStatus{Status: fs}},
		})
	}

	for _, pf := range domain.PayFrequencies {
		registry.Register(Template{
			Name:        "pay_" + string(pf),
			Category:    CategoryFrequency,
			Description: fmt.Sprintf("Pay %s (%d periods per year)", pf, pf.PeriodsPerYear()),
			Transforms:  []RequestTransform{&SetPayFrequency{Frequency: pf}},
		})
	}

	for _, code := range stateCodes {
		registry.Register(Template{
			Name:        "state_" + strings.ToLower(code),
			Category:    CategoryState,
			Description: fmt.Sprintf("Withhold state tax for %s", code),
			Transforms:  []RequestTransform{&SetState{Code: code}},
		})
	}

	registry.Register(Template{
		Name:        "raise_3pct",
		Category:    CategoryCompensation,
		Description: "Raise the hourly rate by 3%",
		Transforms:  []RequestTransform{&AdjustHourlyRate{Percent: decimal.NewFromInt(3)}},
	})

	registry.Register(Template{
		Name:        "raise_10pct",
		Category:    CategoryCompensation,
		Description: "Raise the hourly rate by 10%",
		Transforms:  []RequestTransform{&AdjustHourlyRate{Percent: decimal.NewFromInt(10)}},
	})

	registry.Register(Template{
		Name:        "no_401k",
		Category:    CategoryCompensation,
		Description: "Stop 401(k) deferrals",
		Transforms:  []RequestTransform{&SetRetirement401k{Percent: decimal.Zero}},
	})

	registry.Register(Template{
		Name:        "401k_6pct",
		Category:    CategoryCompensation,
		Description: "Defer 6% of gross to the 401(k)",
		Transforms:  []RequestTransform{&SetRetirement401k{Percent: decimal.NewFromInt(6)}},
	})

	registry.Register(Template{
		Name:        "401k_10pct",
		Category:    CategoryCompensation,
		Description: "Defer 10% of gross to the 401(k)",
		Transforms:  []RequestTransform{&SetRetirement401k{Percent: decimal.NewFromInt(10)}},
	})

	registry.Register(Template{
		Name:        "overnight_shift",
		Category:    CategoryCompensation,
		Description: "Work 22:00 to 06:00",
		Transforms: []RequestTransform{
			&SetShift{ClockIn: domain.MustParseClockTime("22:00"), ClockOut: domain.MustParseClockTime("06:00")},
		},
	})

	return registry
}

// ApplyTemplate applies a template to a base request
func ApplyTemplate(base domain.PaystubRequest, template Template) (domain.PaystubRequest, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	categories := make(map[string][]Template)
	for _, name := range registry.List() {
		t := registry.templates[name]
		categories[t.Category] = append(categories[t.Category], t)
	}

	for _, category := range categoryOrder {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-26s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  paygo compare request.yaml --with file_marriedJointly,state_ca\n")
	sb.WriteString("  paygo compare request.yaml --transform set_deduction:item=health,amount=75\n")

	return sb.String()
}
