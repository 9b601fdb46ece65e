package compare

import (
	"fmt"

	"github.com/rgehrsitz/paygo/internal/calculation"
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/rgehrsitz/paygo/internal/transform"
)

// BaseScenarioName labels the unmodified request
const BaseScenarioName = "base"

// CompareEngine orchestrates what-if comparison of paystub requests
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
	TransformRegistry *transform.TransformRegistry
}

// NewCompareEngine creates a new comparison engine. State templates are built from the
// engine's tax tables.
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(calcEngine.Tables.StateCodes()),
		TransformRegistry: transform.NewTransformRegistry(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	Templates  []string // Template names; each becomes one alternative
	Transforms []string // Transform specs; each becomes one alternative
	Combined   bool     // Apply all transform specs together as a single alternative
}

// Compare prices the base request and every alternative built from the options
func (ce *CompareEngine) Compare(base domain.PaystubRequest, options CompareOptions) (*ComparisonSet, error) {
	if len(options.Templates) == 0 && len(options.Transforms) == 0 {
		return nil, fmt.Errorf("at least one template or transform is required")
	}

	baseStub, err := ce.CalcEngine.GeneratePaystub(base)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base paystub: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(BaseScenarioName, baseStub)
	baseResult.Description = "Request as given"

	alternatives := []ComparisonResult{}
	addAlternative := func(name, description string, transforms []transform.RequestTransform) error {
		modified, err := transform.ApplyTransforms(base, transforms)
		if err != nil {
			return fmt.Errorf("failed to apply %s: %w", name, err)
		}
		stub, err := ce.CalcEngine.GeneratePaystub(modified)
		if err != nil {
			return fmt.Errorf("failed to calculate %s: %w", name, err)
		}
		result := ce.MetricsCalculator.CalculateMetrics(name, stub)
		result.Description = description
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(result, baseResult))
		return nil
	}

	for _, templateName := range options.Templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}
		if err := addAlternative(template.Name, template.Description, template.Transforms); err != nil {
			return nil, err
		}
	}

	parsed := make([]transform.RequestTransform, 0, len(options.Transforms))
	for _, spec := range options.Transforms {
		t, err := ce.TransformRegistry.ParseTransformSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid transform %q: %w", spec, err)
		}
		parsed = append(parsed, t)
	}

	if options.Combined && len(parsed) > 0 {
		if err := addAlternative("combined", describe(parsed), parsed); err != nil {
			return nil, err
		}
	} else {
		for i, t := range parsed {
			if err := addAlternative(options.Transforms[i], t.Description(), []transform.RequestTransform{t}); err != nil {
				return nil, err
			}
		}
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   BaseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func describe(transforms []transform.RequestTransform) string {
	s := ""
	for i, t := range transforms {
		if i > 0 {
			s += " + "
		}
		s += t.Description()
	}
	return s
}
