package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (RequestTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("set_rate", createSetHourlyRate)
	registry.Register("raise", createAdjustHourlyRate)
	registry.Register("set_filing_status", createSetFilingStatus)
	registry.Register("set_state", createSetState)
	registry.Register("set_frequency", createSetPayFrequency)
	registry.Register("set_shift", createSetShift)
	registry.Register("set_ytd", createSetYTDGross)

	// Deduction transforms
	registry.Register("set_401k", createSetRetirement401k)
	registry.Register("set_deduction", createSetDeduction)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (RequestTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms in sorted order.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "set_deduction:item=health,amount=75"
func (r *TransformRegistry) ParseTransformSpec(spec string) (RequestTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// Factory functions for each transform

func requireParam(transform string, params map[string]string, key string) (string, error) {
	value, ok := params[key]
	if !ok || value == "" {
		return "", fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	return value, nil
}

func decimalParam(transform string, params map[string]string, key string) (decimal.Decimal, error) {
	value, err := requireParam(transform, params, key)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

func createSetHourlyRate(params map[string]string) (RequestTransform, error) {
	rate, err := decimalParam("set_rate", params, "rate")
	if err != nil {
		return nil, err
	}
	return &SetHourlyRate{Rate: rate}, nil
}

func createAdjustHourlyRate(params map[string]string) (RequestTransform, error) {
	percent, err := decimalParam("raise", params, "percent")
	if err != nil {
		return nil, err
	}
	return &AdjustHourlyRate{Percent: percent}, nil
}

func createSetFilingStatus(params map[string]string) (RequestTransform, error) {
	value, err := requireParam("set_filing_status", params, "status")
	if err != nil {
		return nil, err
	}
	for _, fs := range domain.FilingStatuses {
		if strings.EqualFold(value, string(fs)) {
			return &SetFilingStatus{Status: fs}, nil
		}
	}
	return nil, fmt.Errorf("invalid status value: %q", value)
}

func createSetState(params map[string]string) (RequestTransform, error) {
	code, err := requireParam("set_state", params, "code")
	if err != nil {
		return nil, err
	}
	return &SetState{Code: strings.ToUpper(code)}, nil
}

func createSetPayFrequency(params map[string]string) (RequestTransform, error) {
	value, err := requireParam("set_frequency", params, "frequency")
	if err != nil {
		return nil, err
	}
	pf := domain.PayFrequency(strings.ToLower(value))
	if !pf.IsValid() {
		return nil, fmt.Errorf("invalid frequency value: %q", value)
	}
	return &SetPayFrequency{Frequency: pf}, nil
}

func createSetShift(params map[string]string) (RequestTransform, error) {
	inStr, err := requireParam("set_shift", params, "in")
	if err != nil {
		return nil, err
	}
	outStr, err := requireParam("set_shift", params, "out")
	if err != nil {
		return nil, err
	}
	in, err := domain.ParseClockTime(inStr)
	if err != nil {
		return nil, fmt.Errorf("invalid in value: %w", err)
	}
	out, err := domain.ParseClockTime(outStr)
	if err != nil {
		return nil, fmt.Errorf("invalid out value: %w", err)
	}
	return &SetShift{ClockIn: in, ClockOut: out}, nil
}

func createSetYTDGross(params map[string]string) (RequestTransform, error) {
	amount, err := decimalParam("set_ytd", params, "amount")
	if err != nil {
		return nil, err
	}
	return &SetYTDGross{Amount: amount}, nil
}

func createSetRetirement401k(params map[string]string) (RequestTransform, error) {
	percent, err := decimalParam("set_401k", params, "percent")
	if err != nil {
		return nil, err
	}
	return &SetRetirement401k{Percent: percent}, nil
}

func createSetDeduction(params map[string]string) (RequestTransform, error) {
	item, err := requireParam("set_deduction", params, "item")
	if err != nil {
		return nil, err
	}
	amount, err := decimalParam("set_deduction", params, "amount")
	if err != nil {
		return nil, err
	}
	return &SetDeduction{Item: strings.ToLower(item), Amount: amount}, nil
}
