package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// Deduction item names accepted by SetDeduction
const (
	ItemHealth        = "health"
	ItemDental        = "dental"
	ItemHSA           = "hsa"
	ItemParking       = "parking"
	ItemLifeInsurance = "life_insurance"
	ItemGarnishment   = "garnishment"
)

// deductionFields maps an item name to its field on the elections
var deductionFields = map[string]func(*domain.ElectedDeductions) *decimal.Decimal{
	ItemHealth:        func(e *domain.ElectedDeductions) *decimal.Decimal { return &e.Health },
	ItemDental:        func(e *domain.ElectedDeductions) *decimal.Decimal { return &e.Dental },
	ItemHSA:           func(e *domain.ElectedDeductions) *decimal.Decimal { return &e.HSA },
	ItemParking:       func(e *domain.ElectedDeductions) *decimal.Decimal { return &e.Parking },
	ItemLifeInsurance: func(e *domain.ElectedDeductions) *decimal.Decimal { return &e.LifeInsurance },
	ItemGarnishment:   func(e *domain.ElectedDeductions) *decimal.Decimal { return &e.Garnishment },
}

// DeductionItems lists the item names SetDeduction accepts
func DeductionItems() []string {
	items := make([]string, 0, len(deductionFields))
	for item := range deductionFields {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// SetDeduction replaces one fixed per-period deduction amount
type SetDeduction struct {
	Item   string
	Amount decimal.Decimal
}

func (t *SetDeduction) Apply(base domain.PaystubRequest) (domain.PaystubRequest, error) {
	field, ok := deductionFields[t.Item]
	if !ok {
		return base, NewTransformError(t.Name(), "apply", fmt.Sprintf("unknown deduction %q", t.Item), nil)
	}
	*field(&base.Employee.Deductions) = t.Amount
	return base, nil
}

func (t *SetDeduction) Name() string { return "set_deduction" }

func (t *SetDeduction) Description() string {
	return fmt.Sprintf("Set %s to $%s per period", strings.ReplaceAll(t.Item, "_", " "), t.Amount.StringFixed(2))
}

func (t *SetDeduction) Validate(base domain.PaystubRequest) error {
	if _, ok := deductionFields[t.Item]; !ok {
		return NewTransformError(t.Name(), "validate",
			fmt.Sprintf("unknown deduction %q (available: %s)", t.Item, strings.Join(DeductionItems(), ", ")), nil)
	}
	if t.Amount.IsNegative() {
		return NewTransformError(t.Name(), "validate", "amount cannot be negative", nil)
	}
	return nil
}

// SetRetirement401k changes the 401(k) deferral percentage of gross
type SetRetirement401k struct {
	Percent decimal.Decimal
}

func (t *SetRetirement401k) Apply(base domain.PaystubRequest) (domain.PaystubRequest, error) {
	base.Employee.Deductions.Retirement401kPercent = t.Percent
	return base, nil
}

func (t *SetRetirement401k) Name() string { return "set_401k" }

func (t *SetRetirement401k) Description() string {
	return fmt.Sprintf("Defer %s%% of gross to the 401(k)", t.Percent.String())
}

func (t *SetRetirement401k) Validate(base domain.PaystubRequest) error {
	if t.Percent.IsNegative() || t.Percent.GreaterThan(hundred) {
		return NewTransformError(t.Name(), "validate", "percent must be between 0 and 100", nil)
	}
	return nil
}
