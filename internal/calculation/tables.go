package calculation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidTaxTable is returned when reference tables break the bracket or rate invariants
var ErrInvalidTaxTable = errors.New("invalid tax table")

// TaxTableProvider serves validated, read-only tax tables to the calculators.
// It keeps its own copy of the tables; callers cannot mutate it after construction.
type TaxTableProvider struct {
	tables domain.TaxTables
}

// NewTaxTableProvider validates the tables and takes a private copy of them
func NewTaxTableProvider(tables domain.TaxTables) (*TaxTableProvider, error) {
	if err := ValidateTaxTables(tables); err != nil {
		return nil, err
	}
	return &TaxTableProvider{tables: cloneTaxTables(tables)}, nil
}

// NewDefaultTaxTableProvider returns a provider over the built-in 2024 tables
func NewDefaultTaxTableProvider() *TaxTableProvider {
	p, err := NewTaxTableProvider(DefaultTaxTables2024())
	if err != nil {
		// built-in data is a compile-time constant; failing here is a programming error
		panic(err)
	}
	return p
}

// Year returns the tax year the tables describe
func (p *TaxTableProvider) Year() int {
	return p.tables.Year
}

// Tables returns a copy of the underlying tables
func (p *TaxTableProvider) Tables() domain.TaxTables {
	return cloneTaxTables(p.tables)
}

// Brackets returns the annual brackets for a filing status, falling back to single
func (p *TaxTableProvider) Brackets(status domain.FilingStatus) []domain.TaxBracket {
	brackets, ok := p.tables.FederalBrackets[status]
	if !ok {
		brackets = p.tables.FederalBrackets[domain.FilingSingle]
	}
	return cloneBrackets(brackets)
}

// StandardDeduction returns the annual standard deduction for a filing status, falling back to single
func (p *TaxTableProvider) StandardDeduction(status domain.FilingStatus) decimal.Decimal {
	if d, ok := p.tables.StandardDeductions[status]; ok {
		return d
	}
	return p.tables.StandardDeductions[domain.FilingSingle]
}

// FICA returns the Social Security and Medicare parameters
func (p *TaxTableProvider) FICA() domain.FICAConfig {
	return p.tables.FICA
}

// State returns the configuration for a state code and the key actually used.
// Unknown codes resolve to DEFAULT.
func (p *TaxTableProvider) State(code string) (domain.StateTaxConfig, string) {
	if cfg, ok := p.tables.States[code]; ok {
		return cfg, code
	}
	return p.tables.States[domain.DefaultStateCode], domain.DefaultStateCode
}

// StateCodes lists the configured state codes in sorted order
func (p *TaxTableProvider) StateCodes() []string {
	codes := make([]string, 0, len(p.tables.States))
	for code := range p.tables.States {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ValidateTaxTables checks that every bracket table partitions [0, inf) and all rates are sane
func ValidateTaxTables(t domain.TaxTables) error {
	if _, ok := t.FederalBrackets[domain.FilingSingle]; !ok {
		return fmt.Errorf("%w: brackets for %q are required", ErrInvalidTaxTable, domain.FilingSingle)
	}
	if _, ok := t.StandardDeductions[domain.FilingSingle]; !ok {
		return fmt.Errorf("%w: standard deduction for %q is required", ErrInvalidTaxTable, domain.FilingSingle)
	}

	for status, brackets := range t.FederalBrackets {
		if !status.IsValid() {
			return fmt.Errorf("%w: unknown filing status %q", ErrInvalidTaxTable, status)
		}
		if err := validateBrackets(brackets); err != nil {
			return fmt.Errorf("%w: brackets for %s: %v", ErrInvalidTaxTable, status, err)
		}
	}
	for status, d := range t.StandardDeductions {
		if !status.IsValid() {
			return fmt.Errorf("%w: unknown filing status %q", ErrInvalidTaxTable, status)
		}
		if d.IsNegative() {
			return fmt.Errorf("%w: standard deduction for %s cannot be negative", ErrInvalidTaxTable, status)
		}
	}

	ss := t.FICA.SocialSecurity
	if !isRate(ss.Rate) {
		return fmt.Errorf("%w: social security rate %s must be between 0 and 1", ErrInvalidTaxTable, ss.Rate)
	}
	if !ss.WageBase.IsPositive() {
		return fmt.Errorf("%w: social security wage base must be positive", ErrInvalidTaxTable)
	}
	med := t.FICA.Medicare
	if !isRate(med.Rate) || !isRate(med.AdditionalRate) {
		return fmt.Errorf("%w: medicare rates must be between 0 and 1", ErrInvalidTaxTable)
	}
	if med.AdditionalThreshold.IsNegative() {
		return fmt.Errorf("%w: additional medicare threshold cannot be negative", ErrInvalidTaxTable)
	}

	if _, ok := t.States[domain.DefaultStateCode]; !ok {
		return fmt.Errorf("%w: state table must define %s", ErrInvalidTaxTable, domain.DefaultStateCode)
	}
	for code, st := range t.States {
		if !isRate(st.Rate) || !isRate(st.SDIRate) {
			return fmt.Errorf("%w: state %s rates must be between 0 and 1", ErrInvalidTaxTable, code)
		}
		if st.SDIWageBase.IsNegative() {
			return fmt.Errorf("%w: state %s SDI wage base cannot be negative", ErrInvalidTaxTable, code)
		}
	}
	return nil
}

// validateBrackets enforces ascending, contiguous, non-overlapping brackets starting at
// zero with only the final bracket unbounded
func validateBrackets(brackets []domain.TaxBracket) error {
	if len(brackets) == 0 {
		return errors.New("no brackets")
	}
	if !brackets[0].Min.IsZero() {
		return fmt.Errorf("first bracket starts at %s, not 0", brackets[0].Min)
	}
	last := len(brackets) - 1
	for i, b := range brackets {
		if !isRate(b.Rate) {
			return fmt.Errorf("bracket %d rate %s must be between 0 and 1", i, b.Rate)
		}
		if i == last {
			if !b.Unbounded() {
				return fmt.Errorf("final bracket must be unbounded, has max %s", b.Max)
			}
			break
		}
		if b.Unbounded() {
			return fmt.Errorf("bracket %d is unbounded but is not the final bracket", i)
		}
		if !b.Max.GreaterThan(b.Min) {
			return fmt.Errorf("bracket %d max %s must exceed min %s", i, b.Max, b.Min)
		}
		if next := brackets[i+1]; !next.Min.Equal(*b.Max) {
			return fmt.Errorf("gap or overlap between bracket %d (max %s) and %d (min %s)", i, b.Max, i+1, next.Min)
		}
	}
	return nil
}

func isRate(r decimal.Decimal) bool {
	return !r.IsNegative() && r.LessThanOrEqual(decimal.NewFromInt(1))
}

func cloneBrackets(in []domain.TaxBracket) []domain.TaxBracket {
	out := make([]domain.TaxBracket, len(in))
	for i, b := range in {
		out[i] = domain.TaxBracket{Min: b.Min, Rate: b.Rate}
		if b.Max != nil {
			m := *b.Max
			out[i].Max = &m
		}
	}
	return out
}

func cloneTaxTables(t domain.TaxTables) domain.TaxTables {
	out := t
	out.FederalBrackets = make(map[domain.FilingStatus][]domain.TaxBracket, len(t.FederalBrackets))
	for status, brackets := range t.FederalBrackets {
		out.FederalBrackets[status] = cloneBrackets(brackets)
	}
	out.StandardDeductions = make(map[domain.FilingStatus]decimal.Decimal, len(t.StandardDeductions))
	for status, d := range t.StandardDeductions {
		out.StandardDeductions[status] = d
	}
	out.States = make(map[string]domain.StateTaxConfig, len(t.States))
	for code, st := range t.States {
		out.States[code] = st
	}
	return out
}
