package output

// DefaultAssumptions lists the estimation notes printed on detailed stubs.
var DefaultAssumptions = []string{
	"Year-to-date figures are projected from this period's amounts and the estimated period number.",
	"Social Security uses prior YTD gross pay as the wage base measure.",
	"Federal withholding annualizes period wages and applies the standard deduction only.",
	"State withholding is a flat rate on income-taxable wages.",
}
