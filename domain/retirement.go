package domain

// Request field names accepted by the calculator.
const (
	FieldMonthlyCosts              = "monthlyCosts"
	FieldMonthlyIncome             = "monthlyIncome"
	FieldYearsUntilRetirement      = "yearsUntilRetirement"
	FieldYearsInRetirement         = "yearsInRetirement"
	FieldInflation                 = "inflation"
	FieldPreRateOfReturn           = "preRateOfReturn"
	FieldPostRateOfReturn          = "postRateOfReturn"
	FieldTaxRate                   = "taxRate"
	FieldCurrentTaxDeferredCapital = "currentTaxDeferredCapital"
)

// RequiredFields returns the fields every calculation needs, in the order
// validation reports them.
func RequiredFields() []string {
	return []string{
		FieldMonthlyCosts,
		FieldYearsInRetirement,
		FieldYearsUntilRetirement,
		FieldInflation,
		FieldPreRateOfReturn,
		FieldPostRateOfReturn,
		FieldTaxRate,
		FieldCurrentTaxDeferredCapital,
		FieldMonthlyIncome,
	}
}

// CalcInput holds the assumptions of a retirement projection. Rates are
// percentages (3 means 3%).
type CalcInput struct {
	MonthlyCosts              float64 `json:"monthlyCosts"`
	MonthlyIncome             float64 `json:"monthlyIncome"`
	YearsUntilRetirement      float64 `json:"yearsUntilRetirement"`
	YearsInRetirement         float64 `json:"yearsInRetirement"`
	Inflation                 float64 `json:"inflation"`
	PreRateOfReturn           float64 `json:"preRateOfReturn"`
	PostRateOfReturn          float64 `json:"postRateOfReturn"`
	TaxRate                   float64 `json:"taxRate"`
	CurrentTaxDeferredCapital float64 `json:"currentTaxDeferredCapital"`
}

// CalcResult amounts are rendered with exactly two decimals.
type CalcResult struct {
	AtRetirementCapitalRequired string `json:"atRetirementCapitalRequired"`
	AnnualSavingsRequired       string `json:"annualSavingsRequired"`
	MonthlySavingsRequired      string `json:"monthlySavingsRequired"`
}

type CalcError struct {
	Error    string `json:"error"`
	Required string `json:"required,omitempty"`
}
