package service

import (
	"math"
	"strings"

	"retirement-calc/domain"
)

// ValidationError lists the required fields that were missing or did not
// hold a non-zero number, in required-field order.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return MsgInvalidParams + ": " + e.Required()
}

// Required joins the offending field names the way the API reports them.
func (e *ValidationError) Required() string {
	return strings.Join(e.Fields, FieldsSeparator)
}

// ValidateCalcParams checks params against the required field set. Fields
// that are absent or coerce to zero or NaN are reported; when none are,
// the coerced CalcInput is returned.
func ValidateCalcParams(params map[string]any) (domain.CalcInput, []string) {
	values := make(map[string]float64, len(params))
	invalid := []string{}

	for _, field := range domain.RequiredFields() {
		raw, ok := params[field]
		if !ok {
			invalid = append(invalid, field)
			continue
		}
		n := toNumber(raw)
		// cero y NaN cuentan como inválidos
		if n == 0 || math.IsNaN(n) {
			invalid = append(invalid, field)
			continue
		}
		values[field] = n
	}

	if len(invalid) > 0 {
		return domain.CalcInput{}, invalid
	}

	return domain.CalcInput{
		MonthlyCosts:              values[domain.FieldMonthlyCosts],
		MonthlyIncome:             values[domain.FieldMonthlyIncome],
		YearsUntilRetirement:      values[domain.FieldYearsUntilRetirement],
		YearsInRetirement:         values[domain.FieldYearsInRetirement],
		Inflation:                 values[domain.FieldInflation],
		PreRateOfReturn:           values[domain.FieldPreRateOfReturn],
		PostRateOfReturn:          values[domain.FieldPostRateOfReturn],
		TaxRate:                   values[domain.FieldTaxRate],
		CurrentTaxDeferredCapital: values[domain.FieldCurrentTaxDeferredCapital],
	}, nil
}
