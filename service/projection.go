package service

import (
	"math"

	"retirement-calc/domain"
)

func percentToDecimal(x float64) float64 {
	return x / PercentDivisor
}

// realRate subtracts inflation from a nominal rate. A real rate of exactly
// zero would divide by zero in the annuity factor, so it is replaced by
// ZeroRateEpsilon.
func realRate(nominal, inflation float64) float64 {
	r := nominal - inflation
	if r == 0 {
		return ZeroRateEpsilon
	}
	return r
}

// Project computes the capital required at retirement and the savings
// needed to reach it. It never fails; the result may be negative when the
// current capital already covers the need.
func Project(input domain.CalcInput) domain.CalcResult {
	inflation := percentToDecimal(input.Inflation)

	// necesidad del primer año, a valor futuro y neta de impuestos
	firstYearNeedNetTax := (input.MonthlyCosts - input.MonthlyIncome) *
		MonthsPerYear *
		math.Pow(1+inflation, input.YearsUntilRetirement)
	taxRate := percentToDecimal(input.TaxRate)
	// la conversión explícita impide que el compilador fusione en FMA
	grossFirstYearNeed := float64(firstYearNeedNetTax*taxRate) + firstYearNeedNetTax

	postRealRate := realRate(percentToDecimal(input.PostRateOfReturn), inflation)
	preRealRate := realRate(percentToDecimal(input.PreRateOfReturn), inflation)

	// valor presente de la anualidad el día del retiro
	annuityValue := float64(grossFirstYearNeed *
		(1/postRealRate -
			1/(postRealRate*math.Pow(1+postRealRate, input.YearsInRetirement))))

	// ambos productos se redondean antes de restar
	fvCurrentCapital := float64(input.CurrentTaxDeferredCapital *
		math.Pow(1+preRealRate, input.YearsUntilRetirement))

	fvAdditionalCapital := annuityValue - fvCurrentCapital

	// se descuenta a la tasa nominal, no a la real
	pvAdditionalCapital := fvAdditionalCapital /
		math.Pow(1+percentToDecimal(input.PreRateOfReturn), input.YearsUntilRetirement)

	annual := ToFixed2(pvAdditionalCapital / input.YearsUntilRetirement)

	return domain.CalcResult{
		AtRetirementCapitalRequired: ToFixed2(fvAdditionalCapital),
		AnnualSavingsRequired:       annual,
		MonthlySavingsRequired:      ToFixed2(parseFixed(annual) / MonthsPerYear),
	}
}
