package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"retirement-calc/domain"
	"retirement-calc/service"
)

// calcFlags maps CLI flags to request fields.
var calcFlags = []struct {
	flag  string
	field string
	usage string
}{
	{"monthly-costs", domain.FieldMonthlyCosts, "Monthly costs in retirement"},
	{"monthly-income", domain.FieldMonthlyIncome, "Monthly income in retirement (pension, social security)"},
	{"years-until", domain.FieldYearsUntilRetirement, "Years until retirement"},
	{"years-in", domain.FieldYearsInRetirement, "Years in retirement"},
	{"inflation", domain.FieldInflation, "Annual inflation, percent"},
	{"pre-return", domain.FieldPreRateOfReturn, "Annual return before retirement, percent"},
	{"post-return", domain.FieldPostRateOfReturn, "Annual return during retirement, percent"},
	{"tax-rate", domain.FieldTaxRate, "Tax rate on withdrawals, percent"},
	{"current-capital", domain.FieldCurrentTaxDeferredCapital, "Tax-deferred capital saved so far"},
}

// newCalcCmd builds the calc command with its own flag set.
func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Run one calculation from flags",
		Example: "  retirement-calc calc --monthly-costs 3000 --monthly-income 1000 \\\n" +
			"    --years-until 20 --years-in 25 --inflation 3 --pre-return 7 \\\n" +
			"    --post-return 5 --tax-rate 20 --current-capital 50000",
		RunE: runCalc,
	}
	for _, f := range calcFlags {
		cmd.Flags().Float64(f.flag, 0, f.usage)
	}
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}

func init() {
	rootCmd.AddCommand(newCalcCmd())
}

func runCalc(cmd *cobra.Command, _ []string) error {
	// solo se envían los flags que el usuario indicó
	params := map[string]any{}
	for _, f := range calcFlags {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		v, err := cmd.Flags().GetFloat64(f.flag)
		if err != nil {
			return err
		}
		params[f.field] = v
	}

	svc := service.NewRetirementService(nil, nil)
	result, err := svc.Calculate(cmd.Context(), params)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%s: %s", service.MsgInvalidParams, flagNames(verr.Fields))
		}
		return err
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderResult(params, result))
	return nil
}

func flagNames(fields []string) string {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		for _, f := range calcFlags {
			if f.field == field {
				names = append(names, "--"+f.flag)
			}
		}
	}
	return strings.Join(names, service.FieldsSeparator)
}
