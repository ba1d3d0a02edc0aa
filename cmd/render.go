package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"retirement-calc/domain"
)

var (
	colorBorder = lipgloss.Color("#282726")
	colorText   = lipgloss.Color("#FFFCF0")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorRed    = lipgloss.Color("#D14D41")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	valueStyle = lipgloss.NewStyle().Foreground(colorText)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)

// renderResult draws the assumptions and the result as two bordered
// sections.
func renderResult(params map[string]any, result domain.CalcResult) string {
	assumptions := make([][2]string, 0, len(calcFlags))
	for _, f := range calcFlags {
		assumptions = append(assumptions, [2]string{f.usage, fmt.Sprintf("%v", params[f.field])})
	}

	outcome := [][2]string{
		{"Capital required at retirement", result.AtRetirementCapitalRequired},
		{"Annual savings required", result.AnnualSavingsRequired},
		{"Monthly savings required", result.MonthlySavingsRequired},
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		boxStyle.Render(titleStyle.Render("ASSUMPTIONS")+"\n"+renderRows(assumptions, nil)),
		boxStyle.Render(titleStyle.Render("RETIREMENT PLAN")+"\n"+renderRows(outcome, amountStyle)),
	)
}

func renderRows(rows [][2]string, style func(string) lipgloss.Style) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r[0]))
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		vs := valueStyle
		if style != nil {
			vs = style(r[1])
		}
		label := labelStyle.Width(width + 2).Render(r[0])
		lines[i] = label + vs.Render(r[1])
	}
	return strings.Join(lines, "\n")
}

// amountStyle paints surpluses (negative requirements) green and
// shortfalls red.
func amountStyle(amount string) lipgloss.Style {
	if strings.HasPrefix(amount, "-") {
		return lipgloss.NewStyle().Foreground(colorGreen)
	}
	return lipgloss.NewStyle().Foreground(colorRed)
}
