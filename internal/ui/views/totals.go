package views

import (
	"fmt"
	"io"

	"github.com/hance08/findpayments/internal/report"
	"github.com/hance08/findpayments/internal/utils"
	"github.com/pterm/pterm"
)

type TotalsView struct{}

func NewTotalsView() *TotalsView {
	return &TotalsView{}
}

// Table lists organizations in the order they were first seen.
func (v *TotalsView) Table(totals *report.Totals) pterm.TableData {
	tableData := pterm.TableData{
		{"Organization", "AFM", "Payments", "Total"},
	}

	for _, org := range totals.Organizations() {
		tableData = append(tableData, []string{
			org.Name,
			org.AFM,
			fmt.Sprintf("%d", org.Count),
			utils.FormatAmount(org.Total),
		})
	}

	return tableData
}

func (v *TotalsView) Render(w io.Writer, totals *report.Totals) error {
	pterm.DefaultSection.WithWriter(w).Println("Totals by organization")

	if totals.Count() > 0 {
		if err := pterm.DefaultTable.WithWriter(w).WithHasHeader().WithRightAlignment().WithData(v.Table(totals)).Render(); err != nil {
			return err
		}
	}

	pterm.Success.WithWriter(w).Printf("Total payments: %s (%d payments)\n", utils.FormatAmount(totals.Grand()), totals.Count())
	return nil
}
