package views

import (
	"fmt"
	"io"
	"strings"

	"github.com/hance08/findpayments/internal/model"
	"github.com/hance08/findpayments/internal/validation"
	"github.com/pterm/pterm"
)

type CandidateListView struct{}

func NewCandidateListView() *CandidateListView {
	return &CandidateListView{}
}

// Table builds the AFM / names table, one row per candidate in the order given.
func (v *CandidateListView) Table(candidates []model.Candidate) pterm.TableData {
	tableData := pterm.TableData{
		{"AFM", "Name(s)", "Match"},
	}

	for _, c := range candidates {
		afm := c.AFM
		if !validation.HasValidChecksum(afm) {
			afm = pterm.Gray(afm)
		}

		tableData = append(tableData, []string{
			afm,
			strings.Join(c.Names, ", "),
			fmt.Sprintf("%.0f%%", c.Similarity*100),
		})
	}

	return tableData
}

func (v *CandidateListView) Render(w io.Writer, name string, candidates []model.Candidate) error {
	if len(candidates) == 0 {
		pterm.Warning.WithWriter(w).Printf("No receivers named %q found\n", name)
		return nil
	}

	pterm.DefaultSection.WithWriter(w).Printf("Receivers matching %q", name)
	if err := pterm.DefaultTable.WithWriter(w).WithHasHeader().WithData(v.Table(candidates)).Render(); err != nil {
		return err
	}
	pterm.Info.WithWriter(w).Printf("Total: %d AFMs\n", len(candidates))
	return nil
}
