package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/hance08/findpayments/internal/constants"
	"github.com/hance08/findpayments/internal/model"
	"github.com/hance08/findpayments/internal/utils"
)

type Options struct {
	// Quiet suppresses the per payment console lines.
	Quiet bool
	// Out receives console lines.
	Out io.Writer
	// CSV receives the export; nil disables it. The caller owns closing.
	CSV io.Writer
}

type Reporter struct {
	opts Options
}

func New(opts Options) *Reporter {
	return &Reporter{opts: opts}
}

// Report prints and exports payments in order and returns their totals.
func (r *Reporter) Report(payments []model.Payment) (*Totals, error) {
	var w *csv.Writer
	if r.opts.CSV != nil {
		var err error
		if w, err = startCSV(r.opts.CSV); err != nil {
			return nil, err
		}
	}

	totals := NewTotals()
	for _, p := range payments {
		if !r.opts.Quiet && r.opts.Out != nil {
			if _, err := fmt.Fprintf(r.opts.Out, "%s\t%s (%s)\t%s\t%s\n",
				utils.FormatAmount(p.Amount), p.Org, p.OrgAFM, p.Subject, p.URL); err != nil {
				return nil, fmt.Errorf("failed to print payment %s: %w", p.ADA, err)
			}
		}

		if w != nil {
			if err := w.Write(csvRow(p)); err != nil {
				return nil, fmt.Errorf("failed to write csv row %s: %w", p.ADA, err)
			}
		}

		totals.Add(p)
	}

	if w != nil {
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, fmt.Errorf("failed to flush csv: %w", err)
		}
	}

	return totals, nil
}

func startCSV(out io.Writer) (*csv.Writer, error) {
	if _, err := io.WriteString(out, constants.UTF8BOM); err != nil {
		return nil, fmt.Errorf("failed to write csv byte order mark: %w", err)
	}

	w := csv.NewWriter(out)
	if err := w.Write(constants.CSVHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	return w, nil
}

func csvRow(p model.Payment) []string {
	return []string{p.ADA, p.Org, p.OrgAFM, p.Subject, p.Date, p.Amount.String(), p.URL}
}
