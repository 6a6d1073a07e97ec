package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hance08/findpayments/internal/model"
	"github.com/hance08/findpayments/internal/report"
	"github.com/hance08/findpayments/internal/service"
	"github.com/hance08/findpayments/internal/ui"
	"github.com/hance08/findpayments/internal/ui/prompts"
	"github.com/hance08/findpayments/internal/ui/views"
	"github.com/hance08/findpayments/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type findFlags struct {
	Name   string
	AFM    string
	Year   int
	CSV    string
	Quiet  bool
	Totals bool
	Force  bool
}

type findRunner struct {
	svc   *service.Service
	flags *findFlags
	cmd   *cobra.Command

	// promptAFM is swapped in tests
	promptAFM func([]model.Candidate) (string, error)
}

func (r *findRunner) Run(ctx context.Context) error {
	year := r.flags.Year
	if !r.cmd.Flags().Changed("year") {
		year = r.svc.Config.Defaults.Year
	}
	if err := validation.ValidateYear(year); err != nil {
		r.warning().Printf("%v, searching anyway\n", err)
	}

	if r.flags.CSV != "" && !r.flags.Force {
		proceed, err := confirmOverwrite(r.flags.CSV)
		if err != nil {
			return err
		}
		if !proceed {
			r.warning().Println("Operation Cancelled")
			return nil
		}
	}

	afm, err := r.resolveAFM(ctx)
	if err != nil {
		return err
	}

	if err := validation.ValidateAFM(afm); err != nil {
		r.warning().Printf("%v, searching anyway\n", err)
	} else if !validation.HasValidChecksum(afm) {
		r.warning().Printf("AFM %s fails the check digit test, searching anyway\n", afm)
	}

	slog.InfoContext(ctx, "collecting payments", "afm", afm, "year", year)
	payments, err := r.svc.Payment.CollectPayments(ctx, afm, year)
	if err != nil {
		return err
	}

	if !r.flags.Quiet {
		ui.PrintTitle(r.cmd.OutOrStdout(), "Payments to %s in %d", afm, year)
	}

	totals, err := r.report(payments)
	if err != nil {
		return err
	}

	if len(payments) == 0 {
		r.warning().Printf("No payments found for AFM %s in %d\n", afm, year)
	}

	if r.flags.Totals {
		if err := views.NewTotalsView().Render(r.cmd.OutOrStdout(), totals); err != nil {
			return err
		}
	}

	if r.flags.CSV != "" {
		pterm.Success.WithWriter(r.cmd.ErrOrStderr()).Printf("Saved %d payments to %s\n", len(payments), r.flags.CSV)
	}

	return nil
}

func (r *findRunner) resolveAFM(ctx context.Context) (string, error) {
	if r.flags.Name == "" {
		return r.flags.AFM, nil
	}

	candidates, err := r.svc.Beneficiary.ResolveName(ctx, r.flags.Name)
	if err != nil {
		return "", err
	}

	if err := views.NewCandidateListView().Render(r.cmd.OutOrStdout(), r.flags.Name, candidates); err != nil {
		return "", err
	}

	prompt := r.promptAFM
	if prompt == nil {
		prompt = prompts.PromptAFM
	}
	return prompt(candidates)
}

// report prints payments and writes the CSV export. The export file is
// opened only after collection succeeded and closed on every path.
func (r *findRunner) report(payments []model.Payment) (totals *report.Totals, err error) {
	opts := report.Options{
		Quiet: r.flags.Quiet,
		Out:   r.cmd.OutOrStdout(),
	}

	if r.flags.CSV != "" {
		f, ferr := os.Create(r.flags.CSV)
		if ferr != nil {
			return nil, fmt.Errorf("failed to create csv file: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close csv file: %w", cerr)
			}
		}()
		opts.CSV = f
	}

	return report.New(opts).Report(payments)
}

// warning writes status lines to the command's stderr.
func (r *findRunner) warning() *pterm.PrefixPrinter {
	return pterm.Warning.WithWriter(r.cmd.ErrOrStderr())
}

// confirmOverwrite asks before an existing export is replaced. Without a
// terminal on stdin nobody can answer, so the file is replaced.
func confirmOverwrite(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf("failed to check csv file: %w", err)
	}

	if !prompts.IsTerminal(os.Stdin) {
		slog.Warn("replacing existing csv file", "path", path)
		return true, nil
	}
	return prompts.ConfirmOverwrite(path)
}
