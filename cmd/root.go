package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/hance08/findpayments/internal/app"
	"github.com/hance08/findpayments/internal/config"
	"github.com/hance08/findpayments/internal/constants"
	"github.com/hance08/findpayments/internal/errhandler"
	"github.com/hance08/findpayments/internal/logging"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// state is filled by the root pre-run once flags are parsed.
type state struct {
	cfgFile  string
	logLevel string
	cfg      *config.Config
	app      *app.App
}

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		code := errhandler.HandleError(err)
		stop()
		os.Exit(code)
	}
}

func NewRootCmd() *cobra.Command {
	st := &state{}
	flags := &findFlags{}

	rootCmd := &cobra.Command{
		Use:   "findpayments (--name NAME | --afm AFM)",
		Short: "Public expenses downloader",
		Long: `findpayments searches the Diavgeia transparency registry for payments
made to a beneficiary, identified by name or by AFM, within one year.

With --name the receivers found are listed and you are asked for the AFM to use.`,
		Example: `  # Payments to a known AFM in 2015
  findpayments --afm 090000045

  # Look a beneficiary up by name, then export with totals
  findpayments --name "ΠΑΠΑΔΟΠΟΥΛΟΣ ΓΕΩΡΓΙΟΣ" --year 2016 --csv payments.csv --totals`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &findRunner{
				svc:   st.app.Service,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&st.cfgFile, "config", "", "set the config file path")
	rootCmd.PersistentFlags().StringVar(&st.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Name of the person to search for")
	rootCmd.Flags().StringVarP(&flags.AFM, "afm", "a", "", "AFM of the person to search for")
	rootCmd.Flags().IntVarP(&flags.Year, "year", "y", constants.DefaultYear, "Search for specific year")
	rootCmd.Flags().StringVarP(&flags.CSV, "csv", "c", "", "Save results to CSV file")
	rootCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Do not print results to output")
	rootCmd.Flags().BoolVarP(&flags.Totals, "totals", "t", false, "Calculate totals")
	rootCmd.Flags().BoolVarP(&flags.Force, "force", "f", false, "Overwrite an existing CSV file without asking")

	rootCmd.MarkFlagsMutuallyExclusive("name", "afm")
	rootCmd.MarkFlagsOneRequired("name", "afm")

	rootCmd.AddCommand(NewInfoCmd(st))

	return rootCmd
}

func (st *state) init() error {
	cfg, err := loadConfig(st.cfgFile)
	if err != nil {
		return err
	}
	if st.logLevel != "" {
		cfg.Log.Level = st.logLevel
	}
	st.cfg = cfg

	logging.Init(logging.ParseLevel(cfg.Log.Level))

	application, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	st.app = application

	return nil
}
