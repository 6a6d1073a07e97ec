package cmd

import (
	"io"

	"github.com/hance08/findpayments/internal/app"
	"github.com/hance08/findpayments/internal/config"
	"github.com/hance08/findpayments/internal/constants"
	"github.com/hance08/findpayments/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	cfg *config.Config
}

func NewInfoCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display the configuration file in use, the registry endpoint and the search defaults.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				cfg: st.cfg,
			}

			return runner.Run(cmd.OutOrStdout())
		},
	}
}

func (r *infoRunner) Run(w io.Writer) error {
	configPath := r.cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	items := views.SystemInfoItem{
		ConfigPath: configPath,
		AppDataDir: appDataDirOrUnknown(),
		BaseURL:    r.cfg.API.BaseURL,
		PageSize:   constants.PageSize,
		Timeout:    timeoutLabel(r.cfg),
		Year:       r.cfg.Defaults.Year,
		Timezone:   r.cfg.Defaults.Timezone,
		LogLevel:   r.cfg.Log.Level,
	}

	return views.RenderSystemInfo(w, items)
}

func timeoutLabel(cfg *config.Config) string {
	if cfg.API.Timeout == 0 {
		return "none"
	}
	return cfg.API.Timeout.String()
}

func appDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
