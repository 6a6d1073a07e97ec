package views

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath string
	AppDataDir string
	BaseURL    string
	PageSize   int
	Timeout    string
	Year       int
	Timezone   string
	LogLevel   string
}

func RenderSystemInfo(w io.Writer, data SystemInfoItem) error {
	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"AppData Directory", data.AppDataDir},
		{"API Base URL", data.BaseURL},
		{"Page Size", fmt.Sprintf("%d", data.PageSize)},
		{"Request Timeout", data.Timeout},
		{"Default Year", fmt.Sprintf("%d", data.Year)},
		{"Time Zone", data.Timezone},
		{"Log Level", data.LogLevel},
	}

	return pterm.DefaultTable.WithWriter(w).WithData(tableData).Render()
}
