package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/report-lab/pkg/runtime/terminal/export"
	"github.com/de-tools/report-lab/pkg/services/report"

	"github.com/spf13/cobra"
)

type ExportCmd struct {
	profileFlags
	settingsPath string
	format       string
	out          string
	service      *report.Service
}

func NewExportCmd(service *report.Service) *cobra.Command {
	ec := &ExportCmd{service: service}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Build a report and write its tables to a file",
		RunE:  ec.run,
	}

	ec.register(cmd)
	cmd.Flags().StringVar(&ec.settingsPath, "settings", "", "Path to export settings (yaml)")
	cmd.Flags().StringVar(&ec.format, "format", "", "Output format: csv or xlsx")
	cmd.Flags().StringVar(&ec.out, "out", "", "Output file path")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	settings, err := LoadSettings(ec.settingsPath)
	if err != nil {
		return err
	}

	format := ec.format
	if format == "" {
		format = settings.Format
	}
	if format != "csv" && format != "xlsx" {
		return fmt.Errorf("unsupported export format %q (want csv or xlsx)", format)
	}

	profile, err := ec.resolve(cmd)
	if err != nil {
		return err
	}

	rep, err := ec.service.Build(cmd.Context(), profile)
	if err != nil {
		return fmt.Errorf("failed to build report for profile %q: %w", profile.Name, err)
	}

	out := ec.out
	if out == "" {
		out = filepath.Join(settings.OutputDir, fmt.Sprintf("%s.%s", profile.Name, format))
	}

	switch format {
	case "csv":
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer f.Close()
		if err := export.NewCSVExporter(f).Handle(rep); err != nil {
			return err
		}
	case "xlsx":
		if err := export.NewExcelExporter(out).Handle(rep); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Report %s written to %s\n", rep.ID, out)
	return nil
}
