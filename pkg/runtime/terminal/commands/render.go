package commands

import (
	"fmt"

	"github.com/de-tools/report-lab/pkg/runtime/terminal/export"
	"github.com/de-tools/report-lab/pkg/services/report"

	"github.com/spf13/cobra"
)

type RenderCmd struct {
	profileFlags
	service  *report.Service
	reporter *export.Reporter
}

func NewRenderCmd(service *report.Service, reporter *export.Reporter) *cobra.Command {
	rc := &RenderCmd{service: service, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build a report and render it to the terminal",
		RunE:  rc.run,
	}

	rc.register(cmd)

	return cmd
}

func (rc *RenderCmd) run(cmd *cobra.Command, args []string) error {
	profile, err := rc.resolve(cmd)
	if err != nil {
		return err
	}

	rep, err := rc.service.Build(cmd.Context(), profile)
	if err != nil {
		return fmt.Errorf("failed to build report for profile %q: %w", profile.Name, err)
	}

	return rc.reporter.Handle(rep)
}
