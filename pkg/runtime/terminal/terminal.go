package terminal

import (
	"io"
	"os"

	"github.com/de-tools/report-lab/pkg/runtime/terminal/commands"
	"github.com/de-tools/report-lab/pkg/runtime/terminal/export"

	"github.com/de-tools/report-lab/pkg/services/report"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	service  *report.Service
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Service *report.Service
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		service:  opts.Service,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reproducible analysis reports",
	}

	cmd.AddCommand(commands.NewRenderCmd(cli.service, cli.reporter))
	cmd.AddCommand(commands.NewExportCmd(cli.service))
	cmd.AddCommand(commands.NewProfilesCmd())

	return cmd
}
