package main

import (
	"fmt"
	"os"

	"github.com/de-tools/report-lab/pkg/runtime/terminal"
	"github.com/de-tools/report-lab/pkg/services/dataset"
	"github.com/de-tools/report-lab/pkg/services/report"
)

func main() {
	gen, err := dataset.NewGenerator(dataset.DefaultParams())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Service: report.NewService(gen),
		Output:  os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
