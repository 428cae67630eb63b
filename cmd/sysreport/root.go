package main

import (
	"context"
	"fmt"
	"io"

	"sysreport/internal/logger"
	"sysreport/internal/report"
	"sysreport/internal/sysinfo"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var red = color.New(color.FgRed, color.Bold).SprintFunc()

// newRootCmd builds the sysreport command around p. It takes no flags or
// arguments.
func newRootCmd(p sysinfo.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "sysreport",
		Short: "Print identity, boot time, CPU, memory, disk and network details of this host",
		Long: `sysreport queries the operating system once and prints a plain-text report
with six sections: System Information, Boot Time, CPU Info, Memory Information,
Disk Information and Network Information.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.New(cmd.OutOrStdout(), p).Run(cmd.Context())
		},
	}
}

// execute runs cmd and turns its outcome into an exit code, printing a
// diagnostic to stderr on failure.
func execute(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Main.Error().Err(err).Msg("System report failed")
		fmt.Fprintf(stderr, "%s %v\n", red("Error:"), err)
		return 1
	}
	return 0
}
