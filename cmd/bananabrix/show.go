package main

import (
	"github.com/spf13/cobra"

	"github.com/mathdevth/bananabrix/internal/apperr"
	"github.com/mathdevth/bananabrix/internal/report"
)

func newShowCmd() *cobra.Command {
	var dir string
	var all bool
	cmd := &cobra.Command{
		Use:   "show [report]",
		Short: "Print a saved batch report",
		Long:  "Print a saved batch report. Without an argument the most recent report in the reports directory is shown.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				latest, err := report.FindLatest(dir)
				if err != nil {
					return apperr.User(err.Error())
				}
				path = latest
				printf(cmd, "[*] Selected report: %s\n", path)
			}

			b, err := report.ReadBatch(path)
			if err != nil {
				return apperr.Userf("cannot read report %s: %v", path, err)
			}

			out := cmd.OutOrStdout()
			if all {
				for _, r := range b.Results {
					if err := report.Render(out, r); err != nil {
						return err
					}
				}
			}
			if b.Host != nil {
				printf(cmd, "[*] Host: %s\n", *b.Host)
			}
			return report.RenderSummary(out, b.Summary)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", report.DefaultDir, "Directory searched when no report is given")
	cmd.Flags().BoolVar(&all, "all", false, "Print every result, not only the summary")
	return cmd
}
