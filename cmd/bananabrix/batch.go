package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mathdevth/bananabrix/internal/apperr"
	"github.com/mathdevth/bananabrix/internal/config"
	"github.com/mathdevth/bananabrix/internal/engine"
	"github.com/mathdevth/bananabrix/internal/report"
	"github.com/mathdevth/bananabrix/internal/source"
	"github.com/mathdevth/bananabrix/internal/system"
)

func newBatchCmd() *cobra.Command {
	var bio bioFlags
	var save bool
	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Assess every image in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args[0], &bio, save)
		},
	}
	bio.register(cmd)
	d := config.Default()
	cmd.Flags().IntP(config.KeyWorkers, "w", d.Workers, "Images assessed concurrently")
	cmd.Flags().StringP(config.KeyOutput, "o", "", "Write the batch report to this .yaml or .json file")
	cmd.Flags().Bool(config.KeyStats, false, "Include host CPU and memory in the report")
	cmd.Flags().BoolVar(&save, "save", false, "Save a timestamped report under "+report.DefaultDir+"/ when --output is not set")
	for _, key := range []string{config.KeyWorkers, config.KeyOutput, config.KeyStats} {
		viper.BindPFlag(key, cmd.Flags().Lookup(key))
	}
	return cmd
}

func runBatch(cmd *cobra.Command, dir string, bio *bioFlags, save bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	biometrics, err := bio.resolve(cmd, false)
	if err != nil {
		return err
	}

	assessor, m, err := newAssessor(cfg)
	if err != nil {
		return err
	}

	src, err := source.NewImageSource(dir)
	if err != nil {
		return apperr.Userf("cannot read %s: %v", dir, err)
	}
	if src.Count() == 0 {
		return apperr.Userf("no images found in %s", dir)
	}
	printf(cmd, "[*] Source: %s | Images: %d | Workers: %d\n", dir, src.Count(), cfg.Workers)

	start := time.Now()
	results, err := assessor.AssessAll(cmd.Context(), src, biometrics)
	if errors.Is(err, context.Canceled) {
		printf(cmd, "[!] Interrupted after %d images\n", engine.Summarize(results).Total)
		return apperr.ErrCancelled
	}
	if err != nil {
		return err
	}

	batch := &report.Batch{
		Version: cfg.BuildVersion,
		Model:   m.Name(),
		Summary: engine.Summarize(results),
		Results: results,
	}
	if cfg.ShowStats {
		host := system.HostStats()
		batch.Host = &host
		printf(cmd, "[*] Host: %s\n", host)
	}

	out := cmd.OutOrStdout()
	switch cfg.Format {
	case "text":
		for _, r := range results {
			if err := report.Render(out, r); err != nil {
				return err
			}
		}
		err = report.RenderSummary(out, batch.Summary)
	case "yaml", "json":
		err = report.Encode(out, cfg.Format, batch)
	default:
		err = formatError(cfg.Format)
	}
	if err != nil {
		return err
	}

	output := cfg.Output
	if output == "" && save {
		output = report.GeneratePath(report.DefaultDir, start)
	}
	if output != "" {
		if err := report.WriteFile(output, report.FormatFromPath(output), batch); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		printf(cmd, "[+++] Report written to %s\n", output)
	}
	printf(cmd, "[+++] Done in %v: %s\n", time.Since(start).Round(time.Millisecond), batch.Summary)
	return nil
}
