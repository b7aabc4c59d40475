package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mathdevth/bananabrix/internal/apperr"
	"github.com/mathdevth/bananabrix/internal/config"
	"github.com/mathdevth/bananabrix/internal/report"
	"github.com/mathdevth/bananabrix/internal/source"
)

func newAssessCmd() *cobra.Command {
	var bio bioFlags
	cmd := &cobra.Command{
		Use:   "assess [image]",
		Short: "Assess the ripeness of one banana photo",
		Long:  "Assess the ripeness of one banana photo. Without an argument the most recent image in the input directory is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssess(cmd, args, &bio)
		},
	}
	bio.register(cmd)
	cmd.Flags().String(config.KeyQR, "", "Also write the result summary as a QR code PNG")
	cmd.Flags().String(config.KeyInputDir, config.Default().InputDir, "Directory searched when no image is given")
	viper.BindPFlag(config.KeyQR, cmd.Flags().Lookup(config.KeyQR))
	viper.BindPFlag(config.KeyInputDir, cmd.Flags().Lookup(config.KeyInputDir))
	return cmd
}

func runAssess(cmd *cobra.Command, args []string, bio *bioFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	biometrics, err := bio.resolve(cmd, false)
	if err != nil {
		return err
	}

	assessor, _, err := newAssessor(cfg)
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		path, err = source.FindLatestImage(cfg.InputDir)
		if err != nil {
			return apperr.Userf("%v. Put a photo into %s or pass a path", err, cfg.InputDir)
		}
		printf(cmd, "[*] Selected file: %s\n", path)
	}

	res, err := assessor.AssessFile(path, biometrics)
	if err != nil {
		return fmt.Errorf("assess %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	switch cfg.Format {
	case "text":
		err = report.Render(out, res)
	case "yaml", "json":
		err = report.Encode(out, cfg.Format, res)
	default:
		err = formatError(cfg.Format)
	}
	if err != nil {
		return err
	}

	if cfg.QRPath != "" {
		if err := report.WriteQR(cfg.QRPath, res); err != nil {
			return fmt.Errorf("write qr: %w", err)
		}
		printf(cmd, "[+++] QR code written to %s\n", cfg.QRPath)
	}
	return nil
}
