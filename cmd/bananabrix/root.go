package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mathdevth/bananabrix/internal/config"
)

var cfgFile string

const longDescription = `Estimate banana ripeness from a photograph.

The banana is isolated by color, its mean color is fed to a Brix regression
model, and the Brix value is mapped onto seven ripeness tiers with advice.
Supplying biometrics adds a comparison with a personal daily sugar budget.`

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bananabrix",
		Short:         "Banana ripeness and sugar estimation from photos",
		Long:          longDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	d := config.Default()
	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bananabrix.yaml or ./config/defaults.yaml)")
	pf.String(config.KeySegmenter, d.Segmenter, "Segmenter: color|contour (contour needs an opencv build)")
	pf.IntSlice(config.KeyLower, d.Lower[:], "Lower color bound as B,G,R")
	pf.IntSlice(config.KeyUpper, d.Upper[:], "Upper color bound as B,G,R")
	pf.Int(config.KeyMinArea, d.MinArea, "Smallest accepted banana region in pixels")
	pf.Int(config.KeyMaxSide, d.MaxSide, "Downscale images whose longer side exceeds this (0 keeps full size)")
	pf.StringP(config.KeyModel, "m", d.ModelPath, "Path to the Brix model artifact")
	pf.Float64(config.KeyBananaMass, d.BananaMassGrams, "Edible banana mass in grams for the sugar comparison")
	pf.StringP(config.KeyFormat, "f", d.Format, "Output format: text|yaml|json")
	pf.BoolP(config.KeyVerbose, "v", false, "Per-image diagnostics on stderr")

	for _, key := range []string{
		config.KeySegmenter, config.KeyLower, config.KeyUpper, config.KeyMinArea,
		config.KeyMaxSide, config.KeyModel, config.KeyBananaMass, config.KeyFormat,
		config.KeyVerbose,
	} {
		viper.BindPFlag(key, pf.Lookup(key))
	}
	config.SetDefaults(viper.GetViper())

	root.AddCommand(newAssessCmd(), newBatchCmd(), newTiersCmd(), newFitCmd(), newAllowanceCmd(), newShowCmd())
	return root
}

func initConfig() error {
	// BANANABRIX_MIN_AREA overrides min-area
	viper.SetEnvPrefix("BANANABRIX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		fmt.Fprintf(os.Stderr, "[*] Using config file: %s\n", viper.ConfigFileUsed())
		return nil
	}

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./config")
	viper.SetConfigType("yaml")

	// Try .bananabrix first, then defaults.yaml
	viper.SetConfigName(".bananabrix")
	err = viper.ReadInConfig()
	notFound := viper.ConfigFileNotFoundError{}
	if err != nil && errors.As(err, &notFound) {
		viper.SetConfigName("defaults")
		err = viper.ReadInConfig()
	}

	switch {
	case err != nil && errors.As(err, &notFound):
		// The config file is optional
		return nil
	case err != nil:
		return fmt.Errorf("read config: %w", err)
	default:
		fmt.Fprintf(os.Stderr, "[*] Using config file: %s\n", viper.ConfigFileUsed())
		return nil
	}
}
