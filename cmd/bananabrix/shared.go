package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mathdevth/bananabrix/internal/analyzer"
	"github.com/mathdevth/bananabrix/internal/apperr"
	"github.com/mathdevth/bananabrix/internal/config"
	"github.com/mathdevth/bananabrix/internal/engine"
	"github.com/mathdevth/bananabrix/internal/logging"
	"github.com/mathdevth/bananabrix/internal/model"
	"github.com/mathdevth/bananabrix/internal/nutrition"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return nil, apperr.User(err.Error())
	}
	cfg.BuildVersion = Version
	return cfg, nil
}

// newAssessor loads the model first; a missing or malformed artifact aborts the run.
func newAssessor(cfg *config.Config) (*engine.Assessor, *model.LinearModel, error) {
	m, err := model.Load(cfg.ModelPath)
	if err != nil {
		return nil, nil, err
	}

	seg, err := analyzer.NewSegmenter(cfg.Segmenter, cfg.Params())
	if err != nil {
		return nil, nil, apperr.User(err.Error())
	}

	opts := []engine.Option{
		engine.WithMaxSide(cfg.MaxSide),
		engine.WithBananaMass(cfg.BananaMassGrams),
		engine.WithWorkers(cfg.Workers),
	}
	if cfg.Verbose {
		opts = append(opts, engine.WithLogger(&logging.Logger{
			Writer:      os.Stderr,
			PrefixText:  "[*]",
			PrefixColor: "#F59E0B",
		}))
	}
	return engine.NewAssessor(seg, m, opts...), m, nil
}

// bioFlags collects the optional biometrics of a request.
type bioFlags struct {
	age, weight, height float64
	gender              string
	patient, weightLoss bool
}

var (
	bioRequired = []string{"age", "weight", "height", "gender"}
	bioAll      = []string{"age", "weight", "height", "gender", "patient", "weight-loss"}
)

func (b *bioFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&b.age, "age", 0, "Age in years")
	f.Float64Var(&b.weight, "weight", 0, "Body weight in kg")
	f.Float64Var(&b.height, "height", 0, "Height in cm")
	f.StringVar(&b.gender, "gender", "", "Gender: male|female")
	f.BoolVar(&b.patient, "patient", false, "Diabetic or otherwise sugar-restricted")
	f.BoolVar(&b.weightLoss, "weight-loss", false, "Currently losing weight")
}

// resolve returns nil when no biometric flag was given. Once any is given,
// age, weight, height and gender become mandatory.
func (b *bioFlags) resolve(cmd *cobra.Command, required bool) (*nutrition.Biometrics, error) {
	f := cmd.Flags()
	given := false
	for _, name := range bioAll {
		if f.Changed(name) {
			given = true
			break
		}
	}
	if !given && !required {
		return nil, nil
	}

	for _, name := range bioRequired {
		if !f.Changed(name) {
			return nil, apperr.Userf("--%s is required with biometrics (need --age, --weight, --height and --gender)", name)
		}
	}
	if b.age <= 0 || b.age > 130 {
		return nil, apperr.Userf("invalid --age %g", b.age)
	}
	if b.weight <= 0 || b.weight > 500 {
		return nil, apperr.Userf("invalid --weight %g", b.weight)
	}
	if b.height <= 0 || b.height > 300 {
		return nil, apperr.Userf("invalid --height %g", b.height)
	}
	gender, err := nutrition.ParseGender(b.gender)
	if err != nil {
		return nil, apperr.User(err.Error())
	}

	return &nutrition.Biometrics{
		Age:        b.age,
		WeightKg:   b.weight,
		HeightCm:   b.height,
		Gender:     gender,
		Patient:    b.patient,
		WeightLoss: b.weightLoss,
	}, nil
}

func formatError(format string) error {
	return apperr.Userf("unsupported format %q", format)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
}
