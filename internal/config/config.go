package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mathdevth/bananabrix/internal/analyzer"
)

// Config holds every tunable of an assessment run.
type Config struct {
	Segmenter       string
	Lower           [3]int // BGR
	Upper           [3]int // BGR
	MinArea         int
	MaxSide         int
	ModelPath       string
	Workers         int
	BananaMassGrams float64
	Format          string
	Output          string
	QRPath          string
	InputDir        string
	ShowStats       bool
	Verbose         bool
	BuildVersion    string // stamped into batch reports
}

// Viper keys. Flags, env vars (BANANABRIX_MIN_AREA) and config file entries share them.
const (
	KeySegmenter   = "segmenter"
	KeyLower       = "lower"
	KeyUpper       = "upper"
	KeyMinArea     = "min-area"
	KeyMaxSide     = "max-side"
	KeyModel       = "model"
	KeyWorkers     = "workers"
	KeyBananaMass  = "banana-mass"
	KeyFormat      = "format"
	KeyOutput      = "output"
	KeyQR          = "qr"
	KeyInputDir    = "input-dir"
	KeyStats       = "stats"
	KeyVerbose     = "verbose"
	defaultModel   = "banana_brix_model.yaml"
	defaultInput   = "input/images"
	defaultMassG   = 100.0
	defaultFormat  = "text"
	defaultWorkers = 4
)

// Formats accepted by the report writers.
var Formats = []string{"text", "yaml", "json"}

// Default returns the reference configuration.
func Default() *Config {
	rng := analyzer.DefaultColorRange()
	return &Config{
		Segmenter:       "color",
		Lower:           [3]int{int(rng.Lower[0]), int(rng.Lower[1]), int(rng.Lower[2])},
		Upper:           [3]int{int(rng.Upper[0]), int(rng.Upper[1]), int(rng.Upper[2])},
		MinArea:         analyzer.DefaultMinArea,
		ModelPath:       defaultModel,
		Workers:         defaultWorkers,
		BananaMassGrams: defaultMassG,
		Format:          defaultFormat,
		InputDir:        defaultInput,
	}
}

// SetDefaults registers Default() values on v so unset keys resolve to them.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeySegmenter, d.Segmenter)
	v.SetDefault(KeyLower, d.Lower[:])
	v.SetDefault(KeyUpper, d.Upper[:])
	v.SetDefault(KeyMinArea, d.MinArea)
	v.SetDefault(KeyMaxSide, d.MaxSide)
	v.SetDefault(KeyModel, d.ModelPath)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeyBananaMass, d.BananaMassGrams)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyInputDir, d.InputDir)
}

// FromViper reads the layered configuration out of v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := Default()
	cfg.Segmenter = strings.ToLower(strings.TrimSpace(v.GetString(KeySegmenter)))
	cfg.MinArea = v.GetInt(KeyMinArea)
	cfg.MaxSide = v.GetInt(KeyMaxSide)
	cfg.ModelPath = v.GetString(KeyModel)
	cfg.Workers = v.GetInt(KeyWorkers)
	cfg.BananaMassGrams = v.GetFloat64(KeyBananaMass)
	cfg.Format = strings.ToLower(strings.TrimSpace(v.GetString(KeyFormat)))
	cfg.Output = v.GetString(KeyOutput)
	cfg.QRPath = v.GetString(KeyQR)
	cfg.InputDir = v.GetString(KeyInputDir)
	cfg.ShowStats = v.GetBool(KeyStats)
	cfg.Verbose = v.GetBool(KeyVerbose)

	var err error
	if cfg.Lower, err = triple(v.GetIntSlice(KeyLower), KeyLower); err != nil {
		return nil, err
	}
	if cfg.Upper, err = triple(v.GetIntSlice(KeyUpper), KeyUpper); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func triple(vals []int, key string) ([3]int, error) {
	var out [3]int
	if len(vals) != 3 {
		return out, fmt.Errorf("%s: expected 3 values (B,G,R), got %d", key, len(vals))
	}
	copy(out[:], vals)
	return out, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	switch c.Segmenter {
	case "", "color", "contour":
	default:
		return fmt.Errorf("unknown segmenter %q (expected color|contour)", c.Segmenter)
	}
	for i := 0; i < 3; i++ {
		if c.Lower[i] < 0 || c.Lower[i] > 255 || c.Upper[i] < 0 || c.Upper[i] > 255 {
			return fmt.Errorf("color bounds must lie in [0,255], got lower=%v upper=%v", c.Lower, c.Upper)
		}
		if c.Lower[i] > c.Upper[i] {
			return fmt.Errorf("lower bound %v exceeds upper bound %v on channel %d", c.Lower, c.Upper, i)
		}
	}
	if c.MinArea < 0 {
		return fmt.Errorf("min-area must not be negative, got %d", c.MinArea)
	}
	if c.MaxSide < 0 {
		return fmt.Errorf("max-side must not be negative, got %d", c.MaxSide)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.BananaMassGrams <= 0 {
		return fmt.Errorf("banana-mass must be positive, got %g", c.BananaMassGrams)
	}
	valid := false
	for _, f := range Formats {
		if c.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown format %q (expected %s)", c.Format, strings.Join(Formats, "|"))
	}
	return nil
}

// Params converts the segmentation settings.
func (c *Config) Params() analyzer.Params {
	var lower, upper [3]uint8
	for i := 0; i < 3; i++ {
		lower[i] = uint8(c.Lower[i])
		upper[i] = uint8(c.Upper[i])
	}
	return analyzer.DefaultParams().WithRange(lower, upper).WithMinArea(c.MinArea)
}
