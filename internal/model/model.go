// Package model loads and evaluates the Brix regression model.
//
// The model is a linear regression over the mean peel color:
//
//	brix = intercept + c_r*R + c_g*G + c_b*B
//
// persisted as a small YAML artifact. It is loaded once at startup and
// passed explicitly to whatever needs predictions.
package model

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// ErrModelUnavailable marks a model artifact that cannot be used. The
// application must not start without a model.
var ErrModelUnavailable = errors.New("model unavailable")

// FeatureNames is the column order of the feature row.
var FeatureNames = []string{"r", "g", "b"}

// Predictor turns one feature row into a Brix estimate.
type Predictor interface {
	Predict(features []float64) (float64, error)
}

// PredictorFunc adapts a function to Predictor.
type PredictorFunc func(features []float64) (float64, error)

func (f PredictorFunc) Predict(features []float64) (float64, error) {
	return f(features)
}

// Artifact is the on-disk representation of a linear model.
type Artifact struct {
	Name         string    `yaml:"name"`
	Features     []string  `yaml:"features"`
	Intercept    float64   `yaml:"intercept"`
	Coefficients []float64 `yaml:"coefficients"`
	Fit          *FitStats `yaml:"fit,omitempty"`
}

// LinearModel is an immutable linear regression.
type LinearModel struct {
	name      string
	intercept float64
	coef      *mat.VecDense
	stats     *FitStats
}

// NewLinearModel builds a model over the RGB feature row. Non-finite
// weights are rejected.
func NewLinearModel(name string, intercept float64, coefficients []float64) (*LinearModel, error) {
	if len(coefficients) != len(FeatureNames) {
		return nil, fmt.Errorf("expected %d coefficients, got %d", len(FeatureNames), len(coefficients))
	}
	if math.IsNaN(intercept) || math.IsInf(intercept, 0) {
		return nil, fmt.Errorf("intercept is not finite: %v", intercept)
	}
	for i, c := range coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("coefficient %d is not finite: %v", i, c)
		}
	}
	coef := make([]float64, len(coefficients))
	copy(coef, coefficients)
	return &LinearModel{
		name:      name,
		intercept: intercept,
		coef:      mat.NewVecDense(len(coef), coef),
	}, nil
}

// Name returns the artifact name.
func (m *LinearModel) Name() string { return m.name }

// Intercept returns the constant term.
func (m *LinearModel) Intercept() float64 { return m.intercept }

// Coefficients returns a copy of the per-feature weights.
func (m *LinearModel) Coefficients() []float64 {
	return mat.Col(nil, 0, m.coef)
}

// Stats returns the fit statistics recorded with the model, if any.
func (m *LinearModel) Stats() *FitStats { return m.stats }

// Predict evaluates the model for a single [R, G, B] row.
func (m *LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != m.coef.Len() {
		return 0, fmt.Errorf("expected %d features, got %d", m.coef.Len(), len(features))
	}
	x := mat.NewVecDense(len(features), append([]float64(nil), features...))
	return m.intercept + mat.Dot(m.coef, x), nil
}

// Artifact returns the serializable form of the model.
func (m *LinearModel) Artifact() Artifact {
	return Artifact{
		Name:         m.name,
		Features:     append([]string(nil), FeatureNames...),
		Intercept:    m.intercept,
		Coefficients: m.Coefficients(),
		Fit:          m.stats,
	}
}

// Load reads a model artifact. Every failure wraps ErrModelUnavailable.
func Load(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	var a Artifact
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrModelUnavailable, path, err)
	}

	if len(a.Features) > 0 {
		if len(a.Features) != len(FeatureNames) {
			return nil, fmt.Errorf("%w: %s lists %d features, want %v", ErrModelUnavailable, path, len(a.Features), FeatureNames)
		}
		for i, f := range a.Features {
			if f != FeatureNames[i] {
				return nil, fmt.Errorf("%w: %s feature %d is %q, want %q", ErrModelUnavailable, path, i, f, FeatureNames[i])
			}
		}
	}

	m, err := NewLinearModel(a.Name, a.Intercept, a.Coefficients)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrModelUnavailable, path, err)
	}
	m.stats = a.Fit
	return m, nil
}

// Save writes the model artifact as YAML.
func (m *LinearModel) Save(path string) error {
	data, err := yaml.Marshal(m.Artifact())
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
