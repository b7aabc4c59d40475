package model

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sample is one labelled measurement: mean peel color and refractometer Brix.
type Sample struct {
	R, G, B float64
	Brix    float64
}

// FitStats summarizes how well a fitted model explains its training data.
type FitStats struct {
	Samples  int     `yaml:"samples" json:"samples"`
	RSquared float64 `yaml:"r_squared" json:"r_squared"`
	RMSE     float64 `yaml:"rmse" json:"rmse"`
	MeanBrix float64 `yaml:"mean_brix" json:"mean_brix"`
}

// ReadSamples parses r,g,b,brix CSV rows. A header row is skipped when its
// first field is not numeric.
func ReadSamples(r io.Reader) ([]Sample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 4
	reader.TrimLeadingSpace = true

	var samples []Sample
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		values := make([]float64, 4)
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				if line == 1 && i == 0 {
					values = nil
					break
				}
				return nil, fmt.Errorf("line %d column %d: %w", line, i+1, err)
			}
			values[i] = v
		}
		if values == nil {
			continue
		}
		samples = append(samples, Sample{R: values[0], G: values[1], B: values[2], Brix: values[3]})
	}
	return samples, nil
}

// Fit solves ordinary least squares for brix over [1, R, G, B].
func Fit(name string, samples []Sample) (*LinearModel, error) {
	cols := len(FeatureNames) + 1
	if len(samples) < cols {
		return nil, fmt.Errorf("need at least %d samples, got %d", cols, len(samples))
	}

	n := len(samples)
	x := mat.NewDense(n, cols, nil)
	y := mat.NewVecDense(n, nil)
	for i, s := range samples {
		x.SetRow(i, []float64{1, s.R, s.G, s.B})
		y.SetVec(i, s.Brix)
	}

	var beta mat.VecDense
	if err := beta.SolveVec(x, y); err != nil {
		return nil, fmt.Errorf("least squares: %w", err)
	}

	m, err := NewLinearModel(name, beta.AtVec(0), []float64{beta.AtVec(1), beta.AtVec(2), beta.AtVec(3)})
	if err != nil {
		return nil, err
	}

	observed := mat.Col(nil, 0, y)
	estimates := make([]float64, n)
	var sq float64
	for i, s := range samples {
		estimates[i], _ = m.Predict([]float64{s.R, s.G, s.B})
		d := estimates[i] - observed[i]
		sq += d * d
	}

	m.stats = &FitStats{
		Samples:  n,
		RSquared: stat.RSquaredFrom(estimates, observed, nil),
		RMSE:     math.Sqrt(sq / float64(n)),
		MeanBrix: stat.Mean(observed, nil),
	}
	return m, nil
}
