package engine

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/google/uuid"

	"github.com/mathdevth/bananabrix/internal/analyzer"
	"github.com/mathdevth/bananabrix/internal/logging"
	"github.com/mathdevth/bananabrix/internal/model"
	"github.com/mathdevth/bananabrix/internal/nutrition"
	"github.com/mathdevth/bananabrix/internal/ripeness"
	"github.com/mathdevth/bananabrix/internal/source"
)

// ErrNonFiniteBrix is returned when the model yields NaN or an infinity.
var ErrNonFiniteBrix = errors.New("non-finite brix estimate")

// DefaultBananaMassGrams is the edible mass assumed for one banana.
const DefaultBananaMassGrams = 100.0

// Result is the outcome of assessing one photograph. Every measurement key is
// always emitted; when Found is false they hold zero values.
type Result struct {
	ID         string     `json:"id" yaml:"id"`
	Path       string     `json:"path,omitempty" yaml:"path,omitempty"`
	Found      bool       `json:"found" yaml:"found"`
	R          float64    `json:"r" yaml:"r"`
	G          float64    `json:"g" yaml:"g"`
	B          float64    `json:"b" yaml:"b"`
	Area       int        `json:"area" yaml:"area"`
	Brix       float64    `json:"brix" yaml:"brix"`
	Tier       int        `json:"tier" yaml:"tier"`
	Label      string     `json:"label" yaml:"label"`
	Advice     string     `json:"advice" yaml:"advice"`
	Percentage float64    `json:"percentage" yaml:"percentage"`
	Allowance  *Allowance `json:"allowance,omitempty" yaml:"allowance,omitempty"`
	Error      string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// Allowance compares the sugar in one banana with a daily budget.
type Allowance struct {
	DailyGrams         float64 `json:"daily_allowance_grams" yaml:"daily_allowance_grams"`
	BananaSugarGrams   float64 `json:"banana_sugar_grams" yaml:"banana_sugar_grams"`
	PercentOfAllowance float64 `json:"percent_of_allowance" yaml:"percent_of_allowance"`
}

// Compare computes the allowance block for a banana of the given Brix and mass.
func Compare(brix, massGrams float64, b nutrition.Biometrics) *Allowance {
	daily := nutrition.DailySugarAllowance(b)
	sugar := brix / 100 * massGrams
	a := &Allowance{DailyGrams: daily, BananaSugarGrams: sugar}
	if daily > 0 {
		a.PercentOfAllowance = sugar / daily * 100
	}
	return a
}

// Assessor runs segmentation, prediction and classification for photographs.
// It holds no per-call state and is safe for concurrent use.
type Assessor struct {
	seg       analyzer.Segmenter
	predictor model.Predictor

	maxSide   int
	massGrams float64
	workers   int
	log       *logging.Logger
}

// Option customizes an Assessor.
type Option func(*Assessor)

// WithMaxSide downscales images whose longer side exceeds n before segmenting.
func WithMaxSide(n int) Option { return func(a *Assessor) { a.maxSide = n } }

// WithBananaMass sets the edible mass used for the sugar comparison.
func WithBananaMass(grams float64) Option { return func(a *Assessor) { a.massGrams = grams } }

// WithWorkers bounds the number of images assessed at once by AssessAll.
func WithWorkers(n int) Option { return func(a *Assessor) { a.workers = n } }

// WithLogger enables per-image diagnostics.
func WithLogger(l *logging.Logger) Option { return func(a *Assessor) { a.log = l } }

func NewAssessor(seg analyzer.Segmenter, predictor model.Predictor, opts ...Option) *Assessor {
	a := &Assessor{
		seg:       seg,
		predictor: predictor,
		massGrams: DefaultBananaMassGrams,
		workers:   1,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.workers < 1 {
		a.workers = 1
	}
	return a
}

// Assess evaluates an already decoded image. bio may be nil.
func (a *Assessor) Assess(img image.Image, bio *nutrition.Biometrics) (*Result, error) {
	return a.assess("", img, bio)
}

// AssessFile decodes path and evaluates it.
func (a *Assessor) AssessFile(path string, bio *nutrition.Biometrics) (*Result, error) {
	img, err := source.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return a.assess(path, img, bio)
}

func (a *Assessor) assess(path string, img image.Image, bio *nutrition.Biometrics) (*Result, error) {
	res := &Result{ID: uuid.NewString(), Path: path}

	if img != nil && a.maxSide > 0 {
		before := img.Bounds()
		img = source.Fit(img, a.maxSide)
		if after := img.Bounds(); a.log.Enabled() && after != before {
			a.log.Logf(path, "resized %dx%d -> %dx%d", before.Dx(), before.Dy(), after.Dx(), after.Dy())
		}
	}

	feature, ok := a.seg.Segment(img)
	if !ok {
		a.log.Logf(path, "no banana region found")
		return res, nil
	}
	a.log.Logf(path, "region area=%d mean=(%.2f,%.2f,%.2f)", feature.Area, feature.R, feature.G, feature.B)

	brix, err := a.predictor.Predict(feature.Vector())
	if err != nil {
		return nil, fmt.Errorf("predict brix: %w", err)
	}
	if math.IsNaN(brix) || math.IsInf(brix, 0) {
		return nil, fmt.Errorf("predict brix: %w (%v)", ErrNonFiniteBrix, brix)
	}

	assessment := ripeness.Classify(brix)
	res.Found = true
	res.R, res.G, res.B = feature.R, feature.G, feature.B
	res.Area = feature.Area
	res.Brix = brix
	res.Tier = assessment.Tier
	res.Label = assessment.Label
	res.Advice = assessment.Advice
	res.Percentage = assessment.Percentage

	if bio != nil {
		res.Allowance = Compare(brix, a.massGrams, *bio)
	}
	a.log.Logf(path, "brix=%.2f tier=%d", brix, res.Tier)
	return res, nil
}
