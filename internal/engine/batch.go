package engine

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mathdevth/bananabrix/internal/nutrition"
	"github.com/mathdevth/bananabrix/internal/ripeness"
	"github.com/mathdevth/bananabrix/internal/source"
)

// AssessAll assesses every image of src with a bounded number of workers.
// Results keep the source order. An image that cannot be decoded or predicted
// is recorded on its Result and does not stop the batch; only cancellation of
// ctx does.
func (a *Assessor) AssessAll(ctx context.Context, src source.Source, bio *nutrition.Biometrics) ([]*Result, error) {
	total := src.Count()
	results := make([]*Result, total)
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i := 0; i < total; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path := src.Path(i)
			img, err := src.Load(i)
			var res *Result
			if err == nil {
				res, err = a.assess(path, img, bio)
			}
			if err != nil {
				log.Printf("[!] %s: %v", path, err)
				res = &Result{ID: uuid.NewString(), Path: path, Error: err.Error()}
			}
			results[i] = res
			n := done.Add(1)
			a.log.Logf(path, "done %d/%d", n, total)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

// Summary aggregates a batch.
type Summary struct {
	Total    int                     `json:"total" yaml:"total"`
	Found    int                     `json:"found" yaml:"found"`
	NotFound int                     `json:"not_found" yaml:"not_found"`
	Failed   int                     `json:"failed" yaml:"failed"`
	MeanBrix float64                 `json:"mean_brix" yaml:"mean_brix"`
	Tiers    [ripeness.TierCount]int `json:"tiers" yaml:"tiers"` // Tiers[i] counts tier i+1
}

// Summarize counts outcomes. Nil entries (skipped after cancellation) are ignored.
func Summarize(results []*Result) Summary {
	var s Summary
	var brixSum float64
	for _, r := range results {
		if r == nil {
			continue
		}
		s.Total++
		switch {
		case r.Error != "":
			s.Failed++
		case !r.Found:
			s.NotFound++
		default:
			s.Found++
			brixSum += r.Brix
			if r.Tier >= 1 && r.Tier <= ripeness.TierCount {
				s.Tiers[r.Tier-1]++
			}
		}
	}
	if s.Found > 0 {
		s.MeanBrix = brixSum / float64(s.Found)
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d images: %d assessed, %d without banana, %d failed, mean brix %.2f",
		s.Total, s.Found, s.NotFound, s.Failed, s.MeanBrix)
}
