// Package castmetrics counts cast outcomes with OpenCensus.
package castmetrics

import (
	"context"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var outcomeKey = tag.MustNewKey("outcome")

// Recorder counts casts by outcome.  It satisfies raycast.Recorder.
type Recorder struct {
	castCount     *stats.Int64Measure
	castCountView *view.View
}

func New() *Recorder {
	r := &Recorder{}

	r.castCount = stats.Int64("barriercast/casts", "", stats.UnitDimensionless)
	r.castCountView = &view.View{
		Name:        "barriercast/casts",
		Description: "Counter of rays cast, by outcome",

		TagKeys: []tag.Key{outcomeKey},

		Measure:     r.castCount,
		Aggregation: view.Count(),
	}

	return r
}

func (r *Recorder) RegisterMetrics() error {
	return view.Register(r.castCountView)
}

// UnregisterMetrics stops collection and drops everything counted so far.
func (r *Recorder) UnregisterMetrics() {
	view.Unregister(r.castCountView)
}

func (r *Recorder) Record(ctx context.Context, outcome string) {
	stats.RecordWithOptions(
		ctx,
		stats.WithTags(tag.Upsert(outcomeKey, outcome)),
		stats.WithMeasurements(r.castCount.M(1)))
}

// Counts reads back the number of casts recorded for each outcome since the
// view was registered.
func (r *Recorder) Counts() (map[string]int64, error) {
	rows, err := view.RetrieveData(r.castCountView.Name)
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{}
	for _, row := range rows {
		outcome := ""
		for _, t := range row.Tags {
			if t.Key == outcomeKey {
				outcome = t.Value
			}
		}

		if cd, ok := row.Data.(*view.CountData); ok {
			counts[outcome] += cd.Value
		}
	}
	return counts, nil
}
