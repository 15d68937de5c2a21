package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymprogress/internal/gymlog/records"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// ErrEmptyDataset - no records in the requested window. Informational: the
// caller presents a "no data" outcome and skips chart preparation.
var ErrEmptyDataset = errors.New("no records in the requested window")

// Point is one plotted sample of a per-exercise series.
type Point struct {
	Date   time.Time `json:"date"`
	Weight int       `json:"weight"`
}

// ChartSpec is a renderer-agnostic description of a progress chart. The
// rendering collaborator turns it into pixels; this package never does.
type ChartSpec struct {
	Title            string                       `json:"title"`
	XLabel           string                       `json:"xLabel"`
	YLabel           string                       `json:"yLabel"`
	Series           map[records.Exercise][]Point `json:"series"`
	TickIntervalDays int                          `json:"tickIntervalDays"`
	DateFormat       string                       `json:"dateFormat"`
	RecordCount      int                          `json:"recordCount"`
}

type windowRepo interface {
	QueryWindow(ctx context.Context, userID int64, since *time.Time) ([]records.Record, error)
}

// Preparer resolves a period into a window, pulls the matching records and
// shapes them into a ChartSpec.
type Preparer struct {
	repo windowRepo
	now  func() time.Time
}

func NewPreparer(repo windowRepo) *Preparer {
	return &Preparer{
		repo: repo,
		now:  time.Now,
	}
}

func (p *Preparer) BuildChart(ctx context.Context, userID int64, period Period) (_ *ChartSpec, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "preparer.gymlog.buildchart")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))
	span.SetAttributes(attribute.String("period", string(period)))

	window, err := ResolveWindow(p.now(), period)
	if err != nil {
		return nil, err
	}

	recs, err := p.repo.QueryWindow(ctx, userID, window.Since)
	if err != nil {
		return nil, fmt.Errorf("query window: %w", err)
	}
	if len(recs) == 0 {
		return nil, ErrEmptyDataset
	}

	spec := BuildSeries(recs, window.Label)
	span.SetAttributes(attribute.Int("record.count", spec.RecordCount))
	return spec, nil
}

// BuildSeries groups the records by exercise into ordered series,
// preserving the ascending date order the query guarantees. The title span
// uses the global minimum and maximum dates across all rows, not per
// exercise, so every series shares one time axis.
func BuildSeries(recs []records.Record, periodLabel string) *ChartSpec {
	series := make(map[records.Exercise][]Point)
	firstDate := recs[0].Date
	lastDate := recs[0].Date
	for _, rec := range recs {
		series[rec.Exercise] = append(series[rec.Exercise], Point{
			Date:   rec.Date,
			Weight: rec.Weight,
		})
		if rec.Date.Before(firstDate) {
			firstDate = rec.Date
		}
		if rec.Date.After(lastDate) {
			lastDate = rec.Date
		}
	}

	spanDays := int(lastDate.Sub(firstDate).Hours() / 24)

	return &ChartSpec{
		Title: fmt.Sprintf(
			"Progress for %s (%s - %s)",
			periodLabel, firstDate.Format("02.01.2006"), lastDate.Format("02.01.2006"),
		),
		XLabel:           "Date",
		YLabel:           "Weight (kg)",
		Series:           series,
		TickIntervalDays: TickInterval(spanDays),
		DateFormat:       records.DateLayout,
		RecordCount:      len(recs),
	}
}
