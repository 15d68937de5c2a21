package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymprogress/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var ErrNoRecords = errors.New("no records")

// Best is the heaviest result ever logged for one exercise, together with
// the most recent date on which that weight was lifted.
type Best struct {
	Weight int       `json:"weight"`
	Date   time.Time `json:"date"`
}

// PersonalBests reduces a record list to the best result per exercise.
// The reduction runs in two stages: first collapse each (exercise, weight)
// pair to its latest date, then per exercise keep the entry with the
// maximum weight. A later, lighter lift therefore never shadows the date
// of the actual best - only equal-weight repeats move the date forward.
func PersonalBests(recs []Record) map[Exercise]Best {
	latestPerWeight := make(map[Exercise]map[int]time.Time)
	for _, rec := range recs {
		perWeight, ok := latestPerWeight[rec.Exercise]
		if !ok {
			perWeight = make(map[int]time.Time)
			latestPerWeight[rec.Exercise] = perWeight
		}
		if rec.Date.After(perWeight[rec.Weight]) {
			perWeight[rec.Weight] = rec.Date
		}
	}

	bests := make(map[Exercise]Best)
	for exercise, perWeight := range latestPerWeight {
		best := Best{}
		for weight, date := range perWeight {
			if weight > best.Weight {
				best = Best{Weight: weight, Date: date}
			}
		}
		bests[exercise] = best
	}
	return bests
}

type bestsRepo interface {
	ListAll(ctx context.Context, userID int64) ([]Record, error)
}

// Analyzer derives aggregate views over a user's records. The repo only
// retrieves rows; all aggregation happens here, in memory.
type Analyzer struct {
	repo bestsRepo
}

func NewAnalyzer(repo bestsRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

func (a *Analyzer) PersonalBests(ctx context.Context, userID int64) (_ map[Exercise]Best, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.gymlog.personalbests")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	recs, err := a.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	if len(recs) == 0 {
		return nil, ErrNoRecords
	}

	return PersonalBests(recs), nil
}
