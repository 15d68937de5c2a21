package progress

import (
	"fmt"
	"time"
)

// Period selects how far back a progress chart reaches.
type Period string

const (
	PeriodOneMonth  Period = "1m"
	PeriodSixMonths Period = "6m"
	PeriodAllTime   Period = "all"
)

func (p Period) IsValid() bool {
	switch p {
	case PeriodOneMonth, PeriodSixMonths, PeriodAllTime:
		return true
	default:
		return false
	}
}

// Window is the resolved historical range: a cutoff date (nil means
// unbounded) plus the label shown in chart titles.
type Window struct {
	Since *time.Time
	Label string
}

// ResolveWindow turns a period token into a concrete window relative to now.
func ResolveWindow(now time.Time, period Period) (Window, error) {
	switch period {
	case PeriodOneMonth:
		since := now.AddDate(0, 0, -30)
		return Window{Since: &since, Label: "1 month"}, nil
	case PeriodSixMonths:
		since := now.AddDate(0, 0, -180)
		return Window{Since: &since, Label: "6 months"}, nil
	case PeriodAllTime:
		return Window{Label: "all time"}, nil
	default:
		return Window{}, fmt.Errorf("unknown period: %s", period)
	}
}

// TickInterval picks the x-axis tick spacing in days for a chart spanning
// spanDays. A display-density heuristic only - nothing downstream depends
// on it for correctness.
func TickInterval(spanDays int) int {
	switch {
	case spanDays <= 30:
		return 7
	case spanDays <= 180:
		return 14
	default:
		return 30
	}
}
