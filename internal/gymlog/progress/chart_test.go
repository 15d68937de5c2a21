package progress_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2beens/gymprogress/internal/gymlog/progress"
	"github.com/2beens/gymprogress/internal/gymlog/records"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildSeries(t *testing.T) {
	recs := []records.Record{
		{UserID: 1, Exercise: records.ExerciseSquat, Weight: 80, Date: day(2024, 1, 1)},
		{UserID: 1, Exercise: records.ExerciseSquat, Weight: 100, Date: day(2024, 2, 1)},
	}

	spec := progress.BuildSeries(recs, "all time")
	require.NotNil(t, spec)

	require.Len(t, spec.Series, 1)
	squatSeries := spec.Series[records.ExerciseSquat]
	require.Len(t, squatSeries, 2)
	assert.Equal(t, progress.Point{Date: day(2024, 1, 1), Weight: 80}, squatSeries[0])
	assert.Equal(t, progress.Point{Date: day(2024, 2, 1), Weight: 100}, squatSeries[1])

	// span of 31 days lands in the second tick bucket
	assert.Equal(t, 14, spec.TickIntervalDays)
	assert.Equal(t, "Progress for all time (01.01.2024 - 01.02.2024)", spec.Title)
	assert.Equal(t, "Date", spec.XLabel)
	assert.Equal(t, "Weight (kg)", spec.YLabel)
	assert.Equal(t, 2, spec.RecordCount)
}

func TestBuildSeries_MultipleExercises(t *testing.T) {
	recs := []records.Record{
		{UserID: 1, Exercise: records.ExerciseBench, Weight: 60, Date: day(2024, 1, 5)},
		{UserID: 1, Exercise: records.ExerciseSquat, Weight: 80, Date: day(2024, 1, 10)},
		{UserID: 1, Exercise: records.ExerciseBench, Weight: 65, Date: day(2024, 1, 15)},
	}

	spec := progress.BuildSeries(recs, "1 month")
	require.Len(t, spec.Series, 2)
	assert.Len(t, spec.Series[records.ExerciseBench], 2)
	assert.Len(t, spec.Series[records.ExerciseSquat], 1)

	// the title spans the global min and max dates, not per-exercise ones
	assert.Equal(t, "Progress for 1 month (05.01.2024 - 15.01.2024)", spec.Title)
	assert.Equal(t, 7, spec.TickIntervalDays)
}

func TestPreparer_BuildChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockwindowRepo(ctrl)
	preparer := progress.NewPreparer(repoMock)

	repoMock.EXPECT().
		QueryWindow(gomock.Any(), int64(1), gomock.Nil()).
		Return([]records.Record{
			{UserID: 1, Exercise: records.ExerciseSquat, Weight: 80, Date: day(2024, 1, 1)},
			{UserID: 1, Exercise: records.ExerciseSquat, Weight: 100, Date: day(2024, 2, 1)},
		}, nil)

	spec, err := preparer.BuildChart(context.Background(), 1, progress.PeriodAllTime)
	require.NoError(t, err)
	require.NotNil(t, spec)
	assert.Equal(t, 2, spec.RecordCount)
	assert.Equal(t, 14, spec.TickIntervalDays)
}

func TestPreparer_BuildChart_WindowCutoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockwindowRepo(ctrl)
	preparer := progress.NewPreparer(repoMock)

	repoMock.EXPECT().
		QueryWindow(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, since *time.Time) ([]records.Record, error) {
			require.NotNil(t, since)
			// the one month window reaches 30 days back
			assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), *since, time.Minute)
			return []records.Record{
				{UserID: 1, Exercise: records.ExerciseBench, Weight: 70, Date: day(2024, 6, 1)},
			}, nil
		})

	_, err := preparer.BuildChart(context.Background(), 1, progress.PeriodOneMonth)
	require.NoError(t, err)
}

func TestPreparer_BuildChart_EmptyDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockwindowRepo(ctrl)
	preparer := progress.NewPreparer(repoMock)

	repoMock.EXPECT().
		QueryWindow(gomock.Any(), int64(1), gomock.Nil()).
		Return([]records.Record{}, nil)

	_, err := preparer.BuildChart(context.Background(), 1, progress.PeriodAllTime)
	require.ErrorIs(t, err, progress.ErrEmptyDataset)
}

func TestPreparer_BuildChart_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockwindowRepo(ctrl)
	preparer := progress.NewPreparer(repoMock)

	repoMock.EXPECT().
		QueryWindow(gomock.Any(), int64(1), gomock.Nil()).
		Return(nil, errors.New("conn refused"))

	_, err := preparer.BuildChart(context.Background(), 1, progress.PeriodAllTime)
	require.Error(t, err)
	assert.NotErrorIs(t, err, progress.ErrEmptyDataset)
}

func TestPreparer_BuildChart_UnknownPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockwindowRepo(ctrl)
	preparer := progress.NewPreparer(repoMock)

	_, err := preparer.BuildChart(context.Background(), 1, progress.Period("2w"))
	require.Error(t, err)
}
