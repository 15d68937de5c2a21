package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymprogress/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRecordNotFound = errors.New("record not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Insert appends a single record and returns it with the assigned id.
func (r *Repo) Insert(ctx context.Context, rec Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", rec.UserID))
	span.SetAttributes(attribute.String("exercise", rec.Exercise.String()))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO records (user_id, exercise, weight, date)
			VALUES ($1, $2, $3, $4)
		RETURNING id;`,
		rec.UserID, rec.Exercise.String(), rec.Weight, rec.DateString(),
	).Scan(&rec.ID)
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}

	span.SetAttributes(attribute.Int("record.id", rec.ID))
	return &rec, nil
}

// ListAll returns the user's full history, newest day first,
// exercises in lexicographic order within the same day.
func (r *Repo) ListAll(ctx context.Context, userID int64) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, exercise, weight, date
			FROM records
			WHERE user_id = $1
		ORDER BY date DESC, exercise ASC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2records(rows)
}

// ListRecent returns up to limit most recent records, used to present
// deletion candidates.
func (r *Repo) ListRecent(ctx context.Context, userID int64, limit int) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.listrecent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, exercise, weight, date
			FROM records
			WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2records(rows)
}

// DeleteByID removes a single record and returns the removed row.
// Deleting an already-absent id yields ErrRecordNotFound, never a hard
// failure, so racing delete requests degrade to an informational outcome.
func (r *Repo) DeleteByID(ctx context.Context, id int) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("record.id", id))

	var rec Record
	var dateStr string
	err = r.db.QueryRow(
		ctx,
		`DELETE FROM records WHERE id = $1
		RETURNING id, user_id, exercise, weight, date;`,
		id,
	).Scan(&rec.ID, &rec.UserID, &rec.Exercise, &rec.Weight, &dateStr)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete record: %w", err)
	}

	if rec.Date, err = time.Parse(DateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("parse date of record %d: %w", rec.ID, err)
	}
	return &rec, nil
}

// DeleteAllForUser removes every record owned by the user in one statement
// and returns the number of removed rows (0 when none existed).
func (r *Repo) DeleteAllForUser(ctx context.Context, userID int64) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.deleteall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM records WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete records: %w", err)
	}

	span.SetAttributes(attribute.Int64("deleted", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

// QueryWindow returns the user's records with date >= since (all records
// when since is nil), always in ascending date order. Ascending order is
// what the chart preparer relies on for series building and min/max dates.
func (r *Repo) QueryWindow(ctx context.Context, userID int64, since *time.Time) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymlog.querywindow")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))
	if since != nil {
		span.SetAttributes(attribute.String("since", since.Format(DateLayout)))
	}

	var sinceStr *string
	if since != nil {
		s := since.Format(DateLayout)
		sinceStr = &s
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, exercise, weight, date
			FROM records
			WHERE user_id = $1
			AND ($2::text IS NULL OR date >= $2)
		ORDER BY date ASC;`,
		userID, sinceStr,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2records(rows)
}

func (r *Repo) rows2records(rows pgx.Rows) ([]Record, error) {
	recs := make([]Record, 0)
	for rows.Next() {
		var rec Record
		var dateStr string
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Exercise, &rec.Weight, &dateStr); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		date, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse date of record %d: %w", rec.ID, err)
		}
		rec.Date = date
		recs = append(recs, rec)
	}
	return recs, nil
}
