package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/leetprep/internal/attempt"
)

type reviewRepo struct {
	drv dialect.ExecQuerier
}

// Upsert is a single INSERT ... ON CONFLICT DO UPDATE statement, so the last
// write always wins.
func (r *reviewRepo) Upsert(ctx context.Context, problemID int, next time.Time) error {
	q, args := entsql.Dialect(dialect.SQLite).
		Insert(reviewsTable).
		Columns("problem_id", "next_review_date").
		Values(problemID, attempt.FormatDate(next)).
		OnConflict(entsql.ConflictColumns("problem_id"), entsql.ResolveWithNewValues()).
		Query()

	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("upsert review for problem %d: %w", problemID, err)
	}
	return nil
}

func (r *reviewRepo) Get(ctx context.Context, problemID int) (*Review, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select("problem_id", "next_review_date").
		From(entsql.Table(reviewsTable)).
		Where(entsql.EQ("problem_id", problemID)).
		Query()

	reviews, err := r.query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, nil
	}
	return &reviews[0], nil
}

func (r *reviewRepo) List(ctx context.Context) ([]Review, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select("problem_id", "next_review_date").
		From(entsql.Table(reviewsTable)).
		OrderBy("problem_id").
		Query()
	return r.query(ctx, q, args)
}

func (r *reviewRepo) Due(ctx context.Context, today time.Time) ([]DueProblem, error) {
	b := entsql.Dialect(dialect.SQLite)
	rv := b.Table(reviewsTable).As("r")
	p := b.Table(problemsTable).As("p")
	// YYYY-MM-DD text compares lexically in date order.
	q, args := b.
		Select(rv.C("problem_id"), p.C("slug"), p.C("title"), rv.C("next_review_date")).
		From(rv).
		Join(p).On(rv.C("problem_id"), p.C("id")).
		Where(entsql.LTE(rv.C("next_review_date"), attempt.FormatDate(today))).
		OrderBy(rv.C("next_review_date"), rv.C("problem_id")).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query due reviews: %w", err)
	}
	defer rows.Close()

	var due []DueProblem
	for rows.Next() {
		var (
			d    DueProblem
			date string
		)
		if err := rows.Scan(&d.ProblemID, &d.Slug, &d.Title, &date); err != nil {
			return nil, fmt.Errorf("scan due review: %w", err)
		}
		next, err := attempt.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("review of problem %d: %w", d.ProblemID, err)
		}
		d.NextReviewDate = next
		due = append(due, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate due reviews: %w", err)
	}
	return due, nil
}

func (r *reviewRepo) query(ctx context.Context, q string, args []any) ([]Review, error) {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var (
			rv   Review
			date string
		)
		if err := rows.Scan(&rv.ProblemID, &date); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		d, err := attempt.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("review of problem %d: %w", rv.ProblemID, err)
		}
		rv.NextReviewDate = d
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return reviews, nil
}
