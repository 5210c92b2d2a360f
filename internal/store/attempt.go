package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/leetprep/internal/attempt"
)

type attemptRepo struct {
	drv dialect.ExecQuerier
}

func (r *attemptRepo) Insert(ctx context.Context, a AttemptRow) (int64, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Insert(attemptsTable).
		Columns("problem_id", "date", "time_taken", "confidence", "success").
		Values(a.ProblemID, attempt.FormatDate(a.Date), a.TimeTaken, a.Confidence, a.Success).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, q, args, &res); err != nil {
		return 0, fmt.Errorf("insert attempt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert attempt: %w", err)
	}
	return id, nil
}

func (r *attemptRepo) List(ctx context.Context) ([]attempt.Attempt, error) {
	b := entsql.Dialect(dialect.SQLite)
	// Join renames an unaliased joined table to t1, so alias both up front.
	at := b.Table(attemptsTable).As("a")
	p := b.Table(problemsTable).As("p")
	q, args := b.
		Select(p.C("slug"), p.C("difficulty"), p.C("topics"),
			at.C("date"), at.C("time_taken"), at.C("confidence"), at.C("success")).
		From(at).
		Join(p).On(at.C("problem_id"), p.C("id")).
		OrderBy(at.C("date"), at.C("id")).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []attempt.Attempt
	for rows.Next() {
		var (
			a                        attempt.Attempt
			difficulty, topics, date string
		)
		if err := rows.Scan(&a.Slug, &difficulty, &topics, &date, &a.TimeTaken, &a.Confidence, &a.Success); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		d, err := attempt.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("attempt on %s: %w", a.Slug, err)
		}
		a.Date = d
		a.Difficulty = attempt.Difficulty(difficulty)
		a.Topics = attempt.SplitTopics(topics)
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return attempts, nil
}
