package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/leetprep/internal/attempt"
)

var problemColumns = []string{"id", "slug", "title", "difficulty", "topics"}

type problemRepo struct {
	drv dialect.ExecQuerier
}

func (r *problemRepo) GetBySlug(ctx context.Context, slug string) (*Problem, error) {
	return r.getOne(ctx, entsql.EQ("slug", slug))
}

func (r *problemRepo) Get(ctx context.Context, id int) (*Problem, error) {
	return r.getOne(ctx, entsql.EQ("id", id))
}

func (r *problemRepo) getOne(ctx context.Context, p *entsql.Predicate) (*Problem, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select(problemColumns...).
		From(entsql.Table(problemsTable)).
		Where(p).
		Limit(1).
		Query()

	problems, err := r.query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	if len(problems) == 0 {
		return nil, nil
	}
	return &problems[0], nil
}

func (r *problemRepo) InsertOrIgnore(ctx context.Context, p Problem) (bool, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Insert(problemsTable).
		Columns(problemColumns...).
		Values(p.ID, p.Slug, p.Title, string(p.Difficulty), attempt.JoinTopics(p.Topics)).
		OnConflict(entsql.ConflictColumns("id"), entsql.DoNothing()).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, q, args, &res); err != nil {
		return false, fmt.Errorf("insert problem %d: %w", p.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert problem %d: %w", p.ID, err)
	}
	return n > 0, nil
}

func (r *problemRepo) List(ctx context.Context) ([]Problem, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select(problemColumns...).
		From(entsql.Table(problemsTable)).
		OrderBy("id").
		Query()
	return r.query(ctx, q, args)
}

func (r *problemRepo) query(ctx context.Context, q string, args []any) ([]Problem, error) {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query problems: %w", err)
	}
	defer rows.Close()

	var problems []Problem
	for rows.Next() {
		var (
			p          Problem
			difficulty string
			topics     string
		)
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &difficulty, &topics); err != nil {
			return nil, fmt.Errorf("scan problem: %w", err)
		}
		p.Difficulty = attempt.Difficulty(difficulty)
		p.Topics = attempt.SplitTopics(topics)
		problems = append(problems, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate problems: %w", err)
	}
	return problems, nil
}
