package store

import (
	"context"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	problemsTable = "problems"
	attemptsTable = "attempts"
	reviewsTable  = "reviews"
)

var (
	// ProblemsColumns holds the columns for the "problems" table.
	ProblemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"Easy", "Medium", "Hard"}},
		{Name: "topics", Type: field.TypeString, Default: ""},
	}
	// ProblemsTable holds the schema information for the "problems" table.
	ProblemsTable = &schema.Table{
		Name:       problemsTable,
		Columns:    ProblemsColumns,
		PrimaryKey: []*schema.Column{ProblemsColumns[0]},
	}

	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "date", Type: field.TypeString},
		{Name: "time_taken", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeInt},
		{Name: "success", Type: field.TypeBool},
		{Name: "problem_id", Type: field.TypeInt},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       attemptsTable,
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attempts_problems_attempts",
				Columns:    []*schema.Column{AttemptsColumns[5]},
				RefColumns: []*schema.Column{ProblemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_date",
				Columns: []*schema.Column{AttemptsColumns[1]},
			},
		},
	}

	// ReviewsColumns holds the columns for the "reviews" table.
	ReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "next_review_date", Type: field.TypeString},
		{Name: "problem_id", Type: field.TypeInt, Unique: true},
	}
	// ReviewsTable holds the schema information for the "reviews" table.
	ReviewsTable = &schema.Table{
		Name:       reviewsTable,
		Columns:    ReviewsColumns,
		PrimaryKey: []*schema.Column{ReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reviews_problems_review",
				Columns:    []*schema.Column{ReviewsColumns[2]},
				RefColumns: []*schema.Column{ProblemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "review_next_review_date",
				Columns: []*schema.Column{ReviewsColumns[1]},
			},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProblemsTable,
		AttemptsTable,
		ReviewsTable,
	}
)

func init() {
	AttemptsTable.ForeignKeys[0].RefTable = ProblemsTable
	ReviewsTable.ForeignKeys[0].RefTable = ProblemsTable
}

// migrate creates or upgrades every table.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, Tables...)
}
