// Package attempt defines the practice attempt record consumed by the
// analytics packages, along with the boundary validation rules for it.
package attempt

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is the catalog difficulty of a problem.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists every known difficulty in presentation order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty accepts a difficulty name in any letter case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return "", &ValidationError{Field: "difficulty", Reason: fmt.Sprintf("unknown difficulty %q (want Easy, Medium or Hard)", s)}
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Attempt is a single logged practice attempt joined with the metadata of
// the problem it was made on.
type Attempt struct {
	Slug       string
	Difficulty Difficulty
	Topics     []string
	Date       time.Time // calendar date, see Day
	TimeTaken  float64   // minutes
	Confidence int       // 1-5
	Success    bool
}

// Validate checks the invariants analytics rely on.
func (a Attempt) Validate() error {
	if !a.Difficulty.Valid() {
		return &ValidationError{Field: "difficulty", Reason: fmt.Sprintf("unknown difficulty %q", a.Difficulty)}
	}
	if err := ValidateConfidence(a.Confidence); err != nil {
		return err
	}
	if err := ValidateTimeTaken(a.TimeTaken); err != nil {
		return err
	}
	if len(a.Topics) == 0 {
		return &ValidationError{Field: "topics", Reason: "at least one topic is required"}
	}
	for _, t := range a.Topics {
		if strings.TrimSpace(t) == "" {
			return &ValidationError{Field: "topics", Reason: "topic names must not be blank"}
		}
	}
	return nil
}
