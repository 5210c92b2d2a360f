package mastery

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/abhisek/leetprep/internal/attempt"
	"github.com/abhisek/leetprep/internal/config"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

var now = time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return NewEngine(config.DefaultConfig().Mastery)
}

func day(offset int) time.Time {
	return attempt.AddDays(now, offset)
}

func TestCompute_PerfectAttemptToday(t *testing.T) {
	attempts := []attempt.Attempt{
		{Slug: "two-sum", Difficulty: attempt.Easy, Topics: []string{"Array"}, Date: day(0), TimeTaken: 10, Confidence: 5, Success: true},
	}

	scores, err := newTestEngine().Compute(attempts, now)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d topics, want 1", len(scores))
	}
	if !almostEqual(scores["Array"], 1.0) {
		t.Errorf("mastery = %f, want 1.0", scores["Array"])
	}
	if Round(scores["Array"]) != 1.0 {
		t.Errorf("Round(mastery) = %v, want 1.0", Round(scores["Array"]))
	}
}

func TestCompute_Empty(t *testing.T) {
	scores, err := newTestEngine().Compute(nil, now)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("got %v, want empty", scores)
	}
}

func TestCompute_ExcludesAttemptsOutsideWindow(t *testing.T) {
	attempts := []attempt.Attempt{
		{Slug: "old", Difficulty: attempt.Easy, Topics: []string{"Graph"}, Date: day(-61), TimeTaken: 5, Confidence: 3, Success: true},
		{Slug: "edge", Difficulty: attempt.Easy, Topics: []string{"Tree"}, Date: day(-60), TimeTaken: 5, Confidence: 3, Success: true},
	}

	scores, err := newTestEngine().Compute(attempts, now)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if _, ok := scores["Graph"]; ok {
		t.Error("Graph should be absent: its only attempt is outside the window")
	}
	if _, ok := scores["Tree"]; !ok {
		t.Error("Tree should be present: its attempt is exactly on the cutoff")
	}
}

func TestCompute_MultiTopicAttemptJoinsEveryGroup(t *testing.T) {
	attempts := []attempt.Attempt{
		{Slug: "3sum", Difficulty: attempt.Medium, Topics: []string{"Array", " Two Pointers "}, Date: day(0), TimeTaken: 25, Confidence: 4, Success: true},
	}

	scores, err := newTestEngine().Compute(attempts, now)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("got %v, want Array and Two Pointers", scores)
	}
	if scores["Array"] != scores["Two Pointers"] {
		t.Errorf("Array = %f, Two Pointers = %f, want equal", scores["Array"], scores["Two Pointers"])
	}
}

func TestBreakdown_Factors(t *testing.T) {
	attempts := []attempt.Attempt{
		{Slug: "a", Difficulty: attempt.Medium, Topics: []string{"DP"}, Date: day(-14), TimeTaken: 50, Confidence: 2, Success: false},
		{Slug: "b", Difficulty: attempt.Hard, Topics: []string{"DP"}, Date: day(-7), TimeTaken: 0, Confidence: 4, Success: true},
	}

	result, err := newTestEngine().Breakdown(attempts, now)
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}
	ts, ok := result["DP"]
	if !ok {
		t.Fatal("DP missing")
	}

	if !almostEqual(ts.SuccessRate, 0.5) {
		t.Errorf("SuccessRate = %f, want 0.5", ts.SuccessRate)
	}
	// 25/50 = 0.5 and a zero-minute attempt = 1.
	if !almostEqual(ts.AvgSpeed, 0.75) {
		t.Errorf("AvgSpeed = %f, want 0.75", ts.AvgSpeed)
	}
	if !almostEqual(ts.Recency, math.Exp(-0.5)) {
		t.Errorf("Recency = %f, want %f", ts.Recency, math.Exp(-0.5))
	}
	if !almostEqual(ts.ConfidenceScore, 0.6) {
		t.Errorf("ConfidenceScore = %f, want 0.6", ts.ConfidenceScore)
	}
	if ts.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", ts.Attempts)
	}
	if !ts.LastAttempt.Equal(day(-7)) {
		t.Errorf("LastAttempt = %v, want %v", ts.LastAttempt, day(-7))
	}
	if ts.LastConfidence != 4 {
		t.Errorf("LastConfidence = %d, want 4", ts.LastConfidence)
	}

	want := 0.35*0.5 + 0.25*0.75 + 0.2*math.Exp(-0.5) + 0.2*0.6
	if !almostEqual(ts.Score, want) {
		t.Errorf("Score = %f, want %f", ts.Score, want)
	}
}

func TestBreakdown_FutureDateCountsAsToday(t *testing.T) {
	attempts := []attempt.Attempt{
		{Slug: "a", Difficulty: attempt.Easy, Topics: []string{"Heap"}, Date: day(3), TimeTaken: 10, Confidence: 5, Success: true},
	}

	result, err := newTestEngine().Breakdown(attempts, now)
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}
	if !almostEqual(result["Heap"].Recency, 1.0) {
		t.Errorf("Recency = %f, want 1.0", result["Heap"].Recency)
	}
}

func TestCompute_ScoresStayInUnitInterval(t *testing.T) {
	difficulties := attempt.Difficulties
	var attempts []attempt.Attempt
	for i := 0; i < 120; i++ {
		attempts = append(attempts, attempt.Attempt{
			Slug:       "p",
			Difficulty: difficulties[i%len(difficulties)],
			Topics:     []string{[]string{"Array", "DP", "Graph", "Tree"}[i%4]},
			Date:       day(-(i % 70)),
			TimeTaken:  float64(i % 90),
			Confidence: 1 + i%5,
			Success:    i%3 != 0,
		})
	}

	scores, err := newTestEngine().Compute(attempts, now)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for topic, s := range scores {
		if s < 0 || s > 1 {
			t.Errorf("%s = %f, outside [0,1]", topic, s)
		}
	}
}

func TestCompute_InvalidAttempt(t *testing.T) {
	tests := []struct {
		name string
		a    attempt.Attempt
	}{
		{"unknown difficulty", attempt.Attempt{Slug: "x", Difficulty: "Insane", Topics: []string{"A"}, Date: day(0), Confidence: 3}},
		{"confidence too high", attempt.Attempt{Slug: "x", Difficulty: attempt.Easy, Topics: []string{"A"}, Date: day(0), Confidence: 6}},
		{"negative time", attempt.Attempt{Slug: "x", Difficulty: attempt.Easy, Topics: []string{"A"}, Date: day(0), TimeTaken: -1, Confidence: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestEngine().Compute([]attempt.Attempt{tt.a}, now)
			if !errors.Is(err, attempt.ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestSpeedScore(t *testing.T) {
	tests := []struct {
		expected, taken, want float64
	}{
		{10, 0, 1},
		{10, 5, 1},
		{10, 10, 1},
		{10, 20, 0.5},
		{45, 90, 0.5},
	}
	for _, tt := range tests {
		if got := SpeedScore(tt.expected, tt.taken); !almostEqual(got, tt.want) {
			t.Errorf("SpeedScore(%v, %v) = %f, want %f", tt.expected, tt.taken, got, tt.want)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(0.8149); got != 0.81 {
		t.Errorf("Round(0.8149) = %v, want 0.81", got)
	}
	if got := Round(0.999); got != 1 {
		t.Errorf("Round(0.999) = %v, want 1", got)
	}
}
