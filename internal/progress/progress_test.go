package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 20, 15, 0, 0, 0, time.UTC)

func attemptAt(q uuid.UUID, category string, score int, verdict string, at time.Time) Attempt {
	return Attempt{
		QuestionID:   q,
		Category:     category,
		OverallScore: score,
		Verdict:      verdict,
		CreatedAt:    at,
	}
}

func TestBuild_Empty(t *testing.T) {
	report := Build(nil, now)

	assert.Equal(t, 0, report.TotalAttempts)
	assert.Equal(t, 0, report.QuestionsAttempted)
	assert.Equal(t, 0.0, report.AverageScore)
	assert.NotNil(t, report.Categories, "empty report should serialize maps as {} not null")
	assert.NotNil(t, report.Verdicts)
	assert.NotNil(t, report.Questions)
	assert.Equal(t, 0, report.StreakDays)
	assert.False(t, report.PracticedToday)
}

func TestBuild_TotalsAndAverages(t *testing.T) {
	q1 := uuid.New()
	q2 := uuid.New()
	attempts := []Attempt{
		attemptAt(q1, "technical", 80, "hire", now.Add(-2*time.Hour)),
		attemptAt(q1, "technical", 60, "lean_hire", now.Add(-time.Hour)),
		attemptAt(q2, "behavioral", 90, "strong_hire", now),
	}

	report := Build(attempts, now)

	assert.Equal(t, 3, report.TotalAttempts)
	assert.Equal(t, 2, report.QuestionsAttempted)
	assert.InDelta(t, 76.7, report.AverageScore, 0.001) // (80+60+90)/3 rounded to one decimal

	technical := report.Categories["technical"]
	assert.Equal(t, 2, technical.Attempts)
	assert.InDelta(t, 70.0, technical.AverageScore, 0.001)
	assert.Equal(t, 80, technical.BestScore)

	behavioral := report.Categories["behavioral"]
	assert.Equal(t, 1, behavioral.Attempts)
	assert.Equal(t, 90, behavioral.BestScore)
}

func TestBuild_VerdictDistribution(t *testing.T) {
	q := uuid.New()
	attempts := []Attempt{
		attemptAt(q, "technical", 85, "hire", now),
		attemptAt(q, "technical", 88, "hire", now),
		attemptAt(q, "technical", 40, "no_hire", now),
	}

	report := Build(attempts, now)

	assert.Equal(t, 2, report.Verdicts["hire"])
	assert.Equal(t, 1, report.Verdicts["no_hire"])
}

func TestBuild_BestAndLatestPerQuestion(t *testing.T) {
	q := uuid.New()
	attempts := []Attempt{
		attemptAt(q, "system_design", 80, "hire", now.Add(-time.Hour)),
		attemptAt(q, "system_design", 60, "lean_hire", now),
	}

	report := Build(attempts, now)

	require.Len(t, report.Questions, 1)
	qp := report.Questions[0]
	assert.Equal(t, 2, qp.Attempts)
	assert.Equal(t, 80, qp.BestScore, "best keeps the high-water mark")
	assert.Equal(t, 60, qp.LatestScore, "latest tracks the newest attempt even when it regressed")
	assert.Equal(t, "lean_hire", qp.LatestVerdict)
	assert.Equal(t, now, qp.LastAttempt)
}

func TestBuild_QuestionsOrderedByRecency(t *testing.T) {
	older := uuid.New()
	newer := uuid.New()
	attempts := []Attempt{
		attemptAt(older, "technical", 70, "hire", now.Add(-48*time.Hour)),
		attemptAt(newer, "technical", 75, "hire", now),
	}

	report := Build(attempts, now)

	require.Len(t, report.Questions, 2)
	assert.Equal(t, newer, report.Questions[0].QuestionID)
	assert.Equal(t, older, report.Questions[1].QuestionID)
}

func TestBuild_StreakPracticedToday(t *testing.T) {
	q := uuid.New()
	attempts := []Attempt{
		attemptAt(q, "technical", 70, "hire", now.AddDate(0, 0, -2)),
		attemptAt(q, "technical", 75, "hire", now.AddDate(0, 0, -1)),
		attemptAt(q, "technical", 80, "hire", now),
	}

	report := Build(attempts, now)

	assert.Equal(t, 3, report.StreakDays)
	assert.True(t, report.PracticedToday)
}

func TestBuild_StreakAliveFromYesterday(t *testing.T) {
	q := uuid.New()
	attempts := []Attempt{
		attemptAt(q, "technical", 70, "hire", now.AddDate(0, 0, -2)),
		attemptAt(q, "technical", 75, "hire", now.AddDate(0, 0, -1)),
	}

	report := Build(attempts, now)

	assert.Equal(t, 2, report.StreakDays, "no attempt today does not break yesterday's streak")
	assert.False(t, report.PracticedToday)
}

func TestBuild_StreakBrokenByGap(t *testing.T) {
	q := uuid.New()
	attempts := []Attempt{
		attemptAt(q, "technical", 70, "hire", now.AddDate(0, 0, -3)),
		attemptAt(q, "technical", 75, "hire", now),
	}

	report := Build(attempts, now)

	assert.Equal(t, 1, report.StreakDays)
}

func TestBuild_StreakStale(t *testing.T) {
	q := uuid.New()
	attempts := []Attempt{
		attemptAt(q, "technical", 70, "hire", now.AddDate(0, 0, -7)),
	}

	report := Build(attempts, now)

	assert.Equal(t, 0, report.StreakDays)
}

func TestBuild_StreakUsesUTCDays(t *testing.T) {
	q := uuid.New()
	// 23:50 yesterday and 00:10 today are separate UTC practice days.
	lateYesterday := time.Date(2025, 6, 19, 23, 50, 0, 0, time.UTC)
	earlyToday := time.Date(2025, 6, 20, 0, 10, 0, 0, time.UTC)
	attempts := []Attempt{
		attemptAt(q, "technical", 70, "hire", lateYesterday),
		attemptAt(q, "technical", 72, "hire", earlyToday),
	}

	report := Build(attempts, now)

	assert.Equal(t, 2, report.StreakDays)

	// Multiple attempts on the same day count once.
	sameDay := Build([]Attempt{
		attemptAt(q, "technical", 70, "hire", now.Add(-time.Hour)),
		attemptAt(q, "technical", 72, "hire", now),
	}, now)
	assert.Equal(t, 1, sameDay.StreakDays)
}
