// Package progress aggregates attempt history into a practice report. The
// package is pure: it sees attempt rows, not the database.
package progress

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Attempt is one scored answer, as the report builder needs it. Callers map
// database rows into this shape.
type Attempt struct {
	QuestionID   uuid.UUID
	Category     string
	OverallScore int
	Verdict      string
	CreatedAt    time.Time
}

// Report is the aggregate practice picture returned by GET /progress.
type Report struct {
	TotalAttempts      int                      `json:"total_attempts"`
	QuestionsAttempted int                      `json:"questions_attempted"`
	AverageScore       float64                  `json:"average_score"`
	Categories         map[string]CategoryStats `json:"categories"`
	Verdicts           map[string]int           `json:"verdicts"`
	Questions          []QuestionProgress       `json:"questions"`
	StreakDays         int                      `json:"streak_days"`
	PracticedToday     bool                     `json:"practiced_today"`
}

// CategoryStats summarizes attempts within one question category.
type CategoryStats struct {
	Attempts     int     `json:"attempts"`
	AverageScore float64 `json:"average_score"`
	BestScore    int     `json:"best_score"`
}

// QuestionProgress tracks best and latest outcomes for one question.
type QuestionProgress struct {
	QuestionID    uuid.UUID `json:"question_id"`
	Category      string    `json:"category"`
	Attempts      int       `json:"attempts"`
	BestScore     int       `json:"best_score"`
	LatestScore   int       `json:"latest_score"`
	LatestVerdict string    `json:"latest_verdict"`
	LastAttempt   time.Time `json:"last_attempt"`
}

// Build computes the report from attempts ordered oldest first. The streak
// counts consecutive UTC days with at least one attempt, ending today if the
// user practiced today, otherwise ending yesterday.
func Build(attempts []Attempt, now time.Time) *Report {
	report := &Report{
		Categories: make(map[string]CategoryStats),
		Verdicts:   make(map[string]int),
		Questions:  []QuestionProgress{},
	}

	if len(attempts) == 0 {
		return report
	}

	report.TotalAttempts = len(attempts)

	scoreTotal := 0
	categoryTotals := make(map[string]int)
	perQuestion := make(map[uuid.UUID]*QuestionProgress)
	practiceDays := make(map[time.Time]bool)

	for _, a := range attempts {
		scoreTotal += a.OverallScore
		report.Verdicts[a.Verdict]++
		practiceDays[utcDay(a.CreatedAt)] = true

		stats := report.Categories[a.Category]
		stats.Attempts++
		categoryTotals[a.Category] += a.OverallScore
		if a.OverallScore > stats.BestScore {
			stats.BestScore = a.OverallScore
		}
		report.Categories[a.Category] = stats

		qp, ok := perQuestion[a.QuestionID]
		if !ok {
			qp = &QuestionProgress{QuestionID: a.QuestionID, Category: a.Category}
			perQuestion[a.QuestionID] = qp
		}
		qp.Attempts++
		if a.OverallScore > qp.BestScore {
			qp.BestScore = a.OverallScore
		}
		// Attempts arrive oldest first, so the last write wins as latest.
		qp.LatestScore = a.OverallScore
		qp.LatestVerdict = a.Verdict
		qp.LastAttempt = a.CreatedAt
	}

	report.AverageScore = round1(float64(scoreTotal) / float64(len(attempts)))
	for category, stats := range report.Categories {
		stats.AverageScore = round1(float64(categoryTotals[category]) / float64(stats.Attempts))
		report.Categories[category] = stats
	}

	report.QuestionsAttempted = len(perQuestion)
	for _, qp := range perQuestion {
		report.Questions = append(report.Questions, *qp)
	}
	sort.Slice(report.Questions, func(i, j int) bool {
		if !report.Questions[i].LastAttempt.Equal(report.Questions[j].LastAttempt) {
			return report.Questions[i].LastAttempt.After(report.Questions[j].LastAttempt)
		}
		return report.Questions[i].QuestionID.String() < report.Questions[j].QuestionID.String()
	})

	today := utcDay(now)
	report.PracticedToday = practiceDays[today]
	report.StreakDays = streak(practiceDays, today)

	return report
}

// streak walks backwards from today (or yesterday, if today has no practice)
// counting consecutive practice days.
func streak(days map[time.Time]bool, today time.Time) int {
	day := today
	if !days[day] {
		day = day.AddDate(0, 0, -1)
		if !days[day] {
			return 0
		}
	}

	count := 0
	for days[day] {
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}

func utcDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
