package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestQualityFromScore(t *testing.T) {
	tests := []struct {
		name    string
		score   int
		quality int
	}{
		{"zero score", 0, 0},
		{"perfect score", 100, 5},
		{"boundary rounds up to passing", 50, 3}, // 2.5 rounds to 3
		{"just below passing boundary", 49, 2},
		{"high hire score", 70, 4}, // 3.5 rounds to 4
		{"top of hire band", 89, 4},
		{"strong hire", 90, 5},
		{"negative clamps to zero", -10, 0},
		{"above scale clamps to five", 130, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.quality, QualityFromScore(tt.score))
		})
	}
}

func TestNewCard(t *testing.T) {
	card := NewCard(testNow)

	assert.Equal(t, DefaultEase, card.Ease)
	assert.Equal(t, 0, card.IntervalDays)
	assert.Equal(t, 0, card.Repetitions)
	assert.Equal(t, testNow, card.DueAt)
}

func TestAdvance_PassingProgression(t *testing.T) {
	card := NewCard(testNow)

	// First pass: one day out. Quality 4 leaves ease unchanged.
	card = Advance(card, 4, testNow)
	assert.Equal(t, 1, card.Repetitions)
	assert.Equal(t, 1, card.IntervalDays)
	assert.InDelta(t, 2.5, card.Ease, 0.0001)
	assert.Equal(t, testNow.AddDate(0, 0, 1), card.DueAt)
	assert.Equal(t, testNow, card.ReviewedAt)

	// Second pass: six days out.
	next := testNow.AddDate(0, 0, 1)
	card = Advance(card, 4, next)
	assert.Equal(t, 2, card.Repetitions)
	assert.Equal(t, 6, card.IntervalDays)
	assert.Equal(t, next.AddDate(0, 0, 6), card.DueAt)

	// Third pass: interval multiplies by ease, round(6 * 2.5) = 15.
	later := next.AddDate(0, 0, 6)
	card = Advance(card, 4, later)
	assert.Equal(t, 3, card.Repetitions)
	assert.Equal(t, 15, card.IntervalDays)
}

func TestAdvance_EaseAdjustment(t *testing.T) {
	// Quality 5 grows ease by 0.1.
	card := Advance(NewCard(testNow), 5, testNow)
	assert.InDelta(t, 2.6, card.Ease, 0.0001)

	// Quality 3 shaves 0.14 off.
	card = Advance(NewCard(testNow), 3, testNow)
	assert.InDelta(t, 2.36, card.Ease, 0.0001)
}

func TestAdvance_FailureResets(t *testing.T) {
	card := Card{
		Ease:         2.2,
		IntervalDays: 30,
		Repetitions:  4,
	}

	card = Advance(card, 2, testNow)

	assert.Equal(t, 0, card.Repetitions)
	assert.Equal(t, 1, card.IntervalDays)
	assert.InDelta(t, 2.2, card.Ease, 0.0001, "failures reset the streak, not the ease")
	assert.Equal(t, testNow.AddDate(0, 0, 1), card.DueAt)
}

func TestAdvance_FailureThenRecovery(t *testing.T) {
	card := Card{Ease: 2.5, IntervalDays: 15, Repetitions: 3}

	card = Advance(card, 1, testNow)
	assert.Equal(t, 0, card.Repetitions)

	// Recovery restarts the 1 -> 6 ladder instead of resuming at 15 days.
	card = Advance(card, 4, testNow.AddDate(0, 0, 1))
	assert.Equal(t, 1, card.Repetitions)
	assert.Equal(t, 1, card.IntervalDays)

	card = Advance(card, 4, testNow.AddDate(0, 0, 2))
	assert.Equal(t, 6, card.IntervalDays)
}

func TestAdvance_EaseFloor(t *testing.T) {
	card := Card{Ease: MinEase, IntervalDays: 6, Repetitions: 2}

	for i := 0; i < 5; i++ {
		card = Advance(card, 3, testNow.AddDate(0, 0, i))
		assert.GreaterOrEqual(t, card.Ease, MinEase)
	}
	assert.InDelta(t, MinEase, card.Ease, 0.0001)
}

func TestAdvance_ZeroValueCardGetsDefaultEase(t *testing.T) {
	// Cards deserialized from old rows may carry a zero ease.
	card := Advance(Card{}, 4, testNow)

	assert.Equal(t, 1, card.Repetitions)
	assert.InDelta(t, DefaultEase, card.Ease, 0.0001)
}

func TestAdvance_ClampsQuality(t *testing.T) {
	high := Advance(NewCard(testNow), 9, testNow)
	assert.InDelta(t, 2.6, high.Ease, 0.0001, "quality above 5 behaves as 5")

	low := Advance(Card{Ease: 2.5, IntervalDays: 6, Repetitions: 2}, -3, testNow)
	assert.Equal(t, 0, low.Repetitions, "negative quality behaves as 0")
	assert.Equal(t, 1, low.IntervalDays)
}

func TestAdvance_LongRun(t *testing.T) {
	// A card answered perfectly every time spreads out quickly but the
	// interval stays finite and positive.
	card := NewCard(testNow)
	now := testNow
	for i := 0; i < 10; i++ {
		card = Advance(card, 5, now)
		assert.Greater(t, card.IntervalDays, 0)
		now = card.DueAt
	}
	assert.Equal(t, 10, card.Repetitions)
	assert.Greater(t, card.IntervalDays, 100)
}
