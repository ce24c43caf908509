// Package scheduler implements SM-2 style spaced repetition scheduling for
// review cards. The package is pure: callers pass the clock in and persist
// the returned state themselves.
package scheduler

import (
	"math"
	"time"
)

const (
	// DefaultEase is the starting ease factor for a new card.
	DefaultEase = 2.5
	// MinEase is the floor below which repeated failures cannot push ease.
	MinEase = 1.3

	firstIntervalDays  = 1
	secondIntervalDays = 6

	// passingQuality is the lowest recall quality that advances a card
	// instead of resetting it.
	passingQuality = 3
	maxQuality     = 5
)

// Card is the scheduling state for one question.
type Card struct {
	Ease         float64
	IntervalDays int
	Repetitions  int
	DueAt        time.Time
	ReviewedAt   time.Time
}

// NewCard returns a card due immediately with the default ease.
func NewCard(now time.Time) Card {
	return Card{Ease: DefaultEase, DueAt: now}
}

// QualityFromScore maps an evaluation overall score (0..100) onto the 0..5
// SM-2 recall quality scale. 50 rounds up to 3, the lowest passing grade.
func QualityFromScore(score int) int {
	quality := int(math.Round(float64(score) / 20.0))
	if quality < 0 {
		return 0
	}
	if quality > maxQuality {
		return maxQuality
	}
	return quality
}

// Advance applies one review at the given quality and returns the updated
// card. A failing review (quality below 3) resets the repetition streak and
// brings the card back in one day. A passing review grows the interval
// 1 -> 6 -> round(interval * ease) and adjusts ease by the SM-2 delta,
// floored at MinEase. Out-of-range quality is clamped.
func Advance(card Card, quality int, now time.Time) Card {
	if quality < 0 {
		quality = 0
	}
	if quality > maxQuality {
		quality = maxQuality
	}

	next := card
	if next.Ease <= 0 {
		next.Ease = DefaultEase
	}

	if quality < passingQuality {
		next.Repetitions = 0
		next.IntervalDays = firstIntervalDays
	} else {
		switch next.Repetitions {
		case 0:
			next.IntervalDays = firstIntervalDays
		case 1:
			next.IntervalDays = secondIntervalDays
		default:
			next.IntervalDays = int(math.Round(float64(next.IntervalDays) * next.Ease))
		}
		next.Repetitions++

		q := float64(quality)
		next.Ease += 0.1 - (5-q)*(0.08+(5-q)*0.02)
		if next.Ease < MinEase {
			next.Ease = MinEase
		}
	}

	next.ReviewedAt = now
	next.DueAt = now.AddDate(0, 0, next.IntervalDays)
	return next
}
