// Package rating implements the Elo-style skill rating model: a numeric
// rating per (user, skill) updated incrementally after each graded attempt.
// It is a distinct mastery model from the EWMA history fold and the two are
// not reconciled; each backs different flows.
package rating

import "math"

const (
	// MinRating and MaxRating bound every rating.
	MinRating = 800
	MaxRating = 1400

	// InitialRating is the rating assigned before any graded attempt.
	InitialRating = 1000

	// DefaultK is the default K-factor: the maximum rating change from a
	// single attempt.
	DefaultK = 32
)

// Update returns the new rating after one graded attempt. outcome is 1 for
// a correct answer, 0 for incorrect. taskDifficulty is on the same scale as
// the rating. The result is clamped to [MinRating, MaxRating].
func Update(current, taskDifficulty float64, outcome int, k float64) float64 {
	expected := Expected(current, taskDifficulty)
	next := current + k*(float64(outcome)-expected)
	return clamp(next, MinRating, MaxRating)
}

// Expected returns the logistic expected outcome for a rating against a task
// difficulty: 1 / (1 + 10^((difficulty - rating)/400)).
func Expected(rating, taskDifficulty float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (taskDifficulty-rating)/400.0))
}

// ToMastery converts a rating to a mastery probability in (0,1):
// sigmoid((rating - 1000) / 200).
func ToMastery(rating float64) float64 {
	return 1.0 / (1.0 + math.Exp(-(rating-1000.0)/200.0))
}

// TaskDifficulty maps a [0,1] difficulty onto the rating scale, so graded
// attempts recorded with normalized difficulty can feed Update.
func TaskDifficulty(normalized float64) float64 {
	return MinRating + clamp(normalized, 0, 1)*(MaxRating-MinRating)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
