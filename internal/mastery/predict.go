package mastery

import "math"

// predictSlope controls how sharply the success probability responds to the
// gap between mastery and task difficulty.
const predictSlope = 5.0

// PredictPerformance estimates the probability that a learner with the given
// mastery succeeds at a task of the given difficulty (both in [0,1]).
func PredictPerformance(mastery, difficulty float64) float64 {
	return sigmoid(predictSlope * (mastery - difficulty))
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
