// Package decision selects the best candidate itinerary under hard user
// constraints. Metrics are min-max normalized across the candidate set, then
// blended with configured weights; touching an alerted location halves the
// blended score once.
package decision

import (
	"math"

	"smarttravel/internal/logger"
	"smarttravel/internal/models"
)

// Weights blends the three normalized metrics into the decision score.
// Recommendation scores count higher-is-better; time and cost are inverted
// before blending so a lower raw value earns a higher share.
type Weights struct {
	Recommendation float64 `yaml:"recommendation" validate:"gt=0"`
	Time           float64 `yaml:"time" validate:"gt=0"`
	Cost           float64 `yaml:"cost" validate:"gt=0"`
}

// DefaultWeights returns the production blend.
func DefaultWeights() Weights {
	return Weights{Recommendation: 0.5, Time: 0.3, Cost: 0.2}
}

// DefaultAlertPenalty is the multiplicative score reduction applied when a
// candidate visits an alerted location.
const DefaultAlertPenalty = 0.5

// Engine scores candidates and picks the winner. Weights and penalty are
// injected at construction so tests can run alternative blends without
// touching shared state.
type Engine struct {
	weights      Weights
	alertPenalty float64
	log          *logger.Logger
}

// NewEngine creates a decision engine. A nil logger gets a default one.
func NewEngine(weights Weights, alertPenalty float64, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.NewLogger("info")
	}

	return &Engine{
		weights:      weights,
		alertPenalty: alertPenalty,
		log:          log,
	}
}

// Select returns the highest-scoring itinerary that satisfies every hard
// constraint, or nil when all candidates are excluded. Excluded candidates
// are never scored. Ties keep the earlier candidate in input order, and the
// final decision score is attached to the winner only.
func (e *Engine) Select(candidates []*models.Itinerary, constraints models.Constraints, alerts models.AlertMap) *models.Itinerary {
	if len(candidates) == 0 {
		return nil
	}

	// Min/max are computed over all candidates, before constraint filtering,
	// so the normalization frame does not shift with the constraints.
	b := measure(candidates)

	var best *models.Itinerary

	bestScore := math.Inf(-1)

	for _, it := range candidates {
		if it.TotalCost > constraints.BudgetCeiling() {
			e.log.Debug("itinerary rejected", "id", it.ID, "reason", "over budget", "cost", it.TotalCost)

			continue
		}

		if it.TotalTime > constraints.TimeCeiling() {
			e.log.Debug("itinerary rejected", "id", it.ID, "reason", "over time", "time", it.TotalTime)

			continue
		}

		scoreNorm := normalize(it.AvgRecScore, b.minScore, b.maxScore)
		timeNorm := normalizeInverse(it.TotalTime, b.minTime, b.maxTime)
		costNorm := normalizeInverse(it.TotalCost, b.minCost, b.maxCost)

		penalty := e.penaltyFor(it, alerts)

		raw := e.weights.Recommendation*scoreNorm + e.weights.Time*timeNorm + e.weights.Cost*costNorm
		final := raw * (1 - penalty)

		e.log.Debug("itinerary scored", "id", it.ID, "score", final, "penalty", penalty)

		if final > bestScore {
			bestScore = final
			best = it
		}
	}

	if best != nil {
		score := bestScore
		best.FinalDecisionScore = &score
	}

	return best
}

// penaltyFor returns the alert penalty when any visited location has a
// non-empty alert. The penalty applies once, at the first match.
func (e *Engine) penaltyFor(it *models.Itinerary, alerts models.AlertMap) float64 {
	for _, loc := range it.Locations {
		if alert, ok := alerts[loc]; ok && alert != "" {
			e.log.Debug("itinerary under alert", "id", it.ID, "location", loc, "alert", alert)

			return e.alertPenalty
		}
	}

	return 0
}

// bounds holds the observed metric ranges across the candidate set.
type bounds struct {
	minScore, maxScore float64
	minTime, maxTime   float64
	minCost, maxCost   float64
}

func measure(candidates []*models.Itinerary) bounds {
	b := bounds{
		minScore: math.Inf(1), maxScore: math.Inf(-1),
		minTime: math.Inf(1), maxTime: math.Inf(-1),
		minCost: math.Inf(1), maxCost: math.Inf(-1),
	}

	for _, it := range candidates {
		b.minScore = math.Min(b.minScore, it.AvgRecScore)
		b.maxScore = math.Max(b.maxScore, it.AvgRecScore)
		b.minTime = math.Min(b.minTime, it.TotalTime)
		b.maxTime = math.Max(b.maxTime, it.TotalTime)
		b.minCost = math.Min(b.minCost, it.TotalCost)
		b.maxCost = math.Max(b.maxCost, it.TotalCost)
	}

	return b
}

// normalize rescales into [0,1]. A degenerate range carries no discriminating
// information and counts as fully favorable.
func normalize(v, min, max float64) float64 {
	if max == min {
		return 1.0
	}

	return (v - min) / (max - min)
}

// normalizeInverse rescales into [0,1] with lower raw values scoring higher.
func normalizeInverse(v, min, max float64) float64 {
	if max == min {
		return 1.0
	}

	return (max - v) / (max - min)
}
