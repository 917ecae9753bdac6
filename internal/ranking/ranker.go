// Package ranking orders points of interest by a composite score blending
// preference match, proximity, rating, and trend.
package ranking

import (
	"math"
	"sort"

	"smarttravel/internal/models"
)

// Weights control the composite score blend.
type Weights struct {
	Preference float64 `yaml:"preference" validate:"gte=0"`
	Distance   float64 `yaml:"distance" validate:"gte=0"`
	Rating     float64 `yaml:"rating" validate:"gte=0"`
	Trend      float64 `yaml:"trend" validate:"gte=0"`
}

// DefaultWeights returns the production blend.
func DefaultWeights() Weights {
	return Weights{Preference: 0.4, Distance: 0.25, Rating: 0.25, Trend: 0.1}
}

// Visitor is the user context places are scored against.
type Visitor struct {
	Interests []string
	Lat       float64
	Lon       float64
}

// ScoredPlace pairs a place with its composite score and explanation tags.
type ScoredPlace struct {
	models.Place

	CompositeScore float64  `json:"composite_score"`
	ExplainTags    []string `json:"explain_tags,omitempty"`
}

// Ranker computes composite scores.
type Ranker struct {
	weights Weights
}

// NewRanker creates a ranker with the given weights.
func NewRanker(weights Weights) *Ranker {
	return &Ranker{weights: weights}
}

// DistanceScore maps the flat lat/lon distance onto [0,1]; anything 10 or
// more degrees away scores zero.
func (r *Ranker) DistanceScore(p models.Place, v Visitor) float64 {
	dx := p.Lat - v.Lat
	dy := p.Lon - v.Lon
	dist := math.Sqrt(dx*dx + dy*dy)

	return math.Max(0, 1-dist/10)
}

// Score computes the composite score of one place for a visitor.
func (r *Ranker) Score(p models.Place, v Visitor) float64 {
	preference := 0.0
	if matchesInterests(p.Tags, v.Interests) {
		preference = 1.0
	}

	return r.weights.Preference*preference +
		r.weights.Distance*r.DistanceScore(p, v) +
		r.weights.Rating*p.Rating/5 +
		r.weights.Trend*p.TrendScore
}

// TopN returns the n best places with explanation tags, highest score first.
// Equal scores keep their input order.
func (r *Ranker) TopN(places []models.Place, v Visitor, n int) []ScoredPlace {
	scored := make([]ScoredPlace, 0, len(places))

	for _, p := range places {
		scored = append(scored, ScoredPlace{
			Place:          p,
			CompositeScore: r.Score(p, v),
			ExplainTags:    explain(p, v),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].CompositeScore > scored[j].CompositeScore
	})

	if n > 0 && n < len(scored) {
		scored = scored[:n]
	}

	return scored
}

func explain(p models.Place, v Visitor) []string {
	var tags []string

	if matchesInterests(p.Tags, v.Interests) {
		tags = append(tags, "Matches preference")
	}

	if p.Rating >= 4 {
		tags = append(tags, "High rating")
	}

	return tags
}

func matchesInterests(tags, interests []string) bool {
	for _, tag := range tags {
		for _, interest := range interests {
			if tag == interest {
				return true
			}
		}
	}

	return false
}
