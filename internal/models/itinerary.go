package models

import "math"

// Itinerary is one candidate route assembled by the planning stage.
type Itinerary struct {
	ID          string   `json:"id"`
	Locations   []string `json:"locations"`
	AvgRecScore float64  `json:"avg_rec_score"`
	TotalTime   float64  `json:"total_time"`
	TotalCost   float64  `json:"total_cost"`

	// FinalDecisionScore is set on the selected itinerary only.
	FinalDecisionScore *float64 `json:"final_decision_score,omitempty"`
}

// Constraints are the hard user limits a candidate must satisfy before it is
// scored at all. A nil field means unbounded.
type Constraints struct {
	MaxBudget *float64 `json:"max_budget,omitempty"`
	MaxTime   *float64 `json:"max_time,omitempty"`
}

// BudgetCeiling returns the budget limit, or +Inf when unbounded.
func (c Constraints) BudgetCeiling() float64 {
	if c.MaxBudget == nil {
		return math.Inf(1)
	}

	return *c.MaxBudget
}

// TimeCeiling returns the time limit, or +Inf when unbounded.
func (c Constraints) TimeCeiling() float64 {
	if c.MaxTime == nil {
		return math.Inf(1)
	}

	return *c.MaxTime
}

// AlertMap maps a location name to the description of an active alert there.
// A non-empty entry for any visited location triggers the decision penalty.
type AlertMap map[string]string
