// Package insights produces contextual alerts and explanations around a trip:
// weather and time-of-day warnings, budget overspend status, hot-trend
// detection, and the tags that explain why a place was recommended.
package insights

import (
	"fmt"
	"time"

	"smarttravel/internal/models"
)

// Level classifies alert severity.
type Level string

// Alert levels.
const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelDanger  Level = "danger"
)

// Alert is a single contextual warning or notice.
type Alert struct {
	Type    string `json:"type"` // weather, recommendation, traffic, crowd, safety, budget
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// WeatherRule describes how one weather condition affects planning.
type WeatherRule struct {
	Level        Level
	Message      string
	PreferIndoor bool // outdoor places get a change-of-plans warning
	BanOutdoor   bool // outdoor places get a danger alert
}

// HotTrendThresholds gate the hot-trend tag.
type HotTrendThresholds struct {
	MinRating    float64 `yaml:"min_rating" validate:"gte=0,lte=5"`
	MinReviews   int     `yaml:"min_reviews" validate:"gte=0"`
	RecentGrowth float64 `yaml:"recent_growth" validate:"gte=0"`
}

// BudgetThresholds trigger overspend alerts at the given spend ratios.
type BudgetThresholds struct {
	Warning  float64 `yaml:"warning" validate:"gt=0,lte=1"`
	Critical float64 `yaml:"critical" validate:"gt=0,lte=1"`
}

// Config carries the tunable thresholds.
type Config struct {
	HotTrend HotTrendThresholds `yaml:"hot_trend"`
	Budget   BudgetThresholds   `yaml:"budget"`
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		HotTrend: HotTrendThresholds{MinRating: 4.5, MinReviews: 100, RecentGrowth: 0.2},
		Budget:   BudgetThresholds{Warning: 0.8, Critical: 0.95},
	}
}

// System evaluates the contextual rules. Rule tables are built once and
// read-only afterwards.
type System struct {
	hotTrend HotTrendThresholds
	budget   BudgetThresholds
	weather  map[string]WeatherRule

	rushHours  map[int]bool
	lunchHours map[int]bool
	nightHours map[int]bool
}

// NewSystem creates an insight system with the given thresholds.
func NewSystem(cfg Config) *System {
	return &System{
		hotTrend: cfg.HotTrend,
		budget:   cfg.Budget,
		weather: map[string]WeatherRule{
			"rain":  {Level: LevelWarning, Message: "Rain expected - prefer indoor activities", PreferIndoor: true},
			"hot":   {Level: LevelInfo, Message: "Hot weather - bring water and sunscreen"},
			"cold":  {Level: LevelInfo, Message: "Cold weather - bring warm clothing"},
			"storm": {Level: LevelWarning, Message: "Storm warning - avoid outdoor activities", BanOutdoor: true},
		},
		rushHours:  hourSet(7, 8, 17, 18, 19),
		lunchHours: hourSet(11, 12, 13),
		nightHours: hourSet(22, 23, 0, 1, 2, 3, 4, 5),
	}
}

// HotTrendResult explains whether and why a place is trending.
type HotTrendResult struct {
	IsHotTrend bool     `json:"is_hot_trend"`
	Reasons    []string `json:"reasons,omitempty"`
}

// CheckHotTrend reports whether a place clears all three trend thresholds.
func (s *System) CheckHotTrend(p models.Place) HotTrendResult {
	hot := p.Rating >= s.hotTrend.MinRating &&
		p.TotalReviews >= s.hotTrend.MinReviews &&
		p.ReviewGrowthRate >= s.hotTrend.RecentGrowth

	if !hot {
		return HotTrendResult{}
	}

	return HotTrendResult{
		IsHotTrend: true,
		Reasons: []string{
			fmt.Sprintf("High rating (%.1f/5)", p.Rating),
			fmt.Sprintf("Well reviewed (%d reviews)", p.TotalReviews),
			fmt.Sprintf("Fast review growth (+%.0f%%)", p.ReviewGrowthRate*100),
		},
	}
}

// WeatherAlerts returns the alerts for a weather condition at a place of the
// given environment type ("indoor", "outdoor", "both"). Unknown conditions
// produce no alerts.
func (s *System) WeatherAlerts(condition, environment string) []Alert {
	rule, ok := s.weather[condition]
	if !ok {
		return nil
	}

	alerts := []Alert{{Type: "weather", Level: rule.Level, Message: rule.Message}}

	if environment == "outdoor" {
		if rule.PreferIndoor {
			alerts = append(alerts, Alert{
				Type:    "recommendation",
				Level:   LevelWarning,
				Message: "Outdoor place - consider changing plans",
			})
		}

		if rule.BanOutdoor {
			alerts = append(alerts, Alert{
				Type:    "recommendation",
				Level:   LevelDanger,
				Message: "Do not visit - dangerous weather conditions",
			})
		}
	}

	return alerts
}

// TimeAlerts flags rush-hour, lunch-time, and late-night visits.
func (s *System) TimeAlerts(visit time.Time) []Alert {
	hour := visit.Hour()

	var alerts []Alert

	if s.rushHours[hour] {
		alerts = append(alerts, Alert{Type: "traffic", Level: LevelInfo, Message: "Rush hour - expect heavy traffic"})
	}

	if s.lunchHours[hour] {
		alerts = append(alerts, Alert{Type: "crowd", Level: LevelInfo, Message: "Lunch time - restaurants may be crowded"})
	}

	if s.nightHours[hour] {
		alerts = append(alerts, Alert{Type: "safety", Level: LevelWarning, Message: "Late night - take extra care"})
	}

	return alerts
}

// BudgetStatus summarizes spend against the trip budget.
type BudgetStatus struct {
	Status     string  `json:"status"` // unknown, good, warning, critical
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	Alerts     []Alert `json:"alerts,omitempty"`
}

// CheckBudget reports the overspend status. A zero total budget yields an
// unknown status with no alerts.
func (s *System) CheckBudget(spent, total float64) BudgetStatus {
	if total == 0 {
		return BudgetStatus{Status: "unknown"}
	}

	ratio := spent / total
	status := BudgetStatus{
		Status:     "good",
		Spent:      spent,
		Remaining:  total - spent,
		Percentage: ratio * 100,
	}

	switch {
	case ratio >= s.budget.Critical:
		status.Status = "critical"
		status.Alerts = append(status.Alerts, Alert{
			Type:    "budget",
			Level:   LevelDanger,
			Message: fmt.Sprintf("Budget alert: %.1f%% of the budget already spent", ratio*100),
		})
	case ratio >= s.budget.Warning:
		status.Status = "warning"
		status.Alerts = append(status.Alerts, Alert{
			Type:    "budget",
			Level:   LevelWarning,
			Message: fmt.Sprintf("Heads up: %.1f%% of the budget already spent", ratio*100),
		})
	}

	return status
}

// LocationAlerts builds the decision engine's location alert map for a
// weather condition: outdoor places get the condition's message whenever the
// rule steers travelers indoors or bans outdoor activity.
func (s *System) LocationAlerts(places []models.Place, condition string) models.AlertMap {
	out := models.AlertMap{}

	rule, ok := s.weather[condition]
	if !ok || (!rule.PreferIndoor && !rule.BanOutdoor) {
		return out
	}

	for _, p := range places {
		if p.EnvironmentType == "outdoor" {
			out[p.Name] = rule.Message
		}
	}

	return out
}

func hourSet(hours ...int) map[int]bool {
	m := make(map[int]bool, len(hours))
	for _, h := range hours {
		m[h] = true
	}

	return m
}
