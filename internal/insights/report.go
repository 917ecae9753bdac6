package insights

import (
	"fmt"
	"strings"
	"time"

	"smarttravel/internal/models"
)

// Traveler is the user side of insight generation.
type Traveler struct {
	Interests   []string
	TravelTime  string // preferred time of day, e.g. "morning"
	TotalBudget float64
}

// Context is the live situation a report is generated under. Zero-valued
// parts are skipped: an empty weather string, a zero visit time, or a nil
// spending figure simply produce no alerts of that kind.
type Context struct {
	Weather         string
	VisitTime       time.Time
	CurrentSpending *float64
	Breakdown       ScoreBreakdown
}

// ScoreBreakdown carries per-criterion scores from the ranking stage.
type ScoreBreakdown struct {
	Preference float64
	Distance   float64
	Price      float64
	Rating     float64
}

// Report aggregates every insight about one place.
type Report struct {
	LocationName    string         `json:"location_name"`
	LocationType    string         `json:"location_type"`
	HotTrend        HotTrendResult `json:"hot_trend"`
	Alerts          []Alert        `json:"alerts,omitempty"`
	BudgetStatus    *BudgetStatus  `json:"budget_status,omitempty"`
	Tags            []string       `json:"tags,omitempty"`
	Recommendations []string       `json:"recommendations"`
}

// Report builds the comprehensive insight report for one place. The budget
// status projects the place's estimated cost on top of current spending.
func (s *System) Report(p models.Place, traveler Traveler, ctx Context) Report {
	report := Report{
		LocationName: p.Name,
		LocationType: p.Type,
		HotTrend:     s.CheckHotTrend(p),
	}

	if ctx.Weather != "" {
		environment := p.EnvironmentType
		if environment == "" {
			environment = "both"
		}

		report.Alerts = append(report.Alerts, s.WeatherAlerts(ctx.Weather, environment)...)
	}

	if !ctx.VisitTime.IsZero() {
		report.Alerts = append(report.Alerts, s.TimeAlerts(ctx.VisitTime)...)
	}

	if ctx.CurrentSpending != nil {
		status := s.CheckBudget(*ctx.CurrentSpending+p.EstimatedCost, traveler.TotalBudget)
		report.BudgetStatus = &status
		report.Alerts = append(report.Alerts, status.Alerts...)
	}

	report.Tags = s.ExplainTags(p, traveler, ctx.Breakdown)

	if hasDanger(report.Alerts) {
		report.Recommendations = append(report.Recommendations, "Think twice before visiting")
	} else {
		report.Recommendations = append(report.Recommendations, "Good to visit")
	}

	return report
}

// ExplainTags says why a place is being recommended.
func (s *System) ExplainTags(p models.Place, traveler Traveler, breakdown ScoreBreakdown) []string {
	var tags []string

	if matched := matchedInterests(p.Tags, traveler.Interests); len(matched) > 0 {
		if len(matched) > 2 {
			matched = matched[:2]
		}

		tags = append(tags, "Matches interests: "+strings.Join(matched, ", "))
	}

	if p.Rating >= s.hotTrend.MinRating {
		tags = append(tags, fmt.Sprintf("Excellent rating (%.1f/5)", p.Rating))
	}

	if breakdown.Distance > 0.7 {
		tags = append(tags, "Convenient location")
	}

	if breakdown.Price > 0.7 {
		tags = append(tags, "Fits the budget")
	}

	if s.CheckHotTrend(p).IsHotTrend {
		tags = append(tags, "Trending now")
	}

	if p.SuitableTime != "" && p.SuitableTime == traveler.TravelTime {
		tags = append(tags, "Good timing")
	}

	return tags
}

// matchedInterests returns the overlap in place-tag order.
func matchedInterests(tags, interests []string) []string {
	var matched []string

	for _, tag := range tags {
		for _, interest := range interests {
			if tag == interest {
				matched = append(matched, tag)

				break
			}
		}
	}

	return matched
}

func hasDanger(alerts []Alert) bool {
	for _, a := range alerts {
		if a.Level == LevelDanger {
			return true
		}
	}

	return false
}
