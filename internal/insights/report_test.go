package insights

import (
	"strings"
	"testing"
	"time"

	"smarttravel/internal/models"
)

func TestReport(t *testing.T) {
	s := NewSystem(DefaultConfig())

	place := models.Place{
		Name:             "City Park",
		Type:             "park",
		Rating:           4.6,
		Tags:             []string{"nature", "family"},
		TrendScore:       0.8,
		TotalReviews:     300,
		ReviewGrowthRate: 0.25,
		EstimatedCost:    50,
		EnvironmentType:  "outdoor",
		SuitableTime:     "morning",
	}

	traveler := Traveler{
		Interests:   []string{"nature"},
		TravelTime:  "morning",
		TotalBudget: 1000,
	}

	spending := 900.0
	ctx := Context{
		Weather:         "storm",
		VisitTime:       time.Date(2025, 11, 5, 8, 0, 0, 0, time.UTC),
		CurrentSpending: &spending,
		Breakdown:       ScoreBreakdown{Distance: 0.9, Price: 0.8},
	}

	report := s.Report(place, traveler, ctx)

	if report.LocationName != "City Park" || report.LocationType != "park" {
		t.Errorf("header = %s/%s", report.LocationName, report.LocationType)
	}

	if !report.HotTrend.IsHotTrend {
		t.Error("place should be a hot trend")
	}

	// storm weather + outdoor danger + rush hour + budget critical (950/1000)
	if len(report.Alerts) != 4 {
		t.Errorf("alerts = %v, want 4", report.Alerts)
	}

	if report.BudgetStatus == nil || report.BudgetStatus.Status != "critical" {
		t.Errorf("budget status = %+v, want critical", report.BudgetStatus)
	}

	wantTags := []string{
		"Matches interests: nature",
		"Excellent rating (4.6/5)",
		"Convenient location",
		"Fits the budget",
		"Trending now",
		"Good timing",
	}

	if len(report.Tags) != len(wantTags) {
		t.Fatalf("tags = %v, want %v", report.Tags, wantTags)
	}

	for i, want := range wantTags {
		if report.Tags[i] != want {
			t.Errorf("tag %d = %q, want %q", i, report.Tags[i], want)
		}
	}

	if len(report.Recommendations) != 1 || report.Recommendations[0] != "Think twice before visiting" {
		t.Errorf("recommendations = %v", report.Recommendations)
	}
}

func TestReport_QuietContext(t *testing.T) {
	s := NewSystem(DefaultConfig())

	place := models.Place{Name: "Cafe", Type: "cafe", Rating: 4.0}

	report := s.Report(place, Traveler{}, Context{})

	if len(report.Alerts) != 0 {
		t.Errorf("alerts = %v, want none", report.Alerts)
	}

	if report.BudgetStatus != nil {
		t.Errorf("budget status = %+v, want nil without spending data", report.BudgetStatus)
	}

	if len(report.Recommendations) != 1 || report.Recommendations[0] != "Good to visit" {
		t.Errorf("recommendations = %v", report.Recommendations)
	}
}

func TestReport_EnvironmentDefaultsToBoth(t *testing.T) {
	s := NewSystem(DefaultConfig())

	place := models.Place{Name: "Plaza", Type: "square"} // no environment type

	report := s.Report(place, Traveler{}, Context{Weather: "storm"})

	// Without an outdoor classification the storm yields only the base alert.
	if len(report.Alerts) != 1 || report.Alerts[0].Type != "weather" {
		t.Errorf("alerts = %v, want the weather alert only", report.Alerts)
	}
}

func TestExplainTags_InterestCap(t *testing.T) {
	s := NewSystem(DefaultConfig())

	place := models.Place{
		Rating: 3.0,
		Tags:   []string{"beach", "food", "culture"},
	}

	traveler := Traveler{Interests: []string{"culture", "beach", "food"}}

	tags := s.ExplainTags(place, traveler, ScoreBreakdown{})

	if len(tags) != 1 {
		t.Fatalf("tags = %v, want one", tags)
	}

	// Matches keep place-tag order and cap at two entries.
	if tags[0] != "Matches interests: beach, food" {
		t.Errorf("tag = %q", tags[0])
	}
}

func TestExplainTags_NoMatches(t *testing.T) {
	s := NewSystem(DefaultConfig())

	tags := s.ExplainTags(models.Place{Rating: 3.0}, Traveler{}, ScoreBreakdown{})

	if tags != nil {
		t.Errorf("tags = %v, want none", tags)
	}
}

func TestExplainTags_TimingNeedsBothSides(t *testing.T) {
	s := NewSystem(DefaultConfig())

	place := models.Place{Rating: 3.0, SuitableTime: ""}
	traveler := Traveler{TravelTime: ""}

	tags := s.ExplainTags(place, traveler, ScoreBreakdown{})

	for _, tag := range tags {
		if strings.Contains(tag, "timing") {
			t.Errorf("empty suitable time should not produce %q", tag)
		}
	}
}
