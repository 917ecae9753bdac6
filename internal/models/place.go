package models

// Place is a point of interest as loaded from the places dataset.
type Place struct {
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Lat              float64  `json:"lat"`
	Lon              float64  `json:"lon"`
	Rating           float64  `json:"rating"`
	Tags             []string `json:"tags,omitempty"`
	TrendScore       float64  `json:"trend_score,omitempty"`
	TotalReviews     int      `json:"total_reviews,omitempty"`
	ReviewGrowthRate float64  `json:"review_growth_rate,omitempty"`
	EstimatedCost    float64  `json:"estimated_cost,omitempty"`
	EnvironmentType  string   `json:"environment_type,omitempty"` // indoor, outdoor, both
	SuitableTime     string   `json:"suitable_time,omitempty"`
}
