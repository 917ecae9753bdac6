package validator

import (
	"testing"

	"smarttravel/internal/models"
	"smarttravel/internal/schema"
	"smarttravel/internal/taxonomy"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()

	return New(taxonomy.Default(), nil)
}

func validQuery() models.Record {
	return models.Record{
		"origin":         "US",
		"destination":    "VN",
		"departure_date": "2025-12-01",
		"return_date":    "2025-12-10",
		"adults":         2,
		"children":       0,
		"language":       "en-US",
		"currency":       "USD",
		"interests":      []string{"beach", "food"},
		"budget":         map[string]any{"amount": 5000, "currency": "USD"},
	}
}

func TestValidateQuery_Valid(t *testing.T) {
	v := newTestValidator(t)

	if issues := v.ValidateQuery(validQuery()); len(issues) != 0 {
		t.Errorf("valid query produced issues: %v", issues)
	}
}

func TestValidateQuery_AggregatesAllIssues(t *testing.T) {
	v := newTestValidator(t)

	rec := validQuery()
	delete(rec, "destination")
	rec["adults"] = 0
	rec["currency"] = "XYZ"

	issues := v.ValidateQuery(rec)

	want := []struct {
		code  Code
		field string
	}{
		{CodeReqFieldMissing, "destination"},
		{CodeAdultCountMin, "adults"},
		{CodeUnsupportedCurrency, "currency"},
	}

	if len(issues) != len(want) {
		t.Fatalf("got %d issues %v, want %d", len(issues), issues, len(want))
	}

	for i, w := range want {
		if issues[i].Code != w.code || issues[i].Field != w.field {
			t.Errorf("issue %d = {%s %s}, want {%s %s}", i, issues[i].Code, issues[i].Field, w.code, w.field)
		}
	}
}

func TestValidateQuery_DateOrder(t *testing.T) {
	v := newTestValidator(t)

	t.Run("return before departure", func(t *testing.T) {
		rec := validQuery()
		rec["departure_date"] = "2025-12-10"
		rec["return_date"] = "2025-12-01"

		issues := v.ValidateQuery(rec)
		if len(issues) != 1 || issues[0].Code != CodeDateOrder {
			t.Fatalf("issues = %v, want single DATE_ORDER", issues)
		}

		if issues[0].Field != "" {
			t.Errorf("DATE_ORDER field = %q, want empty", issues[0].Field)
		}
	})

	t.Run("same day is allowed", func(t *testing.T) {
		rec := validQuery()
		rec["departure_date"] = "2025-12-01"
		rec["return_date"] = "2025-12-01"

		if issues := v.ValidateQuery(rec); len(issues) != 0 {
			t.Errorf("same-day trip produced issues: %v", issues)
		}
	})

	t.Run("skipped when a date is malformed", func(t *testing.T) {
		rec := validQuery()
		rec["departure_date"] = "12/01/2025"
		rec["return_date"] = "2025-01-01"

		issues := v.ValidateQuery(rec)
		if len(issues) != 1 || issues[0].Code != CodeInvalidDateFormat {
			t.Fatalf("issues = %v, want single INVALID_DATE_FORMAT", issues)
		}
	})
}

func TestValidateProfile(t *testing.T) {
	v := newTestValidator(t)

	rec := models.Record{
		"user_id":             "u1",
		"language_preference": "Klingon",
		"currency_preference": "USD",
		"home_country":        "Atlantis",
		"interests":           []string{"beach", "skiing"},
	}

	issues := v.ValidateProfile(rec)

	want := []struct {
		code  Code
		field string
	}{
		{CodeUnsupportedLanguage, "language_preference"},
		{CodeInvalidCountryCode, "home_country"},
		{CodeUnsupportedInterest, "interests.1"},
	}

	if len(issues) != len(want) {
		t.Fatalf("got %d issues %v, want %d", len(issues), issues, len(want))
	}

	for i, w := range want {
		if issues[i].Code != w.code || issues[i].Field != w.field {
			t.Errorf("issue %d = {%s %s}, want {%s %s}", i, issues[i].Code, issues[i].Field, w.code, w.field)
		}
	}
}

func TestMapViolation(t *testing.T) {
	tests := []struct {
		name string
		in   schema.Violation
		want Code
	}{
		{"required", schema.Violation{Kind: schema.KindRequired, Field: "origin"}, CodeReqFieldMissing},
		{"type", schema.Violation{Kind: schema.KindType, Field: "adults"}, CodeInvalidType},
		{"format", schema.Violation{Kind: schema.KindFormat, Field: "departure_date"}, CodeInvalidDateFormat},
		{"language enum", schema.Violation{Kind: schema.KindEnum, Field: "language_preference"}, CodeUnsupportedLanguage},
		{"nested currency enum", schema.Violation{Kind: schema.KindEnum, Field: "budget.currency"}, CodeUnsupportedCurrency},
		{"interest item enum", schema.Violation{Kind: schema.KindEnum, Field: "interests.2"}, CodeUnsupportedInterest},
		{"other enum", schema.Violation{Kind: schema.KindEnum, Field: "season"}, CodeInvalidValue},
		{"origin pattern", schema.Violation{Kind: schema.KindPattern, Field: "origin"}, CodeInvalidCountryCode},
		{"country pattern", schema.Violation{Kind: schema.KindPattern, Field: "home_country"}, CodeInvalidCountryCode},
		{"other pattern", schema.Violation{Kind: schema.KindPattern, Field: "user_id"}, CodeInvalidValue},
		{"adults minimum", schema.Violation{Kind: schema.KindMinimum, Field: "adults"}, CodeAdultCountMin},
		{"children minimum", schema.Violation{Kind: schema.KindMinimum, Field: "children"}, CodeChildCountMin},
		{"other minimum", schema.Violation{Kind: schema.KindMinimum, Field: "budget.amount"}, CodeInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapViolation(tt.in); got != tt.want {
				t.Errorf("mapViolation(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
