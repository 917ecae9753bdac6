package schema

import (
	"reflect"
	"regexp"
	"testing"

	"smarttravel/internal/taxonomy"
)

func TestEvaluate_RequiredAndOrder(t *testing.T) {
	s := &Schema{
		Title: "Test",
		Fields: []Field{
			{Name: "a", Type: TypeString, Required: true},
			{Name: "b", Type: TypeString},
			{Name: "c", Type: TypeInteger, Required: true},
		},
	}

	got := s.Evaluate(map[string]any{"b": 7})

	want := []Violation{
		{Kind: KindRequired, Field: "a"},
		{Kind: KindType, Field: "b"},
		{Kind: KindRequired, Field: "c"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate() = %v, want %v", got, want)
	}
}

func TestEvaluate_TypeFailureShortCircuits(t *testing.T) {
	s := &Schema{
		Fields: []Field{
			{Name: "color", Type: TypeString, Enum: []string{"red", "blue"}},
		},
	}

	got := s.Evaluate(map[string]any{"color": 42})

	want := []Violation{{Kind: KindType, Field: "color"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate() = %v, want %v", got, want)
	}
}

func TestEvaluate_StringConstraints(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z]{2}$`)

	tests := []struct {
		name  string
		field Field
		value any
		want  []Violation
	}{
		{
			"enum miss",
			Field{Name: "color", Type: TypeString, Enum: []string{"red", "blue"}},
			"green",
			[]Violation{{Kind: KindEnum, Field: "color"}},
		},
		{
			"enum hit",
			Field{Name: "color", Type: TypeString, Enum: []string{"red", "blue"}},
			"red",
			nil,
		},
		{
			"pattern miss",
			Field{Name: "code", Type: TypeString, Pattern: pattern},
			"usa",
			[]Violation{{Kind: KindPattern, Field: "code"}},
		},
		{
			"format miss",
			Field{Name: "when", Type: TypeString, Format: FormatDate},
			"12/01/2025",
			[]Violation{{Kind: KindFormat, Field: "when"}},
		},
		{
			"format hit",
			Field{Name: "when", Type: TypeString, Format: FormatDate},
			"2025-12-01",
			nil,
		},
		{
			"format impossible day",
			Field{Name: "when", Type: TypeString, Format: FormatDate},
			"2025-02-30",
			[]Violation{{Kind: KindFormat, Field: "when"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Schema{Fields: []Field{tt.field}}

			got := s.Evaluate(map[string]any{tt.field.Name: tt.value})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_NumericTypes(t *testing.T) {
	min := 1.0

	s := &Schema{
		Fields: []Field{
			{Name: "adults", Type: TypeInteger, Minimum: &min},
		},
	}

	tests := []struct {
		name  string
		value any
		want  []Violation
	}{
		{"int ok", 2, nil},
		{"integral float accepted", 2.0, nil},
		{"fractional float rejected", 2.5, []Violation{{Kind: KindType, Field: "adults"}}},
		{"below minimum", 0, []Violation{{Kind: KindMinimum, Field: "adults"}}},
		{"string rejected", "2", []Violation{{Kind: KindType, Field: "adults"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Evaluate(map[string]any{"adults": tt.value})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestEvaluate_ArrayItems(t *testing.T) {
	s := &Schema{
		Fields: []Field{
			{Name: "tags", Type: TypeArray, Items: &Field{
				Name: "tags", Type: TypeString, Enum: []string{"beach", "food"},
			}},
		},
	}

	got := s.Evaluate(map[string]any{"tags": []any{"beach", "skiing", 3}})

	want := []Violation{
		{Kind: KindEnum, Field: "tags.1"},
		{Kind: KindType, Field: "tags.2"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate() = %v, want %v", got, want)
	}

	if got := s.Evaluate(map[string]any{"tags": []string{"beach", "food"}}); got != nil {
		t.Errorf("Evaluate([]string) = %v, want no violations", got)
	}
}

func TestEvaluate_ObjectProperties(t *testing.T) {
	min := 0.0

	s := &Schema{
		Fields: []Field{
			{Name: "budget", Type: TypeObject, Properties: []Field{
				{Name: "amount", Type: TypeNumber, Required: true, Minimum: &min},
				{Name: "currency", Type: TypeString, Enum: []string{"USD", "EUR"}},
			}},
		},
	}

	t.Run("nested paths are dotted", func(t *testing.T) {
		got := s.Evaluate(map[string]any{
			"budget": map[string]any{"amount": -5.0, "currency": "XYZ"},
		})

		want := []Violation{
			{Kind: KindMinimum, Field: "budget.amount"},
			{Kind: KindEnum, Field: "budget.currency"},
		}

		if !reflect.DeepEqual(got, want) {
			t.Errorf("Evaluate() = %v, want %v", got, want)
		}
	})

	t.Run("missing nested required keeps bare name", func(t *testing.T) {
		got := s.Evaluate(map[string]any{"budget": map[string]any{}})

		want := []Violation{{Kind: KindRequired, Field: "amount"}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Evaluate() = %v, want %v", got, want)
		}
	})
}

func TestProfileSchema(t *testing.T) {
	s := ProfileSchema(taxonomy.Default())

	rec := map[string]any{
		"user_id":             "u1",
		"language_preference": "en-US",
		"currency_preference": "USD",
		"home_country":        "US",
		"interests":           []string{"beach"},
	}

	if got := s.Evaluate(rec); got != nil {
		t.Errorf("valid profile produced violations: %v", got)
	}

	rec["home_country"] = "Atlantis"
	delete(rec, "currency_preference")

	got := s.Evaluate(rec)
	want := []Violation{
		{Kind: KindRequired, Field: "currency_preference"},
		{Kind: KindPattern, Field: "home_country"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate() = %v, want %v", got, want)
	}
}

func TestQuerySchema(t *testing.T) {
	s := QuerySchema(taxonomy.Default())

	rec := map[string]any{
		"origin":         "US",
		"destination":    "VN",
		"departure_date": "2025-12-01",
		"return_date":    "2025-12-10",
		"adults":         2,
		"children":       0,
		"currency":       "USD",
		"interests":      []string{"beach", "food"},
		"budget":         map[string]any{"amount": 5000, "currency": "USD"},
	}

	if got := s.Evaluate(rec); got != nil {
		t.Errorf("valid query produced violations: %v", got)
	}

	rec["adults"] = 0
	rec["budget"] = map[string]any{"amount": 5000, "currency": "dollars"}

	got := s.Evaluate(rec)
	want := []Violation{
		{Kind: KindMinimum, Field: "adults"},
		{Kind: KindEnum, Field: "budget.currency"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate() = %v, want %v", got, want)
	}
}
