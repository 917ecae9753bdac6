package validator

import (
	"strings"
	"time"

	"smarttravel/internal/models"
	"smarttravel/internal/schema"
	"smarttravel/internal/taxonomy"
)

// Issue is one user-facing validation finding. An empty issue list means the
// record is valid.
type Issue struct {
	Code    Code   `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Hint    string `json:"hint"`
}

// Validator checks normalized records. It aggregates every issue found in a
// pass rather than stopping at the first, so callers always see the full
// picture.
type Validator struct {
	profile *schema.Schema
	query   *schema.Schema
	catalog Catalog
}

// New builds a validator for the given taxonomy. A nil catalog selects the
// built-in messages.
func New(tax *taxonomy.Taxonomy, catalog Catalog) *Validator {
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	return &Validator{
		profile: schema.ProfileSchema(tax),
		query:   schema.QuerySchema(tax),
		catalog: catalog,
	}
}

// ValidateProfile reports every issue in a normalized profile.
func (v *Validator) ValidateProfile(rec models.Record) []Issue {
	return v.collect(v.profile, rec)
}

// ValidateQuery reports every schema issue in a normalized query, then the
// cross-field date-order check. The date check is skipped silently when
// either date is missing or malformed; the schema pass already covers those.
func (v *Validator) ValidateQuery(rec models.Record) []Issue {
	issues := v.collect(v.query, rec)

	if issue, ok := v.dateOrderIssue(rec); ok {
		issues = append(issues, issue)
	}

	return issues
}

func (v *Validator) collect(s *schema.Schema, rec models.Record) []Issue {
	var issues []Issue

	for _, viol := range s.Evaluate(rec) {
		code := mapViolation(viol)
		message, hint := v.catalog.Render(code, viol.Field)
		issues = append(issues, Issue{
			Code:    code,
			Field:   viol.Field,
			Message: message,
			Hint:    hint,
		})
	}

	return issues
}

// mapViolation translates a schema violation into the error taxonomy. The
// field-path heuristics mirror how clients group remediation flows.
func mapViolation(v schema.Violation) Code {
	switch v.Kind {
	case schema.KindRequired:
		return CodeReqFieldMissing
	case schema.KindType:
		return CodeInvalidType
	case schema.KindFormat:
		return CodeInvalidDateFormat
	case schema.KindEnum:
		switch {
		case strings.Contains(v.Field, "language"):
			return CodeUnsupportedLanguage
		case strings.Contains(v.Field, "currency"):
			return CodeUnsupportedCurrency
		case strings.HasPrefix(v.Field, "interests"):
			return CodeUnsupportedInterest
		}

		return CodeInvalidValue
	case schema.KindPattern:
		if strings.Contains(v.Field, "origin") ||
			strings.Contains(v.Field, "destination") ||
			strings.Contains(v.Field, "country") {
			return CodeInvalidCountryCode
		}

		return CodeInvalidValue
	case schema.KindMinimum:
		switch v.Field {
		case "adults":
			return CodeAdultCountMin
		case "children":
			return CodeChildCountMin
		}

		return CodeInvalidValue
	}

	return CodeInvalidValue
}

// dateOrderIssue checks return_date >= departure_date when both parse.
func (v *Validator) dateOrderIssue(rec models.Record) (Issue, bool) {
	departure, ok := parseDate(rec["departure_date"])
	if !ok {
		return Issue{}, false
	}

	ret, ok := parseDate(rec["return_date"])
	if !ok {
		return Issue{}, false
	}

	if ret.Before(departure) {
		message, hint := v.catalog.Render(CodeDateOrder, "")

		return Issue{Code: CodeDateOrder, Message: message, Hint: hint}, true
	}

	return Issue{}, false
}

func parseDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}

	t, err := time.Parse(schema.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
