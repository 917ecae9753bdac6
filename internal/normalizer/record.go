package normalizer

import (
	"fmt"
	"strings"

	"smarttravel/internal/models"
)

// Profile returns a normalized copy of a raw user profile. Taxonomy fields
// are raised to canonical form; every other field gets the best-effort typed
// coercion. Nil field values are preserved for the validator.
func (n *Normalizer) Profile(rec models.Record) models.Record {
	if rec == nil {
		return nil
	}

	out := make(models.Record, len(rec))

	for k, v := range rec {
		if v == nil {
			out[k] = nil

			continue
		}

		switch k {
		case "language_preference":
			out[k] = n.Language(stringify(v))
		case "currency_preference":
			out[k] = n.Currency(stringify(v))
		case "home_country":
			out[k] = n.Country(stringify(v))
		case "interests":
			out[k] = n.Interests(v)
		default:
			out[k] = coerceScalar(v).value
		}
	}

	return out
}

// Query returns a normalized copy of a raw user query. When a profile is
// given, its home country fills a missing origin and its currency preference
// fills a budget that has an amount but no currency. Nil field values are
// dropped.
func (n *Normalizer) Query(rec, profile models.Record) models.Record {
	if rec == nil {
		return nil
	}

	out := make(models.Record, len(rec))

	for k, v := range rec {
		if v == nil {
			continue
		}

		switch k {
		case "language":
			out[k] = n.Language(stringify(v))
		case "currency":
			out[k] = n.Currency(stringify(v))
		case "origin", "destination":
			out[k] = n.Country(stringify(v))
		case "interests":
			out[k] = n.Interests(v)
		case "budget":
			out[k] = n.Budget(v)
		default:
			out[k] = coerceScalar(v).value
		}
	}

	n.fillQueryDefaults(out, profile)

	return out
}

// fillQueryDefaults back-fills origin and budget currency from the profile.
func (n *Normalizer) fillQueryDefaults(out, profile models.Record) {
	if profile == nil {
		return
	}

	if origin, ok := out["origin"]; !ok || origin == nil || origin == "" {
		if home, ok := profile["home_country"]; ok && home != nil && stringify(home) != "" {
			out["origin"] = n.Country(stringify(home))
		}
	}

	budget, ok := out["budget"].(map[string]any)
	if !ok {
		return
	}

	if amount, ok := budget["amount"]; !ok || amount == nil {
		return
	}

	if cur, ok := budget["currency"]; ok && cur != nil && cur != "" {
		return
	}

	if pref, ok := profile["currency_preference"].(string); ok && pref != "" {
		budget["currency"] = pref
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return strings.TrimSpace(fmt.Sprintf("%v", v))
}
