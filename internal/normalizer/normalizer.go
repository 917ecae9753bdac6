// Package normalizer raises free-form user input to the canonical taxonomy
// values. Normalization never fails: anything it cannot recognize is returned
// best-effort (trimmed, case-adjusted, or untouched) so the validator can
// report it with a proper error code.
package normalizer

import (
	"regexp"
	"strings"
	"unicode"

	"smarttravel/internal/taxonomy"
)

// Normalizer holds the per-category alias lookups. Build one per taxonomy and
// share it freely; it is read-only after construction.
type Normalizer struct {
	languages  taxonomy.AliasMap
	currencies taxonomy.AliasMap
	countries  taxonomy.AliasMap
	interests  taxonomy.AliasMap

	languageTag   *regexp.Regexp
	budgetPattern *regexp.Regexp
}

// New creates a normalizer for the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Normalizer {
	return &Normalizer{
		languages:     taxonomy.BuildAliasMap(tax.Languages),
		currencies:    taxonomy.BuildAliasMap(tax.Currencies),
		countries:     taxonomy.BuildAliasMap(tax.Countries),
		interests:     taxonomy.BuildAliasMap(tax.Interests),
		languageTag:   regexp.MustCompile(`^([A-Za-z]{2,3})(?:-([A-Za-z]{2}))?$`),
		budgetPattern: regexp.MustCompile(`^\s*([0-9]+(?:\.[0-9]+)?)\s*([A-Za-z$€£¥]*)\s*$`),
	}
}

// Scalar normalizes a single value according to its category.
func (n *Normalizer) Scalar(cat taxonomy.Category, raw string) string {
	switch cat {
	case taxonomy.Language:
		return n.Language(raw)
	case taxonomy.Currency:
		return n.Currency(raw)
	case taxonomy.Country:
		return n.Country(raw)
	case taxonomy.Interest:
		return n.Interest(raw)
	}

	return raw
}

// Language returns the canonical BCP-47 tag (e.g. "English" -> "en-US").
// Unknown but well-formed tags are case-folded ("pt-br" -> "pt-BR"); anything
// else is preserved for the validator.
func (n *Normalizer) Language(raw string) string {
	if raw == "" {
		return raw
	}

	trimmed := strings.TrimSpace(raw)
	if preferred, ok := n.languages.Lookup(trimmed); ok {
		return preferred
	}

	if m := n.languageTag.FindStringSubmatch(trimmed); m != nil {
		base := strings.ToLower(m[1])
		if m[2] != "" {
			return base + "-" + strings.ToUpper(m[2])
		}

		return base
	}

	return trimmed
}

// Currency returns the canonical ISO 4217 code (e.g. "€" -> "EUR"). Unknown
// three-letter codes are uppercased; unknown symbols pass through as-is.
func (n *Normalizer) Currency(raw string) string {
	if raw == "" {
		return raw
	}

	trimmed := strings.TrimSpace(raw)
	if preferred, ok := n.currencies.Lookup(trimmed); ok {
		return preferred
	}

	if alphabetic(trimmed) && runeLen(trimmed) == 3 {
		return strings.ToUpper(trimmed)
	}

	return trimmed
}

// Country returns the ISO 3166-1 alpha-2 code (e.g. "United States" -> "US").
// Unknown two- or three-letter codes are uppercased.
func (n *Normalizer) Country(raw string) string {
	if raw == "" {
		return raw
	}

	trimmed := strings.TrimSpace(raw)
	if preferred, ok := n.countries.Lookup(trimmed); ok {
		return preferred
	}

	if alphabetic(trimmed) {
		if l := runeLen(trimmed); l == 2 || l == 3 {
			return strings.ToUpper(trimmed)
		}
	}

	return trimmed
}

// Interest returns the canonical interest keyword. There is no structural
// fallback for interests; unrecognized values are only lowercased.
func (n *Normalizer) Interest(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if preferred, ok := n.interests.Lookup(trimmed); ok {
		return preferred
	}

	return strings.ToLower(trimmed)
}

// Interests normalizes a list (or comma-separated string) of interest
// keywords. Duplicates are removed keeping the first occurrence. A nil input
// stays nil; an input of an unrecognized type becomes an empty list.
func (n *Normalizer) Interests(raw any) []string {
	if raw == nil {
		return nil
	}

	var parts []any

	switch v := raw.(type) {
	case string:
		for _, p := range strings.Split(v, ",") {
			if s := strings.TrimSpace(p); s != "" {
				parts = append(parts, s)
			}
		}
	case []string:
		for _, s := range v {
			parts = append(parts, s)
		}
	case []any:
		parts = v
	}

	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, item := range parts {
		s, ok := item.(string)
		if !ok {
			continue
		}

		val := n.Interest(s)
		if _, dup := seen[val]; dup {
			continue
		}

		seen[val] = struct{}{}
		out = append(out, val)
	}

	return out
}

// alphabetic reports whether s is non-empty and made of letters only.
func alphabetic(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}

func runeLen(s string) int {
	return len([]rune(s))
}
