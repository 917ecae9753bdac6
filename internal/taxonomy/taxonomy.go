// Package taxonomy defines the canonical travel vocabulary (languages,
// currencies, countries, interests) and the alias lookup tables built from it.
// The taxonomy is loaded once at startup and never mutated afterwards, so the
// derived maps are safe to share across concurrent callers.
package taxonomy

import "strings"

// Category identifies one of the taxonomy domains.
type Category string

// Taxonomy categories.
const (
	Language Category = "language"
	Currency Category = "currency"
	Country  Category = "country"
	Interest Category = "interest"
)

// Entry maps a preferred canonical value to the aliases that resolve to it.
type Entry struct {
	Preferred string   `yaml:"preferred" json:"preferred" validate:"required"`
	Aliases   []string `yaml:"aliases" json:"aliases"`
}

// Taxonomy holds the entries for every category.
type Taxonomy struct {
	Version    string  `yaml:"version" json:"version"`
	Languages  []Entry `yaml:"languages" json:"languages" validate:"min=1,dive"`
	Currencies []Entry `yaml:"currencies" json:"currencies" validate:"min=1,dive"`
	Countries  []Entry `yaml:"countries" json:"countries" validate:"min=1,dive"`
	Interests  []Entry `yaml:"interests" json:"interests" validate:"min=1,dive"`
}

// Entries returns the entry list for a category.
func (t *Taxonomy) Entries(cat Category) []Entry {
	switch cat {
	case Language:
		return t.Languages
	case Currency:
		return t.Currencies
	case Country:
		return t.Countries
	case Interest:
		return t.Interests
	}

	return nil
}

// Preferred returns the canonical values of a category, in entry order.
// These are the enum values the schema engine validates against.
func (t *Taxonomy) Preferred(cat Category) []string {
	entries := t.Entries(cat)

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Preferred)
	}

	return out
}

// AliasMap maps a lowercased alias to its preferred value.
type AliasMap map[string]string

// BuildAliasMap builds the case-insensitive lookup for a category's entries.
// An alias repeated across entries keeps the entry processed last.
func BuildAliasMap(entries []Entry) AliasMap {
	m := make(AliasMap)

	for _, e := range entries {
		for _, alias := range e.Aliases {
			m[strings.ToLower(alias)] = e.Preferred
		}
	}

	return m
}

// Lookup resolves raw against the map, ignoring case.
func (m AliasMap) Lookup(raw string) (string, bool) {
	preferred, ok := m[strings.ToLower(raw)]

	return preferred, ok
}
