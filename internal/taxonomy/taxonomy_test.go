package taxonomy

import "testing"

func TestBuildAliasMap(t *testing.T) {
	entries := []Entry{
		{Preferred: "USD", Aliases: []string{"USD", "usd", "$", "US Dollar"}},
		{Preferred: "EUR", Aliases: []string{"EUR", "Euro"}},
	}

	m := BuildAliasMap(entries)

	if got, ok := m.Lookup("US DOLLAR"); !ok || got != "USD" {
		t.Errorf("Lookup(US DOLLAR) = %q, %v; want USD, true", got, ok)
	}

	if got, ok := m.Lookup("euro"); !ok || got != "EUR" {
		t.Errorf("Lookup(euro) = %q, %v; want EUR, true", got, ok)
	}

	if _, ok := m.Lookup("yen"); ok {
		t.Error("Lookup(yen) should miss")
	}
}

func TestBuildAliasMap_DuplicateAliasKeepsLast(t *testing.T) {
	entries := []Entry{
		{Preferred: "first", Aliases: []string{"shared"}},
		{Preferred: "second", Aliases: []string{"shared"}},
	}

	m := BuildAliasMap(entries)

	if got, _ := m.Lookup("shared"); got != "second" {
		t.Errorf("duplicate alias resolved to %q, want second", got)
	}
}

func TestDefault_AllAliasesResolveToPreferred(t *testing.T) {
	tax := Default()

	for _, cat := range []Category{Language, Currency, Country, Interest} {
		m := BuildAliasMap(tax.Entries(cat))

		for _, entry := range tax.Entries(cat) {
			for _, alias := range entry.Aliases {
				got, ok := m.Lookup(alias)
				if !ok || got != entry.Preferred {
					t.Errorf("%s: Lookup(%q) = %q, %v; want %q", cat, alias, got, ok, entry.Preferred)
				}
			}
		}
	}
}

func TestPreferred(t *testing.T) {
	tax := Default()

	langs := tax.Preferred(Language)
	if len(langs) != 5 {
		t.Fatalf("Preferred(Language) returned %d values, want 5", len(langs))
	}

	if langs[0] != "en-US" {
		t.Errorf("Preferred(Language)[0] = %q, want en-US", langs[0])
	}

	if got := tax.Preferred(Category("unknown")); len(got) != 0 {
		t.Errorf("Preferred(unknown) = %v, want empty", got)
	}
}
