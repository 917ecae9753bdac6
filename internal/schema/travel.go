package schema

import (
	"regexp"

	"smarttravel/internal/taxonomy"
)

// countryCodePattern matches ISO 3166-1 alpha-2 codes.
var countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

// ProfileSchema builds the rule set for normalized user profiles. Enum values
// come from the taxonomy's preferred values so the two never drift apart.
func ProfileSchema(tax *taxonomy.Taxonomy) *Schema {
	return &Schema{
		Title: "UserProfile",
		Fields: []Field{
			{Name: "user_id", Type: TypeString, Required: true},
			{Name: "name", Type: TypeString},
			{Name: "language_preference", Type: TypeString, Required: true, Enum: tax.Preferred(taxonomy.Language)},
			{Name: "currency_preference", Type: TypeString, Required: true, Enum: tax.Preferred(taxonomy.Currency)},
			{Name: "home_country", Type: TypeString, Pattern: countryCodePattern},
			{Name: "interests", Type: TypeArray, Items: &Field{
				Name: "interests", Type: TypeString, Enum: tax.Preferred(taxonomy.Interest),
			}},
		},
	}
}

// QuerySchema builds the rule set for normalized user queries.
func QuerySchema(tax *taxonomy.Taxonomy) *Schema {
	return &Schema{
		Title: "UserQuery",
		Fields: []Field{
			{Name: "origin", Type: TypeString, Required: true, Pattern: countryCodePattern},
			{Name: "destination", Type: TypeString, Required: true, Pattern: countryCodePattern},
			{Name: "departure_date", Type: TypeString, Required: true, Format: FormatDate},
			{Name: "return_date", Type: TypeString, Required: true, Format: FormatDate},
			{Name: "adults", Type: TypeInteger, Required: true, Minimum: floatPtr(1)},
			{Name: "children", Type: TypeInteger, Minimum: floatPtr(0)},
			{Name: "language", Type: TypeString, Enum: tax.Preferred(taxonomy.Language)},
			{Name: "currency", Type: TypeString, Enum: tax.Preferred(taxonomy.Currency)},
			{Name: "interests", Type: TypeArray, Items: &Field{
				Name: "interests", Type: TypeString, Enum: tax.Preferred(taxonomy.Interest),
			}},
			{Name: "budget", Type: TypeObject, Properties: []Field{
				{Name: "amount", Type: TypeNumber, Required: true, Minimum: floatPtr(0)},
				{Name: "currency", Type: TypeString, Enum: tax.Preferred(taxonomy.Currency)},
			}},
		},
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
