package validator

import "strings"

// Template holds the user-facing message and remediation hint for one code.
// The message may contain a {field} placeholder; hints are static.
type Template struct {
	Message string `yaml:"message" validate:"required"`
	Hint    string `yaml:"hint"`
}

// Catalog maps error codes to their message templates. It is injected into
// the validator so deployments can reword messages without code changes.
type Catalog map[Code]Template

// DefaultCatalog returns the built-in English message catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		CodeReqFieldMissing: {
			Message: "The field '{field}' is required.",
			Hint:    "Please provide a value for the missing field.",
		},
		CodeInvalidType: {
			Message: "Invalid data type for '{field}'.",
			Hint:    "Please enter a valid value.",
		},
		CodeInvalidDateFormat: {
			Message: "Date must be in YYYY-MM-DD format.",
			Hint:    "Use the date format YYYY-MM-DD (e.g., 2025-12-01).",
		},
		CodeDateOrder: {
			Message: "Return date is earlier than departure date.",
			Hint:    "Ensure the return date is on or after the departure date.",
		},
		CodeAdultCountMin: {
			Message: "At least one adult is required.",
			Hint:    "Set adults to 1 or more.",
		},
		CodeChildCountMin: {
			Message: "Children count cannot be negative.",
			Hint:    "Use 0 or a positive number for children.",
		},
		CodeUnsupportedLanguage: {
			Message: "Unsupported language selection.",
			Hint:    "Choose a supported language (e.g., 'en-US').",
		},
		CodeUnsupportedCurrency: {
			Message: "Unsupported currency code.",
			Hint:    "Use a valid ISO 4217 code (e.g., USD, EUR).",
		},
		CodeUnsupportedInterest: {
			Message: "Unsupported interest category.",
			Hint:    "Choose from the available categories (beach, culture, adventure, nature, food).",
		},
		CodeInvalidCountryCode: {
			Message: "Invalid country code for '{field}'.",
			Hint:    "Use a 2-letter ISO 3166-1 code (e.g., 'US').",
		},
		CodeInvalidValue: {
			Message: "Invalid value for '{field}'.",
			Hint:    "Please correct the input.",
		},
	}
}

// Render resolves a code to its message and hint, substituting the field name
// into the message placeholder.
func (c Catalog) Render(code Code, field string) (message, hint string) {
	tpl, ok := c[code]
	if !ok {
		return "Invalid value.", "Please correct it."
	}

	name := field
	if name == "" {
		name = "field"
	}

	return strings.ReplaceAll(tpl.Message, "{field}", name), tpl.Hint
}
