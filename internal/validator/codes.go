// Package validator checks normalized profiles and queries against their
// schemas and translates low-level rule violations into the stable
// user-facing error taxonomy.
package validator

// Code identifies a class of validation failure. Codes are stable API:
// clients key remediation flows off them, decoupled from schema rule names.
type Code string

// Error codes.
const (
	CodeReqFieldMissing     Code = "REQ_FIELD_MISSING"
	CodeInvalidType         Code = "INVALID_TYPE"
	CodeInvalidDateFormat   Code = "INVALID_DATE_FORMAT"
	CodeDateOrder           Code = "DATE_ORDER"
	CodeAdultCountMin       Code = "ADULT_COUNT_MIN"
	CodeChildCountMin       Code = "CHILD_COUNT_MIN"
	CodeUnsupportedLanguage Code = "UNSUPPORTED_LANGUAGE"
	CodeUnsupportedCurrency Code = "UNSUPPORTED_CURRENCY"
	CodeUnsupportedInterest Code = "UNSUPPORTED_INTEREST"
	CodeInvalidCountryCode  Code = "INVALID_COUNTRY_CODE"
	CodeInvalidValue        Code = "INVALID_VALUE"
)
