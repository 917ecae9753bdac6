// Package schema implements the declarative field-rule engine that checks
// normalized records. It reports low-level violations (kind + field path);
// translating those into user-facing error codes is the validator's job.
package schema

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the wire format for date fields.
const DateLayout = "2006-01-02"

// FormatDate is the only format rule the engine knows.
const FormatDate = "date"

// Kind identifies which rule a value violated.
type Kind string

// Violation kinds, in the order rules are evaluated per field.
const (
	KindRequired Kind = "required"
	KindType     Kind = "type"
	KindEnum     Kind = "enum"
	KindPattern  Kind = "pattern"
	KindFormat   Kind = "format"
	KindMinimum  Kind = "minimum"
)

// Type is the expected shape of a field value.
type Type string

// Field value types.
const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeNumber  Type = "number"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// Violation records a single rule failure. Field is a dotted path
// ("budget.currency", "interests.0"), except for required violations which
// carry the bare name of the missing field.
type Violation struct {
	Kind  Kind
	Field string
}

// Field declares the rules for one record field. At most one of Enum,
// Pattern, Format, and Minimum is set per field.
type Field struct {
	Name       string
	Type       Type
	Required   bool
	Enum       []string
	Pattern    *regexp.Regexp
	Format     string
	Minimum    *float64
	Items      *Field  // element rules when Type is array
	Properties []Field // nested rules when Type is object
}

// Schema is an ordered rule set for one record shape. Issue ordering follows
// field declaration order.
type Schema struct {
	Title  string
	Fields []Field
}

// Evaluate checks rec against every field rule and returns all violations.
// A missing optional field is not a violation; a present field is checked
// required -> type -> value constraints, stopping at the first failed stage.
func (s *Schema) Evaluate(rec map[string]any) []Violation {
	var out []Violation

	for i := range s.Fields {
		f := &s.Fields[i]

		v, ok := rec[f.Name]
		if !ok {
			if f.Required {
				out = append(out, Violation{Kind: KindRequired, Field: f.Name})
			}

			continue
		}

		out = append(out, f.check(v, f.Name)...)
	}

	return out
}

// check validates a present value at the given path.
func (f *Field) check(v any, path string) []Violation {
	if !matchesType(v, f.Type) {
		return []Violation{{Kind: KindType, Field: path}}
	}

	var out []Violation

	switch f.Type {
	case TypeString:
		s := v.(string)
		if len(f.Enum) > 0 && !containsString(f.Enum, s) {
			out = append(out, Violation{Kind: KindEnum, Field: path})
		}

		if f.Pattern != nil && !f.Pattern.MatchString(s) {
			out = append(out, Violation{Kind: KindPattern, Field: path})
		}

		if f.Format == FormatDate && !validDate(s) {
			out = append(out, Violation{Kind: KindFormat, Field: path})
		}
	case TypeInteger, TypeNumber:
		if f.Minimum != nil && numericValue(v) < *f.Minimum {
			out = append(out, Violation{Kind: KindMinimum, Field: path})
		}
	case TypeArray:
		if f.Items != nil {
			for i, item := range asSlice(v) {
				out = append(out, f.Items.check(item, fmt.Sprintf("%s.%d", path, i))...)
			}
		}
	case TypeObject:
		m := asMap(v)
		for i := range f.Properties {
			p := &f.Properties[i]

			pv, ok := m[p.Name]
			if !ok {
				if p.Required {
					out = append(out, Violation{Kind: KindRequired, Field: p.Name})
				}

				continue
			}

			out = append(out, p.check(pv, path+"."+p.Name)...)
		}
	}

	return out
}

// matchesType implements the JSON-style type model: integers accept integral
// floats (JSON decoding yields float64 for every number).
func matchesType(v any, t Type) bool {
	switch t {
	case TypeString:
		_, ok := v.(string)

		return ok
	case TypeInteger:
		switch n := v.(type) {
		case int, int64:
			return true
		case float64:
			return n == float64(int64(n))
		}

		return false
	case TypeNumber:
		switch v.(type) {
		case int, int64, float64:
			return true
		}

		return false
	case TypeArray:
		switch v.(type) {
		case []any, []string:
			return true
		}

		return false
	case TypeObject:
		_, ok := v.(map[string]any)

		return ok
	}

	return true
}

func numericValue(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	}

	return 0
}

func asSlice(v any) []any {
	switch s := v.(type) {
	case []any:
		return s
	case []string:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}

		return out
	}

	return nil
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}

	return nil
}

func containsString(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}

	return false
}

func validDate(s string) bool {
	_, err := time.Parse(DateLayout, s)

	return err == nil
}
