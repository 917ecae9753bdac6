package normalizer

import (
	"math"
	"strconv"
	"strings"
)

// Budget normalizes a budget given as a string ("5000 USD", "$3000"), a bare
// number, or a structured {amount, currency} map. Unparseable strings are
// returned unchanged so the validator rejects them; a bare number becomes an
// amount with no currency.
func (n *Normalizer) Budget(raw any) any {
	switch v := raw.(type) {
	case string:
		if parsed := n.parseBudgetString(v); parsed != nil {
			return parsed
		}

		return v
	case int:
		return map[string]any{"amount": v}
	case int64:
		return map[string]any{"amount": v}
	case float64:
		return map[string]any{"amount": v}
	case map[string]any:
		return n.normalizeBudgetMap(v)
	}

	return raw
}

// parseBudgetString parses "<amount> <currency?>" forms. The amount keeps
// integer type when the literal has no decimal point. Returns nil when the
// string does not match.
func (n *Normalizer) parseBudgetString(s string) map[string]any {
	m := n.budgetPattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	amountLit, currencyLit := m[1], m[2]

	var amount any

	if strings.Contains(amountLit, ".") {
		f, err := strconv.ParseFloat(amountLit, 64)
		if err != nil {
			return nil
		}

		amount = f
	} else {
		i, err := strconv.Atoi(amountLit)
		if err != nil {
			return nil
		}

		amount = i
	}

	out := map[string]any{"amount": amount}
	if currencyLit != "" {
		out["currency"] = n.Currency(currencyLit)
	}

	return out
}

// normalizeBudgetMap re-normalizes a structured budget: string amounts are
// coerced to numbers (integral floats collapse to int) and the currency field
// goes through currency normalization.
func (n *Normalizer) normalizeBudgetMap(v map[string]any) map[string]any {
	amount := v["amount"]
	if s, ok := amount.(string); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			if !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) {
				amount = int(f)
			} else {
				amount = f
			}
		}
	}

	out := map[string]any{"amount": amount}

	if cur, ok := v["currency"]; ok && cur != nil {
		switch s := cur.(type) {
		case string:
			if s != "" {
				out["currency"] = n.Currency(s)
			}
		default:
			out["currency"] = cur
		}
	}

	return out
}
