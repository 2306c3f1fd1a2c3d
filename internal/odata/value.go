// Package odata translates OData-style query options ($filter, $orderby,
// $expand, $top, $skip) into backend-neutral predicates, orderings, relation
// expansions and pagination bounds, and shapes the paginated result into a
// stable response envelope. Execution is delegated to a QueryBuilder
// implementation; this package never touches SQL text with user values.
package odata

import (
	"strconv"
	"strings"
)

// Coerce converts a raw filter literal into a typed scalar: quoted text
// becomes a string (single-level quote strip, no unescaping), true/false
// become bool, null becomes nil and numeric literals become int64 or
// float64. Anything else is returned verbatim. Coercion is total: every
// input maps to exactly one value and never fails.
func Coerce(raw string) any {
	if len(raw) >= 2 {
		if (strings.HasPrefix(raw, "'") && strings.HasSuffix(raw, "'")) ||
			(strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`)) {
			return raw[1 : len(raw)-1]
		}
	}

	switch raw {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}

	if isNumericLiteral(raw) {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}

	return raw
}

// isNumericLiteral guards against strconv accepting forms like "Inf" or
// "1e5" that are not plain integer/decimal literals.
func isNumericLiteral(raw string) bool {
	if raw == "" {
		return false
	}
	s := strings.TrimPrefix(raw, "-")
	if s == "" || s == "." {
		return false
	}
	dots := 0
	for _, r := range s {
		if r == '.' {
			dots++
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return dots <= 1
}
