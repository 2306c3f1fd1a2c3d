package odata

import (
	"fmt"
	"strings"
)

// Predicate is a backend-neutral condition: a template using named
// :val<N> placeholders plus the values bound to them. Literal values
// travel only through Bindings and are never concatenated into the
// template; that is the injection-safety invariant of this package.
type Predicate struct {
	Template string
	Bindings map[string]any
}

// Translator converts parsed clauses into predicates for one resource.
type Translator struct {
	// Alias is the root alias unqualified field names are rewritten under.
	Alias string

	// Allowed is the filter allow-list. Empty means unrestricted.
	Allowed []string
}

var comparators = map[Operator]string{
	OpEqual:          "=",
	OpNotEqual:       "<>",
	OpGreater:        ">",
	OpGreaterOrEqual: ">=",
	OpLess:           "<",
	OpLessOrEqual:    "<=",
}

// Translate converts one clause into a predicate. The boolean result is
// false when the clause field fails the allow-list; the caller drops the
// clause entirely. idx is the clause position within the whole $filter
// expression, which keeps placeholder names unique across clauses.
func (t Translator) Translate(c Clause, idx int) (Predicate, bool) {
	if !fieldAllowed(c.Field, t.Allowed) {
		return Predicate{}, false
	}

	field := t.qualify(c.Field)
	param := fmt.Sprintf("val%d", idx)

	switch c.Operator {
	case OpIsNull:
		return Predicate{Template: field + " IS NULL"}, true
	case OpIsNotNull:
		return Predicate{Template: field + " IS NOT NULL"}, true
	case OpContains, OpStartsWith, OpEndsWith:
		return Predicate{
			Template: field + " LIKE :" + param,
			Bindings: map[string]any{param: likePattern(c.Operator, Coerce(c.RawValue))},
		}, true
	default:
		return Predicate{
			Template: field + " " + comparators[c.Operator] + " :" + param,
			Bindings: map[string]any{param: Coerce(c.RawValue)},
		}, true
	}
}

// qualify prefixes bare field names with the root alias. Fields that
// already carry a path (relation.column) pass through unchanged so
// filters can target expanded relations.
func (t Translator) qualify(field string) string {
	if t.Alias == "" || strings.Contains(field, ".") {
		return field
	}
	return t.Alias + "." + field
}

// likePattern wraps the coerced value in LIKE wildcards. The pattern is
// still bound as a parameter, never spliced into the template.
func likePattern(op Operator, v any) string {
	s := fmt.Sprintf("%v", v)
	switch op {
	case OpStartsWith:
		return s + "%"
	case OpEndsWith:
		return "%" + s
	default:
		return "%" + s + "%"
	}
}
