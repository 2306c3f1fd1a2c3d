package odata

import (
	"regexp"
	"strings"
)

// Operator identifies the comparison kind of one filter clause.
type Operator string

const (
	OpEqual          Operator = "eq"
	OpNotEqual       Operator = "ne"
	OpGreater        Operator = "gt"
	OpGreaterOrEqual Operator = "ge"
	OpLess           Operator = "lt"
	OpLessOrEqual    Operator = "le"
	OpContains       Operator = "contains"
	OpStartsWith     Operator = "startswith"
	OpEndsWith       Operator = "endswith"
	OpIsNull         Operator = "null"
	OpIsNotNull      Operator = "not_null"
)

// Clause is one conjunctive unit of a $filter expression. RawValue is
// empty for the null-check operators.
type Clause struct {
	Field    string
	Operator Operator
	RawValue string
}

// grammar matches one clause form and builds its descriptor.
type grammar struct {
	re    *regexp.Regexp
	build func(m []string) Clause
}

// clauseGrammars are tried in order; first match wins. The null-check
// forms must precede the generic comparisons or `field eq 'null'` would
// become an equality against the string "null".
var clauseGrammars = []grammar{
	{
		re: regexp.MustCompile(`^(.+?)\s+eq\s+(?:'null'|"null")$`),
		build: func(m []string) Clause {
			return Clause{Field: strings.TrimSpace(m[1]), Operator: OpIsNull}
		},
	},
	{
		re: regexp.MustCompile(`^(.+?)\s+ne\s+(?:'null'|"null")$`),
		build: func(m []string) Clause {
			return Clause{Field: strings.TrimSpace(m[1]), Operator: OpIsNotNull}
		},
	},
	{
		re: regexp.MustCompile(`^(.+?)\s+(eq|ne|gt|ge|lt|le)\s+(.+)$`),
		build: func(m []string) Clause {
			return Clause{
				Field:    strings.TrimSpace(m[1]),
				Operator: Operator(m[2]),
				RawValue: strings.TrimSpace(m[3]),
			}
		},
	},
	{
		re: regexp.MustCompile(`^(contains|startswith|endswith)\(\s*([^,]+?)\s*,\s*(.+?)\s*\)$`),
		build: func(m []string) Clause {
			return Clause{
				Field:    strings.TrimSpace(m[2]),
				Operator: Operator(m[1]),
				RawValue: m[3],
			}
		},
	},
}

// conjunction is the only boolean operator of the grammar. Disjunction
// and parenthesized precedence are a declared restriction; extending to
// them means a small recursive-descent expression tree, not more
// splitting.
const conjunction = " and "

// ParseFilter decomposes a $filter expression into clause descriptors.
// The expression is split on the literal " and " separator and each
// fragment is matched against the ordered grammar list. Fragments that
// match no grammar are dropped, not rejected: a single malformed clause
// must not fail an otherwise valid request.
func ParseFilter(expr string) []Clause {
	if strings.TrimSpace(expr) == "" {
		return nil
	}

	parts := strings.Split(expr, conjunction)
	clauses := make([]Clause, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		for _, g := range clauseGrammars {
			if m := g.re.FindStringSubmatch(part); m != nil {
				clauses = append(clauses, g.build(m))
				break
			}
		}
	}
	return clauses
}

// fieldAllowed reports whether field passes the allow-list. An empty
// list means unrestricted. Filter, sort and expand fields are checked
// against separate lists, never a shared one.
func fieldAllowed(field string, allowList []string) bool {
	if len(allowList) == 0 {
		return true
	}
	for _, allowed := range allowList {
		if field == allowed {
			return true
		}
	}
	return false
}
