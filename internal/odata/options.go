package odata

import (
	"net/url"
	"strconv"
	"strings"
)

// Option names recognized in a query string. Anything else is ignored.
const (
	OptionFilter  = "$filter"
	OptionOrderBy = "$orderby"
	OptionExpand  = "$expand"
	OptionTop     = "$top"
	OptionSkip    = "$skip"
)

// Options carries the raw query option values for one request.
type Options struct {
	Filter  string
	OrderBy string
	Expand  string
	Top     string
	Skip    string
}

// OptionsFromValues extracts the recognized options from already-decoded
// query parameters.
func OptionsFromValues(values url.Values) Options {
	return Options{
		Filter:  values.Get(OptionFilter),
		OrderBy: values.Get(OptionOrderBy),
		Expand:  values.Get(OptionExpand),
		Top:     values.Get(OptionTop),
		Skip:    values.Get(OptionSkip),
	}
}

// Direction of one ordering key.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// Sort is one ordering key. Order of appearance in $orderby is
// significant for tie-breaking.
type Sort struct {
	Field     string
	Direction Direction
}

// parseOrderBy splits $orderby into authorized sort keys. Each comma
// separated entry must name a field and an explicit ASC/DESC direction
// (any case); entries that are malformed or fail the allow-list are
// dropped.
func parseOrderBy(raw string, allowList []string) []Sort {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var sorts []Sort
	for _, entry := range strings.Split(raw, ",") {
		fields := strings.Fields(entry)
		if len(fields) != 2 {
			continue
		}
		dir := Direction(strings.ToUpper(fields[1]))
		if dir != Ascending && dir != Descending {
			continue
		}
		if !fieldAllowed(fields[0], allowList) {
			continue
		}
		sorts = append(sorts, Sort{Field: fields[0], Direction: dir})
	}
	return sorts
}

// parseExpand splits $expand into authorized relation names, collapsing
// duplicates while keeping first-seen order so a relation is never
// joined twice.
func parseExpand(raw string, allowList []string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var expands []string
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !fieldAllowed(entry, allowList) {
			continue
		}
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		expands = append(expands, entry)
	}
	return expands
}

// Page holds normalized pagination bounds. A zero Limit means unbounded.
type Page struct {
	Skip  int
	Limit int
}

// parsePage normalizes $top/$skip. Negative or non-numeric values are
// treated as absent rather than surfaced as errors.
func parsePage(top, skip string) Page {
	return Page{Limit: safeInt(top), Skip: safeInt(skip)}
}

func safeInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
