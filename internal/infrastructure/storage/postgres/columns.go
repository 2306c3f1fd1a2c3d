package postgres

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExtractDBColumns extracts column names from struct "db" tags. It
// recurses into embedded structs and skips relation fields (struct or
// struct-pointer fields that are not plain column types) — those are
// selected through expansion mappings, not as base columns. Called once
// at initialization time, so reflection overhead is acceptable.
//
// Usage:
//
//	columns := ExtractDBColumns[crm.Contact]()
//	// Returns: ["id", "first_name", "last_name", ...]
func ExtractDBColumns[T any]() []string {
	var zero T
	return extractColumnsFromType(reflect.TypeOf(zero))
}

func extractColumnsFromType(t reflect.Type) []string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var cols []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Anonymous {
			cols = append(cols, extractColumnsFromType(field.Type)...)
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}

		if isRelationType(field.Type) {
			continue
		}

		cols = append(cols, tag)
	}
	return cols
}

// isRelationType reports whether a tagged field is a nested relation
// struct rather than a single column value.
func isRelationType(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	switch t {
	case reflect.TypeOf(time.Time{}), reflect.TypeOf(uuid.UUID{}), reflect.TypeOf(decimal.Decimal{}):
		return false
	}
	return true
}
