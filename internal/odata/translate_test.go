package odata

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestTranslate_Operators(t *testing.T) {
	tr := Translator{Alias: "contact"}

	tests := []struct {
		name         string
		clause       Clause
		wantTemplate string
		wantBindings map[string]any
	}{
		{
			name:         "eq",
			clause:       Clause{Field: "first_name", Operator: OpEqual, RawValue: "'John'"},
			wantTemplate: "contact.first_name = :val0",
			wantBindings: map[string]any{"val0": "John"},
		},
		{
			name:         "ne",
			clause:       Clause{Field: "active", Operator: OpNotEqual, RawValue: "true"},
			wantTemplate: "contact.active <> :val0",
			wantBindings: map[string]any{"val0": true},
		},
		{
			name:         "gt",
			clause:       Clause{Field: "age", Operator: OpGreater, RawValue: "21"},
			wantTemplate: "contact.age > :val0",
			wantBindings: map[string]any{"val0": int64(21)},
		},
		{
			name:         "ge",
			clause:       Clause{Field: "age", Operator: OpGreaterOrEqual, RawValue: "21"},
			wantTemplate: "contact.age >= :val0",
			wantBindings: map[string]any{"val0": int64(21)},
		},
		{
			name:         "lt",
			clause:       Clause{Field: "balance", Operator: OpLess, RawValue: "9.5"},
			wantTemplate: "contact.balance < :val0",
			wantBindings: map[string]any{"val0": 9.5},
		},
		{
			name:         "le",
			clause:       Clause{Field: "balance", Operator: OpLessOrEqual, RawValue: "0"},
			wantTemplate: "contact.balance <= :val0",
			wantBindings: map[string]any{"val0": int64(0)},
		},
		{
			name:         "contains wraps both sides",
			clause:       Clause{Field: "last_name", Operator: OpContains, RawValue: "'son'"},
			wantTemplate: "contact.last_name LIKE :val0",
			wantBindings: map[string]any{"val0": "%son%"},
		},
		{
			name:         "startswith wraps the tail",
			clause:       Clause{Field: "first_name", Operator: OpStartsWith, RawValue: "'Jo'"},
			wantTemplate: "contact.first_name LIKE :val0",
			wantBindings: map[string]any{"val0": "Jo%"},
		},
		{
			name:         "endswith wraps the head",
			clause:       Clause{Field: "email", Operator: OpEndsWith, RawValue: "'.com'"},
			wantTemplate: "contact.email LIKE :val0",
			wantBindings: map[string]any{"val0": "%.com"},
		},
		{
			name:         "is null binds nothing",
			clause:       Clause{Field: "email", Operator: OpIsNull},
			wantTemplate: "contact.email IS NULL",
			wantBindings: nil,
		},
		{
			name:         "is not null binds nothing",
			clause:       Clause{Field: "email", Operator: OpIsNotNull},
			wantTemplate: "contact.email IS NOT NULL",
			wantBindings: nil,
		},
		{
			name:         "qualified field passes through unchanged",
			clause:       Clause{Field: "company.name", Operator: OpEqual, RawValue: "'Acme'"},
			wantTemplate: "company.name = :val0",
			wantBindings: map[string]any{"val0": "Acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tr.Translate(tt.clause, 0)
			if !ok {
				t.Fatal("clause unexpectedly rejected")
			}
			if got.Template != tt.wantTemplate {
				t.Errorf("template mismatch\nwant: %s\ngot:  %s", tt.wantTemplate, got.Template)
			}
			if !reflect.DeepEqual(got.Bindings, tt.wantBindings) {
				t.Errorf("bindings mismatch\nwant: %#v\ngot:  %#v", tt.wantBindings, got.Bindings)
			}
		})
	}
}

func TestTranslate_Unauthorized(t *testing.T) {
	tr := Translator{Alias: "contact", Allowed: []string{"first_name"}}

	if _, ok := tr.Translate(Clause{Field: "secret", Operator: OpEqual, RawValue: "1"}, 0); ok {
		t.Error("field outside allow-list must be rejected")
	}
	if _, ok := tr.Translate(Clause{Field: "first_name", Operator: OpEqual, RawValue: "'x'"}, 0); !ok {
		t.Error("allow-listed field must pass")
	}
}

// Literal values never end up inside the template, no matter what they
// contain; they travel exclusively through the bindings.
func TestTranslate_InjectionSafety(t *testing.T) {
	tr := Translator{Alias: "contact"}

	hostile := []string{
		`'x'; DROP TABLE contacts; --'`,
		`'a'' OR ''1''=''1'`,
		`'%'`,
	}

	for i, raw := range hostile {
		p, ok := tr.Translate(Clause{Field: "first_name", Operator: OpEqual, RawValue: raw}, i)
		if !ok {
			t.Fatalf("clause %d rejected", i)
		}

		stripped := raw[1 : len(raw)-1]
		if strings.Contains(p.Template, stripped) {
			t.Errorf("hostile value leaked into template: %s", p.Template)
		}
		param := fmt.Sprintf("val%d", i)
		if p.Bindings[param] != stripped {
			t.Errorf("binding %s = %#v, want %q", param, p.Bindings[param], stripped)
		}
	}
}

func TestTranslate_PlaceholderUniqueness(t *testing.T) {
	tr := Translator{Alias: "contact"}
	clauses := ParseFilter("age gt 1 and age gt 2 and age gt 3")

	seen := make(map[string]bool)
	for i, c := range clauses {
		p, ok := tr.Translate(c, i)
		if !ok {
			t.Fatalf("clause %d rejected", i)
		}
		for param := range p.Bindings {
			if seen[param] {
				t.Errorf("placeholder %s emitted twice", param)
			}
			seen[param] = true
			if !strings.Contains(p.Template, ":"+param) {
				t.Errorf("template %q missing placeholder :%s", p.Template, param)
			}
		}
	}
	if len(seen) != 3 {
		t.Errorf("expected 3 distinct placeholders, got %d", len(seen))
	}
}
