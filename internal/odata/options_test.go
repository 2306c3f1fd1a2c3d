package odata

import (
	"net/url"
	"reflect"
	"testing"
)

func TestOptionsFromValues(t *testing.T) {
	values := url.Values{}
	values.Set("$filter", "age gt 21")
	values.Set("$orderby", "name ASC")
	values.Set("$expand", "company")
	values.Set("$top", "10")
	values.Set("$skip", "20")
	values.Set("$select", "ignored")
	values.Set("unrelated", "ignored")

	got := OptionsFromValues(values)
	want := Options{
		Filter:  "age gt 21",
		OrderBy: "name ASC",
		Expand:  "company",
		Top:     "10",
		Skip:    "20",
	}
	if got != want {
		t.Errorf("options mismatch\nwant: %+v\ngot:  %+v", want, got)
	}
}

func TestParseOrderBy(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		allowList []string
		want      []Sort
	}{
		{
			name: "multiple keys keep order",
			raw:  "name ASC, age DESC",
			want: []Sort{
				{Field: "name", Direction: Ascending},
				{Field: "age", Direction: Descending},
			},
		},
		{
			name:      "allow-list drops unauthorized key",
			raw:       "name ASC, age DESC",
			allowList: []string{"name"},
			want:      []Sort{{Field: "name", Direction: Ascending}},
		},
		{
			name: "direction is case insensitive",
			raw:  "name asc",
			want: []Sort{{Field: "name", Direction: Ascending}},
		},
		{
			name: "missing direction drops the key",
			raw:  "name",
			want: nil,
		},
		{
			name: "bad direction drops the key",
			raw:  "name sideways",
			want: nil,
		},
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseOrderBy(tt.raw, tt.allowList)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseOrderBy(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseExpand(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		allowList []string
		want      []string
	}{
		{name: "duplicates collapse", raw: "profile, profile", want: []string{"profile"}},
		{name: "order preserved", raw: "company, profile, company", want: []string{"company", "profile"}},
		{name: "unauthorized dropped", raw: "company, secret", allowList: []string{"company"}, want: []string{"company"}},
		{name: "empty entries skipped", raw: "company,,", want: []string{"company"}},
		{name: "empty", raw: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseExpand(tt.raw, tt.allowList)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseExpand(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name      string
		top, skip string
		want      Page
	}{
		{name: "both set", top: "10", skip: "20", want: Page{Limit: 10, Skip: 20}},
		{name: "absent means defaults", top: "", skip: "", want: Page{}},
		{name: "negative treated as absent", top: "-5", skip: "-1", want: Page{}},
		{name: "garbage treated as absent", top: "ten", skip: "1.5", want: Page{}},
		{name: "whitespace tolerated", top: " 7 ", skip: " 3 ", want: Page{Limit: 7, Skip: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePage(tt.top, tt.skip)
			if got != tt.want {
				t.Errorf("parsePage(%q, %q) = %+v, want %+v", tt.top, tt.skip, got, tt.want)
			}
		})
	}
}
