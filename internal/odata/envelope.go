package odata

// Envelope is the pagination-aware response shape. Field names and
// arithmetic are fixed for drop-in compatibility with existing
// consumers; do not change them.
type Envelope[T any] struct {
	Data        []T   `json:"data"`
	Total       int64 `json:"total"`
	PerPage     int64 `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	From        int   `json:"from"`
	To          int   `json:"to"`
}

// NewEnvelope computes pagination metadata from the executed page.
// skip and limit must already be normalized to non-negative values; a
// zero limit means the result was unbounded.
func NewEnvelope[T any](rows []T, total int64, skip, limit int) Envelope[T] {
	env := Envelope[T]{
		Data:        rows,
		Total:       total,
		PerPage:     int64(limit),
		CurrentPage: 1,
		LastPage:    1,
	}

	if limit > 0 {
		env.CurrentPage = skip/limit + 1
		env.LastPage = int((total + int64(limit) - 1) / int64(limit))
	} else {
		env.PerPage = total
	}

	if total > 0 {
		env.From = skip + 1
		env.To = skip + len(rows)
	}

	// Empty pages serialize as [], not null.
	if env.Data == nil {
		env.Data = []T{}
	}

	return env
}
