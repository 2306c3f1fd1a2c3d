package odata

import (
	"context"

	"github.com/matiascamiletti/mc-odata-go/pkg/logger"
)

// QueryBuilder is the abstract query-building capability this package
// drives. Implementations accumulate predicates (AND-combined),
// orderings, expansions and pagination bounds, then execute. The total
// returned by ExecuteAndCount must reflect the filtered set before
// Limit/Offset are applied.
type QueryBuilder[T any] interface {
	AddPredicate(p Predicate)
	AddOrder(field string, dir Direction)
	AddExpand(relation string)
	SetLimit(n int)
	SetOffset(n int)
	ExecuteAndCount(ctx context.Context) ([]T, int64, error)
}

// Resource describes the queryable surface of one entity: the root
// alias used to qualify bare field names and the three independent
// allow-lists. An empty list leaves the corresponding option
// unrestricted.
type Resource struct {
	Alias        string
	FilterFields []string
	SortFields   []string
	ExpandFields []string
}

// Execute applies opts against qb and shapes the paginated result into
// an envelope. Malformed and unauthorized fragments are dropped
// silently (logged at debug level); the only error path is the
// execution of the underlying query, which is propagated unchanged.
func Execute[T any](ctx context.Context, opts Options, res Resource, qb QueryBuilder[T]) (Envelope[T], error) {
	translator := Translator{Alias: res.Alias, Allowed: res.FilterFields}
	for i, clause := range ParseFilter(opts.Filter) {
		predicate, ok := translator.Translate(clause, i)
		if !ok {
			logger.Debug(ctx, "filter clause dropped", "field", clause.Field)
			continue
		}
		qb.AddPredicate(predicate)
	}

	for _, sort := range parseOrderBy(opts.OrderBy, res.SortFields) {
		qb.AddOrder(sort.Field, sort.Direction)
	}

	for _, relation := range parseExpand(opts.Expand, res.ExpandFields) {
		qb.AddExpand(relation)
	}

	page := parsePage(opts.Top, opts.Skip)
	qb.SetLimit(page.Limit)
	qb.SetOffset(page.Skip)

	rows, total, err := qb.ExecuteAndCount(ctx)
	if err != nil {
		return Envelope[T]{}, err
	}

	return NewEnvelope(rows, total, page.Skip, page.Limit), nil
}
