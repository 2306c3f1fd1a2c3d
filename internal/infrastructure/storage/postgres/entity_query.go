package postgres

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/matiascamiletti/mc-odata-go/internal/odata"
)

var tracer = otel.Tracer("mc-odata/postgres")

// Relation describes one left-join expansion target.
type Relation struct {
	// Table is the joined table name.
	Table string

	// Alias is the join alias; it is also the column prefix scany uses
	// to hydrate the nested struct.
	Alias string

	// JoinOn is the join condition, e.g. "company.id = contact.company_id".
	JoinOn string

	// Columns are the joined columns, unqualified.
	Columns []string
}

// Mapping binds a resource to its table layout.
type Mapping struct {
	Table     string
	Alias     string
	Columns   []string
	Relations map[string]Relation
}

// EntityQuery implements odata.QueryBuilder[T] against PostgreSQL using
// squirrel for SQL generation and pgx/scany for execution. One value
// serves one request; it is not safe for reuse.
type EntityQuery[T any] struct {
	pool    *Pool
	mapping Mapping

	predicates []odata.Predicate
	orders     []odata.Sort
	expands    []string
	limit      int
	offset     int
}

// NewEntityQuery creates a query builder for one request.
func NewEntityQuery[T any](pool *Pool, mapping Mapping) *EntityQuery[T] {
	return &EntityQuery[T]{pool: pool, mapping: mapping}
}

// builder returns a squirrel builder with PostgreSQL placeholder format.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// AddPredicate appends an AND-combined condition.
func (q *EntityQuery[T]) AddPredicate(p odata.Predicate) {
	q.predicates = append(q.predicates, p)
}

// AddOrder appends an ordering key. Bare field names are qualified with
// the root alias.
func (q *EntityQuery[T]) AddOrder(field string, dir odata.Direction) {
	if !strings.Contains(field, ".") {
		field = q.mapping.Alias + "." + field
	}
	q.orders = append(q.orders, odata.Sort{Field: field, Direction: dir})
}

// AddExpand requests a left-outer-join fetch of a mapped relation.
// Unknown relation names and repeated requests are ignored.
func (q *EntityQuery[T]) AddExpand(relation string) {
	if _, ok := q.mapping.Relations[relation]; !ok {
		return
	}
	for _, existing := range q.expands {
		if existing == relation {
			return
		}
	}
	q.expands = append(q.expands, relation)
}

// SetLimit bounds the page size; zero means unbounded.
func (q *EntityQuery[T]) SetLimit(n int) { q.limit = n }

// SetOffset skips leading rows.
func (q *EntityQuery[T]) SetOffset(n int) { q.offset = n }

// namedPlaceholder matches :name style parameters inside a predicate
// template.
var namedPlaceholder = regexp.MustCompile(`:[A-Za-z_][A-Za-z0-9_]*`)

// predicateExpr rewrites a predicate's named placeholders into
// positional arguments in order of appearance, for squirrel.Expr.
func predicateExpr(p odata.Predicate) (string, []any) {
	args := make([]any, 0, len(p.Bindings))
	sql := namedPlaceholder.ReplaceAllStringFunc(p.Template, func(m string) string {
		args = append(args, p.Bindings[m[1:]])
		return "?"
	})
	return sql, args
}

// selectQuery assembles the filtered, expanded SELECT without ordering
// or pagination, so it can also feed the count query.
func (q *EntityQuery[T]) selectQuery() squirrel.SelectBuilder {
	cols := make([]string, 0, len(q.mapping.Columns))
	for _, col := range q.mapping.Columns {
		cols = append(cols, q.mapping.Alias+"."+col)
	}

	sel := builder().
		Select(cols...).
		From(q.mapping.Table + " " + q.mapping.Alias)

	for _, name := range q.expands {
		rel := q.mapping.Relations[name]
		sel = sel.LeftJoin(rel.Table + " " + rel.Alias + " ON " + rel.JoinOn)
		for _, col := range rel.Columns {
			sel = sel.Column(fmt.Sprintf(`%s.%s AS "%s.%s"`, rel.Alias, col, rel.Alias, col))
		}
	}

	for _, p := range q.predicates {
		sql, args := predicateExpr(p)
		sel = sel.Where(squirrel.Expr(sql, args...))
	}

	return sel
}

// ExecuteAndCount runs the count query over the filtered set and then
// fetches the requested page. The total always reflects the set before
// pagination.
func (q *EntityQuery[T]) ExecuteAndCount(ctx context.Context) ([]T, int64, error) {
	ctx, span := tracer.Start(ctx, "odata.query",
		trace.WithAttributes(
			attribute.String("db.table", q.mapping.Table),
			attribute.Int("query.predicates", len(q.predicates)),
			attribute.Int("query.expands", len(q.expands)),
		))
	defer span.End()

	sel := q.selectQuery()

	countSQL, countArgs, err := builder().
		Select("COUNT(*)").
		FromSelect(sel, "sub").
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := q.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", q.mapping.Table, err)
	}

	for _, sort := range q.orders {
		sel = sel.OrderBy(sort.Field + " " + string(sort.Direction))
	}
	if q.limit > 0 {
		sel = sel.Limit(uint64(q.limit))
	}
	if q.offset > 0 {
		sel = sel.Offset(uint64(q.offset))
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var rows []T
	if err := pgxscan.Select(ctx, q.pool, &rows, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", q.mapping.Table, err)
	}

	return rows, total, nil
}
