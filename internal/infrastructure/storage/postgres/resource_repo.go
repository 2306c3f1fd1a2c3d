package postgres

import (
	"context"

	"github.com/matiascamiletti/mc-odata-go/internal/odata"
)

// ResourceRepo serves OData list queries for one mapped entity. Embed
// or construct it per resource; it is stateless across requests.
type ResourceRepo[T any] struct {
	pool     *Pool
	mapping  Mapping
	resource odata.Resource
}

// NewResourceRepo creates a repository bound to one table mapping and
// its queryable surface.
func NewResourceRepo[T any](pool *Pool, mapping Mapping, resource odata.Resource) *ResourceRepo[T] {
	return &ResourceRepo[T]{pool: pool, mapping: mapping, resource: resource}
}

// List translates opts and executes them against a fresh query builder.
func (r *ResourceRepo[T]) List(ctx context.Context, opts odata.Options) (odata.Envelope[T], error) {
	return odata.Execute(ctx, opts, r.resource, NewEntityQuery[T](r.pool, r.mapping))
}
