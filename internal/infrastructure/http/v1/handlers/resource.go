package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/matiascamiletti/mc-odata-go/internal/odata"
)

// Lister executes an OData list query for one entity type.
type Lister[T any] interface {
	List(ctx context.Context, opts odata.Options) (odata.Envelope[T], error)
}

// ResourceHandler serves the OData list endpoint for one entity.
type ResourceHandler[T any] struct {
	*BaseHandler
	lister Lister[T]
}

// NewResourceHandler creates a handler over a list repository.
func NewResourceHandler[T any](base *BaseHandler, lister Lister[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{BaseHandler: base, lister: lister}
}

// List handles GET /{resource} with $filter, $orderby, $expand, $top
// and $skip query options, responding with the pagination envelope.
func (h *ResourceHandler[T]) List(c *gin.Context) {
	opts := odata.OptionsFromValues(c.Request.URL.Query())

	result, err := h.lister.List(c.Request.Context(), opts)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, result)
}
