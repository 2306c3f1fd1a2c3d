package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type mockBase struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

type mockRelated struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

type mockEntity struct {
	mockBase
	Name     string          `db:"name"`
	Balance  decimal.Decimal `db:"balance"`
	Ignored  string          `db:"-"`
	Untagged string
	Related  *mockRelated `db:"related"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockEntity]()

	assert.Equal(t, []string{"id", "created_at", "name", "balance"}, cols)
}

func TestExtractDBColumns_SkipsRelations(t *testing.T) {
	cols := ExtractDBColumns[mockEntity]()

	assert.NotContains(t, cols, "related", "relation structs are not base columns")
	assert.Contains(t, cols, "balance", "scalar struct types are columns")
	assert.Contains(t, cols, "created_at")
}
