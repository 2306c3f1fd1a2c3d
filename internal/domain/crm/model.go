// Package crm holds the sample entities served by the reference API.
package crm

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Company is the expandable relation of Contact.
type Company struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Industry  string    `db:"industry" json:"industry"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Contact is the primary demo entity. Company is populated only when
// the request expands the relation.
type Contact struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	FirstName string          `db:"first_name" json:"firstName"`
	LastName  string          `db:"last_name" json:"lastName"`
	Email     *string         `db:"email" json:"email"`
	Age       *int            `db:"age" json:"age"`
	Balance   decimal.Decimal `db:"balance" json:"balance"`
	Active    bool            `db:"active" json:"active"`
	CompanyID *uuid.UUID      `db:"company_id" json:"companyId"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`

	Company *Company `db:"company" json:"company,omitempty"`
}
