// Package crm_repo wires the CRM entities to their PostgreSQL mappings.
package crm_repo

import (
	"github.com/matiascamiletti/mc-odata-go/internal/domain/crm"
	"github.com/matiascamiletti/mc-odata-go/internal/infrastructure/storage/postgres"
)

// NewContactRepo creates the contact list repository. The company
// relation is a left join keyed by company_id; its columns are scanned
// into Contact.Company through the "company." prefix.
func NewContactRepo(pool *postgres.Pool) *postgres.ResourceRepo[crm.Contact] {
	mapping := postgres.Mapping{
		Table:   "contacts",
		Alias:   "contact",
		Columns: postgres.ExtractDBColumns[crm.Contact](),
		Relations: map[string]postgres.Relation{
			"company": {
				Table:   "companies",
				Alias:   "company",
				JoinOn:  "company.id = contact.company_id",
				Columns: postgres.ExtractDBColumns[crm.Company](),
			},
		},
	}
	return postgres.NewResourceRepo[crm.Contact](pool, mapping, crm.ContactResource())
}
