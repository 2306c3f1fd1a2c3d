package crm_repo

import (
	"github.com/matiascamiletti/mc-odata-go/internal/domain/crm"
	"github.com/matiascamiletti/mc-odata-go/internal/infrastructure/storage/postgres"
)

// NewCompanyRepo creates the company list repository.
func NewCompanyRepo(pool *postgres.Pool) *postgres.ResourceRepo[crm.Company] {
	mapping := postgres.Mapping{
		Table:   "companies",
		Alias:   "company",
		Columns: postgres.ExtractDBColumns[crm.Company](),
	}
	return postgres.NewResourceRepo[crm.Company](pool, mapping, crm.CompanyResource())
}
