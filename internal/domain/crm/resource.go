package crm

import (
	"context"

	"github.com/matiascamiletti/mc-odata-go/internal/odata"
)

// ContactLister serves contact list queries.
type ContactLister interface {
	List(ctx context.Context, opts odata.Options) (odata.Envelope[Contact], error)
}

// CompanyLister serves company list queries.
type CompanyLister interface {
	List(ctx context.Context, opts odata.Options) (odata.Envelope[Company], error)
}

// ContactResource describes the queryable surface of contacts. The
// company.name entry lets clients filter on the expanded relation.
func ContactResource() odata.Resource {
	return odata.Resource{
		Alias: "contact",
		FilterFields: []string{
			"first_name", "last_name", "email", "age",
			"balance", "active", "company_id", "created_at",
			"company.name",
		},
		SortFields: []string{
			"first_name", "last_name", "age", "balance", "created_at",
		},
		ExpandFields: []string{"company"},
	}
}

// CompanyResource describes the queryable surface of companies. The
// resource maps no relations, so $expand values fall through to the
// storage layer and are ignored there.
func CompanyResource() odata.Resource {
	return odata.Resource{
		Alias:        "company",
		FilterFields: []string{"name", "industry", "created_at"},
		SortFields:   []string{"name", "industry", "created_at"},
	}
}
