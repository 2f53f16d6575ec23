package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)

	// ListActive returns active employees across all companies. Used by
	// the nightly jobs.
	ListActive(ctx context.Context) ([]Employee, error)
}
