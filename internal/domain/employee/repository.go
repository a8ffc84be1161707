package employee

import "context"

// EmployeeRepository is the read-mostly roster directory. The attendance core
// never mutates employees; Create exists for seeding and onboarding flows.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCode looks up an employee by the human-facing employee code
	// (e.g. EMP001), used by manager-side filters and export.
	GetByCode(ctx context.Context, code string) (Employee, error)

	GetByEmail(ctx context.Context, email string) (Employee, error)

	// ListByRole returns the roster, optionally restricted to one role.
	// A nil role returns everyone.
	ListByRole(ctx context.Context, role *Role) ([]Employee, error)
}
