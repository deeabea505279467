package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)

	// List returns all employees ordered by employee_number ascending.
	List(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, req UpdateEmployeeRequest) error

	// Delete removes the employee. Ledger rows referencing it are removed by
	// the ON DELETE CASCADE constraints, never left orphaned.
	Delete(ctx context.Context, id string) error
}
