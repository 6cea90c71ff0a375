package employee

import "context"

type EmployeeRepository interface {
	// Create inserts a new employee and returns it with ID and CreatedAt set.
	Create(ctx context.Context, e Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByUserID resolves the employee row linked to a user account.
	// Returns ErrNoEmployeeRecord when the user has no employee row.
	GetByUserID(ctx context.Context, userID string) (Employee, error)

	// List retrieves employees matching the filter, newest-first
	List(ctx context.Context, filter ListFilter) ([]Employee, error)

	// Update applies a partial update. Returns ErrEmployeeNotFound when no
	// row matches.
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error

	// Delete removes an employee. Returns ErrEmployeeNotFound when no row
	// matches.
	Delete(ctx context.Context, id string) error

	// CountActive counts employees with active status
	CountActive(ctx context.Context) (int, error)
}
