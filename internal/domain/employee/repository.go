package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	SoftDelete(ctx context.Context, id string) error

	// ExistsByDNI considers non-deleted employees only.
	ExistsByDNI(ctx context.Context, dni string) (bool, error)

	// ListActiveByDepartment returns employees eligible for attendance
	// generation: department match, is_active, not soft-deleted.
	ListActiveByDepartment(ctx context.Context, departmentID string) ([]Employee, error)

	// ListIDsByDepartment resolves a department to its employee id set,
	// soft-deleted employees excluded.
	ListIDsByDepartment(ctx context.Context, departmentID string) ([]string, error)

	// ListIDsByDNI resolves a national id to the matching employee id set.
	ListIDsByDNI(ctx context.Context, dni string) ([]string, error)
}
