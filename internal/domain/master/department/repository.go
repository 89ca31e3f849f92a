package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, department Department) (Department, error)

	// GetByID returns the department even when it is soft-deleted; callers
	// that care inspect DeletedAt.
	GetByID(ctx context.Context, id string) (Department, error)

	// List returns all non-deleted departments.
	List(ctx context.Context) ([]Department, error)

	// ListPaginated returns a page of non-deleted departments plus the total count.
	ListPaginated(ctx context.Context, page, limit int) ([]Department, int64, error)

	Update(ctx context.Context, req UpdateDepartmentRequest) error

	// SoftDelete stamps deleted_at; the row is never removed.
	SoftDelete(ctx context.Context, id string) error
}
