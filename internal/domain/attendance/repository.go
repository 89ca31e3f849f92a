package attendance

import "context"

// AttendanceRepository defines data access for attendance records. All
// reads exclude soft-deleted rows; nothing here hard-deletes.
type AttendanceRepository interface {
	// CreateMissingForDate inserts a blank record for every listed employee
	// that has none on the given calendar day. The batch runs in one
	// transaction, and each insert is backed by a unique index on
	// (employee, date), so concurrent runs cannot duplicate. It reports
	// how many rows were written and how many already existed.
	CreateMissingForDate(ctx context.Context, departmentID, date string, employeeIDs []string) (created, skipped int, err error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetViewByID resolves the record's references into a composite view.
	GetViewByID(ctx context.Context, id string) (View, error)

	// List returns composite views matching the resolved filter plus the
	// total count. Default order is creation descending.
	List(ctx context.Context, filter Filter) ([]View, int64, error)

	// ListByEmployeeAndRange returns an employee's views between two
	// calendar-day keys, inclusive, oldest first.
	ListByEmployeeAndRange(ctx context.Context, employeeID, fromDate, toDate string) ([]View, error)

	Update(ctx context.Context, att Attendance) error
}
