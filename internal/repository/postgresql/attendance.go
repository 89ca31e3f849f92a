package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/sigea-hr/attendance-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// viewSelect joins an attendance row to its employee, department, job
// position and optional observation type. The employee and department joins
// are LEFT so a dangling reference surfaces as NULLs we can turn into
// ErrAttendanceAssembly instead of silently dropping the row.
const viewSelect = `
	SELECT a.id, a.date, a.first_check_in_time, a.first_check_out_time,
		a.second_check_in_time, a.second_check_out_time,
		a.observation, a.work_hours, a.overtime, a.created_at,
		e.id, e.names, e.lastname, e.dni,
		d.id, d.name,
		jp.id, jp.name,
		ot.id, ot.name
	FROM attendances a
	LEFT JOIN employees e ON e.id = a.employee_id
	LEFT JOIN departments d ON d.id = a.department_id
	LEFT JOIN job_positions jp ON jp.id = e.job_position_id
	LEFT JOIN observation_types ot ON ot.id = a.observation_type_id
`

// CreateMissingForDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CreateMissingForDate(ctx context.Context, departmentID, date string, employeeIDs []string) (int, int, error) {
	created := 0
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, employeeID := range employeeIDs {
			wrote, err := r.createIfMissing(txCtx, attendance.Attendance{
				EmployeeID:   employeeID,
				DepartmentID: departmentID,
				Date:         date,
			})
			if err != nil {
				return err
			}
			if wrote {
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return created, len(employeeIDs) - created, nil
}

// createIfMissing inserts unless a record already exists for the same
// (employee, date). The partial unique index makes the conflict clause
// race-safe.
func (r *attendanceRepositoryImpl) createIfMissing(ctx context.Context, att attendance.Attendance) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, department_id, date,
			first_check_in_time, first_check_out_time,
			second_check_in_time, second_check_out_time,
			observation_type_id, observation, work_hours, overtime, created_at
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (employee_id, date) WHERE deleted_at IS NULL DO NOTHING
	`

	commandTag, err := q.Exec(ctx, query,
		att.EmployeeID,
		att.DepartmentID,
		att.Date,
		att.FirstCheckInTime,
		att.FirstCheckOutTime,
		att.SecondCheckInTime,
		att.SecondCheckOutTime,
		att.ObservationTypeID,
		att.Observation,
		att.WorkHours,
		att.Overtime,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create attendance: %w", err)
	}

	return commandTag.RowsAffected() > 0, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, department_id, date,
			first_check_in_time, first_check_out_time,
			second_check_in_time, second_check_out_time,
			observation_type_id, observation, work_hours, overtime, created_at
		FROM attendances
		WHERE id = $1 AND deleted_at IS NULL
	`

	var result attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.DepartmentID,
		&result.Date,
		&result.FirstCheckInTime,
		&result.FirstCheckOutTime,
		&result.SecondCheckInTime,
		&result.SecondCheckOutTime,
		&result.ObservationTypeID,
		&result.Observation,
		&result.WorkHours,
		&result.Overtime,
		&result.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return result, nil
}

// GetViewByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetViewByID(ctx context.Context, id string) (attendance.View, error) {
	q := GetQuerier(ctx, r.db)

	query := viewSelect + ` WHERE a.id = $1 AND a.deleted_at IS NULL`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return attendance.View{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return attendance.View{}, fmt.Errorf("rows iteration error: %w", err)
		}
		return attendance.View{}, attendance.ErrAttendanceNotFound
	}

	view, err := scanView(rows)
	if err != nil {
		return attendance.View{}, err
	}

	return view, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.View, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `a.deleted_at IS NULL`
	args := []any{}
	argPos := 1

	if filter.Date != nil {
		where += fmt.Sprintf(` AND a.date = $%d`, argPos)
		args = append(args, *filter.Date)
		argPos++
	}
	if filter.EmployeeIDs != nil {
		where += fmt.Sprintf(` AND a.employee_id = ANY($%d)`, argPos)
		args = append(args, filter.EmployeeIDs)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendances a WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	order := "DESC"
	if filter.SortAsc {
		order = "ASC"
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY a.created_at %s LIMIT $%d OFFSET $%d`,
		viewSelect, where, order, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	views := []attendance.View{}
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return views, total, nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID, fromDate, toDate string) ([]attendance.View, error) {
	q := GetQuerier(ctx, r.db)

	query := viewSelect + `
		WHERE a.employee_id = $1 AND a.date >= $2 AND a.date <= $3 AND a.deleted_at IS NULL
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	views := []attendance.View{}
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return views, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET first_check_in_time = $1, first_check_out_time = $2,
			second_check_in_time = $3, second_check_out_time = $4,
			observation_type_id = $5, observation = $6,
			work_hours = $7, overtime = $8
		WHERE id = $9 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query,
		att.FirstCheckInTime,
		att.FirstCheckOutTime,
		att.SecondCheckInTime,
		att.SecondCheckOutTime,
		att.ObservationTypeID,
		att.Observation,
		att.WorkHours,
		att.Overtime,
		att.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func scanView(rows pgx.Rows) (attendance.View, error) {
	var (
		view            attendance.View
		employeeID      *string
		employeeNames   *string
		employeeLast    *string
		employeeDNI     *string
		departmentID    *string
		departmentName  *string
		jobPositionID   *string
		jobPositionName *string
		obsTypeID       *string
		obsTypeName     *string
	)

	err := rows.Scan(
		&view.ID,
		&view.Date,
		&view.FirstCheckInTime,
		&view.FirstCheckOutTime,
		&view.SecondCheckInTime,
		&view.SecondCheckOutTime,
		&view.Observation,
		&view.WorkHours,
		&view.Overtime,
		&view.CreatedAt,
		&employeeID,
		&employeeNames,
		&employeeLast,
		&employeeDNI,
		&departmentID,
		&departmentName,
		&jobPositionID,
		&jobPositionName,
		&obsTypeID,
		&obsTypeName,
	)
	if err != nil {
		return attendance.View{}, fmt.Errorf("failed to scan attendance: %w", err)
	}

	if employeeID == nil || departmentID == nil {
		return attendance.View{}, attendance.ErrAttendanceAssembly
	}

	view.Employee = attendance.EmployeeRef{
		ID:       *employeeID,
		Names:    *employeeNames,
		Lastname: *employeeLast,
		DNI:      *employeeDNI,
		Department: attendance.DepartmentRef{
			ID:   *departmentID,
			Name: *departmentName,
		},
	}
	if jobPositionID != nil {
		view.Employee.JobPosition = &attendance.JobPositionRef{
			ID:   *jobPositionID,
			Name: *jobPositionName,
		}
	}
	if obsTypeID != nil {
		view.ObservationType = &attendance.ObservationTypeRef{
			ID:   *obsTypeID,
			Name: *obsTypeName,
		}
	}

	return view, nil
}
