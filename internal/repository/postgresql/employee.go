package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/employee"
	"github.com/sigea-hr/attendance-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository. The id comes from the caller
// because it may be an auth provider uid rather than a generated one.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, names, lastname, dni, email, birth_date, hiring_date,
			phone_code, phone_number, salary, department_id, job_position_id,
			role_id, is_active, has_auth_account, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		RETURNING id, names, lastname, dni, email, birth_date, hiring_date,
			phone_code, phone_number, salary, department_id, job_position_id,
			role_id, is_active, has_auth_account, created_at
	`

	var result employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.Names,
		newEmployee.Lastname,
		newEmployee.DNI,
		newEmployee.Email,
		newEmployee.BirthDate,
		newEmployee.HiringDate,
		newEmployee.PhoneCode,
		newEmployee.PhoneNumber,
		newEmployee.Salary,
		newEmployee.DepartmentID,
		newEmployee.JobPositionID,
		newEmployee.RoleID,
		newEmployee.IsActive,
		newEmployee.HasAuthAccount,
	).Scan(
		&result.ID,
		&result.Names,
		&result.Lastname,
		&result.DNI,
		&result.Email,
		&result.BirthDate,
		&result.HiringDate,
		&result.PhoneCode,
		&result.PhoneNumber,
		&result.Salary,
		&result.DepartmentID,
		&result.JobPositionID,
		&result.RoleID,
		&result.IsActive,
		&result.HasAuthAccount,
		&result.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrDNIExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.names, e.lastname, e.dni, e.email, e.birth_date, e.hiring_date,
			e.phone_code, e.phone_number, e.salary, e.department_id, e.job_position_id,
			e.role_id, e.is_active, e.has_auth_account, e.created_at,
			d.name, jp.name, rl.name
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		JOIN job_positions jp ON jp.id = e.job_position_id
		JOIN roles rl ON rl.id = e.role_id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	var result employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Names,
		&result.Lastname,
		&result.DNI,
		&result.Email,
		&result.BirthDate,
		&result.HiringDate,
		&result.PhoneCode,
		&result.PhoneNumber,
		&result.Salary,
		&result.DepartmentID,
		&result.JobPositionID,
		&result.RoleID,
		&result.IsActive,
		&result.HasAuthAccount,
		&result.CreatedAt,
		&result.DepartmentName,
		&result.JobPositionName,
		&result.RoleName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return result, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `e.deleted_at IS NULL`
	args := []any{}
	argPos := 1

	if filter.DepartmentID != nil {
		where += fmt.Sprintf(` AND e.department_id = $%d`, argPos)
		args = append(args, *filter.DepartmentID)
		argPos++
	}
	if filter.Search != nil {
		where += fmt.Sprintf(` AND (e.dni ILIKE $%d OR e.names ILIKE $%d OR e.lastname ILIKE $%d)`, argPos, argPos, argPos)
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees e WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.names, e.lastname, e.dni, e.email, e.birth_date, e.hiring_date,
			e.phone_code, e.phone_number, e.salary, e.department_id, e.job_position_id,
			e.role_id, e.is_active, e.has_auth_account, e.created_at,
			d.name, jp.name, rl.name
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		JOIN job_positions jp ON jp.id = e.job_position_id
		JOIN roles rl ON rl.id = e.role_id
		WHERE %s
		ORDER BY e.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID,
			&e.Names,
			&e.Lastname,
			&e.DNI,
			&e.Email,
			&e.BirthDate,
			&e.HiringDate,
			&e.PhoneCode,
			&e.PhoneNumber,
			&e.Salary,
			&e.DepartmentID,
			&e.JobPositionID,
			&e.RoleID,
			&e.IsActive,
			&e.HasAuthAccount,
			&e.CreatedAt,
			&e.DepartmentName,
			&e.JobPositionName,
			&e.RoleName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET names = $1, lastname = $2, dni = $3, email = $4, birth_date = $5,
			hiring_date = $6, phone_code = $7, phone_number = $8, salary = $9,
			department_id = $10, job_position_id = $11, role_id = $12, is_active = $13
		WHERE id = $14 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query,
		req.Names,
		req.Lastname,
		req.DNI,
		req.Email,
		req.BirthDate,
		req.HiringDate,
		req.PhoneCode,
		req.PhoneNumber,
		req.Salary,
		req.DepartmentID,
		req.JobPositionID,
		req.RoleID,
		req.IsActive,
		id,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrDNIExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), is_active = FALSE
		WHERE id = $1 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ExistsByDNI implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByDNI(ctx context.Context, dni string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees WHERE dni = $1 AND deleted_at IS NULL
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, dni).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check dni: %w", err)
	}

	return exists, nil
}

// ListActiveByDepartment implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActiveByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, names, lastname, dni, email, birth_date, hiring_date,
			phone_code, phone_number, salary, department_id, job_position_id,
			role_id, is_active, has_auth_account, created_at
		FROM employees
		WHERE department_id = $1 AND is_active = TRUE AND deleted_at IS NULL
		ORDER BY lastname ASC
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list department employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID,
			&e.Names,
			&e.Lastname,
			&e.DNI,
			&e.Email,
			&e.BirthDate,
			&e.HiringDate,
			&e.PhoneCode,
			&e.PhoneNumber,
			&e.Salary,
			&e.DepartmentID,
			&e.JobPositionID,
			&e.RoleID,
			&e.IsActive,
			&e.HasAuthAccount,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// ListIDsByDepartment implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListIDsByDepartment(ctx context.Context, departmentID string) ([]string, error) {
	return r.listIDs(ctx, `SELECT id FROM employees WHERE department_id = $1 AND deleted_at IS NULL`, departmentID)
}

// ListIDsByDNI implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListIDsByDNI(ctx context.Context, dni string) ([]string, error) {
	return r.listIDs(ctx, `SELECT id FROM employees WHERE dni = $1 AND deleted_at IS NULL`, dni)
}

func (r *employeeRepositoryImpl) listIDs(ctx context.Context, query string, arg any) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}
