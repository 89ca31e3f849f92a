package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/employee"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/department"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/jobposition"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/role"
	"github.com/sigea-hr/attendance-backend-go/internal/pkg/identity"
)

const displayTimeLayout = "02/01/2006 15:04"

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter employee.Filter) ([]employee.EmployeeResponse, int64, error)
	UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error
	DeleteEmployee(ctx context.Context, id string) error

	// GetAttendanceRange returns an employee's attendance between two
	// calendar days, inclusive, oldest first.
	GetAttendanceRange(ctx context.Context, employeeID, fromDate, toDate string) ([]attendance.View, error)
}

type employeeServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	departmentRepo  department.DepartmentRepository
	jobPositionRepo jobposition.JobPositionRepository
	roleRepo        role.RoleRepository
	attendanceRepo  attendance.AttendanceRepository
	provider        identity.Provider
	logger          *slog.Logger
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	jobPositionRepo jobposition.JobPositionRepository,
	roleRepo role.RoleRepository,
	attendanceRepo attendance.AttendanceRepository,
	provider identity.Provider,
	logger *slog.Logger,
) EmployeeService {
	return &employeeServiceImpl{
		employeeRepo:    employeeRepo,
		departmentRepo:  departmentRepo,
		jobPositionRepo: jobPositionRepo,
		roleRepo:        roleRepo,
		attendanceRepo:  attendanceRepo,
		provider:        provider,
		logger:          logger,
	}
}

func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.checkReferences(ctx, req.DepartmentID, req.JobPositionID, req.RoleID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByDNI(ctx, req.DNI)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check dni: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrDNIExists
	}

	// When the employee has an email, provision a provider account with the
	// dni as the initial password. Provisioning failures are logged but do
	// not block creation; those employees simply have no login.
	id := uuid.NewString()
	hasAuthAccount := false
	if req.Email != nil && *req.Email != "" {
		uid, err := s.provider.CreateUser(ctx, *req.Email, req.DNI)
		if err != nil {
			s.logger.Warn("failed to provision auth account for employee",
				slog.String("email", *req.Email),
				slog.String("error", err.Error()),
			)
		} else {
			id = uid
			hasAuthAccount = true
		}
	}

	entity := employee.Employee{
		ID:             id,
		Names:          req.Names,
		Lastname:       req.Lastname,
		DNI:            req.DNI,
		Email:          req.Email,
		BirthDate:      req.BirthDate,
		HiringDate:     req.HiringDate,
		PhoneCode:      req.PhoneCode,
		PhoneNumber:    req.PhoneNumber,
		Salary:         req.Salary,
		DepartmentID:   req.DepartmentID,
		JobPositionID:  req.JobPositionID,
		RoleID:         req.RoleID,
		IsActive:       req.IsActive,
		HasAuthAccount: hasAuthAccount,
	}

	created, err := s.employeeRepo.Create(ctx, entity)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

func (s *employeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	entity, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(entity), nil
}

func (s *employeeServiceImpl) ListEmployees(ctx context.Context, filter employee.Filter) ([]employee.EmployeeResponse, int64, error) {
	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := []employee.EmployeeResponse{}
	for _, e := range employees {
		responses = append(responses, toEmployeeResponse(e))
	}

	return responses, total, nil
}

func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.checkReferences(ctx, req.DepartmentID, req.JobPositionID, req.RoleID); err != nil {
		return err
	}

	current, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if current.DNI != req.DNI {
		exists, err := s.employeeRepo.ExistsByDNI(ctx, req.DNI)
		if err != nil {
			return fmt.Errorf("failed to check dni: %w", err)
		}
		if exists {
			return employee.ErrDNIExists
		}
	}

	return s.employeeRepo.Update(ctx, id, req)
}

func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.SoftDelete(ctx, id)
}

func (s *employeeServiceImpl) GetAttendanceRange(ctx context.Context, employeeID, fromDate, toDate string) ([]attendance.View, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	return s.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, fromDate, toDate)
}

func (s *employeeServiceImpl) checkReferences(ctx context.Context, departmentID, jobPositionID, roleID string) error {
	dept, err := s.departmentRepo.GetByID(ctx, departmentID)
	if err != nil {
		return err
	}
	if dept.DeletedAt != nil {
		return department.ErrDepartmentDeleted
	}

	if _, err := s.jobPositionRepo.GetByID(ctx, jobPositionID); err != nil {
		return err
	}

	if _, err := s.roleRepo.GetByID(ctx, roleID); err != nil {
		return err
	}

	return nil
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             e.ID,
		Names:          e.Names,
		Lastname:       e.Lastname,
		DNI:            e.DNI,
		Email:          e.Email,
		BirthDate:      e.BirthDate,
		HiringDate:     e.HiringDate,
		PhoneCode:      e.PhoneCode,
		PhoneNumber:    e.PhoneNumber,
		Salary:         e.Salary,
		DepartmentID:   e.DepartmentID,
		Department:     e.DepartmentName,
		JobPositionID:  e.JobPositionID,
		JobPosition:    e.JobPositionName,
		RoleID:         e.RoleID,
		IsActive:       e.IsActive,
		HasAuthAccount: e.HasAuthAccount,
		CreatedAt:      e.CreatedAt.Format(displayTimeLayout),
	}
}
