package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/employee"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/department"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/observationtype"
)

type AttendanceService interface {
	// List resolves the dni and department filters down to employee id sets,
	// intersects them, and queries the matching records. A filter that
	// resolves to no employees yields an empty page, not an error.
	List(ctx context.Context, filter attendance.ListFilter) ([]attendance.View, int64, error)

	Get(ctx context.Context, id string) (attendance.View, error)

	// GenerateByDepartment creates one blank record per active employee of
	// the department for the given day. Employees that already have a record
	// for that day are skipped, so the operation is safe to repeat.
	GenerateByDepartment(ctx context.Context, req attendance.GenerateAttendanceRequest) (attendance.GenerateAttendanceResponse, error)

	// Update replaces the check times and observation of a record and
	// recomputes its worked hours and overtime.
	Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.View, error)
}

type attendanceServiceImpl struct {
	attendanceRepo      attendance.AttendanceRepository
	employeeRepo        employee.EmployeeRepository
	departmentRepo      department.DepartmentRepository
	observationTypeRepo observationtype.ObservationTypeRepository
	logger              *slog.Logger
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	observationTypeRepo observationtype.ObservationTypeRepository,
	logger *slog.Logger,
) AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo:      attendanceRepo,
		employeeRepo:        employeeRepo,
		departmentRepo:      departmentRepo,
		observationTypeRepo: observationTypeRepo,
		logger:              logger,
	}
}

func (s *attendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.View, int64, error) {
	employeeIDs, err := s.resolveEmployeeIDs(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	// A constrained filter that matched nobody cannot match any record.
	if employeeIDs != nil && len(employeeIDs) == 0 {
		return []attendance.View{}, 0, nil
	}

	return s.attendanceRepo.List(ctx, attendance.Filter{
		Date:        filter.Date,
		EmployeeIDs: employeeIDs,
		SortAsc:     filter.SortAsc,
		Page:        filter.Page,
		Limit:       filter.Limit,
	})
}

// resolveEmployeeIDs turns the dni and department filters into one employee
// id set. nil means unconstrained; both filters present means both must hold,
// so the sets are intersected.
func (s *attendanceServiceImpl) resolveEmployeeIDs(ctx context.Context, filter attendance.ListFilter) ([]string, error) {
	var byDNI, byDepartment []string

	if filter.DNI != nil {
		ids, err := s.employeeRepo.ListIDsByDNI(ctx, *filter.DNI)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve dni filter: %w", err)
		}
		byDNI = ids
	}

	if filter.DepartmentID != nil {
		ids, err := s.employeeRepo.ListIDsByDepartment(ctx, *filter.DepartmentID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve department filter: %w", err)
		}
		byDepartment = ids
	}

	switch {
	case filter.DNI != nil && filter.DepartmentID != nil:
		return intersect(byDNI, byDepartment), nil
	case filter.DNI != nil:
		return byDNI, nil
	case filter.DepartmentID != nil:
		return byDepartment, nil
	}

	return nil, nil
}

func intersect(a, b []string) []string {
	set := make(map[string]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}

	out := []string{}
	for _, id := range b {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func (s *attendanceServiceImpl) Get(ctx context.Context, id string) (attendance.View, error) {
	return s.attendanceRepo.GetViewByID(ctx, id)
}

func (s *attendanceServiceImpl) GenerateByDepartment(ctx context.Context, req attendance.GenerateAttendanceRequest) (attendance.GenerateAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.GenerateAttendanceResponse{}, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return attendance.GenerateAttendanceResponse{}, err
	}
	if dept.DeletedAt != nil {
		return attendance.GenerateAttendanceResponse{}, department.ErrDepartmentDeleted
	}

	employees, err := s.employeeRepo.ListActiveByDepartment(ctx, req.DepartmentID)
	if err != nil {
		return attendance.GenerateAttendanceResponse{}, fmt.Errorf("failed to list department employees: %w", err)
	}

	employeeIDs := make([]string, 0, len(employees))
	for _, emp := range employees {
		employeeIDs = append(employeeIDs, emp.ID)
	}

	created, skipped, err := s.attendanceRepo.CreateMissingForDate(ctx, req.DepartmentID, req.Date, employeeIDs)
	if err != nil {
		return attendance.GenerateAttendanceResponse{}, fmt.Errorf("failed to generate attendance: %w", err)
	}

	result := attendance.GenerateAttendanceResponse{
		DepartmentID: req.DepartmentID,
		Date:         req.Date,
		Created:      created,
		Skipped:      skipped,
	}

	s.logger.Info("attendance generation finished",
		slog.String("department_id", req.DepartmentID),
		slog.String("date", req.Date),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}

func (s *attendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.View, error) {
	if err := req.Validate(); err != nil {
		return attendance.View{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.View{}, err
	}

	if req.ObservationTypeID != nil {
		if _, err := s.observationTypeRepo.GetByID(ctx, *req.ObservationTypeID); err != nil {
			return attendance.View{}, err
		}
	}

	// The form always submits the full set of fields, so the update is a
	// replacement: an absent timestamp clears the stored one.
	record.FirstCheckInTime = parseOptionalTime(req.FirstCheckInTime)
	record.FirstCheckOutTime = parseOptionalTime(req.FirstCheckOutTime)
	record.SecondCheckInTime = parseOptionalTime(req.SecondCheckInTime)
	record.SecondCheckOutTime = parseOptionalTime(req.SecondCheckOutTime)
	record.ObservationTypeID = req.ObservationTypeID
	record.Observation = req.Observation
	if req.ObservationTypeID == nil {
		record.Observation = nil
	}

	record.WorkHours, record.Overtime = attendance.ComputeWorkHours(
		req.FirstCheckInTime,
		req.FirstCheckOutTime,
		req.SecondCheckInTime,
		req.SecondCheckOutTime,
	)

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.View{}, err
	}

	return s.attendanceRepo.GetViewByID(ctx, req.ID)
}

func parseOptionalTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}
