package employee

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/employee"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/department"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/jobposition"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/role"
	"github.com/sigea-hr/attendance-backend-go/internal/pkg/identity"
)

// ==================== FAKES ====================

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	e.CreatedAt = time.Now()
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.Filter) ([]employee.Employee, int64, error) {
	out := []employee.Employee{}
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, id string, req employee.UpdateEmployeeRequest) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.DNI = req.DNI
	e.Names = req.Names
	f.employees[id] = e
	return nil
}

func (f *fakeEmployeeRepo) SoftDelete(_ context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) ExistsByDNI(_ context.Context, dni string) (bool, error) {
	for _, e := range f.employees {
		if e.DNI == dni {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) ListActiveByDepartment(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListIDsByDepartment(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListIDsByDNI(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

type fakeDepartmentRepo struct {
	departments map[string]department.Department
}

func (f *fakeDepartmentRepo) Create(_ context.Context, d department.Department) (department.Department, error) {
	return d, nil
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id string) (department.Department, error) {
	d, ok := f.departments[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return d, nil
}

func (f *fakeDepartmentRepo) List(_ context.Context) ([]department.Department, error) {
	return nil, nil
}

func (f *fakeDepartmentRepo) ListPaginated(_ context.Context, _, _ int) ([]department.Department, int64, error) {
	return nil, 0, nil
}

func (f *fakeDepartmentRepo) Update(_ context.Context, _ department.UpdateDepartmentRequest) error {
	return nil
}

func (f *fakeDepartmentRepo) SoftDelete(_ context.Context, _ string) error { return nil }

type fakeJobPositionRepo struct {
	positions map[string]jobposition.JobPosition
}

func (f *fakeJobPositionRepo) Create(_ context.Context, jp jobposition.JobPosition) (jobposition.JobPosition, error) {
	return jp, nil
}

func (f *fakeJobPositionRepo) GetByID(_ context.Context, id string) (jobposition.JobPosition, error) {
	jp, ok := f.positions[id]
	if !ok {
		return jobposition.JobPosition{}, jobposition.ErrJobPositionNotFound
	}
	return jp, nil
}

func (f *fakeJobPositionRepo) List(_ context.Context) ([]jobposition.JobPosition, error) {
	return nil, nil
}

func (f *fakeJobPositionRepo) ListPaginated(_ context.Context, _, _ int) ([]jobposition.JobPosition, int64, error) {
	return nil, 0, nil
}

func (f *fakeJobPositionRepo) Update(_ context.Context, _ jobposition.UpdateJobPositionRequest) error {
	return nil
}

func (f *fakeJobPositionRepo) SoftDelete(_ context.Context, _ string) error { return nil }

type fakeRoleRepo struct {
	roles map[string]role.Role
}

func (f *fakeRoleRepo) GetByID(_ context.Context, id string) (role.Role, error) {
	rl, ok := f.roles[id]
	if !ok {
		return role.Role{}, role.ErrRoleNotFound
	}
	return rl, nil
}

func (f *fakeRoleRepo) List(_ context.Context) ([]role.Role, error) { return nil, nil }

type fakeAttendanceRepo struct {
	views []attendance.View
}

func (f *fakeAttendanceRepo) CreateMissingForDate(_ context.Context, _, _ string, employeeIDs []string) (int, int, error) {
	return 0, len(employeeIDs), nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetViewByID(_ context.Context, _ string) (attendance.View, error) {
	return attendance.View{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.Filter) ([]attendance.View, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(_ context.Context, employeeID, fromDate, toDate string) ([]attendance.View, error) {
	out := []attendance.View{}
	for _, v := range f.views {
		if v.Employee.ID == employeeID && v.Date >= fromDate && v.Date <= toDate {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, _ attendance.Attendance) error { return nil }

type fakeProvider struct {
	fail    bool
	created []string
}

func (f *fakeProvider) SignIn(_ context.Context, _, _ string) (identity.User, error) {
	return identity.User{}, nil
}

func (f *fakeProvider) VerifyToken(_ context.Context, _ string) (identity.User, error) {
	return identity.User{}, nil
}

func (f *fakeProvider) CreateUser(_ context.Context, email, _ string) (string, error) {
	if f.fail {
		return "", &identity.Error{Code: "OPERATION_NOT_ALLOWED", Message: "provisioning disabled"}
	}
	f.created = append(f.created, email)
	return "uid-" + email, nil
}

// ==================== SETUP ====================

func strPtr(s string) *string { return &s }

func newTestService(provider *fakeProvider) (EmployeeService, *fakeEmployeeRepo, *fakeAttendanceRepo) {
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
	departmentRepo := &fakeDepartmentRepo{departments: map[string]department.Department{
		"dept-1": {ID: "dept-1", Name: "Ventas"},
	}}
	jobPositionRepo := &fakeJobPositionRepo{positions: map[string]jobposition.JobPosition{
		"jp-1": {ID: "jp-1", Name: "Vendedor"},
	}}
	roleRepo := &fakeRoleRepo{roles: map[string]role.Role{
		"role-1": {ID: "role-1", Name: "employee"},
	}}
	attendanceRepo := &fakeAttendanceRepo{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewEmployeeService(employeeRepo, departmentRepo, jobPositionRepo, roleRepo, attendanceRepo, provider, logger)
	return svc, employeeRepo, attendanceRepo
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Names:         "maría",
		Lastname:      "pérez",
		DNI:           "12345678",
		Email:         strPtr("maria@example.com"),
		BirthDate:     "1990-05-20",
		HiringDate:    "2024-01-15",
		PhoneCode:     "+51",
		PhoneNumber:   "999888777",
		Salary:        2500,
		DepartmentID:  "dept-1",
		JobPositionID: "jp-1",
		RoleID:        "role-1",
		IsActive:      true,
	}
}

// ==================== TESTS ====================

func TestCreateEmployee_ProvisionsAuthAccount(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{}
	svc, _, _ := newTestService(provider)

	result, err := svc.CreateEmployee(ctx, validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, "uid-maria@example.com", result.ID)
	assert.True(t, result.HasAuthAccount)
	assert.Equal(t, []string{"maria@example.com"}, provider.created)
}

func TestCreateEmployee_ProviderFailureStillCreates(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{fail: true}
	svc, employeeRepo, _ := newTestService(provider)

	result, err := svc.CreateEmployee(ctx, validCreateRequest())

	require.NoError(t, err)
	assert.False(t, result.HasAuthAccount)
	assert.NotEmpty(t, result.ID)
	assert.Len(t, employeeRepo.employees, 1)
}

func TestCreateEmployee_NoEmailNoAccount(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{}
	svc, _, _ := newTestService(provider)

	req := validCreateRequest()
	req.Email = nil

	result, err := svc.CreateEmployee(ctx, req)

	require.NoError(t, err)
	assert.False(t, result.HasAuthAccount)
	assert.Empty(t, provider.created)
}

func TestCreateEmployee_DuplicateDNI(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(&fakeProvider{})

	_, err := svc.CreateEmployee(ctx, validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.Email = strPtr("otra@example.com")
	_, err = svc.CreateEmployee(ctx, dup)

	assert.ErrorIs(t, err, employee.ErrDNIExists)
}

func TestCreateEmployee_UnknownDepartment(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(&fakeProvider{})

	req := validCreateRequest()
	req.DepartmentID = "missing"

	_, err := svc.CreateEmployee(ctx, req)

	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestCreateEmployee_UnknownRole(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(&fakeProvider{})

	req := validCreateRequest()
	req.RoleID = "missing"

	_, err := svc.CreateEmployee(ctx, req)

	assert.ErrorIs(t, err, role.ErrRoleNotFound)
}

func TestCreateEmployee_RejectsBadDNI(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(&fakeProvider{})

	req := validCreateRequest()
	req.DNI = "123"

	_, err := svc.CreateEmployee(ctx, req)

	assert.Error(t, err)
}

func TestUpdateEmployee_DNIChangeChecksDuplicates(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo, _ := newTestService(&fakeProvider{})

	first, err := svc.CreateEmployee(ctx, validCreateRequest())
	require.NoError(t, err)

	second := validCreateRequest()
	second.DNI = "87654321"
	second.Email = strPtr("otra@example.com")
	created, err := svc.CreateEmployee(ctx, second)
	require.NoError(t, err)

	update := employee.UpdateEmployeeRequest{
		Names:         "maría",
		Lastname:      "pérez",
		DNI:           first.DNI, // collides with the first employee
		BirthDate:     "1990-05-20",
		HiringDate:    "2024-01-15",
		Salary:        2500,
		DepartmentID:  "dept-1",
		JobPositionID: "jp-1",
		RoleID:        "role-1",
	}

	err = svc.UpdateEmployee(ctx, created.ID, update)
	assert.ErrorIs(t, err, employee.ErrDNIExists)

	// Keeping the own dni is not a collision.
	update.DNI = "87654321"
	err = svc.UpdateEmployee(ctx, created.ID, update)
	assert.NoError(t, err)

	assert.Len(t, employeeRepo.employees, 2)
}

func TestGetAttendanceRange(t *testing.T) {
	ctx := context.Background()
	svc, _, attendanceRepo := newTestService(&fakeProvider{})

	created, err := svc.CreateEmployee(ctx, validCreateRequest())
	require.NoError(t, err)

	attendanceRepo.views = []attendance.View{
		{ID: "att-1", Date: "2025-03-05", Employee: attendance.EmployeeRef{ID: created.ID}},
		{ID: "att-2", Date: "2025-03-15", Employee: attendance.EmployeeRef{ID: created.ID}},
		{ID: "att-3", Date: "2025-04-01", Employee: attendance.EmployeeRef{ID: created.ID}},
		{ID: "att-4", Date: "2025-03-10", Employee: attendance.EmployeeRef{ID: "someone-else"}},
	}

	views, err := svc.GetAttendanceRange(ctx, created.ID, "2025-03-01", "2025-03-31")

	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestGetAttendanceRange_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(&fakeProvider{})

	_, err := svc.GetAttendanceRange(ctx, "missing", "2025-03-01", "2025-03-31")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
