package master

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/department"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/jobposition"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/observationtype"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/role"
)

// ==================== FAKES ====================

type fakeDepartmentRepo struct {
	departments map[string]department.Department
	nextID      int
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: map[string]department.Department{}}
}

func (f *fakeDepartmentRepo) Create(_ context.Context, d department.Department) (department.Department, error) {
	for _, existing := range f.departments {
		if existing.Name == d.Name && existing.DeletedAt == nil {
			return department.Department{}, department.ErrDepartmentNameExists
		}
	}
	f.nextID++
	d.ID = fmt.Sprintf("dept-%d", f.nextID)
	d.CreatedAt = time.Now()
	f.departments[d.ID] = d
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
	out := []department.Department{}
	for _, d := range f.departments {
		if d.DeletedAt == nil {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDepartmentRepo) ListPaginated(ctx context.Context, page, limit int) ([]department.Department, int64, error) {
	all, err := f.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return []department.Department{}, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeDepartmentRepo) Update(_ context.Context, req department.UpdateDepartmentRequest) error {
	d, ok := f.departments[req.ID]
	if !ok || d.DeletedAt != nil {
		return department.ErrDepartmentNotFound
	}
	d.Name = req.Name
	d.Description = req.Description
	f.departments[req.ID] = d
	return nil
}

func (f *fakeDepartmentRepo) SoftDelete(_ context.Context, id string) error {
	d, ok := f.departments[id]
	if !ok || d.DeletedAt != nil {
		return department.ErrDepartmentNotFound
	}
	now := time.Now()
	d.DeletedAt = &now
	f.departments[id] = d
	return nil
}

type fakeJobPositionRepo struct{}

func (f *fakeJobPositionRepo) Create(_ context.Context, jp jobposition.JobPosition) (jobposition.JobPosition, error) {
	return jp, nil
}

func (f *fakeJobPositionRepo) GetByID(_ context.Context, _ string) (jobposition.JobPosition, error) {
	return jobposition.JobPosition{}, jobposition.ErrJobPositionNotFound
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

type fakeObservationTypeRepo struct{}

func (f *fakeObservationTypeRepo) Create(_ context.Context, ot observationtype.ObservationType) (observationtype.ObservationType, error) {
	return ot, nil
}

func (f *fakeObservationTypeRepo) GetByID(_ context.Context, _ string) (observationtype.ObservationType, error) {
	return observationtype.ObservationType{}, observationtype.ErrObservationTypeNotFound
}

func (f *fakeObservationTypeRepo) List(_ context.Context) ([]observationtype.ObservationType, error) {
	return nil, nil
}

func (f *fakeObservationTypeRepo) ListPaginated(_ context.Context, _, _ int) ([]observationtype.ObservationType, int64, error) {
	return nil, 0, nil
}

func (f *fakeObservationTypeRepo) Update(_ context.Context, _ observationtype.UpdateObservationTypeRequest) error {
	return nil
}

func (f *fakeObservationTypeRepo) SoftDelete(_ context.Context, _ string) error { return nil }

type fakeRoleRepo struct {
	roles []role.Role
}

func (f *fakeRoleRepo) GetByID(_ context.Context, _ string) (role.Role, error) {
	return role.Role{}, role.ErrRoleNotFound
}

func (f *fakeRoleRepo) List(_ context.Context) ([]role.Role, error) {
	return f.roles, nil
}

// ==================== SETUP ====================

func newTestService() (MasterService, *fakeDepartmentRepo, *fakeRoleRepo) {
	departmentRepo := newFakeDepartmentRepo()
	roleRepo := &fakeRoleRepo{}
	svc := NewMasterService(departmentRepo, &fakeJobPositionRepo{}, &fakeObservationTypeRepo{}, roleRepo)
	return svc, departmentRepo, roleRepo
}

// ==================== TESTS ====================

func TestCreateDepartment(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	result, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{
		Name:        "Ventas",
		Description: "equipo comercial",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "Ventas", result.Name)
	assert.NotEmpty(t, result.CreatedAt)
}

func TestCreateDepartment_DuplicateName(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Ventas"})
	require.NoError(t, err)

	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Ventas"})

	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)
}

func TestCreateDepartment_RejectsEmptyName(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "   "})

	assert.Error(t, err)
}

func TestGetDepartment_DeletedReportsDeleted(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	created, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Ventas"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDepartment(ctx, created.ID))

	_, err = svc.GetDepartment(ctx, created.ID)
	assert.ErrorIs(t, err, department.ErrDepartmentDeleted)
}

func TestGetDepartment_Unknown(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.GetDepartment(ctx, "missing")

	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestDeletedDepartmentFreesItsName(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	created, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Ventas"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteDepartment(ctx, created.ID))

	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Ventas"})
	assert.NoError(t, err)
}

func TestListDepartments_ExcludesDeleted(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	first, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Ventas"})
	require.NoError(t, err)
	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Sistemas"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDepartment(ctx, first.ID))

	results, err := svc.ListDepartments(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Sistemas", results[0].Name)
}

func TestUpdateDepartment_RequiresID(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	err := svc.UpdateDepartment(ctx, department.UpdateDepartmentRequest{Name: "Ventas"})

	assert.Error(t, err)
}

func TestListRoles(t *testing.T) {
	ctx := context.Background()
	svc, _, roleRepo := newTestService()

	roleRepo.roles = []role.Role{
		{ID: "role-1", Name: "admin"},
		{ID: "role-2", Name: "employee"},
	}

	results, err := svc.ListRoles(ctx)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "role-1", results[0].ID)
	assert.Equal(t, "admin", results[0].Name)
}
