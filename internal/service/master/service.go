package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/department"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/jobposition"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/observationtype"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/role"
)

// displayTimeLayout renders timestamps the way the web client shows them.
const displayTimeLayout = "02/01/2006 15:04"

type MasterService interface {
	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	ListDepartmentsPaginated(ctx context.Context, page, limit int) ([]department.DepartmentResponse, int64, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, id string) error

	// Job position operations
	CreateJobPosition(ctx context.Context, req jobposition.CreateJobPositionRequest) (jobposition.JobPositionResponse, error)
	GetJobPosition(ctx context.Context, id string) (jobposition.JobPositionResponse, error)
	ListJobPositions(ctx context.Context) ([]jobposition.JobPositionResponse, error)
	ListJobPositionsPaginated(ctx context.Context, page, limit int) ([]jobposition.JobPositionResponse, int64, error)
	UpdateJobPosition(ctx context.Context, req jobposition.UpdateJobPositionRequest) error
	DeleteJobPosition(ctx context.Context, id string) error

	// Observation type operations
	CreateObservationType(ctx context.Context, req observationtype.CreateObservationTypeRequest) (observationtype.ObservationTypeResponse, error)
	GetObservationType(ctx context.Context, id string) (observationtype.ObservationTypeResponse, error)
	ListObservationTypes(ctx context.Context) ([]observationtype.ObservationTypeResponse, error)
	ListObservationTypesPaginated(ctx context.Context, page, limit int) ([]observationtype.ObservationTypeResponse, int64, error)
	UpdateObservationType(ctx context.Context, req observationtype.UpdateObservationTypeRequest) error
	DeleteObservationType(ctx context.Context, id string) error

	// Role operations
	ListRoles(ctx context.Context) ([]role.RoleResponse, error)
}

type masterServiceImpl struct {
	departmentRepo      department.DepartmentRepository
	jobPositionRepo     jobposition.JobPositionRepository
	observationTypeRepo observationtype.ObservationTypeRepository
	roleRepo            role.RoleRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	jobPositionRepo jobposition.JobPositionRepository,
	observationTypeRepo observationtype.ObservationTypeRepository,
	roleRepo role.RoleRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo:      departmentRepo,
		jobPositionRepo:     jobPositionRepo,
		observationTypeRepo: observationTypeRepo,
		roleRepo:            roleRepo,
	}
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	entity := department.Department{
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := s.departmentRepo.Create(ctx, entity)
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNameExists) {
			return department.DepartmentResponse{}, err
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return toDepartmentResponse(created), nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	entity, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	// The repository returns soft-deleted departments so we can report
	// "deleted" rather than "not found".
	if entity.DeletedAt != nil {
		return department.DepartmentResponse{}, department.ErrDepartmentDeleted
	}

	return toDepartmentResponse(entity), nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := []department.DepartmentResponse{}
	for _, d := range departments {
		responses = append(responses, toDepartmentResponse(d))
	}

	return responses, nil
}

func (s *masterServiceImpl) ListDepartmentsPaginated(ctx context.Context, page, limit int) ([]department.DepartmentResponse, int64, error) {
	departments, total, err := s.departmentRepo.ListPaginated(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := []department.DepartmentResponse{}
	for _, d := range departments {
		responses = append(responses, toDepartmentResponse(d))
	}

	return responses, total, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.departmentRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepo.SoftDelete(ctx, id)
}

func toDepartmentResponse(d department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt.Format(displayTimeLayout),
	}
}

// ==================== JOB POSITION OPERATIONS ====================

func (s *masterServiceImpl) CreateJobPosition(ctx context.Context, req jobposition.CreateJobPositionRequest) (jobposition.JobPositionResponse, error) {
	if err := req.Validate(); err != nil {
		return jobposition.JobPositionResponse{}, err
	}

	entity := jobposition.JobPosition{
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := s.jobPositionRepo.Create(ctx, entity)
	if err != nil {
		if errors.Is(err, jobposition.ErrJobPositionNameExists) {
			return jobposition.JobPositionResponse{}, err
		}
		return jobposition.JobPositionResponse{}, fmt.Errorf("failed to create job position: %w", err)
	}

	return toJobPositionResponse(created), nil
}

func (s *masterServiceImpl) GetJobPosition(ctx context.Context, id string) (jobposition.JobPositionResponse, error) {
	entity, err := s.jobPositionRepo.GetByID(ctx, id)
	if err != nil {
		return jobposition.JobPositionResponse{}, err
	}

	return toJobPositionResponse(entity), nil
}

func (s *masterServiceImpl) ListJobPositions(ctx context.Context) ([]jobposition.JobPositionResponse, error) {
	positions, err := s.jobPositionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := []jobposition.JobPositionResponse{}
	for _, jp := range positions {
		responses = append(responses, toJobPositionResponse(jp))
	}

	return responses, nil
}

func (s *masterServiceImpl) ListJobPositionsPaginated(ctx context.Context, page, limit int) ([]jobposition.JobPositionResponse, int64, error) {
	positions, total, err := s.jobPositionRepo.ListPaginated(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := []jobposition.JobPositionResponse{}
	for _, jp := range positions {
		responses = append(responses, toJobPositionResponse(jp))
	}

	return responses, total, nil
}

func (s *masterServiceImpl) UpdateJobPosition(ctx context.Context, req jobposition.UpdateJobPositionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.jobPositionRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteJobPosition(ctx context.Context, id string) error {
	return s.jobPositionRepo.SoftDelete(ctx, id)
}

func toJobPositionResponse(jp jobposition.JobPosition) jobposition.JobPositionResponse {
	return jobposition.JobPositionResponse{
		ID:          jp.ID,
		Name:        jp.Name,
		Description: jp.Description,
		CreatedAt:   jp.CreatedAt.Format(displayTimeLayout),
	}
}

// ==================== OBSERVATION TYPE OPERATIONS ====================

func (s *masterServiceImpl) CreateObservationType(ctx context.Context, req observationtype.CreateObservationTypeRequest) (observationtype.ObservationTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return observationtype.ObservationTypeResponse{}, err
	}

	entity := observationtype.ObservationType{
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := s.observationTypeRepo.Create(ctx, entity)
	if err != nil {
		if errors.Is(err, observationtype.ErrObservationTypeNameExists) {
			return observationtype.ObservationTypeResponse{}, err
		}
		return observationtype.ObservationTypeResponse{}, fmt.Errorf("failed to create observation type: %w", err)
	}

	return toObservationTypeResponse(created), nil
}

func (s *masterServiceImpl) GetObservationType(ctx context.Context, id string) (observationtype.ObservationTypeResponse, error) {
	entity, err := s.observationTypeRepo.GetByID(ctx, id)
	if err != nil {
		return observationtype.ObservationTypeResponse{}, err
	}

	return toObservationTypeResponse(entity), nil
}

func (s *masterServiceImpl) ListObservationTypes(ctx context.Context) ([]observationtype.ObservationTypeResponse, error) {
	types, err := s.observationTypeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := []observationtype.ObservationTypeResponse{}
	for _, ot := range types {
		responses = append(responses, toObservationTypeResponse(ot))
	}

	return responses, nil
}

func (s *masterServiceImpl) ListObservationTypesPaginated(ctx context.Context, page, limit int) ([]observationtype.ObservationTypeResponse, int64, error) {
	types, total, err := s.observationTypeRepo.ListPaginated(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := []observationtype.ObservationTypeResponse{}
	for _, ot := range types {
		responses = append(responses, toObservationTypeResponse(ot))
	}

	return responses, total, nil
}

func (s *masterServiceImpl) UpdateObservationType(ctx context.Context, req observationtype.UpdateObservationTypeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.observationTypeRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteObservationType(ctx context.Context, id string) error {
	return s.observationTypeRepo.SoftDelete(ctx, id)
}

func toObservationTypeResponse(ot observationtype.ObservationType) observationtype.ObservationTypeResponse {
	return observationtype.ObservationTypeResponse{
		ID:          ot.ID,
		Name:        ot.Name,
		Description: ot.Description,
		CreatedAt:   ot.CreatedAt.Format(displayTimeLayout),
	}
}

// ==================== ROLE OPERATIONS ====================

func (s *masterServiceImpl) ListRoles(ctx context.Context) ([]role.RoleResponse, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := []role.RoleResponse{}
	for _, rl := range roles {
		responses = append(responses, role.RoleResponse{ID: rl.ID, Name: rl.Name})
	}

	return responses, nil
}
