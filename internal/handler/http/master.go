package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/department"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/jobposition"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/observationtype"
	"github.com/sigea-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/sigea-hr/attendance-backend-go/internal/service/master"
)

type MasterHandler interface {
	// Department handlers
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	// Job position handlers
	CreateJobPosition(w http.ResponseWriter, r *http.Request)
	GetJobPosition(w http.ResponseWriter, r *http.Request)
	ListJobPositions(w http.ResponseWriter, r *http.Request)
	UpdateJobPosition(w http.ResponseWriter, r *http.Request)
	DeleteJobPosition(w http.ResponseWriter, r *http.Request)

	// Observation type handlers
	CreateObservationType(w http.ResponseWriter, r *http.Request)
	GetObservationType(w http.ResponseWriter, r *http.Request)
	ListObservationTypes(w http.ResponseWriter, r *http.Request)
	UpdateObservationType(w http.ResponseWriter, r *http.Request)
	DeleteObservationType(w http.ResponseWriter, r *http.Request)

	// Role handlers
	ListRoles(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== DEPARTMENT HANDLERS ====================

func (h *masterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", result)
}

func (h *masterHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetDepartment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListDepartments returns either the full list or a page, depending on
// whether pagination params are present. The select widgets want everything;
// the admin table paginates.
func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("page") == "" {
		results, err := h.masterService.ListDepartments(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, results)
		return
	}

	page, limit := parsePagination(r)
	results, total, err := h.masterService.ListDepartmentsPaginated(r.Context(), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Paginated(w, results, page, limit, total)
}

func (h *masterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.masterService.UpdateDepartment(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated successfully", nil)
}

func (h *masterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteDepartment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

// ==================== JOB POSITION HANDLERS ====================

func (h *masterHandlerImpl) CreateJobPosition(w http.ResponseWriter, r *http.Request) {
	var req jobposition.CreateJobPositionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateJobPosition(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job position created successfully", result)
}

func (h *masterHandlerImpl) GetJobPosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetJobPosition(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListJobPositions(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("page") == "" {
		results, err := h.masterService.ListJobPositions(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, results)
		return
	}

	page, limit := parsePagination(r)
	results, total, err := h.masterService.ListJobPositionsPaginated(r.Context(), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Paginated(w, results, page, limit, total)
}

func (h *masterHandlerImpl) UpdateJobPosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req jobposition.UpdateJobPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.masterService.UpdateJobPosition(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job position updated successfully", nil)
}

func (h *masterHandlerImpl) DeleteJobPosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteJobPosition(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job position deleted successfully", nil)
}

// ==================== OBSERVATION TYPE HANDLERS ====================

func (h *masterHandlerImpl) CreateObservationType(w http.ResponseWriter, r *http.Request) {
	var req observationtype.CreateObservationTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateObservationType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Observation type created successfully", result)
}

func (h *masterHandlerImpl) GetObservationType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetObservationType(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListObservationTypes(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("page") == "" {
		results, err := h.masterService.ListObservationTypes(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, results)
		return
	}

	page, limit := parsePagination(r)
	results, total, err := h.masterService.ListObservationTypesPaginated(r.Context(), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Paginated(w, results, page, limit, total)
}

func (h *masterHandlerImpl) UpdateObservationType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req observationtype.UpdateObservationTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.masterService.UpdateObservationType(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Observation type updated successfully", nil)
}

func (h *masterHandlerImpl) DeleteObservationType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteObservationType(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Observation type deleted successfully", nil)
}

// ==================== ROLE HANDLERS ====================

func (h *masterHandlerImpl) ListRoles(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListRoles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
