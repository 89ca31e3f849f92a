package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/employee"
	"github.com/sigea-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/sigea-hr/attendance-backend-go/internal/pkg/validator"
	employeeservice "github.com/sigea-hr/attendance-backend-go/internal/service/employee"
	"github.com/sigea-hr/attendance-backend-go/internal/service/report"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetAttendanceRange(w http.ResponseWriter, r *http.Request)
	ExportAttendanceRange(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employeeservice.EmployeeService
	reportService   report.ReportService
}

func NewEmployeeHandler(employeeService employeeservice.EmployeeService, reportService report.ReportService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		reportService:   reportService,
	}
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	filter := employee.Filter{
		DepartmentID: optionalParam(r, "department"),
		Search:       optionalParam(r, "search"),
		Page:         page,
		Limit:        limit,
	}

	results, total, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Paginated(w, results, page, limit, total)
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeService.UpdateEmployee(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", nil)
}

func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

func (h *employeeHandlerImpl) GetAttendanceRange(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	fromDate, toDate, err := parseDateRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	results, err := h.employeeService.GetAttendanceRange(r.Context(), id, fromDate, toDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *employeeHandlerImpl) ExportAttendanceRange(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	fromDate, toDate, err := parseDateRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	results, err := h.employeeService.GetAttendanceRange(r.Context(), id, fromDate, toDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	buf, filename, err := h.reportService.BuildEmployeeAttendanceReport(results, fromDate, toDate)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	writeWorkbook(w, buf, filename)
}

func parseDateRange(r *http.Request) (fromDate, toDate string, err error) {
	fromDate = r.URL.Query().Get("from")
	toDate = r.URL.Query().Get("to")

	if _, ok := validator.IsValidDate(fromDate); !ok {
		return "", "", fmt.Errorf("from must be yyyy-MM-dd")
	}
	if _, ok := validator.IsValidDate(toDate); !ok {
		return "", "", fmt.Errorf("to must be yyyy-MM-dd")
	}
	if toDate < fromDate {
		return "", "", fmt.Errorf("to must not be before from")
	}

	return fromDate, toDate, nil
}
