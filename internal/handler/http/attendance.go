package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/sigea-hr/attendance-backend-go/internal/handler/http/response"
	attendanceservice "github.com/sigea-hr/attendance-backend-go/internal/service/attendance"
	"github.com/sigea-hr/attendance-backend-go/internal/service/report"
)

const workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendanceservice.AttendanceService
	reportService     report.ReportService
}

func NewAttendanceHandler(attendanceService attendanceservice.AttendanceService, reportService report.ReportService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, page, limit := parseAttendanceFilter(r)

	results, total, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Paginated(w, results, page, limit, total)
}

func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.attendanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req attendance.GenerateAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.GenerateByDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance records generated", result)
}

func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.attendanceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated successfully", result)
}

// Export streams the filtered list as a workbook. The same filters as List
// apply; pagination does not, the report carries every matching record.
func (h *attendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	filter, _, _ := parseAttendanceFilter(r)
	filter.Page = 1
	filter.Limit = exportLimit

	results, _, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	label := "general"
	if filter.Date != nil {
		label = *filter.Date
	}

	buf, filename, err := h.reportService.BuildAttendanceReport(results, label)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	writeWorkbook(w, buf, filename)
}

// exportLimit bounds a report to something a spreadsheet can take.
const exportLimit = 10000

func parseAttendanceFilter(r *http.Request) (attendance.ListFilter, int, int) {
	page, limit := parsePagination(r)

	filter := attendance.ListFilter{
		DNI:          optionalParam(r, "dni"),
		Date:         optionalParam(r, "date"),
		DepartmentID: optionalParam(r, "department"),
		SortAsc:      r.URL.Query().Get("sort") == "asc",
		Page:         page,
		Limit:        limit,
	}

	return filter, page, limit
}

func writeWorkbook(w http.ResponseWriter, buf *bytes.Buffer, filename string) {
	w.Header().Set("Content-Type", workbookContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
