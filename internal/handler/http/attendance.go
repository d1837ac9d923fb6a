package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/hr-backend-go/internal/domain/attendance"
	"github.com/staffdesk/hr-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	GetEmployeeAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Upload implements AttendanceHandler.
func (h *attendanceHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, _, err := r.FormFile("attendance")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Attendance export file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	report, err := h.attendanceService.ImportPunchExport(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance uploaded", report)
}

// GetEmployeeAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	req := attendance.FetchAttendanceRequest{
		EmployeeID: chi.URLParam(r, "id"),
	}

	page, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil {
		response.BadRequest(w, "Page must be a number", nil)
		return
	}
	req.Page = page

	rowsPerPage, err := strconv.Atoi(chi.URLParam(r, "rowsPerPage"))
	if err != nil {
		response.BadRequest(w, "Rows per page must be a number", nil)
		return
	}
	req.RowsPerPage = rowsPerPage

	result, err := h.attendanceService.GetEmployeeAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
