package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/hr-backend-go/internal/handler/http/response"
	notificationservice "github.com/staffdesk/hr-backend-go/internal/service/notification"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notificationservice.NotificationService
}

func NewNotificationHandler(notificationService notificationservice.NotificationService) NotificationHandler {
	return &notificationHandlerImpl{
		notificationService: notificationService,
	}
}

// List implements NotificationHandler.
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page := 0
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum >= 0 {
			page = pageNum
		}
	}

	rowsPerPage := 10
	if l := r.URL.Query().Get("rows_per_page"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			rowsPerPage = limitNum
		}
	}

	notifications, total, err := h.notificationService.ListMine(r.Context(), page, rowsPerPage)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeListResponse(w, notifications, page, rowsPerPage, total)
}

// MarkRead implements NotificationHandler.
func (h *notificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.notificationService.MarkRead(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}

func writeListResponse(w http.ResponseWriter, data interface{}, page, limit int, total int64) {
	response.SuccessWithMeta(w, data, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
	})
}
