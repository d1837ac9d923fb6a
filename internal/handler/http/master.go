package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/hr-backend-go/internal/handler/http/response"
	masterservice "github.com/staffdesk/hr-backend-go/internal/service/master"
)

type MasterHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService masterservice.MasterService
}

func NewMasterHandler(masterService masterservice.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ListDepartments implements MasterHandler.
func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDepartment implements MasterHandler.
func (h *masterHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetDepartment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
