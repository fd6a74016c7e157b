package handler

import (
	"encoding/json"
	"net/http"

	"artist-mgmt/internal/middleware"
	"artist-mgmt/internal/model"
	"artist-mgmt/internal/service"
	"artist-mgmt/pkg/apierror"
)

type UserHandler struct {
	service         *service.UserService
	defaultPageSize int
}

func NewUserHandler(service *service.UserService, defaultPageSize int) *UserHandler {
	return &UserHandler{service: service, defaultPageSize: defaultPageSize}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	pageNo, pageSize := parsePage(r, h.defaultPageSize)

	resp, err := h.service.List(r.Context(), pageNo, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeEnvelope(w, resp)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.Validation("invalid JSON body"))
		return
	}

	resp, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeEnvelope(w, resp)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.Validation("invalid JSON body"))
		return
	}

	actor, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("authentication required"))
		return
	}

	resp, err := h.service.Update(r.Context(), actor, id, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeEnvelope(w, resp)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.service.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeEnvelope(w, resp)
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeEnvelope(w, resp)
}
