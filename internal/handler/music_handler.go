package handler

import (
	"encoding/json"
	"net/http"

	"artist-mgmt/internal/model"
	"artist-mgmt/internal/service"
	"artist-mgmt/pkg/apierror"
)

type MusicHandler struct {
	service         *service.MusicService
	defaultPageSize int
}

func NewMusicHandler(service *service.MusicService, defaultPageSize int) *MusicHandler {
	return &MusicHandler{service: service, defaultPageSize: defaultPageSize}
}

func (h *MusicHandler) ListByArtist(w http.ResponseWriter, r *http.Request) {
	artistID, err := parseIDParam(r, "artistId")
	if err != nil {
		writeError(w, err)
		return
	}

	pageNo, pageSize := parsePage(r, h.defaultPageSize)

	resp, err := h.service.ListByArtist(r.Context(), artistID, pageNo, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeEnvelope(w, resp)
}

func (h *MusicHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	artistID, err := parseIDParam(r, "artistId")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.MusicRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.Validation("invalid JSON body"))
		return
	}

	resp, err := h.service.CreateForArtist(r.Context(), artistID, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeEnvelope(w, resp)
}

func (h *MusicHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	artistID, err := parseIDParam(r, "artistId")
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.MusicRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.Validation("invalid JSON body"))
		return
	}

	resp, err := h.service.UpdateForArtist(r.Context(), artistID, id, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeEnvelope(w, resp)
}

func (h *MusicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	artistID, err := parseIDParam(r, "artistId")
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.service.DeleteForArtist(r.Context(), artistID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeEnvelope(w, resp)
}
