package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"artist-mgmt/internal/model"
	"artist-mgmt/internal/service"
	"artist-mgmt/pkg/apierror"
)

// maxImportSize bounds an uploaded CSV to 10 MiB.
const maxImportSize = 10 << 20

type ArtistHandler struct {
	service         *service.ArtistService
	defaultPageSize int
}

func NewArtistHandler(service *service.ArtistService, defaultPageSize int) *ArtistHandler {
	return &ArtistHandler{service: service, defaultPageSize: defaultPageSize}
}

func (h *ArtistHandler) List(w http.ResponseWriter, r *http.Request) {
	pageNo, pageSize := parsePage(r, h.defaultPageSize)

	resp, err := h.service.List(r.Context(), pageNo, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeEnvelope(w, resp)
}

func (h *ArtistHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.ArtistRequest
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

func (h *ArtistHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.ArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.Validation("invalid JSON body"))
		return
	}

	resp, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeEnvelope(w, resp)
}

func (h *ArtistHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *ArtistHandler) GetByID(w http.ResponseWriter, r *http.Request) {
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

// Export serves one page of artists as a CSV attachment. The CSV is
// buffered so a validation or database failure still gets a JSON error
// response instead of a truncated download.
func (h *ArtistHandler) Export(w http.ResponseWriter, r *http.Request) {
	pageNo, pageSize := parsePage(r, h.defaultPageSize)

	var buf bytes.Buffer
	if err := h.service.ExportCSV(r.Context(), pageNo, pageSize, &buf); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="artists.csv"`)
	_, _ = buf.WriteTo(w)
}

// Import accepts a multipart upload under the "file" field and persists
// the valid rows.
func (h *ArtistHandler) Import(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		writeError(w, apierror.Validation("invalid multipart upload"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, apierror.Validation("file field is required"))
		return
	}
	defer file.Close()

	resp, err := h.service.ImportCSV(r.Context(), file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeEnvelope(w, resp)
}
