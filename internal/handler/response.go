// Package handler binds HTTP requests to domain service calls and
// serializes the response envelope. Status-code mapping lives here and
// nowhere else.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"artist-mgmt/internal/model"
	"artist-mgmt/pkg/apierror"
)

func writeEnvelope(w http.ResponseWriter, resp model.BaseResponse) {
	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Unexpected server error"

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.HTTPStatus
		message = apiErr.Message
	} else {
		slog.Error("unhandled error", "error", err.Error())
	}

	writeEnvelope(w, model.Failure(status, message))
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apierror.Validation("invalid " + name)
	}
	return id, nil
}

// parsePage reads pageNo/pageSize query params, substituting defaults
// for absent or non-numeric values. Out-of-range numeric values are
// passed through so the service can reject them.
func parsePage(r *http.Request, defaultPageSize int) (int, int) {
	pageNo := 0
	if raw := r.URL.Query().Get("pageNo"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			pageNo = v
		}
	}

	pageSize := defaultPageSize
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			pageSize = v
		}
	}

	return pageNo, pageSize
}
