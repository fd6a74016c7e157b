package model

import (
	"math"
	"time"
)

// BaseResponse is the envelope every domain service call returns. The
// HTTP layer serializes it verbatim.
type BaseResponse struct {
	Success      bool           `json:"success"`
	StatusCode   int            `json:"statusCode"`
	Message      string         `json:"message"`
	Timestamp    string         `json:"timestamp"`
	Error        bool           `json:"error"`
	DataResponse any            `json:"dataResponse,omitempty"`
	Meta         map[string]any `json:"meta,omitempty"`
}

func OK(data any) BaseResponse {
	return BaseResponse{
		Success:      true,
		StatusCode:   200,
		Message:      "Request was successful",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		DataResponse: data,
	}
}

func OKWithMessage(data any, message string) BaseResponse {
	resp := OK(data)
	resp.Message = message
	return resp
}

// Paginated wraps a page of results with its metadata map: totalCount,
// totalPages (ceiling division), currentPage and pageSize echo the
// effective request values.
func Paginated(data any, pageNo, pageSize int, totalCount int64, message string) BaseResponse {
	resp := OKWithMessage(data, message)
	resp.Meta = map[string]any{
		"totalCount":  totalCount,
		"totalPages":  TotalPages(totalCount, pageSize),
		"currentPage": pageNo,
		"pageSize":    pageSize,
	}
	return resp
}

func TotalPages(totalCount int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(pageSize)))
}

func Failure(statusCode int, message string) BaseResponse {
	return BaseResponse{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Error:      true,
	}
}
