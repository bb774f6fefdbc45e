// Package httputil holds the JSON envelope shared by every API handler.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
)

const contentTypeJSON = "application/json"

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func NewErrorResponse(statusCode int, message string, details error) ErrorResponse {
	resp := ErrorResponse{Code: statusCode, Message: message}
	if details != nil {
		resp.Details = details.Error()
	}
	return resp
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	WriteJSONResponse(w, statusCode, NewErrorResponse(statusCode, message, details))
}

// WriteJSONResponse marshals body before touching w, so a body sonic can't
// encode turns into a 500 instead of a truncated 2xx. Nil writes headers only.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	if body == nil {
		w.WriteHeader(statusCode)
		return
	}
	data, err := sonic.Marshal(body)
	if err != nil {
		slog.Error("encoding response error", slog.Int("status", statusCode), slog.String("error", err.Error()))
		statusCode = http.StatusInternalServerError
		data, _ = sonic.Marshal(NewErrorResponse(statusCode, "can't encode response", nil))
	}
	w.WriteHeader(statusCode)
	if _, err = w.Write(append(data, '\n')); err != nil {
		slog.Debug("writing response error", slog.String("error", err.Error()))
	}
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
