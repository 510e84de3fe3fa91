package response

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

// RenderInvalidRequest is used when a body or path can not be decoded at all.
// Field level problems go through Render with the validation errors.
func RenderInvalidRequest(rw http.ResponseWriter) {
	RenderError(rw, "invalid request data", http.StatusBadRequest)
}

func RenderNotFound(rw http.ResponseWriter, err error) {
	RenderError(rw, err.Error(), http.StatusNotFound)
}

func RenderConflict(rw http.ResponseWriter, err error) {
	RenderError(rw, err.Error(), http.StatusConflict)
}

func RenderUnprocessable(rw http.ResponseWriter, err error) {
	RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter) {
	RenderError(rw, "too many reminders added, try again later", http.StatusTooManyRequests)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func Render(rw http.ResponseWriter, res any, status int) {
	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	rw.Write(content)
}
