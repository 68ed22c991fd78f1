package response

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
)

// Error responses across the API use a single human-readable msg field.
type MessageBody struct {
	Msg string `json:"msg"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Message(w http.ResponseWriter, statusCode int, msg string) {
	JSON(w, statusCode, MessageBody{Msg: msg})
}

// ValidationError flattens per-field messages into one msg body,
// ordered by field name so the output is stable.
func ValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fieldErrors[field])
	}

	Message(w, http.StatusBadRequest, strings.Join(msgs, "; "))
}

func BadRequest(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "bad request"
	}
	Message(w, http.StatusBadRequest, msg)
}

func Unauthorized(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "unauthorized"
	}
	Message(w, http.StatusUnauthorized, msg)
}

func Forbidden(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "forbidden"
	}
	Message(w, http.StatusForbidden, msg)
}

func TooManyRequests(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "too many requests"
	}
	Message(w, http.StatusTooManyRequests, msg)
}

func InternalServerError(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "internal server error"
	}
	Message(w, http.StatusInternalServerError, msg)
}
