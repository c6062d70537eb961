package utils

import (
	"encoding/json"
	"net/http"
	"strings"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// ResponseJSON writes payload as JSON with the given status code. A nil
// payload is encoded as the JSON literal null.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusOK, payload)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message, detail string) {
	ResponseJSON(w, http.StatusBadRequest, ErrorResponse{Error: message, Detail: detail})
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message, detail string) {
	ResponseJSON(w, http.StatusConflict, ErrorResponse{Error: message, Detail: detail})
}

// returns 405 Method Not Allowed with the Allow header set
func ResponseMethodNotAllowed(w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	ResponseJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method Not Allowed"})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message, detail string) {
	ResponseJSON(w, http.StatusInternalServerError, ErrorResponse{Error: message, Detail: detail})
}
