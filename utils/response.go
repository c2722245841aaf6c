package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// APIResponse is the envelope every endpoint writes. Error carries the
// machine-readable error code, or null on success.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Error   interface{} `json:"error"`
	Message string      `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteSuccess writes a success envelope with the given payload.
func WriteSuccess(w http.ResponseWriter, status int, data interface{}, message string) {
	WriteJSON(w, status, APIResponse{Success: true, Data: data, Error: nil, Message: message})
}

// WriteError maps an error to its envelope. AppErrors keep their status
// and code; anything else becomes a generic 500.
func WriteError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		WriteJSON(w, appErr.Status, APIResponse{Success: false, Data: nil, Error: appErr.Code, Message: appErr.Message})
		return
	}
	log.Printf("[error] unexpected: %v", err)
	WriteJSON(w, http.StatusInternalServerError, APIResponse{Success: false, Data: nil, Error: CodeInternal, Message: "Internal server error"})
}
