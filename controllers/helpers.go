// Package controllers holds the HTTP handlers. Handlers decode and
// validate the request, delegate to services and write the response
// envelope; they carry no game logic of their own.
package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/stzanetis/BureaucracySimulator-BE/utils"
)

func decodeJSON(r *http.Request, dst interface{}) *utils.AppError {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return utils.ValidationError("Invalid JSON body.")
	}
	return nil
}

// taskIDFromRequest parses the taskID path variable. A non-numeric id
// can never resolve, so it reports not-found rather than a parse error.
func taskIDFromRequest(r *http.Request) (int, *utils.AppError) {
	id, err := strconv.Atoi(mux.Vars(r)["taskID"])
	if err != nil {
		return 0, utils.NotFoundError("Task not found.")
	}
	return id, nil
}
