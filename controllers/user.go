package controllers

import (
	"net/http"

	"github.com/stzanetis/BureaucracySimulator-BE/models"
	"github.com/stzanetis/BureaucracySimulator-BE/services"
	"github.com/stzanetis/BureaucracySimulator-BE/utils"
)

type createUserRequest struct {
	Nickname string `json:"nickname"`
	Seed     *int64 `json:"seed"`
}

type createdUser struct {
	models.User
	SessionToken string `json:"sessionToken"`
}

// CreateUserHandler handles POST /user/. It creates a user with a
// seed-deterministic to-do list and issues the session token follow-up
// requests may present.
func CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		utils.WriteError(w, appErr)
		return
	}
	if appErr := utils.ValidateUserPayload(req.Nickname, req.Seed); appErr != nil {
		utils.WriteError(w, appErr)
		return
	}

	user := services.CreateUserWithTasks(req.Nickname, *req.Seed)
	token, err := utils.GenerateSessionToken(user.ID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, createdUser{User: *user, SessionToken: token}, "User created and to-do list generated.")
}

// ListUsersHandler handles GET /user/, an inspection helper.
func ListUsersHandler(w http.ResponseWriter, _ *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, services.AllUsers(), "Users retrieved.")
}
