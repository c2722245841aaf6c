package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stzanetis/BureaucracySimulator-BE/services"
	"github.com/stzanetis/BureaucracySimulator-BE/utils"
)

// GetLeaderboardHandler handles GET /leaderboard/.
func GetLeaderboardHandler(w http.ResponseWriter, _ *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, services.Leaderboard(), "Leaderboard retrieved.")
}

// PutLeaderboardEntryHandler handles PUT /leaderboard/{name}.
func PutLeaderboardEntryHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Score *float64 `json:"score"`
	}
	if appErr := decodeJSON(r, &req); appErr != nil {
		utils.WriteError(w, appErr)
		return
	}
	if req.Score == nil {
		utils.WriteError(w, utils.ValidationError("Score must be numeric."))
		return
	}

	entry, err := services.UpsertLeaderboardEntry(mux.Vars(r)["name"], *req.Score)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, entry, "Leaderboard entry saved.")
}

// DeleteLeaderboardEntryHandler handles DELETE /leaderboard/{name}.
func DeleteLeaderboardEntryHandler(w http.ResponseWriter, r *http.Request) {
	if err := services.DeleteLeaderboardEntry(mux.Vars(r)["name"]); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
