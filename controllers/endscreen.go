package controllers

import (
	"net/http"

	"github.com/stzanetis/BureaucracySimulator-BE/services"
	"github.com/stzanetis/BureaucracySimulator-BE/utils"
)

// Mock elapsed time for the parameterless GET, roughly mid-percentile
// against the default leaderboard.
const mockElapsedTime = 145

// GetEndscreenStatsHandler handles GET /endscreen/.
func GetEndscreenStatsHandler(w http.ResponseWriter, _ *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, services.EndscreenStats(mockElapsedTime), "Endscreen stats retrieved.")
}

// PostEndscreenStatsHandler handles POST /endscreen/. The elapsed time is
// recorded on the leaderboard under ?nickname= (default "Anonymous") and
// the percentile is computed against scores present before the insert.
func PostEndscreenStatsHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ElapsedTime *float64 `json:"elapsedTime"`
	}
	if appErr := decodeJSON(r, &req); appErr != nil {
		utils.WriteError(w, appErr)
		return
	}
	if appErr := utils.ValidateElapsedTimePayload(req.ElapsedTime); appErr != nil {
		utils.WriteError(w, appErr)
		return
	}

	nickname := r.URL.Query().Get("nickname")
	if nickname == "" {
		nickname = "Anonymous"
	}

	stats := services.EndscreenStats(*req.ElapsedTime)
	if _, err := services.UpsertLeaderboardEntry(nickname, *req.ElapsedTime); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, stats, "Endscreen stats submitted.")
}
