package controllers

import (
	"net/http"

	"github.com/stzanetis/BureaucracySimulator-BE/config"
	"github.com/stzanetis/BureaucracySimulator-BE/utils"
)

// StartscreenHandler handles GET /startscreen/.
func StartscreenHandler(w http.ResponseWriter, _ *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{"songlist": config.DefaultSonglist}, "Startscreen song list retrieved.")
}
