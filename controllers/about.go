package controllers

import (
	"net/http"

	"github.com/stzanetis/BureaucracySimulator-BE/config"
	"github.com/stzanetis/BureaucracySimulator-BE/utils"
)

// AboutUsHandler handles GET /about-us/.
func AboutUsHandler(w http.ResponseWriter, _ *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{"aboutUs": config.AboutUsText}, "About us retrieved.")
}
