package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/stzanetis/BureaucracySimulator-BE/utils"
)

func writeAuthError(w http.ResponseWriter, appErr *utils.AppError) {
	utils.WriteJSON(w, appErr.Status, utils.APIResponse{Success: false, Data: nil, Error: appErr.Code, Message: appErr.Message})
}

// BasicAuthMiddleware protects the API with HTTP Basic Authentication.
// Expected credentials come from BASIC_AUTH_USER plus either
// BASIC_AUTH_PASS_HASH (bcrypt) or BASIC_AUTH_PASS (compared in
// constant time).
func BasicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			writeAuthError(w, utils.NewAppError("Missing Authorization header.", http.StatusUnauthorized, utils.CodeAuthRequired))
			return
		}

		expectedUser := os.Getenv("BASIC_AUTH_USER")
		expectedPass := os.Getenv("BASIC_AUTH_PASS")
		passHash := os.Getenv("BASIC_AUTH_PASS_HASH")
		if expectedUser == "" || (expectedPass == "" && passHash == "") {
			writeAuthError(w, utils.NewAppError("Server misconfiguration: basic auth credentials not set.", http.StatusInternalServerError, utils.CodeAuthConfig))
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(expectedUser)) == 1
		passOK := false
		if passHash != "" {
			passOK = bcrypt.CompareHashAndPassword([]byte(passHash), []byte(password)) == nil
		} else {
			passOK = subtle.ConstantTimeCompare([]byte(password), []byte(expectedPass)) == 1
		}

		if !userOK || !passOK {
			writeAuthError(w, utils.NewAppError("Invalid credentials.", http.StatusUnauthorized, utils.CodeAuthInvalid))
			return
		}

		next.ServeHTTP(w, r)
	})
}
