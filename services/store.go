// Package services implements the game logic: deterministic to-do list
// assignment, per-task-type completion checks, the coffee payment flag
// and the leaderboard. State is process-wide and in-memory by design;
// a mutex keeps read-modify-write sequences atomic under concurrent
// requests.
package services

import (
	"sync"

	"github.com/stzanetis/BureaucracySimulator-BE/config"
	"github.com/stzanetis/BureaucracySimulator-BE/models"
	"github.com/stzanetis/BureaucracySimulator-BE/utils"
)

var (
	mu                    sync.Mutex
	users                 []*models.User
	leaderboard           []models.LeaderboardEntry
	coffeePaymentAccepted bool
)

func init() {
	Reset()
}

// Reset restores the initial in-memory state: no users, the default
// leaderboard rows, coffee unpaid. Used at startup and by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	users = nil
	leaderboard = make([]models.LeaderboardEntry, len(config.DefaultLeaderboard))
	copy(leaderboard, config.DefaultLeaderboard)
	coffeePaymentAccepted = false
}

// activeUser resolves the player a request acts on. A positive id comes
// from a session token; zero falls back to the most recently created
// user, which is the only resolution rule token-less clients get.
// Callers must hold mu.
func activeUser(userID int) (*models.User, error) {
	if userID > 0 {
		for _, u := range users {
			if u.ID == userID {
				return u, nil
			}
		}
		return nil, utils.NoActiveUserError()
	}
	if len(users) == 0 {
		return nil, utils.NoActiveUserError()
	}
	return users[len(users)-1], nil
}
