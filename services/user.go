package services

import (
	"strings"

	"github.com/stzanetis/BureaucracySimulator-BE/config"
	"github.com/stzanetis/BureaucracySimulator-BE/models"
	"github.com/stzanetis/BureaucracySimulator-BE/utils"
)

// Each user gets this many tasks from the template catalog.
const toDoListSize = 4

// CreateUserWithTasks creates a user whose to-do list is a seeded
// Fisher-Yates shuffle of the template catalog, truncated to
// toDoListSize. The same seed always produces the same list, which the
// game relies on for shareable runs. Nicknames are not deduplicated.
func CreateUserWithTasks(nickname string, seed int64) *models.User {
	rng := utils.NewSeededRNG(seed)

	shuffled := make([]models.Task, len(config.TaskTemplates))
	copy(shuffled, config.TaskTemplates)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	toDoList := make([]models.Task, toDoListSize)
	for i, t := range shuffled[:toDoListSize] {
		t.Completed = false
		toDoList[i] = t
	}

	mu.Lock()
	defer mu.Unlock()
	user := &models.User{
		ID:       len(users) + 1,
		Nickname: strings.TrimSpace(nickname),
		Seed:     seed,
		ToDoList: toDoList,
	}
	users = append(users, user)
	return user
}

// AllUsers returns every user created in this process, in creation order.
func AllUsers() []models.User {
	mu.Lock()
	defer mu.Unlock()
	out := make([]models.User, len(users))
	for i, u := range users {
		out[i] = *u
	}
	return out
}
