package services

import (
	"encoding/json"
	"math/rand"
	"strconv"

	"github.com/stzanetis/BureaucracySimulator-BE/config"
	"github.com/stzanetis/BureaucracySimulator-BE/models"
	"github.com/stzanetis/BureaucracySimulator-BE/utils"
)

// How many puzzles one serving of the puzzle task shows.
const puzzleServingSize = 2

// PuzzleDefinition picks puzzleServingSize puzzles from the catalog,
// tagged with 1-based display ids. Unlike task assignment this uses
// unseeded randomness, so servings are not reproducible.
func PuzzleDefinition() []models.PuzzleView {
	perm := rand.Perm(len(config.Puzzles))
	puzzles := make([]models.PuzzleView, puzzleServingSize)
	for i := 0; i < puzzleServingSize; i++ {
		puzzles[i] = models.PuzzleView{DisplayID: i + 1, Puzzle: config.Puzzles[perm[i]]}
	}
	return puzzles
}

// coerceString renders an answer value the way loosely typed clients
// expect: strings stay as-is, numbers and booleans take their canonical
// text form.
func coerceString(answer interface{}) string {
	switch v := answer.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return "null"
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// UpdatePuzzleTaskStatus checks a puzzle answer against the catalog and
// records the result on the user's task. Completion requires an exact,
// case-sensitive match with the correct answer. An unknown puzzleKey is
// a distinct not-found from an unknown task id.
func UpdatePuzzleTaskStatus(userID, taskID int, puzzleKey string, answer interface{}) (bool, error) {
	var puzzle *models.Puzzle
	for i := range config.Puzzles {
		if config.Puzzles[i].PuzzleKey == puzzleKey {
			puzzle = &config.Puzzles[i]
			break
		}
	}
	if puzzle == nil {
		return false, utils.PuzzleNotFoundError()
	}

	mu.Lock()
	defer mu.Unlock()
	user, err := activeUser(userID)
	if err != nil {
		return false, err
	}

	for i := range user.ToDoList {
		if user.ToDoList[i].ID == taskID {
			completed := coerceString(answer) == puzzle.CorrectAnswer
			user.ToDoList[i].Completed = completed
			return completed, nil
		}
	}
	return false, utils.NotFoundError("Task not found.")
}
