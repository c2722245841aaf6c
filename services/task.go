package services

import (
	"bytes"
	"encoding/json"
	"math/rand"

	"github.com/stzanetis/BureaucracySimulator-BE/config"
	"github.com/stzanetis/BureaucracySimulator-BE/models"
	"github.com/stzanetis/BureaucracySimulator-BE/utils"
)

// CurrentToDoList returns a copy of the resolved user's task list.
func CurrentToDoList(userID int) ([]models.Task, error) {
	mu.Lock()
	defer mu.Unlock()
	user, err := activeUser(userID)
	if err != nil {
		return nil, err
	}
	list := make([]models.Task, len(user.ToDoList))
	copy(list, user.ToDoList)
	return list, nil
}

// TaskByID looks a task up in the resolved user's list first, falling
// back to the template catalog so unassigned tasks can still be
// previewed. CAPTCHA tasks carry a randomly chosen challenge; the pick
// is not persisted and changes on every read.
func TaskByID(userID, taskID int) (models.Task, error) {
	mu.Lock()
	defer mu.Unlock()
	user, err := activeUser(userID)
	if err != nil {
		return models.Task{}, err
	}

	var task models.Task
	found := false
	for _, t := range user.ToDoList {
		if t.ID == taskID {
			task = t
			found = true
			break
		}
	}
	if !found {
		for _, t := range config.TaskTemplates {
			if t.ID == taskID {
				task = t
				found = true
				break
			}
		}
	}
	if !found {
		return models.Task{}, utils.NotFoundError("Task not found.")
	}

	if task.TaskType == models.TaskTypeCaptcha {
		challenge := config.Captchas[rand.Intn(len(config.Captchas))]
		task.Captcha = &challenge
	}
	return task, nil
}

// serializedLength measures the compacted JSON form of the user input.
// This feeds the deliberately arbitrary completion rule below.
func serializedLength(userInput json.RawMessage) int {
	var buf bytes.Buffer
	if err := json.Compact(&buf, userInput); err != nil {
		return len(bytes.TrimSpace(userInput))
	}
	return buf.Len()
}

// evaluateUserInput applies the completion rule to a task in the
// resolved user's list: the task is complete if and only if the
// serialized input length is even. The rule is satire, not a bug; it is
// deterministic and must stay exactly this.
func evaluateUserInput(userID, taskID int, userInput json.RawMessage) (bool, error) {
	mu.Lock()
	defer mu.Unlock()
	user, err := activeUser(userID)
	if err != nil {
		return false, err
	}

	for i := range user.ToDoList {
		if user.ToDoList[i].ID == taskID {
			completed := serializedLength(userInput)%2 == 0
			user.ToDoList[i].Completed = completed
			return completed, nil
		}
	}
	return false, utils.NotFoundError("Task not found.")
}

// UpdateTaskStatus runs the generic completion check for a task.
func UpdateTaskStatus(userID, taskID int, userInput json.RawMessage) (bool, error) {
	return evaluateUserInput(userID, taskID, userInput)
}

// UpdateFormTaskStatus runs the completion check for a form task. Same
// rule as the generic check, applied to the form payload.
func UpdateFormTaskStatus(userID, taskID int, userInput json.RawMessage) (bool, error) {
	return evaluateUserInput(userID, taskID, userInput)
}

// DeleteTask removes a task from the resolved user's list. The template
// catalog is never touched.
func DeleteTask(userID, taskID int) error {
	mu.Lock()
	defer mu.Unlock()
	user, err := activeUser(userID)
	if err != nil {
		return err
	}
	for i := range user.ToDoList {
		if user.ToDoList[i].ID == taskID {
			user.ToDoList = append(user.ToDoList[:i], user.ToDoList[i+1:]...)
			return nil
		}
	}
	return utils.NotFoundError("Task not found.")
}

// CoffeePaymentStatus reports the process-wide coffee payment flag.
func CoffeePaymentStatus() bool {
	mu.Lock()
	defer mu.Unlock()
	return coffeePaymentAccepted
}

// PayForCoffee marks the coffee task payment as completed.
func PayForCoffee() bool {
	mu.Lock()
	defer mu.Unlock()
	coffeePaymentAccepted = true
	return coffeePaymentAccepted
}

// ResetCoffeePayment clears the coffee payment flag.
func ResetCoffeePayment() bool {
	mu.Lock()
	defer mu.Unlock()
	coffeePaymentAccepted = false
	return coffeePaymentAccepted
}

// FormDefinition returns the global form template. The missing-form
// branch is defensive only; the catalog is always present in practice.
func FormDefinition() (models.FormTemplate, error) {
	if len(config.Form.Fields) == 0 {
		return models.FormTemplate{}, utils.FormNotFoundError()
	}
	return config.Form, nil
}
