package controllers

import (
	"encoding/json"
	"math/rand"
	"net/http"

	"github.com/stzanetis/BureaucracySimulator-BE/config"
	"github.com/stzanetis/BureaucracySimulator-BE/middleware"
	"github.com/stzanetis/BureaucracySimulator-BE/services"
	"github.com/stzanetis/BureaucracySimulator-BE/utils"
)

type taskUpdateRequest struct {
	UserInput json.RawMessage `json:"userInput"`
}

type puzzleAnswer struct {
	PuzzleKey string      `json:"puzzleKey"`
	Answer    interface{} `json:"answer"`
}

// ToDoListHandler handles GET /user/homescreen/todolist.
func ToDoListHandler(w http.ResponseWriter, r *http.Request) {
	list, err := services.CurrentToDoList(middleware.SessionUserID(r))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{"toDoList": list}, "To-do list retrieved.")
}

// GetTaskHandler handles GET /user/homescreen/tasks/{taskID}/.
func GetTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID, appErr := taskIDFromRequest(r)
	if appErr != nil {
		utils.WriteError(w, appErr)
		return
	}
	task, err := services.TaskByID(middleware.SessionUserID(r), taskID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, task, "Task retrieved.")
}

// PutTaskCheckHandler handles PUT /user/homescreen/tasks/{taskID}.
func PutTaskCheckHandler(w http.ResponseWriter, r *http.Request) {
	taskID, appErr := taskIDFromRequest(r)
	if appErr != nil {
		utils.WriteError(w, appErr)
		return
	}
	var req taskUpdateRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		utils.WriteError(w, appErr)
		return
	}
	if appErr := utils.ValidateTaskUpdatePayload(req.UserInput); appErr != nil {
		utils.WriteError(w, appErr)
		return
	}

	completed, err := services.UpdateTaskStatus(middleware.SessionUserID(r), taskID, req.UserInput)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{"isTaskCompleted": completed}, "Task evaluated.")
}

// DeleteTaskHandler handles DELETE /user/homescreen/tasks/{taskID}.
func DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID, appErr := taskIDFromRequest(r)
	if appErr != nil {
		utils.WriteError(w, appErr)
		return
	}
	if err := services.DeleteTask(middleware.SessionUserID(r), taskID); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CoffeeStatusHandler handles GET /user/homescreen/tasks/9/payment-portal/.
func CoffeeStatusHandler(w http.ResponseWriter, _ *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{"paymentAccepted": services.CoffeePaymentStatus()}, "Coffee payment status retrieved.")
}

// PayCoffeeHandler handles POST /user/homescreen/tasks/9/payment-portal/pay.
func PayCoffeeHandler(w http.ResponseWriter, _ *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{"paymentAccepted": services.PayForCoffee()}, "Coffee payment completed.")
}

// ResetCoffeeHandler handles POST /user/homescreen/tasks/9/payment-portal/reset.
func ResetCoffeeHandler(w http.ResponseWriter, _ *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{"paymentAccepted": services.ResetCoffeePayment()}, "Coffee payment reset.")
}

// GetFormHandler handles GET /user/homescreen/tasks/{taskID}/form.
func GetFormHandler(w http.ResponseWriter, _ *http.Request) {
	form, err := services.FormDefinition()
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	data := map[string]interface{}{
		"formTitle":   form.Title,
		"description": form.Description,
		"fields":      form.Fields,
	}
	utils.WriteSuccess(w, http.StatusOK, data, "Form definition retrieved.")
}

// PutFormCheckHandler handles PUT /user/homescreen/tasks/{taskID}/form-check.
func PutFormCheckHandler(w http.ResponseWriter, r *http.Request) {
	taskID, appErr := taskIDFromRequest(r)
	if appErr != nil {
		utils.WriteError(w, appErr)
		return
	}
	var req taskUpdateRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		utils.WriteError(w, appErr)
		return
	}
	if appErr := utils.ValidateTaskUpdatePayload(req.UserInput); appErr != nil {
		utils.WriteError(w, appErr)
		return
	}

	completed, err := services.UpdateFormTaskStatus(middleware.SessionUserID(r), taskID, req.UserInput)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{"isTaskCompleted": completed}, "Form task evaluated.")
}

// GetPuzzleHandler handles GET /user/homescreen/tasks/{taskID}/puzzle.
func GetPuzzleHandler(w http.ResponseWriter, _ *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{"puzzles": services.PuzzleDefinition()}, "Puzzle definition retrieved.")
}

// PutPuzzleCheckHandler handles PUT /user/homescreen/tasks/{taskID}/puzzle-check.
func PutPuzzleCheckHandler(w http.ResponseWriter, r *http.Request) {
	taskID, appErr := taskIDFromRequest(r)
	if appErr != nil {
		utils.WriteError(w, appErr)
		return
	}
	var req struct {
		UserInput *puzzleAnswer `json:"userInput"`
	}
	if appErr := decodeJSON(r, &req); appErr != nil {
		utils.WriteError(w, appErr)
		return
	}
	if req.UserInput == nil {
		utils.WriteError(w, utils.ValidationError("userInput is required."))
		return
	}

	completed, err := services.UpdatePuzzleTaskStatus(middleware.SessionUserID(r), taskID, req.UserInput.PuzzleKey, req.UserInput.Answer)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{"isTaskCompleted": completed}, "Puzzle task evaluated.")
}

// DepartmentsHandler handles GET /user/homescreen/departments.
func DepartmentsHandler(w http.ResponseWriter, _ *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, config.Departments, "Departments retrieved.")
}

// ChatbotHandler handles GET /user/homescreen/chatbot. Serves one random
// satirical message per call.
func ChatbotHandler(w http.ResponseWriter, _ *http.Request) {
	msg := config.ChatbotMessages[rand.Intn(len(config.ChatbotMessages))]
	utils.WriteSuccess(w, http.StatusOK, msg, "Chatbot message retrieved.")
}
