package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stzanetis/BureaucracySimulator-BE/config"
	"github.com/stzanetis/BureaucracySimulator-BE/models"
	"github.com/stzanetis/BureaucracySimulator-BE/utils"
)

func errCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	return appErr.Code
}

// seed 12345 assigns task ids 4, 2, 3, 5
func createTestUser(t *testing.T) *models.User {
	t.Helper()
	Reset()
	return CreateUserWithTasks("Tester", 12345)
}

func TestNoActiveUser(t *testing.T) {
	Reset()

	if _, err := CurrentToDoList(0); errCode(t, err) != utils.CodeNoActiveUser {
		t.Fatal("expected NO_ACTIVE_USER from todolist")
	}
	if _, err := UpdateTaskStatus(0, 1, json.RawMessage(`{}`)); errCode(t, err) != utils.CodeNoActiveUser {
		t.Fatal("expected NO_ACTIVE_USER from update")
	}
	if err := DeleteTask(0, 1); errCode(t, err) != utils.CodeNoActiveUser {
		t.Fatal("expected NO_ACTIVE_USER from delete")
	}
}

func TestUpdateTaskStatusEvenLengthRule(t *testing.T) {
	user := createTestUser(t)
	taskID := user.ToDoList[0].ID

	// "{}" serializes to 2 characters: even, completed
	completed, err := UpdateTaskStatus(0, taskID, json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !completed {
		t.Fatal("even-length input must complete the task")
	}

	list, err := CurrentToDoList(0)
	if err != nil {
		t.Fatalf("todolist failed: %v", err)
	}
	if !list[0].Completed {
		t.Fatal("completion flag not persisted on the user's task")
	}

	// `{"a":1}` serializes to 7 characters: odd, not completed
	completed, err = UpdateTaskStatus(0, taskID, json.RawMessage(`{"a":1}`))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if completed {
		t.Fatal("odd-length input must not complete the task")
	}
}

func TestUpdateTaskStatusCompactsInput(t *testing.T) {
	user := createTestUser(t)
	taskID := user.ToDoList[0].ID

	// whitespace must not change the outcome: {"a": 1} compacts to {"a":1}
	completed, err := UpdateTaskStatus(0, taskID, json.RawMessage(`{ "a" : 1 }`))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if completed {
		t.Fatal("padded input must evaluate like its compact form")
	}
}

func TestUpdateFormTaskStatus(t *testing.T) {
	user := createTestUser(t)
	taskID := user.ToDoList[1].ID // id 2, a FORM task under seed 12345

	completed, err := UpdateFormTaskStatus(0, taskID, json.RawMessage(`{"fullName":"A"}`))
	if err != nil {
		t.Fatalf("form update failed: %v", err)
	}
	// {"fullName":"A"} is 16 characters: even
	if !completed {
		t.Fatal("even-length form payload must complete the task")
	}
}

func TestUpdateTaskStatusUnknownTask(t *testing.T) {
	createTestUser(t)

	// id 9 exists in the catalog but not in this user's list
	if _, err := UpdateTaskStatus(0, 9, json.RawMessage(`{}`)); errCode(t, err) != utils.CodeNotFound {
		t.Fatal("expected NOT_FOUND for task outside the user's list")
	}
}

func TestTaskByIDFallsBackToCatalog(t *testing.T) {
	createTestUser(t)

	// id 9 (COFFEE) is not assigned under seed 12345 but is previewable
	task, err := TaskByID(0, 9)
	if err != nil {
		t.Fatalf("catalog fallback failed: %v", err)
	}
	if task.TaskType != models.TaskTypeCoffee {
		t.Fatalf("task 9 type = %q, want COFFEE", task.TaskType)
	}

	if _, err := TaskByID(0, 99999); errCode(t, err) != utils.CodeNotFound {
		t.Fatal("expected NOT_FOUND for unknown id")
	}
}

func TestTaskByIDAttachesCaptcha(t *testing.T) {
	createTestUser(t)

	// id 4 is a CAPTCHA task in the seed-12345 list
	task, err := TaskByID(0, 4)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if task.Captcha == nil {
		t.Fatal("CAPTCHA task served without a challenge")
	}
	if len(task.Captcha.Images) == 0 || len(task.Captcha.CorrectIDs) == 0 {
		t.Fatalf("challenge incomplete: %+v", task.Captcha)
	}

	// non-CAPTCHA tasks carry no challenge
	task, err = TaskByID(0, 2)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if task.Captcha != nil {
		t.Fatal("FORM task must not carry a captcha")
	}
}

func TestDeleteTask(t *testing.T) {
	user := createTestUser(t)
	taskID := user.ToDoList[0].ID

	if err := DeleteTask(0, taskID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	list, _ := CurrentToDoList(0)
	if len(list) != toDoListSize-1 {
		t.Fatalf("list length after delete = %d, want %d", len(list), toDoListSize-1)
	}
	for _, task := range list {
		if task.ID == taskID {
			t.Fatalf("task %d still present after delete", taskID)
		}
	}

	if err := DeleteTask(0, taskID); errCode(t, err) != utils.CodeNotFound {
		t.Fatal("second delete must report NOT_FOUND")
	}

	// the template catalog is untouched
	if len(config.TaskTemplates) != 9 {
		t.Fatalf("template catalog mutated: %d entries", len(config.TaskTemplates))
	}
	found := false
	for _, tpl := range config.TaskTemplates {
		if tpl.ID == taskID {
			found = true
		}
	}
	if !found {
		t.Fatalf("template %d removed from catalog", taskID)
	}
}

func TestCoffeePaymentFlow(t *testing.T) {
	Reset()

	if CoffeePaymentStatus() {
		t.Fatal("coffee payment must start unpaid")
	}
	if !PayForCoffee() {
		t.Fatal("pay must report accepted")
	}
	if !CoffeePaymentStatus() {
		t.Fatal("status must reflect payment")
	}
	if ResetCoffeePayment() {
		t.Fatal("reset must report unpaid")
	}
	if CoffeePaymentStatus() {
		t.Fatal("status must reflect reset")
	}
}

func TestFormDefinition(t *testing.T) {
	form, err := FormDefinition()
	if err != nil {
		t.Fatalf("form lookup failed: %v", err)
	}
	if form.Title != "Official Form 27B-6" {
		t.Fatalf("unexpected form title %q", form.Title)
	}
	if len(form.Fields) != 6 {
		t.Fatalf("form has %d fields, want 6", len(form.Fields))
	}
}
