package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stzanetis/BureaucracySimulator-BE/models"
	"github.com/stzanetis/BureaucracySimulator-BE/services"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
	Message string          `json:"message"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	t.Setenv("BASIC_AUTH_USER", "clerk")
	t.Setenv("BASIC_AUTH_PASS", "stamp-everything")
	t.Setenv("BASIC_AUTH_PASS_HASH", "")
	t.Setenv("SESSION_SECRET", "test-session-secret")
	services.Reset()

	srv := httptest.NewServer(InitRouter())
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, srv *httptest.Server, method, path string, body interface{}) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("clerk", "stamp-everything")

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("%s %s: decode envelope: %v", method, path, err)
		}
	}
	return resp.StatusCode, env
}

func createGameUser(t *testing.T, srv *httptest.Server) models.User {
	t.Helper()
	status, env := doRequest(t, srv, http.MethodPost, "/user", map[string]interface{}{
		"nickname": "Tester",
		"seed":     12345,
	})
	if status != http.StatusOK {
		t.Fatalf("create user status = %d", status)
	}
	var user models.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	return user
}

func TestHealthIsUnauthenticated(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d", resp.StatusCode)
	}
}

func TestAPIRequiresBasicAuth(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/startscreen")
	if err != nil {
		t.Fatalf("startscreen: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", resp.StatusCode)
	}
}

func TestStartscreenSonglist(t *testing.T) {
	srv := newTestServer(t)
	status, env := doRequest(t, srv, http.MethodGet, "/startscreen", nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("status = %d, success = %v", status, env.Success)
	}
	var data struct {
		Songlist []string `json:"songlist"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(data.Songlist) != 3 {
		t.Fatalf("songlist has %d entries, want 3", len(data.Songlist))
	}
}

func TestCreateUserAndToDoList(t *testing.T) {
	srv := newTestServer(t)
	user := createGameUser(t, srv)
	if len(user.ToDoList) != 4 {
		t.Fatalf("to-do list has %d tasks, want 4", len(user.ToDoList))
	}

	status, env := doRequest(t, srv, http.MethodGet, "/user/homescreen/todolist", nil)
	if status != http.StatusOK {
		t.Fatalf("todolist status = %d", status)
	}
	var data struct {
		ToDoList []models.Task `json:"toDoList"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(data.ToDoList) != 4 {
		t.Fatalf("todolist has %d tasks, want 4", len(data.ToDoList))
	}
}

func TestCreateUserIssuesSessionToken(t *testing.T) {
	srv := newTestServer(t)
	status, env := doRequest(t, srv, http.MethodPost, "/user", map[string]interface{}{
		"nickname": "TokenHolder",
		"seed":     7,
	})
	if status != http.StatusOK {
		t.Fatalf("create user status = %d", status)
	}
	var data struct {
		SessionToken string `json:"sessionToken"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.SessionToken == "" {
		t.Fatal("user creation must issue a session token")
	}
}

func TestCreateUserValidation(t *testing.T) {
	srv := newTestServer(t)

	status, env := doRequest(t, srv, http.MethodPost, "/user", map[string]interface{}{"nickname": "  "})
	if status != http.StatusBadRequest {
		t.Fatalf("blank nickname status = %d, want 400", status)
	}
	if env.Error == nil || *env.Error != "VALIDATION_ERROR" {
		t.Fatalf("error = %v, want VALIDATION_ERROR", env.Error)
	}

	status, _ = doRequest(t, srv, http.MethodPost, "/user", map[string]interface{}{"nickname": "NoSeed"})
	if status != http.StatusBadRequest {
		t.Fatalf("missing seed status = %d, want 400", status)
	}
}

func TestTaskEvaluation(t *testing.T) {
	srv := newTestServer(t)
	user := createGameUser(t, srv)
	taskID := user.ToDoList[0].ID

	status, env := doRequest(t, srv, http.MethodPut,
		"/user/homescreen/tasks/"+itoa(taskID),
		map[string]interface{}{"userInput": map[string]interface{}{}})
	if status != http.StatusOK {
		t.Fatalf("task check status = %d", status)
	}
	var data struct {
		IsTaskCompleted bool `json:"isTaskCompleted"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !data.IsTaskCompleted {
		t.Fatal("empty object serializes to even length and must complete the task")
	}
}

func TestTaskEvaluationRequiresUserInput(t *testing.T) {
	srv := newTestServer(t)
	user := createGameUser(t, srv)
	taskID := user.ToDoList[0].ID

	status, env := doRequest(t, srv, http.MethodPut,
		"/user/homescreen/tasks/"+itoa(taskID), map[string]interface{}{})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if env.Error == nil || *env.Error != "VALIDATION_ERROR" {
		t.Fatalf("error = %v, want VALIDATION_ERROR", env.Error)
	}
}

func TestTaskDelete(t *testing.T) {
	srv := newTestServer(t)
	user := createGameUser(t, srv)
	taskID := user.ToDoList[0].ID

	status, _ := doRequest(t, srv, http.MethodDelete, "/user/homescreen/tasks/"+itoa(taskID), nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", status)
	}
	status, env := doRequest(t, srv, http.MethodDelete, "/user/homescreen/tasks/"+itoa(taskID), nil)
	if status != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", status)
	}
	if env.Error == nil || *env.Error != "NOT_FOUND" {
		t.Fatalf("error = %v, want NOT_FOUND", env.Error)
	}
}

func TestCoffeePaymentPortal(t *testing.T) {
	srv := newTestServer(t)
	createGameUser(t, srv)

	var data struct {
		PaymentAccepted bool `json:"paymentAccepted"`
	}

	_, env := doRequest(t, srv, http.MethodGet, "/user/homescreen/tasks/9/payment-portal", nil)
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.PaymentAccepted {
		t.Fatal("payment must start unaccepted")
	}

	_, env = doRequest(t, srv, http.MethodPost, "/user/homescreen/tasks/9/payment-portal/pay", nil)
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !data.PaymentAccepted {
		t.Fatal("pay must accept the payment")
	}

	_, env = doRequest(t, srv, http.MethodPost, "/user/homescreen/tasks/9/payment-portal/reset", nil)
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.PaymentAccepted {
		t.Fatal("reset must clear the payment")
	}
}

func TestFormAndPuzzleEndpoints(t *testing.T) {
	srv := newTestServer(t)
	user := createGameUser(t, srv)
	taskID := user.ToDoList[0].ID

	status, env := doRequest(t, srv, http.MethodGet, "/user/homescreen/tasks/"+itoa(taskID)+"/form", nil)
	if status != http.StatusOK {
		t.Fatalf("form status = %d", status)
	}
	var form struct {
		FormTitle string `json:"formTitle"`
	}
	if err := json.Unmarshal(env.Data, &form); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if form.FormTitle != "Official Form 27B-6" {
		t.Fatalf("form title = %q", form.FormTitle)
	}

	status, env = doRequest(t, srv, http.MethodGet, "/user/homescreen/tasks/"+itoa(taskID)+"/puzzle", nil)
	if status != http.StatusOK {
		t.Fatalf("puzzle status = %d", status)
	}
	var puzzles struct {
		Puzzles []models.PuzzleView `json:"puzzles"`
	}
	if err := json.Unmarshal(env.Data, &puzzles); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(puzzles.Puzzles) != 2 {
		t.Fatalf("puzzle serving has %d entries, want 2", len(puzzles.Puzzles))
	}

	status, env = doRequest(t, srv, http.MethodPut, "/user/homescreen/tasks/"+itoa(taskID)+"/puzzle-check",
		map[string]interface{}{"userInput": map[string]interface{}{"puzzleKey": "paradox", "answer": "Neither"}})
	if status != http.StatusOK {
		t.Fatalf("puzzle check status = %d", status)
	}
	var check struct {
		IsTaskCompleted bool `json:"isTaskCompleted"`
	}
	if err := json.Unmarshal(env.Data, &check); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !check.IsTaskCompleted {
		t.Fatal("correct puzzle answer must complete the task")
	}
}

func TestEndscreenFlow(t *testing.T) {
	srv := newTestServer(t)

	status, env := doRequest(t, srv, http.MethodPost, "/endscreen", map[string]interface{}{"elapsedTime": -5})
	if status != http.StatusBadRequest {
		t.Fatalf("negative elapsed time status = %d, want 400", status)
	}
	if env.Error == nil || *env.Error != "VALIDATION_ERROR" {
		t.Fatalf("error = %v, want VALIDATION_ERROR", env.Error)
	}

	status, env = doRequest(t, srv, http.MethodPost, "/endscreen?nickname=Zed", map[string]interface{}{"elapsedTime": 100})
	if status != http.StatusOK {
		t.Fatalf("endscreen status = %d", status)
	}
	var stats models.EndscreenStats
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.ElapsedTime != 100 {
		t.Fatalf("elapsed time = %v, want 100", stats.ElapsedTime)
	}

	// Zed's time landed on the leaderboard
	status, env = doRequest(t, srv, http.MethodGet, "/leaderboard", nil)
	if status != http.StatusOK {
		t.Fatalf("leaderboard status = %d", status)
	}
	var entries []models.LeaderboardEntry
	if err := json.Unmarshal(env.Data, &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	found := false
	for _, e := range entries {
		if e.Name == "Zed" && e.Score == 100 {
			found = true
		}
	}
	if !found {
		t.Fatalf("Zed missing from leaderboard: %v", entries)
	}
}

func TestLeaderboardCRUD(t *testing.T) {
	srv := newTestServer(t)

	status, _ := doRequest(t, srv, http.MethodPut, "/leaderboard/Archivist", map[string]interface{}{"score": 42})
	if status != http.StatusOK {
		t.Fatalf("upsert status = %d", status)
	}

	status, _ = doRequest(t, srv, http.MethodDelete, "/leaderboard/Archivist", nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", status)
	}

	status, env := doRequest(t, srv, http.MethodDelete, "/leaderboard/Archivist", nil)
	if status != http.StatusNotFound {
		t.Fatalf("missing delete status = %d, want 404", status)
	}
	if env.Error == nil || *env.Error != "NOT_FOUND" {
		t.Fatalf("error = %v, want NOT_FOUND", env.Error)
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
