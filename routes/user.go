package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stzanetis/BureaucracySimulator-BE/controllers"
)

// UserRoutes registers user creation and the homescreen task routes.
// The coffee payment portal lives at the fixed task id 9; it is
// registered before the {taskID} routes on purpose.
func UserRoutes(api *mux.Router) {
	api.HandleFunc("/user", controllers.CreateUserHandler).Methods(http.MethodPost)
	api.HandleFunc("/user", controllers.ListUsersHandler).Methods(http.MethodGet)

	home := api.PathPrefix("/user/homescreen").Subrouter()

	home.HandleFunc("/todolist", controllers.ToDoListHandler).Methods(http.MethodGet)
	home.HandleFunc("/departments", controllers.DepartmentsHandler).Methods(http.MethodGet)
	home.HandleFunc("/chatbot", controllers.ChatbotHandler).Methods(http.MethodGet)

	home.HandleFunc("/tasks/9/payment-portal", controllers.CoffeeStatusHandler).Methods(http.MethodGet)
	home.HandleFunc("/tasks/9/payment-portal/pay", controllers.PayCoffeeHandler).Methods(http.MethodPost)
	home.HandleFunc("/tasks/9/payment-portal/reset", controllers.ResetCoffeeHandler).Methods(http.MethodPost)

	home.HandleFunc("/tasks/{taskID}/form", controllers.GetFormHandler).Methods(http.MethodGet)
	home.HandleFunc("/tasks/{taskID}/form-check", controllers.PutFormCheckHandler).Methods(http.MethodPut)
	home.HandleFunc("/tasks/{taskID}/puzzle", controllers.GetPuzzleHandler).Methods(http.MethodGet)
	home.HandleFunc("/tasks/{taskID}/puzzle-check", controllers.PutPuzzleCheckHandler).Methods(http.MethodPut)

	home.HandleFunc("/tasks/{taskID}", controllers.GetTaskHandler).Methods(http.MethodGet)
	home.HandleFunc("/tasks/{taskID}", controllers.PutTaskCheckHandler).Methods(http.MethodPut)
	home.HandleFunc("/tasks/{taskID}", controllers.DeleteTaskHandler).Methods(http.MethodDelete)
}
