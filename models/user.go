package models

// User is a player. IDs are sequential in creation order. The to-do list
// is a fixed-size subset of the task template catalog, cloned at creation.
type User struct {
	ID       int    `json:"id"`
	Nickname string `json:"nickname"`
	Seed     int64  `json:"seed"`
	ToDoList []Task `json:"toDoList"`
}
