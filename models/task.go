package models

// Task types used by the template catalog and user to-do lists.
const (
	TaskTypeCaptcha   = "CAPTCHA"
	TaskTypeForm      = "FORM"
	TaskTypePuzzle    = "PUZZLE"
	TaskTypeDisplay   = "DISPLAY"
	TaskTypeSignature = "SIGNATURE"
	TaskTypeCoffee    = "COFFEE"
)

// Task is a single game task. The template catalog holds one per id with
// Completed always false; user to-do lists hold per-user clones whose
// Completed flag is mutated by the completion checks.
type Task struct {
	ID        int      `json:"id"`
	TaskType  string   `json:"taskType"`
	Completed bool     `json:"completed"`
	PageName  string   `json:"pageName"`
	Captcha   *Captcha `json:"captcha,omitempty"`
}
