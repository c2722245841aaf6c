package models

// Puzzle is an immutable catalog entry for the puzzle task.
type Puzzle struct {
	PuzzleKey        string   `json:"puzzleKey"`
	Title            string   `json:"title"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correctAnswer"`
	InputPlaceholder string   `json:"inputPlaceholder"`
	Options          []string `json:"options,omitempty"`
	Sequence         string   `json:"sequence,omitempty"`
}

// PuzzleView is a Puzzle tagged with a 1-based display id for one serving.
type PuzzleView struct {
	DisplayID int `json:"displayId"`
	Puzzle
}
