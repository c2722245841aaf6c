package models

// Department ties a game department to its task page.
type Department struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	PageName string `json:"pageName"`
}

// ChatbotMessage is one satirical message shown during gameplay.
type ChatbotMessage struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}
