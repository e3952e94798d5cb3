package model

// Goal is a toggleable target. Completion is not time-stamped.
type Goal struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
	Done     bool   `json:"done"`
}
