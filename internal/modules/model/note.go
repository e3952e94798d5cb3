package model

// Note is freeform text, edited in place via destructive overwrite.
// Date is re-stamped on every edit.
type Note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Date  string `json:"date"`
}
