package model

// ScheduleTask is one entry in a day bucket. The schedule collection is
// a map keyed by ISO calendar date, not a flat array.
type ScheduleTask struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}
