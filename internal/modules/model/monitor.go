package model

const (
	MonitorUp       = "up"
	MonitorDown     = "down"
	MonitorChecking = "checking"
)

// Monitor is one uptime target. Status and LastChecked are the only
// mutable fields; LastChecked is empty until the first probe and
// reflects probe completion time, not start time.
type Monitor struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	LastChecked string `json:"lastChecked,omitempty"`
}
