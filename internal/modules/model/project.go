package model

const (
	ProjectStatusLive       = "live"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusIdea       = "idea"
	ProjectStatusPaused     = "paused"
)

// Project is one tracked side-project. Status is freely settable; there
// are no transition constraints.
type Project struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Desc   string `json:"desc"`
	GitHub string `json:"github"`
	URL    string `json:"url"`
	Status string `json:"status"`
	Date   string `json:"date"`
}

func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusLive, ProjectStatusInProgress, ProjectStatusIdea, ProjectStatusPaused:
		return true
	}
	return false
}
