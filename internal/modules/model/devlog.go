package model

const (
	LogTypeBuild    = "build"
	LogTypeFix      = "fix"
	LogTypeDecision = "decision"
	LogTypeResearch = "research"
	LogTypeDeploy   = "deploy"
)

// DevLogEntry is one dev-log record. Project is a free display name,
// not a reference to a Project id; renaming or deleting a project
// silently orphans its entries.
type DevLogEntry struct {
	ID      string `json:"id"`
	Project string `json:"project"`
	Type    string `json:"type"`
	Text    string `json:"text"`
	Date    string `json:"date"`
}

func ValidLogType(s string) bool {
	switch s {
	case LogTypeBuild, LogTypeFix, LogTypeDecision, LogTypeResearch, LogTypeDeploy:
		return true
	}
	return false
}
