package model

const (
	IdeaPending  = "pending"
	IdeaApproved = "approved"
	IdeaRejected = "rejected"
	IdeaBuilt    = "built"
)

// Idea is a backlog entry. Status transitions are unconstrained.
type Idea struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Desc     string `json:"desc"`
	Status   string `json:"status"`
	Proposer string `json:"proposer"`
	Date     string `json:"date"`
}

func ValidIdeaStatus(s string) bool {
	switch s {
	case IdeaPending, IdeaApproved, IdeaRejected, IdeaBuilt:
		return true
	}
	return false
}
