package model

const (
	StageLead      = "lead"
	StageContacted = "contacted"
	StageProposal  = "proposal"
	StageActive    = "active"
	StageClosed    = "closed"
)

// Client is one entry on the sales pipeline board. Stage forms a linear
// pipeline with "closed" as the terminal stage.
type Client struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Service string  `json:"service"`
	Value   float64 `json:"value"`
	Note    string  `json:"note"`
	Stage   string  `json:"stage"`
	Date    string  `json:"date"`
}

func ValidStage(s string) bool {
	switch s {
	case StageLead, StageContacted, StageProposal, StageActive, StageClosed:
		return true
	}
	return false
}
