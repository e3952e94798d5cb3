package model

const (
	IncomeFreelance = "freelance"
	IncomeProduct   = "product"
	IncomeAgency    = "agency"
	IncomeContent   = "content"
	IncomeOther     = "other"
)

// IncomeEntry is one logged payment. Amount is always positive.
type IncomeEntry struct {
	ID     string  `json:"id"`
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
	Notes  string  `json:"notes"`
	Date   string  `json:"date"`
}

func ValidIncomeType(s string) bool {
	switch s {
	case IncomeFreelance, IncomeProduct, IncomeAgency, IncomeContent, IncomeOther:
		return true
	}
	return false
}
