package model

const (
	WinCatBuild     = "build"
	WinCatLaunch    = "launch"
	WinCatClient    = "client"
	WinCatIncome    = "income"
	WinCatLearn     = "learn"
	WinCatPersonal  = "personal"
	WinCatMilestone = "milestone"
)

const (
	WinSizeBig   = "big"
	WinSizeSmall = "small"
)

// Win is one logged win; its date feeds the streak computation.
type Win struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Desc     string `json:"desc"`
	Category string `json:"category"`
	Size     string `json:"size"`
	Date     string `json:"date"`
}

func ValidWinCategory(s string) bool {
	switch s {
	case WinCatBuild, WinCatLaunch, WinCatClient, WinCatIncome, WinCatLearn, WinCatPersonal, WinCatMilestone:
		return true
	}
	return false
}

func ValidWinSize(s string) bool {
	return s == WinSizeBig || s == WinSizeSmall
}
