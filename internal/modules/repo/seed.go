package repo

import (
	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/pkg/utils"
)

// mustID is only used while building seed sets at startup; crypto/rand
// failing there means the process cannot run at all.
func mustID() string {
	id, err := utils.NewID()
	if err != nil {
		panic(err)
	}
	return id
}

func defaultProjects() []model.Project {
	return []model.Project{
		{
			ID:     mustID(),
			Name:   "WatchParty",
			Desc:   "Synchronized YouTube & Twitch watch party app with real-time chat, queue, emoji reactions and more.",
			GitHub: "https://github.com/Sinnmbre/watchparty",
			Status: model.ProjectStatusInProgress,
			Date:   "2026-02-19",
		},
	}
}

func defaultDevLog() []model.DevLogEntry {
	return []model.DevLogEntry{
		{ID: mustID(), Project: "WatchParty", Type: model.LogTypeBuild, Text: "Built full Watch Party app from scratch — WebSocket server (Node.js, no API keys), real-time sync, live chat, typing indicators, emoji reactions, video queue, vote skip, movie night mode.", Date: "2026-02-19 04:00"},
		{ID: mustID(), Project: "WatchParty", Type: model.LogTypeBuild, Text: "v3.0 redesign: glassmorphism UI, animated orbs, Inter font, gradient brand, platform picker on room creation (YouTube & Twitch).", Date: "2026-02-19 12:00"},
		{ID: mustID(), Project: "WatchParty", Type: model.LogTypeFix, Text: "Fixed duplicate player bug — host was loading video locally AND receiving server echo. Fixed player height leaving empty space below.", Date: "2026-02-19 12:30"},
		{ID: mustID(), Project: "Mission Control", Type: model.LogTypeBuild, Text: "Built NightClaw Mission Control — project tracker, dev log, goals, uptime monitor, notes.", Date: "2026-02-19"},
	}
}

func defaultGoals() []model.Goal {
	return []model.Goal{
		{ID: mustID(), Text: "Leave the warehouse job", Category: "Life Goal"},
		{ID: mustID(), Text: "Build and launch WatchParty live", Category: "WatchParty"},
		{ID: mustID(), Text: "Get first paying client (freelance build)", Category: "Income"},
		{ID: mustID(), Text: "Set up AI Automation Agency offer", Category: "Income"},
		{ID: mustID(), Text: "Deploy WatchParty to Railway", Category: "WatchParty"},
	}
}
