package service

import (
	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/modules/repo"
)

type OverviewService interface {
	Summary() OverviewSummary
}

// OverviewSummary is the dashboard landing view: counts, the most
// recent dev-log entries and the featured monitor's state.
type OverviewSummary struct {
	Projects       int                 `json:"projects"`
	LogEntries     int                 `json:"log_entries"`
	RecentActivity []model.DevLogEntry `json:"recent_activity"`
	Featured       *model.Monitor      `json:"featured_monitor,omitempty"`
}

const recentActivityLimit = 6

type overviewService struct {
	projects repo.ProjectRepo
	devlog   repo.DevLogRepo
	monitors MonitorService
}

func NewOverviewService(projects repo.ProjectRepo, devlog repo.DevLogRepo, monitors MonitorService) OverviewService {
	return &overviewService{projects: projects, devlog: devlog, monitors: monitors}
}

func (s *overviewService) Summary() OverviewSummary {
	entries := s.devlog.List()
	recent := make([]model.DevLogEntry, 0, recentActivityLimit)
	for i := len(entries) - 1; i >= 0 && len(recent) < recentActivityLimit; i-- {
		recent = append(recent, entries[i])
	}

	out := OverviewSummary{
		Projects:       s.projects.Len(),
		LogEntries:     s.devlog.Len(),
		RecentActivity: recent,
	}
	if m, ok := s.monitors.Featured(); ok {
		out.Featured = &m
	}
	return out
}
