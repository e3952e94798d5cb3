package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nightclaw/mission-control/internal/infra/relay"
	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/modules/repo"
	"github.com/nightclaw/mission-control/internal/pkg/dates"
	"github.com/nightclaw/mission-control/internal/pkg/utils"
	"go.uber.org/zap"
)

type MonitorService interface {
	List() []model.Monitor
	Create(ctx context.Context, in CreateMonitorInput) (*model.Monitor, error)
	Delete(ctx context.Context, id string) error
	Check(ctx context.Context, id string) (*model.Monitor, error)
	CheckAll(ctx context.Context) int
	Featured() (model.Monitor, bool)
	RunSweeper(ctx context.Context, interval time.Duration)
}

type CreateMonitorInput struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

type monitorService struct {
	r        repo.MonitorRepo
	prober   relay.Prober
	log      *zap.Logger
	featured string
	now      func() time.Time
}

func NewMonitorService(r repo.MonitorRepo, prober relay.Prober, log *zap.Logger, featuredName string) MonitorService {
	return &monitorService{r: r, prober: prober, log: log, featured: featuredName, now: time.Now}
}

func (s *monitorService) List() []model.Monitor { return s.r.List() }

// Create registers a monitor in the "checking" state and triggers its
// first probe immediately. The probe outlives the request.
func (s *monitorService) Create(ctx context.Context, in CreateMonitorInput) (*model.Monitor, error) {
	targetURL := strings.TrimSpace(in.URL)
	if targetURL == "" {
		return nil, invalidf("monitor url is required")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = targetURL
	}

	id, err := utils.NewID()
	if err != nil {
		return nil, err
	}
	m := model.Monitor{ID: id, URL: targetURL, Name: name, Status: model.MonitorChecking}
	if err := s.r.Insert(ctx, m); err != nil {
		return nil, fmt.Errorf("persist monitor: %w", err)
	}

	go s.probe(context.Background(), m.ID)
	return &m, nil
}

func (s *monitorService) Delete(ctx context.Context, id string) error {
	removed, err := s.r.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

// Check runs one full probe cycle and returns the settled record.
func (s *monitorService) Check(ctx context.Context, id string) (*model.Monitor, error) {
	if _, ok := s.r.Get(id); !ok {
		return nil, ErrNotFound
	}
	s.probe(ctx, id)
	m, ok := s.r.Get(id)
	if !ok {
		// Deleted while the probe was in flight.
		return nil, ErrNotFound
	}
	return &m, nil
}

// CheckAll probes every registered monitor concurrently, with no
// ordering between cycles, and waits for all of them to settle. It
// returns the number of monitors probed.
func (s *monitorService) CheckAll(ctx context.Context) int {
	monitors := s.r.List()
	var wg sync.WaitGroup
	for _, m := range monitors {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			s.probe(ctx, id)
		}(m.ID)
	}
	wg.Wait()
	return len(monitors)
}

// Featured resolves the overview's featured monitor by case-insensitive
// substring match on the display name. This is a name join, not an id
// reference: renaming the monitor breaks it silently.
func (s *monitorService) Featured() (model.Monitor, bool) {
	if s.featured == "" {
		return model.Monitor{}, false
	}
	needle := strings.ToLower(s.featured)
	for _, m := range s.r.List() {
		if strings.Contains(strings.ToLower(m.Name), needle) {
			return m, true
		}
	}
	return model.Monitor{}, false
}

// RunSweeper re-probes every monitor on a fixed cadence. It is started
// once at boot and only stops when ctx is cancelled at shutdown.
func (s *monitorService) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 2 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := s.CheckAll(ctx)
			s.log.Sugar().Debugw("uptime sweep", "monitors", n)
		}
	}
}

// probe runs one cycle: checking -> up|down. The checking state and a
// start stamp are persisted first so the transient state is visible;
// the final stamp reflects completion time. Overlapping probes for the
// same monitor are last-write-wins.
func (s *monitorService) probe(ctx context.Context, id string) {
	m, ok := s.r.Get(id)
	if !ok {
		return
	}
	if _, err := s.r.Update(ctx, id, func(m *model.Monitor) {
		m.Status = model.MonitorChecking
		m.LastChecked = dates.Stamp(s.now())
	}); err != nil {
		s.log.Sugar().Warnw("persist checking state", "monitor", id, "err", err)
		return
	}

	status := model.MonitorDown
	if s.prober.Probe(ctx, m.URL) {
		status = model.MonitorUp
	}

	if _, err := s.r.Update(ctx, id, func(m *model.Monitor) {
		m.Status = status
		m.LastChecked = dates.Stamp(s.now())
	}); err != nil {
		s.log.Sugar().Warnw("persist probe result", "monitor", id, "err", err)
	}
}
