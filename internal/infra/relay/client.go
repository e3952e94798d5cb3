package relay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nightclaw/mission-control/internal/config"
	"go.uber.org/zap"
)

// Prober reports whether a target URL currently responds.
type Prober interface {
	Probe(ctx context.Context, target string) bool
}

// Client probes targets through a reachability relay: the relay fetches
// the target URL's headers on our behalf and reports whether the fetch
// succeeded. The client timeout is the only bound on an in-flight probe.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func NewClient(cfg *config.Config, log *zap.Logger) *Client {
	timeout := time.Duration(cfg.Monitor.ProbeTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		BaseURL:    cfg.Monitor.RelayURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     log,
	}
}

// Probe issues a head-fetch through the relay. A 2xx relay response
// means up; timeouts, transport failures and any other status collapse
// to down. No error detail is retained.
func (c *Client) Probe(ctx context.Context, target string) bool {
	endpoint := fmt.Sprintf("%s/head?url=%s", c.BaseURL, url.QueryEscape(target))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.Logger.Sugar().Warnw("probe request", "target", target, "err", err)
		return false
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Sugar().Debugw("probe failed", "target", target, "err", err)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
