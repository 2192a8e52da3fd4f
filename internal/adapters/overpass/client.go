// Package overpass talks to an Overpass API instance: queries go to
// /api/interpreter, the rate limiter reads /api/status.
package overpass

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	interpreterPath = "/api/interpreter"
	statusPath      = "/api/status"

	slotAfterPrefix = "Slot available after:"
	slotNowSuffix   = "available now."
)

// Client is a ports.QueryService and ports.RateLimiter for one Overpass instance.
type Client struct {
	http *resty.Client
}

var (
	_ ports.QueryService = (*Client)(nil)
	_ ports.RateLimiter  = (*Client)(nil)
)

// New creates a client for the instance at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return NewWithClient(resty.New().SetBaseURL(baseURL).SetTimeout(timeout))
}

// NewWithClient wraps a configured resty client.
func NewWithClient(client *resty.Client) *Client {
	client.SetHeader("User-Agent", "gimmisn-cron")
	return &Client{http: client}
}

// Execute posts query and returns the response body.
func (c *Client) Execute(ctx context.Context, query string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain; charset=utf-8").
		SetBody(query).
		Post(interpreterPath)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrQueryFailed.Error())
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, zerr.With(domain.ErrQueryFailed, "status", resp.StatusCode())
	}
	return resp.Body(), nil
}

// SecondsUntilAllowed reads the status page and reports how long the next
// query has to wait. Zero means a slot is free now.
func (c *Client) SecondsUntilAllowed(ctx context.Context) (int, error) {
	resp, err := c.http.R().SetContext(ctx).Get(statusPath)
	if err != nil {
		return 0, zerr.Wrap(err, domain.ErrRateLimitStatusFailed.Error())
	}
	if resp.StatusCode() != http.StatusOK {
		return 0, zerr.With(domain.ErrRateLimitStatusFailed, "status", resp.StatusCode())
	}
	return parseStatus(resp.String())
}

// parseStatus interprets the plain-text status page. A free slot wins over
// any announced waits; otherwise the first announced wait is used.
func parseStatus(status string) (int, error) {
	wait := 0
	found := false
	for line := range strings.Lines(status) {
		line = strings.TrimSpace(line)
		if strings.HasSuffix(line, slotNowSuffix) {
			return 0, nil
		}
		if found || !strings.HasPrefix(line, slotAfterPrefix) {
			continue
		}

		// Slot available after: 2020-05-10T21:30:07Z, in 12 seconds.
		_, after, ok := strings.Cut(line, ", in ")
		if !ok {
			return 0, zerr.With(domain.ErrRateLimitStatusFailed, "line", line)
		}
		seconds, _, _ := strings.Cut(after, " ")
		n, err := strconv.Atoi(seconds)
		if err != nil {
			return 0, zerr.With(zerr.Wrap(err, domain.ErrRateLimitStatusFailed.Error()), "line", line)
		}
		wait = max(n, 0)
		found = true
	}
	return wait, nil
}
