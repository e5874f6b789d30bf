// Package netcheck probes release URLs over HTTP. It is the only part of the
// tool that touches the network and runs only when explicitly requested, so
// default validation stays deterministic.
package netcheck

import (
	"context"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single probe so one unreachable URL cannot hang a
// validation run.
const DefaultTimeout = 10 * time.Second

// Checker issues GET probes and classifies the response.
type Checker struct {
	client *http.Client
}

// New returns a checker with the given per-request timeout. A zero or
// negative timeout falls back to DefaultTimeout.
func New(timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Checker{
		client: &http.Client{Timeout: timeout},
	}
}

// Probe reports whether url answers with an acceptable status. Redirects are
// followed; transport errors, timeouts, and DNS failures all classify as
// unreachable rather than surfacing as errors.
func (c *Checker) Probe(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", "registrylint/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusMovedPermanently, http.StatusFound:
		return true
	}
	return false
}
