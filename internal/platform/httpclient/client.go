// Package httpclient provides the shared HTTP clients used by source
// resolvers. Two variants exist: a default client that follows redirects
// (landing-page resolution depends on observing the final URL) and a
// no-redirect client for plain existence checks against authoritative
// sources.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"citator/pkg/platform/sentinel"
)

const userAgent = "citator/1.0 (+https://github.com/citator/citator)"

// Client wraps http.Client with the request conventions external legal data
// sources expect (user agent, per-request timeout, body limits) and a
// per-host circuit breaker so one dead source cannot stall every request.
type Client struct {
	http       *http.Client
	noRedirect *http.Client
	timeout    time.Duration
	breakers   *breakerSet
}

// maxBodyBytes bounds response reads; MODS documents for large public laws
// run to a few MB, nothing legitimate approaches this limit.
const maxBodyBytes = 32 << 20

// New builds a Client with the given per-request timeout.
func New(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{},
		noRedirect: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		timeout:  timeout,
		breakers: newBreakerSet(),
	}
}

// do issues the request through the host's breaker. Only transport failures
// trip the breaker: an HTTP error status proves the host is reachable.
func (c *Client) do(client *http.Client, req *http.Request) (*http.Response, error) {
	host := req.URL.Hostname()
	b := c.breakers.forHost(host)
	if !b.allow(time.Now()) {
		return nil, fmt.Errorf("fetch %s: host circuit open: %w", req.URL, sentinel.ErrUnavailable)
	}

	resp, err := client.Do(req)
	if err != nil {
		b.recordFailure(time.Now())
		return nil, fmt.Errorf("fetch %s: %w: %v", req.URL, sentinel.ErrUnavailable, err)
	}
	b.recordSuccess()
	return resp, nil
}

// Get fetches url following redirects and returns the response body and the
// final resolved URL. Non-2xx statuses are reported as ErrUnavailable.
func (c *Client) Get(ctx context.Context, url string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.do(c.http, req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, finalURL, fmt.Errorf("fetch %s: status %d: %w", url, resp.StatusCode, sentinel.ErrUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, finalURL, fmt.Errorf("read %s: %w", url, err)
	}
	return body, finalURL, nil
}

// GetWithAuth is Get with HTTP basic auth, for sources that require
// credentials (CourtListener).
func (c *Client) GetWithAuth(ctx context.Context, url, username, password string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.SetBasicAuth(username, password)

	resp, err := c.do(c.http, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: status %d: %w", url, resp.StatusCode, sentinel.ErrUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}

// Status issues a GET without following redirects and returns the status
// code. Used for existence checks where a redirect to a not-found page is
// the failure signal, so the redirect itself must be observed.
func (c *Client) Status(ctx context.Context, url string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.do(c.noRedirect, req)
	if err != nil {
		return 0, err
	}
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
	resp.Body.Close()
	return resp.StatusCode, nil
}
