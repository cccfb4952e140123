package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Remote talks to a leaderboard HTTP service.
// Submissions are POSTed as JSON to the base URL; the top list is read with
// GET on the same URL.
type Remote struct {
	url    string
	client *http.Client
}

// NewRemote creates a client for the service at baseURL. timeout bounds
// every request, on top of any context deadline.
func NewRemote(baseURL string, timeout time.Duration) *Remote {
	return &Remote{
		url:    baseURL,
		client: &http.Client{Timeout: timeout},
	}
}

// URL returns the service address.
func (r *Remote) URL() string {
	return r.url
}

// Submit posts the entry. Any 2xx status is success.
func (r *Remote) Submit(ctx context.Context, e Entry) error {
	body, err := json.Marshal(struct {
		PlayerName string `json:"playerName"`
		Score      int    `json:"score"`
	}{e.PlayerName, e.Score})
	if err != nil {
		return fmt.Errorf("leaderboard: encode entry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("leaderboard: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("leaderboard: submit: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if !isSuccess(resp.StatusCode) {
		return fmt.Errorf("%w: submit returned %d", ErrStatus, resp.StatusCode)
	}
	return nil
}

// Top fetches up to n entries, best first.
func (r *Remote) Top(ctx context.Context, n int) ([]Entry, error) {
	n = normalizeLimit(n)

	u, err := url.Parse(r.url)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: parse url: %w", err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(n))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: fetch top: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: top returned %d", ErrStatus, resp.StatusCode)
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("leaderboard: decode top: %w", err)
	}
	return Rank(entries, n), nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
