// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/abekoci/election-map/engine"
	"github.com/abekoci/election-map/models"
)

// DefaultTimeout bounds a single request to the persistence resource.
const DefaultTimeout = 15 * time.Second

var (
	// ErrNotFound means the resource has no data yet. Callers substitute
	// a default snapshot rather than treating it as a failure.
	ErrNotFound = errors.New("results not found")

	// ErrUnauthorized means the entry password was rejected.
	ErrUnauthorized = errors.New("invalid password")
)

// FetchError is a transport or decode failure while reading the
// snapshot. It is recoverable: callers keep last-known-good state and
// retry on the next poll.
type FetchError struct {
	Cause error
}

func (e *FetchError) Error() string { return "fetch results: " + e.Cause.Error() }
func (e *FetchError) Unwrap() error { return e.Cause }

// SaveError is a transport or decode failure while writing the
// snapshot. It is surfaced to the operator with no automatic retry; the
// local edit state stays intact for a manual retry.
type SaveError struct {
	Cause error
}

func (e *SaveError) Error() string { return "save results: " + e.Cause.Error() }
func (e *SaveError) Unwrap() error { return e.Cause }

// Client talks to the results persistence resource.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New creates a client for the resource at baseURL (no trailing slash).
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: DefaultTimeout},
	}
}

// Fetch retrieves the current snapshot. The request carries a
// cache-busting timestamp parameter to defeat intermediary caching.
// A not-found status maps to ErrNotFound; any other failure wraps into
// a FetchError.
func (c *Client) Fetch(ctx context.Context) (models.ResultsSnapshot, error) {
	url := c.BaseURL + "/api/results?t=" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Cause: err}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &FetchError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Cause: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var snap models.ResultsSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, &FetchError{Cause: fmt.Errorf("decode snapshot: %w", err)}
	}
	return snap, nil
}

// Save submits a full replacement snapshot. A capacity rejection from
// the server is returned as *engine.CapacityExceededError so the editor
// can surface the offending region verbatim; any other failure wraps
// into a SaveError.
func (c *Client) Save(ctx context.Context, snap models.ResultsSnapshot) (models.SaveResponse, error) {
	body, err := json.Marshal(snap)
	if err != nil {
		return models.SaveResponse{}, &SaveError{Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/results", bytes.NewReader(body))
	if err != nil {
		return models.SaveResponse{}, &SaveError{Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return models.SaveResponse{}, &SaveError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnprocessableEntity {
		var rejected models.SaveRejectedResponse
		if err := json.NewDecoder(resp.Body).Decode(&rejected); err != nil {
			return models.SaveResponse{}, &SaveError{Cause: fmt.Errorf("decode rejection: %w", err)}
		}
		return models.SaveResponse{}, &engine.CapacityExceededError{
			Region:   rejected.Region,
			Computed: rejected.Computed,
			Capacity: rejected.Capacity,
		}
	}
	if resp.StatusCode != http.StatusOK {
		return models.SaveResponse{}, &SaveError{Cause: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var ack models.SaveResponse
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return models.SaveResponse{}, &SaveError{Cause: fmt.Errorf("decode acknowledgment: %w", err)}
	}
	return ack, nil
}

// Login verifies the entry password against the access gate and returns
// a session token. A rejected password maps to ErrUnauthorized.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	body, err := json.Marshal(models.LoginRequest{Password: password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login: unexpected status %d", resp.StatusCode)
	}

	var login models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return "", fmt.Errorf("login: decode response: %w", err)
	}
	if !login.Authenticated {
		return "", ErrUnauthorized
	}
	return login.Token, nil
}
