package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"logbook/internal/timeclock"
)

// signInTimeout bounds only the sign-in call; every other remote call runs
// without a timeout and is never retried.
const signInTimeout = 10 * time.Second

// HTTPRemote talks to the logbook server's JSON-over-HTTP POST contract:
// one endpoint per resource, an "action" field selecting the operation.
type HTTPRemote struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func NewHTTPRemote(baseURL string) *HTTPRemote {
	return &HTTPRemote{BaseURL: baseURL, Client: &http.Client{}}
}

type envelope struct {
	OK      bool              `json:"ok"`
	Message string            `json:"message"`
	Entry   *timeclock.Entry  `json:"entry"`
	Entries []timeclock.Entry `json:"entries"`
	User    *Session          `json:"user"`
	Users   []Session         `json:"users"`
	Token   string            `json:"token"`
}

func (r *HTTPRemote) post(ctx context.Context, path string, payload map[string]any) (*envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		// Connectivity failures become one generic user-facing message.
		return nil, errors.New("could not reach server, check your connection")
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, errors.New("invalid response from server")
	}
	if !env.OK {
		// Server-side rejections are surfaced verbatim.
		if env.Message != "" {
			return nil, errors.New(env.Message)
		}
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return &env, nil
}

func (r *HTTPRemote) AddEntry(ctx context.Context, req AddEntryRequest) (timeclock.Entry, error) {
	env, err := r.post(ctx, "/api/logs", map[string]any{
		"action":    "add_entry",
		"userId":    req.UserID,
		"name":      req.Name,
		"logAction": req.LogAction,
		"timestamp": req.Timestamp.Format(time.RFC3339),
	})
	if err != nil {
		return timeclock.Entry{}, err
	}
	if env.Entry == nil {
		return timeclock.Entry{}, errors.New("invalid response from server")
	}
	return *env.Entry, nil
}

func (r *HTTPRemote) ListEntries(ctx context.Context) ([]timeclock.Entry, error) {
	env, err := r.post(ctx, "/api/logs", map[string]any{"action": "list_entries"})
	if err != nil {
		return nil, err
	}
	return env.Entries, nil
}

func (r *HTTPRemote) DeleteEntry(ctx context.Context, entryID, userID string) error {
	_, err := r.post(ctx, "/api/logs", map[string]any{
		"action":  "delete_entry",
		"entryId": entryID,
		"userId":  userID,
	})
	return err
}

// SignIn authenticates against the auth endpoint and returns the session
// record plus the bearer token for later admin calls. This is the only call
// with a deadline: it aborts after a fixed interval instead of hanging.
func (r *HTTPRemote) SignIn(ctx context.Context, email, password string) (Session, error) {
	ctx, cancel := context.WithTimeout(ctx, signInTimeout)
	defer cancel()
	env, err := r.post(ctx, "/api/auth", map[string]any{
		"action":   "sign_in",
		"email":    email,
		"password": password,
	})
	if err != nil {
		return Session{}, err
	}
	if env.User == nil {
		return Session{}, errors.New("invalid response from server")
	}
	r.Token = env.Token
	return *env.User, nil
}
