package formflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Devendra616/collectEmpData-sub000/internal/dto"
	"github.com/Devendra616/collectEmpData-sub000/internal/model"
)

// Client errors.
var (
	ErrUnauthorized = errors.New("not authenticated or session expired")
)

// ValidationFailedError carries the server's field-keyed rejection of a
// section payload. Array-section fields use index-qualified keys,
// e.g. "family[2].title".
type ValidationFailedError struct {
	Fields map[string]string
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("server rejected payload on %d field(s)", len(e.Fields))
}

// StatusError is any other non-success response.
type StatusError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d (code %d): %s", e.StatusCode, e.Code, e.Message)
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

// Client talks to the collection API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL
// (e.g. "http://localhost:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Login authenticates and opens a session.
func (c *Client) Login(ctx context.Context, sapID, password string) (*Session, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/v1/login", "",
		dto.LoginRequest{SapID: sapID, Password: password})
	if err != nil {
		return nil, err
	}

	var tokens dto.TokenResponse
	if err := json.Unmarshal(raw, &tokens); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	return NewSession(tokens.AccessToken, tokens.Employee.ID, tokens.Employee.IsSubmitted), nil
}

// Logout revokes the session's token and clears the session.
func (c *Client) Logout(ctx context.Context, sess *Session) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/logout", sess.Token(), nil)
	sess.Clear()
	return err
}

// Load fetches one section. A 404 means the section was never saved and
// returns (nil, nil): an empty form, not an error.
func (c *Client) Load(ctx context.Context, sess *Session, section model.Section) (json.RawMessage, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/v1/"+string(section), sess.Token(), nil)
	if err != nil {
		var serr *StatusError
		if errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	// unwrap the {section, data} payload
	wrapped := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data, nil
	}
	return raw, nil
}

// Save posts one section payload and returns the normalized record the
// server echoed back. Validation rejections surface as
// *ValidationFailedError.
func (c *Client) Save(ctx context.Context, sess *Session, section model.Section, payload interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/api/v1/"+string(section), sess.Token(), payload)
}

// SubmissionStatus reads the submission gate state.
func (c *Client) SubmissionStatus(ctx context.Context, sess *Session) (*dto.SubmissionStatusResponse, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/v1/submission-status", sess.Token(), nil)
	if err != nil {
		return nil, err
	}
	var status dto.SubmissionStatusResponse
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}
	return &status, nil
}

// Submit finally submits the form.
func (c *Client) Submit(ctx context.Context, sess *Session) error {
	if _, err := c.do(ctx, http.MethodPost, "/api/v1/submit", sess.Token(), nil); err != nil {
		return err
	}
	sess.setSubmitted(true)
	return nil
}

// do performs one request and unwraps the response envelope.
func (c *Client) do(ctx context.Context, method, path, token string, body interface{}) (json.RawMessage, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return env.Data, nil
	case resp.StatusCode == http.StatusBadRequest && len(env.Errors) > 0:
		return nil, &ValidationFailedError{Fields: env.Errors}
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, &StatusError{StatusCode: resp.StatusCode, Code: env.Code, Message: env.Message}
	}
}
