package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"hotel-dashboard/models"
	"hotel-dashboard/session"
)

// Config locates the hotel platform API.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the HTTP client for the hotel platform's resource collections.
// Every call is bearer-token authenticated with the operator's session and
// bounded by the configured timeout; expiry surfaces as a transport error.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// envelope is the platform's response shape: {"success": ..., "data": ...}
// with an "error" message on failures. Error bodies may also be plain text.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// TransitionPayload is the optional body of a lifecycle transition request.
type TransitionPayload struct {
	Reason string `json:"reason,omitempty"`
}

func (c *Client) ListBookings(ctx context.Context, sess session.Session) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.list(ctx, sess, "/api/providers/"+sess.ServiceProviderID+"/bookings", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListRooms(ctx context.Context, sess session.Session) ([]models.Room, error) {
	var out []models.Room
	if err := c.list(ctx, sess, "/api/providers/"+sess.ServiceProviderID+"/rooms", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPayments(ctx context.Context, sess session.Session) ([]models.Payment, error) {
	var out []models.Payment
	if err := c.list(ctx, sess, "/api/providers/"+sess.ServiceProviderID+"/payments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListReviews(ctx context.Context, sess session.Session) ([]models.Review, error) {
	var out []models.Review
	if err := c.list(ctx, sess, "/api/providers/"+sess.ServiceProviderID+"/reviews", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TransitionBooking asks the platform to apply a lifecycle action and returns
// the updated record. The platform's verdict is authoritative: a 409/422
// comes back as illegal_transition even if the local table thought the move
// was fine.
func (c *Client) TransitionBooking(ctx context.Context, sess session.Session, bookingID string, action models.BookingAction, payload *TransitionPayload) (models.Booking, error) {
	var booking models.Booking

	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return booking, fmt.Errorf("failed to marshal transition payload: %w", err)
		}
		body = bytes.NewBuffer(jsonBody)
	}

	url := fmt.Sprintf("%s/api/bookings/%s/%s", c.baseURL, bookingID, action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return booking, fmt.Errorf("failed to create request: %w", err)
	}

	data, err := c.do(req, sess)
	if err != nil {
		return booking, err
	}
	if err := json.Unmarshal(data, &booking); err != nil {
		return booking, fmt.Errorf("%w: failed to decode booking: %v", models.ErrTransport, err)
	}
	return booking, nil
}

func (c *Client) list(ctx context.Context, sess session.Session, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	data, err := c.do(req, sess)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", models.ErrTransport, err)
	}
	return nil
}

func (c *Client) do(req *http.Request, sess session.Session) (json.RawMessage, error) {
	if err := sess.Valid(); err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+sess.Token)
	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", models.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classify(resp.StatusCode, raw)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil {
		return env.Data, nil
	}
	// Some endpoints answer with the bare collection instead of the envelope.
	return raw, nil
}

// classify maps a non-2xx platform answer onto the engine's error taxonomy.
func classify(status int, body []byte) error {
	msg := errorMessage(body)

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", models.ErrUnauthenticated, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", models.ErrNotFound, msg)
	case http.StatusConflict, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", models.ErrIllegalTransition, msg)
	}
	return fmt.Errorf("%w: platform responded %d: %s", models.ErrTransport, status, msg)
}

// errorMessage extracts a human-readable message from a JSON or plain-text
// error body.
func errorMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		return env.Error
	}
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "no error body"
	}
	return s
}
