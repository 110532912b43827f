package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Notification is one highlight alert ready for dispatch.
type Notification struct {
	ID     string `json:"id"`
	GameID string `json:"gameId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	ClipID string `json:"clipId,omitempty"`
}

// Sender dispatches highlight notifications. Implementations must be safe
// to call once per eligible game per cycle.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// PushSender posts notifications to the push gateway's REST endpoint.
// The gateway handles device targeting; this side only supplies the payload.
type PushSender struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	logger     *slog.Logger
}

// NewPushSender creates a push sender. Returns nil if endpoint is empty
// (notifications disabled — the pipeline logs instead of sending).
func NewPushSender(endpoint, apiKey string, logger *slog.Logger) *PushSender {
	if endpoint == "" {
		return nil
	}
	return &PushSender{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		endpoint:   endpoint,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// Send posts one notification. The message id is assigned here so retries
// after a lost response stay deduplicatable on the gateway side.
func (s *PushSender) Send(ctx context.Context, n Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("push gateway returned %d", resp.StatusCode)
	}

	s.logger.Info("Notification sent", "id", n.ID, "game_id", n.GameID, "clip_id", n.ClipID)
	return nil
}
