package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"burpwatch/internal/config"
	"burpwatch/internal/models"
)

type PushoverNotifier struct {
	config     *config.Config
	httpClient *http.Client
	apiURL     string
}

type pushoverRequest struct {
	Token     string `json:"token"`
	User      string `json:"user"`
	Message   string `json:"message"`
	Title     string `json:"title,omitempty"`
	Priority  int    `json:"priority,omitempty"`
	URL       string `json:"url,omitempty"`
	URLTitle  string `json:"url_title,omitempty"`
	Device    string `json:"device,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
	Sound     string `json:"sound,omitempty"`
	Retry     int    `json:"retry,omitempty"`
	Expire    int    `json:"expire,omitempty"`
}

type pushoverResponse struct {
	Status  int      `json:"status"`
	Request string   `json:"request"`
	Errors  []string `json:"errors,omitempty"`
	Receipt string   `json:"receipt,omitempty"`
}

const pushoverAPIURL = "https://api.pushover.net/1/messages.json"

func NewPushoverNotifier(cfg *config.Config) *PushoverNotifier {
	return &PushoverNotifier{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiURL: pushoverAPIURL,
	}
}

func (p *PushoverNotifier) Name() string {
	return "pushover"
}

// IsEnabled is read from the live config so a reload can switch it.
func (p *PushoverNotifier) IsEnabled() bool {
	return p.config.GetNotifications().Pushover.Enabled
}

// Send pushes n if it is at or above the configured minimum level.
func (p *PushoverNotifier) Send(ctx context.Context, n models.Notification) error {
	cfg := p.config.GetNotifications().Pushover
	if !cfg.Enabled {
		return nil
	}

	minLevel, err := models.ParseLevel(cfg.MinLevel)
	if err != nil {
		minLevel = models.LevelWarning
	}
	if n.Level.Severity() < minLevel.Severity() {
		return nil
	}

	sentAt := n.CreatedAt
	if sentAt.IsZero() {
		sentAt = time.Now()
	}

	req := pushoverRequest{
		Token:     cfg.Token,
		User:      cfg.User,
		Message:   n.Message,
		Title:     fmt.Sprintf("burpwatch %s", levelTitle(n.Level)),
		Timestamp: sentAt.Unix(),
	}

	// Adjust priority and sound based on level
	switch n.Level {
	case models.LevelError:
		req.Priority = cfg.ErrorPriority
		req.Sound = "falling"
		if req.Priority >= 1 {
			req.Sound = "siren"
		}
	case models.LevelWarning:
		req.Priority = 0
		req.Sound = "pushover"
	default:
		req.Priority = -1 // Low priority for successes and info
		req.Sound = "none"
	}

	// If priority is 2 (emergency), set retry and expire
	if req.Priority == 2 {
		req.Retry = int(cfg.RetryInterval.Seconds())
		req.Expire = int(cfg.ExpireTime.Seconds())
	}

	return p.sendNotification(ctx, req)
}

func (p *PushoverNotifier) sendNotification(ctx context.Context, req pushoverRequest) error {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal pushover request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", p.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", "burpwatch/1.0")

	slog.Debug("sending pushover notification",
		"title", req.Title,
		"priority", req.Priority)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send pushover notification: %w", err)
	}
	defer resp.Body.Close()

	var pushoverResp pushoverResponse
	if err := json.NewDecoder(resp.Body).Decode(&pushoverResp); err != nil {
		return fmt.Errorf("failed to decode pushover response: %w", err)
	}

	if pushoverResp.Status != 1 {
		return fmt.Errorf("pushover API error: %s", strings.Join(pushoverResp.Errors, ", "))
	}

	slog.Info("pushover notification sent successfully",
		"request_id", pushoverResp.Request,
		"receipt", pushoverResp.Receipt)

	return nil
}

func levelTitle(l models.Level) string {
	switch l {
	case models.LevelError:
		return "Error"
	case models.LevelWarning:
		return "Warning"
	case models.LevelSuccess:
		return "Success"
	default:
		return "Info"
	}
}

// RestoreFailedMessage describes a failed restore for operators.
func RestoreFailedMessage(r *models.Restore) string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("Restore of %s backup #%d failed\n", r.Client, r.Backup))
	if r.Server != "" {
		msg.WriteString(fmt.Sprintf("Server: %s\n", r.Server))
	}
	if r.TaskState != "" {
		msg.WriteString(fmt.Sprintf("Task state: %s\n", r.TaskState))
	}
	if r.ErrorMessage != "" {
		msg.WriteString(fmt.Sprintf("Error: %s\n", r.ErrorMessage))
	}
	if r.StartedAt != nil {
		duration := time.Since(*r.StartedAt)
		msg.WriteString(fmt.Sprintf("Duration: %s\n", duration.Round(time.Second)))
	}

	msg.WriteString(fmt.Sprintf("Restore ID: %s", r.ID))

	return msg.String()
}

// RestoreCompletedMessage describes a downloaded restore archive.
func RestoreCompletedMessage(r *models.Restore) string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("Restore of %s backup #%d is ready\n", r.Client, r.Backup))
	if r.LocalPath != "" {
		msg.WriteString(fmt.Sprintf("File: %s\n", r.LocalPath))
	}
	if r.Bytes > 0 {
		msg.WriteString(fmt.Sprintf("Size: %s\n", formatBytes(r.Bytes)))
	}
	if r.StartedAt != nil && r.CompletedAt != nil {
		duration := r.CompletedAt.Sub(*r.StartedAt)
		msg.WriteString(fmt.Sprintf("Duration: %s\n", duration.Round(time.Second)))
	}

	msg.WriteString(fmt.Sprintf("Restore ID: %s", r.ID))

	return msg.String()
}

func formatBytes(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}

	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
