package models

import (
	"fmt"
	"strings"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelSuccess:
		return LevelSuccess, nil
	case LevelWarning, "warn":
		return LevelWarning, nil
	case LevelError:
		return LevelError, nil
	case LevelInfo, "":
		return LevelInfo, nil
	default:
		return "", fmt.Errorf("unknown notification level %q", s)
	}
}

// Severity orders levels so notifiers can filter on a minimum.
func (l Level) Severity() int {
	switch l {
	case LevelError:
		return 3
	case LevelWarning:
		return 2
	case LevelSuccess:
		return 1
	default:
		return 0
	}
}

type Notification struct {
	ID        int64      `json:"id"`
	Level     Level      `json:"level"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (n Notification) Expired(now time.Time) bool {
	return n.ExpiresAt != nil && !now.Before(*n.ExpiresAt)
}
