package testutil

import (
	"time"

	"burpwatch/internal/models"

	"github.com/google/uuid"
)

// CreateTestRestore creates a test restore with default values
func CreateTestRestore(overrides ...func(*models.Restore)) *models.Restore {
	req := models.RestoreRequest{
		Client: "web01",
		Backup: 42,
		Paths:  []string{"/etc/nginx"},
		Format: "zip",
	}
	restore := models.NewRestore(uuid.NewString(), req)
	restore.CreatedAt = time.Now().UTC().Truncate(time.Second)
	restore.UpdatedAt = restore.CreatedAt

	for _, override := range overrides {
		override(restore)
	}

	return restore
}

// CreateTestStatusEvent creates a transition observed at the given time
func CreateTestStatusEvent(running bool, at time.Time, overrides ...func(*models.StatusEvent)) *models.StatusEvent {
	event := &models.StatusEvent{
		Scope:      models.Scope{Kind: models.ScopeGlobal}.String(),
		Running:    running,
		ObservedAt: at,
	}
	if running {
		event.Phase = "backup"
		event.Clients = models.ClientList{"web01"}
	}

	for _, override := range overrides {
		override(event)
	}

	return event
}
