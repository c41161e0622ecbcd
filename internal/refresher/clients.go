package refresher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"burpwatch/internal/clock"
	"burpwatch/internal/interfaces"

	"golang.org/x/sync/singleflight"
)

// ClientsSnapshot is the last fetched list of clients running a backup.
type ClientsSnapshot struct {
	Server    string     `json:"server,omitempty"`
	Clients   []string   `json:"clients"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ClientsView keeps the list of running clients current.
type ClientsView struct {
	fetcher interfaces.RunningClientsFetcher
	server  string
	clock   clock.Clock

	mu        sync.RWMutex
	clients   []string
	updatedAt time.Time

	group singleflight.Group
}

func NewClientsView(fetcher interfaces.RunningClientsFetcher, server string, clk clock.Clock) *ClientsView {
	if clk == nil {
		clk = clock.Real()
	}
	return &ClientsView{
		fetcher: fetcher,
		server:  server,
		clock:   clk,
	}
}

// Refresh re-fetches the list. Concurrent calls share one request. On error
// the previous list is kept.
func (v *ClientsView) Refresh(ctx context.Context) error {
	_, err, _ := v.group.Do("refresh", func() (interface{}, error) {
		clients, err := v.fetcher.RunningClients(ctx, v.server)
		if err != nil {
			return nil, fmt.Errorf("failed to refresh running clients: %w", err)
		}

		v.mu.Lock()
		defer v.mu.Unlock()
		v.clients = append([]string{}, clients...)
		v.updatedAt = v.clock.Now()
		return nil, nil
	})
	return err
}

// Snapshot returns a copy of the current list. UpdatedAt is nil until the
// first successful refresh.
func (v *ClientsView) Snapshot() ClientsSnapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()

	snap := ClientsSnapshot{
		Server:  v.server,
		Clients: append([]string{}, v.clients...),
	}
	if !v.updatedAt.IsZero() {
		at := v.updatedAt
		snap.UpdatedAt = &at
	}
	return snap
}
