package notifications

import (
	"sync"
	"time"

	"burpwatch/internal/models"
)

// Feed keeps the most recent notifications for the API.
type Feed struct {
	mu    sync.Mutex
	size  int
	items []models.Notification
	next  int
	full  bool
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = 50
	}
	return &Feed{
		size:  size,
		items: make([]models.Notification, size),
	}
}

// Add stores n, evicting the oldest entry when the feed is full.
func (f *Feed) Add(n models.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items[f.next] = n
	f.next = (f.next + 1) % f.size
	if f.next == 0 {
		f.full = true
	}
}

// List returns notifications newest first. Expired ones are skipped unless
// includeExpired is set.
func (f *Feed) List(now time.Time, includeExpired bool) []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := f.next
	if f.full {
		count = f.size
	}

	out := make([]models.Notification, 0, count)
	for i := 0; i < count; i++ {
		idx := (f.next - 1 - i + f.size) % f.size
		n := f.items[idx]
		if !includeExpired && n.Expired(now) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.full {
		return f.size
	}
	return f.next
}
