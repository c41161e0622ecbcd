package burpui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff"
)

// Pinger is anything that can check burp-ui is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ConnectWithRetry pings burp-ui with exponential backoff until it answers,
// maxElapsed passes or ctx ends. burp-ui often starts after us when both run
// on the same host.
func ConnectWithRetry(ctx context.Context, p Pinger, initialInterval, maxElapsed time.Duration) error {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.MaxElapsedTime = maxElapsed
	if initialInterval > 0 {
		expBackoff.InitialInterval = initialInterval
	}

	attempt := 0
	operation := func() error {
		attempt++
		if err := p.Ping(ctx); err != nil {
			slog.Warn("burp-ui not reachable yet", "attempt", attempt, "error", err)
			return err
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(expBackoff, ctx)); err != nil {
		return fmt.Errorf("failed to reach burp-ui after %d attempts: %w", attempt, err)
	}

	slog.Info("connected to burp-ui", "attempts", attempt)
	return nil
}
