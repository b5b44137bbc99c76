package monitor

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"fxmonitor/internal/domain"
)

// RefreshWatchlist runs one refresh cycle: it builds a fresh snapshot for
// every monitored currency and publishes each into the store. The cycle
// stops as soon as its context is canceled; already-built snapshots from a
// superseded cycle are fenced out by the store.
func RefreshWatchlist(ctx context.Context, execID string, seq uint64, svc *Service, store *SnapshotStore, window domain.WindowSpec) error {
	for _, currency := range domain.SupportedCurrencies() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cycle abandoned: %w", err)
		}

		snap, err := svc.BuildSnapshot(ctx, currency, window)
		if err != nil {
			// The watchlist is the fixed supported set, so this is a
			// configuration error worth failing the cycle over.
			return fmt.Errorf("failed to build snapshot for %s: %w", currency, err)
		}

		if !store.Put(seq, snap) {
			logrus.Warnf("Dropping snapshot for %s: cycle %s was superseded", currency, execID)
		}
	}

	logrus.Infof("Refresh cycle finished for %d currencies; execID: %s", len(domain.SupportedCurrencies()), execID)
	return nil
}
