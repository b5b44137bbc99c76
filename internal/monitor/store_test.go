package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fxmonitor/internal/domain"
)

func snapshotFor(code domain.CurrencyCode, builtAt time.Time) domain.RateSnapshot {
	return domain.RateSnapshot{
		Currency:   code,
		Window:     domain.Window48h,
		BankQuotes: map[string]*domain.QuotePair{"BOC": nil, "CMB": nil},
		BuiltAt:    builtAt,
	}
}

func TestSnapshotStore_PutAndLatest(t *testing.T) {
	store := NewSnapshotStore()

	_, ok := store.Latest(domain.EUR)
	require.False(t, ok)

	builtAt := time.Date(2024, 11, 15, 10, 0, 0, 0, time.UTC)
	require.True(t, store.Put(1, snapshotFor(domain.EUR, builtAt)))

	got, ok := store.Latest(domain.EUR)
	require.True(t, ok)
	require.Equal(t, domain.EUR, got.Currency)
	require.True(t, got.BuiltAt.Equal(builtAt))
}

func TestSnapshotStore_SupersededCycleIsFencedOut(t *testing.T) {
	store := NewSnapshotStore()

	newer := time.Date(2024, 11, 15, 10, 1, 0, 0, time.UTC)
	older := time.Date(2024, 11, 15, 10, 0, 0, 0, time.UTC)

	require.True(t, store.Put(2, snapshotFor(domain.USD, newer)))

	// a straggler from cycle 1 finishes late; it must not win
	require.False(t, store.Put(1, snapshotFor(domain.USD, older)))

	got, ok := store.Latest(domain.USD)
	require.True(t, ok)
	require.True(t, got.BuiltAt.Equal(newer))
}

func TestSnapshotStore_FencingIsPerCurrency(t *testing.T) {
	store := NewSnapshotStore()

	ts := time.Now().UTC()
	require.True(t, store.Put(5, snapshotFor(domain.EUR, ts)))

	// another currency has no write from cycle 5, cycle 3 may still publish it
	require.True(t, store.Put(3, snapshotFor(domain.GBP, ts)))
}
