package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fxmonitor/internal/adapters"
	"fxmonitor/internal/domain"
)

func newIdleTestService() *Service {
	// providers are tolerant of any call in case a tick fires mid-test
	mockSeries := new(MockSeriesClient)
	mockSeries.On("FetchSeries", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	bank := &MockQuoteProvider{name: "BOC"}
	bank.On("FetchQuote", mock.Anything, mock.Anything).Return(domain.QuotePair{}, nil).Maybe()
	return NewService(mockSeries, []adapters.QuoteProvider{bank}, newTestMetrics(), time.Second)
}

func TestNewScheduler_Constructs(t *testing.T) {
	s := NewScheduler(newIdleTestService(), NewSnapshotStore(), newTestMetrics(), domain.Window48h, 10*time.Second)
	require.NotNil(t, s)
	require.Nil(t, s.sched)
}

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(newIdleTestService(), NewSnapshotStore(), newTestMetrics(), domain.WindowSpec("bogus"), 0)
	require.Equal(t, domain.Window48h, s.window)
	require.Equal(t, 10*time.Second, s.refreshInterval)
}

func TestScheduler_Shutdown_NoScheduler_ReturnsNil(t *testing.T) {
	s := NewScheduler(newIdleTestService(), NewSnapshotStore(), newTestMetrics(), domain.Window48h, 10*time.Second)
	require.NoError(t, s.Shutdown())
	require.Nil(t, s.sched)
}

func TestScheduler_Start_And_ContextCancel_ShutsDown(t *testing.T) {
	s := NewScheduler(newIdleTestService(), NewSnapshotStore(), newTestMetrics(), domain.Window48h, 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))
	require.NotNil(t, s.sched)

	cancel()

	// Wait until s.sched becomes nil (Shutdown sets it to nil)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.sched == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	require.Nil(t, s.sched, "expected scheduler to be shutdown after ctx cancel")
}

func TestScheduler_Shutdown_AfterStart_Idempotent(t *testing.T) {
	s := NewScheduler(newIdleTestService(), NewSnapshotStore(), newTestMetrics(), domain.Window48h, 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	require.NotNil(t, s.sched)

	require.NoError(t, s.Shutdown())
	require.Nil(t, s.sched)

	// second shutdown is a no-op
	require.NoError(t, s.Shutdown())
}

func TestScheduler_TicksPopulateStore(t *testing.T) {
	mockSeries := new(MockSeriesClient)
	mockSeries.On("FetchSeries", mock.Anything, mock.Anything, mock.Anything).
		Return(sampleSeries(7.10, 7.12), nil)
	bank := &MockQuoteProvider{name: "BOC"}
	bank.On("FetchQuote", mock.Anything, mock.Anything).
		Return(domain.QuotePair{SpotSell: "1", CashSell: "1"}, nil)
	svc := NewService(mockSeries, []adapters.QuoteProvider{bank}, newTestMetrics(), time.Second)

	store := NewSnapshotStore()
	s := NewScheduler(svc, store, newTestMetrics(), domain.Window48h, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Start(ctx))
	defer func() { _ = s.Shutdown() }()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := store.Latest(domain.JPY); ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	snap, ok := store.Latest(domain.JPY)
	require.True(t, ok, "expected refresh cycles to publish snapshots")
	require.Equal(t, domain.JPY, snap.Currency)
	require.Equal(t, domain.Window48h, snap.Window)
	require.Contains(t, snap.BankQuotes, "BOC")
}
