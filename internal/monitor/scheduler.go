package monitor

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"fxmonitor/internal/domain"
	"fxmonitor/internal/metrics"
)

const defaultRefreshInterval = 10 * time.Second

// Scheduler drives periodic refresh cycles. Each tick is one independent
// cycle with its own execID and sequence number; singleton mode keeps
// cycles from overlapping when an upstream is slow.
type Scheduler struct {
	service         *Service
	store           *SnapshotStore
	met             *metrics.Metrics
	window          domain.WindowSpec
	refreshInterval time.Duration
	seq             atomic.Uint64
	// -----
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		seq := s.seq.Add(1)
		s.met.RefreshCyclesTotal.Inc()
		if refreshErr := RefreshWatchlist(jobCtx, execID, seq, s.service, s.store, s.window); refreshErr != nil {
			logrus.Errorf("Refresh cycle %s failed: %v", execID, refreshErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.refreshInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(service *Service, store *SnapshotStore, met *metrics.Metrics, window domain.WindowSpec, refreshInterval time.Duration) *Scheduler {
	if !window.Supported() {
		window = domain.Window48h
	}
	if refreshInterval <= 0 {
		refreshInterval = defaultRefreshInterval
	}
	return &Scheduler{
		service:         service,
		store:           store,
		met:             met,
		window:          window,
		refreshInterval: refreshInterval,
	}
}
