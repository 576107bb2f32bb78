package service

import (
	"context"
	"sync"
	"time"

	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// SettlerStats are cumulative counters since start.
type SettlerStats struct {
	Queued    int64
	Dropped   int64
	Succeeded int64
	Failed    int64
}

// Settler runs best-effort settlement for granted claims on a pool of workers.
// Failures are logged and recorded; they never reach the claimant.
type Settler struct {
	ledger ports.LedgerService
	native ports.AssetTransferService
	events ports.SettlementRepository
	log    zerolog.Logger

	tasks   chan domain.SettlementTask
	workers int
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool

	queued    atomic.Int64
	dropped   atomic.Int64
	succeeded atomic.Int64
	failed    atomic.Int64
	now       func() time.Time
}

// NewSettler creates a settler. events may be nil, in which case outcomes are only logged.
func NewSettler(
	ledger ports.LedgerService,
	native ports.AssetTransferService,
	events ports.SettlementRepository,
	workers, queueSize int,
	log zerolog.Logger,
) *Settler {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Settler{
		ledger:  ledger,
		native:  native,
		events:  events,
		log:     log,
		tasks:   make(chan domain.SettlementTask, queueSize),
		workers: workers,
		now:     time.Now,
	}
}

// Start launches the workers.
func (s *Settler) Start() {
	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.run()
	}
	s.log.Info().Int("workers", s.workers).Int("queue_size", cap(s.tasks)).Msg("settler started")
}

// Stop stops accepting tasks, drains the queue and waits for the workers.
func (s *Settler) Stop() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.tasks)
	s.mu.Unlock()

	s.wg.Wait()
	s.log.Info().Msg("settler stopped")
}

// Dispatch queues task without blocking. It returns false if the queue is full or stopped.
func (s *Settler) Dispatch(task domain.SettlementTask) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		s.dropped.Inc()
		return false
	}

	select {
	case s.tasks <- task:
		s.queued.Inc()
		return true
	default:
		s.dropped.Inc()
		return false
	}
}

// Stats returns a snapshot of the counters.
func (s *Settler) Stats() SettlerStats {
	return SettlerStats{
		Queued:    s.queued.Load(),
		Dropped:   s.dropped.Load(),
		Succeeded: s.succeeded.Load(),
		Failed:    s.failed.Load(),
	}
}

func (s *Settler) run() {
	defer s.wg.Done()
	for task := range s.tasks {
		s.Settle(context.Background(), task)
	}
}

// Settle performs the ledger transfer and then the native release for task.
// Each step is attempted regardless of the other's outcome.
func (s *Settler) Settle(ctx context.Context, task domain.SettlementTask) domain.SettlementOutcome {
	var out domain.SettlementOutcome

	ref, err := s.ledger.Transfer(ctx, task.Beneficiary, task.LedgerAmount)
	out.Ledger = s.record(ctx, task, domain.SettlementStepLedger, ref, err)

	ref, err = s.native.Release(ctx, task.Owner, task.PayoutAddress)
	out.Native = s.record(ctx, task, domain.SettlementStepNative, ref, err)

	return out
}

func (s *Settler) record(ctx context.Context, task domain.SettlementTask, step domain.SettlementStep, ref string, stepErr error) domain.SettlementEvent {
	ev := domain.SettlementEvent{
		ID:          uuid.New(),
		Owner:       task.Owner,
		Beneficiary: task.Beneficiary,
		Step:        step,
		Status:      domain.SettlementStatusSucceeded,
		Reference:   ref,
		CreatedAt:   s.now(),
	}

	if stepErr != nil {
		ev.Status = domain.SettlementStatusFailed
		ev.Reference = ""
		ev.Error = stepErr.Error()
		s.failed.Inc()
		s.log.Warn().Err(stepErr).
			Str("owner", task.Owner.String()).
			Str("beneficiary", task.Beneficiary.String()).
			Str("step", string(step)).
			Msg("settlement step failed")
	} else {
		s.succeeded.Inc()
		s.log.Info().
			Str("owner", task.Owner.String()).
			Str("step", string(step)).
			Str("reference", ref).
			Msg("settlement step succeeded")
	}

	if s.events != nil {
		if err := s.events.Create(ctx, &ev); err != nil {
			s.log.Error().Err(err).Str("owner", task.Owner.String()).Msg("failed to persist settlement event")
		}
	}
	return ev
}
