// Package memory is a process-local store for development and tests.
// Every method is a single critical section and returns copies.
package memory

import (
	"context"
	"sort"
	"sync"

	"inheritance-vault/internal/core/domain"
)

// WillRepo implements ports.WillRepository on a mutex-guarded map.
type WillRepo struct {
	mu    sync.RWMutex
	wills map[domain.Identity]*domain.Will
}

// NewWillRepo creates an empty will registry.
func NewWillRepo() *WillRepo {
	return &WillRepo{wills: make(map[domain.Identity]*domain.Will)}
}

// Upsert creates or replaces the will for w.Owner. Any prior claim is cleared
// and the revision moves past every earlier registration.
func (r *WillRepo) Upsert(_ context.Context, w *domain.Will) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := w.Clone()
	c.ClaimedAt = nil
	c.Revision = 1
	if prev, ok := r.wills[w.Owner]; ok {
		c.Revision = prev.Revision + 1
		if !prev.CreatedAt.IsZero() {
			c.CreatedAt = prev.CreatedAt
		}
	}
	r.wills[w.Owner] = c
	return nil
}

func (r *WillRepo) Get(_ context.Context, owner domain.Identity) (*domain.Will, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wills[owner]
	if !ok {
		return nil, nil
	}
	return w.Clone(), nil
}

// ListByBeneficiary returns wills naming beneficiary, ordered by owner.
func (r *WillRepo) ListByBeneficiary(_ context.Context, beneficiary domain.Identity) ([]domain.Will, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Will, 0)
	for _, w := range r.wills {
		if w.Beneficiary == beneficiary {
			out = append(out, *w.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Owner < out[j].Owner })
	return out, nil
}

func (r *WillRepo) TouchLastActive(_ context.Context, owner domain.Identity, at int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wills[owner]
	if !ok {
		return false, nil
	}
	if at > w.LastActive {
		w.LastActive = at
	}
	return true, nil
}

func (r *WillRepo) UpdateSecret(_ context.Context, owner domain.Identity, ciphertext []byte) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wills[owner]
	if !ok {
		return false, nil
	}
	w.EncryptedSecret = append([]byte(nil), ciphertext...)
	return true, nil
}

func (r *WillRepo) MarkClaimed(_ context.Context, snap domain.ClaimSnapshot, at int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wills[snap.Owner]
	if !ok || w.ClaimedAt != nil || !w.Matches(snap) {
		return false, nil
	}
	w.ClaimedAt = &at
	return true, nil
}

// SettlementRepo implements ports.SettlementRepository.
type SettlementRepo struct {
	mu     sync.RWMutex
	events map[domain.Identity][]domain.SettlementEvent
}

func NewSettlementRepo() *SettlementRepo {
	return &SettlementRepo{events: make(map[domain.Identity][]domain.SettlementEvent)}
}

func (r *SettlementRepo) Create(_ context.Context, ev *domain.SettlementEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[ev.Owner] = append(r.events[ev.Owner], *ev)
	return nil
}

// ListByOwner returns events in insertion order.
func (r *SettlementRepo) ListByOwner(_ context.Context, owner domain.Identity) ([]domain.SettlementEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SettlementEvent, len(r.events[owner]))
	copy(out, r.events[owner])
	return out, nil
}

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	mu   sync.Mutex
	logs []domain.AuditLog
}

func NewAuditRepo() *AuditRepo {
	return &AuditRepo{}
}

func (r *AuditRepo) Create(_ context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

// Logs returns a copy of all recorded entries.
func (r *AuditRepo) Logs() []domain.AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditLog, len(r.logs))
	copy(out, r.logs)
	return out
}

// HealthCheck implements ports.HealthChecker for the memory store.
type HealthCheck struct{}

func NewHealthCheck() *HealthCheck { return &HealthCheck{} }

func (HealthCheck) Ping(context.Context) error { return nil }

func (HealthCheck) Name() string { return "memory" }
