package ports

import (
	"context"

	"inheritance-vault/internal/core/domain"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks inheritance-vault/internal/core/ports WillRepository,SettlementRepository,AuditRepository,Clock,LedgerService,AssetTransferService,KeyDerivationService,BitcoinNetwork,SettlementDispatcher,TokenService,AuditService,WillService,ClaimService,KeyService

// WillRepository is the keyed will registry. Every method is atomic with respect to the others.
// Lookups return nil, nil when no will exists for the owner.
type WillRepository interface {
	// Upsert creates or replaces the will for w.Owner, clearing any prior claim.
	Upsert(ctx context.Context, w *domain.Will) error
	Get(ctx context.Context, owner domain.Identity) (*domain.Will, error)
	ListByBeneficiary(ctx context.Context, beneficiary domain.Identity) ([]domain.Will, error)
	// TouchLastActive moves last_active forward to at (never backward). Returns false if no will exists.
	TouchLastActive(ctx context.Context, owner domain.Identity, at int64) (bool, error)
	// UpdateSecret replaces the escrowed ciphertext. Returns false if no will exists.
	UpdateSecret(ctx context.Context, owner domain.Identity, ciphertext []byte) (bool, error)
	// MarkClaimed sets claimed_at only if unset and the stored will still matches snap
	// (no re-registration or heartbeat since the decision). Returns true if this call performed the transition.
	MarkClaimed(ctx context.Context, snap domain.ClaimSnapshot, at int64) (bool, error)
}

// SettlementRepository persists settlement attempts for operators.
type SettlementRepository interface {
	Create(ctx context.Context, event *domain.SettlementEvent) error
	ListByOwner(ctx context.Context, owner domain.Identity) ([]domain.SettlementEvent, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
