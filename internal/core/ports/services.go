package ports

import (
	"context"
	"time"

	"inheritance-vault/internal/core/domain"
)

// --- Collaborators ---

// Clock is the trusted time source. Neither owners nor beneficiaries can influence it.
type Clock interface {
	Now() time.Time
}

// LedgerService moves liquid assets to a beneficiary account.
type LedgerService interface {
	// Transfer returns the ledger block index of the transfer.
	Transfer(ctx context.Context, to domain.Identity, amount uint64) (string, error)
}

// AssetTransferService releases native on-chain assets to a payout address.
type AssetTransferService interface {
	// Release returns the broadcast transaction id.
	Release(ctx context.Context, owner domain.Identity, payoutAddress string) (string, error)
}

// KeyDerivationService is the threshold key-derivation collaborator.
type KeyDerivationService interface {
	PublicKey(ctx context.Context, derivationPath [][]byte) ([]byte, error)
	DeriveKey(ctx context.Context, derivationPath [][]byte, transportPublicKey []byte) ([]byte, error)
}

// BitcoinNetwork queries the Bitcoin network.
type BitcoinNetwork interface {
	// Balance returns the confirmed balance of address in satoshi.
	Balance(ctx context.Context, address string) (uint64, error)
	// VaultAddress encodes a public key as a payment address on the configured network.
	VaultAddress(publicKey []byte) (string, error)
}

// SettlementDispatcher accepts settlement tasks without blocking the caller.
type SettlementDispatcher interface {
	// Dispatch returns false if the task could not be queued.
	Dispatch(task domain.SettlementTask) bool
}

// TokenService validates caller identity tokens issued by the hosting environment.
type TokenService interface {
	Generate(caller domain.Identity) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Caller domain.Identity
}

// AuditService records audited actions (fire-and-forget).
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Service Ports (Business Logic) ---

// WillService covers registry, liveness and escrow operations exposed to callers.
type WillService interface {
	RegisterWill(ctx context.Context, req RegisterWillRequest) error
	Heartbeat(ctx context.Context, caller domain.Identity) error
	UpdateSecret(ctx context.Context, caller domain.Identity, ciphertext []byte) error
	GetWillStatus(ctx context.Context, caller domain.Identity) (*WillStatus, error)
	ListMyInheritances(ctx context.Context, caller domain.Identity) ([]InheritanceInfo, error)
}

// RegisterWillRequest holds validated input for will registration. Caller becomes the owner.
type RegisterWillRequest struct {
	Caller            domain.Identity
	Beneficiary       domain.Identity
	PayoutAddress     string
	HeartbeatInterval int64
	EncryptedSecret   []byte
}

// WillStatus is the owner's view of their own will.
type WillStatus struct {
	HeartbeatInterval int64
	LastActive        int64
}

// InheritanceInfo is the beneficiary's view of a will naming them.
type InheritanceInfo struct {
	Owner             domain.Identity
	PayoutAddress     string
	HeartbeatInterval int64
	LastActive        int64
	TimeRemaining     int64
	IsExpired         bool
	State             domain.WillState
}

// ClaimService releases the escrowed secret to an authorized beneficiary.
type ClaimService interface {
	ClaimInheritance(ctx context.Context, caller, owner domain.Identity) (*ClaimResult, error)
	// SettlementHistory lists recorded settlement attempts for owner. Only the owner or the beneficiary may read it.
	SettlementHistory(ctx context.Context, caller, owner domain.Identity) ([]domain.SettlementEvent, error)
}

// ClaimResult is returned for every granted claim.
type ClaimResult struct {
	Secret []byte
	// SettlementQueued is true only for the claim that moved the will to CLAIMED.
	SettlementQueued bool
}

// KeyService gates key-derivation requests.
type KeyService interface {
	DeriveAuthorizedKey(ctx context.Context, req DeriveKeyRequest) ([]byte, error)
	VaultAddress(ctx context.Context, caller domain.Identity) (*VaultAddress, error)
	VaultBalance(ctx context.Context, address string) (uint64, error)
}

// DeriveKeyRequest scopes a derivation to an owner.
type DeriveKeyRequest struct {
	Caller             domain.Identity
	OwnerScope         domain.Identity
	TransportPublicKey []byte
}

// VaultAddress is the owner's derived vault key and address.
type VaultAddress struct {
	PublicKeyHex string
	Address      string
}
