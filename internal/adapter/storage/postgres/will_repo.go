package postgres

import (
	"context"
	"errors"
	"fmt"

	"inheritance-vault/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const willColumns = `owner, beneficiary, payout_address, heartbeat_interval, last_active, encrypted_secret, claimed_at, revision, created_at, updated_at`

// WillRepo implements ports.WillRepository. Each method is a single statement.
type WillRepo struct {
	pool Pool
}

// NewWillRepo creates a new WillRepo.
func NewWillRepo(pool Pool) *WillRepo {
	return &WillRepo{pool: pool}
}

// Upsert creates or replaces the will for w.Owner, clears any claim and bumps the revision.
// created_at survives replacement.
func (r *WillRepo) Upsert(ctx context.Context, w *domain.Will) error {
	query := `INSERT INTO wills (owner, beneficiary, payout_address, heartbeat_interval, last_active, encrypted_secret, claimed_at, revision, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULL, 1, $7, $8)
		ON CONFLICT (owner) DO UPDATE SET
			beneficiary = EXCLUDED.beneficiary,
			payout_address = EXCLUDED.payout_address,
			heartbeat_interval = EXCLUDED.heartbeat_interval,
			last_active = EXCLUDED.last_active,
			encrypted_secret = EXCLUDED.encrypted_secret,
			claimed_at = NULL,
			revision = wills.revision + 1,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		string(w.Owner), string(w.Beneficiary), w.PayoutAddress, w.HeartbeatInterval,
		w.LastActive, w.EncryptedSecret, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert will: %w", err)
	}
	return nil
}

// Get fetches the will for owner.
func (r *WillRepo) Get(ctx context.Context, owner domain.Identity) (*domain.Will, error) {
	query := `SELECT ` + willColumns + ` FROM wills WHERE owner = $1`

	w, err := scanWill(r.pool.QueryRow(ctx, query, string(owner)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get will: %w", err)
	}
	return w, nil
}

// ListByBeneficiary returns every will naming beneficiary, ordered by owner.
func (r *WillRepo) ListByBeneficiary(ctx context.Context, beneficiary domain.Identity) ([]domain.Will, error) {
	query := `SELECT ` + willColumns + ` FROM wills WHERE beneficiary = $1 ORDER BY owner`

	rows, err := r.pool.Query(ctx, query, string(beneficiary))
	if err != nil {
		return nil, fmt.Errorf("list wills by beneficiary: %w", err)
	}
	defer rows.Close()

	wills := make([]domain.Will, 0)
	for rows.Next() {
		w, err := scanWill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan will: %w", err)
		}
		wills = append(wills, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wills: %w", err)
	}
	return wills, nil
}

// TouchLastActive advances last_active to at, never moving it backwards.
func (r *WillRepo) TouchLastActive(ctx context.Context, owner domain.Identity, at int64) (bool, error) {
	query := `UPDATE wills SET last_active = GREATEST(last_active, $2), updated_at = now() WHERE owner = $1`

	tag, err := r.pool.Exec(ctx, query, string(owner), at)
	if err != nil {
		return false, fmt.Errorf("touch last_active: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateSecret replaces the escrowed ciphertext.
func (r *WillRepo) UpdateSecret(ctx context.Context, owner domain.Identity, ciphertext []byte) (bool, error) {
	query := `UPDATE wills SET encrypted_secret = $2, updated_at = now() WHERE owner = $1`

	tag, err := r.pool.Exec(ctx, query, string(owner), ciphertext)
	if err != nil {
		return false, fmt.Errorf("update secret: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkClaimed sets claimed_at only while it is NULL and the row is still the revision and
// last_active the decision saw, so concurrent claims have exactly one winner and a will
// replaced mid-claim is never marked.
func (r *WillRepo) MarkClaimed(ctx context.Context, snap domain.ClaimSnapshot, at int64) (bool, error) {
	query := `UPDATE wills SET claimed_at = $2, updated_at = now() WHERE owner = $1 AND claimed_at IS NULL AND revision = $3 AND last_active = $4`

	tag, err := r.pool.Exec(ctx, query, string(snap.Owner), at, snap.Revision, snap.LastActive)
	if err != nil {
		return false, fmt.Errorf("mark claimed: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanWill(row pgx.Row) (*domain.Will, error) {
	var (
		w           domain.Will
		owner       string
		beneficiary string
	)
	err := row.Scan(
		&owner, &beneficiary, &w.PayoutAddress, &w.HeartbeatInterval,
		&w.LastActive, &w.EncryptedSecret, &w.ClaimedAt, &w.Revision, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	w.Owner = domain.Identity(owner)
	w.Beneficiary = domain.Identity(beneficiary)
	return &w, nil
}
