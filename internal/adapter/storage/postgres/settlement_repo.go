package postgres

import (
	"context"
	"fmt"

	"inheritance-vault/internal/core/domain"
)

// SettlementRepo implements ports.SettlementRepository.
type SettlementRepo struct {
	pool Pool
}

// NewSettlementRepo creates a new SettlementRepo.
func NewSettlementRepo(pool Pool) *SettlementRepo {
	return &SettlementRepo{pool: pool}
}

// Create inserts one settlement attempt.
func (r *SettlementRepo) Create(ctx context.Context, ev *domain.SettlementEvent) error {
	query := `INSERT INTO settlement_events (id, owner, beneficiary, step, status, reference, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		ev.ID, string(ev.Owner), string(ev.Beneficiary), string(ev.Step),
		string(ev.Status), ev.Reference, ev.Error, ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert settlement event: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's settlement attempts, oldest first.
func (r *SettlementRepo) ListByOwner(ctx context.Context, owner domain.Identity) ([]domain.SettlementEvent, error) {
	query := `SELECT id, owner, beneficiary, step, status, reference, error, created_at
		FROM settlement_events WHERE owner = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, string(owner))
	if err != nil {
		return nil, fmt.Errorf("list settlement events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.SettlementEvent, 0)
	for rows.Next() {
		var (
			ev                         domain.SettlementEvent
			evOwner, evBenef, step, st string
		)
		if err := rows.Scan(&ev.ID, &evOwner, &evBenef, &step, &st, &ev.Reference, &ev.Error, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan settlement event: %w", err)
		}
		ev.Owner = domain.Identity(evOwner)
		ev.Beneficiary = domain.Identity(evBenef)
		ev.Step = domain.SettlementStep(step)
		ev.Status = domain.SettlementStatus(st)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate settlement events: %w", err)
	}
	return events, nil
}
