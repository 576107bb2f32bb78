package postgres

import (
	"context"
	"testing"
	"time"

	"inheritance-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettlementRepo(mock)
	ev := &domain.SettlementEvent{
		ID:          uuid.New(),
		Owner:       "owner-aaaa",
		Beneficiary: "heir-bbbb",
		Step:        domain.SettlementStepLedger,
		Status:      domain.SettlementStatusFailed,
		Error:       "ledger unreachable",
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectExec("INSERT INTO settlement_events").
		WithArgs(ev.ID, "owner-aaaa", "heir-bbbb", "LEDGER_TRANSFER", "FAILED", "", "ledger unreachable", ev.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), ev))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettlementRepo_ListByOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettlementRepo(mock)
	id1, id2 := uuid.New(), uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := pgxmock.NewRows([]string{"id", "owner", "beneficiary", "step", "status", "reference", "error", "created_at"}).
		AddRow(id1, "owner-aaaa", "heir-bbbb", "LEDGER_TRANSFER", "SUCCEEDED", "42", "", now).
		AddRow(id2, "owner-aaaa", "heir-bbbb", "NATIVE_TRANSFER", "FAILED", "", "not implemented", now)

	mock.ExpectQuery("SELECT .+ FROM settlement_events WHERE owner = \\$1 ORDER BY created_at").
		WithArgs("owner-aaaa").
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "owner-aaaa")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, id1, got[0].ID)
	assert.Equal(t, domain.SettlementStepLedger, got[0].Step)
	assert.Equal(t, "42", got[0].Reference)
	assert.Equal(t, domain.SettlementStatusFailed, got[1].Status)
	assert.Equal(t, domain.Identity("heir-bbbb"), got[1].Beneficiary)
	assert.NoError(t, mock.ExpectationsWereMet())
}
