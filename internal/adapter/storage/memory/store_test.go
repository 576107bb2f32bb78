package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"inheritance-vault/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWill(owner, beneficiary domain.Identity, lastActive int64) *domain.Will {
	return &domain.Will{
		Owner:             owner,
		Beneficiary:       beneficiary,
		PayoutAddress:     "tb1qexample",
		HeartbeatInterval: 100,
		LastActive:        lastActive,
		CreatedAt:         time.Unix(lastActive, 0),
	}
}

func TestWillRepo_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewWillRepo()

	w := newWill("owner-1", "heir-1", 10)
	w.EncryptedSecret = []byte("cipher")
	require.NoError(t, r.Upsert(ctx, w))

	got, err := r.Get(ctx, "owner-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.Identity("heir-1"), got.Beneficiary)
	assert.Equal(t, []byte("cipher"), got.EncryptedSecret)

	// returned copies do not alias the store
	got.EncryptedSecret[0] = 'X'
	again, _ := r.Get(ctx, "owner-1")
	assert.Equal(t, []byte("cipher"), again.EncryptedSecret)

	// caller buffer does not alias either
	w.EncryptedSecret[0] = 'Y'
	again, _ = r.Get(ctx, "owner-1")
	assert.Equal(t, []byte("cipher"), again.EncryptedSecret)
}

func TestWillRepo_GetMissing(t *testing.T) {
	got, err := NewWillRepo().Get(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestWillRepo_UpsertClearsClaim(t *testing.T) {
	ctx := context.Background()
	r := NewWillRepo()
	require.NoError(t, r.Upsert(ctx, newWill("o", "b", 0)))

	first, _ := r.Get(ctx, "o")
	won, err := r.MarkClaimed(ctx, first.Snapshot(), 200)
	require.NoError(t, err)
	require.True(t, won)

	require.NoError(t, r.Upsert(ctx, newWill("o", "b2", 300)))
	got, _ := r.Get(ctx, "o")
	assert.Nil(t, got.ClaimedAt)
	assert.Greater(t, got.Revision, first.Revision)
	assert.Equal(t, domain.Identity("b2"), got.Beneficiary)
	assert.Equal(t, time.Unix(0, 0), got.CreatedAt)
}

func TestWillRepo_ListByBeneficiary(t *testing.T) {
	ctx := context.Background()
	r := NewWillRepo()
	require.NoError(t, r.Upsert(ctx, newWill("o2", "b", 0)))
	require.NoError(t, r.Upsert(ctx, newWill("o1", "b", 0)))
	require.NoError(t, r.Upsert(ctx, newWill("o3", "other", 0)))

	got, err := r.ListByBeneficiary(ctx, "b")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.Identity("o1"), got[0].Owner)
	assert.Equal(t, domain.Identity("o2"), got[1].Owner)

	none, err := r.ListByBeneficiary(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestWillRepo_TouchLastActive_NeverMovesBackward(t *testing.T) {
	ctx := context.Background()
	r := NewWillRepo()
	require.NoError(t, r.Upsert(ctx, newWill("o", "b", 50)))

	ok, err := r.TouchLastActive(ctx, "o", 80)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.TouchLastActive(ctx, "o", 60)
	require.NoError(t, err)
	assert.True(t, ok)

	got, _ := r.Get(ctx, "o")
	assert.Equal(t, int64(80), got.LastActive)

	ok, err = r.TouchLastActive(ctx, "missing", 80)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWillRepo_UpdateSecret(t *testing.T) {
	ctx := context.Background()
	r := NewWillRepo()
	require.NoError(t, r.Upsert(ctx, newWill("o", "b", 0)))

	ok, err := r.UpdateSecret(ctx, "o", []byte("new"))
	require.NoError(t, err)
	assert.True(t, ok)
	got, _ := r.Get(ctx, "o")
	assert.Equal(t, []byte("new"), got.EncryptedSecret)

	ok, err = r.UpdateSecret(ctx, "missing", []byte("x"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWillRepo_MarkClaimed_SingleWinnerUnderContention(t *testing.T) {
	ctx := context.Background()
	r := NewWillRepo()
	require.NoError(t, r.Upsert(ctx, newWill("o", "b", 0)))
	w, _ := r.Get(ctx, "o")
	snap := w.Snapshot()

	const callers = 50
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(at int64) {
			defer wg.Done()
			won, err := r.MarkClaimed(ctx, snap, at)
			assert.NoError(t, err)
			if won {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(int64(200 + i))
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	got, _ := r.Get(ctx, "o")
	require.NotNil(t, got.ClaimedAt)
	assert.Equal(t, domain.WillStateClaimed, got.State(1000))
}

func TestWillRepo_MarkClaimed_Missing(t *testing.T) {
	won, err := NewWillRepo().MarkClaimed(context.Background(), domain.ClaimSnapshot{Owner: "missing", Revision: 1}, 1)
	assert.NoError(t, err)
	assert.False(t, won)
}

func TestWillRepo_MarkClaimed_StaleSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("re-registered", func(t *testing.T) {
		r := NewWillRepo()
		require.NoError(t, r.Upsert(ctx, newWill("o", "b1", 0)))
		decided, _ := r.Get(ctx, "o")

		// Same last_active, new beneficiary: only the revision tells them apart.
		require.NoError(t, r.Upsert(ctx, newWill("o", "b2", 0)))

		won, err := r.MarkClaimed(ctx, decided.Snapshot(), 200)
		require.NoError(t, err)
		assert.False(t, won)

		got, _ := r.Get(ctx, "o")
		assert.Nil(t, got.ClaimedAt)
		assert.Equal(t, domain.Identity("b2"), got.Beneficiary)
	})

	t.Run("heartbeat", func(t *testing.T) {
		r := NewWillRepo()
		require.NoError(t, r.Upsert(ctx, newWill("o", "b", 0)))
		decided, _ := r.Get(ctx, "o")

		_, err := r.TouchLastActive(ctx, "o", 150)
		require.NoError(t, err)

		won, err := r.MarkClaimed(ctx, decided.Snapshot(), 200)
		require.NoError(t, err)
		assert.False(t, won)
	})
}

func TestWillRepo_Upsert_AssignsRevisions(t *testing.T) {
	ctx := context.Background()
	r := NewWillRepo()

	require.NoError(t, r.Upsert(ctx, newWill("o", "b", 0)))
	got, _ := r.Get(ctx, "o")
	assert.Equal(t, int64(1), got.Revision)

	stale := newWill("o", "b", 0)
	stale.Revision = 99
	require.NoError(t, r.Upsert(ctx, stale))
	got, _ = r.Get(ctx, "o")
	assert.Equal(t, int64(2), got.Revision, "caller-supplied revision is ignored")
}

func TestSettlementRepo_CreateAndList(t *testing.T) {
	ctx := context.Background()
	r := NewSettlementRepo()
	require.NoError(t, r.Create(ctx, &domain.SettlementEvent{Owner: "o", Step: domain.SettlementStepLedger}))
	require.NoError(t, r.Create(ctx, &domain.SettlementEvent{Owner: "o", Step: domain.SettlementStepNative}))
	require.NoError(t, r.Create(ctx, &domain.SettlementEvent{Owner: "x", Step: domain.SettlementStepLedger}))

	got, err := r.ListByOwner(ctx, "o")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.SettlementStepLedger, got[0].Step)
	assert.Equal(t, domain.SettlementStepNative, got[1].Step)
}

func TestAuditRepo_Create(t *testing.T) {
	r := NewAuditRepo()
	require.NoError(t, r.Create(context.Background(), &domain.AuditLog{Action: domain.AuditActionClaim}))
	logs := r.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, domain.AuditActionClaim, logs[0].Action)
}

func TestHealthCheck(t *testing.T) {
	h := NewHealthCheck()
	assert.NoError(t, h.Ping(context.Background()))
	assert.Equal(t, "memory", h.Name())
}
