package domain

import "time"

// WillState is the lifecycle state of a will, derived from stored fields and the current time.
type WillState string

const (
	WillStateActive  WillState = "ACTIVE"
	WillStateExpired WillState = "EXPIRED"
	WillStateClaimed WillState = "CLAIMED"
)

// Will is the per-owner dead man's switch record.
type Will struct {
	Owner             Identity  `json:"owner"`
	Beneficiary       Identity  `json:"beneficiary"`
	PayoutAddress     string    `json:"payout_address"`
	HeartbeatInterval int64     `json:"heartbeat_interval"` // seconds
	LastActive        int64     `json:"last_active"`        // unix seconds
	EncryptedSecret   []byte    `json:"-"`                  // opaque ciphertext, never exposed raw
	ClaimedAt         *int64    `json:"claimed_at,omitempty"`
	Revision          int64     `json:"-"` // bumped by the store on every registration
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ClaimSnapshot pins the will a claim decision was made on. The claimed
// transition only applies while the stored will still matches it.
type ClaimSnapshot struct {
	Owner      Identity
	Revision   int64
	LastActive int64
}

// Snapshot returns the claim snapshot of w.
func (w *Will) Snapshot() ClaimSnapshot {
	return ClaimSnapshot{Owner: w.Owner, Revision: w.Revision, LastActive: w.LastActive}
}

// Matches reports whether w is still the will snap was taken from.
func (w *Will) Matches(snap ClaimSnapshot) bool {
	return w.Owner == snap.Owner && w.Revision == snap.Revision && w.LastActive == snap.LastActive
}

// Liveness is the computed dead/alive status of a will at a point in time.
type Liveness struct {
	Elapsed       int64 `json:"elapsed"`
	TimeRemaining int64 `json:"time_remaining"`
	IsExpired     bool  `json:"is_expired"`
}

// EvaluateLiveness computes liveness from the last signal, the allowed silence and now (all seconds).
// The owner is alive at the boundary elapsed == interval. A clock behind lastActive counts as zero elapsed.
func EvaluateLiveness(lastActive, interval, now int64) Liveness {
	elapsed := now - lastActive
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > interval {
		return Liveness{Elapsed: elapsed, TimeRemaining: 0, IsExpired: true}
	}
	return Liveness{Elapsed: elapsed, TimeRemaining: interval - elapsed}
}

// Liveness evaluates the will at now.
func (w *Will) Liveness(now int64) Liveness {
	return EvaluateLiveness(w.LastActive, w.HeartbeatInterval, now)
}

// State returns the lifecycle state at now.
func (w *Will) State(now int64) WillState {
	if w.ClaimedAt != nil {
		return WillStateClaimed
	}
	if w.Liveness(now).IsExpired {
		return WillStateExpired
	}
	return WillStateActive
}

// HasSecret reports whether the owner escrowed a ciphertext.
func (w *Will) HasSecret() bool {
	return len(w.EncryptedSecret) > 0
}

// Clone returns a deep copy so callers never share the escrow buffer.
func (w *Will) Clone() *Will {
	c := *w
	if w.EncryptedSecret != nil {
		c.EncryptedSecret = append([]byte(nil), w.EncryptedSecret...)
	}
	if w.ClaimedAt != nil {
		at := *w.ClaimedAt
		c.ClaimedAt = &at
	}
	return &c
}
