package domain

import (
	"time"

	"github.com/google/uuid"
)

// SettlementStep identifies which external settlement system was invoked.
type SettlementStep string

const (
	SettlementStepLedger SettlementStep = "LEDGER_TRANSFER"
	SettlementStepNative SettlementStep = "NATIVE_TRANSFER"
)

// SettlementStatus is the outcome of one best-effort settlement attempt.
type SettlementStatus string

const (
	SettlementStatusSucceeded SettlementStatus = "SUCCEEDED"
	SettlementStatusFailed    SettlementStatus = "FAILED"
)

// SettlementTask is handed from the claim decision to the settlement workers.
// It is a snapshot taken at decision time; workers never re-read the will.
type SettlementTask struct {
	Owner         Identity
	Beneficiary   Identity
	PayoutAddress string
	LedgerAmount  uint64
	ClaimedAt     int64
}

// SettlementEvent records one settlement attempt for operators.
type SettlementEvent struct {
	ID          uuid.UUID        `json:"id"`
	Owner       Identity         `json:"owner"`
	Beneficiary Identity         `json:"beneficiary"`
	Step        SettlementStep   `json:"step"`
	Status      SettlementStatus `json:"status"`
	Reference   string           `json:"reference,omitempty"` // block index or tx id
	Error       string           `json:"error,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// SettlementOutcome aggregates both settlement steps of one claim.
type SettlementOutcome struct {
	Ledger SettlementEvent
	Native SettlementEvent
}
