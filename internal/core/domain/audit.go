package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionRegisterWill AuditAction = "REGISTER_WILL"
	AuditActionHeartbeat    AuditAction = "HEARTBEAT"
	AuditActionUpdateSecret AuditAction = "UPDATE_SECRET"
	AuditActionClaim        AuditAction = "CLAIM_INHERITANCE"
	AuditActionDeriveKey    AuditAction = "DERIVE_KEY"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Caller       Identity    `json:"caller,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
