package dto

// Byte slices travel as standard base64 strings.

// RegisterWillRequest is the request body for will registration. The caller becomes the owner.
type RegisterWillRequest struct {
	Beneficiary       string `json:"beneficiary" binding:"required,identity"`
	PayoutAddress     string `json:"payout_address" binding:"max=128"`
	HeartbeatInterval int64  `json:"heartbeat_interval" binding:"required"`
	EncryptedSecret   []byte `json:"encrypted_secret,omitempty"`
}

// UpdateSecretRequest replaces the escrowed ciphertext. An empty secret is allowed.
type UpdateSecretRequest struct {
	EncryptedSecret []byte `json:"encrypted_secret"`
}

// DeriveKeyRequest asks for key material scoped to an owner.
type DeriveKeyRequest struct {
	Owner              string `json:"owner" binding:"required,identity"`
	TransportPublicKey []byte `json:"transport_public_key" binding:"required"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// WillStatusResponse is the owner's view of their own will.
type WillStatusResponse struct {
	HeartbeatInterval int64 `json:"heartbeat_interval"`
	LastActive        int64 `json:"last_active"`
}

// InheritanceResponse is one entry of the beneficiary's inheritance list.
type InheritanceResponse struct {
	Owner             string `json:"owner"`
	PayoutAddress     string `json:"payout_address"`
	HeartbeatInterval int64  `json:"heartbeat_interval"`
	LastActive        int64  `json:"last_active"`
	TimeRemaining     int64  `json:"time_remaining"`
	IsExpired         bool   `json:"is_expired"`
	State             string `json:"state"`
}

// ClaimResponse carries the released secret.
type ClaimResponse struct {
	Secret           []byte `json:"secret"`
	SettlementQueued bool   `json:"settlement_queued"`
}

// DeriveKeyResponse carries key material wrapped for the transport key.
type DeriveKeyResponse struct {
	KeyMaterial []byte `json:"key_material"`
}

// VaultAddressResponse is the caller's derived vault key and address.
type VaultAddressResponse struct {
	PublicKey string `json:"public_key"`
	Address   string `json:"address"`
}

// VaultBalanceResponse is a confirmed on-chain balance.
type VaultBalanceResponse struct {
	Address     string `json:"address"`
	BalanceSats uint64 `json:"balance_sats"`
}

// SettlementEventResponse is one recorded settlement attempt.
type SettlementEventResponse struct {
	ID          string `json:"id"`
	Beneficiary string `json:"beneficiary"`
	Step        string `json:"step"`
	Status      string `json:"status"`
	Reference   string `json:"reference,omitempty"`
	Error       string `json:"error,omitempty"`
	CreatedAt   string `json:"created_at"`
}
