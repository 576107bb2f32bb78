package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"
	"inheritance-vault/pkg/apperror"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/rs/zerolog"
)

type keyService struct {
	wills   ports.WillRepository
	deriver ports.KeyDerivationService
	network ports.BitcoinNetwork
	clock   ports.Clock
	log     zerolog.Logger
}

// NewKeyService creates the key-derivation gate and vault query service.
func NewKeyService(
	wills ports.WillRepository,
	deriver ports.KeyDerivationService,
	network ports.BitcoinNetwork,
	clock ports.Clock,
	log zerolog.Logger,
) ports.KeyService {
	return &keyService{
		wills:   wills,
		deriver: deriver,
		network: network,
		clock:   clock,
		log:     log,
	}
}

func (s *keyService) DeriveAuthorizedKey(ctx context.Context, req ports.DeriveKeyRequest) ([]byte, error) {
	if req.Caller.IsAnonymous() || req.OwnerScope.IsAnonymous() {
		return nil, apperror.ErrAccessDenied()
	}
	if len(req.TransportPublicKey) == 0 {
		return nil, apperror.Validation("transport_public_key is required")
	}
	// A key the deriver cannot wrap to is the client's fault, not an outage.
	if _, err := btcec.ParsePubKey(req.TransportPublicKey); err != nil {
		return nil, apperror.Validation("transport_public_key is not a valid secp256k1 public key")
	}

	w, err := s.wills.Get(ctx, req.OwnerScope)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get will: %w", err))
	}
	if err := AuthorizeKeyDerivation(w, req.Caller, req.OwnerScope, s.clock.Now().Unix()); err != nil {
		s.log.Warn().
			Str("caller", req.Caller.String()).
			Str("owner", req.OwnerScope.String()).
			Msg("key derivation denied")
		return nil, err
	}

	key, err := s.deriver.DeriveKey(ctx, req.OwnerScope.DerivationPath(), req.TransportPublicKey)
	if err != nil {
		return nil, apperror.ErrDerivationUnavailable(err)
	}
	return key, nil
}

func (s *keyService) VaultAddress(ctx context.Context, caller domain.Identity) (*ports.VaultAddress, error) {
	if caller.IsAnonymous() {
		return nil, apperror.ErrAccessDenied()
	}

	pub, err := s.deriver.PublicKey(ctx, caller.DerivationPath())
	if err != nil {
		return nil, apperror.ErrDerivationUnavailable(err)
	}
	addr, err := s.network.VaultAddress(pub)
	if err != nil {
		return nil, apperror.ErrDerivationUnavailable(fmt.Errorf("encode vault address: %w", err))
	}
	return &ports.VaultAddress{
		PublicKeyHex: hex.EncodeToString(pub),
		Address:      addr,
	}, nil
}

func (s *keyService) VaultBalance(ctx context.Context, address string) (uint64, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return 0, apperror.Validation("address is required")
	}
	bal, err := s.network.Balance(ctx, address)
	if err != nil {
		return 0, apperror.ErrBitcoinUnavailable(err)
	}
	return bal, nil
}
