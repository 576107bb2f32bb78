package service

import (
	"context"
	"fmt"
	"strings"

	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"
	"inheritance-vault/pkg/apperror"

	"github.com/rs/zerolog"
)

const maxPayoutAddressLen = 128

type willService struct {
	wills ports.WillRepository
	clock ports.Clock
	log   zerolog.Logger
}

// NewWillService creates the registry, liveness and escrow service.
func NewWillService(wills ports.WillRepository, clock ports.Clock, log zerolog.Logger) ports.WillService {
	return &willService{wills: wills, clock: clock, log: log}
}

func (s *willService) RegisterWill(ctx context.Context, req ports.RegisterWillRequest) error {
	if err := validateRegistration(req); err != nil {
		return err
	}

	now := s.clock.Now()
	w := &domain.Will{
		Owner:             req.Caller,
		Beneficiary:       req.Beneficiary,
		PayoutAddress:     strings.TrimSpace(req.PayoutAddress),
		HeartbeatInterval: req.HeartbeatInterval,
		LastActive:        now.Unix(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if len(req.EncryptedSecret) > 0 {
		w.EncryptedSecret = append([]byte(nil), req.EncryptedSecret...)
	}

	if err := s.wills.Upsert(ctx, w); err != nil {
		return apperror.InternalError(fmt.Errorf("upsert will: %w", err))
	}

	s.log.Info().
		Str("owner", req.Caller.String()).
		Str("beneficiary", req.Beneficiary.String()).
		Int64("heartbeat_interval", req.HeartbeatInterval).
		Bool("has_secret", w.HasSecret()).
		Msg("will registered")
	return nil
}

func validateRegistration(req ports.RegisterWillRequest) error {
	switch {
	case req.Caller.IsAnonymous():
		return apperror.Validation("anonymous callers cannot register a will")
	case req.Beneficiary.IsAnonymous():
		return apperror.Validation("beneficiary is required")
	case req.Beneficiary == req.Caller:
		return apperror.Validation("beneficiary must differ from owner")
	case req.HeartbeatInterval <= 0:
		return apperror.Validation("heartbeat_interval must be positive")
	case len(req.PayoutAddress) > maxPayoutAddressLen:
		return apperror.Validation("payout_address too long")
	}
	return nil
}

func (s *willService) Heartbeat(ctx context.Context, caller domain.Identity) error {
	ok, err := s.wills.TouchLastActive(ctx, caller, s.clock.Now().Unix())
	if err != nil {
		return apperror.InternalError(fmt.Errorf("touch last_active: %w", err))
	}
	if !ok {
		return apperror.ErrNoWill()
	}
	return nil
}

func (s *willService) UpdateSecret(ctx context.Context, caller domain.Identity, ciphertext []byte) error {
	ok, err := s.wills.UpdateSecret(ctx, caller, ciphertext)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("update secret: %w", err))
	}
	if !ok {
		return apperror.ErrNoWill()
	}
	s.log.Info().Str("owner", caller.String()).Int("size", len(ciphertext)).Msg("secret updated")
	return nil
}

func (s *willService) GetWillStatus(ctx context.Context, caller domain.Identity) (*ports.WillStatus, error) {
	w, err := s.wills.Get(ctx, caller)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get will: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrNoWill()
	}
	return &ports.WillStatus{
		HeartbeatInterval: w.HeartbeatInterval,
		LastActive:        w.LastActive,
	}, nil
}

func (s *willService) ListMyInheritances(ctx context.Context, caller domain.Identity) ([]ports.InheritanceInfo, error) {
	wills, err := s.wills.ListByBeneficiary(ctx, caller)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list by beneficiary: %w", err))
	}

	now := s.clock.Now().Unix()
	out := make([]ports.InheritanceInfo, 0, len(wills))
	for i := range wills {
		w := &wills[i]
		lv := w.Liveness(now)
		out = append(out, ports.InheritanceInfo{
			Owner:             w.Owner,
			PayoutAddress:     w.PayoutAddress,
			HeartbeatInterval: w.HeartbeatInterval,
			LastActive:        w.LastActive,
			TimeRemaining:     lv.TimeRemaining,
			IsExpired:         lv.IsExpired,
			State:             w.State(now),
		})
	}
	return out, nil
}
