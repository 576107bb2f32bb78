package service

import (
	"context"
	"fmt"

	"inheritance-vault/internal/core/domain"
	"inheritance-vault/internal/core/ports"
	"inheritance-vault/pkg/apperror"

	"github.com/rs/zerolog"
)

type claimService struct {
	wills        ports.WillRepository
	events       ports.SettlementRepository
	dispatcher   ports.SettlementDispatcher
	clock        ports.Clock
	ledgerAmount uint64
	log          zerolog.Logger
}

// NewClaimService creates the claim orchestrator. Settlement is handed to dispatcher and never
// awaited, so the secret release does not depend on the ledger or the Bitcoin network.
func NewClaimService(
	wills ports.WillRepository,
	events ports.SettlementRepository,
	dispatcher ports.SettlementDispatcher,
	clock ports.Clock,
	ledgerAmount uint64,
	log zerolog.Logger,
) ports.ClaimService {
	return &claimService{
		wills:        wills,
		events:       events,
		dispatcher:   dispatcher,
		clock:        clock,
		ledgerAmount: ledgerAmount,
		log:          log,
	}
}

func (s *claimService) ClaimInheritance(ctx context.Context, caller, owner domain.Identity) (*ports.ClaimResult, error) {
	w, err := s.wills.Get(ctx, owner)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get will: %w", err))
	}

	now := s.clock.Now().Unix()
	if err := AuthorizeClaim(w, caller, now); err != nil {
		return nil, err
	}

	secret := w.EncryptedSecret
	if secret == nil {
		secret = []byte{}
	}
	result := &ports.ClaimResult{Secret: secret}

	won, err := s.wills.MarkClaimed(ctx, w.Snapshot(), now)
	if err != nil {
		// The grant already stands; only settlement is skipped.
		s.log.Error().Err(err).Str("owner", owner.String()).Msg("mark claimed failed, settlement skipped")
		return result, nil
	}
	if !won {
		// Already claimed, or the owner re-registered or checked in after the decision.
		s.log.Info().Str("owner", owner.String()).Str("beneficiary", caller.String()).Msg("claim not recorded, settlement skipped")
		return result, nil
	}

	task := domain.SettlementTask{
		Owner:         owner,
		Beneficiary:   w.Beneficiary,
		PayoutAddress: w.PayoutAddress,
		LedgerAmount:  s.ledgerAmount,
		ClaimedAt:     now,
	}
	result.SettlementQueued = s.dispatcher.Dispatch(task)
	if !result.SettlementQueued {
		s.log.Warn().Str("owner", owner.String()).Msg("settlement queue full, task dropped")
	}

	s.log.Info().
		Str("owner", owner.String()).
		Str("beneficiary", caller.String()).
		Bool("settlement_queued", result.SettlementQueued).
		Msg("inheritance claimed")
	return result, nil
}

func (s *claimService) SettlementHistory(ctx context.Context, caller, owner domain.Identity) ([]domain.SettlementEvent, error) {
	w, err := s.wills.Get(ctx, owner)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get will: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrNotFound("will")
	}
	if caller != w.Owner && caller != w.Beneficiary {
		return nil, apperror.ErrUnauthorized()
	}

	events, err := s.events.ListByOwner(ctx, owner)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list settlement events: %w", err))
	}
	return events, nil
}
