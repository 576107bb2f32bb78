package service

import (
	"inheritance-vault/internal/core/domain"
	"inheritance-vault/pkg/apperror"
)

// AuthorizeClaim decides whether caller may claim the inheritance held in w at now (unix seconds).
// w is nil when the owner has no will. Checks run in order: existence, beneficiary, liveness.
func AuthorizeClaim(w *domain.Will, caller domain.Identity, now int64) error {
	if w == nil {
		return apperror.ErrNotFound("will")
	}
	if caller != w.Beneficiary {
		return apperror.ErrUnauthorized()
	}
	if !w.Liveness(now).IsExpired {
		return apperror.ErrStillAlive()
	}
	return nil
}

// AuthorizeKeyDerivation decides whether caller may derive key material scoped to owner.
// The owner always may, even before registering. The beneficiary may once the owner expired.
func AuthorizeKeyDerivation(w *domain.Will, caller, owner domain.Identity, now int64) error {
	if caller == owner {
		return nil
	}
	if w == nil {
		return apperror.ErrAccessDenied()
	}
	if caller == w.Beneficiary && w.Liveness(now).IsExpired {
		return nil
	}
	return apperror.ErrAccessDenied()
}
