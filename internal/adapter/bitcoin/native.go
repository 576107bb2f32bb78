package bitcoin

import (
	"context"
	"errors"

	"inheritance-vault/internal/core/domain"

	"github.com/btcsuite/btcd/chaincfg"
)

// ErrNativeTransferUnsupported is returned for every release. UTXO selection, signing and broadcast
// are not implemented.
var ErrNativeTransferUnsupported = errors.New("native bitcoin transfer not implemented")

// NativeTransfer implements ports.AssetTransferService.
type NativeTransfer struct {
	params *chaincfg.Params
}

// NewNativeTransfer creates the native release adapter for network.
func NewNativeTransfer(network string) (*NativeTransfer, error) {
	params, err := Params(network)
	if err != nil {
		return nil, err
	}
	return &NativeTransfer{params: params}, nil
}

// Release validates the payout address and then fails with ErrNativeTransferUnsupported.
func (n *NativeTransfer) Release(_ context.Context, _ domain.Identity, payoutAddress string) (string, error) {
	if _, err := DecodeAddress(payoutAddress, n.params); err != nil {
		return "", err
	}
	return "", ErrNativeTransferUnsupported
}
