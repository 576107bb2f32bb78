// Package bitcoin queries the Bitcoin network and encodes vault addresses.
package bitcoin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"inheritance-vault/config"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Params maps a configured network name to chain parameters.
func Params(network string) (*chaincfg.Params, error) {
	switch strings.ToLower(network) {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	}
	return nil, fmt.Errorf("unknown bitcoin network %q", network)
}

// Esplora implements ports.BitcoinNetwork against an Esplora REST API.
type Esplora struct {
	baseURL string
	params  *chaincfg.Params
	http    HTTPClient
}

// NewEsplora creates a network client. httpClient defaults to one with cfg.Timeout.
func NewEsplora(cfg config.BitcoinConfig, httpClient HTTPClient) (*Esplora, error) {
	params, err := Params(cfg.Network)
	if err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Esplora{
		baseURL: strings.TrimRight(cfg.EsploraURL, "/"),
		params:  params,
		http:    httpClient,
	}, nil
}

type addressStats struct {
	ChainStats struct {
		FundedTxoSum uint64 `json:"funded_txo_sum"`
		SpentTxoSum  uint64 `json:"spent_txo_sum"`
	} `json:"chain_stats"`
}

// Balance returns the confirmed balance of address in satoshi.
func (e *Esplora) Balance(ctx context.Context, address string) (uint64, error) {
	if _, err := DecodeAddress(address, e.params); err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/address/"+url.PathEscape(address), nil)
	if err != nil {
		return 0, fmt.Errorf("build balance request: %w", err)
	}

	resp, err := e.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("query balance: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("query balance: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var stats addressStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return 0, fmt.Errorf("decode balance: %w", err)
	}
	if stats.ChainStats.SpentTxoSum > stats.ChainStats.FundedTxoSum {
		return 0, nil
	}
	return stats.ChainStats.FundedTxoSum - stats.ChainStats.SpentTxoSum, nil
}

// VaultAddress encodes a secp256k1 public key as a P2WPKH address.
func (e *Esplora) VaultAddress(publicKey []byte) (string, error) {
	return P2WPKHAddress(publicKey, e.params)
}

// P2WPKHAddress encodes a compressed or uncompressed secp256k1 public key as a P2WPKH address.
func P2WPKHAddress(publicKey []byte, params *chaincfg.Params) (string, error) {
	pub, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return "", fmt.Errorf("parse public key: %w", err)
	}
	addr, err := btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(pub.SerializeCompressed()), params)
	if err != nil {
		return "", fmt.Errorf("encode p2wpkh: %w", err)
	}
	return addr.EncodeAddress(), nil
}

// DecodeAddress parses address and checks it belongs to params' network.
func DecodeAddress(address string, params *chaincfg.Params) (btcutil.Address, error) {
	addr, err := btcutil.DecodeAddress(strings.TrimSpace(address), params)
	if err != nil {
		return nil, fmt.Errorf("decode address: %w", err)
	}
	if !addr.IsForNet(params) {
		return nil, fmt.Errorf("address %s is not for %s", address, params.Name)
	}
	return addr, nil
}
