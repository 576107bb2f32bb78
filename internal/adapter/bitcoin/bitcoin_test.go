package bitcoin

import (
	"context"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inheritance-vault/config"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// secp256k1 generator point, whose P2WPKH encodings are the BIP173 reference vectors.
const (
	genCompressed   = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	genUncompressed = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	genMainnet = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	genTestnet = "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestParams(t *testing.T) {
	p, err := Params("mainnet")
	require.NoError(t, err)
	assert.Equal(t, chaincfg.MainNetParams.Name, p.Name)

	p, err = Params("TestNet")
	require.NoError(t, err)
	assert.Equal(t, chaincfg.TestNet3Params.Name, p.Name)

	_, err = Params("signet")
	assert.Error(t, err)
}

func TestP2WPKHAddress(t *testing.T) {
	tests := []struct {
		name   string
		pubHex string
		params *chaincfg.Params
		want   string
	}{
		{"mainnet compressed", genCompressed, &chaincfg.MainNetParams, genMainnet},
		{"testnet compressed", genCompressed, &chaincfg.TestNet3Params, genTestnet},
		{"uncompressed is compressed first", genUncompressed, &chaincfg.MainNetParams, genMainnet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := P2WPKHAddress(mustHex(t, tt.pubHex), tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := P2WPKHAddress([]byte{0x02, 0x01}, &chaincfg.MainNetParams)
	assert.Error(t, err)
}

func TestDecodeAddress_WrongNetwork(t *testing.T) {
	_, err := DecodeAddress(genMainnet, &chaincfg.TestNet3Params)
	assert.Error(t, err)

	addr, err := DecodeAddress(genTestnet, &chaincfg.TestNet3Params)
	require.NoError(t, err)
	assert.Equal(t, genTestnet, addr.EncodeAddress())
}

func TestEsplora_Balance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/address/"+genTestnet, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"address":"` + genTestnet + `","chain_stats":{"funded_txo_sum":150000,"spent_txo_sum":50000}}`))
	}))
	defer srv.Close()

	e, err := NewEsplora(config.BitcoinConfig{Network: "testnet", EsploraURL: srv.URL + "/", Timeout: time.Second}, nil)
	require.NoError(t, err)

	bal, err := e.Balance(context.Background(), genTestnet)
	require.NoError(t, err)
	assert.Equal(t, uint64(100000), bal)
}

func TestEsplora_Balance_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	e, err := NewEsplora(config.BitcoinConfig{Network: "testnet", EsploraURL: srv.URL}, nil)
	require.NoError(t, err)

	_, err = e.Balance(context.Background(), genTestnet)
	assert.ErrorContains(t, err, "status 502")

	_, err = e.Balance(context.Background(), "not-an-address")
	assert.ErrorContains(t, err, "decode address")
}

func TestEsplora_VaultAddress(t *testing.T) {
	e, err := NewEsplora(config.BitcoinConfig{Network: "testnet"}, nil)
	require.NoError(t, err)

	got, err := e.VaultAddress(mustHex(t, genCompressed))
	require.NoError(t, err)
	assert.Equal(t, genTestnet, got)
}

func TestNewEsplora_UnknownNetwork(t *testing.T) {
	_, err := NewEsplora(config.BitcoinConfig{Network: "litecoin"}, nil)
	assert.Error(t, err)
}

func TestNativeTransfer_Release(t *testing.T) {
	n, err := NewNativeTransfer("testnet")
	require.NoError(t, err)

	_, err = n.Release(context.Background(), "owner", genTestnet)
	assert.ErrorIs(t, err, ErrNativeTransferUnsupported)

	_, err = n.Release(context.Background(), "owner", "garbage")
	assert.ErrorContains(t, err, "decode address")
	assert.NotErrorIs(t, err, ErrNativeTransferUnsupported)
}
