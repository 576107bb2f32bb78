package keyderiv

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSeed = strings.Repeat("0123456789abcdef", 4)

func newTestDeriver(t *testing.T) *Local {
	t.Helper()
	l, err := NewLocal(testSeed, "dfx_test_key")
	require.NoError(t, err)
	return l
}

func path(id string) [][]byte { return [][]byte{[]byte(id)} }

func TestNewLocal_Validation(t *testing.T) {
	_, err := NewLocal("zz", "k")
	assert.Error(t, err)

	_, err = NewLocal("0011", "k")
	assert.ErrorContains(t, err, "at least 32 bytes")

	_, err = NewLocal(testSeed, "")
	assert.Error(t, err)
}

func TestGenerateSeed(t *testing.T) {
	s1, err := GenerateSeed()
	require.NoError(t, err)
	s2, err := GenerateSeed()
	require.NoError(t, err)
	assert.Len(t, s1, 64)
	assert.NotEqual(t, s1, s2)

	_, err = NewLocal(s1, "k")
	assert.NoError(t, err)
}

func TestPublicKey_DeterministicPerPath(t *testing.T) {
	l := newTestDeriver(t)
	ctx := context.Background()

	a1, err := l.PublicKey(ctx, path("owner-a"))
	require.NoError(t, err)
	a2, err := l.PublicKey(ctx, path("owner-a"))
	require.NoError(t, err)
	b, err := l.PublicKey(ctx, path("owner-b"))
	require.NoError(t, err)

	assert.Len(t, a1, btcec.PubKeyBytesLenCompressed)
	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, b)

	_, err = btcec.ParsePubKey(a1)
	assert.NoError(t, err)
}

func TestPublicKey_BoundToKeyName(t *testing.T) {
	ctx := context.Background()
	l1 := newTestDeriver(t)
	l2, err := NewLocal(testSeed, "key_1")
	require.NoError(t, err)

	p1, _ := l1.PublicKey(ctx, path("owner-a"))
	p2, _ := l2.PublicKey(ctx, path("owner-a"))
	assert.NotEqual(t, p1, p2)
}

func TestPublicKey_PathComponentsAreFramed(t *testing.T) {
	l := newTestDeriver(t)
	ctx := context.Background()

	joined, _ := l.PublicKey(ctx, [][]byte{[]byte("ab"), []byte("c")})
	split, _ := l.PublicKey(ctx, [][]byte{[]byte("a"), []byte("bc")})
	assert.NotEqual(t, joined, split)
}

func TestDeriveKey_UnwrapsToSameKeyForSamePath(t *testing.T) {
	l := newTestDeriver(t)
	ctx := context.Background()

	transport, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	tpub := transport.PubKey().SerializeCompressed()

	m1, err := l.DeriveKey(ctx, path("owner-a"), tpub)
	require.NoError(t, err)
	m2, err := l.DeriveKey(ctx, path("owner-a"), tpub)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(m1, m2), "each wrap uses a fresh ephemeral key")

	k1, err := Unwrap(transport, m1)
	require.NoError(t, err)
	k2, err := Unwrap(transport, m2)
	require.NoError(t, err)
	assert.Len(t, k1, keyLen)
	assert.Equal(t, k1, k2)

	other, err := l.DeriveKey(ctx, path("owner-b"), tpub)
	require.NoError(t, err)
	k3, err := Unwrap(transport, other)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)
}

func TestUnwrap_WrongTransportKeyFails(t *testing.T) {
	l := newTestDeriver(t)
	transport, _ := btcec.NewPrivateKey()
	intruder, _ := btcec.NewPrivateKey()

	m, err := l.DeriveKey(context.Background(), path("owner-a"), transport.PubKey().SerializeCompressed())
	require.NoError(t, err)

	_, err = Unwrap(intruder, m)
	assert.Error(t, err)

	_, err = Unwrap(transport, m[:10])
	assert.Error(t, err)
}

func TestDeriveKey_InvalidTransportKey(t *testing.T) {
	l := newTestDeriver(t)
	_, err := l.DeriveKey(context.Background(), path("owner-a"), []byte{0x01, 0x02})
	assert.ErrorContains(t, err, "transport public key")
}
