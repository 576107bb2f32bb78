// Package keyderiv is a single-node stand-in for the threshold key-derivation service.
// Keys are derived from a master seed with HKDF-SHA256 and bound to a derivation path.
package keyderiv

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const (
	seedLen     = 32
	keyLen      = 32
	maxAttempts = 16
)

// Local implements ports.KeyDerivationService.
type Local struct {
	seed    []byte
	keyName string
}

// NewLocal creates a deriver from a hex master seed of at least 32 bytes.
func NewLocal(seedHex, keyName string) (*Local, error) {
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("decode master seed: %w", err)
	}
	if len(seed) < seedLen {
		return nil, fmt.Errorf("master seed must be at least %d bytes, got %d", seedLen, len(seed))
	}
	if keyName == "" {
		return nil, errors.New("key name is required")
	}
	return &Local{seed: seed, keyName: keyName}, nil
}

// GenerateSeed returns a random hex master seed.
func GenerateSeed() (string, error) {
	b := make([]byte, seedLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// PublicKey returns the compressed secp256k1 public key for path.
func (l *Local) PublicKey(_ context.Context, path [][]byte) ([]byte, error) {
	priv, err := l.signingKey(path)
	if err != nil {
		return nil, err
	}
	return priv.PubKey().SerializeCompressed(), nil
}

// DeriveKey derives the symmetric key for path and wraps it for transportPublicKey.
// Layout: ephemeral compressed pubkey (33) | nonce (12) | sealed key (48).
func (l *Local) DeriveKey(_ context.Context, path [][]byte, transportPublicKey []byte) ([]byte, error) {
	transport, err := btcec.ParsePubKey(transportPublicKey)
	if err != nil {
		return nil, fmt.Errorf("parse transport public key: %w", err)
	}

	key := make([]byte, keyLen)
	if _, err := io.ReadFull(l.kdf("symmetric", path), key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	eph, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("ephemeral key: %w", err)
	}
	ephPub := eph.PubKey().SerializeCompressed()

	aead, err := wrapCipher(btcec.GenerateSharedSecret(eph, transport), ephPub)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}

	out := make([]byte, 0, len(ephPub)+len(nonce)+keyLen+aead.Overhead())
	out = append(out, ephPub...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, key, ephPub), nil
}

// Unwrap recovers the symmetric key from DeriveKey output using the transport private key.
func Unwrap(transport *btcec.PrivateKey, material []byte) ([]byte, error) {
	const pubLen = btcec.PubKeyBytesLenCompressed
	if len(material) < pubLen+chacha20poly1305.NonceSize+chacha20poly1305.Overhead {
		return nil, errors.New("key material too short")
	}
	ephPubBytes := material[:pubLen]
	ephPub, err := btcec.ParsePubKey(ephPubBytes)
	if err != nil {
		return nil, fmt.Errorf("parse ephemeral key: %w", err)
	}

	aead, err := wrapCipher(btcec.GenerateSharedSecret(transport, ephPub), ephPubBytes)
	if err != nil {
		return nil, err
	}
	nonce := material[pubLen : pubLen+aead.NonceSize()]
	return aead.Open(nil, nonce, material[pubLen+aead.NonceSize():], ephPubBytes)
}

func wrapCipher(shared, ephPub []byte) (cipher.AEAD, error) {
	wrapKey := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, shared, ephPub, []byte("ihv-transport")), wrapKey); err != nil {
		return nil, fmt.Errorf("derive wrap key: %w", err)
	}
	return chacha20poly1305.New(wrapKey)
}

func (l *Local) signingKey(path [][]byte) (*btcec.PrivateKey, error) {
	r := l.kdf("secp256k1", path)
	buf := make([]byte, keyLen)
	for i := 0; i < maxAttempts; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("derive signing key: %w", err)
		}
		var s btcec.ModNScalar
		if overflow := s.SetByteSlice(buf); overflow || s.IsZero() {
			continue
		}
		return btcec.PrivKeyFromScalar(&s), nil
	}
	return nil, errors.New("derive signing key: no valid scalar")
}

// kdf binds the output to the key name, the purpose and every path component.
func (l *Local) kdf(purpose string, path [][]byte) io.Reader {
	info := []byte(purpose)
	var n [4]byte
	for _, p := range path {
		binary.BigEndian.PutUint32(n[:], uint32(len(p)))
		info = append(info, n[:]...)
		info = append(info, p...)
	}
	return hkdf.New(sha256.New, l.seed, []byte(l.keyName), info)
}
