package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"inheritance-vault/config"
	"inheritance-vault/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "ledger-shared-secret"

func newTestClient(baseURL string) *Client {
	c := NewClient(config.LedgerConfig{
		BaseURL:      baseURL,
		TokenID:      "mxzaz-hqaaa-aaaar-qaada-cai",
		SharedSecret: testSecret,
		Timeout:      2 * time.Second,
	}, service.NewHMACSignatureService(), nil)
	c.now = func() time.Time { return time.Unix(1_700_000_000, 0) }
	return c
}

func TestClient_Transfer_SignedRequest(t *testing.T) {
	sig := service.NewHMACSignatureService()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transfer", r.URL.Path)
		assert.Equal(t, "1700000000", r.Header.Get(HeaderTimestamp))

		body, _ := io.ReadAll(r.Body)
		ts, _ := strconv.ParseInt(r.Header.Get(HeaderTimestamp), 10, 64)
		canonical := sig.BuildCanonicalString(r.Method, r.URL.Path, ts, string(body))
		assert.Equal(t, sig.Sign(testSecret, canonical), r.Header.Get(HeaderSignature))

		var req TransferRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "heir-bbbb", req.To)
		assert.Equal(t, uint64(1000), req.Amount)
		assert.Equal(t, "mxzaz-hqaaa-aaaar-qaada-cai", req.TokenID)

		_ = json.NewEncoder(w).Encode(TransferResponse{BlockIndex: 4242})
	}))
	defer srv.Close()

	ref, err := newTestClient(srv.URL).Transfer(context.Background(), "heir-bbbb", 1000)
	require.NoError(t, err)
	assert.Equal(t, "4242", ref)
}

func TestClient_Transfer_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(TransferResponse{Error: "insufficient funds"})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Transfer(context.Background(), "heir-bbbb", 1000)
	assert.ErrorContains(t, err, "insufficient funds")
}

func TestClient_Transfer_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Transfer(context.Background(), "heir-bbbb", 1000)
	assert.ErrorContains(t, err, "status 502")
}

func TestClient_Transfer_NotConfigured(t *testing.T) {
	_, err := newTestClient("").Transfer(context.Background(), "heir-bbbb", 1000)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

type failingHTTPClient struct{}

func (failingHTTPClient) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestClient_Transfer_Unreachable(t *testing.T) {
	c := NewClient(config.LedgerConfig{BaseURL: "http://ledger.invalid"}, service.NewHMACSignatureService(), failingHTTPClient{})

	_, err := c.Transfer(context.Background(), "heir-bbbb", 1000)
	assert.ErrorContains(t, err, "connection refused")
}
