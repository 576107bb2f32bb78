// Package ledger transfers liquid assets to beneficiaries through the ledger's HTTP gateway.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"inheritance-vault/config"
	"inheritance-vault/internal/core/domain"
)

const (
	transferPath = "/transfer"

	HeaderTimestamp = "X-Timestamp"
	HeaderSignature = "X-Signature"
)

// ErrNotConfigured is returned by Transfer when no ledger endpoint is set.
var ErrNotConfigured = errors.New("ledger endpoint not configured")

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Signer signs the canonical form of an outbound request.
type Signer interface {
	Sign(secretKey string, payload string) string
	BuildCanonicalString(method, path string, timestamp int64, body string) string
}

// TransferRequest is the body posted to the ledger gateway.
type TransferRequest struct {
	TokenID string `json:"token_id"`
	To      string `json:"to"`
	Amount  uint64 `json:"amount"`
}

// TransferResponse is the ledger gateway acknowledgement.
type TransferResponse struct {
	BlockIndex uint64 `json:"block_index"`
	Error      string `json:"error,omitempty"`
}

// Client implements ports.LedgerService.
type Client struct {
	baseURL string
	tokenID string
	secret  string
	http    HTTPClient
	signer  Signer
	now     func() time.Time
}

// NewClient creates a ledger client. httpClient defaults to one with cfg.Timeout.
func NewClient(cfg config.LedgerConfig, signer Signer, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		tokenID: cfg.TokenID,
		secret:  cfg.SharedSecret,
		http:    httpClient,
		signer:  signer,
		now:     time.Now,
	}
}

// Transfer moves amount to the beneficiary account and returns the block index.
func (c *Client) Transfer(ctx context.Context, to domain.Identity, amount uint64) (string, error) {
	if c.baseURL == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(TransferRequest{TokenID: c.tokenID, To: to.String(), Amount: amount})
	if err != nil {
		return "", fmt.Errorf("marshal transfer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+transferPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build transfer request: %w", err)
	}
	ts := c.now().Unix()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(ts, 10))
	if c.secret != "" {
		canonical := c.signer.BuildCanonicalString(http.MethodPost, transferPath, ts, string(body))
		req.Header.Set(HeaderSignature, c.signer.Sign(c.secret, canonical))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("ledger transfer: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("read ledger response: %w", err)
	}

	var out TransferResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil && resp.StatusCode < 300 {
			return "", fmt.Errorf("decode ledger response: %w", err)
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if out.Error != "" {
			return "", fmt.Errorf("ledger rejected transfer (%d): %s", resp.StatusCode, out.Error)
		}
		return "", fmt.Errorf("ledger rejected transfer: status %d", resp.StatusCode)
	}

	return strconv.FormatUint(out.BlockIndex, 10), nil
}
