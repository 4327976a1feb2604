package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
)

// Client talks to the external server-wallet API that executes transfers
// on behalf of the operator account. Each Submit call is at-most-once;
// the client never retries implicitly.
type Client struct {
	baseURL string
	apiKey  string
	asset   string
	chainID int64
	http    *http.Client
}

// NewClient creates a wallet API client
func NewClient(baseURL, apiKey, asset string, chainID int64) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		asset:   asset,
		chainID: chainID,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type transferRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Amount  int64  `json:"amount"`
	Asset   string `json:"asset"`
	ChainID int64  `json:"chain_id"`
	Memo    string `json:"memo,omitempty"`
}

type transferResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	Error     string `json:"error,omitempty"`
}

// Submit sends one transfer from -> to and returns the transfer reference
func (c *Client) Submit(ctx context.Context, from, to string, amount int64, memo string) (string, error) {
	req := transferRequest{
		From:    from,
		To:      to,
		Amount:  amount,
		Asset:   c.asset,
		ChainID: c.chainID,
		Memo:    memo,
	}

	var resp transferResponse
	if err := c.post(ctx, pathTransfers, req, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("transfer rejected: %s", resp.Error)
	}
	return resp.Reference, nil
}

type prepareGrantRequest struct {
	Grant  domain.SpendingGrant `json:"grant"`
	Amount int64                `json:"amount"`
}

type prepareGrantResponse struct {
	Calls []domain.GrantCall `json:"calls"`
	Error string             `json:"error,omitempty"`
}

// PrepareGrantCalls asks the wallet API for the executable calls the
// spending grant permits for the given amount
func (c *Client) PrepareGrantCalls(ctx context.Context, grant domain.SpendingGrant, amount int64) ([]domain.GrantCall, error) {
	req := prepareGrantRequest{Grant: grant, Amount: amount}

	var resp prepareGrantResponse
	if err := c.post(ctx, pathPrepareGrant, req, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("prepare grant calls: %s", resp.Error)
	}
	return resp.Calls, nil
}

type executeCallResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	Error     string `json:"error,omitempty"`
}

// ExecuteCall submits one prepared grant call for execution
func (c *Client) ExecuteCall(ctx context.Context, call domain.GrantCall) (string, error) {
	var resp executeCallResponse
	if err := c.post(ctx, pathExecuteCall, call, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("call execution rejected: %s", resp.Error)
	}
	return resp.Reference, nil
}

type balanceResponse struct {
	Balance int64  `json:"balance"`
	Error   string `json:"error,omitempty"`
}

// Balance reads an account's asset balance in smallest units
func (c *Client) Balance(ctx context.Context, address, asset string) (int64, error) {
	url := fmt.Sprintf("%s%s?address=%s&asset=%s&chain_id=%d", c.baseURL, pathBalance, address, asset, c.chainID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build balance request: %w", err)
	}
	c.setHeaders(httpReq)

	var resp balanceResponse
	if err := c.do(httpReq, &resp); err != nil {
		return 0, err
	}
	if resp.Error != "" {
		return 0, fmt.Errorf("balance read: %s", resp.Error)
	}
	return resp.Balance, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	c.setHeaders(httpReq)

	return c.do(httpReq, out)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("wallet API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read wallet API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("wallet API returned %d: %s", resp.StatusCode, truncate(string(body), 256))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode wallet API response: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

const (
	requestTimeout   = 30 * time.Second
	maxResponseBytes = 1 << 20
)

const (
	pathTransfers    = "/v1/transfers"
	pathPrepareGrant = "/v1/spend-permissions/prepare"
	pathExecuteCall  = "/v1/calls"
	pathBalance      = "/v1/balance"
)
