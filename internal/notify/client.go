package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/rewards"
)

// Client delivers payout notifications through the miniapp notification
// webhook. Delivery is best-effort: callers log failures and move on; a
// lost notification never affects a payout.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
	titler cases.Caser
}

// NewClient creates a notification client. An empty url disables
// delivery; NotifyPayout becomes a no-op.
func NewClient(url, apiKey string) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		http:   &http.Client{Timeout: requestTimeout},
		titler: cases.Title(language.English),
	}
}

type notification struct {
	FID     int64  `json:"fid,omitempty"`
	Address string `json:"address"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

// NotifyPayout tells one recipient they were paid
func (c *Client) NotifyPayout(ctx context.Context, recipient domain.EligibleRecipient, timeframe domain.Timeframe) error {
	if c.url == "" {
		return nil
	}

	name := strings.TrimSpace(recipient.DisplayName)
	if name == "" {
		name = shortAddress(recipient.Address)
	} else {
		name = c.titler.String(name)
	}

	n := notification{
		FID:     recipient.FID,
		Address: recipient.Address,
		Title:   "Rewards are in!",
		Body: fmt.Sprintf("Congrats %s! You ranked #%d on the %s leaderboard and earned %s USDC.",
			name, recipient.Rank, timeframe, rewards.FormatAmount(recipient.Amount)),
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("notification delivery failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
	}
	return nil
}

func shortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

const requestTimeout = 10 * time.Second
