package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"storefront/internal/domain"
)

type PurchaseClient struct {
	http                 *http.Client
	endpoint             string
	defaultUserID        int64
	defaultPaymentMethod string
}

type purchaseRequest struct {
	GameID        int64   `json:"game_id"`
	UserID        int64   `json:"user_id"`
	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
}

// Submit posts a queued purchase; any 2xx response counts as accepted.
func (c *PurchaseClient) Submit(ctx context.Context, purchase domain.PendingPurchase) error {
	body := purchaseRequest{
		GameID:        purchase.GameID,
		UserID:        c.defaultUserID,
		PaymentMethod: c.defaultPaymentMethod,
		Amount:        purchase.Price,
	}
	if purchase.UserID != nil {
		body.UserID = *purchase.UserID
	}
	if purchase.PaymentMethod != "" {
		body.PaymentMethod = purchase.PaymentMethod
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal purchase %q: %w", purchase.ID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request for purchase %q: %w", purchase.ID, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request for purchase %q: %w", purchase.ID, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d for purchase %q: %s", resp.StatusCode, purchase.ID, resp.Status)
	}
	return nil
}

func NewPurchaseClient(httpClient *http.Client, endpoint string, defaultUserID int64, defaultPaymentMethod string) *PurchaseClient {
	if defaultUserID <= 0 {
		defaultUserID = 1
	}
	if defaultPaymentMethod == "" {
		defaultPaymentMethod = "card"
	}
	return &PurchaseClient{
		http:                 httpClient,
		endpoint:             endpoint,
		defaultUserID:        defaultUserID,
		defaultPaymentMethod: defaultPaymentMethod,
	}
}

// HealthChecker reports the purchase backend as reachable when healthURL answers below 500.
type HealthChecker struct {
	http      *http.Client
	healthURL string
}

func (p *HealthChecker) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.healthURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}
	resp, err := p.http.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 500 {
		return fmt.Errorf("health check returned status code %d", resp.StatusCode)
	}
	return nil
}

func NewHealthChecker(httpClient *http.Client, healthURL string) *HealthChecker {
	return &HealthChecker{http: httpClient, healthURL: healthURL}
}
