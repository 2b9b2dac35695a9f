package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// PaymentHTTPGateway moves funds from the marketplace balance over the
// external payment rail. Payments are never retried here.
type PaymentHTTPGateway struct {
	baseURL string
	client  *http.Client
}

func NewPaymentHTTPGateway(baseURL string, timeout time.Duration) *PaymentHTTPGateway {
	return &PaymentHTTPGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *PaymentHTTPGateway) Pay(ctx context.Context, recipient string, amount uint64) error {
	payload, err := json.Marshal(map[string]interface{}{
		"recipient": recipient,
		"amount":    amount,
	})
	if err != nil {
		return fmt.Errorf("encode payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/payments", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("payment request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("payment rejected: status %d", resp.StatusCode)
	}

	return nil
}
