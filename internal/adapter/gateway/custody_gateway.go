package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vqhuy/nft-marketplace/internal/core/domain"
)

// CustodyHTTPGateway talks to the external asset registry. Both calls
// are issued exactly once: retrying a transfer here could double-move
// an asset, so retry policy stays with the marketplace caller.
type CustodyHTTPGateway struct {
	baseURL string
	client  *http.Client
}

func NewCustodyHTTPGateway(baseURL string, timeout time.Duration) *CustodyHTTPGateway {
	return &CustodyHTTPGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *CustodyHTTPGateway) OwnerOf(ctx context.Context, key domain.AssetKey) (string, error) {
	url := fmt.Sprintf("%s/assets/%s/%s/owner", g.baseURL, key.Contract, key.TokenID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build owner request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("owner request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("owner request: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Owner string `json:"owner"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode owner response: %w", err)
	}

	return body.Owner, nil
}

func (g *CustodyHTTPGateway) Transfer(ctx context.Context, key domain.AssetKey, from, to string) error {
	payload, err := json.Marshal(map[string]string{
		"contract": key.Contract,
		"token_id": key.TokenID,
		"from":     from,
		"to":       to,
	})
	if err != nil {
		return fmt.Errorf("encode transfer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/transfers", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build transfer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("transfer request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("transfer rejected: status %d", resp.StatusCode)
	}

	return nil
}
