package service

import (
	"context"
	"sync"

	"github.com/vqhuy/nft-marketplace/internal/core/domain"
)

// Mock CustodyGateway
type mockCustody struct {
	mu      sync.Mutex
	holders map[domain.AssetKey]string
	failOn  func(key domain.AssetKey, from, to string) error
}

func newMockCustody() *mockCustody {
	return &mockCustody{holders: make(map[domain.AssetKey]string)}
}

func (m *mockCustody) setHolder(key domain.AssetKey, holder string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holders[key] = holder
}

func (m *mockCustody) holder(key domain.AssetKey) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.holders[key]
}

func (m *mockCustody) OwnerOf(ctx context.Context, key domain.AssetKey) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.holders[key], nil
}

func (m *mockCustody) Transfer(ctx context.Context, key domain.AssetKey, from, to string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failOn != nil {
		if err := m.failOn(key, from, to); err != nil {
			return err
		}
	}

	m.holders[key] = to
	return nil
}

// Mock PaymentGateway
type mockPayments struct {
	mu     sync.Mutex
	paid   map[string]uint64
	failOn func(recipient string, amount uint64) error
}

func newMockPayments() *mockPayments {
	return &mockPayments{paid: make(map[string]uint64)}
}

func (m *mockPayments) total(recipient string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paid[recipient]
}

func (m *mockPayments) Pay(ctx context.Context, recipient string, amount uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failOn != nil {
		if err := m.failOn(recipient, amount); err != nil {
			return err
		}
	}

	m.paid[recipient] += amount
	return nil
}

// Mock CacheRepository
type mockCache struct {
	mu       sync.Mutex
	reserved map[string]bool
}

func newMockCache() *mockCache {
	return &mockCache{reserved: make(map[string]bool)}
}

func (m *mockCache) SetIdempotency(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.reserved[key] {
		return false, nil
	}
	m.reserved[key] = true
	return true, nil
}

func (m *mockCache) ReleaseIdempotency(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.reserved, key)
	return nil
}
