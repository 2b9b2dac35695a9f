package service

import (
	"sync"

	"github.com/vqhuy/nft-marketplace/internal/core/domain"
)

// FeeConfig holds the process-wide platform fee percentage. Updates
// are serialized against reads so every settlement computes its split
// from a single consistent snapshot.
type FeeConfig struct {
	mu         sync.RWMutex
	percentage uint64 // [0,100]
}

func NewFeeConfig(percentage uint64) (*FeeConfig, error) {
	if percentage > 100 {
		return nil, domain.ErrInvalidFeePercentage
	}
	return &FeeConfig{percentage: percentage}, nil
}

func (f *FeeConfig) Percentage() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.percentage
}

func (f *FeeConfig) Set(percentage uint64) error {
	if percentage > 100 {
		return domain.ErrInvalidFeePercentage
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.percentage = percentage

	return nil
}

// Split computes the fee and seller shares for a sale price using one
// snapshot of the percentage. fee + seller == price always holds.
func (f *FeeConfig) Split(price uint64) (sellerAmount, feeAmount uint64) {
	pct := f.Percentage()
	// Divide first so price*pct cannot overflow uint64. The remainder
	// term is at most 99*100 and recovers the exact floor.
	feeAmount = price/100*pct + price%100*pct/100
	sellerAmount = price - feeAmount
	return sellerAmount, feeAmount
}
