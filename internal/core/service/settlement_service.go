package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vqhuy/nft-marketplace/internal/core/access"
	"github.com/vqhuy/nft-marketplace/internal/core/domain"
	"github.com/vqhuy/nft-marketplace/internal/core/registry"
	"github.com/vqhuy/nft-marketplace/internal/event"
	"github.com/vqhuy/nft-marketplace/internal/port"
)

const idempotencyKeyPrefix = "purchase:"

// SettlementService executes purchases: it clears the listing before
// any external call so the same key cannot be sold twice, moves
// custody to the buyer, and splits the price between seller and fee
// recipient. Any gateway failure triggers compensation that puts the
// listing (and custody, if it moved) back exactly as they were.
type SettlementService struct {
	registry      *registry.Registry
	custody       port.CustodyGateway
	payments      port.PaymentGateway
	cache         port.CacheRepository
	access        *access.Controller
	fees          *FeeConfig
	events        *event.Manager
	marketAccount string
}

func NewSettlementService(
	reg *registry.Registry,
	custody port.CustodyGateway,
	payments port.PaymentGateway,
	cache port.CacheRepository,
	accessCtl *access.Controller,
	fees *FeeConfig,
	events *event.Manager,
	marketAccount string,
) *SettlementService {
	return &SettlementService{
		registry:      reg,
		custody:       custody,
		payments:      payments,
		cache:         cache,
		access:        accessCtl,
		fees:          fees,
		events:        events,
		marketAccount: marketAccount,
	}
}

// Purchase settles a sale for the given key. requestID deduplicates
// caller retries: a re-driven request that already settled fails with
// ErrDuplicateRequest instead of double-charging. Overpayment is
// refunded to the buyer, never retained.
func (s *SettlementService) Purchase(ctx context.Context, key domain.AssetKey, buyer string, paidAmount uint64, requestID string) (domain.SaleReceipt, error) {
	listing, err := s.registry.Lookup(key)
	if err != nil {
		return domain.SaleReceipt{}, err
	}
	if paidAmount < listing.Price {
		return domain.SaleReceipt{}, domain.ErrInsufficientPayment
	}

	idempotencyKey := idempotencyKeyPrefix + requestID
	ok, err := s.cache.SetIdempotency(ctx, idempotencyKey)
	if err != nil {
		return domain.SaleReceipt{}, fmt.Errorf("idempotency check failed: %w", err)
	}
	if !ok {
		return domain.SaleReceipt{}, domain.ErrDuplicateRequest
	}

	// Atomic clear: from here on no concurrent purchase or removal of
	// this key can succeed. All decisions below use the taken record,
	// never a re-read.
	taken, err := s.registry.Take(key)
	if err != nil {
		s.releaseIdempotency(ctx, idempotencyKey)
		return domain.SaleReceipt{}, err
	}

	// The price may have changed between the lookup and the take.
	if paidAmount < taken.Price {
		s.compensate(ctx, taken, idempotencyKey, false, false)
		return domain.SaleReceipt{}, domain.ErrInsufficientPayment
	}

	sellerAmount, feeAmount := s.fees.Split(taken.Price)
	refund := paidAmount - taken.Price

	if err := s.custody.Transfer(ctx, key, s.marketAccount, buyer); err != nil {
		s.compensate(ctx, taken, idempotencyKey, false, false)
		return domain.SaleReceipt{}, fmt.Errorf("custody transfer failed: %w", err)
	}

	if fundsMoved, err := s.payOut(ctx, taken.Seller, buyer, sellerAmount, feeAmount, refund); err != nil {
		s.compensate(ctx, taken, idempotencyKey, true, fundsMoved)
		return domain.SaleReceipt{}, fmt.Errorf("payment failed: %w", err)
	}

	receipt := domain.SaleReceipt{
		ID:           uuid.New().String(),
		Key:          key,
		Buyer:        buyer,
		Seller:       taken.Seller,
		Price:        taken.Price,
		SellerAmount: sellerAmount,
		FeeAmount:    feeAmount,
		Refund:       refund,
		CreatedAt:    time.Now(),
	}

	s.events.EmitSale(receipt)
	zap.L().With(
		zap.String("key", key.String()),
		zap.String("buyer", buyer),
		zap.String("seller", taken.Seller),
		zap.Uint64("price", taken.Price),
		zap.Uint64("fee", feeAmount),
	).Info("sale settled")

	return receipt, nil
}

// payOut reports whether any leg settled before the returned error:
// funds already moved cannot be clawed back, and the caller must not
// make the request retryable once they have.
func (s *SettlementService) payOut(ctx context.Context, seller, buyer string, sellerAmount, feeAmount, refund uint64) (bool, error) {
	fundsMoved := false

	if sellerAmount > 0 {
		if err := s.payments.Pay(ctx, seller, sellerAmount); err != nil {
			return fundsMoved, fmt.Errorf("pay seller: %w", err)
		}
		fundsMoved = true
	}
	if feeAmount > 0 {
		if err := s.payments.Pay(ctx, s.access.FeeRecipient(), feeAmount); err != nil {
			return fundsMoved, fmt.Errorf("pay fee recipient: %w", err)
		}
		fundsMoved = true
	}
	if refund > 0 {
		if err := s.payments.Pay(ctx, buyer, refund); err != nil {
			return fundsMoved, fmt.Errorf("refund buyer: %w", err)
		}
	}
	return true, nil
}

// compensate undoes a failed purchase: custody goes back to the
// marketplace account if it already moved, the captured listing is
// restored to the registry, and the idempotency reservation is
// released so the caller may retry. If any payout leg settled a retry
// would pay a second time, so the reservation stays in place and the
// request is left for operator intervention. A failed undo cannot be
// repaired automatically and is logged at the highest severity.
func (s *SettlementService) compensate(ctx context.Context, taken domain.Listing, idempotencyKey string, custodyMoved, fundsMoved bool) {
	if custodyMoved {
		// Recover the asset from whoever the failed settlement sent it to.
		holder, err := s.custody.OwnerOf(ctx, taken.Key)
		if err == nil && holder != s.marketAccount {
			err = s.custody.Transfer(ctx, taken.Key, holder, s.marketAccount)
		}
		if err != nil {
			zap.L().With(
				zap.String("key", taken.Key.String()),
				zap.Error(err),
			).Error("CRITICAL: failed to recover custody while compensating purchase")
		}
	}

	if err := s.registry.Restore(taken); err != nil {
		zap.L().With(
			zap.String("key", taken.Key.String()),
			zap.Error(err),
		).Error("CRITICAL: failed to restore listing while compensating purchase")
	}

	if fundsMoved {
		zap.L().With(
			zap.String("key", taken.Key.String()),
			zap.String("idempotencyKey", idempotencyKey),
		).Error("CRITICAL: partial payout settled, keeping idempotency reservation to block re-drive")
		return
	}

	s.releaseIdempotency(ctx, idempotencyKey)
}

func (s *SettlementService) releaseIdempotency(ctx context.Context, key string) {
	if err := s.cache.ReleaseIdempotency(ctx, key); err != nil {
		zap.L().With(zap.String("idempotencyKey", key), zap.Error(err)).
			Error("failed to release idempotency reservation")
	}
}
