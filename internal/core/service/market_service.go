package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vqhuy/nft-marketplace/internal/core/access"
	"github.com/vqhuy/nft-marketplace/internal/core/domain"
	"github.com/vqhuy/nft-marketplace/internal/core/registry"
	"github.com/vqhuy/nft-marketplace/internal/event"
	"github.com/vqhuy/nft-marketplace/internal/port"
)

// MarketService handles the listing lifecycle: deposit (list), price
// update, withdrawal (remove), reads, and fee configuration. Custody
// moves in lockstep with the registry: a listing only stays active if
// the marketplace account actually holds the asset.
type MarketService struct {
	registry      *registry.Registry
	custody       port.CustodyGateway
	access        *access.Controller
	fees          *FeeConfig
	events        *event.Manager
	marketAccount string
}

func NewMarketService(
	reg *registry.Registry,
	custody port.CustodyGateway,
	accessCtl *access.Controller,
	fees *FeeConfig,
	events *event.Manager,
	marketAccount string,
) *MarketService {
	return &MarketService{
		registry:      reg,
		custody:       custody,
		access:        accessCtl,
		fees:          fees,
		events:        events,
		marketAccount: marketAccount,
	}
}

// List deposits the caller's asset into marketplace custody and
// installs an active listing. The registry reservation happens first
// so a concurrent list of the same key fails fast; if the custody pull
// then fails, the reservation is rolled back.
func (s *MarketService) List(ctx context.Context, key domain.AssetKey, price uint64, caller string) (domain.Listing, error) {
	// A listed asset is in marketplace custody, so the owner check
	// below would misreport a double-list as NotAssetOwner.
	if _, err := s.registry.Lookup(key); err == nil {
		return domain.Listing{}, domain.ErrAlreadyListed
	}

	owner, err := s.custody.OwnerOf(ctx, key)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("resolve asset owner: %w", err)
	}
	if owner != caller {
		return domain.Listing{}, domain.ErrNotAssetOwner
	}

	listing, err := s.registry.Create(key, price, caller)
	if err != nil {
		return domain.Listing{}, err
	}

	if err := s.custody.Transfer(ctx, key, caller, s.marketAccount); err != nil {
		if _, takeErr := s.registry.Take(key); takeErr != nil {
			zap.L().With(
				zap.String("key", key.String()),
				zap.Error(takeErr),
			).Error("CRITICAL: failed to roll back listing after custody pull failure")
		}
		return domain.Listing{}, fmt.Errorf("custody pull failed: %w", err)
	}

	s.events.Emit(domain.EventListingCreated, key, caller, "", price)
	zap.L().With(
		zap.String("key", key.String()),
		zap.String("seller", caller),
		zap.Uint64("price", price),
	).Info("listing created")

	return listing, nil
}

// UpdatePrice mutates the price of the caller's active listing.
// Custody does not move.
func (s *MarketService) UpdatePrice(ctx context.Context, key domain.AssetKey, newPrice uint64, caller string) error {
	if err := s.registry.UpdatePrice(key, newPrice, caller); err != nil {
		return err
	}

	s.events.Emit(domain.EventListingUpdated, key, caller, "", newPrice)

	return nil
}

// Remove withdraws the caller's listing and returns custody to the
// seller captured by the clear. If the custody return fails the
// listing is restored, so state and custody stay consistent.
func (s *MarketService) Remove(ctx context.Context, key domain.AssetKey, caller string) error {
	removed, err := s.registry.Remove(key, caller)
	if err != nil {
		return err
	}

	if err := s.custody.Transfer(ctx, key, s.marketAccount, removed.Seller); err != nil {
		if restoreErr := s.registry.Restore(removed); restoreErr != nil {
			zap.L().With(
				zap.String("key", key.String()),
				zap.Error(restoreErr),
			).Error("CRITICAL: failed to restore listing after custody return failure")
		}
		return fmt.Errorf("custody return failed: %w", err)
	}

	s.events.Emit(domain.EventListingRemoved, key, removed.Seller, "", removed.Price)
	zap.L().With(
		zap.String("key", key.String()),
		zap.String("seller", removed.Seller),
	).Info("listing removed")

	return nil
}

func (s *MarketService) GetListing(ctx context.Context, key domain.AssetKey) (domain.Listing, error) {
	return s.registry.Lookup(key)
}

// SetFeePercentage reconfigures the platform fee. Only the designated
// administrator may call this.
func (s *MarketService) SetFeePercentage(percentage uint64, caller string) error {
	if err := s.access.RequireAdmin(caller); err != nil {
		return err
	}
	if err := s.fees.Set(percentage); err != nil {
		return err
	}

	zap.L().With(
		zap.Uint64("percentage", percentage),
		zap.String("admin", caller),
	).Info("fee percentage updated")

	return nil
}

func (s *MarketService) FeePercentage() uint64 {
	return s.fees.Percentage()
}
