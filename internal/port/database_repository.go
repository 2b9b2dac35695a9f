package port

import (
	"context"

	"github.com/vqhuy/nft-marketplace/internal/core/domain"
)

type DatabaseRepository interface {
	// SaveListing upserts the durable mirror of an active listing
	SaveListing(ctx context.Context, listing domain.Listing) error

	// DeleteListing drops the mirror row after removal
	DeleteListing(ctx context.Context, key domain.AssetKey) error

	// SaveSale records a settled purchase and drops the listing mirror
	// in the same transaction
	SaveSale(ctx context.Context, receipt domain.SaleReceipt) error

	// SaveEvent appends one record to the market event log
	SaveEvent(ctx context.Context, event domain.MarketEvent) error
}
