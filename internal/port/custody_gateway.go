package port

import (
	"context"

	"github.com/vqhuy/nft-marketplace/internal/core/domain"
)

// CustodyGateway is the external asset-ownership authority. The
// marketplace never implements it; it only issues commands against it.
type CustodyGateway interface {
	// OwnerOf resolves the current holder of an asset
	OwnerOf(ctx context.Context, key domain.AssetKey) (string, error)

	// Transfer moves the asset from one holder to another; fails if
	// `from` does not currently hold it or the recipient rejects it
	Transfer(ctx context.Context, key domain.AssetKey, from, to string) error
}
