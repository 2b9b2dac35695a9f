package registry

import (
	"sync"

	"github.com/vqhuy/nft-marketplace/internal/core/domain"
)

// Registry owns the asset-key -> listing mapping and enforces the
// listing lifecycle. Every method is a single mutation boundary: the
// check and the state change happen under one lock, so no two
// operations can interleave on the same key.
//
// Clearing methods (Remove, Take) return the record as it was before
// the clear. Callers route custody with the returned values and never
// re-read registry state after a clear.
type Registry struct {
	mu       sync.Mutex
	listings map[domain.AssetKey]domain.Listing
}

func New() *Registry {
	return &Registry{listings: make(map[domain.AssetKey]domain.Listing)}
}

// Create installs a new active listing. The caller is responsible for
// moving custody to the marketplace account and must roll this back
// (via Take) if the custody pull fails.
func (r *Registry) Create(key domain.AssetKey, price uint64, seller string) (domain.Listing, error) {
	if price == 0 {
		return domain.Listing{}, domain.ErrInvalidPrice
	}
	if seller == "" {
		return domain.Listing{}, domain.ErrNotAuthorized
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.listings[key]; ok && existing.Active {
		return domain.Listing{}, domain.ErrAlreadyListed
	}

	listing := domain.Listing{Key: key, Price: price, Seller: seller, Active: true}
	r.listings[key] = listing

	return listing, nil
}

// UpdatePrice mutates the price of an active listing. Only the
// recorded seller may update.
func (r *Registry) UpdatePrice(key domain.AssetKey, newPrice uint64, requester string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[key]
	if !ok || !listing.Active {
		return domain.ErrNotListed
	}
	if requester != listing.Seller {
		return domain.ErrNotAuthorized
	}
	if newPrice == 0 {
		return domain.ErrInvalidPrice
	}

	listing.Price = newPrice
	r.listings[key] = listing

	return nil
}

// Remove clears the listing on behalf of its seller and returns the
// pre-clear record so the caller can return custody.
func (r *Registry) Remove(key domain.AssetKey, requester string) (domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[key]
	if !ok || !listing.Active {
		return domain.Listing{}, domain.ErrNotListed
	}
	if requester != listing.Seller {
		return domain.Listing{}, domain.ErrNotAuthorized
	}

	delete(r.listings, key)

	return listing, nil
}

// Take clears the listing without an authorization check (a purchase
// may be initiated by anyone) and returns the pre-clear record. Once a
// listing is taken, a concurrent purchase or removal of the same key
// fails with NotListed.
func (r *Registry) Take(key domain.AssetKey) (domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[key]
	if !ok || !listing.Active {
		return domain.Listing{}, domain.ErrNotListed
	}

	delete(r.listings, key)

	return listing, nil
}

// Restore re-installs a previously captured listing. Used by the
// compensation path when a custody or payment call fails after the
// listing was cleared. Fails if the key was re-listed in the meantime.
func (r *Registry) Restore(listing domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.listings[listing.Key]; ok && existing.Active {
		return domain.ErrAlreadyListed
	}

	listing.Active = true
	r.listings[listing.Key] = listing

	return nil
}

// Lookup returns the active listing for key. Read-only.
func (r *Registry) Lookup(key domain.AssetKey) (domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[key]
	if !ok || !listing.Active {
		return domain.Listing{}, domain.ErrNotListed
	}

	return listing, nil
}
