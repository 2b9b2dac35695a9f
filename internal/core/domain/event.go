package domain

import "time"

type EventType string

const (
	EventListingCreated EventType = "ListingCreated"
	EventListingUpdated EventType = "ListingUpdated"
	EventListingRemoved EventType = "ListingRemoved"
	EventSold           EventType = "Sold"
)

// MarketEvent is the append-only record emitted for every listing
// lifecycle transition. Buyer and Receipt are only set for Sold
// events.
type MarketEvent struct {
	Type      EventType
	Key       AssetKey
	Seller    string
	Buyer     string
	Price     uint64
	Receipt   *SaleReceipt
	CreatedAt time.Time
}
