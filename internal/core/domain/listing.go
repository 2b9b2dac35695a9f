package domain

// Listing is the sale offer for one asset. At most one exists per key.
// While Active, the marketplace account holds custody of the asset and
// Price > 0 and Seller is non-empty.
type Listing struct {
	Key    AssetKey
	Price  uint64 // smallest currency unit
	Seller string
	Active bool
}
