package domain

import "time"

// SaleReceipt records one settled purchase.
// SellerAmount + FeeAmount always equals Price; Refund is any excess
// the buyer paid above the listed price, returned during settlement.
type SaleReceipt struct {
	ID           string
	Key          AssetKey
	Buyer        string
	Seller       string
	Price        uint64
	SellerAmount uint64
	FeeAmount    uint64
	Refund       uint64
	CreatedAt    time.Time
}
