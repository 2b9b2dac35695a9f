package domain

import "fmt"

// AssetKey identifies a single tradeable asset: the collection contract
// plus the token id inside it. Comparable, used as a map key.
type AssetKey struct {
	Contract string
	TokenID  string
}

func (k AssetKey) String() string {
	return fmt.Sprintf("%s/%s", k.Contract, k.TokenID)
}
