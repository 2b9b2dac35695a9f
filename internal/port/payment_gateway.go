package port

import "context"

// PaymentGateway is the external value-transfer rail. Payments come
// out of the marketplace's balance and may fail on insufficient funds
// or recipient rejection.
type PaymentGateway interface {
	Pay(ctx context.Context, recipient string, amount uint64) error
}
