package access

import (
	"errors"

	"github.com/vqhuy/nft-marketplace/internal/core/domain"
)

var (
	ErrEmptyAdmin = errors.New("admin identity must not be empty")
	// The admin must be a real external caller. The marketplace's own
	// custody account can never present itself, so allowing it would
	// make fee configuration permanently unreachable.
	ErrAdminIsMarketAccount = errors.New("admin identity must differ from the marketplace account")
)

// Controller resolves who may reconfigure the platform. Seller
// authorization for listing mutation is enforced by the registry
// against each listing's recorded seller; the controller only holds
// the identities fixed at initialization.
type Controller struct {
	admin        string
	feeRecipient string
}

func NewController(admin, feeRecipient, marketAccount string) (*Controller, error) {
	if admin == "" {
		return nil, ErrEmptyAdmin
	}
	if admin == marketAccount {
		return nil, ErrAdminIsMarketAccount
	}
	if feeRecipient == "" {
		feeRecipient = admin
	}

	return &Controller{admin: admin, feeRecipient: feeRecipient}, nil
}

// RequireAdmin fails with NotAuthorized unless caller is the
// designated platform administrator.
func (c *Controller) RequireAdmin(caller string) error {
	if caller != c.admin {
		return domain.ErrNotAuthorized
	}
	return nil
}

func (c *Controller) FeeRecipient() string {
	return c.feeRecipient
}
