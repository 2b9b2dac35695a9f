package domain

import "errors"

var (
	ErrAlreadyListed        = errors.New("asset already listed")
	ErrNotListed            = errors.New("asset not listed")
	ErrNotAuthorized        = errors.New("not authorized")
	ErrInvalidPrice         = errors.New("price must be greater than zero")
	ErrNotAssetOwner        = errors.New("caller does not own the asset")
	ErrInsufficientPayment  = errors.New("insufficient payment")
	ErrInvalidFeePercentage = errors.New("fee percentage must be between 0 and 100")
	ErrDuplicateRequest     = errors.New("duplicate request")
)
