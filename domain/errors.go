package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// request error
	ErrInvalidAddress          = errors.New("Invalid address")
	ErrInvalidChainId          = errors.New("invalid chain id")
	ErrEmptyRecipients         = errors.New("no recipients")
	ErrRecipientAmountMismatch = errors.New("number of recipients and amounts differ")
	ErrNonPositiveTotal        = errors.New("total amount must be positive")
	ErrNegativeAmount          = errors.New("negative amount")
	ErrTooManyDecimals         = errors.New("amount has more decimals than the token")
	ErrNotFinite               = errors.New("amount is not a finite number")
)

var badRequestErrors = []error{
	ErrBadParamInput,
	ErrInvalidAddress,
	ErrInvalidChainId,
	ErrEmptyRecipients,
	ErrRecipientAmountMismatch,
	ErrNonPositiveTotal,
	ErrNegativeAmount,
	ErrTooManyDecimals,
	ErrNotFinite,
}

// IsBadRequest reports whether err is caused by invalid client input
func IsBadRequest(err error) bool {
	for _, e := range badRequestErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
