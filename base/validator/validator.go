package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IsValidAddress reports whether address is a 20 byte hex address. Mixed case
// input must carry a valid EIP-55 checksum, all lower or all upper case input
// is accepted as is.
func IsValidAddress(address string) bool {
	if !common.IsHexAddress(address) || !strings.HasPrefix(address, "0x") {
		return false
	}
	hex := address[2:]
	if hex == strings.ToLower(hex) || hex == strings.ToUpper(hex) {
		return true
	}
	return common.HexToAddress(address).Hex() == address
}

func validateAddress(fl validator.FieldLevel) bool {
	return IsValidAddress(fl.Field().String())
}

// New returns a validator with the "address" tag registered
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("address", validateAddress)
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
