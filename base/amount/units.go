package amount

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/airdropper/domain"
)

// ToBaseUnits scales a display amount to the token's integer unit, e.g. 1.5 with
// 6 decimals is 1500000. The shortest decimal form of value is scaled, so 0.1 is
// exactly 10^(decimals-1) and not the binary approximation of 0.1.
func ToBaseUnits(value float64, decimals int32) (*big.Int, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, domain.ErrNotFinite
	}
	if value < 0 {
		return nil, xerrors.Errorf("%v: %w", value, domain.ErrNegativeAmount)
	}

	scaled := decimal.NewFromFloat(value).Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, xerrors.Errorf("%v with %d decimals: %w", value, decimals, domain.ErrTooManyDecimals)
	}
	return scaled.BigInt(), nil
}

// FromBaseUnits is the inverse of ToBaseUnits
func FromBaseUnits(units *big.Int, decimals int32) decimal.Decimal {
	if units == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(units, -decimals)
}

// SumBaseUnits scales each value on its own and adds the integers, so the sum
// is exact even where the float total of the same values is not.
func SumBaseUnits(values []float64, decimals int32) (*big.Int, error) {
	total := new(big.Int)
	for i, v := range values {
		units, err := ToBaseUnits(v, decimals)
		if err != nil {
			return nil, xerrors.Errorf("amount %d: %w", i, err)
		}
		total.Add(total, units)
	}
	return total, nil
}
