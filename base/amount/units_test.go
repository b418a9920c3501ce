package amount

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/airdropper/domain"
)

func (s *amountSuite) TestToBaseUnits() {
	tests := []struct {
		desc     string
		value    float64
		decimals int32
		expUnits string
		expErr   error
	}{
		{desc: "whole ether", value: 1, decimals: 18, expUnits: "1000000000000000000"},
		{desc: "fraction of ether", value: 0.1, decimals: 18, expUnits: "100000000000000000"},
		{desc: "usdc", value: 1234.5, decimals: 6, expUnits: "1234500000"},
		{desc: "zero decimals", value: 600, decimals: 0, expUnits: "600"},
		{desc: "zero", value: 0, decimals: 18, expUnits: "0"},
		{desc: "scientific", value: 1e6, decimals: 6, expUnits: "1000000000000"},
		{desc: "too precise", value: 0.0000001, decimals: 6, expErr: domain.ErrTooManyDecimals},
		{desc: "fraction with zero decimals", value: 1.5, decimals: 0, expErr: domain.ErrTooManyDecimals},
		{desc: "negative", value: -1, decimals: 18, expErr: domain.ErrNegativeAmount},
		{desc: "nan", value: math.NaN(), decimals: 18, expErr: domain.ErrNotFinite},
		{desc: "inf", value: math.Inf(1), decimals: 18, expErr: domain.ErrNotFinite},
	}
	for _, t := range tests {
		units, err := ToBaseUnits(t.value, t.decimals)
		if t.expErr != nil {
			s.ErrorIs(err, t.expErr, t.desc)
			s.Nil(units, t.desc)
			continue
		}
		if s.NoError(err, t.desc) {
			s.Equal(t.expUnits, units.String(), t.desc)
		}
	}
}

func (s *amountSuite) TestFromBaseUnits() {
	units, _ := new(big.Int).SetString("1234500000", 10)
	s.True(decimal.RequireFromString("1234.5").Equal(FromBaseUnits(units, 6)))
	s.True(decimal.Zero.Equal(FromBaseUnits(nil, 6)))

	back, err := ToBaseUnits(FromBaseUnits(units, 6).InexactFloat64(), 6)
	s.NoError(err)
	s.Equal(units.String(), back.String())
}

func (s *amountSuite) TestSumBaseUnits() {
	total, err := SumBaseUnits([]float64{0.1, 0.2}, 6)
	s.Require().NoError(err)
	s.Equal("300000", total.String())

	total, err = SumBaseUnits(nil, 18)
	s.Require().NoError(err)
	s.Equal("0", total.String())

	_, err = SumBaseUnits([]float64{1, 0.0000001}, 6)
	s.ErrorIs(err, domain.ErrTooManyDecimals)
}
