package domain

import (
	"strings"
)

type ChainId int32

const (
	ChainIdEthereum ChainId = 1
	ChainIdSepolia  ChainId = 11155111
)

type Address string

// EmptyAddress stands for the native coin of a chain when used as a token address
const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) IsNative() bool {
	return a.Equals(EmptyAddress)
}
