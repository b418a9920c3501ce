package domain

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type domainSuite struct {
	suite.Suite
}

func TestDomainSuite(t *testing.T) {
	suite.Run(t, new(domainSuite))
}

func (s *domainSuite) TestAddress() {
	a := Address("0x5AAEb6053f3e94c4b9A21Ff3A2A2fC4b8Cc5D26A")
	s.True(a.Equals("0x5aaeb6053f3e94c4b9a21ff3a2a2fc4b8cc5d26a"))
	s.Equal(Address("0x5aaeb6053f3e94c4b9a21ff3a2a2fc4b8cc5d26a"), a.ToLower())
	s.False(a.IsNative())
	s.True(EmptyAddress.IsNative())
	s.True(Address("").IsEmpty())
}

func (s *domainSuite) TestIsBadRequest() {
	s.True(IsBadRequest(xerrors.Errorf("recipient 3: %w", ErrInvalidAddress)))
	s.True(IsBadRequest(ErrRecipientAmountMismatch))
	s.False(IsBadRequest(ErrNotFound))
	s.False(IsBadRequest(ErrInternalServerError))
}

func (s *domainSuite) TestAmountErrorsAreBadRequests() {
	s.True(IsBadRequest(xerrors.Errorf("transfer 0: %w", ErrTooManyDecimals)))
	s.True(IsBadRequest(ErrNegativeAmount))
}
