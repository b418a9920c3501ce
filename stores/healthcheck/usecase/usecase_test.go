package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/airdropper/base/ctx"
	"github.com/x-xyz/airdropper/domain"
	"github.com/x-xyz/airdropper/domain/airdrop"
	"github.com/x-xyz/airdropper/domain/airdrop/mocks"
)

type healthCheckSuite struct {
	suite.Suite
}

func TestHealthCheckSuite(t *testing.T) {
	suite.Run(t, new(healthCheckSuite))
}

func (s *healthCheckSuite) TestCheck() {
	repo := &mocks.TokenRepo{}
	repo.On("FindAll", mock.Anything).Return([]airdrop.Token{{ChainId: 1, Address: domain.EmptyAddress, Symbol: "ETH", Decimals: 18}}, nil).Once()
	s.NoError(New(repo).Check(ctx.Background()))

	repo.On("FindAll", mock.Anything).Return([]airdrop.Token{}, nil).Once()
	s.ErrorIs(New(repo).Check(ctx.Background()), ErrNoTokens)

	repo.On("FindAll", mock.Anything).Return(nil, domain.ErrInternalServerError).Once()
	s.ErrorIs(New(repo).Check(ctx.Background()), domain.ErrInternalServerError)
	repo.AssertExpectations(s.T())
}
