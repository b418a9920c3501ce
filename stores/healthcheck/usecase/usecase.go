package usecase

import (
	"errors"

	"github.com/x-xyz/airdropper/base/ctx"
	"github.com/x-xyz/airdropper/domain/airdrop"
	hcdomain "github.com/x-xyz/airdropper/domain/healthcheck"
)

var ErrNoTokens = errors.New("token registry is empty")

type impl struct {
	tokenRepo airdrop.TokenRepo
}

// New creates a health check that passes once at least one token is configured
func New(tokenRepo airdrop.TokenRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		tokenRepo: tokenRepo,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	tokens, err := im.tokenRepo.FindAll(context)
	if err != nil {
		context.WithField("err", err).Error("tokenRepo.FindAll failed")
		return err
	}
	if len(tokens) == 0 {
		return ErrNoTokens
	}
	return nil
}
