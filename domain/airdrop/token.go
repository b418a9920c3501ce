package airdrop

import (
	"github.com/x-xyz/airdropper/base/ctx"
	"github.com/x-xyz/airdropper/domain"
)

// Token is an ERC20 token, or the native coin when Address is domain.EmptyAddress
type Token struct {
	ChainId  domain.ChainId `json:"chainId" mapstructure:"chainId"`
	Address  domain.Address `json:"address" mapstructure:"address"`
	Symbol   string         `json:"symbol" mapstructure:"symbol"`
	Decimals int32          `json:"decimals" mapstructure:"decimals"`
}

type TokenFindAllOptions struct {
	ChainId *domain.ChainId
}

type TokenFindAllOptionsFunc func(*TokenFindAllOptions) error

func GetTokenFindAllOptions(opts ...TokenFindAllOptionsFunc) (TokenFindAllOptions, error) {
	res := TokenFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func TokenWithChainId(chainId domain.ChainId) TokenFindAllOptionsFunc {
	return func(options *TokenFindAllOptions) error {
		if chainId <= 0 {
			return domain.ErrInvalidChainId
		}
		options.ChainId = &chainId
		return nil
	}
}

type TokenRepo interface {
	FindOne(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (*Token, error)
	FindAll(c ctx.Ctx, opts ...TokenFindAllOptionsFunc) ([]Token, error)
}
