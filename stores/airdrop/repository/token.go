package repository

import (
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/airdropper/base/ctx"
	"github.com/x-xyz/airdropper/base/validator"
	"github.com/x-xyz/airdropper/domain"
	"github.com/x-xyz/airdropper/domain/airdrop"
)

// maxDecimals bounds token decimals so 10^decimals stays a sane uint256 factor
const maxDecimals = 36

type tokenKey struct {
	chainId domain.ChainId
	address domain.Address
}

type tokenRepoImpl struct {
	tokens []airdrop.Token
	index  map[tokenKey]int
}

// LoadTokens reads the token list under key from v, e.g.
//
//	tokens:
//	  - chainId: 11155111
//	    address: "0x0000000000000000000000000000000000000000"
//	    symbol: ETH
//	    decimals: 18
func LoadTokens(v *viper.Viper, key string) ([]airdrop.Token, error) {
	tokens := []airdrop.Token{}
	if err := v.UnmarshalKey(key, &tokens); err != nil {
		return nil, xerrors.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return tokens, nil
}

// NewTokenRepo builds a read only registry over tokens. Addresses are matched
// case insensitively.
func NewTokenRepo(tokens []airdrop.Token) (airdrop.TokenRepo, error) {
	r := &tokenRepoImpl{
		tokens: make([]airdrop.Token, 0, len(tokens)),
		index:  make(map[tokenKey]int, len(tokens)),
	}
	for i, t := range tokens {
		if t.ChainId <= 0 {
			return nil, xerrors.Errorf("token %d %s: %w", i, t.Symbol, domain.ErrInvalidChainId)
		}
		if !validator.IsValidAddress(string(t.Address)) {
			return nil, xerrors.Errorf("token %d %s: %w", i, t.Symbol, domain.ErrInvalidAddress)
		}
		if t.Decimals < 0 || t.Decimals > maxDecimals {
			return nil, xerrors.Errorf("token %d %s: decimals %d out of range", i, t.Symbol, t.Decimals)
		}
		key := tokenKey{t.ChainId, t.Address.ToLower()}
		if _, ok := r.index[key]; ok {
			return nil, xerrors.Errorf("token %d %s: duplicated %d/%s", i, t.Symbol, t.ChainId, t.Address)
		}
		t.Address = t.Address.ToLower()
		t.Symbol = strings.TrimSpace(t.Symbol)
		r.index[key] = len(r.tokens)
		r.tokens = append(r.tokens, t)
	}
	return r, nil
}

func (r *tokenRepoImpl) FindOne(ctx bCtx.Ctx, chainId domain.ChainId, address domain.Address) (*airdrop.Token, error) {
	i, ok := r.index[tokenKey{chainId, address.ToLower()}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	t := r.tokens[i]
	return &t, nil
}

func (r *tokenRepoImpl) FindAll(ctx bCtx.Ctx, optFns ...airdrop.TokenFindAllOptionsFunc) ([]airdrop.Token, error) {
	opts, err := airdrop.GetTokenFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("airdrop.GetTokenFindAllOptions failed")
		return nil, err
	}

	res := []airdrop.Token{}
	for _, t := range r.tokens {
		if opts.ChainId != nil && t.ChainId != *opts.ChainId {
			continue
		}
		res = append(res, t)
	}
	return res, nil
}
