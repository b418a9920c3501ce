package usecase

import (
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/airdropper/base/amount"
	bCtx "github.com/x-xyz/airdropper/base/ctx"
	"github.com/x-xyz/airdropper/base/format"
	"github.com/x-xyz/airdropper/base/log"
	"github.com/x-xyz/airdropper/base/metrics"
	"github.com/x-xyz/airdropper/base/validator"
	"github.com/x-xyz/airdropper/domain"
	"github.com/x-xyz/airdropper/domain/airdrop"
)

type airdropUseCaseImpl struct {
	tokenRepo airdrop.TokenRepo
	met       metrics.Service
}

func NewAirdropUseCase(tokenRepo airdrop.TokenRepo, met metrics.Service) airdrop.AirdropUseCase {
	return &airdropUseCaseImpl{
		tokenRepo: tokenRepo,
		met:       met,
	}
}

func (u *airdropUseCaseImpl) CalculateTotal(ctx bCtx.Ctx, amounts string) float64 {
	return amount.CalculateTotal(amounts)
}

func (u *airdropUseCaseImpl) Tokens(ctx bCtx.Ctx, opts ...airdrop.TokenFindAllOptionsFunc) ([]airdrop.Token, error) {
	tokens, err := u.tokenRepo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithField("err", err).Error("tokenRepo.FindAll failed")
		return nil, err
	}
	return tokens, nil
}

func (u *airdropUseCaseImpl) Plan(ctx bCtx.Ctx, req *airdrop.PlanRequest) (*airdrop.Plan, error) {
	defer u.met.BumpTime("plan.time").End()

	if !validator.IsValidAddress(string(req.TokenAddress)) {
		return nil, xerrors.Errorf("token %q: %w", req.TokenAddress, domain.ErrInvalidAddress)
	}

	token, err := u.tokenRepo.FindOne(ctx, req.ChainId, req.TokenAddress)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": req.ChainId,
			"token":   req.TokenAddress,
			"err":     err,
		}).Warn("tokenRepo.FindOne failed")
		return nil, err
	}

	recipients, err := parseRecipients(req.Recipients)
	if err != nil {
		return nil, err
	}

	values := []float64{}
	skipped := []string{}
	for _, a := range amount.Parse(req.Amounts) {
		if a.Valid {
			values = append(values, a.Value)
		} else {
			skipped = append(skipped, a.Raw)
		}
	}
	if len(values) != len(recipients) {
		return nil, xerrors.Errorf("%d recipients, %d amounts: %w", len(recipients), len(values), domain.ErrRecipientAmountMismatch)
	}

	transfers := make([]airdrop.Transfer, 0, len(values))
	totalUnits := new(big.Int)
	for i, v := range values {
		units, err := amount.ToBaseUnits(v, token.Decimals)
		if err != nil {
			return nil, xerrors.Errorf("amount %d for %s: %w", i, recipients[i], err)
		}
		totalUnits.Add(totalUnits, units)
		transfers = append(transfers, airdrop.Transfer{
			Recipient: recipients[i],
			Amount:    v,
			Units:     decimal.NewFromBigInt(units, 0),
		})
	}
	if totalUnits.Sign() <= 0 {
		return nil, domain.ErrNonPositiveTotal
	}

	plan := &airdrop.Plan{
		Token:        *token,
		Transfers:    transfers,
		Total:        amount.CalculateTotal(req.Amounts),
		TotalUnits:   decimal.NewFromBigInt(totalUnits, 0),
		DisplayTotal: format.TokenAmount(amount.FromBaseUnits(totalUnits, token.Decimals), token.Symbol),
		Skipped:      skipped,
	}

	chainTag := strconv.Itoa(int(req.ChainId))
	u.met.BumpSum("plan.count", 1, "chainId", chainTag)
	u.met.BumpHistogram("plan.transfers", float64(len(transfers)), "chainId", chainTag)
	if len(skipped) > 0 {
		u.met.BumpSum("plan.skipped", float64(len(skipped)), "chainId", chainTag)
	}
	ctx.WithFields(log.Fields{
		"chainId":   req.ChainId,
		"token":     format.Address(string(token.Address)),
		"transfers": len(transfers),
		"skipped":   len(skipped),
		"total":     plan.DisplayTotal,
	}).Info("airdrop planned")
	return plan, nil
}

// parseRecipients splits a recipient list with the same separators as amount
// lists. Unlike amounts, a bad entry fails the whole list.
func parseRecipients(recipients string) ([]domain.Address, error) {
	segments := amount.Segments(recipients)
	if len(segments) == 0 {
		return nil, domain.ErrEmptyRecipients
	}
	res := make([]domain.Address, 0, len(segments))
	for i, s := range segments {
		if !validator.IsValidAddress(s) {
			return nil, xerrors.Errorf("recipient %d %q: %w", i, s, domain.ErrInvalidAddress)
		}
		res = append(res, domain.Address(s))
	}
	return res, nil
}
