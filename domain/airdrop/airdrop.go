package airdrop

import (
	"github.com/shopspring/decimal"
	"github.com/x-xyz/airdropper/base/ctx"
	"github.com/x-xyz/airdropper/domain"
)

// PlanRequest is the bulk airdrop form. Recipients and Amounts are freeform
// lists separated by commas and/or newlines, matched up by position.
type PlanRequest struct {
	ChainId      domain.ChainId `json:"chainId" validate:"required,gt=0"`
	TokenAddress domain.Address `json:"tokenAddress" validate:"required,address"`
	Recipients   string         `json:"recipients" validate:"required"`
	Amounts      string         `json:"amounts" validate:"required"`
}

type Transfer struct {
	Recipient domain.Address  `json:"recipient"`
	Amount    float64         `json:"amount"`
	Units     decimal.Decimal `json:"units"`
}

// Plan is what has to be sent on chain for a bulk airdrop. Units are integer
// token units, TotalUnits is the allowance the sender contract needs for an
// ERC20 token.
type Plan struct {
	Token        Token           `json:"token"`
	Transfers    []Transfer      `json:"transfers"`
	Total        float64         `json:"total"`
	TotalUnits   decimal.Decimal `json:"totalUnits"`
	DisplayTotal string          `json:"displayTotal"`
	// Skipped holds the amount segments that are not numbers
	Skipped []string `json:"skipped"`
}

type AirdropUseCase interface {
	// CalculateTotal sums the valid amounts of a freeform list, it never fails
	CalculateTotal(c ctx.Ctx, amounts string) float64
	Plan(c ctx.Ctx, req *PlanRequest) (*Plan, error)
	Tokens(c ctx.Ctx, opts ...TokenFindAllOptionsFunc) ([]Token, error)
}
