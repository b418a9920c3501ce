package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	bCtx "github.com/x-xyz/airdropper/base/ctx"
	"github.com/x-xyz/airdropper/base/delivery"
	"github.com/x-xyz/airdropper/domain"
	dAirdrop "github.com/x-xyz/airdropper/domain/airdrop"
)

type handler struct {
	airdrop dAirdrop.AirdropUseCase
}

func New(e *echo.Echo, _airdrop dAirdrop.AirdropUseCase) {
	h := &handler{_airdrop}
	g := e.Group("/airdrop")
	g.POST("/total", h.postTotal)
	g.POST("/plan", h.postPlan)
	e.GET("/tokens", h.getTokens)
}

func (h *handler) postTotal(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Amounts string `json:"amounts"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	total := h.airdrop.CalculateTotal(ctx, p.Amounts)
	return delivery.MakeJsonResp(_ctx, http.StatusOK, map[string]float64{"total": total})
}

func (h *handler) postPlan(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	p := &dAirdrop.PlanRequest{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		ctx.WithField("err", err).Info("invalid plan request")
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	res, err := h.airdrop.Plan(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getTokens(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId *domain.ChainId `query:"chainId"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	opts := []dAirdrop.TokenFindAllOptionsFunc{}
	if p.ChainId != nil {
		opts = append(opts, dAirdrop.TokenWithChainId(*p.ChainId))
	}

	res, err := h.airdrop.Tokens(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}
