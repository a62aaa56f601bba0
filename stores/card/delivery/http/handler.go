package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftcard/base/ctx"
	"github.com/x-xyz/nftcard/base/delivery"
	"github.com/x-xyz/nftcard/domain"
	"github.com/x-xyz/nftcard/domain/card"
	"github.com/x-xyz/nftcard/middleware"
)

type handler struct {
	card card.Usecase
}

func New(e *echo.Echo, card card.Usecase) {
	h := &handler{card}

	e.POST("/card/render", h.render)

	g := e.Group("/card/:chainId/:contract/:tokenId", middleware.IsValidAddress("contract"))

	g.GET("", h.get)

	g.GET("/view", h.getView)

	g.DELETE("/cache", h.invalidate)
}

func parseId(c echo.Context) (card.Id, error) {
	chainId, err := strconv.ParseInt(c.Param("chainId"), 10, 32)
	if err != nil || chainId <= 0 {
		return card.Id{}, domain.ErrInvalidChainId
	}
	tokenId := c.Param("tokenId")
	if len(tokenId) == 0 {
		return card.Id{}, domain.ErrBadParamInput
	}
	return card.Id{
		ChainId:         domain.ChainId(chainId),
		ContractAddress: domain.Address(c.Param("contract")).ToLower(),
		TokenId:         domain.TokenId(tokenId),
	}, nil
}

// get
//
//	@Summary	Render the card of a token
//	@Tags		card
//	@Produce	html
//	@Param		chainId		path	int		true	"chain id"
//	@Param		contract	path	string	true	"contract address"
//	@Param		tokenId		path	string	true	"token id"
//	@Success	200			{string}	string	"html fragment"
//	@Failure	404			{object}	delivery.JsonResponse
//	@Router		/card/{chainId}/{contract}/{tokenId} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	html, err := h.card.RenderById(ctx, id)
	if err != nil {
		ctx.WithField("err", err).WithField("id", id).Warn("card.RenderById failed")
	}
	return delivery.MakeHtmlResp(c, html, err)
}

// getView
//
//	@Summary	Get the display tree of a token card
//	@Tags		card
//	@Produce	json
//	@Param		chainId		path	int		true	"chain id"
//	@Param		contract	path	string	true	"contract address"
//	@Param		tokenId		path	string	true	"token id"
//	@Success	200			{object}	delivery.JsonResponse{data=card.View}
//	@Failure	404			{object}	delivery.JsonResponse
//	@Router		/card/{chainId}/{contract}/{tokenId}/view [get]
func (h *handler) getView(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	v, err := h.card.GetView(ctx, id)
	if err != nil {
		ctx.WithField("err", err).WithField("id", id).Warn("card.GetView failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, v)
}

// invalidate drops the fragment from redis and from this process. Other
// processes keep their local copy for at most card.localCacheTtl.
//
//	@Summary	Drop the cached card of a token
//	@Description	Other replicas may serve their local copy for up to card.localCacheTtl.
//	@Tags		card
//	@Produce	json
//	@Param		chainId		path	int		true	"chain id"
//	@Param		contract	path	string	true	"contract address"
//	@Param		tokenId		path	string	true	"token id"
//	@Success	200			{object}	delivery.JsonResponse
//	@Router		/card/{chainId}/{contract}/{tokenId}/cache [delete]
func (h *handler) invalidate(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.card.Invalidate(ctx, id); err != nil {
		ctx.WithField("err", err).WithField("id", id).Error("card.Invalidate failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

// renderParams only requires metadata to be present. The owner is taken as
// is, short or malformed owners still render.
type renderParams struct {
	Metadata *card.TokenMetadata `json:"metadata" validate:"required"`
	Owner    domain.Address      `json:"owner"`
}

// render
//
//	@Summary	Render a card from a supplied token record
//	@Tags		card
//	@Accept		json
//	@Produce	html
//	@Param		body	body		card.TokenRecord	true	"token record"
//	@Success	200		{string}	string	"html fragment"
//	@Failure	400		{object}	delivery.JsonResponse
//	@Router		/card/render [post]
func (h *handler) render(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &renderParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	html, err := h.card.Render(ctx, card.TokenRecord{
		Metadata: *p.Metadata,
		Owner:    p.Owner,
	})
	return delivery.MakeHtmlResp(c, html, err)
}
