package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftcard/base/ctx"
	"github.com/x-xyz/nftcard/base/delivery"
	hcdomain "github.com/x-xyz/nftcard/domain/healthcheck"
)

type handler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

// New registers GET /health, answering 503 while mongo or redis is unreachable
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	h := &handler{healthCheck: us}
	e.GET("/health", h.check)
}

func (h *handler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	if err := h.healthCheck.Check(context); err != nil {
		context.WithField("err", err).Error("healthCheck.Check failed")
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "healthy")
}
