package http

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/traitkit/base/ctx"
	"github.com/x-xyz/traitkit/base/delivery"
	"github.com/x-xyz/traitkit/base/metrics"
	"github.com/x-xyz/traitkit/domain"
	"github.com/x-xyz/traitkit/service/provider"
)

type handler struct {
	env     provider.Environment
	metrics metrics.Service
}

func New(e *echo.Echo, env provider.Environment, m metrics.Service) {
	h := &handler{
		env:     env,
		metrics: m,
	}

	g := e.Group("/provider")

	g.GET("", h.acquire)
}

type acquireResp struct {
	AcquisitionId string           `json:"acquisitionId"`
	Capability    string           `json:"capability"`
	State         string           `json:"state"`
	ChainId       domain.ChainId   `json:"chainId"`
	Accounts      []common.Address `json:"accounts,omitempty"`
}

// acquire runs a new acquisition against the detected environment each call
func (h *handler) acquire(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	a := provider.NewAcquisition(h.env, h.metrics)
	p, err := a.Resolve(ctx)
	if err != nil {
		ctx.WithField("err", err).Warn("Resolve failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	chainId, err := p.ChainID(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("ChainID failed")
		return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, acquireResp{
		AcquisitionId: a.Id(),
		Capability:    h.env.Capability().String(),
		State:         a.State().String(),
		ChainId:       domain.ChainId(chainId.Int64()),
		Accounts:      a.Accounts(),
	})
}
