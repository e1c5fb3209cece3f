package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/traitkit/base/ctx"
	"github.com/x-xyz/traitkit/base/delivery"
	"github.com/x-xyz/traitkit/base/log"
	"github.com/x-xyz/traitkit/domain"
	"github.com/x-xyz/traitkit/domain/network"
)

type handler struct{}

func New(e *echo.Echo, m ...echo.MiddlewareFunc) {
	h := &handler{}

	g := e.Group("/networks")

	g.GET("/:name", h.resolve, m...)
}

type resolveResp struct {
	Network    network.Network `json:"network"`
	ChainId    domain.ChainId  `json:"chainId"`
	Testnet    bool            `json:"testnet"`
	Recognized bool            `json:"recognized"`
}

func (h *handler) resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Name string `param:"name" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	n := network.FromString(p.Name)
	_, recognized := network.Lookup(p.Name)
	if !recognized {
		ctx.WithFields(log.Fields{
			"name":    p.Name,
			"network": n,
		}).Warn("unrecognized network name, defaulting")
	}

	return delivery.MakeJsonResp(c, http.StatusOK, resolveResp{
		Network:    n,
		ChainId:    n.ChainId(),
		Testnet:    n.IsTestnet(),
		Recognized: recognized,
	})
}
