package http

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/traitkit/base/ctx"
	"github.com/x-xyz/traitkit/base/delivery"
	"github.com/x-xyz/traitkit/base/denomination"
	"github.com/x-xyz/traitkit/base/log"
	"github.com/x-xyz/traitkit/domain"
)

type handler struct{}

func New(e *echo.Echo, m ...echo.MiddlewareFunc) {
	h := &handler{}

	g := e.Group("/coin")
	g.GET("/denomination", h.getDenomination, m...)
}

type denominationResp struct {
	Value float64 `json:"value"`
	// Exact is only set when the raw value is an integer string
	Exact *string `json:"exact,omitempty"`
}

func (h *handler) getDenomination(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Value    string `query:"value" validate:"required"`
		Decimals uint8  `query:"decimals"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	value, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		ctx.WithFields(log.Fields{"value": p.Value, "err": err}).Debug("strconv.ParseFloat failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	// NaN and Inf parse but cannot be encoded as JSON
	if math.IsNaN(value) || math.IsInf(value, 0) {
		ctx.WithField("value", p.Value).Debug("non-finite value")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	res := denominationResp{Value: denomination.ToBaseDenomination(value, p.Decimals)}
	if exact, ok := denomination.ParseSmallestUnit(p.Value, p.Decimals); ok {
		s := exact.String()
		res.Exact = &s
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
