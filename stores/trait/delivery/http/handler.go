package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/traitkit/base/ctx"
	"github.com/x-xyz/traitkit/base/delivery"
	"github.com/x-xyz/traitkit/base/log"
	"github.com/x-xyz/traitkit/domain/trait"
)

type handler struct {
	trait trait.UseCase
}

func New(e *echo.Echo, traitUC trait.UseCase) {
	h := &handler{
		trait: traitUC,
	}

	g := e.Group("/traits")

	g.POST("/classify", h.classify)
	g.POST("/group", h.group)
	g.POST("/batch", h.batch)
	g.GET("/format/:traitType", h.format)
}

type classifyResp struct {
	TraitType *trait.TraitType `json:"traitType"`
	Label     string           `json:"label"`
}

func (h *handler) classify(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Trait            trait.Trait            `json:"trait"`
		CollectionTraits trait.CollectionTraits `json:"collectionTraits"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res := classifyResp{Label: trait.FormatTraitType(p.Trait.TraitType)}
	if traitType, ok := h.trait.Classify(p.Trait, p.CollectionTraits); ok {
		res.TraitType = &traitType
	} else {
		ctx.WithField("traitType", p.Trait.TraitType).Debug("trait not classified")
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) group(c echo.Context) error {
	p := struct {
		Traits           []trait.Trait          `json:"traits" validate:"dive"`
		CollectionTraits trait.CollectionTraits `json:"collectionTraits"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, h.trait.Group(p.Traits, p.CollectionTraits))
}

func (h *handler) batch(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Assets []trait.Asset `json:"assets" validate:"max=500,dive"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.trait.ClassifyBatch(ctx, p.Assets)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "assets": len(p.Assets)}).Error("trait.ClassifyBatch failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) format(c echo.Context) error {
	p := struct {
		TraitType string `param:"traitType" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, trait.FormatTraitType(p.TraitType))
}
