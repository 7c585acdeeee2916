package handler

import (
	"errors"

	"fluzio/internal/catalog"
	"fluzio/internal/models"
	"fluzio/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupMission struct {
	container *do.Injector
}

func (gr *groupMission) GetCatalog(c echo.Context) error {
	businessType, err := parseBusinessType(c.QueryParam("type"))
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	serviceMission, err := do.Invoke[*services.ServiceMission](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	if needParam := c.QueryParam("need"); needParam != "" {
		missions := serviceMission.GetMissionsByNeed(businessType, models.BusinessNeed(needParam))
		return httpx.RestAbort(c, missions, nil)
	}

	return httpx.RestAbort(c, serviceMission.GetCatalog(businessType), nil)
}

func (gr *groupMission) GetFeatured(c echo.Context) error {
	ctx := c.Request().Context()

	businessType, err := parseBusinessType(c.QueryParam("type"))
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	serviceMission, err := do.Invoke[*services.ServiceMission](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	missions, err := serviceMission.GetFeaturedMissions(ctx, businessType)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, missions, nil)
}

func (gr *groupMission) Show(c echo.Context) error {
	template, ok := catalog.GetMissionByID(c.Param("id"))
	if !ok {
		return httpx.RestAbort(c, nil, errorx.Wrap(errors.New("mission not found"), errorx.NotExist))
	}

	return httpx.RestAbort(c, template, nil)
}

func parseBusinessType(param string) (models.BusinessType, error) {
	switch models.BusinessType(param) {
	case models.BusinessTypePhysical, models.BusinessTypeOnline, models.BusinessTypeHybrid:
		return models.BusinessType(param), nil
	case "":
		return models.BusinessTypeHybrid, nil
	}
	return "", errors.New("invalid business type")
}
