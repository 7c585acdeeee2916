package handler

import (
	"fluzio/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupUser struct {
	container *do.Injector
}

func (gr *groupUser) Me(c echo.Context) error {
	user, err := ResolveValidUser(c.Request().Context(), gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, user, nil)
}

func (gr *groupUser) LevelProgress(c echo.Context) error {
	user, err := ResolveValidUser(c.Request().Context(), gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceUser, err := do.Invoke[*services.ServiceUser](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	return httpx.RestAbort(c, serviceUser.GetLevelProgress(user), nil)
}
