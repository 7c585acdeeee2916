package handler

import (
	"context"
	"errors"
	"strings"

	"fluzio/internal/models"
	"fluzio/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type ctxKey string

var ctxKeyAuthUser ctxKey = "AUTH_USER"
var ctxKeyAuthBusiness ctxKey = "AUTH_BUSINESS"

func Authn(verifier interface {
	Validate(token string) (*models.UserFromAuth, error)
},
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}

			parts := strings.Split(header, "Bearer")
			if len(parts) != 2 {
				return next(c)
			}

			token := strings.TrimSpace(parts[1])
			if len(token) == 0 {
				return next(c)
			}

			user, err := verifier.Validate(token)
			if err != nil {
				// although it's a client error, we don't want to detailed information
				//nolint:errcheck
				httpx.Abort(c, errorx.Wrap(errors.New("invalid access token"), errorx.Authn), -1)
				return nil
			}

			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, ctxKeyAuthUser, user)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func ResolveValidUser(ctx context.Context, container *do.Injector) (*models.User, error) {
	userAuth, ok := ctx.Value(ctxKeyAuthUser).(*models.UserFromAuth)
	if !ok {
		return nil, errorx.Wrap(errors.New("missing session"), errorx.Authn)
	}

	serviceUser, err := do.Invoke[*services.ServiceUser](container)
	if err != nil {
		return nil, err
	}

	return serviceUser.FindOrCreateUser(ctx, userAuth)
}

// middleware function to check valid business via api key header, save business to context
func AuthnBusiness(verifier interface {
	ValidateAPIKey(apiKey string) (*models.Business, error)
},
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("X-Api-Key")
			if header == "" {
				httpx.Abort(c, errorx.Wrap(errors.New("unauthorized"), errorx.Authn), -1)
				return nil
			}

			business, err := verifier.ValidateAPIKey(header)
			if err != nil {
				httpx.Abort(c, errorx.Wrap(errors.New("unauthorized"), errorx.Authn), -1)
				return nil
			}

			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, ctxKeyAuthBusiness, business)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func ResolveValidBusiness(ctx context.Context) (*models.Business, error) {
	business, ok := ctx.Value(ctxKeyAuthBusiness).(*models.Business)
	if !ok {
		return nil, errorx.Wrap(errors.New("missing session"), errorx.Authn)
	}

	return business, nil
}
