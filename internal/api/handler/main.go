package handler

import (
	"net/http"

	"fluzio/internal/catalog"
	"fluzio/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do"
)

type Config struct {
	Container *do.Injector
	Mode      string
	Origins   []string
}

func New(cfg *Config) (http.Handler, error) {
	r := echo.New()
	r.Pre(middleware.RemoveTrailingSlash())
	if cfg.Mode == "debug" {
		r.Debug = true
		pprof.Register(r)
	}

	r.JSONSerializer = httpx.SegmentJSONSerializer{}
	r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339}\t${method}\t${uri}\t${status}\t${latency_human}\n",
	}))
	r.Use(middleware.Recover())

	r.GET("", func(c echo.Context) error {
		return c.String(http.StatusOK, catalog.Version)
	})

	routesAPIv1 := r.Group("/api/v1")
	{
		authentication, err := do.Invoke[*services.Authentication](cfg.Container)
		if err != nil {
			return nil, err
		}
		cors := middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.Origins,
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
			AllowCredentials: true,
			MaxAge:           60 * 60,
		})

		routesAPIv1.Use(cors)
		routesAPIv1.Use(Authn(authentication)) // Authn will NOT terminate unauthenticated request.
		routesAPIv1.GET("", Hello)

		m := groupMission{cfg.Container}
		routesAPIv1.GET("/missions", m.GetCatalog)
		routesAPIv1.GET("/missions/featured", m.GetFeatured)
		routesAPIv1.GET("/missions/:id", m.Show)

		u := groupUser{cfg.Container}
		routesAPIv1.GET("/user/me", u.Me)
		routesAPIv1.GET("/user/me/level", u.LevelProgress)

		s := groupSubmission{cfg.Container}
		routesAPIv1.POST("/missions/:id/validate", s.Validate)
		routesAPIv1.POST("/missions/:id/submissions", s.Submit)

		routesAPIv1Business := routesAPIv1.Group("/business")
		{
			serviceBusiness, err := do.Invoke[*services.ServiceBusiness](cfg.Container)
			if err != nil {
				return nil, err
			}

			routesAPIv1Business.Use(AuthnBusiness(serviceBusiness))
			b := groupBusiness{cfg.Container}
			routesAPIv1Business.GET("/me", b.Me)
			routesAPIv1Business.GET("/missions", b.GetActiveMissions)
			routesAPIv1Business.POST("/missions/:id/preview", b.PreviewActivation)
			routesAPIv1Business.POST("/missions/:id/activate", b.ActivateMission)
			routesAPIv1Business.DELETE("/missions/:id", b.DeactivateMission)
			routesAPIv1Business.GET("/submissions", b.ListPendingReviews)
			routesAPIv1Business.POST("/submissions/:id/review", b.ReviewSubmission)
		}
	}

	return r, nil
}

func Hello(c echo.Context) error {
	return httpx.RestAbort(c, "hello world", nil)
}
