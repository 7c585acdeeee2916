package handler

import (
	"time"

	"fluzio/internal/engine"
	"fluzio/internal/models"
	"fluzio/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupBusiness struct {
	container *do.Injector
}

type activateMissionPayload struct {
	ProofMethod     models.ProofMethod `json:"proof_method"`
	RewardPoints    int                `json:"reward_points"`
	MaxParticipants *int               `json:"max_participants"`
}

type reviewSubmissionPayload struct {
	Approved bool `json:"approved"`
}

func (gr *groupBusiness) Me(c echo.Context) error {
	business, err := ResolveValidBusiness(c.Request().Context())
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, business, nil)
}

func (gr *groupBusiness) GetActiveMissions(c echo.Context) error {
	ctx := c.Request().Context()

	business, err := ResolveValidBusiness(ctx)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceBusiness, err := do.Invoke[*services.ServiceBusiness](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	activations, err := serviceBusiness.GetActiveMissionsWithStats(ctx, business.ID, time.Now())
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, activations, nil)
}

func (gr *groupBusiness) PreviewActivation(c echo.Context) error {
	ctx := c.Request().Context()

	business, input, err := gr.bindActivation(c)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceBusiness, err := do.Invoke[*services.ServiceBusiness](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	result, err := serviceBusiness.PreviewActivation(ctx, business, input)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, result, nil)
}

func (gr *groupBusiness) ActivateMission(c echo.Context) error {
	ctx := c.Request().Context()

	business, input, err := gr.bindActivation(c)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceBusiness, err := do.Invoke[*services.ServiceBusiness](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	result, activation, err := serviceBusiness.ActivateMission(ctx, business, input)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, map[string]interface{}{
		"result":     result,
		"activation": activation,
	}, nil)
}

func (gr *groupBusiness) DeactivateMission(c echo.Context) error {
	ctx := c.Request().Context()

	business, err := ResolveValidBusiness(ctx)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceBusiness, err := do.Invoke[*services.ServiceBusiness](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	err = serviceBusiness.DeactivateMission(ctx, business, c.Param("id"))
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, "success", nil)
}

func (gr *groupBusiness) ListPendingReviews(c echo.Context) error {
	ctx := c.Request().Context()

	business, err := ResolveValidBusiness(ctx)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceSubmission, err := do.Invoke[*services.ServiceSubmission](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	submissions, err := serviceSubmission.ListPendingReviews(ctx, business)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, submissions, nil)
}

func (gr *groupBusiness) ReviewSubmission(c echo.Context) error {
	ctx := c.Request().Context()

	business, err := ResolveValidBusiness(ctx)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var payload reviewSubmissionPayload
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	serviceSubmission, err := do.Invoke[*services.ServiceSubmission](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	submission, err := serviceSubmission.ReviewSubmission(ctx, business, c.Param("id"), payload.Approved, time.Now())
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, submission, nil)
}

func (gr *groupBusiness) bindActivation(c echo.Context) (*models.Business, engine.ActivationInput, error) {
	business, err := ResolveValidBusiness(c.Request().Context())
	if err != nil {
		return nil, engine.ActivationInput{}, err
	}

	var payload activateMissionPayload
	if err := c.Bind(&payload); err != nil {
		return nil, engine.ActivationInput{}, errorx.Wrap(err, errorx.Invalid)
	}

	input := engine.ActivationInput{
		MissionID:       c.Param("id"),
		BusinessType:    business.Type,
		BusinessLevel:   business.Level,
		ProofMethod:     payload.ProofMethod,
		RewardPoints:    payload.RewardPoints,
		MaxParticipants: payload.MaxParticipants,
	}

	return business, input, nil
}
