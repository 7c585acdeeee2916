package handler

import (
	"context"
	"strconv"
	"time"

	"fluzio/internal/models"
	"fluzio/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupSubmission struct {
	container *do.Injector
}

type submitProofPayload struct {
	Proof map[string]any `json:"proof"`
}

// Validate is the dry-run behind the "Start mission" button: full
// ValidationResult, nothing committed.
func (gr *groupSubmission) Validate(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	activation, business, err := gr.resolveActivation(ctx, c.Param("id"))
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceSubmission, err := do.Invoke[*services.ServiceSubmission](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	result, err := serviceSubmission.ValidateParticipation(ctx, user, business, activation, time.Now())
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, result, nil)
}

func (gr *groupSubmission) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	activation, business, err := gr.resolveActivation(ctx, c.Param("id"))
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var payload submitProofPayload
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	serviceSubmission, err := do.Invoke[*services.ServiceSubmission](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	result, submission, err := serviceSubmission.SubmitProof(ctx, user, business, activation, payload.Proof, time.Now())
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, map[string]interface{}{
		"result":     result,
		"submission": submission,
	}, nil)
}

func (gr *groupSubmission) resolveActivation(ctx context.Context, idParam string) (*models.MissionActivation, *models.Business, error) {
	activationID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		return nil, nil, errorx.Wrap(err, errorx.Invalid)
	}

	serviceMission, err := do.Invoke[*services.ServiceMission](gr.container)
	if err != nil {
		return nil, nil, errorx.Wrap(err, errorx.Service)
	}

	activation, err := serviceMission.GetActivation(ctx, activationID)
	if err != nil {
		return nil, nil, errorx.Wrap(err, errorx.NotExist)
	}

	serviceBusiness, err := do.Invoke[*services.ServiceBusiness](gr.container)
	if err != nil {
		return nil, nil, errorx.Wrap(err, errorx.Service)
	}

	business, err := serviceBusiness.GetBusiness(ctx, activation.BusinessID)
	if err != nil {
		return nil, nil, errorx.Wrap(err, errorx.NotExist)
	}

	return activation, business, nil
}
