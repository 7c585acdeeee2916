package services

import (
	"context"
	"testing"
	"time"

	"fluzio/internal/catalog"
	"fluzio/internal/models"
)

func disabledActivation() *models.MissionActivation {
	return &models.MissionActivation{
		ID:           42,
		BusinessID:   1,
		MissionID:    catalog.MissionFollowSocial,
		ProofMethod:  models.ProofMethodPlatformAPI,
		RewardPoints: 50,
		Enabled:      false,
	}
}

// A deactivated mission must refuse submissions outright, before any limiter
// or counter is consulted.
func TestSubmitProof_DisabledActivation(t *testing.T) {
	service := &ServiceSubmission{}
	user := &models.User{ID: 7, TotalPoints: 500, TrustScore: 60}
	business := &models.Business{ID: 1, Type: models.BusinessTypeOnline, Level: 2}

	result, submission, err := service.SubmitProof(context.Background(), user, business, disabledActivation(), nil, time.Now())
	if err == nil {
		t.Fatal("expected an error for a disabled activation")
	}
	if result != nil || submission != nil {
		t.Error("a disabled activation must produce no result and no submission")
	}
}

func TestValidateParticipation_DisabledActivation(t *testing.T) {
	service := &ServiceSubmission{}
	user := &models.User{ID: 7, TotalPoints: 500, TrustScore: 60}
	business := &models.Business{ID: 1, Type: models.BusinessTypeOnline, Level: 2}

	result, err := service.ValidateParticipation(context.Background(), user, business, disabledActivation(), time.Now())
	if err == nil {
		t.Fatal("expected an error for a disabled activation")
	}
	if result != nil {
		t.Error("a disabled activation must produce no validation result")
	}
}
