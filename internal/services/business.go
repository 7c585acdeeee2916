package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"fluzio/internal/catalog"
	"fluzio/internal/datastore"
	"fluzio/internal/datastore/redis_store"
	"fluzio/internal/engine"
	"fluzio/internal/models"
	"fluzio/internal/pkg/caching"

	"github.com/go-redsync/redsync/v4"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/uptrace/bun"
)

type ServiceBusiness struct {
	container          *do.Injector
	redisDB            redis.UniversalClient
	rs                 *redsync.Redsync
	postgresDB         *bun.DB
	readonlyPostgresDB *bun.DB
	cache              caching.Cache
	readonlyCache      caching.ReadOnlyCache
}

func NewServiceBusiness(container *do.Injector) (*ServiceBusiness, error) {
	db, err := do.InvokeNamed[redis.UniversalClient](container, "redis-db")
	if err != nil {
		return nil, err
	}

	rs, err := do.Invoke[*redsync.Redsync](container)
	if err != nil {
		return nil, err
	}

	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	readonlyPostgresDB, err := do.InvokeNamed[*bun.DB](container, "db-readonly")
	if err != nil {
		return nil, err
	}

	cache, err := do.Invoke[caching.Cache](container)
	if err != nil {
		return nil, err
	}

	readonlyCache, err := do.Invoke[caching.ReadOnlyCache](container)
	if err != nil {
		return nil, err
	}

	return &ServiceBusiness{container, db, rs, postgresDB, readonlyPostgresDB, cache, readonlyCache}, nil
}

func (service *ServiceBusiness) ValidateAPIKey(apiKey string) (*models.Business, error) {
	ctx := context.Background()
	callback := func() (*models.Business, error) {
		return datastore.FindBusinessByAPIKey(ctx, service.readonlyPostgresDB, apiKey)
	}

	business, err := caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyBusiness(apiKey), CACHE_TTL_15_MINS, callback)
	if err != nil {
		return nil, err
	}

	if business == nil {
		return nil, errors.New("wrong api key")
	}

	return business, nil
}

func (service *ServiceBusiness) GetBusiness(ctx context.Context, businessID int64) (*models.Business, error) {
	callback := func() (*models.Business, error) {
		return datastore.GetBusiness(ctx, service.readonlyPostgresDB, businessID)
	}

	return caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyBusinessByID(businessID), CACHE_TTL_15_MINS, callback)
}

func (service *ServiceBusiness) GetActiveMissions(ctx context.Context, businessID int64) ([]models.MissionActivation, error) {
	callback := func() ([]models.MissionActivation, error) {
		activations, err := datastore.GetActiveMissionsByBusiness(ctx, service.readonlyPostgresDB, businessID)
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return activations, err
	}

	return caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyBusinessMissions(businessID), CACHE_TTL_1_MIN, callback)
}

// GetActiveMissionsWithStats decorates the active set with the live redis
// counters so the dashboard shows fill levels without extra round trips.
func (service *ServiceBusiness) GetActiveMissionsWithStats(ctx context.Context, businessID int64, now time.Time) ([]models.MissionActivation, error) {
	activations, err := service.GetActiveMissions(ctx, businessID)
	if err != nil {
		return nil, err
	}

	for i := range activations {
		total, today, err := redis_store.GetParticipationCounts(ctx, service.redisDB, activations[i].ID, now)
		if err != nil {
			continue
		}
		activations[i].TotalParticipants = total
		activations[i].TodayParticipants = today
		if capacity := engine.HasMissionReachedCap(activations[i].MissionID, total, today); capacity.SpaceRemaining != nil {
			activations[i].SpaceRemaining = capacity.SpaceRemaining
		}
	}

	return activations, nil
}

// PreviewActivation runs the business-side pipeline without committing
// anything. Subscription-tier gating is service-side: the engine only sees
// catalog data and the caller's inputs.
func (service *ServiceBusiness) PreviewActivation(ctx context.Context, business *models.Business, in engine.ActivationInput) (*models.ValidationResult, error) {
	result := engine.ValidateMissionActivation(in)
	service.applyTierGate(result, business, in.MissionID)
	return result, nil
}

// ActivateMission validates and commits an activation, then re-checks the
// catalog CONVERSION invariant over the updated active set.
func (service *ServiceBusiness) ActivateMission(ctx context.Context, business *models.Business, in engine.ActivationInput) (*models.ValidationResult, *models.MissionActivation, error) {
	mutex := service.rs.NewMutex(LockKeyActivation(business.ID, in.MissionID), redsync.WithExpiry(8*time.Second), redsync.WithTries(3))
	if err := mutex.Lock(); err != nil {
		return nil, nil, ErrActivationLock
	}
	//nolint:errcheck
	defer mutex.Unlock()

	result := engine.ValidateMissionActivation(in)
	service.applyTierGate(result, business, in.MissionID)
	if !result.IsValid {
		return result, nil, nil
	}

	existing, err := datastore.GetActivationByBusinessAndMission(ctx, service.postgresDB, business.ID, in.MissionID)
	if err != nil && err != sql.ErrNoRows {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, errorx.Wrap(errors.New("mission already active"), errorx.Invalid)
	}

	activation := &models.MissionActivation{
		BusinessID:      business.ID,
		MissionID:       in.MissionID,
		ProofMethod:     in.ProofMethod,
		RewardPoints:    in.RewardPoints,
		MaxParticipants: in.MaxParticipants,
		Enabled:         true,
		UpdatedAt:       time.Now(),
	}
	if err := datastore.InsertMissionActivation(ctx, service.postgresDB, activation); err != nil {
		return nil, nil, err
	}

	//nolint:errcheck
	service.cache.Delete(ctx, DBKeyBusinessMissions(business.ID))

	if valid, reason := service.checkConversionInvariant(ctx, business); !valid {
		log.Printf("business %d active set violates conversion invariant: %s", business.ID, reason)
	}

	return result, activation, nil
}

func (service *ServiceBusiness) DeactivateMission(ctx context.Context, business *models.Business, missionID string) error {
	if err := datastore.DisableMissionActivation(ctx, service.postgresDB, business.ID, missionID); err != nil {
		return err
	}

	//nolint:errcheck
	service.cache.Delete(ctx, DBKeyBusinessMissions(business.ID))

	if valid, reason := service.checkConversionInvariant(ctx, business); !valid {
		return errorx.Wrap(errors.New(reason), errorx.Invalid)
	}

	return nil
}

func (service *ServiceBusiness) applyTierGate(result *models.ValidationResult, business *models.Business, missionID string) {
	template, ok := catalog.GetMissionByID(missionID)
	if !ok || template.MinSubscriptionTier == nil {
		return
	}

	required := models.SubscriptionTierRank[*template.MinSubscriptionTier]
	current := models.SubscriptionTierRank[business.SubscriptionTier]
	if current < required {
		result.AddError(models.ValidationError{
			Code:          models.CodeMissionNotAvailable,
			Message:       fmt.Sprintf("mission %s requires the %s plan", missionID, *template.MinSubscriptionTier),
			Field:         "subscription_tier",
			RequiredValue: string(*template.MinSubscriptionTier),
			CurrentValue:  string(business.SubscriptionTier),
		})
	}
}

func (service *ServiceBusiness) checkConversionInvariant(ctx context.Context, business *models.Business) (bool, string) {
	activations, err := datastore.GetActiveMissionsByBusiness(ctx, service.postgresDB, business.ID)
	if err != nil {
		return true, ""
	}

	if len(activations) == 0 {
		return true, ""
	}

	activeIDs := make([]string, 0, len(activations))
	for _, activation := range activations {
		activeIDs = append(activeIDs, activation.MissionID)
	}

	return catalog.ValidateCatalogInvariant(business.Type, activeIDs)
}
