package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fluzio/internal/catalog"
	"fluzio/internal/datastore"
	"fluzio/internal/models"
	"fluzio/internal/pkg/caching"

	"github.com/go-redsync/redsync/v4"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/uptrace/bun"
)

var ErrUserLock = errors.New("user locked")

type ServiceUser struct {
	container          *do.Injector
	redisDB            redis.UniversalClient
	rs                 *redsync.Redsync
	postgresDB         *bun.DB
	readonlyPostgresDB *bun.DB
	cache              caching.Cache
	readonlyCache      caching.ReadOnlyCache

	serviceConfig *ServiceConfig
}

func NewServiceUser(container *do.Injector) (*ServiceUser, error) {
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

	serviceConfig, err := do.Invoke[*ServiceConfig](container)
	if err != nil {
		return nil, err
	}

	return &ServiceUser{container, db, rs, postgresDB, readonlyPostgresDB, cache, readonlyCache, serviceConfig}, nil
}

func (service *ServiceUser) FindOrCreateUser(ctx context.Context, userAuth *models.UserFromAuth) (*models.User, error) {
	if userAuth == nil {
		return nil, errors.New("userAuth is nil")
	}

	callback := func() (*models.User, error) {
		user, err := datastore.GetUser(ctx, service.postgresDB, userAuth.ID)
		if err == nil {
			return user, nil
		}
		if err != sql.ErrNoRows {
			return nil, err
		}

		baseline, _ := service.serviceConfig.GetIntConfig(ctx, CONFIG_TRUST_DECAY_BASELINE, TRUST_DECAY_DEFAULT_BASELINE)
		user = &models.User{
			ID:         userAuth.ID,
			Username:   userAuth.Username,
			FirstName:  userAuth.FirstName,
			LastName:   userAuth.LastName,
			TrustScore: baseline,
			Enabled:    true,
			UpdatedAt:  time.Now(),
			IsNewUser:  true,
		}
		if err := datastore.CreateUser(ctx, service.postgresDB, user); err != nil {
			return nil, err
		}

		return user, nil
	}

	user, err := caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyUser(userAuth.ID), CACHE_TTL_1_MIN, callback)
	if err != nil {
		return nil, err
	}

	service.decorateLevel(user)
	return user, nil
}

func (service *ServiceUser) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	callback := func() (*models.User, error) {
		return datastore.GetUser(ctx, service.readonlyPostgresDB, userID)
	}

	user, err := caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyUser(userID), CACHE_TTL_1_MIN, callback)
	if err != nil {
		return nil, err
	}

	service.decorateLevel(user)
	return user, nil
}

// CreditReward applies the level multiplier captured on the submission and
// adds the points. Callers pass the submission so the multiplier used is
// the one frozen at submit time.
func (service *ServiceUser) CreditReward(ctx context.Context, submission *models.ProofSubmission) error {
	points := int(float64(submission.RewardPoints) * submission.Multiplier)
	if err := datastore.AddUserPoints(ctx, service.postgresDB, submission.UserID, points); err != nil {
		return err
	}

	//nolint:errcheck
	service.cache.Delete(ctx, DBKeyUser(submission.UserID))
	return nil
}

func (service *ServiceUser) GetLevelProgress(user *models.User) models.NextLevelProgress {
	level := catalog.CalculateUserLevel(user.TotalPoints)
	return catalog.GetNextLevelRequirements(level, user.TotalPoints)
}

// decorateLevel fills the derived level fields. Levels are always
// recomputed from points so the UI and engine can never disagree.
func (service *ServiceUser) decorateLevel(user *models.User) {
	if user == nil {
		return
	}

	level := catalog.CalculateUserLevel(user.TotalPoints)
	config := catalog.GetUserLevelConfig(level)
	progress := catalog.GetNextLevelRequirements(level, user.TotalPoints)

	user.Level = level
	user.LevelName = config.Name
	user.Progress = &progress
}
