package services

import (
	"context"
	"time"

	"fluzio/internal/catalog"
	"fluzio/internal/datastore"
	"fluzio/internal/datastore/redis_store"
	"fluzio/internal/models"
	"fluzio/internal/pkg/caching"

	wr "github.com/mroth/weightedrand/v2"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/uptrace/bun"
)

// Featured-pick weights by business need. Conversion missions get the
// heaviest weight so the invariant-critical need stays visible.
var featuredNeedWeights = map[models.BusinessNeed]int{
	models.BusinessNeedConversion: 5,
	models.BusinessNeedTraffic:    4,
	models.BusinessNeedLoyalty:    3,
	models.BusinessNeedReputation: 3,
	models.BusinessNeedContent:    2,
	models.BusinessNeedReferral:   2,
}

const FEATURED_MISSIONS_DEFAULT_LIMIT = 3

type CatalogView struct {
	Version  string                   `json:"version"`
	Missions []models.MissionTemplate `json:"missions"`
}

type ServiceMission struct {
	container          *do.Injector
	redisDB            redis.UniversalClient
	readonlyPostgresDB *bun.DB
	cache              caching.Cache
	readonlyCache      caching.ReadOnlyCache

	serviceConfig *ServiceConfig
}

func NewServiceMission(container *do.Injector) (*ServiceMission, error) {
	db, err := do.InvokeNamed[redis.UniversalClient](container, "redis-db")
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

	return &ServiceMission{container, db, readonlyPostgresDB, cache, readonlyCache, serviceConfig}, nil
}

func (service *ServiceMission) GetCatalog(businessType models.BusinessType) CatalogView {
	return CatalogView{
		Version:  catalog.Version,
		Missions: catalog.GetMissionsByBusinessType(businessType),
	}
}

// GetMissionsByNeed narrows the need filter to templates the business type
// can actually run; both query filters apply together.
func (service *ServiceMission) GetMissionsByNeed(businessType models.BusinessType, need models.BusinessNeed) []models.MissionTemplate {
	var missions []models.MissionTemplate
	for _, template := range catalog.GetMissionsByNeed(need) {
		if template.AllowsBusinessType(businessType) {
			missions = append(missions, template)
		}
	}
	return missions
}

// GetFeaturedMissions picks up to limit distinct templates for the business
// type, weighted by business need, so the featured shelf rotates but favors
// conversion and traffic missions.
func (service *ServiceMission) GetFeaturedMissions(ctx context.Context, businessType models.BusinessType) ([]models.MissionTemplate, error) {
	limit, _ := service.serviceConfig.GetIntConfig(ctx, CONFIG_FEATURED_MISSIONS_LIMIT, FEATURED_MISSIONS_DEFAULT_LIMIT)

	candidates := catalog.GetMissionsByBusinessType(businessType)
	if len(candidates) <= limit {
		return candidates, nil
	}

	choices := make([]wr.Choice[models.MissionTemplate, int], 0, len(candidates))
	for _, template := range candidates {
		weight := featuredNeedWeights[template.BusinessNeed]
		if weight == 0 {
			weight = 1
		}
		choices = append(choices, wr.NewChoice(template, weight))
	}

	featured := make([]models.MissionTemplate, 0, limit)
	picked := map[string]bool{}
	for len(featured) < limit {
		chooser, err := wr.NewChooser(choices...)
		if err != nil {
			return nil, err
		}

		template := chooser.Pick()
		if picked[template.ID] {
			continue
		}
		picked[template.ID] = true
		featured = append(featured, template)
	}

	return featured, nil
}

// GetActivationStats serves the live counters, falling back to the last
// cron snapshot when the counters are unreadable.
func (service *ServiceMission) GetActivationStats(ctx context.Context, activationID int64, now time.Time) (*models.ActivationStats, error) {
	total, today, err := redis_store.GetParticipationCounts(ctx, service.redisDB, activationID, now)
	if err != nil {
		return redis_store.GetActivationSnapshot(ctx, service.redisDB, activationID)
	}

	return &models.ActivationStats{
		TotalParticipants: total,
		TodayParticipants: today,
		AsOf:              now,
	}, nil
}

func (service *ServiceMission) GetActivation(ctx context.Context, activationID int64) (*models.MissionActivation, error) {
	return datastore.GetMissionActivation(ctx, service.readonlyPostgresDB, activationID)
}
