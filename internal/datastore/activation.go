package datastore

import (
	"context"
	"time"

	"fluzio/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableMissionActivation(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.MissionActivation)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.MissionActivation)(nil)).Index("index_mission_activation_business_mission").IfNotExists().Column("business_id", "mission_id").Exec(ctx)
	return err
}

func InsertMissionActivation(ctx context.Context, db *bun.DB, activation *models.MissionActivation) error {
	_, err := db.NewInsert().Model(activation).Exec(ctx)
	return err
}

func GetMissionActivation(ctx context.Context, db *bun.DB, activationID int64) (*models.MissionActivation, error) {
	var activation models.MissionActivation
	err := db.NewSelect().Model(&activation).
		Where("id = ?", activationID).
		Where("enabled = ?", true).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return &activation, nil
}

func GetActivationByBusinessAndMission(ctx context.Context, db *bun.DB, businessID int64, missionID string) (*models.MissionActivation, error) {
	var activation models.MissionActivation
	err := db.NewSelect().Model(&activation).
		Where("business_id = ?", businessID).
		Where("mission_id = ?", missionID).
		Where("enabled = ?", true).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return &activation, nil
}

func GetActiveMissionsByBusiness(ctx context.Context, db *bun.DB, businessID int64) ([]models.MissionActivation, error) {
	var activations []models.MissionActivation
	err := db.NewSelect().Model(&activations).
		Where("business_id = ?", businessID).
		Where("enabled = ?", true).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return activations, nil
}

func DisableMissionActivation(ctx context.Context, db *bun.DB, businessID int64, missionID string) error {
	_, err := db.NewUpdate().Model((*models.MissionActivation)(nil)).
		Set("enabled = ?", false).
		Set("updated_at = ?", time.Now()).
		Where("business_id = ?", businessID).
		Where("mission_id = ?", missionID).
		Exec(ctx)
	return err
}

func ListEnabledActivations(ctx context.Context, db *bun.DB) ([]models.MissionActivation, error) {
	var activations []models.MissionActivation
	err := db.NewSelect().Model(&activations).Where("enabled = ?", true).Scan(ctx)
	if err != nil {
		return nil, err
	}

	return activations, nil
}
