package datastore

import (
	"context"
	"fluzio/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableBusiness(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Business)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Business)(nil)).Index("index_business_api_key").Unique().IfNotExists().Column("api_key").Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Business)(nil)).Index("index_business_slug").Unique().IfNotExists().Column("slug").Exec(ctx)
	return err
}

func FindBusinessByAPIKey(ctx context.Context, db *bun.DB, apiKey string) (*models.Business, error) {
	var business models.Business
	err := db.NewSelect().Model(&business).Where("api_key = ?", apiKey).Where("enabled = ?", true).Scan(ctx)
	if err != nil {
		return nil, err
	}

	return &business, nil
}

func GetBusiness(ctx context.Context, db *bun.DB, businessID int64) (*models.Business, error) {
	var business models.Business
	err := db.NewSelect().Model(&business).Where("id = ?", businessID).Scan(ctx)
	if err != nil {
		return nil, err
	}

	return &business, nil
}

func CreateBusiness(ctx context.Context, db *bun.DB, business *models.Business) error {
	_, err := db.NewInsert().Model(business).Exec(ctx)
	return err
}
