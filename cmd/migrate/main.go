package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"fluzio/internal/datastore"
	"fluzio/internal/models"
	"fluzio/internal/services"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/urfave/cli/v2"
)

func init() {
	// for development
	//nolint:errcheck
	godotenv.Load("../../.env")

	// for production
	//nolint:errcheck
	godotenv.Load("./.env")
}

func main() {
	app := &cli.App{
		Name: "migrate",
		Commands: []*cli.Command{
			commandMigration(),
			commandConfigMigration(),
			commandSeedBusiness(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandMigration() *cli.Command {
	return &cli.Command{
		Name: "migrate",
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableBusiness(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableUser(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableMissionActivation(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableProofSubmission(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableConfig(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			fmt.Println("Migration success")

			return nil
		},
	}
}

// insert default configs to db
func commandConfigMigration() *cli.Command {
	return &cli.Command{
		Name:        "migrate-config",
		Description: "Insert default configs to db",
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

			configs := []models.Config{
				{Key: services.CONFIG_SERVER_MODE, Value: "production"},
				{Key: services.CONFIG_TRUST_DECAY_BASELINE, Value: "50"},
				{Key: services.CONFIG_TRUST_DECAY_STEP, Value: "2"},
				{Key: services.CONFIG_FEATURED_MISSIONS_LIMIT, Value: "3"},
				{Key: "CRONJOB_TIME_RECONCILE", Value: "10 0 * * *"},
				{Key: "CRONJOB_TIME_TRUST_DECAY", Value: "0 3 * * 1"},
				{Key: "CRONJOB_TIME_REWARD_UNLOCK", Value: "@every 1h"},
			}

			for _, config := range configs {
				_, err = db.NewInsert().Model(&config).Exec(ctx)
				if err != nil {
					log.Println(err)
				}
			}

			fmt.Println("Migration success")

			return nil
		},
	}
}

func commandSeedBusiness() *cli.Command {
	return &cli.Command{
		Name:        "seed-business",
		Description: "Insert a demo business with a fresh api key",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Value: "Demo Cafe",
			},
			&cli.StringFlag{
				Name:  "type",
				Value: string(models.BusinessTypePhysical),
			},
		},
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

			business := &models.Business{
				Name:             c.String("name"),
				Slug:             uuid.NewString()[:8],
				APIKey:           uuid.NewString(),
				Type:             models.BusinessType(c.String("type")),
				Level:            1,
				SubscriptionTier: models.SubscriptionTierStarter,
				TrustScore:       50,
				Enabled:          true,
			}

			if err := datastore.CreateBusiness(ctx, db, business); err != nil {
				return err
			}

			fmt.Println("Business created, id:", business.ID, "api key:", business.APIKey)

			return nil
		},
	}
}

func getDb() (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(os.Getenv("DB_DSN")),
		pgdriver.WithPassword(os.Getenv("DB_PASSWORD")),
	))

	db := bun.NewDB(sqldb, pgdialect.New())
	return db, nil
}
