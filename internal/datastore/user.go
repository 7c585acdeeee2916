package datastore

import (
	"context"
	"time"

	"fluzio/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableUser(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.User)(nil)).IfNotExists().Exec(ctx)
	return err
}

func GetUser(ctx context.Context, db *bun.DB, userID int64) (*models.User, error) {
	var user models.User
	err := db.NewSelect().Model(&user).Where("id = ?", userID).Scan(ctx)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func CreateUser(ctx context.Context, db *bun.DB, user *models.User) error {
	_, err := db.NewInsert().Model(user).Exec(ctx)
	return err
}

func AddUserPoints(ctx context.Context, db *bun.DB, userID int64, points int) error {
	_, err := db.NewUpdate().Model((*models.User)(nil)).
		Set("total_points = total_points + ?", points).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	return err
}

func UpdateUserTrustScore(ctx context.Context, db *bun.DB, userID int64, trustScore int) error {
	_, err := db.NewUpdate().Model((*models.User)(nil)).
		Set("trust_score = ?", trustScore).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	return err
}

// DecayTrustScores nudges every score one step toward baseline. Run weekly
// from the cron binary so one bad stretch does not mark a user forever.
func DecayTrustScores(ctx context.Context, db *bun.DB, baseline int, step int) error {
	_, err := db.NewUpdate().Model((*models.User)(nil)).
		Set("trust_score = LEAST(trust_score + ?, ?)", step, baseline).
		Where("trust_score < ?", baseline).
		Exec(ctx)
	return err
}
