package datastore

import (
	"context"
	"time"

	"fluzio/internal/models"
	"fluzio/internal/pkg"

	"github.com/uptrace/bun"
)

func CreateTableProofSubmission(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.ProofSubmission)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.ProofSubmission)(nil)).Index("index_proof_submission_user_created").IfNotExists().Column("user_id", "created_at").Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.ProofSubmission)(nil)).Index("index_proof_submission_activation").IfNotExists().Column("activation_id").Exec(ctx)
	return err
}

func InsertProofSubmission(ctx context.Context, db *bun.DB, submission *models.ProofSubmission) error {
	_, err := db.NewInsert().Model(submission).Exec(ctx)
	return err
}

func GetProofSubmission(ctx context.Context, db *bun.DB, submissionID string) (*models.ProofSubmission, error) {
	var submission models.ProofSubmission
	err := db.NewSelect().Model(&submission).Where("id = ?", submissionID).Scan(ctx)
	if err != nil {
		return nil, err
	}

	return &submission, nil
}

func ListPendingSubmissions(ctx context.Context, db *bun.DB, businessID int64, limit int) ([]models.ProofSubmission, error) {
	var submissions []models.ProofSubmission
	err := db.NewSelect().Model(&submissions).
		Where("business_id = ?", businessID).
		Where("status = ?", models.SubmissionStatusPendingReview).
		Order("created_at ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return submissions, nil
}

func settleSubmissionQuery(db *bun.DB, submissionID string, status models.SubmissionStatus, reviewedAt time.Time) *bun.UpdateQuery {
	return db.NewUpdate().Model((*models.ProofSubmission)(nil)).
		Set("status = ?", status).
		Set("reviewed_at = ?", reviewedAt).
		Set("updated_at = ?", reviewedAt).
		Where("id = ?", submissionID).
		Where("status = ?", models.SubmissionStatusPendingReview)
}

// SettleSubmission flips a PENDING_REVIEW submission to its final status.
// The status predicate makes the settle atomic: of two concurrent reviews of
// the same submission only one affects a row, the other reports false.
func SettleSubmission(ctx context.Context, db *bun.DB, submissionID string, status models.SubmissionStatus, reviewedAt time.Time) (bool, error) {
	res, err := settleSubmissionQuery(db, submissionID, status, reviewedAt).Exec(ctx)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

func CountUserCompletions(ctx context.Context, db *bun.DB, userID int64, activationID int64) (int, error) {
	return db.NewSelect().Model((*models.ProofSubmission)(nil)).
		Where("user_id = ?", userID).
		Where("activation_id = ?", activationID).
		Where("status IN (?)", bun.In([]models.SubmissionStatus{
			models.SubmissionStatusAutoApproved,
			models.SubmissionStatusApproved,
			models.SubmissionStatusPendingReview,
		})).
		Count(ctx)
}

func CountActivationParticipants(ctx context.Context, db *bun.DB, activationID int64, now time.Time) (total int, today int, err error) {
	err = db.NewSelect().Model((*models.ProofSubmission)(nil)).
		ColumnExpr("count(DISTINCT user_id)").
		Where("activation_id = ?", activationID).
		Where("status != ?", models.SubmissionStatusRejected).
		Scan(ctx, &total)
	if err != nil {
		return 0, 0, err
	}

	err = db.NewSelect().Model((*models.ProofSubmission)(nil)).
		ColumnExpr("count(DISTINCT user_id)").
		Where("activation_id = ?", activationID).
		Where("status != ?", models.SubmissionStatusRejected).
		Where("created_at >= ?", pkg.StartOfDay(now)).
		Scan(ctx, &today)
	if err != nil {
		return 0, 0, err
	}

	return total, today, nil
}

// GetUserActivityCounts assembles the rolling-window counts the engine's
// level ceilings run against. The windows are calendar-aligned (UTC day,
// ISO week, month) rather than sliding.
func GetUserActivityCounts(ctx context.Context, db *bun.DB, userID int64, now time.Time) (*models.ActivityCounts, error) {
	counts := &models.ActivityCounts{}

	countSince := func(since time.Time, missionTypes ...models.MissionType) (int, error) {
		q := db.NewSelect().Model((*models.ProofSubmission)(nil)).
			Where("user_id = ?", userID).
			Where("status != ?", models.SubmissionStatusRejected).
			Where("created_at >= ?", since)
		if len(missionTypes) > 0 {
			q = q.Where("mission_type IN (?)", bun.In(missionTypes))
		}
		return q.Count(ctx)
	}

	startOfDay := pkg.StartOfDay(now)
	startOfWeek := pkg.StartOfWeek(now)
	startOfMonth := pkg.StartOfMonth(now)

	var err error
	if counts.MissionsStartedToday, err = countSince(startOfDay); err != nil {
		return nil, err
	}
	if counts.ReviewsToday, err = countSince(startOfDay, models.MissionTypeReview); err != nil {
		return nil, err
	}
	if counts.CheckInsToday, err = countSince(startOfDay, models.MissionTypeCheckIn); err != nil {
		return nil, err
	}
	if counts.HighValueThisWeek, err = countSince(startOfWeek, models.MissionTypeHighValue); err != nil {
		return nil, err
	}
	if counts.UgcThisWeek, err = countSince(startOfWeek, models.MissionTypeUGC); err != nil {
		return nil, err
	}
	if counts.ReferralsThisMonth, err = countSince(startOfMonth, models.MissionTypeReferral); err != nil {
		return nil, err
	}

	return counts, nil
}

// ListUnlockableSubmissions returns approved submissions whose reward lock
// delay has elapsed but whose points have not been credited yet.
func ListUnlockableSubmissions(ctx context.Context, db *bun.DB, now time.Time) ([]models.ProofSubmission, error) {
	var submissions []models.ProofSubmission
	err := db.NewSelect().Model(&submissions).
		Where("status IN (?)", bun.In([]models.SubmissionStatus{
			models.SubmissionStatusAutoApproved,
			models.SubmissionStatusApproved,
		})).
		Where("reward_credited_at IS NULL").
		Where("unlocks_at IS NOT NULL").
		Where("unlocks_at <= ?", now).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return submissions, nil
}

func MarkSubmissionCredited(ctx context.Context, db *bun.DB, submissionID string, creditedAt time.Time) error {
	_, err := db.NewUpdate().Model((*models.ProofSubmission)(nil)).
		Set("reward_credited_at = ?", creditedAt).
		Set("updated_at = ?", creditedAt).
		Where("id = ?", submissionID).
		Where("reward_credited_at IS NULL").
		Exec(ctx)
	return err
}
