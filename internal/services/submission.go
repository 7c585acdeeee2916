package services

import (
	"context"
	"time"

	"fluzio/internal/catalog"
	"fluzio/internal/datastore"
	"fluzio/internal/datastore/redis_store"
	"fluzio/internal/engine"
	"fluzio/internal/interfaces"
	"fluzio/internal/models"
	"fluzio/internal/pkg/caching"

	"github.com/go-redis/redis_rate/v10"
	"github.com/go-redsync/redsync/v4"
	"github.com/google/uuid"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/uptrace/bun"
)

type ServiceSubmission struct {
	container          *do.Injector
	redisDB            redis.UniversalClient
	rs                 *redsync.Redsync
	postgresDB         *bun.DB
	readonlyPostgresDB *bun.DB
	cache              caching.Cache
	readonlyCache      caching.ReadOnlyCache
	limiter            interfaces.Limiter

	serviceUser *ServiceUser
}

func NewServiceSubmission(container *do.Injector) (*ServiceSubmission, error) {
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

	limiter, err := do.Invoke[interfaces.Limiter](container)
	if err != nil {
		return nil, err
	}

	serviceUser, err := do.Invoke[*ServiceUser](container)
	if err != nil {
		return nil, err
	}

	return &ServiceSubmission{container, db, rs, postgresDB, readonlyPostgresDB, cache, readonlyCache, limiter, serviceUser}, nil
}

// ValidateParticipation is the dry-run the client calls before showing the
// proof capture UI. It gathers the live counts and runs the full pipeline
// without committing anything.
func (service *ServiceSubmission) ValidateParticipation(ctx context.Context, user *models.User, business *models.Business, activation *models.MissionActivation, now time.Time) (*models.ValidationResult, error) {
	if !activation.Enabled {
		return nil, errorx.Wrap(errActivationDisabled, errorx.NotExist)
	}

	if err := service.limiter.Allow(ctx, LimitKeyUserValidation(user.ID), redis_rate.PerMinute(VALIDATION_RATE_LIMIT_PER_MINUTE)); err != nil {
		return nil, errorx.Wrap(err, errorx.RateLimiting)
	}

	activationInput, participationInput, err := service.buildInputs(ctx, user, business, activation, now)
	if err != nil {
		return nil, err
	}

	return engine.ValidateMissionCompletely(activationInput, participationInput), nil
}

// SubmitProof commits a proof submission. The whole read-validate-write path
// runs under a per-(user, activation) mutex so concurrent submissions cannot
// slip past the caps or the cooldown.
func (service *ServiceSubmission) SubmitProof(ctx context.Context, user *models.User, business *models.Business, activation *models.MissionActivation, payload map[string]any, now time.Time) (*models.ValidationResult, *models.ProofSubmission, error) {
	if !activation.Enabled {
		return nil, nil, errorx.Wrap(errActivationDisabled, errorx.NotExist)
	}

	if err := service.limiter.Allow(ctx, LimitKeyUserSubmission(user.ID), redis_rate.PerMinute(SUBMISSION_RATE_LIMIT_PER_MINUTE)); err != nil {
		return nil, nil, errorx.Wrap(err, errorx.RateLimiting)
	}

	mutex := service.rs.NewMutex(LockKeySubmission(user.ID, activation.ID), redsync.WithExpiry(8*time.Second), redsync.WithTries(3))
	if err := mutex.Lock(); err != nil {
		return nil, nil, ErrSubmissionLock
	}
	//nolint:errcheck
	defer mutex.Unlock()

	activationInput, participationInput, err := service.buildInputs(ctx, user, business, activation, now)
	if err != nil {
		return nil, nil, err
	}

	result := engine.ValidateMissionCompletely(activationInput, participationInput)
	if !result.IsValid {
		return result, nil, nil
	}

	level := catalog.CalculateUserLevel(user.TotalPoints)
	levelConfig := catalog.GetUserLevelConfig(level)
	verification := catalog.GetProofVerificationConfig(level, user.TrustScore, activation.RewardPoints)

	status := models.SubmissionStatusAutoApproved
	if verification.RequiresManualReview {
		status = models.SubmissionStatusPendingReview
	}

	submission := &models.ProofSubmission{
		ID:           uuid.NewString(),
		ActivationID: activation.ID,
		MissionID:    activation.MissionID,
		MissionType:  catalog.ClassifyMissionType(activation.MissionID),
		BusinessID:   business.ID,
		UserID:       user.ID,
		ProofMethod:  activation.ProofMethod,
		ProofPayload: payload,
		Status:       status,
		RewardPoints: activation.RewardPoints,
		Multiplier:   levelConfig.RewardMultiplier,
		UpdatedAt:    now,
	}

	template, _ := catalog.GetMissionByID(activation.MissionID)
	if template != nil && template.RewardLockDelayDays != nil {
		unlocksAt := now.AddDate(0, 0, *template.RewardLockDelayDays)
		submission.UnlocksAt = &unlocksAt
	}

	if err := datastore.InsertProofSubmission(ctx, service.postgresDB, submission); err != nil {
		return nil, nil, err
	}

	if err := redis_store.BumpParticipation(ctx, service.redisDB, activation.ID, now); err != nil {
		return nil, nil, err
	}
	if err := redis_store.RecordCompletion(ctx, service.redisDB, user.ID, activation.ID, now); err != nil {
		return nil, nil, err
	}

	// Immediate payout only when auto-approved and no lock delay applies;
	// everything else is picked up by review or the unlock cron.
	if status == models.SubmissionStatusAutoApproved && submission.UnlocksAt == nil {
		if err := service.creditNow(ctx, submission, now); err != nil {
			return nil, nil, err
		}
	}

	return result, submission, nil
}

// ListPendingReviews returns the oldest submissions awaiting the business's
// verdict, in arrival order.
func (service *ServiceSubmission) ListPendingReviews(ctx context.Context, business *models.Business) ([]models.ProofSubmission, error) {
	return datastore.ListPendingSubmissions(ctx, service.readonlyPostgresDB, business.ID, PENDING_REVIEW_PAGE_SIZE)
}

// ReviewSubmission settles a PENDING_REVIEW submission. Only the business the
// submission was made against may settle it. Approval credits the reward
// unless a lock delay holds it back.
func (service *ServiceSubmission) ReviewSubmission(ctx context.Context, business *models.Business, submissionID string, approved bool, now time.Time) (*models.ProofSubmission, error) {
	submission, err := datastore.GetProofSubmission(ctx, service.postgresDB, submissionID)
	if err != nil {
		return nil, err
	}

	if submission.BusinessID != business.ID {
		return nil, errorx.Wrap(errSubmissionNotFound, errorx.NotExist)
	}
	if submission.Status != models.SubmissionStatusPendingReview {
		return nil, errorx.Wrap(errNotPendingReview, errorx.Invalid)
	}

	status := models.SubmissionStatusRejected
	if approved {
		status = models.SubmissionStatusApproved
	}

	// The settle is conditional on the row still being PENDING_REVIEW, so a
	// concurrent review of the same submission loses here instead of
	// double-crediting.
	settled, err := datastore.SettleSubmission(ctx, service.postgresDB, submissionID, status, now)
	if err != nil {
		return nil, err
	}
	if !settled {
		return nil, errorx.Wrap(errNotPendingReview, errorx.Invalid)
	}
	submission.Status = status
	submission.ReviewedAt = &now

	if approved && submission.UnlocksAt == nil {
		if err := service.creditNow(ctx, submission, now); err != nil {
			return nil, err
		}
	}

	return submission, nil
}

func (service *ServiceSubmission) creditNow(ctx context.Context, submission *models.ProofSubmission, now time.Time) error {
	if err := service.serviceUser.CreditReward(ctx, submission); err != nil {
		return err
	}

	submission.RewardCreditedAt = &now
	return datastore.MarkSubmissionCredited(ctx, service.postgresDB, submission.ID, now)
}

// buildInputs assembles the engine inputs from the live stores. Everything
// the engine needs arrives as plain values; it never reads state itself.
func (service *ServiceSubmission) buildInputs(ctx context.Context, user *models.User, business *models.Business, activation *models.MissionActivation, now time.Time) (engine.ActivationInput, engine.ParticipationInput, error) {
	total, today, err := redis_store.GetParticipationCounts(ctx, service.redisDB, activation.ID, now)
	if err != nil {
		return engine.ActivationInput{}, engine.ParticipationInput{}, err
	}

	state, err := redis_store.GetUserMissionState(ctx, service.redisDB, user.ID, activation.ID)
	if err != nil {
		return engine.ActivationInput{}, engine.ParticipationInput{}, err
	}

	activity, err := datastore.GetUserActivityCounts(ctx, service.readonlyPostgresDB, user.ID, now)
	if err != nil {
		return engine.ActivationInput{}, engine.ParticipationInput{}, err
	}

	activationInput := engine.ActivationInput{
		MissionID:       activation.MissionID,
		BusinessType:    business.Type,
		BusinessLevel:   business.Level,
		ProofMethod:     activation.ProofMethod,
		RewardPoints:    activation.RewardPoints,
		MaxParticipants: activation.MaxParticipants,
	}

	participationInput := engine.ParticipationInput{
		MissionID:                activation.MissionID,
		UserID:                   user.ID,
		UserTotalPoints:          user.TotalPoints,
		UserTrustScore:           user.TrustScore,
		BusinessType:             business.Type,
		ProofMethod:              activation.ProofMethod,
		UserCompletionCount:      state.CompletionCount,
		LastCompletionAt:         state.LastCompletionAt,
		CurrentTotalParticipants: total,
		TodayParticipants:        today,
		Activity:                 activity,
		Now:                      now,
	}

	return activationInput, participationInput, nil
}
