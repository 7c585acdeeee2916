// Package redis_store keeps the live counters the validation engine
// consumes: per-activation participant totals and per-user completion
// state. Postgres remains the source of truth; these keys exist so the
// read-validate-write path does not need a table scan per submission.
package redis_store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fluzio/internal/models"
	"fluzio/internal/pkg"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	todayKeyTTL    = 48 * time.Hour
	snapshotKeyTTL = 7 * 24 * time.Hour
)

func dbKeyActivationTotal(activationID int64) string {
	return fmt.Sprintf("activation:%d:participants:total", activationID)
}

func dbKeyActivationToday(activationID int64, day string) string {
	return fmt.Sprintf("activation:%d:participants:%s", activationID, day)
}

func dbKeyUserMissionState(userID int64, activationID int64) string {
	return fmt.Sprintf("user:%d:activation:%d:state", userID, activationID)
}

func dbKeyActivationSnapshot(activationID int64) string {
	return fmt.Sprintf("activation:%d:snapshot", activationID)
}

// GetParticipationCounts reads the live total and today counters. Missing
// keys read as zero so a fresh activation needs no initialization step.
func GetParticipationCounts(ctx context.Context, rdb redis.UniversalClient, activationID int64, now time.Time) (total int, today int, err error) {
	total, err = readCounter(ctx, rdb, dbKeyActivationTotal(activationID))
	if err != nil {
		return 0, 0, err
	}

	today, err = readCounter(ctx, rdb, dbKeyActivationToday(activationID, pkg.DayKey(now)))
	if err != nil {
		return 0, 0, err
	}

	return total, today, nil
}

// BumpParticipation increments both counters after a committed submission.
func BumpParticipation(ctx context.Context, rdb redis.UniversalClient, activationID int64, now time.Time) error {
	if err := rdb.Incr(ctx, dbKeyActivationTotal(activationID)).Err(); err != nil {
		return err
	}

	todayKey := dbKeyActivationToday(activationID, pkg.DayKey(now))
	if err := rdb.Incr(ctx, todayKey).Err(); err != nil {
		return err
	}

	return rdb.Expire(ctx, todayKey, todayKeyTTL).Err()
}

// GetUserMissionState returns the completion bookkeeping for one
// (user, activation) pair; an absent key is an empty state, not an error.
func GetUserMissionState(ctx context.Context, rdb redis.UniversalClient, userID int64, activationID int64) (*models.UserMissionState, error) {
	raw, err := rdb.Get(ctx, dbKeyUserMissionState(userID, activationID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &models.UserMissionState{}, nil
	}
	if err != nil {
		return nil, err
	}

	var state models.UserMissionState
	if err := msgpack.Unmarshal(raw, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

func SetUserMissionState(ctx context.Context, rdb redis.UniversalClient, userID int64, activationID int64, state *models.UserMissionState) error {
	raw, err := msgpack.Marshal(state)
	if err != nil {
		return err
	}

	return rdb.Set(ctx, dbKeyUserMissionState(userID, activationID), raw, 0).Err()
}

// RecordCompletion bumps the user's completion count and stamps the
// cooldown clock in one state write.
func RecordCompletion(ctx context.Context, rdb redis.UniversalClient, userID int64, activationID int64, now time.Time) error {
	state, err := GetUserMissionState(ctx, rdb, userID, activationID)
	if err != nil {
		return err
	}

	state.CompletionCount++
	state.LastCompletionAt = &now
	return SetUserMissionState(ctx, rdb, userID, activationID, state)
}

func SaveActivationSnapshot(ctx context.Context, rdb redis.UniversalClient, activationID int64, stats *models.ActivationStats) error {
	raw, err := msgpack.Marshal(stats)
	if err != nil {
		return err
	}

	return rdb.Set(ctx, dbKeyActivationSnapshot(activationID), raw, snapshotKeyTTL).Err()
}

func GetActivationSnapshot(ctx context.Context, rdb redis.UniversalClient, activationID int64) (*models.ActivationStats, error) {
	raw, err := rdb.Get(ctx, dbKeyActivationSnapshot(activationID)).Bytes()
	if err != nil {
		return nil, err
	}

	var stats models.ActivationStats
	if err := msgpack.Unmarshal(raw, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// SetParticipationCounts overwrites the live counters from a postgres
// recount (cron reconciliation).
func SetParticipationCounts(ctx context.Context, rdb redis.UniversalClient, activationID int64, now time.Time, total int, today int) error {
	if err := rdb.Set(ctx, dbKeyActivationTotal(activationID), total, 0).Err(); err != nil {
		return err
	}

	return rdb.Set(ctx, dbKeyActivationToday(activationID, pkg.DayKey(now)), today, todayKeyTTL).Err()
}

func readCounter(ctx context.Context, rdb redis.UniversalClient, key string) (int, error) {
	value, err := rdb.Get(ctx, key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return value, nil
}
