package main

import (
	"context"
	"log"
	"time"

	"fluzio/internal/datastore"

	"github.com/robfig/cron/v3"
	"github.com/uptrace/bun"
)

const defaultRewardUnlockCron = "@every 1h"

// RewardUnlockJob credits approved submissions whose lock delay has
// elapsed. The credited-at stamp makes the pass idempotent.
type RewardUnlockJob struct {
	Db *bun.DB
}

func NewRewardUnlockJob(db *bun.DB) *RewardUnlockJob {
	return &RewardUnlockJob{
		Db: db,
	}
}

func (j *RewardUnlockJob) Start(cronRunner *cron.Cron) {
	timeline := defaultRewardUnlockCron
	config, err := datastore.GetConfigByKey(context.Background(), j.Db, "CRONJOB_TIME_REWARD_UNLOCK")
	if err == nil && config != nil && config.Value != "" {
		timeline = config.Value
	}

	_, err = cronRunner.AddFunc(timeline, j.runScheduledTask)
	log.Println("Reward unlock Cronjob start at:", time.Now().Format("2006-01-02 15:04:05"), "cron:", timeline, err)
}

func (j *RewardUnlockJob) runScheduledTask() {
	ctx := context.Background()
	now := time.Now()

	submissions, err := datastore.ListUnlockableSubmissions(ctx, j.Db, now)
	if err != nil {
		log.Println(err)
		return
	}

	credited := 0
	for _, submission := range submissions {
		points := int(float64(submission.RewardPoints) * submission.Multiplier)
		if err := datastore.AddUserPoints(ctx, j.Db, submission.UserID, points); err != nil {
			log.Println(err)
			continue
		}

		if err := datastore.MarkSubmissionCredited(ctx, j.Db, submission.ID, now); err != nil {
			log.Println(err)
			continue
		}
		credited++
	}

	if credited > 0 {
		log.Println("Unlocked rewards credited:", credited)
	}
}
