package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"fluzio/internal/datastore"
	"fluzio/internal/services"

	"github.com/robfig/cron/v3"
	"github.com/uptrace/bun"
)

const defaultTrustDecayCron = "0 3 * * 1"

// TrustDecayJob nudges low trust scores back toward baseline once a week.
type TrustDecayJob struct {
	Db *bun.DB
}

func NewTrustDecayJob(db *bun.DB) *TrustDecayJob {
	return &TrustDecayJob{
		Db: db,
	}
}

func (j *TrustDecayJob) Start(cronRunner *cron.Cron) {
	timeline := defaultTrustDecayCron
	config, err := datastore.GetConfigByKey(context.Background(), j.Db, "CRONJOB_TIME_TRUST_DECAY")
	if err == nil && config != nil && config.Value != "" {
		timeline = config.Value
	}

	_, err = cronRunner.AddFunc(timeline, j.runScheduledTask)
	log.Println("Trust decay Cronjob start at:", time.Now().Format("2006-01-02 15:04:05"), "cron:", timeline, err)
}

func (j *TrustDecayJob) runScheduledTask() {
	ctx := context.Background()
	log.Println("Start trust score decay ...")

	baseline := j.intConfig(ctx, services.CONFIG_TRUST_DECAY_BASELINE, services.TRUST_DECAY_DEFAULT_BASELINE)
	step := j.intConfig(ctx, services.CONFIG_TRUST_DECAY_STEP, services.TRUST_DECAY_DEFAULT_STEP)

	if err := datastore.DecayTrustScores(ctx, j.Db, baseline, step); err != nil {
		log.Println(err)
		return
	}

	log.Println("Trust score decay done, baseline:", baseline, "step:", step)
}

func (j *TrustDecayJob) intConfig(ctx context.Context, key string, defaultValue int) int {
	config, err := datastore.GetConfigByKey(ctx, j.Db, key)
	if err != nil || config == nil || config.Value == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(config.Value)
	if err != nil {
		return defaultValue
	}

	return value
}
