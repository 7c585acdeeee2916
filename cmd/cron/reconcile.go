package main

import (
	"context"
	"log"
	"time"

	"fluzio/internal/datastore"
	"fluzio/internal/datastore/redis_store"
	"fluzio/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/uptrace/bun"
)

const defaultReconcileCron = "10 0 * * *"

// ReconcileJob recounts participation from postgres and overwrites the
// redis counters, so drift from lost increments never outlives a day.
type ReconcileJob struct {
	Redis redis.UniversalClient
	Db    *bun.DB
}

func NewReconcileJob(redis redis.UniversalClient, db *bun.DB) *ReconcileJob {
	return &ReconcileJob{
		Redis: redis,
		Db:    db,
	}
}

func (j *ReconcileJob) Start(cronRunner *cron.Cron) {
	timeline := defaultReconcileCron
	config, err := datastore.GetConfigByKey(context.Background(), j.Db, "CRONJOB_TIME_RECONCILE")
	if err == nil && config != nil && config.Value != "" {
		timeline = config.Value
	}

	_, err = cronRunner.AddFunc(timeline, j.runScheduledTask)
	log.Println("Reconcile Cronjob start at:", time.Now().Format("2006-01-02 15:04:05"), "cron:", timeline, err)
}

func (j *ReconcileJob) runScheduledTask() {
	ctx := context.Background()
	now := time.Now()
	log.Println("Start reconciling participation counters ...")

	activations, err := datastore.ListEnabledActivations(ctx, j.Db)
	if err != nil {
		log.Println(err)
		return
	}

	for _, activation := range activations {
		total, today, err := datastore.CountActivationParticipants(ctx, j.Db, activation.ID, now)
		if err != nil {
			log.Println(err)
			continue
		}

		if err := redis_store.SetParticipationCounts(ctx, j.Redis, activation.ID, now, total, today); err != nil {
			log.Println(err)
			continue
		}

		err = redis_store.SaveActivationSnapshot(ctx, j.Redis, activation.ID, &models.ActivationStats{
			TotalParticipants: total,
			TodayParticipants: today,
			AsOf:              now,
		})
		if err != nil {
			log.Println(err)
		}
	}

	log.Println("Participation counters reconciled:", len(activations), "activations")
}
