package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrSubmissionLock = errors.New("submission locked")
var ErrActivationLock = errors.New("activation locked")
var errNotPendingReview = errors.New("submission is not pending review")
var errSubmissionNotFound = errors.New("submission not found")
var errActivationDisabled = errors.New("mission activation is disabled")

const (
	CONFIG_SERVER_MODE             = "SERVER_MODE"
	CONFIG_TRUST_DECAY_BASELINE    = "TRUST_DECAY_BASELINE"
	CONFIG_TRUST_DECAY_STEP        = "TRUST_DECAY_STEP"
	CONFIG_FEATURED_MISSIONS_LIMIT = "FEATURED_MISSIONS_LIMIT"

	SERVER_MODE_DEVELOPMENT = "development"
	SERVER_MODE_STAGING     = "staging"
	SERVER_MODE_PRODUCTION  = "production"

	TRUST_DECAY_DEFAULT_BASELINE = 50
	TRUST_DECAY_DEFAULT_STEP     = 2

	CACHE_TTL_5_SECONDS  = 5 * time.Second
	CACHE_TTL_15_SECONDS = 15 * time.Second
	CACHE_TTL_1_MIN      = 1 * time.Minute
	CACHE_TTL_5_MINS     = 5 * time.Minute
	CACHE_TTL_15_MINS    = 15 * time.Minute
	CACHE_TTL_1_HOUR     = 1 * time.Hour

	SUBMISSION_RATE_LIMIT_PER_MINUTE = 6
	VALIDATION_RATE_LIMIT_PER_MINUTE = 30

	PENDING_REVIEW_PAGE_SIZE = 50
)

func LockKeySubmission(userID int64, activationID int64) string {
	return fmt.Sprintf("lock:submission:%d:%d", userID, activationID)
}

func LockKeyActivation(businessID int64, missionID string) string {
	return fmt.Sprintf("lock:activation:%d:%s", businessID, missionID)
}

// db
func DBKeyBusiness(apiKey string) string {
	return fmt.Sprintf("business:by_api_key:%s", apiKey)
}

func DBKeyBusinessByID(businessID int64) string {
	return fmt.Sprintf("business:%d", businessID)
}

func DBKeyBusinessMissions(businessID int64) string {
	return fmt.Sprintf("business:%d:missions", businessID)
}

func DBKeyUser(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

func DBKeyConfig(key string) string {
	return fmt.Sprintf("config:%s", strings.ToLower(key))
}

func DBKeyActivation(businessID int64, missionID string) string {
	return fmt.Sprintf("activation:%d:%s", businessID, missionID)
}

func LimitKeyUserSubmission(userID int64) string {
	return fmt.Sprintf("limit:user:submission:%d", userID)
}

func LimitKeyUserValidation(userID int64) string {
	return fmt.Sprintf("limit:user:validation:%d", userID)
}
