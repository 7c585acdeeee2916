package models

import (
	"time"

	"github.com/uptrace/bun"
)

type SubmissionStatus string

const (
	SubmissionStatusPendingReview SubmissionStatus = "PENDING_REVIEW"
	SubmissionStatusAutoApproved  SubmissionStatus = "AUTO_APPROVED"
	SubmissionStatusApproved      SubmissionStatus = "APPROVED"
	SubmissionStatusRejected      SubmissionStatus = "REJECTED"
)

type ProofSubmission struct {
	bun.BaseModel `bun:"table:proof_submission"`
	ID            string           `bun:"id,pk" json:"id"`
	ActivationID  int64            `bun:"activation_id" json:"activation_id"`
	MissionID     string           `bun:"mission_id" json:"mission_id"`
	MissionType   MissionType      `bun:"mission_type" json:"mission_type"`
	BusinessID    int64            `bun:"business_id" json:"business_id"`
	UserID        int64            `bun:"user_id" json:"user_id"`
	ProofMethod   ProofMethod      `bun:"proof_method" json:"proof_method"`
	ProofPayload  map[string]any   `bun:"proof_payload,type:jsonb" json:"proof_payload"`
	Status        SubmissionStatus `bun:"status" json:"status"`
	RewardPoints  int              `bun:"reward_points" json:"reward_points"`
	// Multiplier is the level reward multiplier captured at submit time so a
	// later level change cannot retroactively alter the payout.
	Multiplier       float64    `bun:"multiplier" json:"multiplier"`
	UnlocksAt        *time.Time `bun:"unlocks_at" json:"unlocks_at"`
	RewardCreditedAt *time.Time `bun:"reward_credited_at" json:"reward_credited_at"`
	ReviewedAt       *time.Time `bun:"reviewed_at" json:"reviewed_at"`
	CreatedAt        time.Time  `bun:"created_at,default:current_timestamp" json:"created_at"`
	UpdatedAt        time.Time  `bun:"updated_at" json:"updated_at"`
}

// UserMissionState is the per-(user, activation) completion bookkeeping kept
// in redis and consulted by the cooldown check.
type UserMissionState struct {
	CompletionCount  int        `msgpack:"completion_count" json:"completion_count"`
	LastCompletionAt *time.Time `msgpack:"last_completion_at" json:"last_completion_at"`
}

// ActivationStats is the live participation snapshot for one activation.
type ActivationStats struct {
	TotalParticipants int       `msgpack:"total_participants" json:"total_participants"`
	TodayParticipants int       `msgpack:"today_participants" json:"today_participants"`
	AsOf              time.Time `msgpack:"as_of" json:"as_of"`
}
