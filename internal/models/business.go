package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Business struct {
	bun.BaseModel    `bun:"table:business"`
	ID               int64            `bun:"id,pk,autoincrement" json:"id"`
	Name             string           `bun:"name" json:"name"`
	Slug             string           `bun:"slug" json:"slug"`
	APIKey           string           `bun:"api_key" json:"-"`
	Type             BusinessType     `bun:"type" json:"type"`
	Level            int              `bun:"level" json:"level"`
	SubscriptionTier SubscriptionTier `bun:"subscription_tier" json:"subscription_tier"`
	TrustScore       int              `bun:"trust_score" json:"trust_score"`
	Enabled          bool             `bun:"enabled" json:"-"`
	CreatedAt        time.Time        `bun:"created_at,default:current_timestamp" json:"created_at"`
	UpdatedAt        time.Time        `bun:"updated_at" json:"updated_at"`
}

// MissionActivation is a catalog mission a business has switched on, with
// the knobs the business chose. The catalog template itself stays immutable.
type MissionActivation struct {
	bun.BaseModel   `bun:"table:mission_activation"`
	ID              int64       `bun:"id,pk,autoincrement" json:"id"`
	BusinessID      int64       `bun:"business_id" json:"business_id"`
	MissionID       string      `bun:"mission_id" json:"mission_id"`
	ProofMethod     ProofMethod `bun:"proof_method" json:"proof_method"`
	RewardPoints    int         `bun:"reward_points" json:"reward_points"`
	MaxParticipants *int        `bun:"max_participants" json:"max_participants"`
	Enabled         bool        `bun:"enabled" json:"enabled"`
	CreatedAt       time.Time   `bun:"created_at,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time   `bun:"updated_at" json:"updated_at"`

	// Live counters, filled from redis. Not persisted on this row.
	TotalParticipants int  `bun:"-" json:"total_participants"`
	TodayParticipants int  `bun:"-" json:"today_participants"`
	SpaceRemaining    *int `bun:"-" json:"space_remaining,omitempty"`
}
