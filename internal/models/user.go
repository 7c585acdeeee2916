package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:platform_user"`
	ID            int64     `bun:"id,pk" json:"id"`
	Username      string    `bun:"username" json:"username"`
	FirstName     string    `bun:"first_name" json:"first_name"`
	LastName      string    `bun:"last_name" json:"last_name"`
	TotalPoints   int       `bun:"total_points" json:"total_points"`
	TrustScore    int       `bun:"trust_score" json:"trust_score"`
	InviterID     *int64    `bun:"inviter_id" json:"inviter_id"`
	Enabled       bool      `bun:"enabled" json:"-"`
	CreatedAt     time.Time `bun:"created_at,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at" json:"updated_at"`

	// Derived per request, never stored.
	Level     UserLevel          `bun:"-" json:"level"`
	LevelName string             `bun:"-" json:"level_name"`
	Progress  *NextLevelProgress `bun:"-" json:"progress,omitempty"`
	IsNewUser bool               `bun:"-" json:"is_new_user"`
}

// UserFromAuth only use in middleware
type UserFromAuth struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
