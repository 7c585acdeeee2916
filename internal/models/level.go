package models

type UserLevel int

const (
	LevelNovice      UserLevel = 1
	LevelExplorer    UserLevel = 2
	LevelContributor UserLevel = 3
	LevelAdvocate    UserLevel = 4
	LevelAmbassador  UserLevel = 5
	LevelLegend      UserLevel = 6
)

type ProofStrictness string

const (
	ProofStrictnessHigh   ProofStrictness = "HIGH"
	ProofStrictnessMedium ProofStrictness = "MEDIUM"
	ProofStrictnessLow    ProofStrictness = "LOW"
)

// UserLevelConfig holds the ceilings and capability flags for one trust
// level. Levels are derived from points on every call, never stored.
type UserLevelConfig struct {
	Level     UserLevel `json:"level"`
	Name      string    `json:"name"`
	MinPoints int       `json:"min_points"`

	MaxActiveMissionsPerDay     int `json:"max_active_missions_per_day"`
	MaxReviewMissionsPerDay     int `json:"max_review_missions_per_day"`
	MaxCheckInMissionsPerDay    int `json:"max_check_in_missions_per_day"`
	MaxHighValueMissionsPerWeek int `json:"max_high_value_missions_per_week"`
	MaxUgcSubmissionsPerWeek    int `json:"max_ugc_submissions_per_week"`
	MaxReferralAttemptsPerMonth int `json:"max_referral_attempts_per_month"`

	MinimumTrustScoreRequired int `json:"minimum_trust_score_required"`

	ProofStrictness        ProofStrictness `json:"proof_strictness"`
	RequiresManualApproval bool            `json:"requires_manual_approval"`

	CanAccessReferralMissions  bool `json:"can_access_referral_missions"`
	CanAccessHighValueMissions bool `json:"can_access_high_value_missions"`
	CanAccessUgcMissions       bool `json:"can_access_ugc_missions"`
	CanAccessReviewMissions    bool `json:"can_access_review_missions"`

	MinCooldownBetweenMissionsMinutes int  `json:"min_cooldown_between_missions_minutes"`
	CanBypassBasicCooldowns           bool `json:"can_bypass_basic_cooldowns"`

	RewardMultiplier float64 `json:"reward_multiplier"`
}

// NextLevelProgress reports how far a user is from the next level.
// NextLevel is nil at the top of the ladder.
type NextLevelProgress struct {
	NextLevel       *UserLevel `json:"next_level"`
	PointsNeeded    int        `json:"points_needed"`
	PercentComplete int        `json:"percent_complete"`
}

// ProofVerificationConfig is the verification posture for one submission:
// the level's base strictness, hardened by reward value and trust score.
// Overrides only ever increase strictness.
type ProofVerificationConfig struct {
	Strictness               ProofStrictness `json:"strictness"`
	RequiresManualReview     bool            `json:"requires_manual_review"`
	AIConfidenceThreshold    float64         `json:"ai_confidence_threshold"`
	RequiresBusinessApproval bool            `json:"requires_business_approval"`
	AllowAutoApproval        bool            `json:"allow_auto_approval"`
	AdditionalChecks         []string        `json:"additional_checks,omitempty"`
}

// ActivityCounts carries the live rolling-window counts the persistence
// layer must supply for the level ceilings to be enforced. All counts are
// "as of now" for the calling user.
type ActivityCounts struct {
	MissionsStartedToday int `json:"missions_started_today"`
	ReviewsToday         int `json:"reviews_today"`
	CheckInsToday        int `json:"check_ins_today"`
	HighValueThisWeek    int `json:"high_value_this_week"`
	UgcThisWeek          int `json:"ugc_this_week"`
	ReferralsThisMonth   int `json:"referrals_this_month"`
}
