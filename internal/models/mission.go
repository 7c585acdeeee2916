package models

type BusinessType string

const (
	BusinessTypePhysical BusinessType = "PHYSICAL"
	BusinessTypeOnline   BusinessType = "ONLINE"
	BusinessTypeHybrid   BusinessType = "HYBRID"
)

type BusinessNeed string

const (
	BusinessNeedReputation BusinessNeed = "REPUTATION"
	BusinessNeedTraffic    BusinessNeed = "TRAFFIC"
	BusinessNeedConversion BusinessNeed = "CONVERSION"
	BusinessNeedReferral   BusinessNeed = "REFERRAL"
	BusinessNeedContent    BusinessNeed = "CONTENT"
	BusinessNeedLoyalty    BusinessNeed = "LOYALTY"
)

type ProofMethod string

const (
	ProofMethodQRScan       ProofMethod = "QR_SCAN"
	ProofMethodGPSCheckin   ProofMethod = "GPS_CHECKIN"
	ProofMethodScreenshotAI ProofMethod = "SCREENSHOT_AI"
	ProofMethodPhotoUpload  ProofMethod = "PHOTO_UPLOAD"
	ProofMethodBusinessCode ProofMethod = "BUSINESS_CODE"
	ProofMethodPlatformAPI  ProofMethod = "PLATFORM_API"
	ProofMethodReferralLink ProofMethod = "REFERRAL_LINK"
)

type MissionType string

const (
	MissionTypeReview    MissionType = "REVIEW"
	MissionTypeCheckIn   MissionType = "CHECK_IN"
	MissionTypeHighValue MissionType = "HIGH_VALUE"
	MissionTypeUGC       MissionType = "UGC"
	MissionTypeReferral  MissionType = "REFERRAL"
	MissionTypeStandard  MissionType = "STANDARD"
)

type SubscriptionTier string

const (
	SubscriptionTierStarter SubscriptionTier = "STARTER"
	SubscriptionTierGrowth  SubscriptionTier = "GROWTH"
	SubscriptionTierPro     SubscriptionTier = "PRO"
)

// SubscriptionTierRank orders tiers for minimum-tier checks.
var SubscriptionTierRank = map[SubscriptionTier]int{
	SubscriptionTierStarter: 1,
	SubscriptionTierGrowth:  2,
	SubscriptionTierPro:     3,
}

type CooldownPolicy struct {
	PerUserHours     int `json:"per_user_hours"`
	PerBusinessHours int `json:"per_business_hours"`
}

// MissionTemplate is a catalog entry. Templates are compiled into the binary
// as a locked set; there is no runtime create/update/delete.
type MissionTemplate struct {
	ID                           string            `json:"id"`
	Title                        string            `json:"title"`
	BusinessNeed                 BusinessNeed      `json:"business_need"`
	AllowedBusinessTypes         []BusinessType    `json:"allowed_business_types"`
	ProofMethod                  ProofMethod       `json:"proof_method"`
	DefaultRewardPoints          int               `json:"default_reward_points"`
	AntiCheatRules               []AntiCheatRule   `json:"-"`
	Cooldown                     CooldownPolicy    `json:"cooldown"`
	RewardLockDelayDays          *int              `json:"reward_lock_delay_days"`
	RequiresBusinessConfirmation bool              `json:"requires_business_confirmation"`
	MinSubscriptionTier          *SubscriptionTier `json:"min_subscription_tier,omitempty"`

	// Participation caps. Nil means unbounded.
	MaxTotalParticipants *int `json:"max_total_participants"`
	MaxDailyParticipants *int `json:"max_daily_participants"`
	// MaxCompletionsPerUser of 0 means unlimited repeats (cooldown still applies).
	MaxCompletionsPerUser int `json:"max_completions_per_user"`
}

func (t *MissionTemplate) AllowsBusinessType(businessType BusinessType) bool {
	for _, allowed := range t.AllowedBusinessTypes {
		if allowed == businessType {
			return true
		}
	}
	return false
}
