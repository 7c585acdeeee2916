package models

type RuleKind string

const (
	RuleKindRateLimit      RuleKind = "RATE_LIMIT"
	RuleKindUniqueDevice   RuleKind = "UNIQUE_DEVICE"
	RuleKindLocationLock   RuleKind = "LOCATION_LOCK"
	RuleKindTimeWindow     RuleKind = "TIME_WINDOW"
	RuleKindPurchaseVerify RuleKind = "PURCHASE_VERIFY"
	RuleKindMinEngagement  RuleKind = "MIN_ENGAGEMENT"
	RuleKindSocialVerify   RuleKind = "SOCIAL_VERIFY"
)

type RateLimitScope string

const (
	RateLimitScopePerUser     RateLimitScope = "PER_USER"
	RateLimitScopePerMission  RateLimitScope = "PER_MISSION"
	RateLimitScopePerBusiness RateLimitScope = "PER_BUSINESS"
)

// AntiCheatRule is a closed sum type: each variant carries only the fields
// its kind needs. Rules on a template compose conjunctively.
type AntiCheatRule interface {
	Kind() RuleKind
}

type RateLimitRule struct {
	MaxSubmissions int            `json:"max_submissions"`
	WindowHours    int            `json:"window_hours"`
	Scope          RateLimitScope `json:"scope"`
}

func (RateLimitRule) Kind() RuleKind { return RuleKindRateLimit }

type UniqueDeviceRule struct {
	AllowMultipleAccounts bool `json:"allow_multiple_accounts"`
}

func (UniqueDeviceRule) Kind() RuleKind { return RuleKindUniqueDevice }

type LocationLockRule struct {
	RadiusMeters        int  `json:"radius_meters"`
	RequireGPS          bool `json:"require_gps"`
	AllowManualOverride bool `json:"allow_manual_override"`
}

func (LocationLockRule) Kind() RuleKind { return RuleKindLocationLock }

type TimeWindowRule struct {
	AllowedDays []string `json:"allowed_days"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Timezone    string   `json:"timezone"`
}

func (TimeWindowRule) Kind() RuleKind { return RuleKindTimeWindow }

type PurchaseVerifyRule struct {
	MinAmount          int  `json:"min_amount"`
	RequireReceipt     bool `json:"require_receipt"`
	RequireOrderNumber bool `json:"require_order_number"`
}

func (PurchaseVerifyRule) Kind() RuleKind { return RuleKindPurchaseVerify }

type MinEngagementRule struct {
	MinTimeSeconds  int      `json:"min_time_seconds"`
	MinActions      int      `json:"min_actions"`
	RequiredActions []string `json:"required_actions"`
}

func (MinEngagementRule) Kind() RuleKind { return RuleKindMinEngagement }

type SocialVerifyRule struct {
	Platform          string   `json:"platform"`
	RequirePublicPost bool     `json:"require_public_post"`
	MinFollowers      int      `json:"min_followers"`
	RequireHashtags   []string `json:"require_hashtags"`
	RequireMention    bool     `json:"require_mention"`
}

func (SocialVerifyRule) Kind() RuleKind { return RuleKindSocialVerify }
