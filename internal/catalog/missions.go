package catalog

import "fluzio/internal/models"

// Mission ids. The catalog is deployed as a locked set: changing it means
// shipping a new Version, never editing rows at runtime.
const (
	MissionGoogleReview        = "GOOGLE_REVIEW"
	MissionTripadvisorReview   = "TRIPADVISOR_REVIEW"
	MissionVisitCheckin        = "VISIT_CHECKIN"
	MissionFirstPurchase       = "FIRST_PURCHASE"
	MissionRepeatPurchase      = "REPEAT_PURCHASE"
	MissionBringAFriend        = "BRING_A_FRIEND"
	MissionReferralPurchase    = "REFERRAL_PURCHASE"
	MissionInstagramPost       = "INSTAGRAM_POST"
	MissionInstagramStory      = "INSTAGRAM_STORY"
	MissionTiktokVideo         = "TIKTOK_VIDEO"
	MissionPhotoAtLocation     = "PHOTO_AT_LOCATION"
	MissionFollowSocial        = "FOLLOW_SOCIAL"
	MissionNewsletterSignup    = "NEWSLETTER_SIGNUP"
	MissionConsultationBooking = "CONSULTATION_BOOKING"
)

var allBusinessTypes = []models.BusinessType{
	models.BusinessTypePhysical,
	models.BusinessTypeOnline,
	models.BusinessTypeHybrid,
}

var physicalPresenceTypes = []models.BusinessType{
	models.BusinessTypePhysical,
	models.BusinessTypeHybrid,
}

var missionCatalog = []models.MissionTemplate{
	{
		ID:                   MissionGoogleReview,
		Title:                "Leave a Google review",
		BusinessNeed:         models.BusinessNeedReputation,
		AllowedBusinessTypes: allBusinessTypes,
		ProofMethod:          models.ProofMethodPlatformAPI,
		DefaultRewardPoints:  80,
		AntiCheatRules: []models.AntiCheatRule{
			models.RateLimitRule{MaxSubmissions: 1, WindowHours: 24, Scope: models.RateLimitScopePerUser},
			models.UniqueDeviceRule{AllowMultipleAccounts: false},
		},
		Cooldown:              models.CooldownPolicy{PerUserHours: 0, PerBusinessHours: 0},
		RewardLockDelayDays:   intPtr(3),
		MaxCompletionsPerUser: 1,
	},
	{
		ID:                   MissionTripadvisorReview,
		Title:                "Review us on Tripadvisor",
		BusinessNeed:         models.BusinessNeedReputation,
		AllowedBusinessTypes: physicalPresenceTypes,
		ProofMethod:          models.ProofMethodPlatformAPI,
		DefaultRewardPoints:  80,
		AntiCheatRules: []models.AntiCheatRule{
			models.RateLimitRule{MaxSubmissions: 1, WindowHours: 24, Scope: models.RateLimitScopePerUser},
			models.UniqueDeviceRule{AllowMultipleAccounts: false},
		},
		RewardLockDelayDays:   intPtr(3),
		MaxCompletionsPerUser: 1,
	},
	{
		ID:                   MissionVisitCheckin,
		Title:                "Check in at the venue",
		BusinessNeed:         models.BusinessNeedTraffic,
		AllowedBusinessTypes: physicalPresenceTypes,
		ProofMethod:          models.ProofMethodQRScan,
		DefaultRewardPoints:  30,
		AntiCheatRules: []models.AntiCheatRule{
			models.LocationLockRule{RadiusMeters: 150, RequireGPS: true, AllowManualOverride: false},
			models.RateLimitRule{MaxSubmissions: 1, WindowHours: 20, Scope: models.RateLimitScopePerUser},
			models.UniqueDeviceRule{AllowMultipleAccounts: false},
		},
		Cooldown:             models.CooldownPolicy{PerUserHours: 20, PerBusinessHours: 0},
		MaxDailyParticipants: intPtr(200),
	},
	{
		ID:                   MissionFirstPurchase,
		Title:                "Make your first purchase",
		BusinessNeed:         models.BusinessNeedConversion,
		AllowedBusinessTypes: allBusinessTypes,
		ProofMethod:          models.ProofMethodBusinessCode,
		DefaultRewardPoints:  150,
		AntiCheatRules: []models.AntiCheatRule{
			models.PurchaseVerifyRule{MinAmount: 10, RequireReceipt: true, RequireOrderNumber: false},
			models.UniqueDeviceRule{AllowMultipleAccounts: false},
		},
		RewardLockDelayDays:   intPtr(7),
		MaxCompletionsPerUser: 1,
		MaxTotalParticipants:  intPtr(500),
	},
	{
		ID:                   MissionRepeatPurchase,
		Title:                "Come back and buy again",
		BusinessNeed:         models.BusinessNeedLoyalty,
		AllowedBusinessTypes: allBusinessTypes,
		ProofMethod:          models.ProofMethodBusinessCode,
		DefaultRewardPoints:  100,
		AntiCheatRules: []models.AntiCheatRule{
			models.PurchaseVerifyRule{MinAmount: 10, RequireReceipt: true, RequireOrderNumber: false},
			models.RateLimitRule{MaxSubmissions: 2, WindowHours: 168, Scope: models.RateLimitScopePerUser},
		},
		Cooldown:            models.CooldownPolicy{PerUserHours: 72, PerBusinessHours: 0},
		RewardLockDelayDays: intPtr(7),
	},
	{
		ID:                   MissionBringAFriend,
		Title:                "Bring a friend",
		BusinessNeed:         models.BusinessNeedReferral,
		AllowedBusinessTypes: allBusinessTypes,
		ProofMethod:          models.ProofMethodReferralLink,
		DefaultRewardPoints:  120,
		AntiCheatRules: []models.AntiCheatRule{
			models.RateLimitRule{MaxSubmissions: 5, WindowHours: 168, Scope: models.RateLimitScopePerUser},
			models.UniqueDeviceRule{AllowMultipleAccounts: false},
		},
		Cooldown:              models.CooldownPolicy{PerUserHours: 24, PerBusinessHours: 0},
		RewardLockDelayDays:   intPtr(5),
		MaxCompletionsPerUser: 10,
	},
	{
		ID:                   MissionReferralPurchase,
		Title:                "Referred friend makes a purchase",
		BusinessNeed:         models.BusinessNeedReferral,
		AllowedBusinessTypes: allBusinessTypes,
		ProofMethod:          models.ProofMethodReferralLink,
		DefaultRewardPoints:  200,
		AntiCheatRules: []models.AntiCheatRule{
			models.PurchaseVerifyRule{MinAmount: 10, RequireReceipt: false, RequireOrderNumber: true},
			models.RateLimitRule{MaxSubmissions: 3, WindowHours: 168, Scope: models.RateLimitScopePerUser},
			models.UniqueDeviceRule{AllowMultipleAccounts: false},
		},
		Cooldown:            models.CooldownPolicy{PerUserHours: 24, PerBusinessHours: 0},
		RewardLockDelayDays: intPtr(14),
		MinSubscriptionTier: tierPtr(models.SubscriptionTierGrowth),
	},
	{
		ID:                   MissionInstagramPost,
		Title:                "Post about us on Instagram",
		BusinessNeed:         models.BusinessNeedContent,
		AllowedBusinessTypes: allBusinessTypes,
		ProofMethod:          models.ProofMethodPlatformAPI,
		DefaultRewardPoints:  90,
		AntiCheatRules: []models.AntiCheatRule{
			models.SocialVerifyRule{Platform: "instagram", RequirePublicPost: true, MinFollowers: 50, RequireMention: true},
			models.RateLimitRule{MaxSubmissions: 1, WindowHours: 72, Scope: models.RateLimitScopePerUser},
		},
		Cooldown:             models.CooldownPolicy{PerUserHours: 72, PerBusinessHours: 0},
		RewardLockDelayDays:  intPtr(2),
		MaxTotalParticipants: intPtr(300),
	},
	{
		// Stories expire after 24h, so the screenshot is the only surviving
		// evidence and the business must confirm it saw the story live.
		ID:                           MissionInstagramStory,
		Title:                        "Share a story mentioning us",
		BusinessNeed:                 models.BusinessNeedContent,
		AllowedBusinessTypes:         allBusinessTypes,
		ProofMethod:                  models.ProofMethodScreenshotAI,
		DefaultRewardPoints:          50,
		RequiresBusinessConfirmation: true,
		AntiCheatRules: []models.AntiCheatRule{
			models.SocialVerifyRule{Platform: "instagram", RequirePublicPost: false, MinFollowers: 50, RequireMention: true},
			models.RateLimitRule{MaxSubmissions: 1, WindowHours: 48, Scope: models.RateLimitScopePerUser},
		},
		Cooldown: models.CooldownPolicy{PerUserHours: 48, PerBusinessHours: 0},
	},
	{
		ID:                   MissionTiktokVideo,
		Title:                "Make a TikTok about us",
		BusinessNeed:         models.BusinessNeedContent,
		AllowedBusinessTypes: allBusinessTypes,
		ProofMethod:          models.ProofMethodPlatformAPI,
		DefaultRewardPoints:  140,
		AntiCheatRules: []models.AntiCheatRule{
			models.SocialVerifyRule{Platform: "tiktok", RequirePublicPost: true, MinFollowers: 100, RequireHashtags: []string{"#fluzio"}, RequireMention: true},
			models.MinEngagementRule{MinTimeSeconds: 15, MinActions: 0},
		},
		Cooldown:            models.CooldownPolicy{PerUserHours: 168, PerBusinessHours: 0},
		RewardLockDelayDays: intPtr(3),
		MinSubscriptionTier: tierPtr(models.SubscriptionTierGrowth),
	},
	{
		ID:                   MissionPhotoAtLocation,
		Title:                "Snap a photo at the venue",
		BusinessNeed:         models.BusinessNeedContent,
		AllowedBusinessTypes: physicalPresenceTypes,
		ProofMethod:          models.ProofMethodPhotoUpload,
		DefaultRewardPoints:  60,
		AntiCheatRules: []models.AntiCheatRule{
			models.LocationLockRule{RadiusMeters: 150, RequireGPS: true, AllowManualOverride: true},
			models.RateLimitRule{MaxSubmissions: 1, WindowHours: 48, Scope: models.RateLimitScopePerUser},
		},
		Cooldown: models.CooldownPolicy{PerUserHours: 48, PerBusinessHours: 0},
	},
	{
		ID:                   MissionFollowSocial,
		Title:                "Follow us on social media",
		BusinessNeed:         models.BusinessNeedTraffic,
		AllowedBusinessTypes: allBusinessTypes,
		ProofMethod:          models.ProofMethodPlatformAPI,
		DefaultRewardPoints:  25,
		AntiCheatRules: []models.AntiCheatRule{
			models.RateLimitRule{MaxSubmissions: 1, WindowHours: 24, Scope: models.RateLimitScopePerUser},
		},
		MaxCompletionsPerUser: 1,
	},
	{
		ID:                   MissionNewsletterSignup,
		Title:                "Sign up for the newsletter",
		BusinessNeed:         models.BusinessNeedConversion,
		AllowedBusinessTypes: []models.BusinessType{models.BusinessTypeOnline, models.BusinessTypeHybrid},
		ProofMethod:          models.ProofMethodPlatformAPI,
		DefaultRewardPoints:  40,
		AntiCheatRules: []models.AntiCheatRule{
			models.MinEngagementRule{MinTimeSeconds: 30, MinActions: 1, RequiredActions: []string{"confirm_email"}},
			models.UniqueDeviceRule{AllowMultipleAccounts: false},
		},
		MaxCompletionsPerUser: 1,
	},
	{
		ID:                           MissionConsultationBooking,
		Title:                        "Book a consultation",
		BusinessNeed:                 models.BusinessNeedConversion,
		AllowedBusinessTypes:         allBusinessTypes,
		ProofMethod:                  models.ProofMethodBusinessCode,
		DefaultRewardPoints:          180,
		RequiresBusinessConfirmation: true,
		AntiCheatRules: []models.AntiCheatRule{
			models.TimeWindowRule{AllowedDays: []string{"MON", "TUE", "WED", "THU", "FRI"}, StartTime: "09:00", EndTime: "18:00", Timezone: "Europe/Berlin"},
			models.RateLimitRule{MaxSubmissions: 1, WindowHours: 168, Scope: models.RateLimitScopePerUser},
		},
		RewardLockDelayDays:   intPtr(7),
		MaxCompletionsPerUser: 1,
		MaxTotalParticipants:  intPtr(200),
		MinSubscriptionTier:   tierPtr(models.SubscriptionTierGrowth),
	},
}
