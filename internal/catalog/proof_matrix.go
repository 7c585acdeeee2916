package catalog

import "fluzio/internal/models"

// Forbidden-reason texts surfaced alongside INVALID_PROOF_METHOD rejections.
const (
	reasonScreenshotForgeable = "screenshots of receipts and order confirmations are trivially forgeable and cannot prove money changed hands"
	reasonPhotoForgeable      = "a photo proves nothing about a purchase; it can be staged or reused"
	reasonGPSSpoofable        = "raw GPS fixes can be spoofed or shared between devices; scanning the rotating venue code cannot"
	reasonScreenshotSpoofable = "a screenshot of a map or app screen does not prove physical presence"
	reasonSelfAttestedRef     = "self-captured evidence cannot tie the referred account to the referrer; only the tracked link can"
	reasonNoAPIForStory       = "stories expire before any platform check can run; only the screenshot survives"
)

// proofMatrix is keyed mission id → business type. A missing inner key means
// the mission is not offered to that business type at all, which is distinct
// from "offered but this method is forbidden".
var proofMatrix = map[string]map[models.BusinessType]models.ProofMethodConfig{
	MissionGoogleReview: {
		models.BusinessTypePhysical: reviewProofConfig(),
		models.BusinessTypeOnline:   reviewProofConfig(),
		models.BusinessTypeHybrid:   reviewProofConfig(),
	},
	MissionTripadvisorReview: {
		models.BusinessTypePhysical: reviewProofConfig(),
		models.BusinessTypeHybrid:   reviewProofConfig(),
	},
	MissionVisitCheckin: {
		models.BusinessTypePhysical: checkinProofConfig(),
		models.BusinessTypeHybrid:   checkinProofConfig(),
	},
	MissionFirstPurchase: {
		models.BusinessTypePhysical: {
			PrimaryProofMethod:    models.ProofMethodBusinessCode,
			ForbiddenProofMethods: moneyForbidden(),
		},
		models.BusinessTypeOnline: {
			PrimaryProofMethod:    models.ProofMethodPlatformAPI,
			FallbackProofMethod:   methodPtr(models.ProofMethodBusinessCode),
			ForbiddenProofMethods: moneyForbidden(),
		},
		models.BusinessTypeHybrid: {
			PrimaryProofMethod:    models.ProofMethodBusinessCode,
			FallbackProofMethod:   methodPtr(models.ProofMethodPlatformAPI),
			ForbiddenProofMethods: moneyForbidden(),
		},
	},
	MissionRepeatPurchase: {
		models.BusinessTypePhysical: {
			PrimaryProofMethod:    models.ProofMethodBusinessCode,
			ForbiddenProofMethods: moneyForbidden(),
		},
		models.BusinessTypeOnline: {
			PrimaryProofMethod:    models.ProofMethodPlatformAPI,
			FallbackProofMethod:   methodPtr(models.ProofMethodBusinessCode),
			ForbiddenProofMethods: moneyForbidden(),
		},
		models.BusinessTypeHybrid: {
			PrimaryProofMethod:    models.ProofMethodBusinessCode,
			FallbackProofMethod:   methodPtr(models.ProofMethodPlatformAPI),
			ForbiddenProofMethods: moneyForbidden(),
		},
	},
	MissionBringAFriend: {
		models.BusinessTypePhysical: referralProofConfig(),
		models.BusinessTypeOnline:   referralProofConfig(),
		models.BusinessTypeHybrid:   referralProofConfig(),
	},
	MissionReferralPurchase: {
		models.BusinessTypePhysical: referralPurchaseProofConfig(),
		models.BusinessTypeOnline:   referralPurchaseProofConfig(),
		models.BusinessTypeHybrid:   referralPurchaseProofConfig(),
	},
	MissionInstagramPost: {
		models.BusinessTypePhysical: socialPostProofConfig(),
		models.BusinessTypeOnline:   socialPostProofConfig(),
		models.BusinessTypeHybrid:   socialPostProofConfig(),
	},
	MissionInstagramStory: {
		models.BusinessTypePhysical: storyProofConfig(),
		models.BusinessTypeOnline:   storyProofConfig(),
		models.BusinessTypeHybrid:   storyProofConfig(),
	},
	MissionTiktokVideo: {
		models.BusinessTypePhysical: socialPostProofConfig(),
		models.BusinessTypeOnline:   socialPostProofConfig(),
		models.BusinessTypeHybrid:   socialPostProofConfig(),
	},
	MissionPhotoAtLocation: {
		models.BusinessTypePhysical: {
			PrimaryProofMethod: models.ProofMethodPhotoUpload,
			ForbiddenProofMethods: []models.ForbiddenProof{
				{Method: models.ProofMethodScreenshotAI, Reason: reasonScreenshotSpoofable},
			},
		},
		models.BusinessTypeHybrid: {
			PrimaryProofMethod: models.ProofMethodPhotoUpload,
			ForbiddenProofMethods: []models.ForbiddenProof{
				{Method: models.ProofMethodScreenshotAI, Reason: reasonScreenshotSpoofable},
			},
		},
	},
	MissionFollowSocial: {
		models.BusinessTypePhysical: followProofConfig(),
		models.BusinessTypeOnline:   followProofConfig(),
		models.BusinessTypeHybrid:   followProofConfig(),
	},
	MissionNewsletterSignup: {
		models.BusinessTypeOnline: {PrimaryProofMethod: models.ProofMethodPlatformAPI},
		models.BusinessTypeHybrid: {PrimaryProofMethod: models.ProofMethodPlatformAPI},
	},
	MissionConsultationBooking: {
		models.BusinessTypePhysical: consultationProofConfig(),
		models.BusinessTypeOnline:   consultationProofConfig(),
		models.BusinessTypeHybrid:   consultationProofConfig(),
	},
}

// GetProofMethodConfig resolves the matrix entry for a (mission, business
// type) pair with the availability map's adjustments applied. Nil means the
// mission is not offered for that business type.
func GetProofMethodConfig(missionID string, businessType models.BusinessType) *models.ProofMethodConfig {
	adjustment, available := missionAvailability[missionID][businessType]
	if !available {
		return nil
	}

	byType, ok := proofMatrix[missionID]
	if !ok {
		return nil
	}
	config, ok := byType[businessType]
	if !ok {
		return nil
	}

	config.VerificationRequirements = adjustment.ExtraVerification
	if adjustment.RequireBusinessConfirmation {
		config.RequiresBusinessConfirmation = true
	}
	return &config
}

// IsProofMethodAllowed reports whether method is the primary or fallback and
// not forbidden. Forbidden is checked first and always wins, so an
// inconsistent entry that lists its own fallback as forbidden stays closed.
func IsProofMethodAllowed(missionID string, businessType models.BusinessType, method models.ProofMethod) bool {
	config := GetProofMethodConfig(missionID, businessType)
	if config == nil {
		return false
	}
	if config.IsForbidden(method) {
		return false
	}
	if method == config.PrimaryProofMethod {
		return true
	}
	return config.FallbackProofMethod != nil && method == *config.FallbackProofMethod
}

// GetForbiddenReason returns the display justification for a forbidden
// method, or "" when the method is not forbidden for the pair.
func GetForbiddenReason(missionID string, businessType models.BusinessType, method models.ProofMethod) string {
	config := GetProofMethodConfig(missionID, businessType)
	if config == nil {
		return ""
	}
	return config.ForbiddenReason(method)
}

func moneyForbidden() []models.ForbiddenProof {
	return []models.ForbiddenProof{
		{Method: models.ProofMethodScreenshotAI, Reason: reasonScreenshotForgeable},
		{Method: models.ProofMethodPhotoUpload, Reason: reasonPhotoForgeable},
	}
}

func reviewProofConfig() models.ProofMethodConfig {
	return models.ProofMethodConfig{
		PrimaryProofMethod:  models.ProofMethodPlatformAPI,
		FallbackProofMethod: methodPtr(models.ProofMethodScreenshotAI),
	}
}

func checkinProofConfig() models.ProofMethodConfig {
	return models.ProofMethodConfig{
		PrimaryProofMethod:  models.ProofMethodQRScan,
		FallbackProofMethod: methodPtr(models.ProofMethodGPSCheckin),
		ForbiddenProofMethods: []models.ForbiddenProof{
			{Method: models.ProofMethodScreenshotAI, Reason: reasonScreenshotSpoofable},
		},
	}
}

func referralProofConfig() models.ProofMethodConfig {
	return models.ProofMethodConfig{
		PrimaryProofMethod: models.ProofMethodReferralLink,
		ForbiddenProofMethods: []models.ForbiddenProof{
			{Method: models.ProofMethodScreenshotAI, Reason: reasonSelfAttestedRef},
			{Method: models.ProofMethodPhotoUpload, Reason: reasonSelfAttestedRef},
		},
	}
}

func referralPurchaseProofConfig() models.ProofMethodConfig {
	return models.ProofMethodConfig{
		PrimaryProofMethod: models.ProofMethodReferralLink,
		ForbiddenProofMethods: []models.ForbiddenProof{
			{Method: models.ProofMethodScreenshotAI, Reason: reasonScreenshotForgeable},
			{Method: models.ProofMethodPhotoUpload, Reason: reasonPhotoForgeable},
		},
	}
}

func socialPostProofConfig() models.ProofMethodConfig {
	return models.ProofMethodConfig{
		PrimaryProofMethod:  models.ProofMethodPlatformAPI,
		FallbackProofMethod: methodPtr(models.ProofMethodScreenshotAI),
	}
}

// Ephemeral content: no fallback exists because the post disappears, so the
// entry demands business confirmation unconditionally.
func storyProofConfig() models.ProofMethodConfig {
	return models.ProofMethodConfig{
		PrimaryProofMethod:           models.ProofMethodScreenshotAI,
		RequiresBusinessConfirmation: true,
		ForbiddenProofMethods: []models.ForbiddenProof{
			{Method: models.ProofMethodPlatformAPI, Reason: reasonNoAPIForStory},
		},
	}
}

func followProofConfig() models.ProofMethodConfig {
	return models.ProofMethodConfig{
		PrimaryProofMethod:  models.ProofMethodPlatformAPI,
		FallbackProofMethod: methodPtr(models.ProofMethodScreenshotAI),
	}
}

func consultationProofConfig() models.ProofMethodConfig {
	return models.ProofMethodConfig{
		PrimaryProofMethod:           models.ProofMethodBusinessCode,
		RequiresBusinessConfirmation: true,
		ForbiddenProofMethods: []models.ForbiddenProof{
			{Method: models.ProofMethodScreenshotAI, Reason: reasonScreenshotForgeable},
		},
	}
}
