package catalog

import "fluzio/internal/models"

const (
	// Reward value at or above which a submission is always manually
	// reviewed, whatever the user's level.
	HighRewardManualThreshold = 200
	// Trust score below which the fraud-team check kicks in.
	LowTrustThreshold = 30
)

var confidenceByStrictness = map[models.ProofStrictness]float64{
	models.ProofStrictnessHigh:   0.95,
	models.ProofStrictnessMedium: 0.85,
	models.ProofStrictnessLow:    0.70,
}

// GetProofVerificationConfig combines the level's base strictness with two
// hard overrides: high-value rewards and low trust scores. Overrides only
// ever tighten the posture, never loosen it below the level's base.
func GetProofVerificationConfig(level models.UserLevel, trustScore int, missionRewardValue int) models.ProofVerificationConfig {
	levelConfig := GetUserLevelConfig(level)

	config := models.ProofVerificationConfig{
		Strictness:           levelConfig.ProofStrictness,
		RequiresManualReview: levelConfig.RequiresManualApproval,
	}

	if missionRewardValue >= HighRewardManualThreshold {
		config.Strictness = models.ProofStrictnessHigh
		config.RequiresManualReview = true
		config.RequiresBusinessApproval = true
	}

	if trustScore < LowTrustThreshold {
		config.Strictness = models.ProofStrictnessHigh
		config.RequiresManualReview = true
		config.AdditionalChecks = append(config.AdditionalChecks, "fraud_team_review")
	}

	config.AIConfidenceThreshold = confidenceByStrictness[config.Strictness]
	config.AllowAutoApproval = !config.RequiresManualReview
	return config
}
