package catalog

import (
	"testing"

	"fluzio/internal/models"
)

func TestGetProofVerificationConfig(t *testing.T) {
	tests := []struct {
		name               string
		level              models.UserLevel
		trustScore         int
		rewardValue        int
		expectedStrictness models.ProofStrictness
		expectManualReview bool
		expectBizApproval  bool
		expectFraudCheck   bool
	}{
		{
			name:               "Novice_Default",
			level:              models.LevelNovice,
			trustScore:         50,
			rewardValue:        50,
			expectedStrictness: models.ProofStrictnessHigh,
			expectManualReview: true,
		},
		{
			name:               "Contributor_Default",
			level:              models.LevelContributor,
			trustScore:         60,
			rewardValue:        50,
			expectedStrictness: models.ProofStrictnessMedium,
			expectManualReview: false,
		},
		{
			name:               "Legend_Default",
			level:              models.LevelLegend,
			trustScore:         90,
			rewardValue:        50,
			expectedStrictness: models.ProofStrictnessLow,
			expectManualReview: false,
		},
		{
			name:               "Legend_HighReward_Tightens",
			level:              models.LevelLegend,
			trustScore:         90,
			rewardValue:        200,
			expectedStrictness: models.ProofStrictnessHigh,
			expectManualReview: true,
			expectBizApproval:  true,
		},
		{
			name:               "Legend_JustBelowHighReward",
			level:              models.LevelLegend,
			trustScore:         90,
			rewardValue:        199,
			expectedStrictness: models.ProofStrictnessLow,
			expectManualReview: false,
		},
		{
			name:               "Ambassador_LowTrust_FraudCheck",
			level:              models.LevelAmbassador,
			trustScore:         29,
			rewardValue:        50,
			expectedStrictness: models.ProofStrictnessHigh,
			expectManualReview: true,
			expectFraudCheck:   true,
		},
		{
			name:               "Ambassador_TrustAtThreshold",
			level:              models.LevelAmbassador,
			trustScore:         30,
			rewardValue:        50,
			expectedStrictness: models.ProofStrictnessLow,
			expectManualReview: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := GetProofVerificationConfig(tt.level, tt.trustScore, tt.rewardValue)

			if config.Strictness != tt.expectedStrictness {
				t.Errorf("Strictness = %s, want %s", config.Strictness, tt.expectedStrictness)
			}
			if config.RequiresManualReview != tt.expectManualReview {
				t.Errorf("RequiresManualReview = %v, want %v", config.RequiresManualReview, tt.expectManualReview)
			}
			if config.RequiresBusinessApproval != tt.expectBizApproval {
				t.Errorf("RequiresBusinessApproval = %v, want %v", config.RequiresBusinessApproval, tt.expectBizApproval)
			}

			hasFraudCheck := false
			for _, check := range config.AdditionalChecks {
				if check == "fraud_team_review" {
					hasFraudCheck = true
				}
			}
			if hasFraudCheck != tt.expectFraudCheck {
				t.Errorf("fraud_team_review present = %v, want %v", hasFraudCheck, tt.expectFraudCheck)
			}

			if config.AllowAutoApproval == config.RequiresManualReview {
				t.Error("AllowAutoApproval must be the inverse of RequiresManualReview")
			}
			if config.AIConfidenceThreshold != confidenceByStrictness[config.Strictness] {
				t.Errorf("AIConfidenceThreshold = %v, inconsistent with strictness %s", config.AIConfidenceThreshold, config.Strictness)
			}
		})
	}
}
