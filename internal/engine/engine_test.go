package engine

import (
	"testing"
	"time"

	"fluzio/internal/catalog"
	"fluzio/internal/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func freshActivity() *models.ActivityCounts {
	return &models.ActivityCounts{}
}

func TestValidateMissionActivation(t *testing.T) {
	tests := []struct {
		name             string
		input            ActivationInput
		expectValid      bool
		expectErrorCodes []models.ValidationCode
		expectWarnCodes  []models.ValidationCode
	}{
		{
			name: "Valid_FirstPurchase",
			input: ActivationInput{
				MissionID:       catalog.MissionFirstPurchase,
				BusinessType:    models.BusinessTypePhysical,
				BusinessLevel:   2,
				ProofMethod:     models.ProofMethodBusinessCode,
				RewardPoints:    150,
				MaxParticipants: intp(200),
			},
			expectValid: true,
		},
		{
			name: "UnknownMission",
			input: ActivationInput{
				MissionID:    "NOT_A_MISSION",
				BusinessType: models.BusinessTypePhysical,
				ProofMethod:  models.ProofMethodQRScan,
				RewardPoints: 100,
			},
			expectValid:      false,
			expectErrorCodes: []models.ValidationCode{models.CodeMissionNotAvailable},
		},
		{
			name: "CheckinForOnline_NotOffered",
			input: ActivationInput{
				MissionID:    catalog.MissionVisitCheckin,
				BusinessType: models.BusinessTypeOnline,
				ProofMethod:  models.ProofMethodQRScan,
				RewardPoints: 30,
			},
			expectValid:      false,
			expectErrorCodes: []models.ValidationCode{models.CodeMissionNotAvailable},
		},
		{
			name: "PurchaseWithScreenshot_Forbidden",
			input: ActivationInput{
				MissionID:       catalog.MissionFirstPurchase,
				BusinessType:    models.BusinessTypeOnline,
				BusinessLevel:   2,
				ProofMethod:     models.ProofMethodScreenshotAI,
				RewardPoints:    150,
				MaxParticipants: intp(100),
			},
			expectValid:      false,
			expectErrorCodes: []models.ValidationCode{models.CodeInvalidProofMethod},
			expectWarnCodes:  []models.ValidationCode{models.CodeSuggestedProofMethods},
		},
		{
			name: "Reward_BelowMinimum",
			input: ActivationInput{
				MissionID:     catalog.MissionFollowSocial,
				BusinessType:  models.BusinessTypeOnline,
				BusinessLevel: 1,
				ProofMethod:   models.ProofMethodPlatformAPI,
				RewardPoints:  24,
			},
			expectValid:      false,
			expectErrorCodes: []models.ValidationCode{models.CodeRewardTooLow},
		},
		{
			name: "Reward_ExactMinimum",
			input: ActivationInput{
				MissionID:     catalog.MissionFollowSocial,
				BusinessType:  models.BusinessTypeOnline,
				BusinessLevel: 1,
				ProofMethod:   models.ProofMethodPlatformAPI,
				RewardPoints:  25,
			},
			expectValid: true,
		},
		{
			name: "Reward_ExactMaximum",
			input: ActivationInput{
				MissionID:       catalog.MissionFollowSocial,
				BusinessType:    models.BusinessTypeOnline,
				BusinessLevel:   1,
				ProofMethod:     models.ProofMethodPlatformAPI,
				RewardPoints:    500,
				MaxParticipants: intp(100),
			},
			expectValid: true,
		},
		{
			name: "Reward_AboveMaximum",
			input: ActivationInput{
				MissionID:     catalog.MissionFollowSocial,
				BusinessType:  models.BusinessTypeOnline,
				BusinessLevel: 1,
				ProofMethod:   models.ProofMethodPlatformAPI,
				RewardPoints:  501,
			},
			expectValid:      false,
			expectErrorCodes: []models.ValidationCode{models.CodeRewardTooHigh},
		},
		{
			name: "ErrorsAccumulate",
			input: ActivationInput{
				MissionID:       catalog.MissionFirstPurchase,
				BusinessType:    models.BusinessTypeOnline,
				BusinessLevel:   2,
				ProofMethod:     models.ProofMethodScreenshotAI,
				RewardPoints:    501,
				MaxParticipants: intp(100),
			},
			expectValid: false,
			expectErrorCodes: []models.ValidationCode{
				models.CodeInvalidProofMethod,
				models.CodeRewardTooHigh,
			},
		},
		{
			name: "HighValue_LowBusinessLevel_Nudged",
			input: ActivationInput{
				MissionID:       catalog.MissionFirstPurchase,
				BusinessType:    models.BusinessTypePhysical,
				BusinessLevel:   1,
				ProofMethod:     models.ProofMethodBusinessCode,
				RewardPoints:    150,
				MaxParticipants: intp(200),
			},
			expectValid:     true,
			expectWarnCodes: []models.ValidationCode{models.CodeUpgradeRecommended},
		},
		{
			name: "CustomCap_AboveRecommended",
			input: ActivationInput{
				MissionID:       catalog.MissionFirstPurchase,
				BusinessType:    models.BusinessTypePhysical,
				BusinessLevel:   2,
				ProofMethod:     models.ProofMethodBusinessCode,
				RewardPoints:    100,
				MaxParticipants: intp(600),
			},
			expectValid: true,
			expectWarnCodes: []models.ValidationCode{
				models.CodeParticipantCapTooHigh,
				models.CodeHighBudget,
			},
		},
		{
			name: "DefaultBudget_AboveThreshold",
			input: ActivationInput{
				MissionID:     catalog.MissionInstagramStory,
				BusinessType:  models.BusinessTypeOnline,
				BusinessLevel: 2,
				ProofMethod:   models.ProofMethodScreenshotAI,
				RewardPoints:  100,
			},
			expectValid:     true,
			expectWarnCodes: []models.ValidationCode{models.CodeHighBudget},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateMissionActivation(tt.input)

			if result.IsValid != tt.expectValid {
				t.Errorf("IsValid = %v, want %v (errors: %+v)", result.IsValid, tt.expectValid, result.Errors)
			}
			for _, code := range tt.expectErrorCodes {
				if !result.HasError(code) {
					t.Errorf("missing expected error %s (got %+v)", code, result.Errors)
				}
			}
			for _, code := range tt.expectWarnCodes {
				if !result.HasWarning(code) {
					t.Errorf("missing expected warning %s (got %+v)", code, result.Warnings)
				}
			}
		})
	}
}

func TestValidateMissionActivation_Idempotent(t *testing.T) {
	input := ActivationInput{
		MissionID:       catalog.MissionFirstPurchase,
		BusinessType:    models.BusinessTypeOnline,
		BusinessLevel:   1,
		ProofMethod:     models.ProofMethodScreenshotAI,
		RewardPoints:    501,
		MaxParticipants: intp(600),
	}

	first := ValidateMissionActivation(input)
	for i := 0; i < 5; i++ {
		again := ValidateMissionActivation(input)
		if again.IsValid != first.IsValid || len(again.Errors) != len(first.Errors) || len(again.Warnings) != len(first.Warnings) {
			t.Fatalf("result changed between identical calls: %+v vs %+v", first, again)
		}
	}
}

func TestValidateMissionParticipation_LevelGates(t *testing.T) {
	tests := []struct {
		name            string
		missionID       string
		totalPoints     int
		trustScore      int
		proofMethod     models.ProofMethod
		expectValid     bool
		expectErrorCode models.ValidationCode
		expectOnlyError bool
	}{
		{
			name:            "Novice_Referral_Blocked",
			missionID:       catalog.MissionBringAFriend,
			totalPoints:     0,
			trustScore:      90,
			proofMethod:     models.ProofMethodReferralLink,
			expectValid:     false,
			expectErrorCode: models.CodeLevelTooLowReferral,
			expectOnlyError: true,
		},
		{
			name:            "Novice_UGC_Blocked",
			missionID:       catalog.MissionTiktokVideo,
			totalPoints:     99,
			trustScore:      90,
			proofMethod:     models.ProofMethodPlatformAPI,
			expectValid:     false,
			expectErrorCode: models.CodeLevelTooLowUgc,
			expectOnlyError: true,
		},
		{
			name:            "Novice_Review_Blocked",
			missionID:       catalog.MissionGoogleReview,
			totalPoints:     0,
			trustScore:      90,
			proofMethod:     models.ProofMethodPlatformAPI,
			expectValid:     false,
			expectErrorCode: models.CodeLevelTooLowReview,
			expectOnlyError: true,
		},
		{
			name:        "Explorer_Review_Allowed",
			missionID:   catalog.MissionGoogleReview,
			totalPoints: 100,
			trustScore:  40,
			proofMethod: models.ProofMethodPlatformAPI,
			expectValid: true,
		},
		{
			name:        "Contributor_Referral_Allowed",
			missionID:   catalog.MissionBringAFriend,
			totalPoints: 500,
			trustScore:  60,
			proofMethod: models.ProofMethodReferralLink,
			expectValid: true,
		},
		{
			name:            "Contributor_TrustBelowFloor",
			missionID:       catalog.MissionFollowSocial,
			totalPoints:     500,
			trustScore:      40,
			proofMethod:     models.ProofMethodPlatformAPI,
			expectValid:     false,
			expectErrorCode: models.CodeTrustScoreTooLow,
		},
		{
			name:        "Contributor_TrustAtFloor",
			missionID:   catalog.MissionFollowSocial,
			totalPoints: 500,
			trustScore:  50,
			proofMethod: models.ProofMethodPlatformAPI,
			expectValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateMissionParticipation(ParticipationInput{
				MissionID:       tt.missionID,
				UserID:          7,
				UserTotalPoints: tt.totalPoints,
				UserTrustScore:  tt.trustScore,
				BusinessType:    models.BusinessTypeHybrid,
				ProofMethod:     tt.proofMethod,
				Activity:        freshActivity(),
				Now:             testNow,
			})

			if result.IsValid != tt.expectValid {
				t.Errorf("IsValid = %v, want %v (errors: %+v)", result.IsValid, tt.expectValid, result.Errors)
			}
			if tt.expectErrorCode != "" && !result.HasError(tt.expectErrorCode) {
				t.Errorf("missing expected error %s (got %+v)", tt.expectErrorCode, result.Errors)
			}
			if tt.expectOnlyError && len(result.Errors) != 1 {
				t.Errorf("closed gate should short-circuit with one error, got %+v", result.Errors)
			}
		})
	}
}

// A closed gate fires even when the trust score alone would also fail:
// the gate error must be present regardless of trust.
func TestValidateMissionParticipation_GateIndependentOfTrust(t *testing.T) {
	result := ValidateMissionParticipation(ParticipationInput{
		MissionID:       catalog.MissionBringAFriend,
		UserTotalPoints: 0,
		UserTrustScore:  5,
		BusinessType:    models.BusinessTypeHybrid,
		ProofMethod:     models.ProofMethodReferralLink,
		Activity:        freshActivity(),
		Now:             testNow,
	})

	if !result.HasError(models.CodeLevelTooLowReferral) {
		t.Errorf("expected LEVEL_TOO_LOW_REFERRAL, got %+v", result.Errors)
	}
}

func TestValidateMissionParticipation_HighValueWarnsInsteadOfBlocking(t *testing.T) {
	result := ValidateMissionParticipation(ParticipationInput{
		MissionID:       catalog.MissionFirstPurchase,
		UserTotalPoints: 100, // Explorer: no high-value capability
		UserTrustScore:  40,
		BusinessType:    models.BusinessTypePhysical,
		ProofMethod:     models.ProofMethodBusinessCode,
		Activity:        &models.ActivityCounts{HighValueThisWeek: 5},
		Now:             testNow,
	})

	if !result.IsValid {
		t.Errorf("high-value access should not hard-block, got %+v", result.Errors)
	}
	if !result.HasWarning(models.CodeRequiresManualApproval) {
		t.Errorf("expected REQUIRES_MANUAL_APPROVAL warning, got %+v", result.Warnings)
	}
}

func TestValidateMissionParticipation_Capacity(t *testing.T) {
	base := ParticipationInput{
		MissionID:       catalog.MissionFirstPurchase,
		UserTotalPoints: 500,
		UserTrustScore:  60,
		BusinessType:    models.BusinessTypePhysical,
		ProofMethod:     models.ProofMethodBusinessCode,
		Activity:        freshActivity(),
		Now:             testNow,
	}

	full := base
	full.CurrentTotalParticipants = 500
	result := ValidateMissionParticipation(full)
	if !result.HasError(models.CodeMissionFull) {
		t.Errorf("expected MISSION_FULL at cap, got %+v", result.Errors)
	}

	almostFull := base
	almostFull.CurrentTotalParticipants = 490
	result = ValidateMissionParticipation(almostFull)
	if !result.IsValid {
		t.Errorf("490/500 should still be valid, got %+v", result.Errors)
	}
	if !result.HasWarning(models.CodeAlmostFull) {
		t.Errorf("expected ALMOST_FULL at 10 remaining, got %+v", result.Warnings)
	}

	comfortable := base
	comfortable.CurrentTotalParticipants = 489
	result = ValidateMissionParticipation(comfortable)
	if result.HasWarning(models.CodeAlmostFull) {
		t.Error("ALMOST_FULL must not fire with 11 slots remaining")
	}
}

func TestValidateMissionParticipation_UserLimits(t *testing.T) {
	base := ParticipationInput{
		MissionID:       catalog.MissionGoogleReview,
		UserTotalPoints: 100,
		UserTrustScore:  40,
		BusinessType:    models.BusinessTypeOnline,
		ProofMethod:     models.ProofMethodPlatformAPI,
		Activity:        freshActivity(),
		Now:             testNow,
	}

	exhausted := base
	exhausted.UserCompletionCount = 1
	result := ValidateMissionParticipation(exhausted)
	if !result.HasError(models.CodeUserLimitReached) {
		t.Errorf("expected USER_LIMIT_REACHED after one-shot completion, got %+v", result.Errors)
	}

	cooldown := base
	cooldown.MissionID = catalog.MissionVisitCheckin
	cooldown.BusinessType = models.BusinessTypePhysical
	cooldown.ProofMethod = models.ProofMethodQRScan
	cooldown.UserCompletionCount = 2
	cooldown.LastCompletionAt = timep(testNow.Add(-5 * time.Hour))
	result = ValidateMissionParticipation(cooldown)
	if !result.HasError(models.CodeUserLimitReached) {
		t.Fatalf("expected USER_LIMIT_REACHED during cooldown, got %+v", result.Errors)
	}
	for _, e := range result.Errors {
		if e.Code == models.CodeUserLimitReached && e.CooldownEnds == nil {
			t.Error("cooldown rejection must carry CooldownEnds")
		}
	}
}

func TestValidateMissionParticipation_ActivityCeilings(t *testing.T) {
	result := ValidateMissionParticipation(ParticipationInput{
		MissionID:       catalog.MissionFollowSocial,
		UserTotalPoints: 0,
		UserTrustScore:  50,
		BusinessType:    models.BusinessTypeOnline,
		ProofMethod:     models.ProofMethodPlatformAPI,
		Activity:        &models.ActivityCounts{MissionsStartedToday: 3},
		Now:             testNow,
	})

	if !result.HasError(models.CodeUserLimitReached) {
		t.Errorf("Novice at 3 missions today must hit the daily ceiling, got %+v", result.Errors)
	}

	// Nil activity disables the ceilings (preview mode); the rest still runs.
	result = ValidateMissionParticipation(ParticipationInput{
		MissionID:       catalog.MissionFollowSocial,
		UserTotalPoints: 0,
		UserTrustScore:  50,
		BusinessType:    models.BusinessTypeOnline,
		ProofMethod:     models.ProofMethodPlatformAPI,
		Now:             testNow,
	})
	if !result.IsValid {
		t.Errorf("preview without activity counts should pass, got %+v", result.Errors)
	}
}

func TestValidateMissionCompletely(t *testing.T) {
	brokenActivation := ActivationInput{
		MissionID:    catalog.MissionFollowSocial,
		BusinessType: models.BusinessTypeOnline,
		ProofMethod:  models.ProofMethodPlatformAPI,
		RewardPoints: 10,
	}
	participation := ParticipationInput{
		MissionID:       catalog.MissionFollowSocial,
		UserTotalPoints: 0,
		UserTrustScore:  50,
		BusinessType:    models.BusinessTypeOnline,
		ProofMethod:     models.ProofMethodPlatformAPI,
		Activity:        freshActivity(),
		Now:             testNow,
	}

	result := ValidateMissionCompletely(brokenActivation, participation)
	if result.IsValid {
		t.Error("a broken activation must fail the combined check")
	}
	if !result.HasError(models.CodeRewardTooLow) {
		t.Errorf("expected the activation error to surface, got %+v", result.Errors)
	}

	okActivation := brokenActivation
	okActivation.RewardPoints = 100
	okActivation.MaxParticipants = intp(600)

	result = ValidateMissionCompletely(okActivation, participation)
	if !result.IsValid {
		t.Errorf("expected combined pass, got %+v", result.Errors)
	}
	if !result.HasWarning(models.CodeHighBudget) {
		t.Errorf("activation warnings must merge into the combined result, got %+v", result.Warnings)
	}
}

func TestCanUserStartMission(t *testing.T) {
	ok, reason := CanUserStartMission(ParticipationInput{
		MissionID:       catalog.MissionFollowSocial,
		UserTotalPoints: 100,
		UserTrustScore:  50,
		BusinessType:    models.BusinessTypeOnline,
		ProofMethod:     models.ProofMethodPlatformAPI,
		Now:             testNow,
	})
	if !ok {
		t.Errorf("expected go-ahead, got %q", reason)
	}

	ok, reason = CanUserStartMission(ParticipationInput{
		MissionID:       catalog.MissionBringAFriend,
		UserTotalPoints: 0,
		UserTrustScore:  50,
		BusinessType:    models.BusinessTypeOnline,
		ProofMethod:     models.ProofMethodReferralLink,
		Now:             testNow,
	})
	if ok || reason == "" {
		t.Error("Novice referral attempt must be refused with a reason")
	}
}

// The shortcut honors the same level ceilings as the full pipeline when the
// caller supplies activity counts.
func TestCanUserStartMission_ActivityCeilings(t *testing.T) {
	base := ParticipationInput{
		MissionID:       catalog.MissionFollowSocial,
		UserTotalPoints: 0,
		UserTrustScore:  50,
		BusinessType:    models.BusinessTypeOnline,
		ProofMethod:     models.ProofMethodPlatformAPI,
		Now:             testNow,
	}

	atCeiling := base
	atCeiling.Activity = &models.ActivityCounts{MissionsStartedToday: 3}
	ok, reason := CanUserStartMission(atCeiling)
	if ok || reason == "" {
		t.Error("Novice at 3 missions today must be refused with a reason")
	}

	underCeiling := base
	underCeiling.Activity = &models.ActivityCounts{MissionsStartedToday: 2}
	if ok, reason := CanUserStartMission(underCeiling); !ok {
		t.Errorf("expected go-ahead under the daily ceiling, got %q", reason)
	}
}

func TestCanBusinessCreateMission(t *testing.T) {
	tests := []struct {
		name         string
		missionID    string
		businessType models.BusinessType
		proofMethod  models.ProofMethod
		rewardPoints int
		expectOK     bool
	}{
		{
			name:         "Valid",
			missionID:    catalog.MissionFollowSocial,
			businessType: models.BusinessTypeOnline,
			proofMethod:  models.ProofMethodPlatformAPI,
			rewardPoints: 50,
			expectOK:     true,
		},
		{
			name:         "MoneyMission_ScreenshotBackstop",
			missionID:    catalog.MissionFirstPurchase,
			businessType: models.BusinessTypeOnline,
			proofMethod:  models.ProofMethodScreenshotAI,
			rewardPoints: 100,
			expectOK:     false,
		},
		{
			name:         "NotOffered",
			missionID:    catalog.MissionVisitCheckin,
			businessType: models.BusinessTypeOnline,
			proofMethod:  models.ProofMethodQRScan,
			rewardPoints: 30,
			expectOK:     false,
		},
		{
			name:         "RewardTooLow",
			missionID:    catalog.MissionFollowSocial,
			businessType: models.BusinessTypeOnline,
			proofMethod:  models.ProofMethodPlatformAPI,
			rewardPoints: 24,
			expectOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := CanBusinessCreateMission(tt.missionID, tt.businessType, tt.proofMethod, tt.rewardPoints)
			if ok != tt.expectOK {
				t.Errorf("ok = %v, want %v (reason: %q)", ok, tt.expectOK, reason)
			}
			if !ok && reason == "" {
				t.Error("refusal must carry a reason")
			}
		})
	}
}
