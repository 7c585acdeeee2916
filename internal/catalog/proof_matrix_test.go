package catalog

import (
	"testing"

	"fluzio/internal/models"
)

// No matrix entry may list its own primary or fallback method as
// forbidden; forbidden always wins, so such an entry would be dead.
func TestProofMatrix_ForbiddenDisjointFromAccepted(t *testing.T) {
	for missionID, byType := range proofMatrix {
		for businessType, config := range byType {
			for _, forbidden := range config.ForbiddenProofMethods {
				if forbidden.Method == config.PrimaryProofMethod {
					t.Errorf("%s/%s: primary method %s is also forbidden", missionID, businessType, forbidden.Method)
				}
				if config.FallbackProofMethod != nil && forbidden.Method == *config.FallbackProofMethod {
					t.Errorf("%s/%s: fallback method %s is also forbidden", missionID, businessType, forbidden.Method)
				}
				if forbidden.Reason == "" {
					t.Errorf("%s/%s: forbidden method %s has no reason", missionID, businessType, forbidden.Method)
				}
			}
		}
	}
}

// Every (mission, type) pair offered by the availability map must resolve
// to a matrix entry, and vice versa.
func TestProofMatrix_MatchesAvailability(t *testing.T) {
	for missionID, byType := range missionAvailability {
		for businessType := range byType {
			if GetProofMethodConfig(missionID, businessType) == nil {
				t.Errorf("%s is offered to %s but has no proof config", missionID, businessType)
			}
		}
	}

	for missionID, byType := range proofMatrix {
		for businessType := range byType {
			if !IsMissionAvailable(missionID, businessType) {
				t.Errorf("%s has a proof config for %s but is not offered there", missionID, businessType)
			}
		}
	}
}

func TestGetProofMethodConfig(t *testing.T) {
	tests := []struct {
		name         string
		missionID    string
		businessType models.BusinessType
		expectNil    bool
	}{
		{name: "Checkin_Physical", missionID: MissionVisitCheckin, businessType: models.BusinessTypePhysical},
		{name: "Checkin_Online_NotOffered", missionID: MissionVisitCheckin, businessType: models.BusinessTypeOnline, expectNil: true},
		{name: "Tripadvisor_Online_NotOffered", missionID: MissionTripadvisorReview, businessType: models.BusinessTypeOnline, expectNil: true},
		{name: "Newsletter_Physical_NotOffered", missionID: MissionNewsletterSignup, businessType: models.BusinessTypePhysical, expectNil: true},
		{name: "Unknown_Mission", missionID: "NOT_A_MISSION", businessType: models.BusinessTypePhysical, expectNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := GetProofMethodConfig(tt.missionID, tt.businessType)
			if tt.expectNil && config != nil {
				t.Errorf("expected nil config for %s/%s", tt.missionID, tt.businessType)
			}
			if !tt.expectNil && config == nil {
				t.Errorf("expected config for %s/%s", tt.missionID, tt.businessType)
			}
		})
	}
}

func TestGetProofMethodConfig_AppliesAvailabilityAdjustments(t *testing.T) {
	config := GetProofMethodConfig(MissionVisitCheckin, models.BusinessTypeHybrid)
	if config == nil {
		t.Fatal("expected config")
	}
	if len(config.VerificationRequirements) != 2 {
		t.Errorf("expected 2 extra verification steps, got %v", config.VerificationRequirements)
	}

	story := GetProofMethodConfig(MissionInstagramStory, models.BusinessTypeOnline)
	if story == nil {
		t.Fatal("expected config")
	}
	if !story.RequiresBusinessConfirmation {
		t.Error("story mission must require business confirmation")
	}
}

func TestIsProofMethodAllowed(t *testing.T) {
	tests := []struct {
		name         string
		missionID    string
		businessType models.BusinessType
		method       models.ProofMethod
		expected     bool
	}{
		{
			name:         "Review_Primary",
			missionID:    MissionGoogleReview,
			businessType: models.BusinessTypePhysical,
			method:       models.ProofMethodPlatformAPI,
			expected:     true,
		},
		{
			name:         "Review_Fallback",
			missionID:    MissionGoogleReview,
			businessType: models.BusinessTypePhysical,
			method:       models.ProofMethodScreenshotAI,
			expected:     true,
		},
		{
			name:         "Review_Unlisted",
			missionID:    MissionGoogleReview,
			businessType: models.BusinessTypePhysical,
			method:       models.ProofMethodQRScan,
			expected:     false,
		},
		{
			name:         "Purchase_ScreenshotForbidden",
			missionID:    MissionFirstPurchase,
			businessType: models.BusinessTypeOnline,
			method:       models.ProofMethodScreenshotAI,
			expected:     false,
		},
		{
			name:         "Purchase_PhotoForbidden",
			missionID:    MissionFirstPurchase,
			businessType: models.BusinessTypePhysical,
			method:       models.ProofMethodPhotoUpload,
			expected:     false,
		},
		{
			name:         "Checkin_ScreenshotForbidden",
			missionID:    MissionVisitCheckin,
			businessType: models.BusinessTypePhysical,
			method:       models.ProofMethodScreenshotAI,
			expected:     false,
		},
		{
			name:         "Checkin_OnlineNotOffered",
			missionID:    MissionVisitCheckin,
			businessType: models.BusinessTypeOnline,
			method:       models.ProofMethodQRScan,
			expected:     false,
		},
		{
			name:         "Referral_LinkOnly",
			missionID:    MissionBringAFriend,
			businessType: models.BusinessTypeOnline,
			method:       models.ProofMethodReferralLink,
			expected:     true,
		},
		{
			name:         "Story_NoPlatformAPI",
			missionID:    MissionInstagramStory,
			businessType: models.BusinessTypeHybrid,
			method:       models.ProofMethodPlatformAPI,
			expected:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed := IsProofMethodAllowed(tt.missionID, tt.businessType, tt.method)
			if allowed != tt.expected {
				t.Errorf("IsProofMethodAllowed(%s, %s, %s) = %v, want %v",
					tt.missionID, tt.businessType, tt.method, allowed, tt.expected)
			}
		})
	}
}

func TestGetForbiddenReason(t *testing.T) {
	reason := GetForbiddenReason(MissionFirstPurchase, models.BusinessTypeOnline, models.ProofMethodScreenshotAI)
	if reason == "" {
		t.Error("expected a reason for the forbidden screenshot method")
	}

	reason = GetForbiddenReason(MissionFirstPurchase, models.BusinessTypeOnline, models.ProofMethodPlatformAPI)
	if reason != "" {
		t.Errorf("primary method should have no forbidden reason, got %q", reason)
	}
}
