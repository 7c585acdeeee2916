package catalog

import (
	"testing"

	"fluzio/internal/models"
)

func TestCalculateUserLevel(t *testing.T) {
	tests := []struct {
		name          string
		totalPoints   int
		expectedLevel models.UserLevel
	}{
		{name: "Zero_Points", totalPoints: 0, expectedLevel: models.LevelNovice},
		{name: "JustBelow_Explorer", totalPoints: 99, expectedLevel: models.LevelNovice},
		{name: "Exactly_Explorer", totalPoints: 100, expectedLevel: models.LevelExplorer},
		{name: "JustBelow_Contributor", totalPoints: 499, expectedLevel: models.LevelExplorer},
		{name: "Exactly_Contributor", totalPoints: 500, expectedLevel: models.LevelContributor},
		{name: "Exactly_Advocate", totalPoints: 1500, expectedLevel: models.LevelAdvocate},
		{name: "Exactly_Ambassador", totalPoints: 5000, expectedLevel: models.LevelAmbassador},
		{name: "Exactly_Legend", totalPoints: 15000, expectedLevel: models.LevelLegend},
		{name: "WayAbove_Legend", totalPoints: 1000000, expectedLevel: models.LevelLegend},
		{name: "Negative_Points", totalPoints: -50, expectedLevel: models.LevelNovice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := CalculateUserLevel(tt.totalPoints)
			if level != tt.expectedLevel {
				t.Errorf("CalculateUserLevel(%d) = %d, want %d", tt.totalPoints, level, tt.expectedLevel)
			}
		})
	}
}

func TestGetUserLevelConfig_ClampsUnknownLevels(t *testing.T) {
	config := GetUserLevelConfig(models.UserLevel(99))
	if config.Level != models.LevelNovice {
		t.Errorf("unknown level should clamp to Novice, got %d", config.Level)
	}

	config = GetUserLevelConfig(models.UserLevel(0))
	if config.Level != models.LevelNovice {
		t.Errorf("level 0 should clamp to Novice, got %d", config.Level)
	}
}

// The ladder must only ever open up: every ceiling, capability and the
// reward multiplier is non-decreasing, trust floors non-decreasing, and
// cooldowns non-increasing.
func TestLevelTable_Monotonic(t *testing.T) {
	for i := 1; i < len(levelTable); i++ {
		prev := levelTable[i-1]
		curr := levelTable[i]

		if curr.MinPoints <= prev.MinPoints {
			t.Errorf("%s: MinPoints %d not above %s's %d", curr.Name, curr.MinPoints, prev.Name, prev.MinPoints)
		}
		if curr.MaxActiveMissionsPerDay < prev.MaxActiveMissionsPerDay {
			t.Errorf("%s: MaxActiveMissionsPerDay decreased", curr.Name)
		}
		if curr.MaxReviewMissionsPerDay < prev.MaxReviewMissionsPerDay {
			t.Errorf("%s: MaxReviewMissionsPerDay decreased", curr.Name)
		}
		if curr.MaxCheckInMissionsPerDay < prev.MaxCheckInMissionsPerDay {
			t.Errorf("%s: MaxCheckInMissionsPerDay decreased", curr.Name)
		}
		if curr.MaxHighValueMissionsPerWeek < prev.MaxHighValueMissionsPerWeek {
			t.Errorf("%s: MaxHighValueMissionsPerWeek decreased", curr.Name)
		}
		if curr.MaxUgcSubmissionsPerWeek < prev.MaxUgcSubmissionsPerWeek {
			t.Errorf("%s: MaxUgcSubmissionsPerWeek decreased", curr.Name)
		}
		if curr.MaxReferralAttemptsPerMonth < prev.MaxReferralAttemptsPerMonth {
			t.Errorf("%s: MaxReferralAttemptsPerMonth decreased", curr.Name)
		}
		if curr.MinimumTrustScoreRequired < prev.MinimumTrustScoreRequired {
			t.Errorf("%s: MinimumTrustScoreRequired decreased", curr.Name)
		}
		if curr.RewardMultiplier < prev.RewardMultiplier {
			t.Errorf("%s: RewardMultiplier decreased", curr.Name)
		}
		if curr.MinCooldownBetweenMissionsMinutes > prev.MinCooldownBetweenMissionsMinutes {
			t.Errorf("%s: cooldown increased over %s", curr.Name, prev.Name)
		}

		if prev.CanAccessReferralMissions && !curr.CanAccessReferralMissions {
			t.Errorf("%s: lost referral access held by %s", curr.Name, prev.Name)
		}
		if prev.CanAccessUgcMissions && !curr.CanAccessUgcMissions {
			t.Errorf("%s: lost UGC access held by %s", curr.Name, prev.Name)
		}
		if prev.CanAccessReviewMissions && !curr.CanAccessReviewMissions {
			t.Errorf("%s: lost review access held by %s", curr.Name, prev.Name)
		}
		if prev.CanAccessHighValueMissions && !curr.CanAccessHighValueMissions {
			t.Errorf("%s: lost high-value access held by %s", curr.Name, prev.Name)
		}
	}
}

func TestLevelTable_CapabilityUnlocks(t *testing.T) {
	explorer := GetUserLevelConfig(models.LevelExplorer)
	if !explorer.CanAccessUgcMissions || !explorer.CanAccessReviewMissions {
		t.Error("Explorer should unlock UGC and review missions")
	}
	if explorer.CanAccessReferralMissions {
		t.Error("Explorer should not have referral access yet")
	}

	contributor := GetUserLevelConfig(models.LevelContributor)
	if !contributor.CanAccessReferralMissions || !contributor.CanAccessHighValueMissions {
		t.Error("Contributor should unlock referral and high-value missions")
	}
	if contributor.RequiresManualApproval {
		t.Error("Contributor submissions should not require manual approval by default")
	}
}

func TestGetNextLevelRequirements(t *testing.T) {
	explorer := models.LevelExplorer

	tests := []struct {
		name            string
		level           models.UserLevel
		totalPoints     int
		expectedNext    *models.UserLevel
		expectedNeeded  int
		expectedPercent int
	}{
		{
			name:            "Novice_Halfway",
			level:           models.LevelNovice,
			totalPoints:     50,
			expectedNext:    &explorer,
			expectedNeeded:  50,
			expectedPercent: 50,
		},
		{
			name:            "Novice_Fresh",
			level:           models.LevelNovice,
			totalPoints:     0,
			expectedNext:    &explorer,
			expectedNeeded:  100,
			expectedPercent: 0,
		},
		{
			name:            "Legend_TopOfLadder",
			level:           models.LevelLegend,
			totalPoints:     20000,
			expectedNext:    nil,
			expectedNeeded:  0,
			expectedPercent: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := GetNextLevelRequirements(tt.level, tt.totalPoints)

			if tt.expectedNext == nil {
				if progress.NextLevel != nil {
					t.Errorf("expected no next level, got %d", *progress.NextLevel)
				}
			} else if progress.NextLevel == nil || *progress.NextLevel != *tt.expectedNext {
				t.Errorf("expected next level %d, got %v", *tt.expectedNext, progress.NextLevel)
			}

			if progress.PointsNeeded != tt.expectedNeeded {
				t.Errorf("PointsNeeded = %d, want %d", progress.PointsNeeded, tt.expectedNeeded)
			}
			if progress.PercentComplete != tt.expectedPercent {
				t.Errorf("PercentComplete = %d, want %d", progress.PercentComplete, tt.expectedPercent)
			}
		})
	}
}
