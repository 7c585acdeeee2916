package catalog

import "fluzio/internal/models"

// levelTable is ordered by level. Capability flags and the reward multiplier
// are monotonically non-decreasing across rows; levels_test.go enforces it.
var levelTable = []models.UserLevelConfig{
	{
		Level:     models.LevelNovice,
		Name:      "Novice",
		MinPoints: 0,

		MaxActiveMissionsPerDay:     3,
		MaxReviewMissionsPerDay:     0,
		MaxCheckInMissionsPerDay:    2,
		MaxHighValueMissionsPerWeek: 0,
		MaxUgcSubmissionsPerWeek:    0,
		MaxReferralAttemptsPerMonth: 0,

		MinimumTrustScoreRequired: 0,
		ProofStrictness:           models.ProofStrictnessHigh,
		RequiresManualApproval:    true,

		MinCooldownBetweenMissionsMinutes: 120,
		RewardMultiplier:                  1.0,
	},
	{
		Level:     models.LevelExplorer,
		Name:      "Explorer",
		MinPoints: 100,

		MaxActiveMissionsPerDay:     5,
		MaxReviewMissionsPerDay:     1,
		MaxCheckInMissionsPerDay:    3,
		MaxHighValueMissionsPerWeek: 0,
		MaxUgcSubmissionsPerWeek:    2,
		MaxReferralAttemptsPerMonth: 0,

		MinimumTrustScoreRequired: 30,
		ProofStrictness:           models.ProofStrictnessHigh,
		RequiresManualApproval:    true,

		CanAccessUgcMissions:    true,
		CanAccessReviewMissions: true,

		MinCooldownBetweenMissionsMinutes: 90,
		RewardMultiplier:                  1.05,
	},
	{
		Level:     models.LevelContributor,
		Name:      "Contributor",
		MinPoints: 500,

		MaxActiveMissionsPerDay:     8,
		MaxReviewMissionsPerDay:     2,
		MaxCheckInMissionsPerDay:    4,
		MaxHighValueMissionsPerWeek: 2,
		MaxUgcSubmissionsPerWeek:    4,
		MaxReferralAttemptsPerMonth: 5,

		MinimumTrustScoreRequired: 50,
		ProofStrictness:           models.ProofStrictnessMedium,
		RequiresManualApproval:    false,

		CanAccessReferralMissions:  true,
		CanAccessHighValueMissions: true,
		CanAccessUgcMissions:       true,
		CanAccessReviewMissions:    true,

		MinCooldownBetweenMissionsMinutes: 60,
		RewardMultiplier:                  1.1,
	},
	{
		Level:     models.LevelAdvocate,
		Name:      "Advocate",
		MinPoints: 1500,

		MaxActiveMissionsPerDay:     12,
		MaxReviewMissionsPerDay:     3,
		MaxCheckInMissionsPerDay:    6,
		MaxHighValueMissionsPerWeek: 4,
		MaxUgcSubmissionsPerWeek:    7,
		MaxReferralAttemptsPerMonth: 10,

		MinimumTrustScoreRequired: 55,
		ProofStrictness:           models.ProofStrictnessMedium,
		RequiresManualApproval:    false,

		CanAccessReferralMissions:  true,
		CanAccessHighValueMissions: true,
		CanAccessUgcMissions:       true,
		CanAccessReviewMissions:    true,

		MinCooldownBetweenMissionsMinutes: 45,
		CanBypassBasicCooldowns:           true,
		RewardMultiplier:                  1.2,
	},
	{
		Level:     models.LevelAmbassador,
		Name:      "Ambassador",
		MinPoints: 5000,

		MaxActiveMissionsPerDay:     20,
		MaxReviewMissionsPerDay:     4,
		MaxCheckInMissionsPerDay:    8,
		MaxHighValueMissionsPerWeek: 7,
		MaxUgcSubmissionsPerWeek:    10,
		MaxReferralAttemptsPerMonth: 20,

		MinimumTrustScoreRequired: 60,
		ProofStrictness:           models.ProofStrictnessLow,
		RequiresManualApproval:    false,

		CanAccessReferralMissions:  true,
		CanAccessHighValueMissions: true,
		CanAccessUgcMissions:       true,
		CanAccessReviewMissions:    true,

		MinCooldownBetweenMissionsMinutes: 30,
		CanBypassBasicCooldowns:           true,
		RewardMultiplier:                  1.35,
	},
	{
		Level:     models.LevelLegend,
		Name:      "Legend",
		MinPoints: 15000,

		MaxActiveMissionsPerDay:     30,
		MaxReviewMissionsPerDay:     5,
		MaxCheckInMissionsPerDay:    10,
		MaxHighValueMissionsPerWeek: 10,
		MaxUgcSubmissionsPerWeek:    15,
		MaxReferralAttemptsPerMonth: 30,

		MinimumTrustScoreRequired: 70,
		ProofStrictness:           models.ProofStrictnessLow,
		RequiresManualApproval:    false,

		CanAccessReferralMissions:  true,
		CanAccessHighValueMissions: true,
		CanAccessUgcMissions:       true,
		CanAccessReviewMissions:    true,

		MinCooldownBetweenMissionsMinutes: 15,
		CanBypassBasicCooldowns:           true,
		RewardMultiplier:                  1.5,
	},
}

// CalculateUserLevel maps a point total to a level. Thresholds are
// inclusive: exactly 100 points is already Explorer.
func CalculateUserLevel(totalPoints int) models.UserLevel {
	level := levelTable[0].Level
	for _, config := range levelTable {
		if totalPoints >= config.MinPoints {
			level = config.Level
		}
	}
	return level
}

func GetUserLevelConfig(level models.UserLevel) models.UserLevelConfig {
	for _, config := range levelTable {
		if config.Level == level {
			return config
		}
	}
	// Out-of-range levels clamp to the floor of the ladder.
	return levelTable[0]
}

// GetNextLevelRequirements reports the distance to the next row of the
// ladder. The next level is resolved by position in the table, not by
// incrementing the level number.
func GetNextLevelRequirements(level models.UserLevel, totalPoints int) models.NextLevelProgress {
	currentIndex := 0
	for i, config := range levelTable {
		if config.Level == level {
			currentIndex = i
			break
		}
	}

	if currentIndex == len(levelTable)-1 {
		return models.NextLevelProgress{NextLevel: nil, PointsNeeded: 0, PercentComplete: 100}
	}

	current := levelTable[currentIndex]
	next := levelTable[currentIndex+1]

	pointsNeeded := next.MinPoints - totalPoints
	if pointsNeeded < 0 {
		pointsNeeded = 0
	}

	span := next.MinPoints - current.MinPoints
	percent := (totalPoints - current.MinPoints) * 100 / span
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	nextLevel := next.Level
	return models.NextLevelProgress{
		NextLevel:       &nextLevel,
		PointsNeeded:    pointsNeeded,
		PercentComplete: percent,
	}
}
