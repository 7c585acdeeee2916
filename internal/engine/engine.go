// Package engine is the mission validation core: pure, synchronous decision
// functions from catalog configuration and caller-supplied live counts to
// structured ValidationResults. Nothing in here reads a clock, touches
// storage or keeps state, so every function is safe to call concurrently.
package engine

import (
	"fmt"
	"time"

	"fluzio/internal/catalog"
	"fluzio/internal/models"
)

const (
	// Reward bounds for a single mission activation.
	MinRewardPoints = 25
	MaxRewardPoints = 500

	// Estimated budget above which activation gets a HIGH_BUDGET warning.
	HighBudgetThreshold = 50000
	// Participant count assumed for budget estimation when the catalog cap
	// is unbounded.
	DefaultBudgetParticipants = 1000

	// Remaining slots at or below which participants see ALMOST_FULL.
	AlmostFullThreshold = 10

	// Business level below which high-value missions trigger the
	// UPGRADE_RECOMMENDED nudge.
	MinBusinessLevelForHighValue = 2
)

type ActivationInput struct {
	MissionID       string
	BusinessType    models.BusinessType
	BusinessLevel   int
	ProofMethod     models.ProofMethod
	RewardPoints    int
	MaxParticipants *int
}

type ParticipationInput struct {
	MissionID       string
	UserID          int64
	UserTotalPoints int
	UserTrustScore  int
	BusinessType    models.BusinessType
	ProofMethod     models.ProofMethod

	UserCompletionCount      int
	LastCompletionAt         *time.Time
	CurrentTotalParticipants int
	TodayParticipants        int

	// Activity carries the rolling-window counts for the level ceilings.
	// The caller must supply real counts; leaving it nil disables a core
	// anti-abuse control and is only acceptable in previews.
	Activity *models.ActivityCounts

	Now time.Time
}

// ValidateMissionActivation runs the business-side pipeline. Errors
// accumulate; only an unresolvable (mission, business type) pair
// short-circuits, since no later check is meaningful without it.
func ValidateMissionActivation(in ActivationInput) *models.ValidationResult {
	result := models.NewValidationResult()

	template, ok := catalog.GetMissionByID(in.MissionID)
	if !ok {
		result.AddError(models.ValidationError{
			Code:    models.CodeMissionNotAvailable,
			Message: fmt.Sprintf("mission %s does not exist in catalog %s", in.MissionID, catalog.Version),
			Field:   "mission_id",
		})
		return result
	}

	config := catalog.GetProofMethodConfig(in.MissionID, in.BusinessType)
	if config == nil {
		result.AddError(models.ValidationError{
			Code:    models.CodeMissionNotAvailable,
			Message: fmt.Sprintf("mission %s is not offered to %s businesses", in.MissionID, in.BusinessType),
			Field:   "business_type",
		})
		return result
	}

	checkProofMethod(result, in.MissionID, in.BusinessType, in.ProofMethod, config)

	if in.MaxParticipants != nil && template.MaxTotalParticipants != nil && *in.MaxParticipants > *template.MaxTotalParticipants {
		result.AddWarning(models.CodeParticipantCapTooHigh,
			fmt.Sprintf("custom cap %d exceeds the recommended %d for this mission", *in.MaxParticipants, *template.MaxTotalParticipants))
	}

	if in.RewardPoints < MinRewardPoints {
		result.AddError(models.ValidationError{
			Code:          models.CodeRewardTooLow,
			Message:       fmt.Sprintf("%d points is too low to motivate participation", in.RewardPoints),
			Field:         "reward_points",
			RequiredValue: MinRewardPoints,
			CurrentValue:  in.RewardPoints,
		})
	}
	if in.RewardPoints > MaxRewardPoints {
		result.AddError(models.ValidationError{
			Code:          models.CodeRewardTooHigh,
			Message:       fmt.Sprintf("%d points must be split across multiple missions", in.RewardPoints),
			Field:         "reward_points",
			RequiredValue: MaxRewardPoints,
			CurrentValue:  in.RewardPoints,
		})
	}

	missionType := catalog.ClassifyMissionType(in.MissionID)
	if (missionType == models.MissionTypeHighValue || missionType == models.MissionTypeReferral) && in.BusinessLevel < MinBusinessLevelForHighValue {
		result.AddWarning(models.CodeUpgradeRecommended,
			"high-value missions perform better once your business profile reaches level 2")
	}

	budgetParticipants := DefaultBudgetParticipants
	if in.MaxParticipants != nil {
		budgetParticipants = *in.MaxParticipants
	} else if template.MaxTotalParticipants != nil {
		budgetParticipants = *template.MaxTotalParticipants
	}
	if budgetParticipants*in.RewardPoints > HighBudgetThreshold {
		result.AddWarning(models.CodeHighBudget,
			fmt.Sprintf("estimated budget %d points exceeds %d", budgetParticipants*in.RewardPoints, HighBudgetThreshold))
	}

	return result
}

// ValidateMissionParticipation runs the user-side pipeline. Closed
// capability gates (referral/ugc/review) short-circuit; everything else
// accumulates so the UI can show all problems at once.
func ValidateMissionParticipation(in ParticipationInput) *models.ValidationResult {
	result := models.NewValidationResult()

	userLevel := catalog.CalculateUserLevel(in.UserTotalPoints)
	levelConfig := catalog.GetUserLevelConfig(userLevel)
	missionType := catalog.ClassifyMissionType(in.MissionID)

	// Blanket trust floor, independent of mission type.
	if in.UserTrustScore < levelConfig.MinimumTrustScoreRequired {
		result.AddError(models.ValidationError{
			Code:          models.CodeTrustScoreTooLow,
			Message:       fmt.Sprintf("trust score %d is below the %s floor", in.UserTrustScore, levelConfig.Name),
			Field:         "trust_score",
			RequiredValue: levelConfig.MinimumTrustScoreRequired,
			CurrentValue:  in.UserTrustScore,
		})
	}

	switch missionType {
	case models.MissionTypeReferral:
		if !levelConfig.CanAccessReferralMissions {
			result.AddError(models.ValidationError{
				Code:          models.CodeLevelTooLowReferral,
				Message:       "referral missions unlock at Contributor (500 points)",
				Field:         "level",
				RequiredValue: int(models.LevelContributor),
				CurrentValue:  int(userLevel),
			})
			return result
		}
	case models.MissionTypeUGC:
		if !levelConfig.CanAccessUgcMissions {
			result.AddError(models.ValidationError{
				Code:          models.CodeLevelTooLowUgc,
				Message:       "content missions unlock at Explorer (100 points)",
				Field:         "level",
				RequiredValue: int(models.LevelExplorer),
				CurrentValue:  int(userLevel),
			})
			return result
		}
	case models.MissionTypeReview:
		if !levelConfig.CanAccessReviewMissions {
			result.AddError(models.ValidationError{
				Code:          models.CodeLevelTooLowReview,
				Message:       "review missions unlock at Explorer (100 points)",
				Field:         "level",
				RequiredValue: int(models.LevelExplorer),
				CurrentValue:  int(userLevel),
			})
			return result
		}
	case models.MissionTypeHighValue:
		// Not a closed gate: the submission is routed to manual review
		// instead of being blocked.
		if !levelConfig.CanAccessHighValueMissions && levelConfig.RequiresManualApproval {
			result.AddWarning(models.CodeRequiresManualApproval,
				"high-value submissions from your level are reviewed manually")
		}
	}

	config := catalog.GetProofMethodConfig(in.MissionID, in.BusinessType)
	if config == nil {
		result.AddError(models.ValidationError{
			Code:    models.CodeMissionNotAvailable,
			Message: fmt.Sprintf("mission %s is not offered to %s businesses", in.MissionID, in.BusinessType),
			Field:   "business_type",
		})
		return result
	}

	checkProofMethod(result, in.MissionID, in.BusinessType, in.ProofMethod, config)

	capacity := HasMissionReachedCap(in.MissionID, in.CurrentTotalParticipants, in.TodayParticipants)
	if !capacity.CanAcceptMore {
		result.AddError(models.ValidationError{
			Code:         models.CodeMissionFull,
			Message:      capacity.Reason,
			Field:        "participants",
			CurrentValue: in.CurrentTotalParticipants,
		})
	} else if capacity.SpaceRemaining != nil && *capacity.SpaceRemaining <= AlmostFullThreshold {
		result.AddWarning(models.CodeAlmostFull,
			fmt.Sprintf("only %d slots remaining", *capacity.SpaceRemaining))
	}

	eligibility := ValidateUserCanParticipate(in.MissionID, in.UserCompletionCount, in.LastCompletionAt, in.Now)
	if !eligibility.CanParticipate {
		result.AddError(models.ValidationError{
			Code:         models.CodeUserLimitReached,
			Message:      eligibility.Reason,
			Field:        "completions",
			CurrentValue: in.UserCompletionCount,
			CooldownEnds: eligibility.CooldownEnds,
		})
	}

	if in.Activity != nil {
		checkActivityCeilings(result, levelConfig, missionType, *in.Activity)
	}

	return result
}

// ValidateMissionCompletely runs the business-side pipeline first and only
// evaluates the user side when the activation itself is sound; a
// misconfigured mission should never reach a user. Activation warnings are
// merged into the participation result.
func ValidateMissionCompletely(activation ActivationInput, participation ParticipationInput) *models.ValidationResult {
	activationResult := ValidateMissionActivation(activation)
	if !activationResult.IsValid {
		return activationResult
	}

	result := ValidateMissionParticipation(participation)
	result.Warnings = append(append([]models.ValidationWarning{}, activationResult.Warnings...), result.Warnings...)
	return result
}

// CanUserStartMission is the non-accumulating shortcut for UI
// enable/disable decisions: first failing rule wins.
func CanUserStartMission(in ParticipationInput) (bool, string) {
	userLevel := catalog.CalculateUserLevel(in.UserTotalPoints)
	levelConfig := catalog.GetUserLevelConfig(userLevel)
	missionType := catalog.ClassifyMissionType(in.MissionID)

	if in.UserTrustScore < levelConfig.MinimumTrustScoreRequired {
		return false, "trust score too low"
	}

	switch missionType {
	case models.MissionTypeReferral:
		if !levelConfig.CanAccessReferralMissions {
			return false, "referral missions locked for your level"
		}
	case models.MissionTypeUGC:
		if !levelConfig.CanAccessUgcMissions {
			return false, "content missions locked for your level"
		}
	case models.MissionTypeReview:
		if !levelConfig.CanAccessReviewMissions {
			return false, "review missions locked for your level"
		}
	}

	if !catalog.IsProofMethodAllowed(in.MissionID, in.BusinessType, in.ProofMethod) {
		return false, "mission not available with this proof method"
	}

	if capacity := HasMissionReachedCap(in.MissionID, in.CurrentTotalParticipants, in.TodayParticipants); !capacity.CanAcceptMore {
		return false, capacity.Reason
	}

	if eligibility := ValidateUserCanParticipate(in.MissionID, in.UserCompletionCount, in.LastCompletionAt, in.Now); !eligibility.CanParticipate {
		return false, eligibility.Reason
	}

	if in.Activity != nil {
		ceilings := models.NewValidationResult()
		checkActivityCeilings(ceilings, levelConfig, missionType, *in.Activity)
		if !ceilings.IsValid {
			return false, ceilings.Errors[0].Message
		}
	}

	return true, ""
}

// CanBusinessCreateMission is the activation-side shortcut.
func CanBusinessCreateMission(missionID string, businessType models.BusinessType, proofMethod models.ProofMethod, rewardPoints int) (bool, string) {
	if catalog.GetProofMethodConfig(missionID, businessType) == nil {
		return false, "mission not available for your business type"
	}
	if isMoneyMission(missionID) && proofMethod == models.ProofMethodScreenshotAI {
		return false, "screenshot proof is not accepted for purchase missions"
	}
	if !catalog.IsProofMethodAllowed(missionID, businessType, proofMethod) {
		return false, "proof method not allowed for this mission"
	}
	if rewardPoints < MinRewardPoints {
		return false, "reward too low"
	}
	if rewardPoints > MaxRewardPoints {
		return false, "reward too high"
	}
	return true, ""
}

// Money-moving missions never accept screenshot proof, whatever the data
// tables say. The matrix forbids it too; this is the standing backstop.
func isMoneyMission(missionID string) bool {
	switch missionID {
	case catalog.MissionFirstPurchase, catalog.MissionRepeatPurchase, catalog.MissionReferralPurchase:
		return true
	}
	return false
}

func checkProofMethod(result *models.ValidationResult, missionID string, businessType models.BusinessType, method models.ProofMethod, config *models.ProofMethodConfig) {
	allowed := catalog.IsProofMethodAllowed(missionID, businessType, method)
	if allowed && isMoneyMission(missionID) && method == models.ProofMethodScreenshotAI {
		allowed = false
	}
	if allowed {
		return
	}

	message := fmt.Sprintf("proof method %s is not accepted for mission %s", method, missionID)
	if reason := config.ForbiddenReason(method); reason != "" {
		message = reason
	} else if isMoneyMission(missionID) && method == models.ProofMethodScreenshotAI {
		message = "screenshot proof is not accepted for purchase missions"
	}

	result.AddError(models.ValidationError{
		Code:         models.CodeInvalidProofMethod,
		Message:      message,
		Field:        "proof_method",
		CurrentValue: string(method),
	})

	if accepted := config.AcceptedMethods(); len(accepted) > 0 {
		result.AddWarning(models.CodeSuggestedProofMethods,
			fmt.Sprintf("accepted proof methods: %s", joinMethods(accepted)))
	}
}

func checkActivityCeilings(result *models.ValidationResult, levelConfig models.UserLevelConfig, missionType models.MissionType, activity models.ActivityCounts) {
	addLimit := func(field string, limit, current int) {
		result.AddError(models.ValidationError{
			Code:          models.CodeUserLimitReached,
			Message:       fmt.Sprintf("%s limit of %d reached for %s", field, limit, levelConfig.Name),
			Field:         field,
			RequiredValue: limit,
			CurrentValue:  current,
		})
	}

	if activity.MissionsStartedToday >= levelConfig.MaxActiveMissionsPerDay {
		addLimit("missions_per_day", levelConfig.MaxActiveMissionsPerDay, activity.MissionsStartedToday)
	}

	// A per-type ceiling of 0 means the capability gates handle access for
	// that level; it is not an instant limit.
	switch missionType {
	case models.MissionTypeReview:
		if levelConfig.MaxReviewMissionsPerDay > 0 && activity.ReviewsToday >= levelConfig.MaxReviewMissionsPerDay {
			addLimit("reviews_per_day", levelConfig.MaxReviewMissionsPerDay, activity.ReviewsToday)
		}
	case models.MissionTypeCheckIn:
		if levelConfig.MaxCheckInMissionsPerDay > 0 && activity.CheckInsToday >= levelConfig.MaxCheckInMissionsPerDay {
			addLimit("check_ins_per_day", levelConfig.MaxCheckInMissionsPerDay, activity.CheckInsToday)
		}
	case models.MissionTypeHighValue:
		if levelConfig.MaxHighValueMissionsPerWeek > 0 && activity.HighValueThisWeek >= levelConfig.MaxHighValueMissionsPerWeek {
			addLimit("high_value_per_week", levelConfig.MaxHighValueMissionsPerWeek, activity.HighValueThisWeek)
		}
	case models.MissionTypeUGC:
		if levelConfig.MaxUgcSubmissionsPerWeek > 0 && activity.UgcThisWeek >= levelConfig.MaxUgcSubmissionsPerWeek {
			addLimit("ugc_per_week", levelConfig.MaxUgcSubmissionsPerWeek, activity.UgcThisWeek)
		}
	case models.MissionTypeReferral:
		if levelConfig.MaxReferralAttemptsPerMonth > 0 && activity.ReferralsThisMonth >= levelConfig.MaxReferralAttemptsPerMonth {
			addLimit("referrals_per_month", levelConfig.MaxReferralAttemptsPerMonth, activity.ReferralsThisMonth)
		}
	}
}

func joinMethods(methods []models.ProofMethod) string {
	out := ""
	for i, m := range methods {
		if i > 0 {
			out += ", "
		}
		out += string(m)
	}
	return out
}
