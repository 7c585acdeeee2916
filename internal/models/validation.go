package models

import "time"

type ValidationCode string

// Closed enumeration. UI copy and automated checks key off these codes, not
// the message text.
const (
	CodeMissionNotAvailable ValidationCode = "MISSION_NOT_AVAILABLE"
	CodeInvalidProofMethod  ValidationCode = "INVALID_PROOF_METHOD"
	CodeRewardTooLow        ValidationCode = "REWARD_TOO_LOW"
	CodeRewardTooHigh       ValidationCode = "REWARD_TOO_HIGH"
	CodeTrustScoreTooLow    ValidationCode = "TRUST_SCORE_TOO_LOW"
	CodeLevelTooLowReferral ValidationCode = "LEVEL_TOO_LOW_REFERRAL"
	CodeLevelTooLowUgc      ValidationCode = "LEVEL_TOO_LOW_UGC"
	CodeLevelTooLowReview   ValidationCode = "LEVEL_TOO_LOW_REVIEW"
	CodeMissionFull         ValidationCode = "MISSION_FULL"
	CodeUserLimitReached    ValidationCode = "USER_LIMIT_REACHED"

	// Warning-only codes.
	CodeParticipantCapTooHigh  ValidationCode = "PARTICIPANT_CAP_TOO_HIGH"
	CodeUpgradeRecommended     ValidationCode = "UPGRADE_RECOMMENDED"
	CodeHighBudget             ValidationCode = "HIGH_BUDGET"
	CodeAlmostFull             ValidationCode = "ALMOST_FULL"
	CodeRequiresManualApproval ValidationCode = "REQUIRES_MANUAL_APPROVAL"
	CodeSuggestedProofMethods  ValidationCode = "SUGGESTED_PROOF_METHODS"
)

type ValidationError struct {
	Code    ValidationCode `json:"code"`
	Message string         `json:"message"`
	Field   string         `json:"field,omitempty"`
	// Structured context so the UI can build its own copy.
	RequiredValue any `json:"required_value,omitempty"`
	CurrentValue  any `json:"current_value,omitempty"`
	// CooldownEnds is set on USER_LIMIT_REACHED when the block expires.
	CooldownEnds *time.Time `json:"cooldown_ends,omitempty"`
}

type ValidationWarning struct {
	Code    ValidationCode `json:"code"`
	Message string         `json:"message"`
}

// ValidationResult is built per call and never persisted.
// IsValid holds iff Errors is empty; warnings never block.
type ValidationResult struct {
	IsValid  bool                `json:"is_valid"`
	Errors   []ValidationError   `json:"errors"`
	Warnings []ValidationWarning `json:"warnings"`
}

func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid:  true,
		Errors:   []ValidationError{},
		Warnings: []ValidationWarning{},
	}
}

func (r *ValidationResult) AddError(err ValidationError) {
	r.Errors = append(r.Errors, err)
	r.IsValid = false
}

func (r *ValidationResult) AddWarning(code ValidationCode, message string) {
	r.Warnings = append(r.Warnings, ValidationWarning{Code: code, Message: message})
}

func (r *ValidationResult) HasError(code ValidationCode) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}

func (r *ValidationResult) HasWarning(code ValidationCode) bool {
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
