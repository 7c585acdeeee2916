package catalog

import "fluzio/internal/models"

// AvailabilityAdjustment is what the availability map layers on top of the
// proof matrix for one (mission, business type) pair: extra verification
// steps and a possible confirmation requirement. Presence of an entry is
// what makes the mission offerable at all for that type.
type AvailabilityAdjustment struct {
	ExtraVerification           []string
	RequireBusinessConfirmation bool
}

var offeredEverywhere = map[models.BusinessType]AvailabilityAdjustment{
	models.BusinessTypePhysical: {},
	models.BusinessTypeOnline:   {},
	models.BusinessTypeHybrid:   {},
}

var missionAvailability = map[string]map[models.BusinessType]AvailabilityAdjustment{
	MissionGoogleReview: offeredEverywhere,
	MissionTripadvisorReview: {
		models.BusinessTypePhysical: {},
		models.BusinessTypeHybrid:   {},
	},
	MissionVisitCheckin: {
		models.BusinessTypePhysical: {ExtraVerification: []string{"rotating_qr_code"}},
		models.BusinessTypeHybrid:   {ExtraVerification: []string{"rotating_qr_code", "opening_hours_check"}},
	},
	MissionFirstPurchase: {
		models.BusinessTypePhysical: {ExtraVerification: []string{"staff_code_rotation"}},
		models.BusinessTypeOnline:   {ExtraVerification: []string{"order_lookup"}},
		models.BusinessTypeHybrid:   {ExtraVerification: []string{"order_lookup"}},
	},
	MissionRepeatPurchase: {
		models.BusinessTypePhysical: {ExtraVerification: []string{"staff_code_rotation"}},
		models.BusinessTypeOnline:   {ExtraVerification: []string{"order_lookup"}},
		models.BusinessTypeHybrid:   {ExtraVerification: []string{"order_lookup"}},
	},
	MissionBringAFriend: offeredEverywhere,
	MissionReferralPurchase: {
		models.BusinessTypePhysical: {ExtraVerification: []string{"referred_account_age_check"}},
		models.BusinessTypeOnline:   {ExtraVerification: []string{"referred_account_age_check", "order_lookup"}},
		models.BusinessTypeHybrid:   {ExtraVerification: []string{"referred_account_age_check", "order_lookup"}},
	},
	MissionInstagramPost: offeredEverywhere,
	MissionInstagramStory: {
		models.BusinessTypePhysical: {RequireBusinessConfirmation: true},
		models.BusinessTypeOnline:   {RequireBusinessConfirmation: true},
		models.BusinessTypeHybrid:   {RequireBusinessConfirmation: true},
	},
	MissionTiktokVideo: offeredEverywhere,
	MissionPhotoAtLocation: {
		models.BusinessTypePhysical: {ExtraVerification: []string{"gps_cross_check"}},
		models.BusinessTypeHybrid:   {ExtraVerification: []string{"gps_cross_check", "opening_hours_check"}},
	},
	MissionFollowSocial: offeredEverywhere,
	MissionNewsletterSignup: {
		models.BusinessTypeOnline: {ExtraVerification: []string{"double_opt_in"}},
		models.BusinessTypeHybrid: {ExtraVerification: []string{"double_opt_in"}},
	},
	MissionConsultationBooking: {
		models.BusinessTypePhysical: {RequireBusinessConfirmation: true},
		models.BusinessTypeOnline:   {RequireBusinessConfirmation: true},
		models.BusinessTypeHybrid:   {RequireBusinessConfirmation: true},
	},
}

// IsMissionAvailable reports whether the mission is offered to the business
// type at all.
func IsMissionAvailable(missionID string, businessType models.BusinessType) bool {
	_, ok := missionAvailability[missionID][businessType]
	return ok
}

// GetVerificationRequirements returns the availability map's extra checks
// for the pair, nil when the mission is unavailable or has none.
func GetVerificationRequirements(missionID string, businessType models.BusinessType) []string {
	adjustment, ok := missionAvailability[missionID][businessType]
	if !ok {
		return nil
	}
	return adjustment.ExtraVerification
}
