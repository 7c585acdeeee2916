package catalog

import "fluzio/internal/models"

var missionClassification = map[string]models.MissionType{
	MissionGoogleReview:      models.MissionTypeReview,
	MissionTripadvisorReview: models.MissionTypeReview,

	MissionVisitCheckin: models.MissionTypeCheckIn,

	MissionFirstPurchase:       models.MissionTypeHighValue,
	MissionRepeatPurchase:      models.MissionTypeHighValue,
	MissionReferralPurchase:    models.MissionTypeHighValue,
	MissionConsultationBooking: models.MissionTypeHighValue,

	MissionInstagramPost:   models.MissionTypeUGC,
	MissionInstagramStory:  models.MissionTypeUGC,
	MissionTiktokVideo:     models.MissionTypeUGC,
	MissionPhotoAtLocation: models.MissionTypeUGC,

	MissionBringAFriend: models.MissionTypeReferral,
}

// ClassifyMissionType is the one deliberately fail-open lookup in this
// package: an id missing from the map classifies as STANDARD so a freshly
// added mission stays usable while its classification is back-filled. Every
// other lookup here fails closed.
func ClassifyMissionType(missionID string) models.MissionType {
	if missionType, ok := missionClassification[missionID]; ok {
		return missionType
	}
	return models.MissionTypeStandard
}
