package services

import (
	"testing"

	"fluzio/internal/catalog"
	"fluzio/internal/models"
)

// Both catalog query filters apply together: a need filter never surfaces
// templates the business type cannot run.
func TestGetMissionsByNeed_FiltersByBusinessType(t *testing.T) {
	service := &ServiceMission{}

	tests := []struct {
		name         string
		businessType models.BusinessType
		need         models.BusinessNeed
		expectIDs    []string
		excludeIDs   []string
	}{
		{
			name:         "Conversion_Physical_ExcludesNewsletter",
			businessType: models.BusinessTypePhysical,
			need:         models.BusinessNeedConversion,
			expectIDs:    []string{catalog.MissionFirstPurchase, catalog.MissionConsultationBooking},
			excludeIDs:   []string{catalog.MissionNewsletterSignup},
		},
		{
			name:         "Conversion_Online_IncludesNewsletter",
			businessType: models.BusinessTypeOnline,
			need:         models.BusinessNeedConversion,
			expectIDs:    []string{catalog.MissionFirstPurchase, catalog.MissionNewsletterSignup},
		},
		{
			name:         "Content_Online_ExcludesLocationPhoto",
			businessType: models.BusinessTypeOnline,
			need:         models.BusinessNeedContent,
			expectIDs:    []string{catalog.MissionInstagramPost},
			excludeIDs:   []string{catalog.MissionPhotoAtLocation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missions := service.GetMissionsByNeed(tt.businessType, tt.need)

			got := map[string]bool{}
			for _, template := range missions {
				got[template.ID] = true
				if template.BusinessNeed != tt.need {
					t.Errorf("%s does not match need %s", template.ID, tt.need)
				}
				if !template.AllowsBusinessType(tt.businessType) {
					t.Errorf("%s is not offered to %s businesses", template.ID, tt.businessType)
				}
			}

			for _, id := range tt.expectIDs {
				if !got[id] {
					t.Errorf("missing expected mission %s", id)
				}
			}
			for _, id := range tt.excludeIDs {
				if got[id] {
					t.Errorf("mission %s must be filtered out", id)
				}
			}
		})
	}
}
