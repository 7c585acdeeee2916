// Package catalog holds the locked configuration set the validation engine
// runs against: the mission catalog, the proof method matrix, the
// business-type availability map and the user level table. Everything here
// is immutable after process start.
package catalog

import (
	"fmt"

	"fluzio/internal/models"
)

const (
	// Version identifies the deployed configuration set as a unit.
	Version = "2.3.0"
	// MinCompatibleVersion is the oldest configuration the engine accepts.
	MinCompatibleVersion = "2.0.0"
)

var missionIndex = map[string]*models.MissionTemplate{}

func init() {
	for i := range missionCatalog {
		missionIndex[missionCatalog[i].ID] = &missionCatalog[i]
	}
}

// GetMissionByID returns the template for id, or ok=false for an unknown id.
// Callers turn the miss into a structured MISSION_NOT_AVAILABLE instead of
// panicking.
func GetMissionByID(id string) (*models.MissionTemplate, bool) {
	template, ok := missionIndex[id]
	return template, ok
}

func GetMissionsByBusinessType(businessType models.BusinessType) []models.MissionTemplate {
	var missions []models.MissionTemplate
	for _, template := range missionCatalog {
		if template.AllowsBusinessType(businessType) {
			missions = append(missions, template)
		}
	}
	return missions
}

func GetMissionsByNeed(need models.BusinessNeed) []models.MissionTemplate {
	var missions []models.MissionTemplate
	for _, template := range missionCatalog {
		if template.BusinessNeed == need {
			missions = append(missions, template)
		}
	}
	return missions
}

// ValidateCatalogInvariant checks that a business's active mission set keeps
// at least one CONVERSION mission compatible with its type. Re-run whenever
// the active set changes, not on reads.
func ValidateCatalogInvariant(businessType models.BusinessType, activeIDs []string) (bool, string) {
	for _, id := range activeIDs {
		template, ok := GetMissionByID(id)
		if !ok {
			continue
		}
		if template.BusinessNeed == models.BusinessNeedConversion && template.AllowsBusinessType(businessType) {
			return true, ""
		}
	}
	return false, fmt.Sprintf("active mission set must include at least one CONVERSION mission available to %s businesses", businessType)
}

// CheckConversionCoverage verifies the locked catalog itself offers every
// supported business type at least one CONVERSION mission with a resolvable
// proof configuration. Runs at startup next to CheckVersion; a catalog
// revision that breaks this never boots.
func CheckConversionCoverage() error {
	for _, businessType := range []models.BusinessType{models.BusinessTypePhysical, models.BusinessTypeOnline, models.BusinessTypeHybrid} {
		covered := false
		for _, template := range GetMissionsByNeed(models.BusinessNeedConversion) {
			if template.AllowsBusinessType(businessType) && GetProofMethodConfig(template.ID, businessType) != nil {
				covered = true
				break
			}
		}
		if !covered {
			return fmt.Errorf("catalog %s offers no CONVERSION mission to %s businesses", Version, businessType)
		}
	}
	return nil
}

// CheckVersion guards against running the engine on a configuration set
// older than it understands.
func CheckVersion() error {
	if compareSemver(Version, MinCompatibleVersion) < 0 {
		return fmt.Errorf("catalog version %s is older than minimum compatible %s", Version, MinCompatibleVersion)
	}
	return nil
}

func compareSemver(a, b string) int {
	var aMajor, aMinor, aPatch, bMajor, bMinor, bPatch int
	fmt.Sscanf(a, "%d.%d.%d", &aMajor, &aMinor, &aPatch)
	fmt.Sscanf(b, "%d.%d.%d", &bMajor, &bMinor, &bPatch)
	av := []int{aMajor, aMinor, aPatch}
	bv := []int{bMajor, bMinor, bPatch}
	for i := 0; i < 3; i++ {
		if av[i] != bv[i] {
			if av[i] < bv[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func intPtr(v int) *int { return &v }

func methodPtr(m models.ProofMethod) *models.ProofMethod { return &m }

func tierPtr(t models.SubscriptionTier) *models.SubscriptionTier { return &t }
