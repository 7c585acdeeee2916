package engine

import (
	"fmt"
	"time"

	"fluzio/internal/catalog"
)

// CapacityCheck is the result of comparing live participant counts against
// the catalog caps. SpaceRemaining is nil when the mission is unbounded.
type CapacityCheck struct {
	CanAcceptMore  bool   `json:"can_accept_more"`
	Reason         string `json:"reason,omitempty"`
	SpaceRemaining *int   `json:"space_remaining,omitempty"`
}

// EligibilityCheck is the per-user completion/cooldown verdict.
type EligibilityCheck struct {
	CanParticipate bool       `json:"can_participate"`
	Reason         string     `json:"reason,omitempty"`
	CooldownEnds   *time.Time `json:"cooldown_ends,omitempty"`
}

// HasMissionReachedCap compares live counts against the catalog's total and
// daily caps. Counting itself is persistence-layer work; this only decides.
func HasMissionReachedCap(missionID string, currentTotal int, todayParticipants int) CapacityCheck {
	template, ok := catalog.GetMissionByID(missionID)
	if !ok {
		return CapacityCheck{CanAcceptMore: false, Reason: "unknown mission"}
	}

	if template.MaxDailyParticipants != nil && todayParticipants >= *template.MaxDailyParticipants {
		zero := 0
		return CapacityCheck{
			CanAcceptMore:  false,
			Reason:         fmt.Sprintf("daily cap of %d participants reached", *template.MaxDailyParticipants),
			SpaceRemaining: &zero,
		}
	}

	if template.MaxTotalParticipants == nil {
		return CapacityCheck{CanAcceptMore: true}
	}

	remaining := *template.MaxTotalParticipants - currentTotal
	if remaining <= 0 {
		zero := 0
		return CapacityCheck{
			CanAcceptMore:  false,
			Reason:         fmt.Sprintf("total cap of %d participants reached", *template.MaxTotalParticipants),
			SpaceRemaining: &zero,
		}
	}

	return CapacityCheck{CanAcceptMore: true, SpaceRemaining: &remaining}
}

// ValidateUserCanParticipate checks the per-mission completion allowance and
// the per-user cooldown window. now is explicit so identical inputs always
// produce identical results.
func ValidateUserCanParticipate(missionID string, userCompletionCount int, lastCompletionAt *time.Time, now time.Time) EligibilityCheck {
	template, ok := catalog.GetMissionByID(missionID)
	if !ok {
		return EligibilityCheck{CanParticipate: false, Reason: "unknown mission"}
	}

	if template.MaxCompletionsPerUser > 0 && userCompletionCount >= template.MaxCompletionsPerUser {
		return EligibilityCheck{
			CanParticipate: false,
			Reason:         fmt.Sprintf("completion allowance of %d exhausted", template.MaxCompletionsPerUser),
		}
	}

	if lastCompletionAt != nil && template.Cooldown.PerUserHours > 0 {
		cooldownEnds := lastCompletionAt.Add(time.Duration(template.Cooldown.PerUserHours) * time.Hour)
		if now.Before(cooldownEnds) {
			return EligibilityCheck{
				CanParticipate: false,
				Reason:         fmt.Sprintf("cooldown of %dh still running", template.Cooldown.PerUserHours),
				CooldownEnds:   &cooldownEnds,
			}
		}
	}

	return EligibilityCheck{CanParticipate: true}
}
