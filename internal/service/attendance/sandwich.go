package attendance

import (
	"fmt"

	"github.com/crestfin/crm-backend-go/internal/domain/attendance"
)

// SandwichDecision says whether a Sunday loses its holiday credit.
type SandwichDecision struct {
	Penalize bool
	Reason   string
}

// EvaluateSundaySandwich decides the weekend penalty for one Sunday.
// The decision is pure; the caller writes the override and sets the
// applied guard. Saturday is checked before Monday, so when both
// qualify the reason cites Saturday.
func EvaluateSundaySandwich(week attendance.WeekSummary, policy attendance.Policy) SandwichDecision {
	if !policy.EnableSundaySandwichRule {
		return SandwichDecision{}
	}

	if week.PenaltyApplied {
		return SandwichDecision{}
	}

	if sandwichTrigger(week.SaturdayStatus) {
		return SandwichDecision{
			Penalize: true,
			Reason:   fmt.Sprintf("Saturday was %s", week.SaturdayStatus),
		}
	}

	if sandwichTrigger(week.MondayStatus) {
		return SandwichDecision{
			Penalize: true,
			Reason:   fmt.Sprintf("Monday was %s", week.MondayStatus),
		}
	}

	if week.WorkingDays < policy.MinimumWorkingDaysForSunday {
		return SandwichDecision{
			Penalize: true,
			Reason: fmt.Sprintf("only %d working days in the week, minimum is %d",
				week.WorkingDays, policy.MinimumWorkingDaysForSunday),
		}
	}

	return SandwichDecision{}
}

func sandwichTrigger(s attendance.DayStatus) bool {
	return s == attendance.StatusAbsconding || s == attendance.StatusPendingLeave
}
