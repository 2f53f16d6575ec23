package attendance

import (
	"github.com/crestfin/crm-backend-go/internal/domain/attendance"
	"github.com/crestfin/crm-backend-go/internal/pkg/clock"
)

// EvaluateGrace decides whether a punch-in falls inside the allowed
// grace window. It is pure: the monthly usage counter is an input,
// and incrementing it on a granted grace is the caller's job, done
// exactly once inside the punch-in transaction.
func EvaluateGrace(punchIn string, policy attendance.Policy, graceUsedThisMonth int) attendance.GraceDecision {
	if punchIn == "" || policy.ReportingDeadline == "" {
		return attendance.GraceDecision{}
	}

	punchMins := clock.ParseMinutes(punchIn)
	deadline := clock.ParseMinutes(policy.ReportingDeadline)
	graceEnd := deadline + policy.GracePeriodMinutes

	minutesLate := punchMins - deadline
	if minutesLate < 0 {
		minutesLate = 0
	}

	isLate := punchMins > deadline
	withinWindow := punchMins <= graceEnd
	hasQuota := graceUsedThisMonth < policy.GraceUsageLimit

	return attendance.GraceDecision{
		WithinGrace: isLate && withinWindow && hasQuota,
		MinutesLate: minutesLate,
	}
}
