package attendance

import "github.com/shopspring/decimal"

// Policy carries the attendance rules active for a company. It is an
// immutable value injected into every evaluation; there is no global
// policy singleton.
type Policy struct {
	// ReportingDeadline is the wall-clock time ("HH:MM") after which a
	// punch-in counts as late.
	ReportingDeadline string

	FullDayWorkingHours        float64
	HalfDayMinimumWorkingHours float64

	GracePeriodMinutes int
	GraceUsageLimit    int // grace uses allowed per calendar month

	EnableSundaySandwichRule    bool
	MinimumWorkingDaysForSunday int

	// SundayPenaltyCount is the day-count written to a penalized
	// Sunday: 0 (loses holiday credit) or -1 (absconding-equivalent).
	SundayPenaltyCount decimal.Decimal

	PendingLeaveAutoConvertDays int
}

// DefaultPolicy returns the stock ruleset.
func DefaultPolicy() Policy {
	return Policy{
		ReportingDeadline:           "10:15",
		FullDayWorkingHours:         9.0,
		HalfDayMinimumWorkingHours:  5.0,
		GracePeriodMinutes:          30,
		GraceUsageLimit:             2,
		EnableSundaySandwichRule:    true,
		MinimumWorkingDaysForSunday: 5,
		SundayPenaltyCount:          decimal.Zero,
		PendingLeaveAutoConvertDays: 3,
	}
}
