package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayStatus is the closed set of daily attendance status codes.
type DayStatus string

const (
	StatusPresent      DayStatus = "P"
	StatusLate         DayStatus = "L"
	StatusLeave        DayStatus = "LV"
	StatusPendingLeave DayStatus = "PL"
	StatusHoliday      DayStatus = "H"
	StatusHalfDay      DayStatus = "HD"
	StatusAbsconding   DayStatus = "AB"
	StatusIssue        DayStatus = "ISS"
	StatusZero         DayStatus = "Z"

	// StatusNotMarked is the zero value for days with no record yet.
	StatusNotMarked DayStatus = ""
)

// ParseDayStatus canonicalizes a raw status string. The long forms
// "ISSUE" and "ZERO" are legacy synonyms still accepted on input.
// Unknown values map to StatusNotMarked.
func ParseDayStatus(s string) DayStatus {
	switch DayStatus(s) {
	case StatusPresent, StatusLate, StatusLeave, StatusPendingLeave,
		StatusHoliday, StatusHalfDay, StatusAbsconding, StatusIssue, StatusZero:
		return DayStatus(s)
	}
	switch s {
	case "ISSUE":
		return StatusIssue
	case "ZERO":
		return StatusZero
	}
	return StatusNotMarked
}

// Day-count values persisted alongside a status. No other fractions
// are ever produced.
var (
	CountFull       = decimal.NewFromInt(1)
	CountHalf       = decimal.New(5, -1)
	CountZero       = decimal.Zero
	CountAbsconding = decimal.NewFromInt(-1)
)

// LeaveState is the leave situation of one employee-day as seen by the
// status resolver. The leave domain's request lifecycle collapses into
// this four-valued input.
type LeaveState string

const (
	LeaveNone       LeaveState = "none"
	LeaveApproved   LeaveState = "approved"
	LeavePending    LeaveState = "pending"
	LeaveAbsconding LeaveState = "absconding"
)

// DayFacts are the raw inputs for resolving one employee-day.
// Reconstructed fresh from storage per evaluation.
type DayFacts struct {
	PunchIn            string // "HH:MM", empty when absent
	PunchOut           string
	WorkingHours       float64
	IsHoliday          bool
	IsWeekend          bool
	LeaveState         LeaveState
	GraceUsedThisMonth int
}

// StatusResult is the resolver output for one employee-day. Reason is
// diagnostic only.
type StatusResult struct {
	Status DayStatus
	Count  decimal.Decimal
	Reason string
}

// GraceDecision is the grace-period evaluation for a single punch-in.
type GraceDecision struct {
	WithinGrace bool
	MinutesLate int
}

// WeekSummary feeds the Sunday sandwich rule. PenaltyApplied guards
// against applying the same penalty twice.
type WeekSummary struct {
	SaturdayStatus DayStatus
	MondayStatus   DayStatus
	WorkingDays    int
	PenaltyApplied bool
}

// DayEntry pairs one day's resolved status with its punch-in late flag
// for monthly aggregation.
type DayEntry struct {
	Day    int
	Result StatusResult
	Late   bool
}

// MonthlyStats summarizes one employee's calendar month.
type MonthlyStats struct {
	Present      int
	Late         int
	HalfDay      int
	Leave        int
	PendingLeave int
	Holiday      int
	Absconding   int
	Issue        int
	Zero         int
	NotMarked    int

	WorkingDays          int
	AttendancePercentage decimal.Decimal
}

// GraceUsage is the per-employee, per-month grace counter. It is only
// read and written inside a transaction keyed by (employee_id, year, month).
type GraceUsage struct {
	EmployeeID string
	Year       int
	Month      int
	Used       int
}

// Attendance is one employee-day record.
type Attendance struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time

	PunchIn    *string // wall-clock "HH:MM" in the branch timezone
	PunchOut   *string
	PunchInAt  *time.Time // absolute instants, stored UTC
	PunchOutAt *time.Time

	WorkingHours *float64
	Status       DayStatus
	Count        decimal.Decimal
	Reason       *string

	IsLate       bool
	LateMinutes  *int
	GraceApplied bool

	SundayPenaltyApplied bool

	PunchInLatitude   *float64
	PunchInLongitude  *float64
	PunchOutLatitude  *float64
	PunchOutLongitude *float64
	PunchInProofURL   *string
	PunchOutProofURL  *string

	FaceConfidence *float64
	FaceDistance   *float64

	IsManualOverride bool
	OverrideBy       *string
	OldStatus        *DayStatus
	Comments         *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}
