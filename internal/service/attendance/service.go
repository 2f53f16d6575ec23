package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crestfin/crm-backend-go/internal/domain/attendance"
	"github.com/crestfin/crm-backend-go/internal/domain/employee"
	"github.com/crestfin/crm-backend-go/internal/domain/holiday"
	"github.com/crestfin/crm-backend-go/internal/domain/leave"
	"github.com/crestfin/crm-backend-go/internal/pkg/clock"
	"github.com/crestfin/crm-backend-go/internal/pkg/database"
	"github.com/crestfin/crm-backend-go/internal/pkg/email"
	"github.com/crestfin/crm-backend-go/internal/pkg/facematch"
	"github.com/crestfin/crm-backend-go/internal/pkg/utils"
	"github.com/crestfin/crm-backend-go/internal/repository/postgresql"
	"github.com/crestfin/crm-backend-go/internal/service/file"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	attendance.GraceUsageRepository
	employee.EmployeeRepository
	holiday.HolidayRepository
	leave.LeaveRepository

	fileService  file.FileService
	matcher      facematch.Matcher
	emailService email.EmailService

	policy            attendance.Policy
	faceMinConfidence float64
	hrAlertEmail      string
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	graceRepo attendance.GraceUsageRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	leaveRepo leave.LeaveRepository,
	fileService file.FileService,
	matcher facematch.Matcher,
	emailService email.EmailService,
	policy attendance.Policy,
	faceMinConfidence float64,
	hrAlertEmail string,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		GraceUsageRepository: graceRepo,
		EmployeeRepository:   employeeRepo,
		HolidayRepository:    holidayRepo,
		LeaveRepository:      leaveRepo,
		fileService:          fileService,
		matcher:              matcher,
		emailService:         emailService,
		policy:               policy,
		faceMinConfidence:    faceMinConfidence,
		hrAlertEmail:         hrAlertEmail,
	}
}

func claimsFromContext(ctx context.Context) (employeeID, companyID string, isAdmin bool, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", false, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", false, fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok = claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", false, fmt.Errorf("employee_id claim is missing or invalid")
	}

	isAdmin, _ = claims["is_admin"].(bool)

	return employeeID, companyID, isAdmin, nil
}

func employeeLocation(emp employee.Employee) *time.Location {
	loc, err := time.LoadLocation(emp.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// dateOnly normalizes a local timestamp to its calendar date. Dates
// are stored timezone-less.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// workedHours spans midnight for overnight sessions.
func workedHours(punchIn, punchOut string) float64 {
	h := clock.HoursBetween(punchIn, punchOut)
	if h < 0 {
		h += 24
	}
	return h
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	nowUTC := time.Now().UTC()

	employeeID, companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	nowLocal := nowUTC.In(employeeLocation(emp))
	date := dateOnly(nowLocal)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil && existing.PunchIn != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyPunchedIn
	}

	distance := utils.CalculateHaversineDistance(
		req.Latitude, req.Longitude,
		emp.OfficeLatitude, emp.OfficeLongitude,
	)
	if distance > float64(emp.OfficeRadiusM) {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideAllowedRadius
	}

	match, err := a.matcher.Verify(ctx, employeeID, req.FaceDescriptor)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("face verification unavailable: %w", err)
	}
	if !match.Verified || match.Confidence < a.faceMinConfidence {
		return attendance.AttendanceResponse{}, attendance.ErrFaceNotRecognized
	}

	proofURL, err := a.fileService.UploadPunchProof(ctx, employeeID, date, req.File, req.FileHeader.Filename, "in")
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to upload punch proof: %w", err)
	}

	punchIn := nowLocal.Format("15:04")

	var created attendance.Attendance
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		usage, err := a.GraceUsageRepository.GetForUpdate(txCtx, employeeID, date.Year(), date.Month())
		if err != nil {
			return err
		}

		decision := EvaluateGrace(punchIn, a.policy, usage.Used)
		if decision.WithinGrace {
			if err := a.GraceUsageRepository.Increment(txCtx, employeeID, date.Year(), date.Month()); err != nil {
				return err
			}
		}

		record := attendance.Attendance{
			EmployeeID:       employeeID,
			CompanyID:        companyID,
			Date:             date,
			PunchIn:          &punchIn,
			PunchInAt:        &nowUTC,
			Status:           attendance.StatusNotMarked,
			Count:            attendance.CountZero,
			IsLate:           decision.MinutesLate > 0 && !decision.WithinGrace,
			GraceApplied:     decision.WithinGrace,
			PunchInLatitude:  &req.Latitude,
			PunchInLongitude: &req.Longitude,
			PunchInProofURL:  &proofURL,
			FaceConfidence:   &match.Confidence,
			FaceDistance:     &match.Distance,
			Comments:         req.Comments,
		}
		if decision.MinutesLate > 0 {
			late := decision.MinutesLate
			record.LateMinutes = &late
		}

		created, err = a.AttendanceRepository.Create(txCtx, record)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to record punch-in: %w", err)
	}

	return toAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	nowUTC := time.Now().UTC()

	employeeID, _, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	nowLocal := nowUTC.In(employeeLocation(emp))

	session, err := a.AttendanceRepository.GetOpenSession(ctx, employeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrNotPunchedIn) {
			return attendance.AttendanceResponse{}, attendance.ErrNotPunchedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}
	if session.PunchOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyPunchedOut
	}

	match, err := a.matcher.Verify(ctx, employeeID, req.FaceDescriptor)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("face verification unavailable: %w", err)
	}
	if !match.Verified || match.Confidence < a.faceMinConfidence {
		return attendance.AttendanceResponse{}, attendance.ErrFaceNotRecognized
	}

	proofURL, err := a.fileService.UploadPunchProof(ctx, employeeID, session.Date, req.File, req.FileHeader.Filename, "out")
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to upload punch proof: %w", err)
	}

	punchOut := nowLocal.Format("15:04")
	session.PunchOut = &punchOut
	session.PunchOutAt = &nowUTC
	session.PunchOutLatitude = &req.Latitude
	session.PunchOutLongitude = &req.Longitude
	session.PunchOutProofURL = &proofURL

	hours := 0.0
	if session.PunchIn != nil {
		hours = workedHours(*session.PunchIn, punchOut)
	}
	session.WorkingHours = &hours

	result, err := a.resolveRecord(ctx, session)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	session.Status = result.Status
	session.Count = result.Count
	session.Reason = &result.Reason

	if err := a.AttendanceRepository.Update(ctx, session); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to record punch-out: %w", err)
	}

	return toAttendanceResponse(session), nil
}

// resolveRecord gathers the day's facts and runs them through the
// priority table.
func (a *AttendanceServiceImpl) resolveRecord(ctx context.Context, att attendance.Attendance) (attendance.StatusResult, error) {
	isHoliday, err := a.HolidayRepository.IsHoliday(ctx, att.Date, att.CompanyID)
	if err != nil {
		return attendance.StatusResult{}, fmt.Errorf("failed to check holiday: %w", err)
	}

	leaveState := attendance.LeaveNone
	req, err := a.LeaveRepository.GetForDate(ctx, att.EmployeeID, att.Date, att.CompanyID)
	if err != nil {
		return attendance.StatusResult{}, fmt.Errorf("failed to get leave for date: %w", err)
	}
	if req != nil {
		leaveState = req.DayState()
	}

	facts := attendance.DayFacts{
		IsHoliday:  isHoliday,
		IsWeekend:  att.Date.Weekday() == time.Sunday,
		LeaveState: leaveState,
	}
	if att.PunchIn != nil {
		facts.PunchIn = *att.PunchIn
	}
	if att.PunchOut != nil {
		facts.PunchOut = *att.PunchOut
	}
	if att.WorkingHours != nil {
		facts.WorkingHours = *att.WorkingHours
	}

	return Resolve(facts, a.policy), nil
}

// GetCalendar implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetCalendar(ctx context.Context, employeeID string, year int, month time.Month) (attendance.CalendarResponse, error) {
	callerID, companyID, isAdmin, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.CalendarResponse{}, err
	}
	if employeeID == "" {
		employeeID = callerID
	}
	if employeeID != callerID && !isAdmin {
		return attendance.CalendarResponse{}, attendance.ErrUnauthorized
	}

	records, err := a.AttendanceRepository.GetMonth(ctx, employeeID, year, month, companyID)
	if err != nil {
		return attendance.CalendarResponse{}, fmt.Errorf("failed to get month attendances: %w", err)
	}

	holidays, err := a.HolidayRepository.ListMonth(ctx, year, month, companyID)
	if err != nil {
		return attendance.CalendarResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}
	holidaySet := map[string]bool{}
	for _, h := range holidays {
		holidaySet[h.Date.Format("2006-01-02")] = true
	}

	byDay := map[int]attendance.Attendance{}
	for _, r := range records {
		byDay[r.Date.Day()] = r
	}

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	days := make([]attendance.CalendarDay, 0, daysInMonth)
	entries := make([]attendance.DayEntry, 0, daysInMonth)

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		dateStr := date.Format("2006-01-02")

		var result attendance.StatusResult
		late := false

		if r, ok := byDay[day]; ok {
			result = attendance.StatusResult{Status: r.Status, Count: r.Count}
			if r.Reason != nil {
				result.Reason = *r.Reason
			}
			late = r.IsLate
		} else if holidaySet[dateStr] {
			result = attendance.StatusResult{Status: attendance.StatusHoliday, Count: attendance.CountZero, Reason: "company holiday"}
		} else if date.Weekday() == time.Sunday {
			result = attendance.StatusResult{Status: attendance.StatusHoliday, Count: attendance.CountZero, Reason: "weekly off"}
		}

		entries = append(entries, attendance.DayEntry{Day: day, Result: result, Late: late})

		display := string(result.Status)
		if late && result.Status != attendance.StatusNotMarked {
			display = string(attendance.StatusLate)
		}
		days = append(days, attendance.CalendarDay{
			Day:    day,
			Date:   dateStr,
			Status: display,
			Count:  result.Count.String(),
			Late:   late,
			Reason: result.Reason,
		})
	}

	stats := Aggregate(entries, daysInMonth, len(holidays))

	return attendance.CalendarResponse{
		EmployeeID: employeeID,
		Year:       year,
		Month:      int(month),
		Days:       days,
		Stats: attendance.StatsResponse{
			Present:              stats.Present,
			Late:                 stats.Late,
			HalfDay:              stats.HalfDay,
			Leave:                stats.Leave,
			PendingLeave:         stats.PendingLeave,
			Holiday:              stats.Holiday,
			Absconding:           stats.Absconding,
			Issue:                stats.Issue,
			Zero:                 stats.Zero,
			WorkingDays:          stats.WorkingDays,
			AttendancePercentage: stats.AttendancePercentage.StringFixed(1),
		},
	}, nil
}

// countForStatus maps a manually chosen status to its day-count.
func countForStatus(s attendance.DayStatus) decimal.Decimal {
	switch s {
	case attendance.StatusPresent, attendance.StatusLate:
		return attendance.CountFull
	case attendance.StatusHalfDay:
		return attendance.CountHalf
	case attendance.StatusAbsconding:
		return attendance.CountAbsconding
	}
	return attendance.CountZero
}

// Override implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Override(ctx context.Context, req attendance.EditRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	adminID, companyID, isAdmin, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !isAdmin {
		return attendance.AttendanceResponse{}, attendance.ErrUnauthorized
	}

	att, err := a.AttendanceRepository.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	oldStatus := att.Status
	newStatus := attendance.ParseDayStatus(req.Status)

	att.OldStatus = &oldStatus
	att.Status = newStatus
	att.Count = countForStatus(newStatus)
	att.IsManualOverride = true
	att.OverrideBy = &adminID
	att.Comments = &req.Comments
	if req.PunchIn != nil {
		att.PunchIn = req.PunchIn
	}
	if req.PunchOut != nil {
		att.PunchOut = req.PunchOut
	}
	if att.PunchIn != nil && att.PunchOut != nil {
		hours := workedHours(*att.PunchIn, *att.PunchOut)
		att.WorkingHours = &hours
	}

	if err := a.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to apply override: %w", err)
	}

	if a.hrAlertEmail != "" {
		name := att.EmployeeID
		if att.EmployeeName != nil {
			name = *att.EmployeeName
		}
		// best effort, the override itself already committed
		_ = a.emailService.SendOverrideNotice(
			a.hrAlertEmail, name, att.Date.Format("2006-01-02"),
			string(oldStatus), string(newStatus), adminID, req.Comments,
		)
	}

	return toAttendanceResponse(att), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	employeeID, companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	filter.EmployeeID = &employeeID
	return a.list(ctx, filter, companyID)
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	_, companyID, isAdmin, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if !isAdmin {
		return attendance.ListAttendanceResponse{}, attendance.ErrUnauthorized
	}

	return a.list(ctx, filter, companyID)
}

func (a *AttendanceServiceImpl) list(ctx context.Context, filter attendance.AttendanceFilter, companyID string) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	attendances, total, err := a.AttendanceRepository.List(ctx, filter, companyID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, toAttendanceResponse(att))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}

// ResolveDay implements attendance.AttendanceService. It closes out
// every record for the date that still has no status, typically ones
// missing a punch-out.
func (a *AttendanceServiceImpl) ResolveDay(ctx context.Context, date time.Time) (int, error) {
	date = dateOnly(date)

	unresolved, err := a.AttendanceRepository.ListUnresolved(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("failed to list unresolved attendances: %w", err)
	}

	resolved := 0
	for _, att := range unresolved {
		result, err := a.resolveRecord(ctx, att)
		if err != nil {
			return resolved, err
		}

		att.Status = result.Status
		att.Count = result.Count
		att.Reason = &result.Reason

		if err := a.AttendanceRepository.Update(ctx, att); err != nil {
			return resolved, fmt.Errorf("failed to update attendance %s: %w", att.ID, err)
		}
		resolved++
	}

	return resolved, nil
}

// ApplySundaySandwich implements attendance.AttendanceService. Runs
// once the Monday after the given Sunday has been resolved.
func (a *AttendanceServiceImpl) ApplySundaySandwich(ctx context.Context, sunday time.Time) (int, error) {
	sunday = dateOnly(sunday)
	if sunday.Weekday() != time.Sunday {
		return 0, fmt.Errorf("sandwich rule expects a Sunday, got %s", sunday.Weekday())
	}
	if !a.policy.EnableSundaySandwichRule {
		return 0, nil
	}

	employees, err := a.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list active employees: %w", err)
	}

	penalized := 0
	for _, emp := range employees {
		applied, err := a.applySandwichFor(ctx, emp, sunday)
		if err != nil {
			return penalized, err
		}
		if applied {
			penalized++
		}
	}

	return penalized, nil
}

func (a *AttendanceServiceImpl) applySandwichFor(ctx context.Context, emp employee.Employee, sunday time.Time) (bool, error) {
	week, sundayRecord, err := a.weekAround(ctx, emp, sunday)
	if err != nil {
		return false, err
	}

	decision := EvaluateSundaySandwich(week, a.policy)
	if !decision.Penalize {
		return false, nil
	}

	status := attendance.StatusZero
	if a.policy.SundayPenaltyCount.Equal(attendance.CountAbsconding) {
		status = attendance.StatusAbsconding
	}

	reason := decision.Reason
	if sundayRecord == nil {
		_, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
			EmployeeID:           emp.ID,
			CompanyID:            emp.CompanyID,
			Date:                 sunday,
			Status:               status,
			Count:                a.policy.SundayPenaltyCount,
			Reason:               &reason,
			SundayPenaltyApplied: true,
		})
		if err != nil {
			return false, fmt.Errorf("failed to create sandwich record: %w", err)
		}
		return true, nil
	}

	sundayRecord.Status = status
	sundayRecord.Count = a.policy.SundayPenaltyCount
	sundayRecord.Reason = &reason
	sundayRecord.SundayPenaltyApplied = true

	if err := a.AttendanceRepository.Update(ctx, *sundayRecord); err != nil {
		return false, fmt.Errorf("failed to update sandwich record: %w", err)
	}

	return true, nil
}

// weekAround builds the sandwich inputs for one employee: the statuses
// of the flanking Saturday and Monday, and how many of the week's six
// working days (Monday through Saturday, ending at the Sunday) were
// actually worked.
func (a *AttendanceServiceImpl) weekAround(ctx context.Context, emp employee.Employee, sunday time.Time) (attendance.WeekSummary, *attendance.Attendance, error) {
	week := attendance.WeekSummary{}

	sundayRecord, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, sunday, emp.CompanyID)
	if err != nil {
		return week, nil, fmt.Errorf("failed to get sunday record: %w", err)
	}
	if sundayRecord != nil {
		week.PenaltyApplied = sundayRecord.SundayPenaltyApplied
	}

	saturday, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, sunday.AddDate(0, 0, -1), emp.CompanyID)
	if err != nil {
		return week, nil, fmt.Errorf("failed to get saturday record: %w", err)
	}
	if saturday != nil {
		week.SaturdayStatus = saturday.Status
	}

	monday, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, sunday.AddDate(0, 0, 1), emp.CompanyID)
	if err != nil {
		return week, nil, fmt.Errorf("failed to get monday record: %w", err)
	}
	if monday != nil {
		week.MondayStatus = monday.Status
	}

	// Monday..Saturday of the week that ends at this Sunday.
	half := attendance.CountHalf
	for offset := 6; offset >= 1; offset-- {
		day, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, sunday.AddDate(0, 0, -offset), emp.CompanyID)
		if err != nil {
			return week, nil, fmt.Errorf("failed to get week record: %w", err)
		}
		if day != nil && day.Count.GreaterThanOrEqual(half) {
			week.WorkingDays++
		}
	}

	return week, sundayRecord, nil
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:               att.ID,
		EmployeeID:       att.EmployeeID,
		Date:             att.Date.Format("2006-01-02"),
		PunchIn:          att.PunchIn,
		PunchOut:         att.PunchOut,
		WorkingHours:     att.WorkingHours,
		Status:           string(att.Status),
		Count:            att.Count.String(),
		Reason:           att.Reason,
		IsLate:           att.IsLate,
		LateMinutes:      att.LateMinutes,
		GraceApplied:     att.GraceApplied,
		FaceConfidence:   att.FaceConfidence,
		PunchInProofURL:  att.PunchInProofURL,
		PunchOutProofURL: att.PunchOutProofURL,
		IsManualOverride: att.IsManualOverride,
		OverrideBy:       att.OverrideBy,
		Comments:         att.Comments,
	}

	if att.EmployeeName != nil {
		resp.EmployeeName = *att.EmployeeName
	}
	if att.OldStatus != nil {
		old := string(*att.OldStatus)
		resp.OldStatus = &old
	}
	if !att.CreatedAt.IsZero() {
		resp.CreatedAt = att.CreatedAt.Format(time.RFC3339)
	}
	if !att.UpdatedAt.IsZero() {
		resp.UpdatedAt = att.UpdatedAt.Format(time.RFC3339)
	}

	return resp
}
