package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/crestfin/crm-backend-go/internal/domain/attendance"
	"github.com/crestfin/crm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `
	a.id, a.employee_id, a.company_id, a.date,
	a.punch_in, a.punch_out, a.punch_in_at, a.punch_out_at,
	a.working_hours, a.status, a.count, a.reason,
	a.is_late, a.late_minutes, a.grace_applied, a.sunday_penalty_applied,
	a.punch_in_latitude, a.punch_in_longitude,
	a.punch_out_latitude, a.punch_out_longitude,
	a.punch_in_proof_url, a.punch_out_proof_url,
	a.face_confidence, a.face_distance,
	a.is_manual_override, a.override_by, a.old_status, a.comments,
	a.created_at, a.updated_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	var status string
	var oldStatus *string

	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.CompanyID, &att.Date,
		&att.PunchIn, &att.PunchOut, &att.PunchInAt, &att.PunchOutAt,
		&att.WorkingHours, &status, &att.Count, &att.Reason,
		&att.IsLate, &att.LateMinutes, &att.GraceApplied, &att.SundayPenaltyApplied,
		&att.PunchInLatitude, &att.PunchInLongitude,
		&att.PunchOutLatitude, &att.PunchOutLongitude,
		&att.PunchInProofURL, &att.PunchOutProofURL,
		&att.FaceConfidence, &att.FaceDistance,
		&att.IsManualOverride, &att.OverrideBy, &oldStatus, &att.Comments,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	att.Status = attendance.ParseDayStatus(status)
	if oldStatus != nil {
		old := attendance.ParseDayStatus(*oldStatus)
		att.OldStatus = &old
	}

	return att, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, company_id, date,
			punch_in, punch_in_at, status, count,
			is_late, late_minutes, grace_applied,
			punch_in_latitude, punch_in_longitude, punch_in_proof_url,
			face_confidence, face_distance, comments
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.CompanyID,
		newAttendance.Date,
		newAttendance.PunchIn,
		newAttendance.PunchInAt,
		string(newAttendance.Status),
		newAttendance.Count,
		newAttendance.IsLate,
		newAttendance.LateMinutes,
		newAttendance.GraceApplied,
		newAttendance.PunchInLatitude,
		newAttendance.PunchInLongitude,
		newAttendance.PunchInProofURL,
		newAttendance.FaceConfidence,
		newAttendance.FaceDistance,
		newAttendance.Comments,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string, companyID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `, e.full_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1 AND a.company_id = $2
	`

	rows, err := q.Query(ctx, query, id, companyID)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}

	att, err := scanAttendanceWithName(rows)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to scan attendance: %w", err)
	}

	return att, nil
}

func scanAttendanceWithName(rows pgx.Rows) (attendance.Attendance, error) {
	var att attendance.Attendance
	var status string
	var oldStatus *string

	err := rows.Scan(
		&att.ID, &att.EmployeeID, &att.CompanyID, &att.Date,
		&att.PunchIn, &att.PunchOut, &att.PunchInAt, &att.PunchOutAt,
		&att.WorkingHours, &status, &att.Count, &att.Reason,
		&att.IsLate, &att.LateMinutes, &att.GraceApplied, &att.SundayPenaltyApplied,
		&att.PunchInLatitude, &att.PunchInLongitude,
		&att.PunchOutLatitude, &att.PunchOutLongitude,
		&att.PunchInProofURL, &att.PunchOutProofURL,
		&att.FaceConfidence, &att.FaceDistance,
		&att.IsManualOverride, &att.OverrideBy, &oldStatus, &att.Comments,
		&att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	att.Status = attendance.ParseDayStatus(status)
	if oldStatus != nil {
		old := attendance.ParseDayStatus(*oldStatus)
		att.OldStatus = &old
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date = $2
		  AND a.company_id = $3
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			punch_in = $1, punch_out = $2, punch_in_at = $3, punch_out_at = $4,
			working_hours = $5, status = $6, count = $7, reason = $8,
			is_late = $9, late_minutes = $10, grace_applied = $11,
			sunday_penalty_applied = $12,
			punch_out_latitude = $13, punch_out_longitude = $14,
			punch_out_proof_url = $15,
			is_manual_override = $16, override_by = $17, old_status = $18,
			comments = $19,
			updated_at = NOW()
		WHERE id = $20
	`

	var oldStatus *string
	if att.OldStatus != nil {
		s := string(*att.OldStatus)
		oldStatus = &s
	}

	tag, err := q.Exec(ctx, query,
		att.PunchIn, att.PunchOut, att.PunchInAt, att.PunchOutAt,
		att.WorkingHours, string(att.Status), att.Count, att.Reason,
		att.IsLate, att.LateMinutes, att.GraceApplied,
		att.SundayPenaltyApplied,
		att.PunchOutLatitude, att.PunchOutLongitude,
		att.PunchOutProofURL,
		att.IsManualOverride, att.OverrideBy, oldStatus,
		att.Comments,
		att.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter, companyID string) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "a.company_id = $1"
	args := []interface{}{companyID}
	argIdx := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, string(attendance.ParseDayStatus(*filter.Status)))
		argIdx++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM attendances a
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	listQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`, e.full_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC, e.full_name ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	attendances := []attendance.Attendance{}
	for rows.Next() {
		att, err := scanAttendanceWithName(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, total, nil
}

// GetMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetMonth(ctx context.Context, employeeID string, year int, month time.Month, companyID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.company_id = $2
		  AND EXTRACT(YEAR FROM a.date) = $3
		  AND EXTRACT(MONTH FROM a.date) = $4
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to get month attendances: %w", err)
	}
	defer rows.Close()

	attendances := []attendance.Attendance{}
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, nil
}

// GetOpenSession implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetOpenSession(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.punch_in IS NOT NULL
		  AND a.punch_out IS NULL
		ORDER BY a.punch_in_at DESC
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrNotPunchedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return att, nil
}

// ListUnresolved implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListUnresolved(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.date = $1
		  AND a.status = ''
		  AND a.is_manual_override = FALSE
		ORDER BY a.employee_id ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list unresolved attendances: %w", err)
	}
	defer rows.Close()

	attendances := []attendance.Attendance{}
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, nil
}
