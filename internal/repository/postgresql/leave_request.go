package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/crestfin/crm-backend-go/internal/domain/leave"
	"github.com/crestfin/crm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveColumns = `
	l.id, l.employee_id, l.company_id,
	l.start_date, l.end_date, l.reason,
	l.status, l.approved_by, l.approved_at, l.rejection_reason,
	l.auto_converted, l.auto_converted_at,
	l.submitted_at, l.created_at, l.updated_at`

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	var status string

	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.CompanyID,
		&req.StartDate, &req.EndDate, &req.Reason,
		&status, &req.ApprovedBy, &req.ApprovedAt, &req.RejectionReason,
		&req.AutoConverted, &req.AutoConvertedAt,
		&req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	req.Status = leave.Status(status)
	return req, nil
}

// Create implements leave.LeaveRepository.
func (l *leaveRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, company_id, start_date, end_date, reason,
			status, submitted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.CompanyID,
		req.StartDate,
		req.EndDate,
		req.Reason,
		string(req.Status),
		req.SubmittedAt,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (l *leaveRepository) GetByID(ctx context.Context, id string, companyID string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		WHERE l.id = $1 AND l.company_id = $2
	`

	req, err := scanLeave(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// Update implements leave.LeaveRepository.
func (l *leaveRepository) Update(ctx context.Context, req leave.LeaveRequest) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests SET
			status = $1, approved_by = $2, approved_at = $3,
			rejection_reason = $4,
			auto_converted = $5, auto_converted_at = $6,
			updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		string(req.Status),
		req.ApprovedBy,
		req.ApprovedAt,
		req.RejectionReason,
		req.AutoConverted,
		req.AutoConvertedAt,
		req.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// ListByEmployee implements leave.LeaveRepository.
func (l *leaveRepository) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		WHERE l.employee_id = $1 AND l.company_id = $2
		ORDER BY l.submitted_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}

// GetForDate implements leave.LeaveRepository. Approved, pending and
// absconding requests all shape the day's status; rejected and
// cancelled ones never do.
func (l *leaveRepository) GetForDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		WHERE l.employee_id = $1
		  AND l.company_id = $2
		  AND l.start_date <= $3
		  AND l.end_date >= $3
		  AND l.status IN ('approved', 'pending', 'absconding')
		ORDER BY l.submitted_at DESC
		LIMIT 1
	`

	req, err := scanLeave(q.QueryRow(ctx, query, employeeID, companyID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get leave for date: %w", err)
	}

	return &req, nil
}

// ListStalePending implements leave.LeaveRepository.
func (l *leaveRepository) ListStalePending(ctx context.Context, cutoff time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		WHERE l.status = 'pending'
		  AND l.submitted_at <= $1
		ORDER BY l.submitted_at ASC
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale pending leaves: %w", err)
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}
