package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/crestfin/crm-backend-go/internal/domain/attendance"
	"github.com/crestfin/crm-backend-go/internal/domain/employee"
	"github.com/crestfin/crm-backend-go/internal/domain/leave"
	"github.com/crestfin/crm-backend-go/internal/pkg/email"
	"github.com/go-chi/jwtauth/v5"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository

	emailService email.EmailService

	policy       attendance.Policy
	hrAlertEmail string
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	emailService email.EmailService,
	policy attendance.Policy,
	hrAlertEmail string,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
		emailService:       emailService,
		policy:             policy,
		hrAlertEmail:       hrAlertEmail,
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

// Apply implements leave.LeaveService.
func (l *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	employeeID, companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		overlap, err := l.LeaveRepository.GetForDate(ctx, employeeID, d, companyID)
		if err != nil {
			return leave.LeaveResponse{}, fmt.Errorf("failed to check overlapping leave: %w", err)
		}
		if overlap != nil {
			return leave.LeaveResponse{}, leave.ErrOverlappingLeave
		}
	}

	created, err := l.LeaveRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID:  employeeID,
		CompanyID:   companyID,
		StartDate:   start,
		EndDate:     end,
		Reason:      req.Reason,
		Status:      leave.StatusPending,
		SubmittedAt: time.Now().UTC(),
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return l.toResponse(created), nil
}

// GetMyLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	employeeID, companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := l.LeaveRepository.ListByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, l.toResponse(req))
	}

	return responses, nil
}

// Approve implements leave.LeaveService.
func (l *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveResponse, error) {
	adminID, companyID, isAdmin, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !isAdmin {
		return leave.LeaveResponse{}, attendance.ErrUnauthorized
	}

	req, err := l.LeaveRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if req.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	now := time.Now().UTC()
	req.Status = leave.StatusApproved
	req.ApprovedBy = &adminID
	req.ApprovedAt = &now

	if err := l.LeaveRepository.Update(ctx, req); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to approve leave request: %w", err)
	}

	return l.toResponse(req), nil
}

// Reject implements leave.LeaveService.
func (l *LeaveServiceImpl) Reject(ctx context.Context, rejectReq leave.RejectLeaveRequest) (leave.LeaveResponse, error) {
	if err := rejectReq.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	adminID, companyID, isAdmin, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !isAdmin {
		return leave.LeaveResponse{}, attendance.ErrUnauthorized
	}

	req, err := l.LeaveRepository.GetByID(ctx, rejectReq.ID, companyID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if req.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	now := time.Now().UTC()
	req.Status = leave.StatusRejected
	req.ApprovedBy = &adminID
	req.ApprovedAt = &now
	req.RejectionReason = &rejectReq.Reason

	if err := l.LeaveRepository.Update(ctx, req); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to reject leave request: %w", err)
	}

	return l.toResponse(req), nil
}

// ConvertStalePending implements leave.LeaveService. Called by the
// daily job; safe to run repeatedly.
func (l *LeaveServiceImpl) ConvertStalePending(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, -l.policy.PendingLeaveAutoConvertDays)

	stale, err := l.LeaveRepository.ListStalePending(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale pending leaves: %w", err)
	}

	converted := 0
	for _, req := range stale {
		daysPending := req.DaysPending(now)

		updated, ok := ConvertStale(req, now, l.policy.PendingLeaveAutoConvertDays)
		if !ok {
			continue
		}

		if err := l.LeaveRepository.Update(ctx, updated); err != nil {
			return converted, fmt.Errorf("failed to convert leave request %s: %w", req.ID, err)
		}
		converted++

		if l.hrAlertEmail == "" {
			continue
		}
		name := updated.EmployeeID
		if emp, err := l.EmployeeRepository.GetByID(ctx, updated.EmployeeID); err == nil {
			name = emp.FullName
		}
		// best effort, the conversion itself already committed
		_ = l.emailService.SendAbscondingAlert(
			l.hrAlertEmail, name,
			updated.SubmittedAt.Format("2006-01-02"), daysPending,
		)
	}

	return converted, nil
}

func (l *LeaveServiceImpl) toResponse(req leave.LeaveRequest) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:            req.ID,
		EmployeeID:    req.EmployeeID,
		StartDate:     req.StartDate.Format("2006-01-02"),
		EndDate:       req.EndDate.Format("2006-01-02"),
		Reason:        req.Reason,
		Status:        string(req.Status),
		ApprovedBy:    req.ApprovedBy,
		AutoConverted: req.AutoConverted,
		SubmittedAt:   req.SubmittedAt.Format(time.RFC3339),
	}

	if req.EmployeeName != nil {
		resp.EmployeeName = *req.EmployeeName
	}
	if req.Status == leave.StatusPending {
		resp.AutoConvertInDays = DaysUntilConvert(req, time.Now().UTC(), l.policy.PendingLeaveAutoConvertDays)
	}

	return resp
}
