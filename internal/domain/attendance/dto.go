package attendance

import (
	"mime/multipart"

	"github.com/crestfin/crm-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID     string    `json:"employee_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Comments       *string   `json:"comments,omitempty"`
	FaceDescriptor []float64 `json:"face_descriptor"`

	ProofPhotoURL *string               `json:"-"`
	File          multipart.File        `json:"-"`
	FileHeader    *multipart.FileHeader `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(r.FaceDescriptor) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "face_descriptor",
			Message: "face_descriptor is required",
		})
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "attendance proof photo is required",
		})
	} else if !validator.IsAllowedImage(r.FileHeader.Filename) {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "invalid file type: only jpg, jpeg, png allowed",
		})
	} else if r.FileHeader.Size > 10<<20 { // 10MB
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "attendance proof photo size must not exceed 10MB",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	EmployeeID     string    `json:"employee_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Comments       *string   `json:"comments,omitempty"`
	FaceDescriptor []float64 `json:"face_descriptor"`

	ProofPhotoURL *string               `json:"-"`
	File          multipart.File        `json:"-"`
	FileHeader    *multipart.FileHeader `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "attendance proof photo is required",
		})
	} else if !validator.IsAllowedImage(r.FileHeader.Filename) {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "invalid file type: only jpg, jpeg, png allowed",
		})
	} else if r.FileHeader.Size > 10<<20 { // 10MB
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "attendance proof photo size must not exceed 10MB",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EditRequest is a manual override by an admin. It bypasses the status
// resolver entirely; the comment is mandatory.
type EditRequest struct {
	ID       string  `json:"-"`
	Status   string  `json:"status"`
	Comments string  `json:"comments"`
	PunchIn  *string `json:"punch_in,omitempty"`
	PunchOut *string `json:"punch_out,omitempty"`
}

func (r *EditRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Comments) {
		errs = append(errs, validator.ValidationError{
			Field:   "comments",
			Message: "comments is required for a manual override",
		})
	}

	if ParseDayStatus(r.Status) == StatusNotMarked {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of P, L, LV, PL, H, HD, AB, ISS, Z",
		})
	}

	if r.PunchIn != nil && !validator.IsValidClock(*r.PunchIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "punch_in",
			Message: "punch_in must be in HH:MM format",
		})
	}

	if r.PunchOut != nil && !validator.IsValidClock(*r.PunchOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "punch_out",
			Message: "punch_out must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      string   `json:"employee_name,omitempty"`
	Date              string   `json:"date"`
	PunchIn           *string  `json:"punch_in,omitempty"`
	PunchOut          *string  `json:"punch_out,omitempty"`
	WorkingHours      *float64 `json:"working_hours,omitempty"`
	Status            string   `json:"status"`
	Count             string   `json:"count"`
	Reason            *string  `json:"reason,omitempty"`
	IsLate            bool     `json:"is_late"`
	LateMinutes       *int     `json:"late_minutes,omitempty"`
	GraceApplied      bool     `json:"grace_applied"`
	FaceConfidence    *float64 `json:"face_confidence,omitempty"`
	PunchInProofURL   *string  `json:"punch_in_proof_url,omitempty"`
	PunchOutProofURL  *string  `json:"punch_out_proof_url,omitempty"`
	IsManualOverride  bool     `json:"is_manual_override"`
	OverrideBy        *string  `json:"override_by,omitempty"`
	OldStatus         *string  `json:"old_status,omitempty"`
	Comments          *string  `json:"comments,omitempty"`
	CreatedAt         string   `json:"created_at,omitempty"`
	UpdatedAt         string   `json:"updated_at,omitempty"`
}

// CalendarDay is one cell of the monthly status grid.
type CalendarDay struct {
	Day    int    `json:"day"`
	Date   string `json:"date"`
	Status string `json:"status"`
	Count  string `json:"count"`
	Late   bool   `json:"late"`
	Reason string `json:"reason,omitempty"`
}

type CalendarResponse struct {
	EmployeeID string        `json:"employee_id"`
	Year       int           `json:"year"`
	Month      int           `json:"month"`
	Days       []CalendarDay `json:"days"`
	Stats      StatsResponse `json:"stats"`
}

type StatsResponse struct {
	Present              int    `json:"present"`
	Late                 int    `json:"late"`
	HalfDay              int    `json:"half_day"`
	Leave                int    `json:"leave"`
	PendingLeave         int    `json:"pending_leave"`
	Holiday              int    `json:"holiday"`
	Absconding           int    `json:"absconding"`
	Issue                int    `json:"issue"`
	Zero                 int    `json:"zero"`
	WorkingDays          int    `json:"working_days"`
	AttendancePercentage string `json:"attendance_percentage"`
}

type AttendanceFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	Status     *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Status != nil && ParseDayStatus(*f.Status) == StatusNotMarked {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "unknown status code",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
