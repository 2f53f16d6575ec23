package employee

import "time"

// Employee is the slim profile the attendance engine needs; the HR
// record itself lives in the CRM service.
type Employee struct {
	ID        string
	CompanyID string
	FullName  string
	Email     string
	Status    string // active, resigned

	// Office anchor for the check-in geofence.
	OfficeLatitude  float64
	OfficeLongitude float64
	OfficeRadiusM   int
	Timezone        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
