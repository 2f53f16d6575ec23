package holiday

import "time"

// Holiday is one entry of the company holiday calendar.
type Holiday struct {
	ID        string
	CompanyID string
	Date      time.Time
	Name      string

	CreatedAt time.Time
}
