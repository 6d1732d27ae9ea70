package domain

import "time"

type DamageReportStatus string

const (
	DamageReportStatusUnresolved DamageReportStatus = "unresolved"
	DamageReportStatusResolved   DamageReportStatus = "resolved"
)

// DamageReport is a one-to-one satellite of a Booking. The description
// is immutable after creation; only admins may change the status.
type DamageReport struct {
	ID          int32              `json:"id"`
	BookingID   int32              `json:"booking_id"`
	Description string             `json:"description"`
	Status      DamageReportStatus `json:"status"`
	CreatedOn   time.Time          `json:"created_on"`
}
