package attendance

import "time"

// Record is one employee's attendance for one calendar day. Day is normalized
// to midnight local time; together with EmployeeID it forms the natural key,
// enforced by a unique constraint at the store.
type Record struct {
	ID           string
	EmployeeID   string
	Day          time.Time
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Status       Status
	TotalHours   float64
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined from the employee roster by list queries.
	EmployeeName *string
	EmployeeCode *string
	Department   *string
}

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
	StatusAbsent  Status = "absent"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusHalfDay, StatusAbsent:
		return true
	}
	return false
}
