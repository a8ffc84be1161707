package attendance

import (
	"context"
	"time"
)

// RecordFilter narrows List queries. All fields are optional and combinable.
// Day ranges are inclusive on both ends per the day-bounds convention.
type RecordFilter struct {
	EmployeeID *string
	From       *time.Time
	To         *time.Time
	Status     *Status

	// Limit caps the result set; zero means no cap. Results are always
	// ordered by day, newest first.
	Limit int
}

// RecordRepository defines data access for attendance records. The
// one-record-per-(employee, day) invariant is enforced here, not by callers:
// check-in is an atomic upsert-or-reject, never a read-then-write.
type RecordRepository interface {
	// UpsertCheckIn inserts the day's record, or claims a seeded record
	// that has no check-in time yet. Returns ErrAlreadyCheckedIn when the
	// employee already has a check-in for that day.
	UpsertCheckIn(ctx context.Context, rec Record) (Record, error)

	// CompleteCheckOut writes the check-out fields, guarded so a record can
	// only be checked out once. Returns ErrAlreadyCheckedOut on a repeat.
	CompleteCheckOut(ctx context.Context, rec Record) error

	// GetByEmployeeAndDay returns the record for one employee within the
	// inclusive day range, or nil when none exists.
	GetByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (*Record, error)

	List(ctx context.Context, filter RecordFilter) ([]Record, error)

	// Create inserts a record directly, bypassing classification. Used by
	// seeding and administrative backfills only.
	Create(ctx context.Context, rec Record) (Record, error)
}
