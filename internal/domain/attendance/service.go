package attendance

import "context"

// AttendanceService defines the business operations over attendance records.
// Employee identity comes in as an argument (resolved from the JWT by the
// handler layer), keeping the service free of transport concerns.
type AttendanceService interface {
	// CheckIn records today's check-in and classifies it present or late.
	CheckIn(ctx context.Context, employeeID string) (CheckInResponse, error)

	// CheckOut records today's check-out, computes worked hours and may
	// demote the status to half-day.
	CheckOut(ctx context.Context, employeeID string) (CheckOutResponse, error)

	// GetTodayStatus returns the employee's own snapshot for today; absent
	// with no timestamps when no record exists yet.
	GetTodayStatus(ctx context.Context, employeeID string) (TodayStatusResponse, error)

	// GetMyHistory returns the employee's records newest first, capped at
	// 100, optionally narrowed to one month.
	GetMyHistory(ctx context.Context, employeeID string, filter MonthFilter) ([]RecordResponse, error)

	// GetMySummary returns the employee's bucket counts for a month,
	// defaulting to the current one.
	GetMySummary(ctx context.Context, employeeID string, filter MonthFilter) (SummaryResponse, error)

	// ListAll returns records across the organization (manager), newest
	// first, capped at 500.
	ListAll(ctx context.Context, filter ListFilter) ([]RecordResponse, error)

	// GetEmployeeHistory returns one employee's records by employee code
	// (manager), newest first, optionally narrowed to one month.
	// ErrEmployeeNotFound when the code resolves to nobody.
	GetEmployeeHistory(ctx context.Context, employeeCode string, filter MonthFilter) ([]RecordResponse, error)

	// GetOrgSummary returns organization-wide counts for a month plus
	// per-department and per-employee breakdowns.
	GetOrgSummary(ctx context.Context, filter MonthFilter) (OrgSummaryResponse, error)

	// GetTodayBoard returns the manager's live view of today: counts,
	// inferred absentees and every record so far.
	GetTodayBoard(ctx context.Context) (TodayBoardResponse, error)

	// Export returns tabular rows for the inclusive date range, optionally
	// for a single employee. ErrNoRecordsFound when the range is empty.
	Export(ctx context.Context, filter ExportFilter) ([]ExportRow, error)
}
