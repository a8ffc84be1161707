package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/timeutil"
)

const (
	historyLimit = 100
	listAllLimit = 500

	timestampFormat = "2006-01-02 15:04:05"
	dateFormat      = "2006-01-02"
)

type AttendanceServiceImpl struct {
	clock     timeutil.Clock
	records   attendance.RecordRepository
	employees employee.EmployeeRepository
}

func NewAttendanceService(
	clock timeutil.Clock,
	recordRepo attendance.RecordRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		clock:     clock,
		records:   recordRepo,
		employees: employeeRepo,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.CheckInResponse, error) {
	now := s.clock.Now()
	status := attendance.ClassifyCheckIn(now)

	rec := attendance.Record{
		EmployeeID:  employeeID,
		Day:         timeutil.Midnight(now),
		CheckInTime: &now,
		Status:      status,
	}

	saved, err := s.records.UpsertCheckIn(ctx, rec)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.CheckInResponse{}, err
		}
		return attendance.CheckInResponse{}, fmt.Errorf("failed to record check-in: %w", err)
	}

	return attendance.CheckInResponse{
		Status:      saved.Status,
		CheckInTime: now.Format(timestampFormat),
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.CheckOutResponse, error) {
	now := s.clock.Now()
	dayStart, dayEnd := timeutil.DayBounds(now)

	rec, err := s.records.GetByEmployeeAndDay(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to load today's record: %w", err)
	}
	if rec == nil || rec.CheckInTime == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	}
	if rec.CheckOutTime != nil {
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}

	status, hours := attendance.ClassifyCheckOut(*rec.CheckInTime, now, rec.Status)
	rec.CheckOutTime = &now
	rec.Status = status
	rec.TotalHours = hours

	if err := s.records.CompleteCheckOut(ctx, *rec); err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedOut) {
			return attendance.CheckOutResponse{}, err
		}
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to record check-out: %w", err)
	}

	return attendance.CheckOutResponse{
		Status:       status,
		CheckOutTime: now.Format(timestampFormat),
		TotalHours:   hours,
	}, nil
}

// GetTodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTodayStatus(ctx context.Context, employeeID string) (attendance.TodayStatusResponse, error) {
	dayStart, dayEnd := timeutil.DayBounds(s.clock.Now())

	rec, err := s.records.GetByEmployeeAndDay(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to load today's record: %w", err)
	}
	if rec == nil {
		return attendance.TodayStatusResponse{Status: attendance.StatusAbsent}, nil
	}

	return attendance.TodayStatusResponse{
		CheckedIn:    rec.CheckInTime != nil,
		CheckedOut:   rec.CheckOutTime != nil,
		CheckInTime:  timePtrToString(rec.CheckInTime),
		CheckOutTime: timePtrToString(rec.CheckOutTime),
		Status:       rec.Status,
		TotalHours:   rec.TotalHours,
	}, nil
}

// GetMyHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyHistory(ctx context.Context, employeeID string, filter attendance.MonthFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	recFilter := attendance.RecordFilter{
		EmployeeID: &employeeID,
		Limit:      historyLimit,
	}
	if filter.Month != nil && filter.Year != nil {
		start, end := timeutil.MonthBounds(time.Month(*filter.Month), *filter.Year, s.clock.Now().Location())
		recFilter.From = &start
		recFilter.To = &end
	}

	records, err := s.records.List(ctx, recFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses, nil
}

// GetEmployeeHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeHistory(ctx context.Context, employeeCode string, filter attendance.MonthFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employees.GetByCode(ctx, employeeCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve employee code: %w", err)
	}

	recFilter := attendance.RecordFilter{
		EmployeeID: &emp.ID,
		Limit:      historyLimit,
	}
	if filter.Month != nil && filter.Year != nil {
		start, end := timeutil.MonthBounds(time.Month(*filter.Month), *filter.Year, s.clock.Now().Location())
		recFilter.From = &start
		recFilter.To = &end
	}

	records, err := s.records.List(ctx, recFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses, nil
}

// GetMySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMySummary(ctx context.Context, employeeID string, filter attendance.MonthFilter) (attendance.SummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.SummaryResponse{}, err
	}

	month, year := s.targetMonth(filter)
	start, end := timeutil.MonthBounds(time.Month(month), year, s.clock.Now().Location())

	records, err := s.records.List(ctx, attendance.RecordFilter{
		EmployeeID: &employeeID,
		From:       &start,
		To:         &end,
	})
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return attendance.SummaryResponse{
		Month:   month,
		Year:    year,
		Summary: attendance.Summarize(records),
	}, nil
}

// ListAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAll(ctx context.Context, filter attendance.ListFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	recFilter := attendance.RecordFilter{
		Status: filter.Status,
		Limit:  listAllLimit,
	}

	if filter.EmployeeCode != nil && *filter.EmployeeCode != "" {
		emp, err := s.employees.GetByCode(ctx, *filter.EmployeeCode)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return []attendance.RecordResponse{}, nil
			}
			return nil, fmt.Errorf("failed to resolve employee code: %w", err)
		}
		recFilter.EmployeeID = &emp.ID
	}

	loc := s.clock.Now().Location()
	if filter.Date != nil && *filter.Date != "" {
		day, err := time.ParseInLocation(dateFormat, *filter.Date, loc)
		if err == nil {
			start, end := timeutil.DayBounds(day)
			recFilter.From = &start
			recFilter.To = &end
		}
	} else if filter.Month != nil && filter.Year != nil {
		start, end := timeutil.MonthBounds(time.Month(*filter.Month), *filter.Year, loc)
		recFilter.From = &start
		recFilter.To = &end
	}

	records, err := s.records.List(ctx, recFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses, nil
}

// GetOrgSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetOrgSummary(ctx context.Context, filter attendance.MonthFilter) (attendance.OrgSummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.OrgSummaryResponse{}, err
	}

	month, year := s.targetMonth(filter)
	start, end := timeutil.MonthBounds(time.Month(month), year, s.clock.Now().Location())

	records, err := s.records.List(ctx, attendance.RecordFilter{From: &start, To: &end})
	if err != nil {
		return attendance.OrgSummaryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	roster, err := s.employees.ListByRole(ctx, nil)
	if err != nil {
		return attendance.OrgSummaryResponse{}, fmt.Errorf("failed to load employee roster: %w", err)
	}
	byID := employeesByID(roster)

	return attendance.OrgSummaryResponse{
		Month:        month,
		Year:         year,
		TotalRecords: len(records),
		Summary:      attendance.Summarize(records),
		ByDepartment: attendance.GroupByDepartment(records, byID),
		ByEmployee:   attendance.GroupByEmployee(records, byID),
	}, nil
}

// GetTodayBoard implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTodayBoard(ctx context.Context) (attendance.TodayBoardResponse, error) {
	now := s.clock.Now()
	dayStart, dayEnd := timeutil.DayBounds(now)

	records, err := s.records.List(ctx, attendance.RecordFilter{From: &dayStart, To: &dayEnd})
	if err != nil {
		return attendance.TodayBoardResponse{}, fmt.Errorf("failed to list today's records: %w", err)
	}

	role := employee.RoleEmployee
	roster, err := s.employees.ListByRole(ctx, &role)
	if err != nil {
		return attendance.TodayBoardResponse{}, fmt.Errorf("failed to load employee roster: %w", err)
	}

	board := attendance.TodayBoardResponse{
		Date:           now.Format(dateFormat),
		TotalEmployees: len(roster),
	}
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent, attendance.StatusLate:
			board.Present++
		case attendance.StatusAbsent:
			board.Absent++
		}
		if rec.Status == attendance.StatusLate {
			board.Late++
		}
		if rec.CheckInTime != nil {
			board.CheckedIn++
		}
		if rec.CheckOutTime != nil {
			board.CheckedOut++
		}
	}

	for _, emp := range attendance.InferAbsentees(roster, records) {
		board.AbsentEmployees = append(board.AbsentEmployees, employeeInfo(emp))
	}

	board.Records = make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		board.Records = append(board.Records, mapRecordToResponse(rec))
	}

	return board, nil
}

// Export implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Export(ctx context.Context, filter attendance.ExportFilter) ([]attendance.ExportRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	loc := s.clock.Now().Location()
	startDay, _ := time.ParseInLocation(dateFormat, filter.StartDate, loc)
	endDay, _ := time.ParseInLocation(dateFormat, filter.EndDate, loc)
	start, _ := timeutil.DayBounds(startDay)
	_, end := timeutil.DayBounds(endDay)

	recFilter := attendance.RecordFilter{From: &start, To: &end}
	if filter.EmployeeCode != nil && *filter.EmployeeCode != "" {
		emp, err := s.employees.GetByCode(ctx, *filter.EmployeeCode)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to resolve employee code: %w", err)
		}
		recFilter.EmployeeID = &emp.ID
	}

	records, err := s.records.List(ctx, recFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	if len(records) == 0 {
		return nil, attendance.ErrNoRecordsFound
	}

	rows := make([]attendance.ExportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, attendance.ExportRow{
			Date:         rec.Day.Format(dateFormat),
			EmployeeCode: stringOr(rec.EmployeeCode, "N/A"),
			Name:         stringOr(rec.EmployeeName, "N/A"),
			Department:   stringOr(rec.Department, "N/A"),
			CheckInTime:  formatTimeOr(rec.CheckInTime, "N/A"),
			CheckOutTime: formatTimeOr(rec.CheckOutTime, "N/A"),
			Status:       string(rec.Status),
			TotalHours:   rec.TotalHours,
		})
	}
	return rows, nil
}

// targetMonth resolves the filter's month/year, defaulting to the clock's
// current month.
func (s *AttendanceServiceImpl) targetMonth(filter attendance.MonthFilter) (int, int) {
	now := s.clock.Now()
	month := int(now.Month())
	year := now.Year()
	if filter.Month != nil {
		month = *filter.Month
	}
	if filter.Year != nil {
		year = *filter.Year
	}
	return month, year
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:           rec.ID,
		Date:         rec.Day.Format(dateFormat),
		EmployeeCode: rec.EmployeeCode,
		EmployeeName: rec.EmployeeName,
		Department:   rec.Department,
		CheckInTime:  timePtrToString(rec.CheckInTime),
		CheckOutTime: timePtrToString(rec.CheckOutTime),
		Status:       rec.Status,
		TotalHours:   rec.TotalHours,
	}
}

func employeeInfo(emp employee.Employee) attendance.EmployeeInfo {
	return attendance.EmployeeInfo{
		ID:           emp.ID,
		Name:         emp.FullName,
		EmployeeCode: emp.EmployeeCode,
		Department:   emp.Department,
	}
}

func employeesByID(roster []employee.Employee) map[string]employee.Employee {
	byID := make(map[string]employee.Employee, len(roster))
	for _, emp := range roster {
		byID[emp.ID] = emp
	}
	return byID
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(timestampFormat)
	return &format
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func formatTimeOr(t *time.Time, fallback string) string {
	if t == nil {
		return fallback
	}
	return t.Format(timestampFormat)
}
