package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/dashboard"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/timeutil"
)

const recentDays = 7

type DashboardServiceImpl struct {
	clock     timeutil.Clock
	records   attendance.RecordRepository
	employees employee.EmployeeRepository
}

func NewDashboardService(
	clock timeutil.Clock,
	recordRepo attendance.RecordRepository,
	employeeRepo employee.EmployeeRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		clock:     clock,
		records:   recordRepo,
		employees: employeeRepo,
	}
}

// GetEmployeeDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetEmployeeDashboard(ctx context.Context, employeeID string) (dashboard.EmployeeDashboardResponse, error) {
	now := s.clock.Now()
	dayStart, dayEnd := timeutil.DayBounds(now)

	today, err := s.records.GetByEmployeeAndDay(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to load today's record: %w", err)
	}

	todayView := attendance.TodayStatusResponse{Status: attendance.StatusAbsent}
	if today != nil {
		todayView = attendance.TodayStatusResponse{
			CheckedIn:    today.CheckInTime != nil,
			CheckedOut:   today.CheckOutTime != nil,
			CheckInTime:  timePtrToString(today.CheckInTime),
			CheckOutTime: timePtrToString(today.CheckOutTime),
			Status:       today.Status,
			TotalHours:   today.TotalHours,
		}
	}

	monthStart, monthEnd := timeutil.MonthBounds(now.Month(), now.Year(), now.Location())
	monthly, err := s.records.List(ctx, attendance.RecordFilter{
		EmployeeID: &employeeID,
		From:       &monthStart,
		To:         &monthEnd,
	})
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to list monthly records: %w", err)
	}
	monthSummary := attendance.Summarize(monthly)

	weekStart := timeutil.Midnight(now.AddDate(0, 0, -recentDays))
	recent, err := s.records.List(ctx, attendance.RecordFilter{
		EmployeeID: &employeeID,
		From:       &weekStart,
		To:         &dayEnd,
		Limit:      recentDays,
	})
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to list recent records: %w", err)
	}

	recentViews := make([]attendance.RecordResponse, 0, len(recent))
	for _, rec := range recent {
		recentViews = append(recentViews, attendance.RecordResponse{
			ID:           rec.ID,
			Date:         rec.Day.Format("2006-01-02"),
			CheckInTime:  timePtrToString(rec.CheckInTime),
			CheckOutTime: timePtrToString(rec.CheckOutTime),
			Status:       rec.Status,
			TotalHours:   rec.TotalHours,
		})
	}

	return dashboard.EmployeeDashboardResponse{
		Today: todayView,
		ThisMonth: dashboard.MonthSnapshot{
			Present:    monthSummary.Present,
			Absent:     monthSummary.Absent,
			Late:       monthSummary.Late,
			TotalHours: monthSummary.TotalHours,
		},
		RecentAttendance: recentViews,
	}, nil
}

// GetManagerDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetManagerDashboard(ctx context.Context) (dashboard.ManagerDashboardResponse, error) {
	now := s.clock.Now()
	dayStart, dayEnd := timeutil.DayBounds(now)

	role := employee.RoleEmployee
	roster, err := s.employees.ListByRole(ctx, &role)
	if err != nil {
		return dashboard.ManagerDashboardResponse{}, fmt.Errorf("failed to load employee roster: %w", err)
	}
	totalEmployees := len(roster)

	todays, err := s.records.List(ctx, attendance.RecordFilter{From: &dayStart, To: &dayEnd})
	if err != nil {
		return dashboard.ManagerDashboardResponse{}, fmt.Errorf("failed to list today's records: %w", err)
	}

	// Today's headline numbers use the total-minus-present rule.
	var todayPresent, todayLate int
	for _, rec := range todays {
		if rec.Status == attendance.StatusPresent || rec.Status == attendance.StatusLate {
			todayPresent++
		}
		if rec.Status == attendance.StatusLate {
			todayLate++
		}
	}

	weekStart := timeutil.Midnight(now.AddDate(0, 0, -6))
	weekRecords, err := s.records.List(ctx, attendance.RecordFilter{From: &weekStart, To: &dayEnd})
	if err != nil {
		return dashboard.ManagerDashboardResponse{}, fmt.Errorf("failed to list weekly records: %w", err)
	}

	absentees := attendance.InferAbsentees(roster, todays)
	absentViews := make([]attendance.EmployeeInfo, 0, len(absentees))
	for _, emp := range absentees {
		absentViews = append(absentViews, attendance.EmployeeInfo{
			ID:           emp.ID,
			Name:         emp.FullName,
			EmployeeCode: emp.EmployeeCode,
			Department:   emp.Department,
		})
	}

	return dashboard.ManagerDashboardResponse{
		TotalEmployees: totalEmployees,
		Today: dashboard.TodayCounts{
			Present: todayPresent,
			Absent:  totalEmployees - todayPresent,
			Late:    todayLate,
		},
		WeeklyTrend:     attendance.WeeklyTrend(now, weekRecords, totalEmployees),
		DepartmentStats: attendance.DepartmentAttendance(roster, todays),
		AbsentEmployees: absentViews,
	}, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}
