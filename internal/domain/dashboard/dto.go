package dashboard

import (
	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
)

// ========== EMPLOYEE DASHBOARD ==========

// EmployeeDashboardResponse is the employee-facing view: today's snapshot,
// the running month and the last seven days of records.
type EmployeeDashboardResponse struct {
	Today            attendance.TodayStatusResponse `json:"today"`
	ThisMonth        MonthSnapshot                  `json:"this_month"`
	RecentAttendance []attendance.RecordResponse    `json:"recent_attendance"`
}

// MonthSnapshot carries the counts the employee dashboard shows for the
// current month.
type MonthSnapshot struct {
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	TotalHours float64 `json:"total_hours"`
}

// ========== MANAGER DASHBOARD ==========

// ManagerDashboardResponse is the manager-facing org view. Today.Absent is
// total employees minus present-or-late, while AbsentEmployees lists the
// explicit-or-missing absentees; the two absence rules are deliberately
// different per call site.
type ManagerDashboardResponse struct {
	TotalEmployees  int                         `json:"total_employees"`
	Today           TodayCounts                 `json:"today"`
	WeeklyTrend     []attendance.TrendPoint     `json:"weekly_trend"`
	DepartmentStats []attendance.DepartmentStat `json:"department_stats"`
	AbsentEmployees []attendance.EmployeeInfo   `json:"absent_employees"`
}

type TodayCounts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}
