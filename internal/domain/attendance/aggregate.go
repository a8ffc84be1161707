package attendance

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/timeutil"
)

// Summary holds the four status buckets plus total worked hours over a record
// set. Hours are summed raw and rounded once at the end.
type Summary struct {
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	HalfDay    int     `json:"half_day"`
	TotalHours float64 `json:"total_hours"`
}

// StatusCounts is a Summary without the hours, used for groupings.
type StatusCounts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	HalfDay int `json:"half_day"`
}

func (c *StatusCounts) add(s Status) {
	switch s {
	case StatusPresent:
		c.Present++
	case StatusAbsent:
		c.Absent++
	case StatusLate:
		c.Late++
	case StatusHalfDay:
		c.HalfDay++
	}
}

// EmployeeCounts is a per-employee grouping entry.
type EmployeeCounts struct {
	Name    string `json:"name"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
	HalfDay int    `json:"half_day"`
}

// TrendPoint is one day of the weekly trend. Present counts records whose
// status is present or late; absent is total employees minus present. Note
// this is a different absence rule than InferAbsentees, intentionally: the
// trend measures headcount shortfall, not explicit absences.
type TrendPoint struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

// DepartmentStat is a roster-driven per-department rollup for the manager
// dashboard. Employees with no record today (or an explicit absent record)
// count as absent, so departments with zero attendance still appear.
type DepartmentStat struct {
	Department string `json:"department"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	Total      int    `json:"total"`
}

// Summarize counts records into the four status buckets and sums worked
// hours. A single linear pass; no record is weighted or deduplicated beyond
// the one-record-per-day invariant the store enforces.
func Summarize(records []Record) Summary {
	var sum Summary
	var hours float64
	for _, rec := range records {
		switch rec.Status {
		case StatusPresent:
			sum.Present++
		case StatusAbsent:
			sum.Absent++
		case StatusLate:
			sum.Late++
		case StatusHalfDay:
			sum.HalfDay++
		}
		hours += rec.TotalHours
	}
	sum.TotalHours = RoundHoursValue(hours)
	return sum
}

// GroupByDepartment buckets record statuses by the owning employee's
// department, falling back to "Unknown" when the employee cannot be resolved.
func GroupByDepartment(records []Record, employeesByID map[string]employee.Employee) map[string]StatusCounts {
	out := make(map[string]StatusCounts)
	for _, rec := range records {
		dept := "Unknown"
		if emp, ok := employeesByID[rec.EmployeeID]; ok && emp.Department != "" {
			dept = emp.Department
		}
		counts := out[dept]
		counts.add(rec.Status)
		out[dept] = counts
	}
	return out
}

// GroupByEmployee buckets record statuses per employee, keyed by employee
// code, with the same "Unknown" fallback as GroupByDepartment.
func GroupByEmployee(records []Record, employeesByID map[string]employee.Employee) map[string]EmployeeCounts {
	out := make(map[string]EmployeeCounts)
	for _, rec := range records {
		key := "Unknown"
		name := "Unknown"
		if emp, ok := employeesByID[rec.EmployeeID]; ok {
			key = emp.EmployeeCode
			name = emp.FullName
		}
		counts, ok := out[key]
		if !ok {
			counts = EmployeeCounts{Name: name}
		}
		switch rec.Status {
		case StatusPresent:
			counts.Present++
		case StatusAbsent:
			counts.Absent++
		case StatusLate:
			counts.Late++
		case StatusHalfDay:
			counts.HalfDay++
		}
		out[key] = counts
	}
	return out
}

// InferAbsentees returns every employee who is absent today under the
// open-world rule: no record at all, or a record explicitly marked absent.
// Seeding only stores explicit absent rows sometimes, so a missing record
// must count as absent here.
func InferAbsentees(employees []employee.Employee, todays []Record) []employee.Employee {
	byEmployee := make(map[string]Record, len(todays))
	for _, rec := range todays {
		byEmployee[rec.EmployeeID] = rec
	}

	var absent []employee.Employee
	for _, emp := range employees {
		rec, ok := byEmployee[emp.ID]
		if !ok || rec.Status == StatusAbsent {
			absent = append(absent, emp)
		}
	}
	return absent
}

// WeeklyTrend produces seven trend points ending on the reference day, oldest
// first. Records outside the seven-day window are ignored.
func WeeklyTrend(reference time.Time, records []Record, totalEmployees int) []TrendPoint {
	presentByDay := make(map[string]int)
	for _, rec := range records {
		if rec.Status == StatusPresent || rec.Status == StatusLate {
			presentByDay[rec.Day.Format("2006-01-02")]++
		}
	}

	points := make([]TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := timeutil.Midnight(reference.AddDate(0, 0, -i))
		key := day.Format("2006-01-02")
		present := presentByDay[key]
		points = append(points, TrendPoint{
			Date:    key,
			Present: present,
			Absent:  totalEmployees - present,
		})
	}
	return points
}

// DepartmentAttendance rolls up today's attendance per department across the
// full roster. The absence rule here is explicit-or-missing, matching
// InferAbsentees rather than the trend's total-minus-present rule.
func DepartmentAttendance(employees []employee.Employee, todays []Record) []DepartmentStat {
	byEmployee := make(map[string]Record, len(todays))
	for _, rec := range todays {
		byEmployee[rec.EmployeeID] = rec
	}

	stats := make(map[string]*DepartmentStat)
	order := make([]string, 0)
	for _, emp := range employees {
		stat, ok := stats[emp.Department]
		if !ok {
			stat = &DepartmentStat{Department: emp.Department}
			stats[emp.Department] = stat
			order = append(order, emp.Department)
		}
		stat.Total++
		rec, found := byEmployee[emp.ID]
		if !found || rec.Status == StatusAbsent {
			stat.Absent++
		} else {
			stat.Present++
		}
	}

	out := make([]DepartmentStat, 0, len(order))
	for _, dept := range order {
		out = append(out, *stats[dept])
	}
	return out
}
