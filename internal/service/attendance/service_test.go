package attendance

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock is a settable clock so one test can check in and check out at
// different times of the same day.
type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

// fakeRecordRepo mimics the store's per-(employee, day) uniqueness and the
// claim/guard semantics of the SQL upsert and checkout update.
type fakeRecordRepo struct {
	records map[string]attendance.Record
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[string]attendance.Record)}
}

func (r *fakeRecordRepo) key(employeeID string, day time.Time) string {
	return employeeID + "|" + day.Format("2006-01-02")
}

func (r *fakeRecordRepo) UpsertCheckIn(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	k := r.key(rec.EmployeeID, rec.Day)
	if existing, ok := r.records[k]; ok {
		if existing.CheckInTime != nil {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		existing.CheckInTime = rec.CheckInTime
		existing.Status = rec.Status
		r.records[k] = existing
		return existing, nil
	}
	rec.ID = uuid.NewString()
	r.records[k] = rec
	return rec, nil
}

func (r *fakeRecordRepo) CompleteCheckOut(_ context.Context, rec attendance.Record) error {
	for k, existing := range r.records {
		if existing.ID != rec.ID {
			continue
		}
		if existing.CheckOutTime != nil {
			return attendance.ErrAlreadyCheckedOut
		}
		existing.CheckOutTime = rec.CheckOutTime
		existing.Status = rec.Status
		existing.TotalHours = rec.TotalHours
		r.records[k] = existing
		return nil
	}
	return attendance.ErrAlreadyCheckedOut
}

func (r *fakeRecordRepo) GetByEmployeeAndDay(_ context.Context, employeeID string, dayStart, dayEnd time.Time) (*attendance.Record, error) {
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && !rec.Day.Before(dayStart) && !rec.Day.After(dayEnd) {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeRecordRepo) List(_ context.Context, filter attendance.RecordFilter) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range r.records {
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.From != nil && rec.Day.Before(*filter.From) {
			continue
		}
		if filter.To != nil && rec.Day.After(*filter.To) {
			continue
		}
		if filter.Status != nil && rec.Status != *filter.Status {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.After(out[j].Day) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *fakeRecordRepo) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	r.records[r.key(rec.EmployeeID, rec.Day)] = rec
	return rec, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.employees = append(r.employees, emp)
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.EmployeeCode == code {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) ListByRole(_ context.Context, role *employee.Role) ([]employee.Employee, error) {
	if role == nil {
		return r.employees, nil
	}
	var out []employee.Employee
	for _, emp := range r.employees {
		if emp.Role == *role {
			out = append(out, emp)
		}
	}
	return out, nil
}

func testRoster() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", EmployeeCode: "EMP001", FullName: "Arif Pratama", Department: "Engineering", Role: employee.RoleEmployee},
		{ID: "e2", EmployeeCode: "EMP002", FullName: "Budi Santoso", Department: "Sales", Role: employee.RoleEmployee},
		{ID: "m1", EmployeeCode: "MGR001", FullName: "Maya Manager", Department: "Management", Role: employee.RoleManager},
	}}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func TestCheckInOnTime(t *testing.T) {
	clock := &stepClock{now: at(9, 15)}
	svc := NewAttendanceService(clock, newFakeRecordRepo(), testRoster())

	resp, err := svc.CheckIn(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, "2025-03-10 09:15:00", resp.CheckInTime)
}

func TestCheckInLate(t *testing.T) {
	clock := &stepClock{now: at(9, 45)}
	svc := NewAttendanceService(clock, newFakeRecordRepo(), testRoster())

	resp, err := svc.CheckIn(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Status)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	clock := &stepClock{now: at(9, 0)}
	records := newFakeRecordRepo()
	svc := NewAttendanceService(clock, records, testRoster())

	_, err := svc.CheckIn(context.Background(), "e1")
	require.NoError(t, err)

	clock.now = at(11, 0)
	_, err = svc.CheckIn(context.Background(), "e1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	// Still exactly one record for the day.
	assert.Len(t, records.records, 1)
}

func TestCheckInClaimsSeededAbsentRecord(t *testing.T) {
	clock := &stepClock{now: at(9, 10)}
	records := newFakeRecordRepo()
	_, err := records.Create(context.Background(), attendance.Record{
		EmployeeID: "e1",
		Day:        at(0, 0),
		Status:     attendance.StatusAbsent,
	})
	require.NoError(t, err)

	svc := NewAttendanceService(clock, records, testRoster())
	resp, err := svc.CheckIn(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Len(t, records.records, 1)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	clock := &stepClock{now: at(17, 0)}
	svc := NewAttendanceService(clock, newFakeRecordRepo(), testRoster())

	_, err := svc.CheckOut(context.Background(), "e1")
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutFullDay(t *testing.T) {
	clock := &stepClock{now: at(9, 0)}
	svc := NewAttendanceService(clock, newFakeRecordRepo(), testRoster())

	_, err := svc.CheckIn(context.Background(), "e1")
	require.NoError(t, err)

	clock.now = at(17, 0)
	resp, err := svc.CheckOut(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, 8.0, resp.TotalHours)
}

func TestCheckOutShortDayBecomesHalfDay(t *testing.T) {
	clock := &stepClock{now: at(9, 0)}
	svc := NewAttendanceService(clock, newFakeRecordRepo(), testRoster())

	_, err := svc.CheckIn(context.Background(), "e1")
	require.NoError(t, err)

	clock.now = at(12, 30)
	resp, err := svc.CheckOut(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHalfDay, resp.Status)
	assert.Equal(t, 3.5, resp.TotalHours)
}

func TestCheckOutKeepsLateStatusOverFourHours(t *testing.T) {
	clock := &stepClock{now: at(9, 45)}
	svc := NewAttendanceService(clock, newFakeRecordRepo(), testRoster())

	_, err := svc.CheckIn(context.Background(), "e1")
	require.NoError(t, err)

	clock.now = at(17, 0)
	resp, err := svc.CheckOut(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Status)
	assert.Equal(t, 7.25, resp.TotalHours)
}

func TestCheckOutTwice(t *testing.T) {
	clock := &stepClock{now: at(9, 0)}
	svc := NewAttendanceService(clock, newFakeRecordRepo(), testRoster())

	_, err := svc.CheckIn(context.Background(), "e1")
	require.NoError(t, err)

	clock.now = at(17, 0)
	_, err = svc.CheckOut(context.Background(), "e1")
	require.NoError(t, err)

	clock.now = at(18, 0)
	_, err = svc.CheckOut(context.Background(), "e1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestGetTodayStatusNoRecord(t *testing.T) {
	clock := &stepClock{now: at(10, 0)}
	svc := NewAttendanceService(clock, newFakeRecordRepo(), testRoster())

	resp, err := svc.GetTodayStatus(context.Background(), "e1")

	require.NoError(t, err)
	assert.False(t, resp.CheckedIn)
	assert.False(t, resp.CheckedOut)
	assert.Equal(t, attendance.StatusAbsent, resp.Status)
}

func TestGetTodayStatusAfterCheckIn(t *testing.T) {
	clock := &stepClock{now: at(9, 20)}
	svc := NewAttendanceService(clock, newFakeRecordRepo(), testRoster())

	_, err := svc.CheckIn(context.Background(), "e1")
	require.NoError(t, err)

	resp, err := svc.GetTodayStatus(context.Background(), "e1")

	require.NoError(t, err)
	assert.True(t, resp.CheckedIn)
	assert.False(t, resp.CheckedOut)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	require.NotNil(t, resp.CheckInTime)
	assert.Equal(t, "2025-03-10 09:20:00", *resp.CheckInTime)
}

func TestGetMySummaryDefaultsToCurrentMonth(t *testing.T) {
	clock := &stepClock{now: at(10, 0)}
	records := newFakeRecordRepo()
	seedDay := func(day time.Time, status attendance.Status, hours float64) {
		checkIn := day.Add(9 * time.Hour)
		_, err := records.Create(context.Background(), attendance.Record{
			EmployeeID:  "e1",
			Day:         day,
			CheckInTime: &checkIn,
			Status:      status,
			TotalHours:  hours,
		})
		require.NoError(t, err)
	}
	seedDay(time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 8)
	seedDay(time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC), attendance.StatusLate, 7.25)
	// Previous month, must not count.
	seedDay(time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 8)

	svc := NewAttendanceService(clock, records, testRoster())
	resp, err := svc.GetMySummary(context.Background(), "e1", attendance.MonthFilter{})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Month)
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, 1, resp.Present)
	assert.Equal(t, 1, resp.Late)
	assert.Equal(t, 15.25, resp.TotalHours)
}

func TestGetEmployeeHistory(t *testing.T) {
	clock := &stepClock{now: at(10, 0)}
	records := newFakeRecordRepo()
	seedDay := func(employeeID string, day time.Time, status attendance.Status) {
		checkIn := day.Add(9 * time.Hour)
		_, err := records.Create(context.Background(), attendance.Record{
			EmployeeID:  employeeID,
			Day:         day,
			CheckInTime: &checkIn,
			Status:      status,
		})
		require.NoError(t, err)
	}
	seedDay("e1", time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), attendance.StatusPresent)
	seedDay("e1", time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC), attendance.StatusLate)
	seedDay("e1", time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), attendance.StatusPresent)
	// Another employee's records must not appear.
	seedDay("e2", time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), attendance.StatusPresent)

	svc := NewAttendanceService(clock, records, testRoster())

	month, year := 3, 2025
	resp, err := svc.GetEmployeeHistory(context.Background(), "EMP001", attendance.MonthFilter{Month: &month, Year: &year})

	require.NoError(t, err)
	require.Len(t, resp, 2)
	// Newest first.
	assert.Equal(t, "2025-03-04", resp[0].Date)
	assert.Equal(t, "2025-03-03", resp[1].Date)

	// Without a month filter everything comes back.
	resp, err = svc.GetEmployeeHistory(context.Background(), "EMP001", attendance.MonthFilter{})
	require.NoError(t, err)
	assert.Len(t, resp, 3)
}

func TestGetEmployeeHistoryUnknownCode(t *testing.T) {
	clock := &stepClock{now: at(10, 0)}
	svc := NewAttendanceService(clock, newFakeRecordRepo(), testRoster())

	_, err := svc.GetEmployeeHistory(context.Background(), "EMP999", attendance.MonthFilter{})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetMySummaryRejectsBadMonth(t *testing.T) {
	clock := &stepClock{now: at(10, 0)}
	svc := NewAttendanceService(clock, newFakeRecordRepo(), testRoster())

	month := 13
	_, err := svc.GetMySummary(context.Background(), "e1", attendance.MonthFilter{Month: &month})
	assert.Error(t, err)
}

func TestGetTodayBoard(t *testing.T) {
	clock := &stepClock{now: at(11, 0)}
	records := newFakeRecordRepo()
	checkIn1 := at(9, 10)
	checkIn2 := at(9, 50)
	checkOut1 := at(10, 45)
	_, err := records.Create(context.Background(), attendance.Record{
		EmployeeID: "e1", Day: at(0, 0), CheckInTime: &checkIn1, CheckOutTime: &checkOut1,
		Status: attendance.StatusHalfDay, TotalHours: 1.58,
	})
	require.NoError(t, err)
	_, err = records.Create(context.Background(), attendance.Record{
		EmployeeID: "e2", Day: at(0, 0), CheckInTime: &checkIn2,
		Status: attendance.StatusLate,
	})
	require.NoError(t, err)

	svc := NewAttendanceService(clock, records, testRoster())
	board, err := svc.GetTodayBoard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", board.Date)
	assert.Equal(t, 2, board.TotalEmployees) // managers excluded
	assert.Equal(t, 1, board.Present)        // late counts as present here
	assert.Equal(t, 1, board.Late)
	assert.Equal(t, 0, board.Absent)
	assert.Equal(t, 2, board.CheckedIn)
	assert.Equal(t, 1, board.CheckedOut)
	assert.Empty(t, board.AbsentEmployees)
	assert.Len(t, board.Records, 2)
}

func TestExport(t *testing.T) {
	clock := &stepClock{now: at(11, 0)}
	records := newFakeRecordRepo()
	checkIn := at(9, 5)
	checkOut := at(17, 10)
	name := "Arif Pratama"
	code := "EMP001"
	dept := "Engineering"
	_, err := records.Create(context.Background(), attendance.Record{
		EmployeeID: "e1", Day: at(0, 0), CheckInTime: &checkIn, CheckOutTime: &checkOut,
		Status: attendance.StatusPresent, TotalHours: 8.08,
		EmployeeName: &name, EmployeeCode: &code, Department: &dept,
	})
	require.NoError(t, err)

	svc := NewAttendanceService(clock, records, testRoster())
	rows, err := svc.Export(context.Background(), attendance.ExportFilter{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2025-03-10", rows[0].Date)
	assert.Equal(t, "EMP001", rows[0].EmployeeCode)
	assert.Equal(t, "2025-03-10 09:05:00", rows[0].CheckInTime)
	assert.Equal(t, "present", rows[0].Status)
	assert.Equal(t, 8.08, rows[0].TotalHours)
}

func TestExportNoRecords(t *testing.T) {
	clock := &stepClock{now: at(11, 0)}
	svc := NewAttendanceService(clock, newFakeRecordRepo(), testRoster())

	_, err := svc.Export(context.Background(), attendance.ExportFilter{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-31",
	})
	assert.ErrorIs(t, err, attendance.ErrNoRecordsFound)
}

func TestExportUnknownEmployeeCode(t *testing.T) {
	clock := &stepClock{now: at(11, 0)}
	svc := NewAttendanceService(clock, newFakeRecordRepo(), testRoster())

	code := "EMP999"
	_, err := svc.Export(context.Background(), attendance.ExportFilter{
		StartDate:    "2025-03-01",
		EndDate:      "2025-03-31",
		EmployeeCode: &code,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestExportRejectsReversedRange(t *testing.T) {
	clock := &stepClock{now: at(11, 0)}
	svc := NewAttendanceService(clock, newFakeRecordRepo(), testRoster())

	_, err := svc.Export(context.Background(), attendance.ExportFilter{
		StartDate: "2025-03-31",
		EndDate:   "2025-03-01",
	})
	assert.Error(t, err)
}
