package attendance

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// CHECK-IN / CHECK-OUT DTOs
// ========================================

type CheckInResponse struct {
	Status      Status `json:"status"`
	CheckInTime string `json:"check_in_time"`
}

type CheckOutResponse struct {
	Status       Status  `json:"status"`
	CheckOutTime string  `json:"check_out_time"`
	TotalHours   float64 `json:"total_hours"`
}

type TodayStatusResponse struct {
	CheckedIn    bool    `json:"checked_in"`
	CheckedOut   bool    `json:"checked_out"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	Status       Status  `json:"status"`
	TotalHours   float64 `json:"total_hours"`
}

// ========================================
// LIST / SUMMARY DTOs
// ========================================

type RecordResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Department   *string `json:"department,omitempty"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	Status       Status  `json:"status"`
	TotalHours   float64 `json:"total_hours"`
}

// MonthFilter selects a calendar month. Both fields optional; when either is
// missing the current month applies (history queries skip the range entirely).
type MonthFilter struct {
	Month *int `json:"month,omitempty"`
	Year  *int `json:"year,omitempty"`
}

func (f *MonthFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if f.Year != nil && *f.Year < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter is the manager-side record listing filter.
type ListFilter struct {
	EmployeeCode *string `json:"employee_code,omitempty"`
	Date         *string `json:"date,omitempty"` // YYYY-MM-DD
	Month        *int    `json:"month,omitempty"`
	Year         *int    `json:"year,omitempty"`
	Status       *Status `json:"status,omitempty"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeCode != nil && *f.EmployeeCode != "" && !validator.IsValidEmployeeCode(*f.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must look like EMP001",
		})
	}
	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if f.Year != nil && *f.Year < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive number",
		})
	}
	if f.Status != nil && !f.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, half-day",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SummaryResponse struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	Summary
}

type OrgSummaryResponse struct {
	Month        int                       `json:"month"`
	Year         int                       `json:"year"`
	TotalRecords int                       `json:"total_records"`
	Summary
	ByDepartment map[string]StatusCounts   `json:"by_department"`
	ByEmployee   map[string]EmployeeCounts `json:"by_employee"`
}

// ========================================
// TODAY BOARD (manager)
// ========================================

// EmployeeInfo is the identity subset exposed on manager views. Nothing else
// from the roster row leaves the service.
type EmployeeInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
	Department   string `json:"department"`
}

type TodayBoardResponse struct {
	Date            string           `json:"date"`
	TotalEmployees  int              `json:"total_employees"`
	Present         int              `json:"present"`
	Absent          int              `json:"absent"`
	Late            int              `json:"late"`
	CheckedIn       int              `json:"checked_in"`
	CheckedOut      int              `json:"checked_out"`
	AbsentEmployees []EmployeeInfo   `json:"absent_employees"`
	Records         []RecordResponse `json:"records"`
}

// ========================================
// EXPORT DTOs
// ========================================

type ExportFilter struct {
	StartDate    string  `json:"start_date"` // YYYY-MM-DD
	EndDate      string  `json:"end_date"`   // YYYY-MM-DD
	EmployeeCode *string `json:"employee_code,omitempty"`
}

func (f *ExportFilter) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(f.StartDate)
	if validator.IsEmpty(f.StartDate) || !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(f.EndDate)
	if validator.IsEmpty(f.EndDate) || !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	if f.EmployeeCode != nil && *f.EmployeeCode != "" && !validator.IsValidEmployeeCode(*f.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must look like EMP001",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExportRow is one line of the tabular export, already formatted.
type ExportRow struct {
	Date         string
	EmployeeCode string
	Name         string
	Department   string
	CheckInTime  string
	CheckOutTime string
	Status       string
	TotalHours   float64
}
