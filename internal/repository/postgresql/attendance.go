package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type recordRepository struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) attendance.RecordRepository {
	return &recordRepository{db: db}
}

const recordColumns = `id, employee_id, day, check_in_time, check_out_time, status, total_hours, created_at, updated_at`

// UpsertCheckIn implements attendance.RecordRepository.
//
// The unique (employee_id, day) index makes this an atomic claim: a fresh row
// is inserted, a seeded row without a check-in is taken over, and a row that
// already has a check-in rejects the conflict update, surfacing as no rows.
func (r *recordRepository) UpsertCheckIn(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, day, check_in_time, status, total_hours)
		VALUES ($1, $2, $3, $4, $5, 0)
		ON CONFLICT (employee_id, day) DO UPDATE
		SET check_in_time = EXCLUDED.check_in_time,
		    status = EXCLUDED.status,
		    updated_at = NOW()
		WHERE attendance_records.check_in_time IS NULL
		RETURNING id, total_hours, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		rec.EmployeeID,
		rec.Day,
		rec.CheckInTime,
		rec.Status,
	).Scan(&rec.ID, &rec.TotalHours, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to upsert check-in: %w", err)
	}

	return rec, nil
}

// CompleteCheckOut implements attendance.RecordRepository.
func (r *recordRepository) CompleteCheckOut(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET check_out_time = $2, status = $3, total_hours = $4, updated_at = NOW()
		WHERE id = $1 AND check_out_time IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, rec.ID, rec.CheckOutTime, rec.Status, rec.TotalHours).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAlreadyCheckedOut
		}
		return fmt.Errorf("failed to complete check-out: %w", err)
	}

	return nil
}

// GetByEmployeeAndDay implements attendance.RecordRepository.
func (r *recordRepository) GetByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND day >= $2 AND day <= $3
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, dayStart, dayEnd).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Day, &rec.CheckInTime, &rec.CheckOutTime,
		&rec.Status, &rec.TotalHours, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for this day yet
		}
		return nil, fmt.Errorf("failed to get record by employee and day: %w", err)
	}

	return &rec, nil
}

// List implements attendance.RecordRepository.
func (r *recordRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	var sb strings.Builder
	sb.WriteString(`
		SELECT a.id, a.employee_id, a.day, a.check_in_time, a.check_out_time,
		       a.status, a.total_hours, a.created_at, a.updated_at,
		       e.full_name, e.employee_code, e.department
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE 1=1
	`)

	args := []interface{}{}
	argIndex := 1

	if filter.EmployeeID != nil {
		sb.WriteString(fmt.Sprintf(" AND a.employee_id = $%d", argIndex))
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND a.day >= $%d", argIndex))
		args = append(args, *filter.From)
		argIndex++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND a.day <= $%d", argIndex))
		args = append(args, *filter.To)
		argIndex++
	}
	if filter.Status != nil {
		sb.WriteString(fmt.Sprintf(" AND a.status = $%d", argIndex))
		args = append(args, string(*filter.Status))
		argIndex++
	}

	sb.WriteString(" ORDER BY a.day DESC")
	if filter.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", argIndex))
		args = append(args, filter.Limit)
	}

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Day, &rec.CheckInTime, &rec.CheckOutTime,
			&rec.Status, &rec.TotalHours, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.EmployeeCode, &rec.Department,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// Create implements attendance.RecordRepository.
func (r *recordRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, day, check_in_time, check_out_time, status, total_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.Day, rec.CheckInTime, rec.CheckOutTime, rec.Status, rec.TotalHours,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}
