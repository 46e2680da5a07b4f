package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ahsan757/attendance/internal/core/attendance"
	pgdb "github.com/ahsan757/attendance/internal/platform/db/postgres"
)

const attendanceUniqueViolationCode = "23505"

// AttendanceRepository は PostgreSQL を利用した勤怠レジャーの実装です。
// (branch_name, work_date, employee_name) の複合主キーがパーティション内の
// 従業員一意性を保証し、同時チェックインの競合は先勝ちで解決されます。
type AttendanceRepository struct {
	pool pgdb.Queryer
}

// NewAttendanceRepository は AttendanceRepository を生成します。
func NewAttendanceRepository(pool pgdb.Queryer) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// Find は該当パーティションの従業員レコードを取得します。
func (r *AttendanceRepository) Find(ctx context.Context, branchName string, date time.Time, employeeName string) (*attendance.Record, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT branch_name, work_date, employee_name,
               check_in::text, check_out::text,
               total_hours, present, device_identity
          FROM attendance_records
         WHERE branch_name = $1 AND work_date = $2::date AND employee_name = $3
         LIMIT 1
    `, branchName, date, employeeName)

	return scanAttendanceRecord(row)
}

// Insert は新規レコードを挿入します。同一キーの既存レコードがある場合は
// ErrRecordAlreadyExists を返し、既存レコードは変更しません。
func (r *AttendanceRepository) Insert(ctx context.Context, record *attendance.Record) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        INSERT INTO attendance_records
               (branch_name, work_date, employee_name, check_in, total_hours, present, device_identity)
        VALUES ($1, $2::date, $3, $4::time, $5, $6, $7)
        ON CONFLICT (branch_name, work_date, employee_name) DO NOTHING
    `,
		record.BranchName,
		record.WorkDate,
		record.EmployeeName,
		record.CheckIn.String(),
		record.TotalHours,
		record.Present,
		record.DeviceIdentity,
	)
	if err != nil {
		return translateAttendancePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordAlreadyExists
	}
	return nil
}

// SetCheckOut は未チェックアウトのレコードに限りチェックアウトを記録します。
// check_out IS NULL のガードにより並行する要求は一度しか成功しません。
func (r *AttendanceRepository) SetCheckOut(ctx context.Context, branchName string, date time.Time, employeeName string, checkOut attendance.TimeOfDay, totalHours float64) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE attendance_records
           SET check_out = $4::time,
               total_hours = $5
         WHERE branch_name = $1 AND work_date = $2::date AND employee_name = $3
           AND check_out IS NULL
    `, branchName, date, employeeName, checkOut.String(), totalHours)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListPartition は該当パーティションの全レコードを従業員名順で返します。
func (r *AttendanceRepository) ListPartition(ctx context.Context, branchName string, date time.Time) ([]*attendance.Record, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT branch_name, work_date, employee_name,
               check_in::text, check_out::text,
               total_hours, present, device_identity
          FROM attendance_records
         WHERE branch_name = $1 AND work_date = $2::date
         ORDER BY employee_name
    `, branchName, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*attendance.Record
	for rows.Next() {
		record, err := scanAttendanceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func scanAttendanceRecord(row pgx.Row) (*attendance.Record, error) {
	var (
		branchName     string
		workDate       time.Time
		employeeName   string
		checkInRaw     string
		checkOutRaw    sql.NullString
		totalHours     float64
		present        bool
		deviceIdentity string
	)

	if err := row.Scan(
		&branchName,
		&workDate,
		&employeeName,
		&checkInRaw,
		&checkOutRaw,
		&totalHours,
		&present,
		&deviceIdentity,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrRecordNotFound
		}
		return nil, err
	}

	checkIn, err := attendance.ParseTimeOfDay(checkInRaw)
	if err != nil {
		return nil, err
	}

	var checkOut *attendance.TimeOfDay
	if checkOutRaw.Valid {
		parsed, err := attendance.ParseTimeOfDay(checkOutRaw.String)
		if err != nil {
			return nil, err
		}
		checkOut = &parsed
	}

	return &attendance.Record{
		BranchName:     branchName,
		WorkDate:       workDate,
		EmployeeName:   employeeName,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		TotalHours:     totalHours,
		Present:        present,
		DeviceIdentity: deviceIdentity,
	}, nil
}

func translateAttendancePgError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == attendanceUniqueViolationCode {
		return attendance.ErrRecordAlreadyExists
	}

	return err
}
