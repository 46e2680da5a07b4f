package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ahsan757/attendance/internal/core/employee"
	pgdb "github.com/ahsan757/attendance/internal/platform/db/postgres"
)

// EmployeeRepository は PostgreSQL を利用した従業員プロファイルの実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Upsert は name をキーにプロファイルを置換挿入します。
func (r *EmployeeRepository) Upsert(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (name, hourly_rate, position, joining_date, status)
        VALUES ($1, $2::numeric, $3, $4::date, $5)
        ON CONFLICT (name)
        DO UPDATE SET hourly_rate = EXCLUDED.hourly_rate,
                      position = EXCLUDED.position,
                      status = EXCLUDED.status
        RETURNING name, hourly_rate::text, position, joining_date, status
    `,
		e.Name,
		e.HourlyRate.String(),
		e.Position,
		e.JoiningDate,
		string(e.Status),
	)

	return scanEmployee(row)
}

// Delete はプロファイルを削除します。勤怠履歴には触れません。
func (r *EmployeeRepository) Delete(ctx context.Context, name string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM employees WHERE name = $1`, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// FindByName は名前でプロファイルを取得します。
func (r *EmployeeRepository) FindByName(ctx context.Context, name string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT name, hourly_rate::text, position, joining_date, status
          FROM employees
         WHERE name = $1
         LIMIT 1
    `, name)

	return scanEmployee(row)
}

// List は全プロファイルを名前順で返します。
func (r *EmployeeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT name, hourly_rate::text, position, joining_date, status
          FROM employees
         ORDER BY name
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		name        string
		rateText    string
		position    string
		joiningDate time.Time
		status      string
	)

	if err := row.Scan(&name, &rateText, &position, &joiningDate, &status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	rate, err := decimal.NewFromString(rateText)
	if err != nil {
		return nil, err
	}

	return &employee.Employee{
		Name:        name,
		HourlyRate:  rate,
		Position:    position,
		JoiningDate: joiningDate,
		Status:      employee.Status(status),
	}, nil
}
