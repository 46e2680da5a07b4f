package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ahsan757/attendance/internal/core/branch"
	pgdb "github.com/ahsan757/attendance/internal/platform/db/postgres"
)

// BranchRepository は PostgreSQL を利用したブランチディレクトリの実装です。
type BranchRepository struct {
	pool pgdb.Queryer
}

// NewBranchRepository は BranchRepository を生成します。
func NewBranchRepository(pool pgdb.Queryer) *BranchRepository {
	return &BranchRepository{pool: pool}
}

// Upsert は device_ip をキーに置換挿入します。最後の書き込みが勝ちます。
func (r *BranchRepository) Upsert(ctx context.Context, b *branch.Branch) (*branch.Branch, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO branches (branch_name, device_ip, device_serial)
        VALUES ($1, $2, $3)
        ON CONFLICT (device_ip)
        DO UPDATE SET branch_name = EXCLUDED.branch_name,
                      device_serial = EXCLUDED.device_serial
        RETURNING branch_name, device_ip, device_serial
    `, b.BranchName, b.DeviceIP, b.DeviceSerial)

	upserted, err := scanBranch(row)
	if err != nil {
		return nil, err
	}
	return upserted, nil
}

// Delete は device_ip をキーにブランチを削除します。
func (r *BranchRepository) Delete(ctx context.Context, deviceIP string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM branches WHERE device_ip = $1`, deviceIP)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}
	return nil
}

// FindByDeviceIP は device_ip でブランチを取得します。
func (r *BranchRepository) FindByDeviceIP(ctx context.Context, deviceIP string) (*branch.Branch, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT branch_name, device_ip, device_serial
          FROM branches
         WHERE device_ip = $1
         LIMIT 1
    `, deviceIP)

	return scanBranch(row)
}

// FindByDeviceSerial はレガシーなシリアル番号でブランチを取得します。
func (r *BranchRepository) FindByDeviceSerial(ctx context.Context, deviceSerial int64) (*branch.Branch, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT branch_name, device_ip, device_serial
          FROM branches
         WHERE device_serial = $1
         LIMIT 1
    `, deviceSerial)

	return scanBranch(row)
}

// List は全ブランチをブランチ名順で返します。
func (r *BranchRepository) List(ctx context.Context) ([]*branch.Branch, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT branch_name, device_ip, device_serial
          FROM branches
         ORDER BY branch_name
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []*branch.Branch
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return branches, nil
}

func scanBranch(row pgx.Row) (*branch.Branch, error) {
	var (
		branchName   string
		deviceIP     string
		deviceSerial int64
	)

	if err := row.Scan(&branchName, &deviceIP, &deviceSerial); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, branch.ErrBranchNotFound
		}
		return nil, err
	}

	return &branch.Branch{
		BranchName:   branchName,
		DeviceIP:     deviceIP,
		DeviceSerial: deviceSerial,
	}, nil
}
