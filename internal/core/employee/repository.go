package employee

import "context"

// Repository は従業員プロファイルの永続化を行うインターフェースです。
type Repository interface {
	// Upsert は name をキーとした置換挿入を行います。
	Upsert(ctx context.Context, employee *Employee) (*Employee, error)
	Delete(ctx context.Context, name string) error
	FindByName(ctx context.Context, name string) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
}
