package branch

import "context"

// Repository はブランチディレクトリの永続化を行うインターフェースです。
type Repository interface {
	// Upsert は device_ip をキーとした置換挿入を行います。
	// 同一 device_ip への並行呼び出しは最後の書き込みが勝ちます。
	Upsert(ctx context.Context, branch *Branch) (*Branch, error)
	Delete(ctx context.Context, deviceIP string) error
	FindByDeviceIP(ctx context.Context, deviceIP string) (*Branch, error)
	FindByDeviceSerial(ctx context.Context, deviceSerial int64) (*Branch, error)
	List(ctx context.Context) ([]*Branch, error)
}
