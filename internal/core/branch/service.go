package branch

import (
	"context"
	"errors"
	"strings"
)

// Service はブランチディレクトリのユースケースをまとめます。
type Service struct {
	repo Repository
}

// UseCase はブランチディレクトリの公開インターフェースです。
type UseCase interface {
	UpsertBranch(ctx context.Context, in UpsertBranchInput) (*Branch, error)
	ListBranches(ctx context.Context) ([]*Branch, error)
	DeleteBranch(ctx context.Context, deviceIP string) error
	Resolve(ctx context.Context, deviceIP string, deviceSerial int64) (string, error)
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// UpsertBranchInput はブランチ登録・更新時の入力です。
type UpsertBranchInput struct {
	BranchName   string
	DeviceIP     string
	DeviceSerial int64
}

// UpsertBranch はブランチを device_ip キーで登録または更新します。
func (s *Service) UpsertBranch(ctx context.Context, in UpsertBranchInput) (*Branch, error) {
	name := strings.TrimSpace(in.BranchName)
	if name == "" {
		return nil, ErrInvalidBranchName
	}

	deviceIP := strings.TrimSpace(in.DeviceIP)
	if deviceIP == "" {
		return nil, ErrInvalidDeviceIP
	}

	return s.repo.Upsert(ctx, &Branch{
		BranchName:   name,
		DeviceIP:     deviceIP,
		DeviceSerial: in.DeviceSerial,
	})
}

// ListBranches は既知の全ブランチを返します。
func (s *Service) ListBranches(ctx context.Context) ([]*Branch, error) {
	return s.repo.List(ctx)
}

// DeleteBranch は device_ip をキーにブランチを削除します。
func (s *Service) DeleteBranch(ctx context.Context, deviceIP string) error {
	trimmed := strings.TrimSpace(deviceIP)
	if trimmed == "" {
		return ErrInvalidDeviceIP
	}
	return s.repo.Delete(ctx, trimmed)
}

// Resolve はデバイス識別子をブランチ名へ解決します。IP アドレスを優先し、
// 見つからなければシリアル番号へフォールバックします。未解決のデバイスは
// 番兵ブランチ名 UnknownBranch に解決され、エラーにはなりません。
func (s *Service) Resolve(ctx context.Context, deviceIP string, deviceSerial int64) (string, error) {
	if ip := strings.TrimSpace(deviceIP); ip != "" {
		found, err := s.repo.FindByDeviceIP(ctx, ip)
		switch {
		case err == nil:
			return found.BranchName, nil
		case !errors.Is(err, ErrBranchNotFound):
			return "", err
		}
	}

	if deviceSerial != 0 {
		found, err := s.repo.FindByDeviceSerial(ctx, deviceSerial)
		switch {
		case err == nil:
			return found.BranchName, nil
		case !errors.Is(err, ErrBranchNotFound):
			return "", err
		}
	}

	return UnknownBranch, nil
}
