package branch

import "errors"

var (
	// ErrBranchNotFound はブランチが存在しない場合に返却されます。
	ErrBranchNotFound = errors.New("branch not found")
	// ErrInvalidBranchName はブランチ名が不正な場合に返却されます。
	ErrInvalidBranchName = errors.New("invalid branch name")
	// ErrInvalidDeviceIP はデバイス IP が不正な場合に返却されます。
	ErrInvalidDeviceIP = errors.New("invalid device ip")
)
