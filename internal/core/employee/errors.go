package employee

import "errors"

var (
	// ErrEmployeeNotFound は従業員が存在しない場合に返却されます。
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrInvalidName は従業員名が不正な場合に返却されます。
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidHourlyRate は時給が負の場合に返却されます。
	ErrInvalidHourlyRate = errors.New("invalid hourly rate")
	// ErrInvalidStatus はステータスが不正な場合に返却されます。
	ErrInvalidStatus = errors.New("invalid status")
)
