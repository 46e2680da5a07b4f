package salary

import "errors"

var (
	// ErrInvalidDateRange は開始日が終了日より後の場合に返却されます。
	ErrInvalidDateRange = errors.New("salary: invalid date range")
	// ErrInvalidEmployeeName は従業員名が空の場合に返却されます。
	ErrInvalidEmployeeName = errors.New("salary: invalid employee name")
)
