package report

import "errors"

var (
	// ErrNoData は対象期間にレジャーレコードが存在しない場合に返却されます。
	ErrNoData = errors.New("report: no data")
	// ErrInvalidFormat は未対応のレンダリング形式が指定された場合に返却されます。
	ErrInvalidFormat = errors.New("report: invalid format")
	// ErrInvalidMonth は年月の指定が不正な場合に返却されます。
	ErrInvalidMonth = errors.New("report: invalid month")
)
