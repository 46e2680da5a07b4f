package attendance

import "errors"

var (
	// ErrMalformedEvent はイベントペイロードが解析できない場合に返却されます。
	ErrMalformedEvent = errors.New("attendance: malformed event payload")
	// ErrRecordNotFound は該当パーティションに記録が存在しない場合に返却されます。
	ErrRecordNotFound = errors.New("attendance: record not found")
	// ErrRecordAlreadyExists は同一キーの記録が既に存在する場合に返却されます。
	ErrRecordAlreadyExists = errors.New("attendance: record already exists")
)
