package report

import "time"

// RowDateLayout はレポート行の日付書式です。
const RowDateLayout = "02-01-2006"

// Row はレジャーレコードを平坦化したレポート 1 行です。
type Row struct {
	Date           string
	Day            string
	Branch         string
	Employee       string
	CheckIn        string
	CheckOut       string
	Hours          float64
	Status         string
	DeviceIdentity string
}

// EmployeeSummary は従業員ごとの勤務時間と出勤日数の集計です。
type EmployeeSummary struct {
	Employee    string
	Hours       float64
	DaysPresent int
}

// MonthlyEmployeeSummary は月次の従業員集計に出勤率を加えたものです。
type MonthlyEmployeeSummary struct {
	Employee          string
	Hours             float64
	DaysPresent       int
	AttendancePercent float64
}

// BranchSummary はブランチごとの勤務時間と人数の集計です。
type BranchSummary struct {
	Branch    string
	Hours     float64
	Employees int
}

// DailyReport は 1 日分の生の行リストです。
type DailyReport struct {
	Date         time.Time
	BranchFilter string
	Rows         []Row
}

// WeeklyReport は直近 7 日分の行リストと集計です。
type WeeklyReport struct {
	Start     time.Time
	End       time.Time
	Rows      []Row
	Employees []EmployeeSummary
	Branches  []BranchSummary
}

// MonthlyReport は暦月全体の行リストと出勤率付き集計です。
type MonthlyReport struct {
	Year      int
	Month     time.Month
	Rows      []Row
	Employees []MonthlyEmployeeSummary
	Branches  []BranchSummary
}

// Format はレンダリング形式を表します。
type Format string

const (
	FormatExcel Format = "excel"
	FormatCSV   Format = "csv"
)

// File はレンダリング済みのレポートファイルです。
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Renderer はレポートを具体的なファイル形式へ書き出す外部ポートです。
type Renderer interface {
	RenderDaily(report *DailyReport, format Format) (*File, error)
	RenderWeekly(report *WeeklyReport, format Format) (*File, error)
	RenderMonthly(report *MonthlyReport, format Format) (*File, error)
}
