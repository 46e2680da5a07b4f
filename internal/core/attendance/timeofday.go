package attendance

import (
	"fmt"
	"math"
	"time"
)

const timeOfDayLayout = "15:04:05"

// TimeOfDay は "HH:MM:SS" 形式の壁時計時刻を表す値型です。
// チェックイン・チェックアウトの記録と経過時間の計算に使用します。
type TimeOfDay struct {
	hour   int
	minute int
	second int
}

// NewTimeOfDay は時刻から時分秒のみを取り出して TimeOfDay を生成します。
func NewTimeOfDay(t time.Time) TimeOfDay {
	return TimeOfDay{hour: t.Hour(), minute: t.Minute(), second: t.Second()}
}

// ParseTimeOfDay は "HH:MM:SS" 形式の文字列を解析します。
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	t, err := time.Parse(timeOfDayLayout, raw)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("attendance: parse time of day %q: %w", raw, err)
	}
	return NewTimeOfDay(t), nil
}

// String は "HH:MM:SS" 形式で返します。
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}

func (t TimeOfDay) seconds() int {
	return t.hour*3600 + t.minute*60 + t.second
}

// ElapsedSince は from から to までの経過時間を返します。
// to が from より数値的に小さい場合は日をまたいだものとして 24 時間を加えます。
func ElapsedSince(from, to TimeOfDay) time.Duration {
	diff := to.seconds() - from.seconds()
	if diff < 0 {
		diff += 24 * 60 * 60
	}
	return time.Duration(diff) * time.Second
}

// RoundHours は経過時間を小数第 2 位までの時間数に丸めます。
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
