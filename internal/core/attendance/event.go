package attendance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MajorEventAccessGranted は勤怠対象となる「入退室許可」イベント種別コードです。
const MajorEventAccessGranted = 5

// DeviceEvent は入退室デバイスから受信する生イベントです。
type DeviceEvent struct {
	IPAddress             string                `json:"ipAddress"`
	AccessControllerEvent AccessControllerEvent `json:"AccessControllerEvent"`
}

// AccessControllerEvent はデバイスイベントの本体部分です。
// Name は未登録カードなどの場合に空となります。
type AccessControllerEvent struct {
	Name           string `json:"name"`
	SerialNo       int64  `json:"serialNo"`
	MajorEventType int    `json:"majorEventType"`
}

// DeviceIdentity はブランチ解決に用いるデバイス識別子を返します。
// IP アドレスを優先し、空の場合はレガシーなシリアル番号へフォールバックします。
func (e *DeviceEvent) DeviceIdentity() string {
	if e.IPAddress != "" {
		return e.IPAddress
	}
	if e.AccessControllerEvent.SerialNo != 0 {
		return strconv.FormatInt(e.AccessControllerEvent.SerialNo, 10)
	}
	return ""
}

// ParseDeviceEvent はデバイスイベントの JSON ペイロードを厳密に解析します。
func ParseDeviceEvent(raw []byte) (*DeviceEvent, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedEvent)
	}

	var ev DeviceEvent
	if err := json.Unmarshal(trimmed, &ev); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	if ev.IPAddress == "" && ev.AccessControllerEvent.SerialNo == 0 {
		return nil, fmt.Errorf("%w: missing device identity", ErrMalformedEvent)
	}

	return &ev, nil
}
