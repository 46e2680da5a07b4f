// Package notify は確定した勤怠イベントを Slack Incoming Webhook へ送信します。
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ahsan757/attendance/internal/core/attendance"
)

const postTimeout = 5 * time.Second

// Options は SlackNotifier の送信先と通知対象を指定します。
type Options struct {
	WebhookURL       string
	Channel          string
	NotifyOnCheckIn  bool
	NotifyOnCheckOut bool
}

// SlackNotifier は attendance.Notifier の Slack 実装です。
// 通知の失敗はログに残すだけで、イベント処理の結果には影響しません。
type SlackNotifier struct {
	client *http.Client
	opts   Options
}

// NewSlackNotifier は SlackNotifier を生成します。client が nil の場合は
// タイムアウト付きの既定クライアントを使用します。
func NewSlackNotifier(client *http.Client, opts Options) *SlackNotifier {
	if client == nil {
		client = &http.Client{Timeout: postTimeout}
	}
	return &SlackNotifier{client: client, opts: opts}
}

// NotifyCheckIn はチェックイン確定を通知します。
func (n *SlackNotifier) NotifyCheckIn(ctx context.Context, employeeName, branchName string, at attendance.TimeOfDay) {
	if !n.opts.NotifyOnCheckIn {
		return
	}
	n.post(ctx, fmt.Sprintf("✅ %s checked in at %s [%s]", employeeName, at.String(), branchName))
}

// NotifyCheckOut はチェックアウト確定を通知します。
func (n *SlackNotifier) NotifyCheckOut(ctx context.Context, employeeName, branchName string, at attendance.TimeOfDay, totalHours float64) {
	if !n.opts.NotifyOnCheckOut {
		return
	}
	n.post(ctx, fmt.Sprintf("👋 %s checked out at %s [%s] after %.2f hours", employeeName, at.String(), branchName, totalHours))
}

func (n *SlackNotifier) post(ctx context.Context, text string) {
	payload := map[string]string{"text": text}
	if n.opts.Channel != "" {
		payload["channel"] = n.opts.Channel
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("notify: marshal slack payload: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.opts.WebhookURL, bytes.NewReader(body))
	if err != nil {
		log.Printf("notify: build slack request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("notify: post to slack: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("notify: slack responded %d", resp.StatusCode)
	}
}
