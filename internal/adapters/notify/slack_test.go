package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ahsan757/attendance/internal/core/attendance"
)

func mustTime(t *testing.T, value string) attendance.TimeOfDay {
	t.Helper()
	parsed, err := attendance.ParseTimeOfDay(value)
	if err != nil {
		t.Fatalf("parse time of day: %v", err)
	}
	return parsed
}

func TestNotifyCheckIn_PostsWebhook(t *testing.T) {
	t.Parallel()

	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("invalid webhook payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewSlackNotifier(srv.Client(), Options{
		WebhookURL:      srv.URL,
		Channel:         "#attendance",
		NotifyOnCheckIn: true,
	})

	n.NotifyCheckIn(context.Background(), "Ali Raza", "Karachi_Clifton", mustTime(t, "09:00:00"))

	if got["text"] != "✅ Ali Raza checked in at 09:00:00 [Karachi_Clifton]" {
		t.Errorf("unexpected message text: %q", got["text"])
	}
	if got["channel"] != "#attendance" {
		t.Errorf("unexpected channel: %q", got["channel"])
	}
}

func TestNotifyCheckOut_IncludesHours(t *testing.T) {
	t.Parallel()

	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewSlackNotifier(srv.Client(), Options{
		WebhookURL:       srv.URL,
		NotifyOnCheckOut: true,
	})

	n.NotifyCheckOut(context.Background(), "Ali Raza", "Karachi_Clifton", mustTime(t, "17:30:00"), 8.5)

	if got["text"] != "👋 Ali Raza checked out at 17:30:00 [Karachi_Clifton] after 8.50 hours" {
		t.Errorf("unexpected message text: %q", got["text"])
	}
}

func TestNotify_DisabledTogglesSkipPost(t *testing.T) {
	t.Parallel()

	posted := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posted = true
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewSlackNotifier(srv.Client(), Options{WebhookURL: srv.URL})

	n.NotifyCheckIn(context.Background(), "Ali Raza", "Karachi_Clifton", mustTime(t, "09:00:00"))
	n.NotifyCheckOut(context.Background(), "Ali Raza", "Karachi_Clifton", mustTime(t, "17:30:00"), 8.5)

	if posted {
		t.Error("notifier must not post when toggles are disabled")
	}
}

func TestNotify_ServerFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewSlackNotifier(srv.Client(), Options{WebhookURL: srv.URL, NotifyOnCheckIn: true})

	// 失敗してもパニックやエラー伝播が起きないことだけを確認する。
	n.NotifyCheckIn(context.Background(), "Ali Raza", "Karachi_Clifton", mustTime(t, "09:00:00"))
}
