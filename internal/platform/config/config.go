package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone               = "Asia/Karachi"
	defaultDuplicateWindowMinutes = 3
	defaultReportFormat           = "excel"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Attendance    AttendanceConfig    `yaml:"attendance"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Reports       ReportsConfig       `yaml:"reports"`
}

// ServerConfig は HTTP サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// AttendanceConfig は勤怠レジャーのタイムゾーンと重複抑止ウィンドウに関する設定です。
type AttendanceConfig struct {
	Timezone               string         `yaml:"timezone"`
	DuplicateWindowMinutes int            `yaml:"duplicate_window_minutes"`
	Location               *time.Location `yaml:"-"`
	DuplicateWindow        time.Duration  `yaml:"-"`
}

// NotificationsConfig は Slack 通知に関する設定です。
type NotificationsConfig struct {
	SlackEnabled     bool   `yaml:"slack_enabled"`
	SlackWebhookURL  string `yaml:"slack_webhook_url"`
	SlackChannel     string `yaml:"slack_channel"`
	NotifyOnCheckIn  bool   `yaml:"notify_on_checkin"`
	NotifyOnCheckOut bool   `yaml:"notify_on_checkout"`
}

// ReportsConfig はレポート生成の既定値に関する設定です。
type ReportsConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	if err := c.Database.validateAndNormalize(); err != nil {
		return err
	}

	if err := c.Attendance.validateAndNormalize(); err != nil {
		return err
	}

	if err := c.Notifications.validate(); err != nil {
		return err
	}

	return c.Reports.validateAndNormalize()
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func (a *AttendanceConfig) validateAndNormalize() error {
	if a.Timezone == "" {
		a.Timezone = defaultTimezone
	}

	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return fmt.Errorf("config: attendance.timezone: %w", err)
	}
	a.Location = loc

	if a.DuplicateWindowMinutes < 0 {
		return fmt.Errorf("config: attendance.duplicate_window_minutes must not be negative")
	}
	if a.DuplicateWindowMinutes == 0 {
		a.DuplicateWindowMinutes = defaultDuplicateWindowMinutes
	}
	a.DuplicateWindow = time.Duration(a.DuplicateWindowMinutes) * time.Minute

	return nil
}

func (n *NotificationsConfig) validate() error {
	if n.SlackEnabled && n.SlackWebhookURL == "" {
		return fmt.Errorf("config: notifications.slack_webhook_url must be set when slack is enabled")
	}
	return nil
}

func (r *ReportsConfig) validateAndNormalize() error {
	if r.DefaultFormat == "" {
		r.DefaultFormat = defaultReportFormat
	}
	if r.DefaultFormat != "excel" && r.DefaultFormat != "csv" {
		return fmt.Errorf("config: reports.default_format must be excel or csv")
	}
	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}
