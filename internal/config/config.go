package config

import (
	"fmt"
	"os"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	RedisAddr string // Redis接続先（週次レポートのタスクキュー）

	GraphQLURL string        // ジョブがAPIを叩くGraphQLエンドポイント
	JobTimeout time.Duration // ジョブHTTPクライアントのタイムアウト

	// ジョブの追記先ログファイル
	HeartbeatLogPath string
	LowStockLogPath  string
	ReportLogPath    string
	RemindersLogPath string

	// 各ジョブのcron式（標準5フィールド）
	HeartbeatCron string
	LowStockCron  string
	RemindersCron string
	ReportCron    string
}

// Loadは環境変数から設定を組み立てる。未設定の項目は既定値で埋める。
func Load() (Config, error) {
	timeout, err := parseDuration("JOB_HTTP_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		RedisAddr: getenv("REDIS_ADDR", "localhost:6379"),

		GraphQLURL: getenv("GRAPHQL_URL", "http://localhost:8080/graphql"),
		JobTimeout: timeout,

		HeartbeatLogPath: getenv("HEARTBEAT_LOG_PATH", "/tmp/crm_heartbeat_log.txt"),
		LowStockLogPath:  getenv("LOW_STOCK_LOG_PATH", "/tmp/low_stock_updates_log.txt"),
		ReportLogPath:    getenv("REPORT_LOG_PATH", "/tmp/crm_report_log.txt"),
		RemindersLogPath: getenv("REMINDERS_LOG_PATH", "/tmp/order_reminders_log.txt"),

		HeartbeatCron: getenv("HEARTBEAT_CRON", "*/5 * * * *"),
		LowStockCron:  getenv("LOW_STOCK_CRON", "0 */12 * * *"),
		RemindersCron: getenv("ORDER_REMINDERS_CRON", "0 8 * * *"),
		ReportCron:    getenv("WEEKLY_REPORT_CRON", "0 6 * * 1"),
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func parseDuration(key string, def string) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		v = def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}
