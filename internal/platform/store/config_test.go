package store

import (
	"testing"
	"time"

	"tweetscore/internal/platform/config"
	kit "tweetscore/internal/platform/testkit"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite:///tmp/tweets.db")
	t.Setenv("SERVICE_PGSQL_MAX_CONNS", "9")
	t.Setenv("SERVICE_PGSQL_LOG_SQL", "true")
	t.Setenv("SERVICE_PGSQL_PING_TIMEOUT", "3s")
	t.Setenv("SERVICE_CLICKHOUSE_DBURL", "")

	cfg := FromEnv(config.New(), "reconcile")
	if cfg.AppName != "tweetscore-reconcile" {
		t.Fatalf("app name = %q", cfg.AppName)
	}
	if cfg.SQL.URL != "sqlite:///tmp/tweets.db" || cfg.SQL.MaxConns != 9 || !cfg.SQL.LogSQL {
		t.Fatalf("sql = %+v", cfg.SQL)
	}
	if cfg.SQL.SlowQueryMs != 500 || cfg.SQL.PingTimeout != 3*time.Second {
		t.Fatalf("sql defaults = %+v", cfg.SQL)
	}
	if cfg.CH.Enabled {
		t.Fatalf("clickhouse should stay off without a dburl")
	}

	t.Setenv("SERVICE_CLICKHOUSE_DBURL", "clickhouse://ch:9000/default")
	cfg = FromEnv(config.New(), "api")
	if !cfg.CH.Enabled || cfg.CH.URL != "clickhouse://ch:9000/default" || cfg.CH.Role != "api" {
		t.Fatalf("ch = %+v", cfg.CH)
	}
}

func TestFromEnv_DatabaseURLRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	kit.MustPanic(t, func() { _ = FromEnv(config.New(), "api") })
}
