package store

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"tweetscore/internal/core/version"
	"tweetscore/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	SQL SQLConfig
	CH  CHConfig
}

// SQLConfig configures the relational backend and tracing
type SQLConfig struct {
	// URL is postgres://..., postgresql://..., sqlite://<path> or file:<path>
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot guard knobs, zero means defaults
	ConnectRetries int
	PingTimeout    time.Duration
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
	Role    string
	Tag     string
}

// ParseURL picks the dialect from a database url and returns the
// driver target (the url itself for postgres, a file path for sqlite)
func ParseURL(raw string) (Dialect, string, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return DialectPostgres, raw, nil
	case strings.HasPrefix(raw, "sqlite://"):
		p := strings.TrimPrefix(raw, "sqlite://")
		if i := strings.IndexByte(p, '?'); i >= 0 {
			p = p[:i]
		}
		if p == "" {
			return "", "", fmt.Errorf("store: sqlite url has no path: %q", raw)
		}
		if up, err := url.PathUnescape(p); err == nil {
			p = up
		}
		return DialectSQLite, p, nil
	case strings.HasPrefix(raw, "file:"):
		p := strings.TrimPrefix(raw, "file:")
		if i := strings.IndexByte(p, '?'); i >= 0 {
			p = p[:i]
		}
		if p == "" {
			return "", "", fmt.Errorf("store: file url has no path: %q", raw)
		}
		return DialectSQLite, p, nil
	}
	scheme := raw
	if i := strings.Index(raw, "://"); i >= 0 {
		scheme = raw[:i]
	}
	return "", "", fmt.Errorf("store: unsupported database url scheme %q", scheme)
}

// FromEnv reads DATABASE_URL, SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_* from root.
// DATABASE_URL is required; clickhouse is enabled only when its DBURL is set
func FromEnv(root config.Conf, role string) Config {
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	chURL := chCfg.MayString("DBURL", "")
	return Config{
		AppName: "tweetscore-" + role,
		SQL: SQLConfig{
			URL:            root.MustString("DATABASE_URL"),
			MaxConns:       int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs:    pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:         pgCfg.MayBool("LOG_SQL", false),
			ConnectRetries: pgCfg.MayInt("CONNECT_RETRIES", 0),
			PingTimeout:    pgCfg.MayDuration("PING_TIMEOUT", 0),
		},
		CH: CHConfig{
			Enabled: chURL != "",
			URL:     chURL,
			Role:    role,
			Tag:     version.Info(role).Version,
		},
	}
}
