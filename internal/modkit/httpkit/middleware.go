package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"tweetscore/internal/platform/config"
	"tweetscore/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	SlowRequest time.Duration
}

// StackOptionsFrom reads CORS_ORIGINS, TIMEOUT and SLOW_MS from an api scoped Conf
func StackOptionsFrom(cfg config.Conf) StackOptions {
	return StackOptions{
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
		Timeout:     cfg.MayDuration("TIMEOUT", 30*time.Second),
		SlowRequest: time.Duration(cfg.MayInt("SLOW_MS", 1000)) * time.Millisecond,
	}
}

// CommonStack returns the baseline middleware slice for the api root
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// correlation first so every later layer sees the id
		middleware.RequestID(),
		middleware.RealIP(),

		middleware.AccessLogZerolog(middleware.AccessLogOptions{
			Slow: o.SlowRequest,
			Skip: []string{"/health"},
		}),
		middleware.RecoverJSON,

		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(timeout),
	}
}
