package module

import (
	"time"

	"tweetscore/internal/platform/config"
)

// Options configures the reconcile module
type Options struct {
	Timeout time.Duration
}

// FromConfig reads CORE_RECONCILE_* settings
func FromConfig(cfg config.Conf) Options {
	rc := cfg.Prefix("CORE_RECONCILE_")
	return Options{
		Timeout: rc.MayDuration("TIMEOUT", 0),
	}
}
