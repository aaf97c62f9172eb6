package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "tweetscore/internal/platform/errors"
	"tweetscore/internal/platform/logger"
	phttp "tweetscore/internal/platform/net/http"
	pnet "tweetscore/internal/platform/net"
)

// RecoverJSON converts panics into {"detail":"Internal Server Error"} and logs the stack
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Str("request_id", reqID).
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			status, body := perr.HTTP(perr.PanicErrf("panic: %v", v))
			phttp.JSON(w, status, body)
		}()
		next.ServeHTTP(w, r)
	})
}
