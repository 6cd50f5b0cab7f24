package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
)

const (
	reloadRequestLimit = 10
	reloadWindow       = time.Minute
)

// withReloadRateLimit caps reload requests per client IP. Every reload
// re-reads and re-parses the declaration.
func withReloadRateLimit() func(http.Handler) http.Handler {
	return httprate.Limit(
		reloadRequestLimit,
		reloadWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", strconv.Itoa(int(reloadWindow.Seconds())))
			http.Error(w, "too many reload requests", http.StatusTooManyRequests)
		}),
	)
}
