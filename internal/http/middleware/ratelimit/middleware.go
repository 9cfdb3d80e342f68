package ratelimit

import (
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"yard-console/internal/logx"
)

// Middleware rejects clients whose key is over the configured rate.
type Middleware struct {
	logger  logx.Logger
	counter prometheus.Counter
	limiter Limiter
	reject  http.Handler
}

// New creates a Middleware. reject writes the 429 response body; when nil a
// plain-text body is written.
func New(logger logx.Logger, counter prometheus.Counter, limiter Limiter, reject http.Handler) *Middleware {
	if logger == nil {
		logger = logx.Nop()
	}
	if limiter == nil {
		limiter = NopLimiter{}
	}
	if reject == nil {
		reject = http.HandlerFunc(plainReject)
	}
	return &Middleware{
		logger:  logger,
		counter: counter,
		limiter: limiter,
		reject:  reject,
	}
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if m.limiter.Allow(ip) {
				next.ServeHTTP(w, r)
				return
			}

			if m.counter != nil {
				m.counter.Inc()
			}
			m.logger.Warn("rate limit exceeded",
				logx.String("ip", ip),
				logx.String("method", r.Method),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("Retry-After", "1")
			m.reject.ServeHTTP(w, r)
		})
	}
}

func plainReject(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

// clientIP keys buckets by the peer address. RealIP runs earlier in the
// chain, so proxies are already accounted for.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
