package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/IsaacDSC/tvrelay/pkg/ctxlogger"
	"github.com/IsaacDSC/tvrelay/pkg/httpadapter"
	"github.com/IsaacDSC/tvrelay/pkg/logs"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// requestCounter only correlates log lines; nothing branches on its value.
var requestCounter atomic.Uint64

// NextRequestID returns "<n>-<uuid>" where n grows monotonically for the process lifetime.
func NextRequestID() string {
	return strconv.FormatUint(requestCounter.Add(1), 10) + "-" + uuid.NewString()
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if !s.wroteHeader {
		s.status = http.StatusOK
		s.wroteHeader = true
	}
	return s.ResponseWriter.Write(b)
}

// LoggerMiddleware tags each request with an id, stores a request logger in the context and
// logs the request on the way in and its status on the way out.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// The caller's id is kept for reference only; request_id is always ours so it stays unique.
		requestID := NextRequestID()
		w.Header().Set(RequestIDHeader, requestID)

		logger := logs.With(
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
		)
		if callerID := r.Header.Get(RequestIDHeader); callerID != "" {
			logger = logger.With("caller_request_id", callerID)
		}
		logger.Info("IN",
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
			"headers", r.Header,
		)

		ctx := ctxlogger.WithLogger(r.Context(), logger)
		ctx = ctxlogger.WithRequestID(ctx, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.Info("OUT", "status", rec.status, "elapsed_time", time.Since(start))
	})
}

// RecoverMiddleware turns a panic in a handler into the relay's failure shape instead of
// dropping the connection.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w}
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler {
				panic(p)
			}

			ctxlogger.GetLogger(r.Context()).Error("Recovered from panic", "panic", fmt.Sprint(p))
			if rec.wroteHeader {
				return
			}
			httpadapter.WriteJSON(rec, http.StatusInternalServerError, map[string]any{
				"ok":    false,
				"error": fmt.Sprintf("internal error: %v", p),
			})
		}()

		next.ServeHTTP(rec, r)
	})
}
