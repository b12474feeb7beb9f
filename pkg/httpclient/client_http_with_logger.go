package httpclient

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/IsaacDSC/tvrelay/pkg/ctxlogger"
	"github.com/IsaacDSC/tvrelay/pkg/logs"
)

const (
	requestSampleSize  = 500
	responseSampleSize = 300
)

// LoggingTransport logs every outbound round trip with the logger found in the request context.
// Bodies are buffered so the caller still receives them intact.
type LoggingTransport struct {
	Transport http.RoundTripper
}

func NewLoggingTransport(transport http.RoundTripper) *LoggingTransport {
	if transport == nil {
		transport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		}
	}
	return &LoggingTransport{Transport: transport}
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := ctxlogger.GetLogger(req.Context())

	var reqBody []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			logger.Error("Failed to read outbound request body", "error", err)
			return nil, err
		}
		reqBody = b
		req.Body = io.NopCloser(bytes.NewReader(reqBody))
	}

	logger.Debug("HTTP client request started",
		"method", req.Method,
		"url", req.URL.String(),
		"content_type", req.Header.Get("Content-Type"),
		"body_sample", logs.TruncateBytes(reqBody, requestSampleSize),
	)

	resp, err := t.Transport.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error("HTTP client request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err.Error(),
			"elapsed_time", elapsed,
		)
		return nil, err
	}

	var respBody []byte
	if resp.Body != nil {
		b, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			logger.Error("Failed to read response body", "error", err)
			return nil, err
		}
		respBody = b
		resp.Body = io.NopCloser(bytes.NewReader(respBody))
	}

	logger.Debug("HTTP client request completed",
		"method", req.Method,
		"url", req.URL.String(),
		"status_code", resp.StatusCode,
		"body_sample", logs.TruncateBytes(respBody, responseSampleSize),
		"elapsed_time", elapsed,
	)

	return resp, nil
}

// NewHTTPClientWithLogging builds a client whose round trips are logged. A zero timeout
// leaves the client without a deadline of its own.
func NewHTTPClientWithLogging(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: NewLoggingTransport(nil),
		Timeout:   timeout,
	}
}
