package forwarder

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/IsaacDSC/tvrelay/internal/classifier"
	"github.com/IsaacDSC/tvrelay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type received struct {
	method      string
	contentType string
	body        string
}

type serverResponse struct {
	statusCode int
	body       string
}

func createTestServer(t *testing.T, response serverResponse, got *received, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("Failed to read request body: %v", err)
		}
		*got = received{method: r.Method, contentType: r.Header.Get("Content-Type"), body: string(b)}

		w.WriteHeader(response.statusCode)
		io.WriteString(w, response.body)
	}))
}

func TestForwarder_Forward(t *testing.T) {
	tests := []struct {
		name            string
		raw             string
		serverResponse  serverResponse
		wantContentType string
		wantBody        string
	}{
		{
			name:            "json alert downstream 200",
			raw:             `{"ticker":"AAPL","action":"buy"}`,
			serverResponse:  serverResponse{statusCode: http.StatusOK, body: `{"accepted":true}`},
			wantContentType: "application/json",
			wantBody:        `{"ticker":"AAPL","action":"buy"}`,
		},
		{
			name:            "text alert downstream 503",
			raw:             "alert: price crossed 100",
			serverResponse:  serverResponse{statusCode: http.StatusServiceUnavailable, body: "maintenance"},
			wantContentType: "text/plain; charset=utf-8",
			wantBody:        "alert: price crossed 100",
		},
		{
			name:            "malformed json downstream 404",
			raw:             "{invalid json",
			serverResponse:  serverResponse{statusCode: http.StatusNotFound, body: "no route"},
			wantContentType: "text/plain; charset=utf-8",
			wantBody:        "{invalid json",
		},
		{
			name:            "empty body downstream 500",
			raw:             "",
			serverResponse:  serverResponse{statusCode: http.StatusInternalServerError},
			wantContentType: "text/plain; charset=utf-8",
			wantBody:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got   received
				calls atomic.Int32
			)
			server := createTestServer(t, tt.serverResponse, &got, &calls)
			defer server.Close()

			f := New(server.URL)
			result, err := f.Forward(context.Background(), classifier.Classify(tt.raw))

			require.NoError(t, err, "downstream status codes are not errors")
			assert.Equal(t, tt.serverResponse.statusCode, result.Status)
			assert.Equal(t, tt.serverResponse.body, result.BodySample)
			assert.Equal(t, int32(1), calls.Load(), "exactly one outbound call")
			assert.Equal(t, http.MethodPost, got.method)
			assert.Equal(t, tt.wantContentType, got.contentType)
			assert.Equal(t, tt.wantBody, got.body)
		})
	}
}

func TestForwarder_Forward_ResponseSampleBounded(t *testing.T) {
	var (
		got   received
		calls atomic.Int32
	)
	long := strings.Repeat("é", 1000)
	server := createTestServer(t, serverResponse{statusCode: http.StatusOK, body: long}, &got, &calls)
	defer server.Close()

	result, err := New(server.URL).Forward(context.Background(), classifier.Classify("x"))

	require.NoError(t, err)
	assert.Equal(t, domain.ResponseSampleSize, len([]rune(result.BodySample)))
	assert.True(t, strings.HasPrefix(long, result.BodySample))
}

func TestForwarder_Forward_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := server.URL
	server.Close()

	result, err := New(target).Forward(context.Background(), classifier.Classify(`{"a":1}`))

	require.Error(t, err)
	assert.NotEmpty(t, err.Error())
	assert.Contains(t, err.Error(), "forward request")
	assert.Zero(t, result.Status)
}

func TestForwarder_Forward_InvalidTarget(t *testing.T) {
	_, err := New("http://[::1]:namedport").Forward(context.Background(), classifier.Classify("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create request")
}

func TestForwarder_WithTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := New(server.URL, WithTimeout(20*time.Millisecond)).Forward(context.Background(), classifier.Classify("x"))

	assert.Error(t, err)
}

func TestForwarder_WithClient(t *testing.T) {
	var seen atomic.Bool
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen.Store(true)
		return &http.Response{
			StatusCode: http.StatusAccepted,
			Body:       io.NopCloser(strings.NewReader("queued")),
			Header:     make(http.Header),
			Request:    r,
		}, nil
	})}

	f := New("http://fsm.local/webhook", WithClient(client))
	result, err := f.Forward(context.Background(), classifier.Classify("x"))

	require.NoError(t, err)
	assert.True(t, seen.Load())
	assert.Equal(t, http.StatusAccepted, result.Status)
	assert.Equal(t, "queued", result.BodySample)
	assert.Equal(t, "http://fsm.local/webhook", f.Target())
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestForwarder_WithTimeout_OptionOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tests := []struct {
		name string
		opts func(shared *http.Client) []Option
	}{
		{
			name: "timeout before client",
			opts: func(shared *http.Client) []Option {
				return []Option{WithTimeout(20 * time.Millisecond), WithClient(shared)}
			},
		},
		{
			name: "client before timeout",
			opts: func(shared *http.Client) []Option {
				return []Option{WithClient(shared), WithTimeout(20 * time.Millisecond)}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shared := &http.Client{}

			_, err := New(server.URL, tt.opts(shared)...).Forward(context.Background(), classifier.Classify("x"))

			assert.Error(t, err)
			assert.Zero(t, shared.Timeout, "the caller's client must not be modified")
		})
	}
}

// truncatedBodyServer announces a body longer than what it sends, then drops the connection.
func truncatedBodyServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)

		conn, buf, err := w.(http.Hijacker).Hijack()
		if err != nil {
			t.Errorf("Failed to hijack connection: %v", err)
			return
		}
		defer conn.Close()

		buf.WriteString("HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 100\r\n\r\npartial")
		buf.Flush()
	}))
}

func TestForwarder_Forward_BodyCutMidway(t *testing.T) {
	server := truncatedBodyServer(t)
	defer server.Close()

	t.Run("plain client", func(t *testing.T) {
		result, err := New(server.URL, WithClient(&http.Client{})).Forward(context.Background(), classifier.Classify("x"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "read response")
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		assert.Zero(t, result.Status)
	})

	t.Run("logging client", func(t *testing.T) {
		result, err := New(server.URL).Forward(context.Background(), classifier.Classify("x"))

		require.Error(t, err)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		assert.Zero(t, result.Status)
	})
}
