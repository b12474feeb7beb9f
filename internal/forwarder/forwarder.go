package forwarder

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/IsaacDSC/tvrelay/internal/domain"
	"github.com/IsaacDSC/tvrelay/pkg/httpclient"
	"github.com/IsaacDSC/tvrelay/pkg/intertime"
	"github.com/IsaacDSC/tvrelay/pkg/logs"
)

// Forwarder posts classified bodies to a single target. One attempt per call, no retries.
type Forwarder struct {
	client  *http.Client
	target  string
	timeout time.Duration
}

type Option func(*Forwarder)

// WithClient replaces the logging client, mainly for tests.
func WithClient(c *http.Client) Option {
	return func(f *Forwarder) {
		f.client = c
	}
}

// WithTimeout sets a client deadline, whatever the option order. Zero keeps the client's own.
func WithTimeout(d time.Duration) Option {
	return func(f *Forwarder) {
		f.timeout = d
	}
}

func New(target string, opts ...Option) *Forwarder {
	f := &Forwarder{
		client: httpclient.NewHTTPClientWithLogging(0),
		target: target,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.timeout > 0 {
		// Copy so a shared client such as http.DefaultClient is left alone.
		c := *f.client
		c.Timeout = f.timeout
		f.client = &c
	}
	return f
}

func (f *Forwarder) Target() string {
	return f.target
}

// Forward sends decision downstream. Any status code is a successful round trip; only a
// failure to get a response at all is returned as an error.
func (f *Forwarder) Forward(ctx context.Context, decision domain.ForwardDecision) (domain.ForwardResult, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.target, strings.NewReader(decision.Body))
	if err != nil {
		return domain.ForwardResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", decision.ContentType)

	// #nosec G107 -- the target comes from process configuration, not from the request
	resp, err := f.client.Do(req)
	if err != nil {
		return domain.ForwardResult{}, fmt.Errorf("forward request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.ForwardResult{}, fmt.Errorf("read response: %w", err)
	}

	return domain.ForwardResult{
		Status:     resp.StatusCode,
		BodySample: logs.TruncateBytes(body, domain.ResponseSampleSize),
		Elapsed:    intertime.Duration(time.Since(start)),
	}, nil
}
