package domain

import (
	"time"

	"github.com/IsaacDSC/tvrelay/pkg/intertime"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)

// ResponseSampleSize bounds how much of the downstream body is kept for diagnostics.
const ResponseSampleSize = 300

type ForwardMode string

const (
	ForwardModeJSON ForwardMode = "json"
	ForwardModeText ForwardMode = "text"
)

// InboundPayload is the body exactly as received. ContentType is what the sender declared
// and is never used to decide how the body is forwarded.
type InboundPayload struct {
	Raw         string
	ContentType string
}

// ForwardDecision is what goes downstream: Body is either the raw text untouched or the
// trimmed text that parsed as JSON.
type ForwardDecision struct {
	Mode        ForwardMode
	ContentType string
	Body        string
}

type ForwardResult struct {
	Status     int                `json:"status"`
	BodySample string             `json:"body_sample"`
	Elapsed    intertime.Duration `json:"elapsed"`
}

// ForwardInsight records one forwarding attempt. ACK is true whenever a response came back,
// whatever its status code.
type ForwardInsight struct {
	RequestID      string      `json:"request_id"`
	Mode           ForwardMode `json:"mode"`
	Status         int         `json:"status,omitempty"`
	ACK            bool        `json:"ack"`
	Error          string      `json:"error,omitempty"`
	TimeStarted    time.Time   `json:"time_started"`
	TimeEnded      time.Time   `json:"time_ended"`
	TimeDurationMs int64       `json:"time_duration_ms"`
}

func NewForwardInsight(requestID string, decision ForwardDecision, started time.Time, result ForwardResult, err error) ForwardInsight {
	ended := time.Now().UTC()
	insight := ForwardInsight{
		RequestID:      requestID,
		Mode:           decision.Mode,
		Status:         result.Status,
		ACK:            err == nil,
		TimeStarted:    started.UTC(),
		TimeEnded:      ended,
		TimeDurationMs: ended.Sub(started).Milliseconds(),
	}
	if err != nil {
		insight.Error = err.Error()
	}
	return insight
}
