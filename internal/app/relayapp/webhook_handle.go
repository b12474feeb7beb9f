package relayapp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/IsaacDSC/tvrelay/internal/classifier"
	"github.com/IsaacDSC/tvrelay/internal/domain"
	"github.com/IsaacDSC/tvrelay/pkg/ctxlogger"
	"github.com/IsaacDSC/tvrelay/pkg/httpadapter"
	"github.com/IsaacDSC/tvrelay/pkg/logs"
)

const inboundSampleSize = 500

type Forwarder interface {
	Forward(ctx context.Context, decision domain.ForwardDecision) (domain.ForwardResult, error)
}

type InsightsRecorder interface {
	Forwarded(ctx context.Context, input domain.ForwardInsight) error
}

type ForwardedResponse struct {
	OK            bool `json:"ok"`
	ForwardStatus int  `json:"forwardStatus"`
}

type FailedResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Webhook relays POST /webhook to the forwarder. insights may be nil.
//
// The body is read as raw text whatever Content-Type the sender declared. The downstream
// status is returned as data: the relay answers 200 for any downstream status and 500 only
// when no response came back.
func Webhook(fwd Forwarder, insights InsightsRecorder) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /webhook",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			logger := ctxlogger.GetLogger(r.Context())

			defer r.Body.Close()
			raw, err := io.ReadAll(r.Body)
			if err != nil {
				logger.Error("Error reading webhook body", "error", err)
				writeFailure(w, logger, fmt.Errorf("read body: %w", err))
				return
			}

			payload := domain.InboundPayload{Raw: string(raw), ContentType: r.Header.Get("Content-Type")}
			if trimmed := strings.TrimSpace(payload.Raw); trimmed != "" {
				logger.Info("Webhook received",
					"declared_content_type", payload.ContentType,
					"body_sample", logs.Truncate(trimmed, inboundSampleSize),
				)
			}

			decision := classifier.ClassifyPayload(payload)
			logger.Info("Forwarding webhook", "mode", decision.Mode, "content_type", decision.ContentType)

			// The outbound call runs to completion even if the sender hangs up.
			ctx := context.WithoutCancel(r.Context())

			started := time.Now()
			result, err := fwd.Forward(ctx, decision)

			if insights != nil {
				insight := domain.NewForwardInsight(ctxlogger.GetRequestID(ctx), decision, started, result, err)
				if er := insights.Forwarded(ctx, insight); er != nil {
					logger.Warn("Failed to record forward insight", "error", er)
				}
			}

			if err != nil {
				logger.Error("Error forwarding webhook", "error", err)
				writeFailure(w, logger, err)
				return
			}

			logger.Info("Downstream response",
				"forward_status", result.Status,
				"body_sample", result.BodySample,
				"elapsed_time", result.Elapsed,
			)

			if err := httpadapter.WriteJSON(w, http.StatusOK, ForwardedResponse{OK: true, ForwardStatus: result.Status}); err != nil {
				logger.Error("Error writing response", "error", err)
			}
		},
	}
}

func writeFailure(w http.ResponseWriter, logger *logs.Logger, cause error) {
	msg := cause.Error()
	if msg == "" {
		msg = "forward failed"
	}
	if err := httpadapter.WriteJSON(w, http.StatusInternalServerError, FailedResponse{OK: false, Error: msg}); err != nil {
		logger.Error("Error writing response", "error", err)
	}
}
