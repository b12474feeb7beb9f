package insightsapp

import (
	"context"
	"net/http"

	"github.com/IsaacDSC/tvrelay/internal/domain"
	"github.com/IsaacDSC/tvrelay/pkg/ctxlogger"
	"github.com/IsaacDSC/tvrelay/pkg/httpadapter"
)

type InsightsStore interface {
	GetAll(ctx context.Context) (domain.Metrics, error)
}

func GetInsightsHandle(store InsightsStore) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/insights",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			logger := ctxlogger.GetLogger(r.Context())

			metrics, err := store.GetAll(r.Context())
			if err != nil {
				logger.Error("Error loading insights", "error", err)
				httpadapter.WriteJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": err.Error()})
				return
			}

			if err := httpadapter.WriteJSON(w, http.StatusOK, metrics.Insights()); err != nil {
				logger.Error("Error writing insights response", "error", err)
			}
		},
	}
}
