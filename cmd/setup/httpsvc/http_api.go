package httpsvc

import (
	"net/http"
	"time"

	"github.com/IsaacDSC/tvrelay/cmd/setup/middleware"
	"github.com/IsaacDSC/tvrelay/internal/app/health"
	"github.com/IsaacDSC/tvrelay/internal/cfg"
	"github.com/IsaacDSC/tvrelay/pkg/httpadapter"
	"github.com/IsaacDSC/tvrelay/pkg/logs"
)

// NewHandler builds the routed, middleware-wrapped handler. The health route is always added.
func NewHandler(env cfg.Config, routes []httpadapter.HttpHandle) http.Handler {
	mux := http.NewServeMux()

	routes = append(routes, health.GetHealthCheckHandler(env.Forward.TargetURL))
	httpadapter.Register(mux, routes...)

	return middleware.LoggerMiddleware(middleware.RecoverMiddleware(mux))
}

// StartHttpServer serves in the background and returns the server for shutdown.
// No WriteTimeout: a webhook response waits for the downstream call.
func StartHttpServer(env cfg.Config, routes []httpadapter.HttpHandle) *http.Server {
	server := &http.Server{
		Addr:              env.Port.String(),
		Handler:           NewHandler(env, routes),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logs.Info("TV relay listening",
		"addr", "http://localhost"+env.Port.String(),
		"target", env.Forward.TargetURL,
	)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Error("HTTP server error", "error", err)
		}
	}()

	return server
}
