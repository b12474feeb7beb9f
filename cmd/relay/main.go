package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IsaacDSC/tvrelay/cmd/setup/httpsvc"
	"github.com/IsaacDSC/tvrelay/internal/app/insightsapp"
	"github.com/IsaacDSC/tvrelay/internal/app/relayapp"
	"github.com/IsaacDSC/tvrelay/internal/cfg"
	"github.com/IsaacDSC/tvrelay/internal/forwarder"
	"github.com/IsaacDSC/tvrelay/internal/storests"
	"github.com/IsaacDSC/tvrelay/pkg/httpadapter"
	"github.com/IsaacDSC/tvrelay/pkg/logs"
	"github.com/redis/go-redis/v9"
)

func main() {
	env, err := cfg.Load()
	if err != nil {
		logs.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logs.SetDefault(logs.New(
		logs.WithLevel(logs.ParseLevel(env.Log.Level)),
		logs.WithJSONFormat(env.Log.Format != "text"),
	))

	ctx := context.Background()
	fwd := forwarder.New(env.Forward.TargetURL, forwarder.WithTimeout(env.Forward.Timeout.Std()))

	var (
		routes      []httpadapter.HttpHandle
		insights    relayapp.InsightsRecorder
		cacheClient *redis.Client
	)

	if env.InsightsEnabled() {
		cacheClient = redis.NewClient(&redis.Options{Addr: env.Cache.CacheAddr})
		if err := cacheClient.Ping(ctx).Err(); err != nil {
			// Insights are optional; the relay keeps working without redis.
			logs.Warn("Forward insights disabled, redis unreachable", "addr", env.Cache.CacheAddr, "error", err)
			cacheClient.Close()
			cacheClient = nil
		} else {
			store := storests.NewStore(cacheClient)
			insights = store
			routes = append(routes, insightsapp.GetInsightsHandle(store))
		}
	}

	routes = append(routes, relayapp.Webhook(fwd, insights))

	server := httpsvc.StartHttpServer(env, routes)

	waitForShutdown(server, cacheClient, env.ShutdownTimeout.Std())
}

func waitForShutdown(server *http.Server, cacheClient *redis.Client, timeout time.Duration) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logs.Info("Shutting down servers...", "signal", sig.String())
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logs.Error("HTTP server forced to shutdown", "error", err)
	}

	if cacheClient != nil {
		if err := cacheClient.Close(); err != nil {
			logs.Error("Error closing redis client", "error", err)
		}
	}

	logs.Info("All servers shutdown complete", "elapsed_time", time.Since(start))
}
