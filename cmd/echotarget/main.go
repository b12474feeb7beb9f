package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/IsaacDSC/tvrelay/pkg/logs"
)

// Local downstream for manual testing of the relay.
//
// go run ./cmd/echotarget --port=3000 --status=200
func main() {
	port := flag.Int("port", 3000, "port to listen on")
	status := flag.Int("status", http.StatusOK, "status code to answer with")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /webhook", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			logs.Error("Failed to read body", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		logs.Info("Webhook received",
			"content_type", r.Header.Get("Content-Type"),
			"body", string(body),
		)

		w.WriteHeader(*status)
		fmt.Fprintf(w, "echo target answered %d", *status)
	})

	addr := fmt.Sprintf(":%d", *port)
	logs.Info("Echo target listening", "addr", addr, "status", *status)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logs.Error("Echo target failed", "error", err)
		os.Exit(1)
	}
}
