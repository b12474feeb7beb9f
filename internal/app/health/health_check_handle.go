package health

import (
	"net/http"

	"github.com/IsaacDSC/tvrelay/pkg/ctxlogger"
	"github.com/IsaacDSC/tvrelay/pkg/httpadapter"
)

type Response struct {
	OK     bool   `json:"ok"`
	Target string `json:"target"`
}

func GetHealthCheckHandler(target string) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /health",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			if err := httpadapter.WriteJSON(w, http.StatusOK, Response{OK: true, Target: target}); err != nil {
				ctxlogger.GetLogger(r.Context()).Error("Error writing health response", "error", err)
			}
		},
	}
}
