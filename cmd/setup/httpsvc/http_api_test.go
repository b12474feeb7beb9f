package httpsvc

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IsaacDSC/tvrelay/internal/app/relayapp"
	"github.com/IsaacDSC/tvrelay/internal/cfg"
	"github.com/IsaacDSC/tvrelay/internal/forwarder"
	"github.com/IsaacDSC/tvrelay/pkg/httpadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_Routes(t *testing.T) {
	var gotBody, gotContentType string
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer downstream.Close()

	env := cfg.Config{Port: 4000, Forward: cfg.Forward{TargetURL: downstream.URL}}
	relay := httptest.NewServer(NewHandler(env, []httpadapter.HttpHandle{
		relayapp.Webhook(forwarder.New(env.Forward.TargetURL), nil),
	}))
	defer relay.Close()

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(relay.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"ok":true,"target":"`+downstream.URL+`"}`, string(body))
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})

	t.Run("webhook", func(t *testing.T) {
		resp, err := http.Post(relay.URL+"/webhook", "text/plain", strings.NewReader(`{"ticker":"AAPL","action":"buy"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"ok":true,"forwardStatus":200}`, string(body))
		assert.Equal(t, `{"ticker":"AAPL","action":"buy"}`, gotBody)
		assert.Equal(t, "application/json", gotContentType)
	})

	t.Run("unknown path", func(t *testing.T) {
		resp, err := http.Get(relay.URL + "/nope")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("insights not routed without a store", func(t *testing.T) {
		resp, err := http.Get(relay.URL + "/api/v1/insights")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("wrong method", func(t *testing.T) {
		resp, err := http.Get(relay.URL + "/webhook")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}
