package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blogpessoal/middleware"
	"blogpessoal/models"
	"blogpessoal/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newFeedServer(t *testing.T, hub *services.HubService, origins []string) *httptest.Server {
	t.Helper()
	wh := NewWebSocketHandler(hub, origins)

	r := gin.New()
	r.GET("/postagens/ws", func(c *gin.Context) {
		c.Set(middleware.ContextLogin, "a@x.com")
		c.Next()
	}, wh.HandleWebSocket)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/postagens/ws"
}

func TestHandleWebSocket_DeliversEvents(t *testing.T) {
	hub := services.NewHubService()
	defer hub.Stop()
	srv := newFeedServer(t, hub, nil)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration finishes after the handshake, so keep publishing until
	// the subscriber sees an event.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				hub.BroadcastToAll(models.EventPostCreated, map[string]uint{"id": 7})
			}
		}
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type string          `json:"type"`
		Data map[string]uint `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, models.EventPostCreated, msg.Type)
	assert.Equal(t, uint(7), msg.Data["id"])
}

func TestHandleWebSocket_StopClosesConnection(t *testing.T) {
	hub := services.NewHubService()
	srv := newFeedServer(t, hub, nil)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	require.NoError(t, err)
	defer conn.Close()

	hub.Stop()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNoStatusReceived), "got %v", err)
}

func TestHandleWebSocket_RejectsForeignOrigin(t *testing.T) {
	hub := services.NewHubService()
	defer hub.Stop()
	srv := newFeedServer(t, hub, []string{"https://blog.example"})

	header := http.Header{}
	header.Set("Origin", "https://evil.example")
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	header.Set("Origin", "https://blog.example")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), header)
	require.NoError(t, err)
	conn.Close()
}

func TestOriginChecker(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/postagens/ws", nil)

	assert.True(t, originChecker(nil)(req))
	assert.True(t, originChecker([]string{"*"})(req))

	restricted := originChecker([]string{" https://blog.example "})
	assert.True(t, restricted(req), "requests without an Origin are not cross-site")

	req.Header.Set("Origin", "https://blog.example")
	assert.True(t, restricted(req))
	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, restricted(req))
}
