package broadcast

import (
	"Callboard/internal/entity"
	"Callboard/internal/metrics"
	"Callboard/internal/test"
	"Callboard/pkg/log"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialViewer(t *testing.T, srvURL string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srvURL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWebSocketFanOut(t *testing.T) {
	service, _ := newTestService()
	router := test.NewRouter()
	APIHandlers(router, service, time.Minute, log.Nop())
	srv := httptest.NewServer(router)
	defer srv.Close()

	first := dialViewer(t, srv.URL)
	second := dialViewer(t, srv.URL)
	require.Eventually(t, func() bool { return service.Count() == 2 }, 2*time.Second, 10*time.Millisecond)

	event := entity.NewTranscriptEvent("", "I'd like to book a table")
	service.Publish(ctx, event)

	want, err := json.Marshal(event)
	require.NoError(t, err)
	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		messageType, payload, rderr := conn.ReadMessage()
		require.NoError(t, rderr)
		assert.Equal(t, websocket.TextMessage, messageType)
		assert.Equal(t, want, payload)
	}
}

func TestWebSocketIgnoresViewerMessages(t *testing.T) {
	service, _ := newTestService()
	router := test.NewRouter()
	APIHandlers(router, service, time.Minute, log.Nop())
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dialViewer(t, srv.URL)
	require.Eventually(t, func() bool { return service.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"hello"}`)))
	service.Publish(ctx, entity.NewStatusEvent("still here"))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(payload), "still here")
	assert.Equal(t, 1, service.Count())
}

func TestWebSocketDisconnectUnregisters(t *testing.T) {
	service, _ := newTestService()
	router := test.NewRouter()
	APIHandlers(router, service, time.Minute, log.Nop())
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dialViewer(t, srv.URL)
	require.Eventually(t, func() bool { return service.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return service.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestKeepaliveDropsSilentViewer(t *testing.T) {
	service := NewService(log.Nop(), metrics.NewCollector(), 50*time.Millisecond)
	router := test.NewRouter()
	APIHandlers(router, service, 150*time.Millisecond, log.Nop())
	srv := httptest.NewServer(router)
	defer srv.Close()

	// Reading makes gorilla answer the pings with pongs, which extends the server read deadline.
	reader := dialViewer(t, srv.URL)
	messages := make(chan []byte, 8)
	go func() {
		for {
			_, payload, err := reader.ReadMessage()
			if err != nil {
				return
			}
			messages <- payload
		}
	}()
	// Never reads, so never pongs.
	dialViewer(t, srv.URL)
	require.Eventually(t, func() bool { return service.Count() == 2 }, 2*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool { return service.Count() == 1 }, 2*time.Second, 10*time.Millisecond)
	// Several read timeouts later the reading viewer is still there.
	time.Sleep(600 * time.Millisecond)
	assert.Equal(t, 1, service.Count())

	service.Publish(ctx, entity.NewStatusEvent("still connected"))
	select {
	case payload := <-messages:
		assert.Contains(t, string(payload), "still connected")
	case <-time.After(2 * time.Second):
		t.Fatal("reading viewer received nothing")
	}
}
