// Exposes the viewer WebSocket channel of Callboard.

package broadcast

import (
	"Callboard/pkg/log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Viewers never send anything meaningful, anything larger than this closes the connection.
const maxViewerMessageBytes = 4096

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dashboards are unauthenticated and may be served from any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Registers the WebSocket handler of internal package broadcast onto the gin server.
// readTimeout bounds the silence allowed between pongs, 0 disables it.
func APIHandlers(router *gin.Engine, service Service, readTimeout time.Duration, logger log.Logger) {
	router.GET("/ws", wshandler(service, readTimeout, logger))
}

func wshandler(service Service, readTimeout time.Duration, logger log.Logger) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		conn, upgerr := upgrader.Upgrade(gctx.Writer, gctx.Request, nil)
		if upgerr != nil {
			// Upgrade has already answered with an HTTP error
			logger.WithCtx(gctx).Warn().Err(upgerr).Msg("WebSocket upgrade failed")
			return
		}

		conn.SetReadLimit(maxViewerMessageBytes)
		if readTimeout > 0 {
			conn.SetReadDeadline(time.Now().Add(readTimeout))
			conn.SetPongHandler(func(string) error {
				return conn.SetReadDeadline(time.Now().Add(readTimeout))
			})
		}

		client := service.Register(gctx, conn)

		// One-way channel: viewer messages are read and discarded, the read error is the disconnect signal.
		for {
			if _, _, rderr := conn.NextReader(); rderr != nil {
				if websocket.IsUnexpectedCloseError(rderr, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.WithCtx(gctx).Debug().Err(rderr).Str("viewer", client.ID).Msg("Viewer connection dropped")
				}
				break
			}
		}
		service.Unregister(gctx, client)
	}
}
