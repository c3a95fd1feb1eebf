// Exposes the voice-agent session URL REST API of Callboard.

package signedurl

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Registers all of the REST API handlers related to internal package signedurl onto the gin server.
func APIHandlers(router *gin.Engine, service Service) {
	router.GET("/ws-signed-url", func(gctx *gin.Context) {
		gctx.JSON(http.StatusOK, service.SignedURL(gctx))
	})
}
