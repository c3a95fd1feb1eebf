// Exposes the FAQ REST API of Callboard.

package faq

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Registers all of the REST API handlers related to internal package faq onto the gin server.
func APIHandlers(router *gin.Engine, service Service) {
	router.GET("/api/faq", func(gctx *gin.Context) {
		gctx.JSON(http.StatusOK, service.FAQ(gctx))
	})
}
