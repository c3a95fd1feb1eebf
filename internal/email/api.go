// Exposes the email confirmation REST API of Callboard.

package email

import (
	"Callboard/internal/entity"
	"Callboard/pkg/log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Registers all of the REST API handlers related to internal package email onto the gin server.
func APIHandlers(router *gin.Engine, service Service, logger log.Logger) {
	router.POST("/api/email-confirm", confirm(service, logger))
}

// confirm returns a handler which always answers 200, the ok field carries the outcome.
func confirm(service Service, logger log.Logger) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		var req entity.EmailConfirmation
		if binderr := gctx.ShouldBindJSON(&req); binderr != nil {
			// Whatever did decode is kept, validation below reports the rest as missing
			logger.WithCtx(gctx).Warn().Err(binderr).Msg("Binding error occured with EmailConfirmation struct.")
		}
		gctx.JSON(http.StatusOK, service.Confirm(gctx, req))
	}
}
