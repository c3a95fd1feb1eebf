package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
)

// CorrelationHeader carries the correlation ID back to the caller.
const CorrelationHeader = "X-Correlation-ID"

// This middleware will be used to populate every incoming request's context with an unique CorrelationID.
// Upstream event sources may send their own ID, which is kept so a call can be traced across hops.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(gctx *gin.Context) {
		correlationID := gctx.GetHeader(CorrelationHeader)
		if correlationID == "" {
			correlationID = xid.New().String()
		}
		gctx.Set("correlation_id", correlationID)
		gctx.Writer.Header().Set(CorrelationHeader, correlationID)
		gctx.Next()
	}
}
