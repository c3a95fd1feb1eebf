// Context middleware is used in gin to populate request context with unique ID.
// This ID is picked up by log.Logger.WithCtx so every line of a request shares it.

package globalcontext

import (
	"Callboard/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey = "ReqID"

// This middleware will be used to populate every incoming request's context with an unique UUID.
// This middleware will be used as a global one.
func UniqueIDMiddleware(logger log.Logger) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		rqID, uuiderr := uuid.NewRandom()
		if uuiderr != nil {
			logger.Error().Err(uuiderr).Msg("Error during generating UUID for ReqID.")
		} else {
			gctx.Set(RequestIDKey, rqID.String())
		}
		gctx.Next()
	}
}
