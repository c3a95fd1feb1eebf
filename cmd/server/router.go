// List of all endpoints being served by Callboard can be found here.

package main

import (
	"Callboard/internal/broadcast"
	"Callboard/internal/call"
	"Callboard/internal/email"
	"Callboard/internal/entity"
	"Callboard/internal/errors"
	"Callboard/internal/faq"
	"Callboard/internal/metrics"
	"Callboard/internal/signedurl"
	"Callboard/internal/static"
	"Callboard/pkg/globalcontext"
	"Callboard/pkg/log"
	"Callboard/pkg/middlewares"
	"Callboard/pkg/remote"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// NewServer builds the gin engine with every middleware and route of Callboard.
func NewServer(cfg entity.Config, hub broadcast.Service, collector *metrics.Collector, logger log.Logger) *gin.Engine {
	server := gin.New()

	// Request IDs first so the access log and every handler log line carry them.
	server.Use(globalcontext.UniqueIDMiddleware(logger))
	server.Use(middlewares.CorrelationMiddleware())
	// Forcing gin to use custom Logger instead of the default one.
	server.Use(log.LoggerGinExtension(logger))
	server.Use(recovery(logger))
	server.Use(middlewares.CORSMiddleware(cfg.CORSOrigin))

	Router(server, cfg, hub, collector, logger)
	return server
}

// Router registers the REST API groups and paths of every internal package.
func Router(router *gin.Engine, cfg entity.Config, hub broadcast.Service, collector *metrics.Collector, logger log.Logger) {
	client := remote.NewClient(cfg.UpstreamTimeout)

	static.APIHandlers(router, cfg.StaticDir, logger)
	broadcast.APIHandlers(router, hub, 2*cfg.PingInterval, logger)
	call.APIHandlers(router, hub, nil, logger)
	faq.APIHandlers(router, faq.NewService(cfg.FAQURL, faq.NewRepository(client), collector, logger))
	email.APIHandlers(router, email.NewService(cfg, email.NewRepository(client), collector, logger), logger)
	signedurl.APIHandlers(router, signedurl.NewService(cfg, signedurl.NewRepository(client), collector, logger))
	metrics.APIHandlers(router, collector)

	router.GET("/healthz", func(gctx *gin.Context) {
		gctx.JSON(http.StatusOK, entity.HealthResponse{OK: true, Viewers: hub.Count()})
	})
	router.NoRoute(func(gctx *gin.Context) {
		resp := errors.NotFound("")
		gctx.JSON(resp.StatusCode(), resp)
	})
}

// recovery turns a panic into the response shape of the route: the static pages answer a 500
// ErrorResponse, every JSON API keeps its 200 with {ok:false, error}.
func recovery(logger log.Logger) gin.HandlerFunc {
	// Stack traces go through the logger, not gin's writer.
	return gin.CustomRecoveryWithWriter(io.Discard, func(gctx *gin.Context, rec interface{}) {
		cause := fmt.Sprint(rec)
		logger.WithCtx(gctx).Error().Str("panic", cause).Str("path", gctx.Request.URL.Path).Msg("Recovered from a panic in a handler")

		if gctx.Writer.Written() {
			gctx.Abort()
			return
		}
		if isStaticPath(gctx.Request.URL.Path) {
			resp := errors.InternalServerError(cause)
			gctx.AbortWithStatusJSON(resp.StatusCode(), resp)
			return
		}
		gctx.AbortWithStatusJSON(http.StatusOK, entity.FailedResponse{OK: false, Error: cause})
	})
}

func isStaticPath(path string) bool {
	return path == "/" || strings.HasPrefix(path, "/public/") || strings.HasPrefix(path, "/assets/")
}
