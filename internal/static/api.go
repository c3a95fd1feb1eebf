// Serves the dashboard page and its static files.

package static

import (
	"Callboard/internal/errors"
	"Callboard/pkg/log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// Registers the dashboard routes onto the gin server, everything is read from dir.
//
//	GET /          -> dir/index.html
//	GET /public/*  -> dir/*
//	GET /assets/*  -> dir/assets/*
func APIHandlers(router *gin.Engine, dir string, logger log.Logger) {
	router.GET("/", index(filepath.Join(dir, "index.html"), logger))
	router.Static("/public", dir)
	router.Static("/assets", filepath.Join(dir, "assets"))
}

// index returns a handler serving the dashboard page. A failure to read it is a 500 carrying the error text.
func index(path string, logger log.Logger) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		page, readerr := os.ReadFile(path)
		if readerr != nil {
			logger.WithCtx(gctx).Error().Err(readerr).Str("path", path).Msg("Couldn't read index page")
			resp := errors.InternalServerError(readerr.Error())
			gctx.AbortWithStatusJSON(resp.StatusCode(), resp)
			return
		}
		gctx.Data(http.StatusOK, "text/html; charset=utf-8", page)
	}
}
