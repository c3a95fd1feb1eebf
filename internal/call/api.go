// Exposes the REST APIs voice-agent runtimes and phone-call sources use to push events to viewers.

package call

import (
	"Callboard/internal/entity"
	"Callboard/pkg/log"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Publisher is the part of the broadcaster these handlers need.
type Publisher interface {
	Publish(ctx context.Context, event entity.Event)
}

// Inbound body of POST /rt/transcript.
type transcriptRequest struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Inbound body of POST /rt/status.
type statusRequest struct {
	Text string `json:"text"`
}

// Registers all of the REST API handlers related to internal package call onto the gin server.
// now is injectable so lifecycle timestamps can be pinned in tests, nil means time.Now.
func APIHandlers(router *gin.Engine, publisher Publisher, now func() time.Time, logger log.Logger) {
	if now == nil {
		now = time.Now
	}
	callGroup := router.Group("/api/call")
	{
		callGroup.POST("/start", lifecycle(publisher, func() entity.Event { return entity.NewStartedEvent(now()) }, logger))
		callGroup.POST("/stop", lifecycle(publisher, func() entity.Event { return entity.NewEndedEvent(now()) }, logger))
	}
	rtGroup := router.Group("/rt")
	{
		rtGroup.POST("/transcript", transcript(publisher, logger))
		rtGroup.POST("/status", status(publisher, logger))
	}
}

// lifecycle returns a handler which publishes the event built by build.
func lifecycle(publisher Publisher, build func() entity.Event, logger log.Logger) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		event := build()
		publisher.Publish(gctx, event)
		logger.WithCtx(gctx).Info().Str("type", string(event.Type)).Msg("Call lifecycle event broadcasted")
		gctx.JSON(http.StatusOK, entity.OKResponse{OK: true})
	}
}

// transcript returns a handler which relays one utterance. An absent text is acknowledged but not broadcasted.
func transcript(publisher Publisher, logger log.Logger) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		var req transcriptRequest
		if binderr := gctx.ShouldBindJSON(&req); binderr != nil {
			logger.WithCtx(gctx).Warn().Err(binderr).Msg("Unreadable transcript body, nothing broadcasted")
		}
		if req.Text != "" {
			publisher.Publish(gctx, entity.NewTranscriptEvent(req.Role, req.Text))
		}
		gctx.JSON(http.StatusOK, entity.OKResponse{OK: true})
	}
}

// status returns a handler which relays one status line. An absent text is acknowledged but not broadcasted.
func status(publisher Publisher, logger log.Logger) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		var req statusRequest
		if binderr := gctx.ShouldBindJSON(&req); binderr != nil {
			logger.WithCtx(gctx).Warn().Err(binderr).Msg("Unreadable status body, nothing broadcasted")
		}
		if req.Text != "" {
			publisher.Publish(gctx, entity.NewStatusEvent(req.Text))
		}
		gctx.JSON(http.StatusOK, entity.OKResponse{OK: true})
	}
}
