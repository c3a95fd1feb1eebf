package metrics

import (
	"Callboard/internal/errors"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectorCounts(t *testing.T) {
	c := NewCollector()
	c.ViewerConnected()
	c.ViewerConnected()
	c.ViewerDisconnected()
	c.EventPublished("status")
	c.DeliveriesDropped(3)
	c.DeliveriesDropped(0)
	c.UpstreamCall("faq", OutcomeFallback)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.viewersConnected))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.eventsPublished.WithLabelValues("status")))
	assert.Equal(t, float64(3), testutil.ToFloat64(c.deliveriesDropped))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.upstreamCalls.WithLabelValues("faq", OutcomeFallback)))
}

func TestUpstreamFailureOutcomeFollowsKind(t *testing.T) {
	c := NewCollector()
	c.UpstreamFailure("email_confirm", errors.Validation("missing fields"))
	c.UpstreamFailure("signed_url", errors.MissingConfig("no agent"))
	c.UpstreamFailure("email_confirm", errors.Remote(stderrors.New("connection refused"), "webhook unreachable"))
	c.UpstreamFailure("email_confirm", stderrors.New("boom"))

	assert.Equal(t, float64(1), testutil.ToFloat64(c.upstreamCalls.WithLabelValues("email_confirm", OutcomeInvalid)))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.upstreamCalls.WithLabelValues("signed_url", OutcomeUnconfigured)))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.upstreamCalls.WithLabelValues("email_confirm", OutcomeFailed)))
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ViewerConnected()
		c.EventPublished("started")
		c.UpstreamCall("faq", OutcomeRemote)
		c.UpstreamFailure("faq", stderrors.New("boom"))
	})
}

func TestMetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	c := NewCollector()
	c.EventPublished("transcript")
	APIHandlers(router, c)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `callboard_events_published_total{type="transcript"} 1`)
}
