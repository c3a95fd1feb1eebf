// FAQ API tests in Callboard.

package faq

import (
	"Callboard/internal/entity"
	"Callboard/internal/metrics"
	"Callboard/internal/test"
	"Callboard/pkg/log"
	"Callboard/pkg/remote"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to build up a mock router serving the FAQ from sourceURL.
func setupMockRouter(sourceURL string) *gin.Engine {
	router := test.NewRouter()
	repo := NewRepository(remote.NewClient(time.Second))
	APIHandlers(router, NewService(sourceURL, repo, metrics.NewCollector(), log.Nop()))
	return router
}

func getFAQ(t *testing.T, router *gin.Engine) entity.FAQ {
	t.Helper()
	w := test.ExecuteAPITest(t, router, test.RequestAPITest{Method: http.MethodGet, Path: "/api/faq"})
	var faq entity.FAQ
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &faq))
	return faq
}

func TestFAQWithoutSourceServesDefault(t *testing.T) {
	router := setupMockRouter("")

	w := test.ExecuteAPITest(t, router, test.RequestAPITest{Method: http.MethodGet, Path: "/api/faq"})
	body := test.DecodeBody(t, w)
	items, ok := body["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 3)
	for _, item := range items {
		fields := item.(map[string]interface{})
		assert.NotEmpty(t, fields["q"])
		assert.NotEmpty(t, fields["a"])
	}
	assert.Equal(t, Default().Items, getFAQ(t, router).Items)
}

func TestFAQNetworkErrorServesDefault(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	faq := getFAQ(t, setupMockRouter(deadURL))
	assert.Equal(t, Default(), faq)
}

func TestFAQBadSourceServesDefault(t *testing.T) {
	handlers := map[string]http.HandlerFunc{
		"non-2xx": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		},
		"malformed": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items": "soon"`))
		},
		"no items": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"questions": []}`))
		},
	}
	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()

			assert.Equal(t, Default(), getFAQ(t, setupMockRouter(srv.URL)))
		})
	}
}

func TestFAQServesRemoteSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"q":"Do you open on Sundays?","a":"From 10 to 4."}]}`))
	}))
	defer srv.Close()

	faq := getFAQ(t, setupMockRouter(srv.URL))
	assert.False(t, faq.Fallback)
	assert.Equal(t, []entity.FAQItem{{Question: "Do you open on Sundays?", Answer: "From 10 to 4."}}, faq.Items)
}

func TestDefaultIsACopy(t *testing.T) {
	faq := Default()
	faq.Items[0].Question = "changed"
	assert.NotEqual(t, "changed", Default().Items[0].Question)
	assert.NotEqual(t, "changed", defaultItems[0].Question)
}
