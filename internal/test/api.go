package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Format of Request helper ExecuteAPITest handles
type RequestAPITest struct {
	Method       string            // Method of API request - [GET, POST . . .]
	Path         string            // API Path
	Body         []byte            // Request Body, nil for none
	WantResponse []int             // Accepted status codes
	Headers      map[string]string // Request headers
}

// Helper to execute API tests in Callboard. Returns the recorder for further assertions.
func ExecuteAPITest(t *testing.T, router *gin.Engine, request RequestAPITest) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if request.Body != nil {
		body = bytes.NewReader(request.Body)
	}
	req := httptest.NewRequest(request.Method, request.Path, body)
	if request.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, val := range request.Headers {
		req.Header.Set(key, val)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	want := request.WantResponse
	if len(want) == 0 {
		want = []int{http.StatusOK}
	}
	assert.Contains(t, want, w.Code)
	return w
}

// DecodeBody unmarshals the recorded JSON body into a generic map.
func DecodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}
