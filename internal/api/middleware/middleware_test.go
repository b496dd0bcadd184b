package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/api/middleware"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/logger"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/metrics"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGeneratedAndPropagated(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(middleware.RequestID())

	var seen string
	httpSuite.Router.GET("/ping", func(c *gin.Context) {
		seen, _ = c.Request.Context().Value(logger.RequestIDKey).(string)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	recorder := httpSuite.MakeRequest(http.MethodGet, "/ping", nil)

	header := recorder.Header().Get(middleware.RequestIDHeader)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, header, seen)
	_, err := uuid.Parse(header)
	assert.NoError(t, err)
}

func TestRequestIDReusesCallerValue(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(middleware.RequestID())
	httpSuite.Router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "caller-7")
	recorder := httptest.NewRecorder()
	httpSuite.Router.ServeHTTP(recorder, req)

	assert.Equal(t, "caller-7", recorder.Header().Get(middleware.RequestIDHeader))
}

func TestLoggerWritesRequestLine(t *testing.T) {
	buf := &bytes.Buffer{}
	logger.Setup("info", buf)
	t.Cleanup(func() { logger.Setup("info", os.Stdout) })

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(middleware.Logger(), middleware.RequestID())
	httpSuite.Router.GET("/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "nope"})
	})

	httpSuite.MakeRequest(http.MethodGet, "/missing?x=1", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "/missing?x=1", entry["path"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.NotEmpty(t, entry["request_id"])
}

func TestRecoveryReturnsJSON(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(middleware.Recovery())
	httpSuite.Router.GET("/panic", func(c *gin.Context) { panic("boom") })

	recorder := httpSuite.MakeRequest(http.MethodGet, "/panic", nil)

	testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "internal server error")
}

func TestMetricsCountsMatchedRoute(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(middleware.Metrics())
	httpSuite.Router.GET("/api/v1/:kind", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := metrics.Default().HTTPRequests("/api/v1/:kind", http.MethodGet, "200")
	before := testutil.ToFloat64(counter)

	httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams", nil)
	httpSuite.MakeRequest(http.MethodGet, "/api/v1/employees", nil)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
