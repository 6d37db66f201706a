package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicdevman/portfolio-api/internal/logging"
)

func newRouter(seen *string, seenCtx *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		*seen = c.GetString("request_id")
		*seenCtx = logging.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	var seen, seenCtx string
	r := newRouter(&seen, &seenCtx)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", seenCtx)
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var seen, seenCtx string
	r := newRouter(&seen, &seenCtx)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "   ")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	rid := rr.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(rid)
	require.NoError(t, err)
	assert.Equal(t, rid, seen)
	assert.Equal(t, rid, seenCtx)
}
