package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialnet/middlewares"
)

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	base := zerolog.New(&buf)
	userID := primitive.NewObjectID()

	router := gin.New()
	router.Use(Middleware(&base))
	router.GET("/ping", func(c *gin.Context) {
		c.Set(middlewares.ContextUserID, userID)
		FromContext(c).Info().Msg("inside handler")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	reqID := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, reqID)

	out := buf.String()
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, reqID)
	assert.Contains(t, out, userID.Hex())
	assert.Contains(t, out, "inside handler")
}

func TestMiddleware_PropagatesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	base := zerolog.New(&buf)

	router := gin.New()
	router.Use(Middleware(&base))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), "req-123")
}
