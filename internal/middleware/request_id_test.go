package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trioracle/trioracle-go/internal/logging"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger := logging.NewStandardLogger("info", "test")

	t.Run("generates an identifier", func(t *testing.T) {
		var seen string

		router := gin.New()
		router.Use(RequestID(logger))
		router.GET("/test", func(c *gin.Context) {
			seen = GetRequestID(c)
			c.JSON(http.StatusOK, gin.H{"message": "test"})
		})

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotEmpty(t, seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err, "generated identifier should be a uuid")
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("honors the client identifier", func(t *testing.T) {
		var seen string

		router := gin.New()
		router.Use(RequestID(logger))
		router.GET("/test", func(c *gin.Context) {
			seen = GetRequestID(c)
			c.JSON(http.StatusOK, gin.H{"message": "test"})
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, "client-supplied-id")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, "client-supplied-id", seen)
		assert.Equal(t, "client-supplied-id", w.Header().Get(RequestIDHeader))
	})

	t.Run("identifiers differ across requests", func(t *testing.T) {
		ids := make(map[string]bool)

		router := gin.New()
		router.Use(RequestID(logger))
		router.GET("/test", func(c *gin.Context) {
			ids[GetRequestID(c)] = true
			c.Status(http.StatusOK)
		})

		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))
		}

		assert.Len(t, ids, 3)
	})
}

func TestGetRequestID_WithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))
}
