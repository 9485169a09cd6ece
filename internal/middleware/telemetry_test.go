package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trioracle/trioracle-go/internal/telemetry"
)

func TestRecordError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	config := telemetry.DefaultConfig()
	config.Enabled = false // Disable for testing to avoid network calls
	err := telemetry.InitTelemetry(*config)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		RecordError(c, errors.New("calculation failed"), "engine error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "calculation failed"})
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "calculation failed")
}

func TestAddSpanAttribute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	config := telemetry.DefaultConfig()
	config.Enabled = false
	err := telemetry.InitTelemetry(*config)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		AddSpanAttribute(c, "string_attr", "value")
		AddSpanAttribute(c, "int_attr", 42)
		AddSpanAttribute(c, "int64_attr", int64(42))
		AddSpanAttribute(c, "float_attr", 0.5)
		AddSpanAttribute(c, "bool_attr", true)
		AddSpanAttribute(c, "other_attr", []string{"a", "b"})
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
