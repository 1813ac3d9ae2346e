//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"hotel-booking-api/internal/handler/middleware"
	"hotel-booking-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRecoveryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.Use(middleware.ErrorHandler())
	return router
}

func TestCustomRecovery(t *testing.T) {
	t.Run("a panicking handler yields 500 with the standard envelope", func(t *testing.T) {
		router := newRecoveryRouter()
		router.GET("/boom", func(c *gin.Context) {
			panic("boom")
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("a healthy handler is untouched", func(t *testing.T) {
		router := newRecoveryRouter()
		router.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("a handler that writes nothing gets the fallback envelope", func(t *testing.T) {
		router := newRecoveryRouter()
		router.GET("/silent", func(c *gin.Context) {})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("a bare status is passed through", func(t *testing.T) {
		router := newRecoveryRouter()
		router.GET("/gone", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/gone", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
