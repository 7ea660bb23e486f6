package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func panickingRouter(production bool) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler(production))
	r.GET("/boom", func(c *gin.Context) {
		panic("database exploded")
	})
	return r
}

func TestErrorHandlerExposesDetailInDevelopment(t *testing.T) {
	r := panickingRouter(false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Something went wrong!", body["error"])
	assert.Equal(t, "database exploded", body["message"])
}

func TestErrorHandlerHidesDetailInProduction(t *testing.T) {
	r := panickingRouter(true)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Something went wrong!", body["error"])
	assert.Equal(t, "Internal server error", body["message"])
}
