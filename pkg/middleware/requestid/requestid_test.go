package requestid

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen string
	router := gin.New()
	router.Use(Middleware())
	router.GET("/", func(c *gin.Context) {
		seen = Value(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(HeaderKey, header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, seen
}

func TestMiddlewareGeneratesID(t *testing.T) {
	w, seen := serve(t, "")
	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(HeaderKey))
}

func TestMiddlewareReusesClientID(t *testing.T) {
	w, seen := serve(t, "client-abc")
	assert.Equal(t, "client-abc", seen)
	assert.Equal(t, "client-abc", w.Header().Get(HeaderKey))
}

func TestMiddlewareReplacesOversizedID(t *testing.T) {
	_, seen := serve(t, strings.Repeat("x", maxLength+1))
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
}

func TestValueWithoutMiddleware(t *testing.T) {
	assert.Equal(t, "", Value(nil))
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "", Value(c))
}
