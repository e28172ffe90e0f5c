package metadata

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func performWriteRequest(t *testing.T, guard gin.HandlerFunc, srvs Service) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	group := router.Group("/")
	group.Use(guard)
	InitWrite(group, srvs)

	body := strings.NewReader(`{"market_id": 1, "title": "Rain in Lisbon"}`)
	req := httptest.NewRequest(http.MethodPut, "/metadata", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestInitWrite_GuardedMount(t *testing.T) {
	t.Run("rejected callers never reach the service", func(t *testing.T) {
		mockService := new(MockService)

		w := performWriteRequest(t, func(c *gin.Context) {
			c.AbortWithStatus(http.StatusUnauthorized)
		}, mockService)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "UpsertDraft", mock.Anything, mock.Anything)
	})

	t.Run("admitted callers store the draft", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("UpsertDraft", mock.Anything, UpsertDraftRequest{MarketID: 1, Title: "Rain in Lisbon"}).
			Return(&MetadataResponse{MarketID: 1, Title: "Rain in Lisbon"}, nil)

		w := performWriteRequest(t, func(c *gin.Context) { c.Next() }, mockService)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})
}
