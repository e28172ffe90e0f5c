package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/openpari/parimarket/internal/security"
	"github.com/openpari/parimarket/tests/mocks"
)

func performAuthRequest(maker security.Maker, policy Policy, header string) (*httptest.ResponseRecorder, string) {
	gin.SetMode(gin.TestMode)

	var gotAddress string
	router := gin.New()
	router.GET("/protected", RequireResolver(maker, policy), func(c *gin.Context) {
		gotAddress = ResolverAddress(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set(AuthorizationHeaderKey, header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, gotAddress
}

func TestRequireResolver(t *testing.T) {
	t.Run("valid token on the allow-list passes", func(t *testing.T) {
		maker := new(security.MockMaker)
		policy := new(mocks.MockPolicy)

		maker.On("VerifyToken", "tok").Return(&security.Payload{Address: "0xadmin"}, nil)
		policy.On("IsResolver", mock.Anything, "0xadmin").Return(true, nil)

		w, addr := performAuthRequest(maker, policy, "Bearer tok")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "0xadmin", addr)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		w, _ := performAuthRequest(new(security.MockMaker), new(mocks.MockPolicy), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is unauthorized", func(t *testing.T) {
		w, _ := performAuthRequest(new(security.MockMaker), new(mocks.MockPolicy), "tok")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		maker := new(security.MockMaker)
		maker.On("VerifyToken", "bad").Return(nil, security.ErrInvalidToken)

		w, _ := performAuthRequest(maker, new(mocks.MockPolicy), "Bearer bad")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("address off the allow-list is forbidden", func(t *testing.T) {
		maker := new(security.MockMaker)
		policy := new(mocks.MockPolicy)

		maker.On("VerifyToken", "tok").Return(&security.Payload{Address: "0xstranger"}, nil)
		policy.On("IsResolver", mock.Anything, "0xstranger").Return(false, nil)

		w, _ := performAuthRequest(maker, policy, "Bearer tok")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("policy error is forbidden", func(t *testing.T) {
		maker := new(security.MockMaker)
		policy := new(mocks.MockPolicy)

		maker.On("VerifyToken", "tok").Return(&security.Payload{Address: "0xadmin"}, nil)
		policy.On("IsResolver", mock.Anything, "0xadmin").Return(false, assert.AnError)

		w, _ := performAuthRequest(maker, policy, "Bearer tok")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
