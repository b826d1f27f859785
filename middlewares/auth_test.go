package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edsonffff/catering-new/entity"
	"github.com/Edsonffff/catering-new/utils"
)

const testSecret = "test-secret"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(200, gin.H{"id": utils.CurrentUserID(c), "role": utils.CurrentRole(c)})
	})
	r.GET("/admin", AuthMiddleware(testSecret, entity.RoleAdmin), func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true})
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingTokenUnauthorized(t *testing.T) {
	r := newAuthRouter()
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/me", "").Code)
}

func TestGarbageTokenUnauthorized(t *testing.T) {
	r := newAuthRouter()
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/me", "not-a-token").Code)
}

func TestExpiredTokenUnauthorized(t *testing.T) {
	r := newAuthRouter()
	token, err := utils.GenerateToken(1, "a@b.c", entity.RoleCustomer, testSecret, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/me", token).Code)
}

func TestValidTokenAttachesIdentity(t *testing.T) {
	r := newAuthRouter()
	token, err := utils.GenerateToken(7, "a@b.c", entity.RoleCustomer, testSecret, time.Hour)
	require.NoError(t, err)

	w := doGet(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7,"role":"customer"}`, w.Body.String())
}

func TestRoleGate(t *testing.T) {
	r := newAuthRouter()

	customer, err := utils.GenerateToken(7, "a@b.c", entity.RoleCustomer, testSecret, time.Hour)
	require.NoError(t, err)
	admin, err := utils.GenerateToken(1, "root@b.c", entity.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	// Same route, different roles: customer is forbidden, admin passes.
	assert.Equal(t, http.StatusForbidden, doGet(r, "/admin", customer).Code)
	assert.Equal(t, http.StatusOK, doGet(r, "/admin", admin).Code)
}
