package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NemesisID/PreviewOnly-Dash/entity"
	"github.com/NemesisID/PreviewOnly-Dash/services"
	"github.com/NemesisID/PreviewOnly-Dash/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	authz, err := services.NewAuthorizationService()
	require.NoError(t, err)

	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://dash.kojain.store"}))
	g := r.Group("", AuthMiddleware("secret"))
	g.GET("/orders", RequirePermission(authz, services.ResOrders, services.ActRead), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": utils.CurrentUserID(c)})
	})
	g.DELETE("/orders/1", RequirePermission(authz, services.ResOrders, services.ActDelete), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	g.GET("/admin-only", AuthMiddleware("secret", entity.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func call(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Origin", "https://dash.kojain.store")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthAndPermission(t *testing.T) {
	r := newRouter(t)
	staff, err := utils.GenerateToken(3, entity.RoleStaff, "secret", time.Hour)
	require.NoError(t, err)
	admin, err := utils.GenerateToken(1, entity.RoleAdmin, "secret", time.Hour)
	require.NoError(t, err)
	forged, err := utils.GenerateToken(1, entity.RoleAdmin, "other", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodGet, "/orders", "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodGet, "/orders", forged).Code)

	w := call(r, http.MethodGet, "/orders", staff)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":3}`, w.Body.String())
	assert.Equal(t, "https://dash.kojain.store", w.Header().Get("Access-Control-Allow-Origin"))

	assert.Equal(t, http.StatusForbidden, call(r, http.MethodDelete, "/orders/1", staff).Code)
	assert.Equal(t, http.StatusOK, call(r, http.MethodDelete, "/orders/1", admin).Code)

	assert.Equal(t, http.StatusForbidden, call(r, http.MethodGet, "/admin-only", staff).Code)
	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/admin-only", admin).Code)
}
