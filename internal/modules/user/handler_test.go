package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"meetspace/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func routerAs(svc *Service, role domain.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set("user_id", "caller")
		c.Set("role", string(role))
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(api)
	return r
}

func TestHandler_Users_AdminOnly(t *testing.T) {
	svc, _ := setup(t)

	w := httptest.NewRecorder()
	routerAs(svc, domain.RoleOfficeManager).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	routerAs(svc, domain.RoleAdmin).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users?page=1&pageSize=5", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"page_size":5`)
}

func TestHandler_CreateUser_Validation(t *testing.T) {
	svc, _ := setup(t)
	r := routerAs(svc, domain.RoleAdmin)

	body, _ := json.Marshal(CreateUserRequest{Email: "not-an-email", Password: "short", FirstName: "A", LastName: "B", Role: "Employee"})
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email")
	assert.Contains(t, w.Body.String(), "Password")

	body, _ = json.Marshal(createReq("new@example.com"))
	req = httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}
