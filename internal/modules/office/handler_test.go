package office

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

func routerAs(svc *Service, userID string, role domain.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", string(role))
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(api)
	return r
}

func send(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateOffice_AdminOnly(t *testing.T) {
	svc, _ := setup(t)

	w := send(routerAs(svc, "mgr", domain.RoleOfficeManager), http.MethodPost, "/api/offices",
		CreateOfficeRequest{Name: "A", Address: "a"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = send(routerAs(svc, "root", domain.RoleAdmin), http.MethodPost, "/api/offices",
		CreateOfficeRequest{Name: "A", Address: "a", Rooms: []RoomInput{{Name: "R", Capacity: 2}}})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateOffice_Validation(t *testing.T) {
	svc, _ := setup(t)
	r := routerAs(svc, "root", domain.RoleAdmin)

	w := send(r, http.MethodPost, "/api/offices", CreateOfficeRequest{Name: "", Address: "a"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name")

	w = send(r, http.MethodPost, "/api/offices", CreateOfficeRequest{
		Name: "A", Address: "a", Rooms: []RoomInput{{Name: "R", Capacity: 0}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateRoom_NotFound(t *testing.T) {
	svc, _ := setup(t)

	w := send(routerAs(svc, "root", domain.RoleAdmin), http.MethodPut, "/api/rooms/missing",
		UpdateRoomRequest{Name: "R", Capacity: 2})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_EmployeeCannotCreateRoom(t *testing.T) {
	svc, _ := setup(t)

	w := send(routerAs(svc, "emp", domain.RoleEmployee), http.MethodPost, "/api/rooms",
		CreateRoomRequest{OfficeID: "x", Name: "R", Capacity: 2})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
