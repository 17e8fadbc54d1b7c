package office

import (
	"errors"
	"net/http"

	"meetspace/internal/middleware"
	"meetspace/internal/pkg/response"
	"meetspace/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/offices", h.ListOffices)
	rg.POST("/offices", middleware.AdminOnly(), h.CreateOffice)
	rg.PUT("/offices/:id", middleware.ManagerOrAbove(), h.UpdateOffice)
	rg.DELETE("/offices/:id", middleware.AdminOnly(), h.DeactivateOffice)
	rg.POST("/offices/:id/managers", middleware.AdminOnly(), h.AssignManager)
	rg.DELETE("/offices/:id/managers/:userId", middleware.AdminOnly(), h.RemoveManager)

	rg.POST("/rooms", middleware.ManagerOrAbove(), h.CreateRoom)
	rg.PUT("/rooms/:id", middleware.ManagerOrAbove(), h.UpdateRoom)
	rg.DELETE("/rooms/:id", middleware.ManagerOrAbove(), h.DeactivateRoom)
}

func (h *Handler) ListOffices(c *gin.Context) {
	caller, _ := middleware.CurrentIdentity(c)

	offices, err := h.service.ListOffices(c.Request.Context(), caller.UserID, caller.Role)
	if err != nil {
		writeError(c, err, "Failed to load offices")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"offices": offices})
}

func (h *Handler) CreateOffice(c *gin.Context) {
	var req CreateOfficeRequest
	if !bindAndValidate(c, &req) {
		return
	}

	office, err := h.service.CreateOffice(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Failed to create office")
		return
	}
	response.Success(c, http.StatusCreated, office)
}

func (h *Handler) UpdateOffice(c *gin.Context) {
	var req UpdateOfficeRequest
	if !bindAndValidate(c, &req) {
		return
	}

	caller, _ := middleware.CurrentIdentity(c)
	if err := h.service.UpdateOffice(c.Request.Context(), caller.UserID, caller.Role, c.Param("id"), req); err != nil {
		writeError(c, err, "Failed to update office")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeactivateOffice(c *gin.Context) {
	if err := h.service.DeactivateOffice(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "Failed to deactivate office")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) AssignManager(c *gin.Context) {
	var req AssignManagerRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.service.AssignManager(c.Request.Context(), c.Param("id"), req.UserID); err != nil {
		writeError(c, err, "Failed to assign manager")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) RemoveManager(c *gin.Context) {
	if err := h.service.RemoveManager(c.Request.Context(), c.Param("id"), c.Param("userId")); err != nil {
		writeError(c, err, "Failed to remove manager")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if !bindAndValidate(c, &req) {
		return
	}

	caller, _ := middleware.CurrentIdentity(c)
	room, err := h.service.CreateRoom(c.Request.Context(), caller.UserID, caller.Role, req)
	if err != nil {
		writeError(c, err, "Failed to create room")
		return
	}
	response.Success(c, http.StatusCreated, room)
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	var req UpdateRoomRequest
	if !bindAndValidate(c, &req) {
		return
	}

	caller, _ := middleware.CurrentIdentity(c)
	if err := h.service.UpdateRoom(c.Request.Context(), caller.UserID, caller.Role, c.Param("id"), req); err != nil {
		writeError(c, err, "Failed to update room")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeactivateRoom(c *gin.Context) {
	caller, _ := middleware.CurrentIdentity(c)
	if err := h.service.DeactivateRoom(c.Request.Context(), caller.UserID, caller.Role, c.Param("id")); err != nil {
		writeError(c, err, "Failed to deactivate room")
		return
	}
	c.Status(http.StatusNoContent)
}

func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return false
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request", errs)
		return false
	}
	return true
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrOfficeNotFound), errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrUserNotFound), errors.Is(err, ErrAssignmentNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrNotManager):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrAlreadyAssigned):
		response.Error(c, http.StatusConflict, "ALREADY_ASSIGNED", err.Error())
	case errors.Is(err, ErrOfficeInactive):
		response.Error(c, http.StatusConflict, "INACTIVE", err.Error())
	default:
		response.Internal(c, err, fallback)
	}
}
