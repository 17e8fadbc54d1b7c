package booking

import (
	"errors"
	"net/http"
	"strconv"

	"meetspace/internal/middleware"
	"meetspace/internal/pkg/interval"
	"meetspace/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the booking endpoints on an authenticated group.
// createGuard runs in front of booking creation only (rate limiting).
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, createGuard gin.HandlerFunc) {
	rg.GET("/bookings", h.ListMyBookings)
	rg.POST("/bookings", createGuard, h.CreateBooking)
	rg.DELETE("/bookings/:id", h.CancelBooking)
	rg.GET("/offices/:id/rooms", h.ListAvailableRooms)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	caller, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	date, err := interval.ParseDate(req.Date)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
		return
	}
	start, err := interval.ParseClock(req.StartTime)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start_time must be HH:MM")
		return
	}
	end, err := interval.ParseClock(req.EndTime)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "end_time must be HH:MM")
		return
	}

	id, err := h.service.CreateBooking(c.Request.Context(), CreateBookingInput{
		OfficeID:    req.OfficeID,
		RoomID:      req.RoomID,
		Date:        date,
		Start:       start,
		End:         end,
		Title:       req.Title,
		OwnerUserID: caller.UserID,
	})
	if err != nil {
		writeError(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, CreateBookingResponse{ID: id})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	caller, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	if err := h.service.CancelBooking(c.Request.Context(), c.Param("id"), caller.UserID, caller.IsElevated()); err != nil {
		writeError(c, err, "Failed to cancel booking")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	caller, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	items, err := h.service.ListUserBookings(c.Request.Context(), caller.UserID)
	if err != nil {
		writeError(c, err, "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": items})
}

func (h *Handler) ListAvailableRooms(c *gin.Context) {
	q := AvailabilityQuery{OfficeID: c.Param("id")}

	if v := c.Query("minCapacity"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "minCapacity must be a non-negative integer")
			return
		}
		q.MinCapacity = &n
	}
	if v := c.Query("date"); v != "" {
		d, err := interval.ParseDate(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
			return
		}
		q.Date = &d
	}
	if v := c.Query("startTime"); v != "" {
		t, err := interval.ParseClock(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "startTime must be HH:MM")
			return
		}
		q.Start = &t
	}
	if v := c.Query("endTime"); v != "" {
		t, err := interval.ParseClock(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "endTime must be HH:MM")
			return
		}
		q.End = &t
	}

	rooms, err := h.service.ListAvailableRooms(c.Request.Context(), q)
	if err != nil {
		writeError(c, err, "Failed to load rooms")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrInactive):
		response.Error(c, http.StatusConflict, "INACTIVE", err.Error())
	case errors.Is(err, ErrMismatch):
		response.Error(c, http.StatusBadRequest, "ROOM_OFFICE_MISMATCH", err.Error())
	case errors.Is(err, ErrInvalidInterval):
		response.Error(c, http.StatusBadRequest, "INVALID_INTERVAL", err.Error())
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Room is not available for the selected time")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		response.Internal(c, err, fallback)
	}
}
