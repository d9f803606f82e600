package booking

import (
	"net/http"
	"strconv"
	"time"

	"hotelback/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/quote", h.Quote)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking date range")
		case ErrRoomInactive:
			response.Error(c, http.StatusConflict, "ROOM_INACTIVE", "Room is not available for booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"booking": gin.H{
			"id":          b.ID,
			"status":      b.Status,
			"total_price": b.TotalPrice,
		},
	})
}

func (h *Handler) Quote(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Query("room_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room_id")
		return
	}
	checkIn, err := time.ParseInLocation("2006-01-02", c.Query("check_in"), time.UTC)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid check_in date")
		return
	}
	checkOut, err := time.ParseInLocation("2006-01-02", c.Query("check_out"), time.UTC)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid check_out date")
		return
	}

	quote, err := h.service.QuoteTotalPrice(c.Request.Context(), roomID, checkIn, checkOut)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must not be before check_in")
		case ErrRoomInactive:
			response.Error(c, http.StatusConflict, "ROOM_INACTIVE", "Room is not active")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to quote booking")
		}
		return
	}

	response.Success(c, http.StatusOK, quote)
}
