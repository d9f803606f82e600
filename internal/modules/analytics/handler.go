package analytics

import (
	"net/http"
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
	rg.GET("/reports/revenue", h.Revenue)
	rg.GET("/reports/occupancy", h.Occupancy)
	rg.GET("/reports/services", h.Services)
	rg.GET("/reports/guests", h.Guests)
}

// ParseRange reads from/to query params as UTC calendar days. Exported so
// the export handler shares the same parsing rules.
func ParseRange(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.ParseInLocation("2006-01-02", c.Query("from"), time.UTC)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid or missing 'from' date, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	to, err := time.ParseInLocation("2006-01-02", c.Query("to"), time.UTC)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid or missing 'to' date, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "'to' must not be before 'from'")
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func (h *Handler) Revenue(c *gin.Context) {
	from, to, ok := ParseRange(c)
	if !ok {
		return
	}

	report, err := h.service.Revenue(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build revenue report")
		return
	}
	response.Success(c, http.StatusOK, report)
}

func (h *Handler) Occupancy(c *gin.Context) {
	from, to, ok := ParseRange(c)
	if !ok {
		return
	}

	report, err := h.service.Occupancy(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build occupancy report")
		return
	}
	response.Success(c, http.StatusOK, report)
}

func (h *Handler) Services(c *gin.Context) {
	from, to, ok := ParseRange(c)
	if !ok {
		return
	}

	report, err := h.service.Services(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build services report")
		return
	}
	response.Success(c, http.StatusOK, report)
}

func (h *Handler) Guests(c *gin.Context) {
	from, to, ok := ParseRange(c)
	if !ok {
		return
	}

	report, err := h.service.Guests(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build guest report")
		return
	}
	response.Success(c, http.StatusOK, report)
}
