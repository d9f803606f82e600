package invoice

import (
	"net/http"
	"strconv"

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
	rg.GET("/stays/:id/invoice", h.GetInvoice)
}

func (h *Handler) GetInvoice(c *gin.Context) {
	stayID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid stay id")
		return
	}

	inv, err := h.service.Build(c.Request.Context(), stayID)
	if err != nil {
		if err == ErrStayNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Stay not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build invoice")
		return
	}

	response.Success(c, http.StatusOK, inv)
}
