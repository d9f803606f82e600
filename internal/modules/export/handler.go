package export

import (
	"fmt"
	"net/http"
	"strconv"

	"hotelback/internal/modules/analytics"
	"hotelback/internal/modules/invoice"
	"hotelback/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service     *Service
	defaultLang string
}

func NewHandler(service *Service, defaultLang string) *Handler {
	if defaultLang == "" {
		defaultLang = LangRU
	}
	return &Handler{service: service, defaultLang: defaultLang}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/export", h.Export)
}

func (h *Handler) Export(c *gin.Context) {
	req := Request{
		Type:     ReportType(c.Query("type")),
		Language: c.DefaultQuery("lang", h.defaultLang),
	}

	// Reject an unknown selector before looking at anything else; it is
	// never silently defaulted.
	if !req.Type.Valid() {
		response.Error(c, http.StatusBadRequest, "INVALID_REPORT_TYPE", "Unknown report type")
		return
	}

	if req.Type == TypeInvoice {
		stayID, err := strconv.ParseInt(c.Query("stay_id"), 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid or missing stay_id")
			return
		}
		req.StayID = stayID
	} else {
		from, to, ok := analytics.ParseRange(c)
		if !ok {
			return
		}
		req.From, req.To = from, to
	}

	file, err := h.service.Export(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrUnknownReportType:
			response.Error(c, http.StatusBadRequest, "INVALID_REPORT_TYPE", "Unknown report type")
		case ErrUnknownLanguage:
			response.Error(c, http.StatusBadRequest, "INVALID_LANGUAGE", "Unknown language, expected ru or en")
		case invoice.ErrStayNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Stay not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export report")
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, xlsxContentType, file.Content)
}
