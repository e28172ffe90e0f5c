package markets

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openpari/parimarket/app/api"
	"github.com/openpari/parimarket/models"
)

// Handler handles HTTP requests for the market read API
type Handler struct {
	service Service
}

// NewHandler creates a new markets handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// ListMarkets handles GET /markets
func (h *Handler) ListMarkets(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		if errors.Is(err, models.ErrLedgerUnavailable) {
			api.ErrorResponse(c, http.StatusBadGateway, "LEDGER_UNAVAILABLE", "Ledger is unreachable", nil)
			return
		}
		api.InternalErrorResponse(c, "Failed to list markets")
		return
	}

	api.ListResponse(c, "", result, len(result))
}

// GetMarket handles GET /markets/:marketId
func (h *Handler) GetMarket(c *gin.Context) {
	marketID, err := strconv.ParseUint(c.Param("marketId"), 10, 64)
	if err != nil || marketID == 0 {
		api.ErrorResponse(c, http.StatusBadRequest, "INVALID_MARKET_ID", "Invalid market ID format", nil)
		return
	}

	result, err := h.service.Get(c.Request.Context(), marketID, c.Query("address"))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidMarketID):
			api.ErrorResponse(c, http.StatusBadRequest, "INVALID_MARKET_ID", "Invalid market ID", nil)
		case errors.Is(err, models.ErrLedgerUnavailable):
			api.ErrorResponse(c, http.StatusBadGateway, "LEDGER_UNAVAILABLE", "Ledger is unreachable", nil)
		default:
			api.InternalErrorResponse(c, "Failed to fetch market")
		}
		return
	}

	api.SuccessResponse(c, http.StatusOK, "", result)
}
