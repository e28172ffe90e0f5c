package metadata

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openpari/parimarket/app/api"
	"github.com/openpari/parimarket/models"
)

// Handler handles HTTP requests for market metadata
type Handler struct {
	service Service
}

// NewHandler creates a new metadata handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// GetMetadata handles GET /metadata/:marketId
func (h *Handler) GetMetadata(c *gin.Context) {
	marketID, err := strconv.ParseUint(c.Param("marketId"), 10, 64)
	if err != nil || marketID == 0 {
		api.ErrorResponse(c, http.StatusBadRequest, "INVALID_MARKET_ID", "Invalid market ID format", nil)
		return
	}

	meta, err := h.service.Get(c.Request.Context(), marketID)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "metadata")
			return
		}
		api.InternalErrorResponse(c, "Failed to fetch metadata")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "", meta)
}

// GetResolved handles GET /metadata/resolved
func (h *Handler) GetResolved(c *gin.Context) {
	records, err := h.service.GetResolved(c.Request.Context())
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch resolved metadata")
		return
	}

	api.ListResponse(c, "", records, len(records))
}

// UpsertDraft handles PUT /metadata
func (h *Handler) UpsertDraft(c *gin.Context) {
	var req UpsertDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	meta, err := h.service.UpsertDraft(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidMarketID):
			api.ErrorResponse(c, http.StatusBadRequest, "INVALID_MARKET_ID", "Invalid market ID", nil)
		default:
			api.InternalErrorResponse(c, "Failed to store metadata")
		}
		return
	}

	api.UpdatedResponse(c, "Metadata stored", meta)
}
