package settlement

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openpari/parimarket/app/api"
	"github.com/openpari/parimarket/models"
)

// Handler handles HTTP requests for settlement
type Handler struct {
	service Service
}

// NewHandler creates a new settlement handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// GetClaimables handles GET /settlement/claimables/:address
func (h *Handler) GetClaimables(c *gin.Context) {
	address := c.Param("address")

	batch, err := h.service.Claimables(c.Request.Context(), address)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidResolverAddress):
			api.ErrorResponse(c, http.StatusBadRequest, "INVALID_ADDRESS", "Invalid address", nil)
		case errors.Is(err, models.ErrSweepFailed):
			api.ErrorResponse(c, http.StatusBadGateway, "SWEEP_FAILED", "Ledger unavailable during sweep", nil)
		default:
			api.InternalErrorResponse(c, "Failed to sweep claimable winnings")
		}
		return
	}

	api.SuccessResponse(c, http.StatusOK, "", batch)
}

// SubmitClaim handles POST /settlement/claims
func (h *Handler) SubmitClaim(c *gin.Context) {
	var req SubmitClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	result, err := h.service.SubmitBatchClaim(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyClaimBatch):
			api.ErrorResponse(c, http.StatusBadRequest, "EMPTY_BATCH", "Claim batch is empty", nil)
		case errors.Is(err, models.ErrLedgerNotConfigured):
			api.ErrorResponse(c, http.StatusServiceUnavailable, "LEDGER_NOT_CONFIGURED", "Ledger submission is not configured", nil)
		default:
			api.ErrorResponse(c, http.StatusBadGateway, "CLAIM_FAILED", "Failed to submit batch claim", nil)
		}
		return
	}

	api.SuccessResponse(c, http.StatusAccepted, "Batch claim submitted", result)
}
