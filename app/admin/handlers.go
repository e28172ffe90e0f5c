package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/openpari/parimarket/app/api"
	"github.com/openpari/parimarket/models"
)

// Handler handles HTTP requests for administrative operations
type Handler struct {
	service Service
}

// NewHandler creates a new admin handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// ResolveMarket handles POST /admin/markets/resolve
func (h *Handler) ResolveMarket(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}
	req.ResolvedBy = ResolverAddress(c)

	result, err := h.service.ResolveMarket(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidOutcome):
			api.ErrorResponse(c, http.StatusBadRequest, "INVALID_OUTCOME", "Winner must be yes or no", nil)
		case errors.Is(err, models.ErrMarketResolved):
			api.ConflictResponse(c, "Market is already resolved")
		case errors.Is(err, models.ErrLedgerNotConfigured):
			api.ErrorResponse(c, http.StatusServiceUnavailable, "LEDGER_NOT_CONFIGURED", "Ledger submission is not configured", nil)
		default:
			api.ErrorResponse(c, http.StatusBadGateway, "RESOLVE_FAILED", "Failed to broadcast resolution", nil)
		}
		return
	}

	api.SuccessResponse(c, http.StatusAccepted, "Resolution submitted", result)
}

// ResetAll handles POST /admin/reset
func (h *Handler) ResetAll(c *gin.Context) {
	result, err := h.service.ResetAll(c.Request.Context(), ResolverAddress(c))
	if err != nil {
		api.ErrorResponse(c, http.StatusBadGateway, "RESET_FAILED", "Failed to execute full reset", nil)
		return
	}

	api.SuccessResponse(c, http.StatusAccepted, "Reset submitted", result)
}

// CreateMarket handles POST /admin/markets
func (h *Handler) CreateMarket(c *gin.Context) {
	var req CreateMarketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	result, err := h.service.CreateMarket(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidProposalEndTime):
			api.ErrorResponse(c, http.StatusBadRequest, "INVALID_END_TIME", "End time must be in the future", nil)
		default:
			api.ErrorResponse(c, http.StatusBadGateway, "CREATE_FAILED", "Failed to create market", nil)
		}
		return
	}

	api.CreatedResponse(c, "Market creation submitted", result)
}

// ListResolvers handles GET /admin/resolvers
func (h *Handler) ListResolvers(c *gin.Context) {
	resolvers, err := h.service.ListResolvers(c.Request.Context())
	if err != nil {
		api.InternalErrorResponse(c, "Failed to list resolvers")
		return
	}

	api.ListResponse(c, "", resolvers, len(resolvers))
}

// AddResolver handles POST /admin/resolvers
func (h *Handler) AddResolver(c *gin.Context) {
	var req AddResolverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	resolver, err := h.service.AddResolver(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidResolverAddress):
			api.ErrorResponse(c, http.StatusBadRequest, "INVALID_ADDRESS", "Invalid resolver address", nil)
		default:
			api.InternalErrorResponse(c, "Failed to add resolver")
		}
		return
	}

	api.CreatedResponse(c, "Resolver added", resolver)
}

// SetResolverActive handles PATCH /admin/resolvers/:id
func (h *Handler) SetResolverActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid resolver ID format", nil)
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	if err := h.service.SetResolverActive(c.Request.Context(), id, *req.Active); err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "resolver")
			return
		}
		api.InternalErrorResponse(c, "Failed to update resolver")
		return
	}

	api.UpdatedResponse(c, "Resolver updated", nil)
}
