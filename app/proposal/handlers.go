package proposal

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/openpari/parimarket/app/api"
	"github.com/openpari/parimarket/internal/sanitizer"
	"github.com/openpari/parimarket/internal/validator"
	"github.com/openpari/parimarket/models"
)

// Handler handles HTTP requests for proposals
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
}

// NewHandler creates a new proposal handler
func NewHandler(service Service, s sanitizer.HTMLStripperer) *Handler {
	return &Handler{
		service:   service,
		sanitizer: s,
	}
}

// Submit handles POST /proposals
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}
	if req.Source == "" {
		req.Source = "api"
	}

	v := validator.New()
	if req.SanitizeAndValidate(v, h.sanitizer); !v.Valid() {
		api.ValidationErrorResponse(c, v.Errors)
		return
	}

	proposal, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidProposalEndTime):
			api.ErrorResponse(c, http.StatusBadRequest, "INVALID_END_TIME", "End time must be unix seconds or ISO-8601", nil)
		case errors.Is(err, models.ErrInvalidProposalDescription),
			errors.Is(err, models.ErrInvalidProposalCategory):
			api.ErrorResponse(c, http.StatusBadRequest, "INVALID_PROPOSAL", "Description and category are required", nil)
		default:
			api.InternalErrorResponse(c, "Failed to store proposal")
		}
		return
	}

	api.CreatedResponse(c, "Proposal submitted", proposal)
}

// GetPending handles GET /proposals/pending
func (h *Handler) GetPending(c *gin.Context) {
	proposals, err := h.service.GetPending(c.Request.Context())
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch proposals")
		return
	}

	api.ListResponse(c, "", proposals, len(proposals))
}

// Approve handles POST /proposals/:id/approve
func (h *Handler) Approve(c *gin.Context) {
	h.review(c, h.service.Approve, "Proposal approved")
}

// Reject handles POST /proposals/:id/reject
func (h *Handler) Reject(c *gin.Context) {
	h.review(c, h.service.Reject, "Proposal rejected")
}

func (h *Handler) review(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) (*ProposalResponse, error), message string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid proposal ID format", nil)
		return
	}

	proposal, err := apply(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "proposal")
		case errors.Is(err, models.ErrProposalNotPending):
			api.ConflictResponse(c, "Proposal has already been reviewed")
		default:
			api.InternalErrorResponse(c, "Failed to update proposal")
		}
		return
	}

	api.UpdatedResponse(c, message, proposal)
}
