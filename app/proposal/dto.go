package proposal

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/openpari/parimarket/internal/sanitizer"
	"github.com/openpari/parimarket/internal/validator"
	"github.com/openpari/parimarket/models"
)

// SubmitProposalRequest carries a new market suggestion. EndTime accepts
// either unix seconds or an ISO-8601 timestamp.
type SubmitProposalRequest struct {
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required,max=100"`
	EndTime     string `json:"end_time" binding:"required"`
	Source      string `json:"source" binding:"max=64"`
}

// ProposalResponse is the API representation of a proposal.
type ProposalResponse struct {
	ID          uuid.UUID             `json:"id"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	EndTime     int64                 `json:"end_time"`
	Status      models.ProposalStatus `json:"status"`
	Source      string                `json:"source"`
	CreatedAt   time.Time             `json:"created_at"`
}

// SanitizeAndValidate strips markup from the request and checks field rules.
func (r *SubmitProposalRequest) SanitizeAndValidate(v *validator.Validator, s sanitizer.HTMLStripperer) {
	r.Description = s.StripHTML(r.Description)
	r.Category = s.StripHTML(r.Category)
	r.Source = s.StripHTML(r.Source)

	v.Check(validator.NotBlank(r.Description), "description", "description is required")
	v.Check(validator.MaxRunes(r.Description, 500), "description", "description must not exceed 500 characters")
	v.Check(validator.NotBlank(r.Category), "category", "category is required")
	v.Check(validator.MaxRunes(r.Category, 100), "category", "category must not exceed 100 characters")

	if _, err := ParseEndTime(r.EndTime); err != nil {
		v.AddError("end_time", "end_time must be unix seconds or an ISO-8601 timestamp in the future")
	}
}

// ParseEndTime parses an end time given as unix seconds or as an ISO-8601
// timestamp. Timestamps without an offset are read as UTC.
func ParseEndTime(raw string) (int64, error) {
	if raw == "" {
		return 0, models.ErrInvalidProposalEndTime
	}

	if unix, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if unix <= 0 {
			return 0, models.ErrInvalidProposalEndTime
		}
		return unix, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if ts, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return ts.Unix(), nil
		}
	}

	return 0, models.ErrInvalidProposalEndTime
}

// ToProposalResponse converts a model to its API representation
func ToProposalResponse(p *models.Proposal) *ProposalResponse {
	return &ProposalResponse{
		ID:          p.ID,
		Description: p.Description,
		Category:    p.Category,
		EndTime:     p.EndTime,
		Status:      p.Status,
		Source:      p.Source,
		CreatedAt:   p.CreatedAt,
	}
}

// ToProposalResponseList converts a slice of models to API representations
func ToProposalResponseList(proposals []models.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, len(proposals))
	for i := range proposals {
		out[i] = *ToProposalResponse(&proposals[i])
	}
	return out
}
