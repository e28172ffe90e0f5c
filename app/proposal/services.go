package proposal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openpari/parimarket/internal/sanitizer"
	"github.com/openpari/parimarket/models"
)

// service implements the Service interface
type service struct {
	repo      Repository
	sanitizer sanitizer.HTMLStripperer
}

// NewService creates a new proposal service
func NewService(repo Repository, stripper sanitizer.HTMLStripperer) Service {
	return &service{
		repo:      repo,
		sanitizer: stripper,
	}
}

// Submit stores a new proposal in pending state.
func (s *service) Submit(ctx context.Context, req SubmitProposalRequest) (*ProposalResponse, error) {
	endTime, err := ParseEndTime(req.EndTime)
	if err != nil {
		return nil, err
	}

	proposal := &models.Proposal{
		Description: s.sanitizer.StripHTML(req.Description),
		Category:    s.sanitizer.StripHTML(req.Category),
		EndTime:     endTime,
		Status:      models.ProposalStatusPending,
		Source:      req.Source,
	}
	if err := proposal.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, proposal); err != nil {
		return nil, err
	}

	return ToProposalResponse(proposal), nil
}

// GetPending returns proposals awaiting review, oldest first.
func (s *service) GetPending(ctx context.Context) ([]ProposalResponse, error) {
	proposals, err := s.repo.GetByStatus(ctx, models.ProposalStatusPending)
	if err != nil {
		return nil, err
	}
	return ToProposalResponseList(proposals), nil
}

// Approve marks a pending proposal approved.
func (s *service) Approve(ctx context.Context, id uuid.UUID) (*ProposalResponse, error) {
	return s.transition(ctx, id, (*models.Proposal).Approve)
}

// Reject marks a pending proposal rejected.
func (s *service) Reject(ctx context.Context, id uuid.UUID) (*ProposalResponse, error) {
	return s.transition(ctx, id, (*models.Proposal).Reject)
}

func (s *service) transition(ctx context.Context, id uuid.UUID, apply func(*models.Proposal) error) (*ProposalResponse, error) {
	proposal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}

	if err := apply(proposal); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, proposal); err != nil {
		return nil, err
	}

	return ToProposalResponse(proposal), nil
}

// WipeAll removes every proposal. Part of the administrative full reset.
func (s *service) WipeAll(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}
