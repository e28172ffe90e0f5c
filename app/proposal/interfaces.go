package proposal

import (
	"context"

	"github.com/google/uuid"

	"github.com/openpari/parimarket/models"
)

// Repository defines the interface for proposal data access
type Repository interface {
	Create(ctx context.Context, proposal *models.Proposal) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Proposal, error)
	GetByStatus(ctx context.Context, status models.ProposalStatus) ([]models.Proposal, error)
	Update(ctx context.Context, proposal *models.Proposal) error
	DeleteAll(ctx context.Context) error
}

// Service defines the interface for proposal business logic
type Service interface {
	Submit(ctx context.Context, req SubmitProposalRequest) (*ProposalResponse, error)
	GetPending(ctx context.Context) ([]ProposalResponse, error)
	Approve(ctx context.Context, id uuid.UUID) (*ProposalResponse, error)
	Reject(ctx context.Context, id uuid.UUID) (*ProposalResponse, error)
	WipeAll(ctx context.Context) error
}
