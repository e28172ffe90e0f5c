package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProposalStatus represents the review state of a market proposal.
type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusApproved ProposalStatus = "approved"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// Proposal is a pending market suggestion waiting for admin review. Records
// are inserted by the proposal CLI or the public endpoint and consumed by
// the admin create-market flow.
type Proposal struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Category    string         `gorm:"type:varchar(100);not null" json:"category"`
	EndTime     int64          `gorm:"not null" json:"end_time"`
	Status      ProposalStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Source      string         `gorm:"type:varchar(64)" json:"source"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Proposal
func (*Proposal) TableName() string {
	return "market_proposals"
}

func (p *Proposal) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Approve moves a pending proposal to approved.
func (p *Proposal) Approve() error {
	if p.Status != ProposalStatusPending {
		return ErrProposalNotPending
	}
	p.Status = ProposalStatusApproved
	return nil
}

// Reject moves a pending proposal to rejected.
func (p *Proposal) Reject() error {
	if p.Status != ProposalStatusPending {
		return ErrProposalNotPending
	}
	p.Status = ProposalStatusRejected
	return nil
}

// Validate performs validation on the proposal.
func (p *Proposal) Validate() error {
	if p.Description == "" {
		return ErrInvalidProposalDescription
	}
	if p.Category == "" {
		return ErrInvalidProposalCategory
	}
	if p.EndTime <= 0 {
		return ErrInvalidProposalEndTime
	}
	return nil
}
