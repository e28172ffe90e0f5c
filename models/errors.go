package models

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")

	ErrInvalidMarketID     = errors.New("invalid market ID")
	ErrInvalidMarketStatus = errors.New("invalid market status")
	ErrMarketNotOpen       = errors.New("market is not open")
	ErrMarketResolved      = errors.New("market is already resolved")
	ErrPoolMismatch        = errors.New("total staked does not equal the sum of outcome pools")

	ErrInvalidOutcome = errors.New("invalid outcome")
	ErrInvalidAmount  = errors.New("invalid amount")

	ErrShadowRevert = errors.New("resolved shadow status cannot be reverted")

	ErrEmptyClaimBatch = errors.New("claim batch is empty")
	ErrSweepFailed     = errors.New("all sweep lookups failed")

	ErrInvalidProposalDescription = errors.New("invalid proposal description")
	ErrInvalidProposalCategory    = errors.New("invalid proposal category")
	ErrInvalidProposalEndTime     = errors.New("invalid proposal end time")
	ErrProposalNotPending         = errors.New("proposal is not pending")

	ErrInvalidResolverAddress = errors.New("invalid resolver address")
	ErrNotResolver            = errors.New("address is not an authorized resolver")

	ErrLedgerUnavailable = errors.New("ledger is unavailable")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")
	ErrLedgerNotConfigured             = errors.New("ledger endpoint not configured")
)
