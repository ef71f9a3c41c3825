package models

import (
	"time"

	"github.com/google/uuid"
)

// SwapContext is the aggregate produced by the single joining query over swap,
// owner, proposal, proposer and auction rows. It backs permission checks for
// accept/reject decisions. A failed lookup populates Err instead of
// propagating the raw database error; callers treat that as a degraded result.
type SwapContext struct {
	SwapID         uuid.UUID  `db:"swap_id" json:"swap_id"`
	SwapStatus     string     `db:"swap_status" json:"swap_status"`
	SwapStrategy   string     `db:"swap_strategy" json:"swap_strategy"`
	SwapExpiresAt  time.Time  `db:"swap_expires_at" json:"swap_expires_at"`
	AuctionEndDate *time.Time `db:"auction_end_date" json:"auction_end_date,omitempty"`
	OwnerID        uuid.UUID  `db:"owner_id" json:"owner_id"`
	OwnerUsername  string     `db:"owner_username" json:"owner_username"`
	ProposalID     *uuid.UUID `db:"proposal_id" json:"proposal_id,omitempty"`
	ProposalStatus *string    `db:"proposal_status" json:"proposal_status,omitempty"`
	ProposalType   *string    `db:"proposal_type" json:"proposal_type,omitempty"`
	ProposerID     *uuid.UUID `db:"proposer_id" json:"proposer_id,omitempty"`
	ProposerName   *string    `db:"proposer_username" json:"proposer_username,omitempty"`

	Err error `db:"-" json:"-"`
}

// ProposalDetails is the decision payload served for a single proposal: the
// record itself plus whether the requesting user may accept or reject it and,
// when they may not, the reasons why.
type ProposalDetails struct {
	Proposal     ProposalDB   `json:"proposal"`
	Context      *SwapContext `json:"context,omitempty"`
	CanAccept    bool         `json:"can_accept"`
	CanReject    bool         `json:"can_reject"`
	Restrictions []string     `json:"restrictions"`
}
