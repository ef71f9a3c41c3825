package models

import (
	"time"

	"github.com/google/uuid"
)

// Targeting link statuses.
const (
	TargetStatusActive    = "active"
	TargetStatusCancelled = "cancelled"
)

// TargetDB is the canonical directed edge recording that one swap has proposed
// against another. The owner of the source swap sees it as "outgoing", the
// owner of the target swap as "incoming"; both views are lookups over this one
// row, never duplicated records.
type TargetDB struct {
	TargetID     uuid.UUID `json:"target_id" db:"target_id"`
	SourceSwapID uuid.UUID `json:"source_swap_id" db:"source_swap_id"` // Swap doing the targeting
	TargetSwapID uuid.UUID `json:"target_swap_id" db:"target_swap_id"` // Swap being targeted
	ProposalID   uuid.UUID `json:"proposal_id" db:"proposal_id"`       // Booking-exchange proposal backing the edge
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
