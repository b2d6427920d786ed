package ports

import (
	"context"
	"time"

	"dragontea/internal/core/domain/model/kernel"
)

// PendingAssignment records that a staff member was prompted for courier
// details and which order and prompt message the eventual reply must match.
type PendingAssignment struct {
	// OrderID is the order awaiting courier details.
	OrderID kernel.UUID

	// PromptMessageID is the id of the prompt message the staff member must
	// reply to.
	PromptMessageID int

	// CreatedAt is when the prompt was issued, used for expiry.
	CreatedAt time.Time
}

// PendingAssignmentStore keeps at most one open courier-details prompt per
// staff member. A new prompt for the same staff member replaces the old one,
// so a staff member is always answering their latest prompt.
type PendingAssignmentStore interface {
	// Put records the staff member's open prompt, replacing any previous one.
	Put(ctx context.Context, staffID int64, assignment PendingAssignment) error

	// Get retrieves the staff member's open prompt.
	// Returns an error wrapping errs.ErrObjectNotFound when the staff member
	// has no open prompt or it has expired.
	Get(ctx context.Context, staffID int64) (PendingAssignment, error)

	// Delete removes the staff member's open prompt.
	// Deleting an absent prompt is not an error.
	Delete(ctx context.Context, staffID int64) error
}
