// Package inmemory provides process-local adapters for state that does not
// need to survive a restart. A lost courier prompt only costs the staff
// member one extra button press, so the pending-assignment book keeps no
// durable storage.
package inmemory

import (
	"context"
	"sync"
	"time"

	"dragontea/internal/core/ports"
	"dragontea/internal/pkg/errs"
)

// PendingAssignmentBook is an in-memory PendingAssignmentStore with
// per-entry expiry. At most one prompt is held per staff member; a new Put
// replaces the previous entry.
type PendingAssignmentBook struct {
	mu      sync.Mutex
	entries map[int64]ports.PendingAssignment
	ttl     time.Duration
	clock   func() time.Time
}

// NewPendingAssignmentBook creates a pending-assignment book whose entries
// expire after the given ttl. A non-positive ttl disables expiry.
func NewPendingAssignmentBook(ttl time.Duration) *PendingAssignmentBook {
	return &PendingAssignmentBook{
		entries: make(map[int64]ports.PendingAssignment),
		ttl:     ttl,
		clock:   time.Now,
	}
}

// Put records the staff member's open prompt, replacing any previous one.
func (b *PendingAssignmentBook) Put(_ context.Context, staffID int64, assignment ports.PendingAssignment) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[staffID] = assignment
	return nil
}

// Get retrieves the staff member's open prompt.
// Returns an error wrapping errs.ErrObjectNotFound when the staff member has
// no open prompt or it has expired. Expired entries are removed on read.
func (b *PendingAssignmentBook) Get(_ context.Context, staffID int64) (ports.PendingAssignment, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	assignment, ok := b.entries[staffID]
	if !ok {
		return ports.PendingAssignment{}, errs.NewObjectNotFoundError("pendingAssignment", staffID)
	}

	if b.ttl > 0 && b.clock().Sub(assignment.CreatedAt) >= b.ttl {
		delete(b.entries, staffID)
		return ports.PendingAssignment{}, errs.NewObjectNotFoundError("pendingAssignment", staffID)
	}

	return assignment, nil
}

// Delete removes the staff member's open prompt.
// Deleting an absent prompt is not an error.
func (b *PendingAssignmentBook) Delete(_ context.Context, staffID int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.entries, staffID)
	return nil
}
