package form

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces row identifiers. Implementations must never return the
// same id twice for one form, including for back-to-back calls.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random (v4) UUIDs.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator issues monotonic ids ("row-1", "row-2", ...). It is
// deterministic, which keeps snapshots and golden files stable in tests.
type SequenceGenerator struct {
	Prefix string
	next   atomic.Uint64
}

// NewSequenceGenerator returns a generator whose ids start at 1.
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	if prefix == "" {
		prefix = "row"
	}
	return &SequenceGenerator{Prefix: prefix}
}

// NewID implements IDGenerator.
func (g *SequenceGenerator) NewID() string {
	n := g.next.Add(1)
	return fmt.Sprintf("%s-%d", g.Prefix, n)
}
