// Package snapshot assembles the renderable tree for one refresh cycle. A
// snapshot is built wholesale from collector output, never mutated
// incrementally, and handed to the render stage as an immutable value.
package snapshot

import (
	"context"
	"time"

	"github.com/desertwitch/spacewatch/internal/classification"
	"github.com/desertwitch/spacewatch/internal/schema"
)

// storageProvider describes the collector queries the builder consumes. All
// queries are best-effort and return possibly empty lists, never errors.
type storageProvider interface {
	Pools(ctx context.Context) []*schema.StoragePool
	VirtualDisks(ctx context.Context, pool *schema.StoragePool) []*schema.VirtualDisk
	PooledDisks(ctx context.Context, pool *schema.StoragePool) []*schema.PhysicalDisk
	AllDisks(ctx context.Context) []*schema.PhysicalDisk
	DiskDetails(ctx context.Context) []*schema.DiskDetail
}

// VirtualDiskEntry is one classified virtual disk of a [PoolEntry].
type VirtualDiskEntry struct {
	Name   string
	Icon   classification.IconTag
	Health classification.Health

	// Size is the humanized capacity string, or empty when the record
	// carries no size value.
	Size string
}

// PhysicalDiskEntry is one classified physical disk, either pooled within a
// [PoolEntry] or part of the unpooled list.
type PhysicalDiskEntry struct {
	Name   string
	Icon   classification.IconTag
	Health classification.Health

	// Status holds operational status strings beyond plain OK.
	Status []string
}

// PoolEntry is one storage pool node of a [Snapshot], in query order.
type PoolEntry struct {
	ObjectID      string
	Name          string
	Health        classification.Health
	Expanded      bool
	VirtualDisks  []VirtualDiskEntry
	PhysicalDisks []PhysicalDiskEntry
}

// Snapshot is the complete render input of one refresh cycle.
type Snapshot struct {
	Pools    []PoolEntry
	Unpooled []PhysicalDiskEntry
	TakenAt  time.Time
}

// Handler is the principal implementation of the snapshot builder.
type Handler struct {
	storageHandler storageProvider
}

// NewHandler returns a pointer to a new snapshot [Handler].
func NewHandler(storageHandler storageProvider) *Handler {
	return &Handler{
		storageHandler: storageHandler,
	}
}
