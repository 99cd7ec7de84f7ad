package snapshot

import (
	"context"
	"time"

	"github.com/desertwitch/spacewatch/internal/classification"
	"github.com/desertwitch/spacewatch/internal/correlation"
	"github.com/desertwitch/spacewatch/internal/schema"
	"github.com/dustin/go-humanize"
)

// Build produces the ordered [Snapshot] for one refresh cycle. Pool order is
// the collector's query order; each pool carries its persisted expanded state
// (pools without a stored preference default to expanded, so new pools are
// visible). Empty sub-lists stay empty and render as placeholders, never
// omitted sections. The build is pure with respect to collector output and
// preferences, modulo the timestamp.
func (h *Handler) Build(ctx context.Context, poolExpanded map[string]bool) *Snapshot {
	pools := h.storageHandler.Pools(ctx)
	index := correlation.NewIndex(h.storageHandler.DiskDetails(ctx))

	snap := &Snapshot{
		Pools:   make([]PoolEntry, 0, len(pools)),
		TakenAt: time.Now(),
	}

	pooledGroups := make([][]*schema.PhysicalDisk, 0, len(pools))

	for _, pool := range pools {
		pooledDisks := h.storageHandler.PooledDisks(ctx, pool)
		pooledGroups = append(pooledGroups, pooledDisks)

		expanded := true
		if state, exists := poolExpanded[pool.ObjectID]; exists {
			expanded = state
		}

		snap.Pools = append(snap.Pools, PoolEntry{
			ObjectID:      pool.ObjectID,
			Name:          classification.DisplayName(pool),
			Health:        classification.NormalizeHealth(pool.HealthStatus),
			Expanded:      expanded,
			VirtualDisks:  buildVirtualDisks(h.storageHandler.VirtualDisks(ctx, pool)),
			PhysicalDisks: buildPhysicalDisks(pooledDisks, index),
		})
	}

	unpooled := correlation.Unpooled(h.storageHandler.AllDisks(ctx), pooledGroups)
	snap.Unpooled = buildPhysicalDisks(unpooled, index)

	return snap
}

// buildVirtualDisks classifies a pool's virtual disks into render entries.
func buildVirtualDisks(disks []*schema.VirtualDisk) []VirtualDiskEntry {
	entries := make([]VirtualDiskEntry, 0, len(disks))

	for _, disk := range disks {
		entry := VirtualDiskEntry{
			Name:   classification.DisplayName(disk),
			Icon:   classification.IconVD,
			Health: classification.NormalizeHealth(disk.HealthStatus),
		}
		if disk.Size != nil {
			entry.Size = humanize.IBytes(*disk.Size)
		}

		entries = append(entries, entry)
	}

	return entries
}

// buildPhysicalDisks classifies physical disks into render entries, enriching
// each through the correlation index where a richer record matches.
func buildPhysicalDisks(disks []*schema.PhysicalDisk, index *correlation.Index) []PhysicalDiskEntry {
	entries := make([]PhysicalDiskEntry, 0, len(disks))

	for _, disk := range disks {
		detail := index.Match(disk)

		var labeled schema.Labeled = disk
		if detail != nil {
			labeled = detail
		}

		entries = append(entries, PhysicalDiskEntry{
			Name:   classification.DisplayName(labeled),
			Icon:   classification.ClassifyDisk(disk, detail),
			Health: classification.NormalizeHealth(disk.HealthStatus),
			Status: notableStatus(disk.OperationalStatus),
		})
	}

	return entries
}

// notableStatus filters the operational status strings down to those that
// disagree with plain OK.
func notableStatus(status schema.StringList) []string {
	var notable []string

	for _, s := range status {
		if s == "" || s == "OK" {
			continue
		}
		notable = append(notable, s)
	}

	return notable
}
