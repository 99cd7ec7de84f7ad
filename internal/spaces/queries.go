package spaces

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/desertwitch/spacewatch/internal/schema"
)

// scriptForPool binds a per-pool script template to one pool's friendly name.
func scriptForPool(script string, pool *schema.StoragePool) string {
	return fmt.Sprintf(script, quote(pool.FriendlyName))
}

const (
	// scriptPools enumerates all storage pools; primordial filtering happens
	// after decoding, so the query stays a plain enumeration.
	scriptPools = `Get-StoragePool | ` +
		`Select-Object ObjectId,FriendlyName,IsPrimordial,HealthStatus | ` +
		`ConvertTo-Json -Depth 4`

	// scriptVirtualDisks enumerates the virtual disks associated with one
	// pool, selected by friendly name.
	scriptVirtualDisks = `Get-StoragePool -FriendlyName %s | Get-VirtualDisk | ` +
		`Select-Object FriendlyName,Name,Size,HealthStatus | ` +
		`ConvertTo-Json -Depth 4`

	// scriptPooledDisks enumerates the physical disks associated with one
	// pool, selected by friendly name.
	scriptPooledDisks = `Get-StoragePool -FriendlyName %s | Get-PhysicalDisk | ` +
		`Select-Object ObjectId,UniqueId,SerialNumber,FriendlyName,BusType,MediaType,HealthStatus,OperationalStatus | ` +
		`ConvertTo-Json -Depth 4`

	// scriptAllDisks enumerates all physical disks through the
	// pool-association source (the raw management class).
	scriptAllDisks = `Get-CimInstance -Namespace root/microsoft/windows/storage -ClassName MSFT_PhysicalDisk | ` +
		`Select-Object ObjectId,UniqueId,SerialNumber,FriendlyName,BusType,MediaType,HealthStatus,OperationalStatus | ` +
		`ConvertTo-Json -Depth 4`

	// scriptDiskDetails enumerates all physical disks through the richer
	// listing used for classification enrichment; the enum-typed fields are
	// cast to their friendly string form.
	scriptDiskDetails = `Get-PhysicalDisk | ` +
		`Select-Object UniqueId,SerialNumber,FriendlyName,Model,` +
		`@{Name='BusType';Expression={[string]$_.BusType}},` +
		`@{Name='MediaType';Expression={[string]$_.MediaType}},` +
		`HealthStatus | ` +
		`ConvertTo-Json -Depth 4`
)

// Pools enumerates all non-primordial storage pools in query order. Failure
// degrades to an empty list.
func (h *Handler) Pools(ctx context.Context) []*schema.StoragePool {
	pools := query[schema.StoragePool](ctx, h, "pools", scriptPools)

	visible := make([]*schema.StoragePool, 0, len(pools))
	for _, pool := range pools {
		if pool.IsPrimordial {
			continue
		}
		visible = append(visible, pool)
	}

	return visible
}

// VirtualDisks enumerates the virtual disks associated with a pool in query
// order. Failure degrades to an empty list.
func (h *Handler) VirtualDisks(ctx context.Context, pool *schema.StoragePool) []*schema.VirtualDisk {
	return query[schema.VirtualDisk](ctx, h, "virtual disks",
		scriptForPool(scriptVirtualDisks, pool))
}

// PooledDisks enumerates the physical disks associated with a pool in query
// order. Failure degrades to an empty list.
func (h *Handler) PooledDisks(ctx context.Context, pool *schema.StoragePool) []*schema.PhysicalDisk {
	return query[schema.PhysicalDisk](ctx, h, "pooled disks",
		scriptForPool(scriptPooledDisks, pool))
}

// AllDisks enumerates all physical disks through the pool-association source
// in query order. Failure degrades to an empty list.
func (h *Handler) AllDisks(ctx context.Context) []*schema.PhysicalDisk {
	return query[schema.PhysicalDisk](ctx, h, "all disks", scriptAllDisks)
}

// DiskDetails enumerates all physical disks through the richer listing used
// for classification enrichment. Failure degrades to an empty list.
func (h *Handler) DiskDetails(ctx context.Context) []*schema.DiskDetail {
	return query[schema.DiskDetail](ctx, h, "disk details", scriptDiskDetails)
}

// query runs one script and decodes its output, degrading any failure to an
// empty result list.
func query[T any](ctx context.Context, h *Handler, what string, script string) []*T {
	out, err := h.cmdHandler.Run(ctx, script)
	if err != nil {
		slog.Debug("Storage query failed.", "what", what, "err", err)

		return nil
	}

	records, err := decodeList[T](out)
	if err != nil {
		slog.Debug("Storage query output not decodable.", "what", what, "err", err)

		return nil
	}

	return records
}
