// Package correlation joins physical disk records across the two query
// sources. The pool-association source and the richer global listing can both
// be partially populated, with different identity fields present across
// hardware and driver combinations; an ordered multi-key fallback maximizes
// correct joins without false positives.
package correlation

import "github.com/desertwitch/spacewatch/internal/schema"

// keyedTable is one (key-extractor, lookup-table) pair of the correlation
// precedence order.
type keyedTable struct {
	extract func(*schema.PhysicalDisk) string
	table   map[string]*schema.DiskDetail
}

// Index correlates pool-association disk records to the richer global disk
// listing. Lookups evaluate the precedence order UniqueId, SerialNumber,
// FriendlyName; keys match by case-sensitive exact equality and empty keys
// never match.
type Index struct {
	tables []keyedTable
}

// NewIndex returns a pointer to a new [Index] over the given richer listing.
// Where multiple listing records share a key, the first one wins.
func NewIndex(details []*schema.DiskDetail) *Index {
	byUniqueID := make(map[string]*schema.DiskDetail)
	bySerial := make(map[string]*schema.DiskDetail)
	byName := make(map[string]*schema.DiskDetail)

	for _, detail := range details {
		record(byUniqueID, detail.UniqueID, detail)
		record(bySerial, detail.SerialNumber, detail)
		record(byName, detail.FriendlyName, detail)
	}

	return &Index{
		tables: []keyedTable{
			{extract: func(d *schema.PhysicalDisk) string { return d.UniqueID }, table: byUniqueID},
			{extract: func(d *schema.PhysicalDisk) string { return d.SerialNumber }, table: bySerial},
			{extract: func(d *schema.PhysicalDisk) string { return d.FriendlyName }, table: byName},
		},
	}
}

// record stores a detail under a key, unless the key is empty or taken.
func record(table map[string]*schema.DiskDetail, key string, detail *schema.DiskDetail) {
	if key == "" {
		return
	}
	if _, exists := table[key]; exists {
		return
	}

	table[key] = detail
}

// Match returns the best-matching richer listing record for a disk, or nil
// when no identity key matches. A nil result is expected for disks the richer
// listing does not know; classification then falls back to the disk's own
// fields.
func (ix *Index) Match(disk *schema.PhysicalDisk) *schema.DiskDetail {
	for _, kt := range ix.tables {
		key := kt.extract(disk)
		if key == "" {
			continue
		}
		if detail, exists := kt.table[key]; exists {
			return detail
		}
	}

	return nil
}
