package correlation

import "github.com/desertwitch/spacewatch/internal/schema"

// Unpooled returns all disks of the global listing that are not a member of
// any pool's physical disk list, preserving the global listing's order.
// Membership is keyed on ObjectID; a disk without an ObjectID is never
// considered pooled, favoring visibility over suppression.
//
// Pool membership and richer-listing correlation use different identity
// namespaces from different query sources; a disk identified inconsistently
// across the two can appear both inside a pool and here. This is a known
// limitation of the underlying data, not resolved by this calculation.
func Unpooled(all []*schema.PhysicalDisk, pooled [][]*schema.PhysicalDisk) []*schema.PhysicalDisk {
	member := make(map[string]struct{})

	for _, group := range pooled {
		for _, disk := range group {
			if disk.ObjectID != "" {
				member[disk.ObjectID] = struct{}{}
			}
		}
	}

	unpooled := make([]*schema.PhysicalDisk, 0, len(all))

	for _, disk := range all {
		if disk.ObjectID == "" {
			unpooled = append(unpooled, disk)

			continue
		}
		if _, pooled := member[disk.ObjectID]; !pooled {
			unpooled = append(unpooled, disk)
		}
	}

	return unpooled
}
