package classification

import (
	"strings"

	"github.com/desertwitch/spacewatch/internal/schema"
)

// IconTag is a normalized disk type tag for rendering.
type IconTag string

const (
	// IconNVMe is an NVMe-attached disk.
	IconNVMe IconTag = "NVMe"

	// IconSSD is a solid-state disk.
	IconSSD IconTag = "SSD"

	// IconHDD is a rotational or conventionally attached disk.
	IconHDD IconTag = "HDD"

	// IconVD is a virtual disk.
	IconVD IconTag = "VD"

	// IconUnknown is a disk whose type could not be determined.
	IconUnknown IconTag = "?"
)

// hddBusTypes are bus types that imply a conventional disk when no media
// type information is available.
var hddBusTypes = []string{"SATA", "ATA", "SAS", "USB", "SD"} //nolint:gochecknoglobals

// Label returns the bracketed render form of the tag.
func (t IconTag) Label() string {
	return "[" + string(t) + "]"
}

// ClassifyIcon maps bus and media type strings onto an [IconTag]. Matching is
// case-insensitive substring containment, first matching rule wins: NVMe bus,
// then SSD media, then HDD media, then the conventional bus fallback set,
// then [IconUnknown].
func ClassifyIcon(busType string, mediaType string) IconTag {
	bus := strings.ToUpper(busType)
	media := strings.ToUpper(mediaType)

	switch {
	case strings.Contains(bus, "NVME"):
		return IconNVMe
	case strings.Contains(media, "SSD"):
		return IconSSD
	case strings.Contains(media, "HDD"):
		return IconHDD
	}

	for _, known := range hddBusTypes {
		if strings.Contains(bus, known) {
			return IconHDD
		}
	}

	return IconUnknown
}

// ClassifyDisk classifies a physical disk, preferring the correlated richer
// record's bus and media fields over the pool-association record's own. A nil
// detail falls back to the record itself, whose fields may be empty and thus
// yield [IconUnknown].
func ClassifyDisk(disk *schema.PhysicalDisk, detail *schema.DiskDetail) IconTag {
	busType, mediaType := disk.BusType, disk.MediaType
	if detail != nil {
		busType, mediaType = detail.BusType, detail.MediaType
	}

	return ClassifyIcon(string(busType), string(mediaType))
}
