package classification

import (
	"strings"

	"github.com/desertwitch/spacewatch/internal/schema"
)

// UnknownName is the placeholder label for a record with no usable identity
// field.
const UnknownName = "(unknown)"

// DisplayName resolves a render label for any record, returning the first
// non-empty (after trimming) of FriendlyName, Model, Name and SerialNumber.
// The result is never empty: records without any usable field resolve to
// [UnknownName].
func DisplayName(record schema.Labeled) string {
	for _, candidate := range []string{
		record.GetFriendlyName(),
		record.GetModel(),
		record.GetName(),
		record.GetSerialNumber(),
	} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}

	return UnknownName
}
