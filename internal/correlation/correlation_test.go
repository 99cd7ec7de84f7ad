package correlation

import (
	"testing"

	"github.com/desertwitch/spacewatch/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIndex_Match_Precedence verifies the key precedence order: a UniqueId
// match wins over a SerialNumber match even when both tables hold candidates.
func TestIndex_Match_Precedence(t *testing.T) {
	t.Parallel()

	byUnique := &schema.DiskDetail{UniqueID: "uid-1", SerialNumber: "other-serial", Model: "UniqueMatch"}
	bySerial := &schema.DiskDetail{UniqueID: "uid-2", SerialNumber: "serial-1", Model: "SerialMatch"}

	index := NewIndex([]*schema.DiskDetail{bySerial, byUnique})

	disk := &schema.PhysicalDisk{UniqueID: "uid-1", SerialNumber: "serial-1"}

	got := index.Match(disk)
	require.NotNil(t, got, "a match was expected")
	assert.Equal(t, "UniqueMatch", got.Model, "UniqueId match should win over SerialNumber match")
}

// TestIndex_Match_SerialFallback verifies that an empty UniqueId falls
// through to the SerialNumber table.
func TestIndex_Match_SerialFallback(t *testing.T) {
	t.Parallel()

	detail := &schema.DiskDetail{SerialNumber: "serial-1", Model: "SerialMatch"}
	index := NewIndex([]*schema.DiskDetail{detail})

	disk := &schema.PhysicalDisk{UniqueID: "", SerialNumber: "serial-1"}

	got := index.Match(disk)
	require.NotNil(t, got)
	assert.Equal(t, "SerialMatch", got.Model)
}

// TestIndex_Match_NameFallback verifies the final FriendlyName fallback.
func TestIndex_Match_NameFallback(t *testing.T) {
	t.Parallel()

	detail := &schema.DiskDetail{FriendlyName: "Disk 3", Model: "NameMatch"}
	index := NewIndex([]*schema.DiskDetail{detail})

	disk := &schema.PhysicalDisk{FriendlyName: "Disk 3"}

	got := index.Match(disk)
	require.NotNil(t, got)
	assert.Equal(t, "NameMatch", got.Model)
}

// TestIndex_Match_NoMatch verifies that disks unknown to the richer listing
// yield no match, which is expected and not an error.
func TestIndex_Match_NoMatch(t *testing.T) {
	t.Parallel()

	index := NewIndex([]*schema.DiskDetail{
		{UniqueID: "uid-1", SerialNumber: "serial-1", FriendlyName: "Disk 1"},
	})

	t.Run("Success_DifferentKeys", func(t *testing.T) {
		t.Parallel()

		disk := &schema.PhysicalDisk{UniqueID: "uid-9", SerialNumber: "serial-9", FriendlyName: "Disk 9"}
		assert.Nil(t, index.Match(disk))
	})

	t.Run("Success_EmptyKeysNeverMatch", func(t *testing.T) {
		t.Parallel()

		disk := &schema.PhysicalDisk{}
		assert.Nil(t, index.Match(disk))
	})
}

// TestIndex_Match_CaseSensitive verifies that key comparison is exact.
func TestIndex_Match_CaseSensitive(t *testing.T) {
	t.Parallel()

	index := NewIndex([]*schema.DiskDetail{{SerialNumber: "Serial-1"}})

	disk := &schema.PhysicalDisk{SerialNumber: "serial-1"}
	assert.Nil(t, index.Match(disk))
}

// TestNewIndex_FirstRecordWinsPerKey verifies that duplicate keys in the
// richer listing keep the first record.
func TestNewIndex_FirstRecordWinsPerKey(t *testing.T) {
	t.Parallel()

	first := &schema.DiskDetail{SerialNumber: "serial-1", Model: "First"}
	second := &schema.DiskDetail{SerialNumber: "serial-1", Model: "Second"}

	index := NewIndex([]*schema.DiskDetail{first, second})

	got := index.Match(&schema.PhysicalDisk{SerialNumber: "serial-1"})
	require.NotNil(t, got)
	assert.Equal(t, "First", got.Model)
}
