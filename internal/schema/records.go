package schema

import (
	"bytes"
	"encoding/json"
)

// Labeled describes the identity fields a record needs to expose for display
// name resolution. Records return the empty string for fields they do not
// carry.
type Labeled interface {
	GetFriendlyName() string
	GetModel() string
	GetName() string
	GetSerialNumber() string
}

// StringList is a slice of strings that also decodes from a single JSON
// string. The management subsystem collapses single-element lists into bare
// values when serializing.
type StringList []string

// UnmarshalJSON decodes either a JSON array of strings or a single string.
// Unrecognized shapes decode as an empty list.
func (s *StringList) UnmarshalJSON(data []byte) error {
	*s = nil

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '[' {
		var list []string
		if err := json.Unmarshal(trimmed, &list); err == nil {
			*s = list
		}

		return nil
	}

	var single string
	if err := json.Unmarshal(trimmed, &single); err == nil {
		*s = StringList{single}
	}

	return nil
}

// FlexString is a string that also decodes from a JSON number, carrying the
// number's decimal form. The management subsystem serializes enum-typed
// fields as numeric codes or friendly strings depending on version.
type FlexString string

// UnmarshalJSON decodes either a JSON string or a JSON number. Unrecognized
// shapes decode as the empty string.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	*f = ""

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			*f = FlexString(s)
		}

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err == nil {
		*f = FlexString(n.String())
	}

	return nil
}

// StoragePool is a user-visible storage pool, aggregating physical disks into
// a single resizable resource. Primordial pools are filtered out during
// collection and never reach the rest of the pipeline.
type StoragePool struct {
	ObjectID     string      `json:"ObjectId"`
	FriendlyName string      `json:"FriendlyName"`
	HealthStatus HealthValue `json:"HealthStatus"`
	IsPrimordial bool        `json:"IsPrimordial"`
}

// GetFriendlyName returns the pool's friendly name.
func (p *StoragePool) GetFriendlyName() string { return p.FriendlyName }

// GetModel returns the empty string; pools carry no model.
func (p *StoragePool) GetModel() string { return "" }

// GetName returns the empty string; pools carry no secondary name.
func (p *StoragePool) GetName() string { return "" }

// GetSerialNumber returns the empty string; pools carry no serial number.
func (p *StoragePool) GetSerialNumber() string { return "" }

// VirtualDisk is a logical volume carved out of a pool's combined capacity.
// It is scoped to its owning pool and recreated on every refresh.
type VirtualDisk struct {
	FriendlyName string      `json:"FriendlyName"`
	Name         string      `json:"Name"`
	Size         *uint64     `json:"Size"`
	HealthStatus HealthValue `json:"HealthStatus"`
}

// GetFriendlyName returns the virtual disk's friendly name.
func (v *VirtualDisk) GetFriendlyName() string { return v.FriendlyName }

// GetModel returns the empty string; virtual disks carry no model.
func (v *VirtualDisk) GetModel() string { return "" }

// GetName returns the virtual disk's secondary name.
func (v *VirtualDisk) GetName() string { return v.Name }

// GetSerialNumber returns the empty string; virtual disks carry no serial.
func (v *VirtualDisk) GetSerialNumber() string { return "" }

// PhysicalDisk is a physical disk record from the pool-association source.
// Identity fields can be partially populated depending on hardware and
// driver; ObjectID is the management subsystem's own stable identifier.
type PhysicalDisk struct {
	ObjectID          string      `json:"ObjectId"`
	UniqueID          string      `json:"UniqueId"`
	SerialNumber      string      `json:"SerialNumber"`
	FriendlyName      string      `json:"FriendlyName"`
	BusType           FlexString  `json:"BusType"`
	MediaType         FlexString  `json:"MediaType"`
	HealthStatus      HealthValue `json:"HealthStatus"`
	OperationalStatus StringList  `json:"OperationalStatus"`
}

// GetFriendlyName returns the disk's friendly name.
func (d *PhysicalDisk) GetFriendlyName() string { return d.FriendlyName }

// GetModel returns the empty string; this source carries no model field.
func (d *PhysicalDisk) GetModel() string { return "" }

// GetName returns the empty string; this source carries no secondary name.
func (d *PhysicalDisk) GetName() string { return "" }

// GetSerialNumber returns the disk's serial number.
func (d *PhysicalDisk) GetSerialNumber() string { return d.SerialNumber }

// DiskDetail is a physical disk record from the richer global listing. It is
// consumed only for classification enrichment, joined to [PhysicalDisk]
// records by identity correlation.
type DiskDetail struct {
	UniqueID     string      `json:"UniqueId"`
	SerialNumber string      `json:"SerialNumber"`
	FriendlyName string      `json:"FriendlyName"`
	Model        string      `json:"Model"`
	BusType      FlexString  `json:"BusType"`
	MediaType    FlexString  `json:"MediaType"`
	HealthStatus HealthValue `json:"HealthStatus"`
}

// GetFriendlyName returns the disk's friendly name.
func (d *DiskDetail) GetFriendlyName() string { return d.FriendlyName }

// GetModel returns the disk's model designation.
func (d *DiskDetail) GetModel() string { return d.Model }

// GetName returns the empty string; this source carries no secondary name.
func (d *DiskDetail) GetName() string { return "" }

// GetSerialNumber returns the disk's serial number.
func (d *DiskDetail) GetSerialNumber() string { return d.SerialNumber }
