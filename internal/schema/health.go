package schema

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// HealthKind discriminates the runtime shape of a [HealthValue].
type HealthKind int

const (
	// HealthUnset is an absent or null health representation.
	HealthUnset HealthKind = iota

	// HealthNumber is a numeric health code.
	HealthNumber

	// HealthText is a textual health representation.
	HealthText

	// HealthList is a sequence of health representations.
	HealthList
)

// HealthValue is the raw health representation of a storage record. The
// management subsystem reports health as a numeric code, an enum-like string,
// free text or a sequence thereof, depending on source and version; the value
// is carried verbatim and only interpreted during classification.
//
// The zero value is the unset representation.
type HealthValue struct {
	Kind   HealthKind
	Number int64
	Text   string
	List   []HealthValue
}

// UnmarshalJSON decodes any JSON health representation into a [HealthValue].
// It never fails on shape: unrecognized shapes decode as the unset value.
func (h *HealthValue) UnmarshalJSON(data []byte) error {
	*h = HealthValue{}

	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&raw); err != nil {
		return nil //nolint:nilerr
	}

	*h = healthFromAny(raw)

	return nil
}

// MarshalJSON encodes a [HealthValue] back into its raw JSON shape.
func (h HealthValue) MarshalJSON() ([]byte, error) {
	switch h.Kind {
	case HealthNumber:
		return json.Marshal(h.Number)
	case HealthText:
		return json.Marshal(h.Text)
	case HealthList:
		return json.Marshal(h.List)
	default:
		return []byte("null"), nil
	}
}

// healthFromAny maps a decoded JSON value onto the health union.
func healthFromAny(raw any) HealthValue {
	switch v := raw.(type) {
	case json.Number:
		if n, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			return HealthValue{Kind: HealthNumber, Number: n}
		}
		if f, err := v.Float64(); err == nil {
			return HealthValue{Kind: HealthNumber, Number: int64(f)}
		}

		return HealthValue{Kind: HealthText, Text: v.String()}
	case string:
		return HealthValue{Kind: HealthText, Text: v}
	case []any:
		list := make([]HealthValue, 0, len(v))
		for _, item := range v {
			list = append(list, healthFromAny(item))
		}

		return HealthValue{Kind: HealthList, List: list}
	default:
		return HealthValue{}
	}
}
