package spaces

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// decodeList decodes serialized query output into a slice of records.
// ConvertTo-Json collapses single-element collections into a bare object, so
// both an array and a single object are accepted; empty output decodes as an
// empty list.
func decodeList[T any](data []byte) ([]*T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var list []*T
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("(spaces-decode) %w: %w", ErrUnexpectedOutput, err)
		}

		return list, nil
	}

	var single T
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, fmt.Errorf("(spaces-decode) %w: %w", ErrUnexpectedOutput, err)
	}

	return []*T{&single}, nil
}

// quote escapes a value for use inside a single-quoted PowerShell string.
func quote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
