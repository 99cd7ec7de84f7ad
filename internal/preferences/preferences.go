// Package preferences persists the widget's user preferences: overlay
// position, pin state and per-pool expand state. The store is exclusively
// owned by the UI loop; loading is always total (missing or corrupt files
// yield defaults) and saving replaces the file atomically so a crash
// mid-write leaves either the old or a fully new valid file.
package preferences

// Preferences is the only persisted entity of the widget.
type Preferences struct {
	// Left and Top are the overlay offset; nil means the platform default
	// placement.
	Left *float64 `json:"left"`
	Top  *float64 `json:"top"`

	// Pinned keeps the overlay from being hidden.
	Pinned bool `json:"pinned"`

	// PoolExpanded maps pool ObjectIds to their expand state. Entries are
	// created lazily on first toggle and never removed; stale entries for
	// pools that no longer exist are unused but harmless.
	PoolExpanded map[string]bool `json:"pool_expanded"`
}

// Default returns a pointer to a new [Preferences] with all documented
// defaults: unset position, unpinned, no expand states.
func Default() *Preferences {
	return &Preferences{
		PoolExpanded: make(map[string]bool),
	}
}

// SetPosition records the overlay offset.
func (p *Preferences) SetPosition(left float64, top float64) {
	p.Left = &left
	p.Top = &top
}

// Position returns the overlay offset, or ok=false when no position has been
// recorded and the platform default placement applies.
func (p *Preferences) Position() (left float64, top float64, ok bool) {
	if p.Left == nil || p.Top == nil {
		return 0, 0, false
	}

	return *p.Left, *p.Top, true
}

// SetPoolExpanded records the expand state of one pool, creating the mapping
// lazily.
func (p *Preferences) SetPoolExpanded(objectID string, expanded bool) {
	if p.PoolExpanded == nil {
		p.PoolExpanded = make(map[string]bool)
	}

	p.PoolExpanded[objectID] = expanded
}

// PoolIsExpanded returns the expand state of one pool, defaulting to expanded
// for pools without a stored preference.
func (p *Preferences) PoolIsExpanded(objectID string) bool {
	if state, exists := p.PoolExpanded[objectID]; exists {
		return state
	}

	return true
}
