// Package spaces implements the disk inventory collector against the Windows
// Storage Spaces management subsystem. All queries are read-only and
// best-effort: a failing or unparsable query degrades to an empty result list
// and is logged at debug level only, so a transient subsystem hiccup renders
// as a missing section instead of crashing the widget.
package spaces

import (
	"context"
)

// commandProvider executes a query script against the management subsystem
// and returns its raw serialized output.
type commandProvider interface {
	Run(ctx context.Context, script string) ([]byte, error)
}

// Handler is the principal implementation of the disk inventory collector.
type Handler struct {
	cmdHandler commandProvider
}

// NewHandler returns a pointer to a new collector [Handler].
func NewHandler(cmdHandler commandProvider) *Handler {
	return &Handler{
		cmdHandler: cmdHandler,
	}
}
