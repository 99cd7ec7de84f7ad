package spaces

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// DefaultExecutable is the PowerShell executable used when no override is
// configured. The Windows PowerShell binary is present on every supported
// system; pwsh can be configured where preferred.
const DefaultExecutable = "powershell.exe"

// PowerShellProvider is an implementation of a command provider that executes
// query scripts through a PowerShell child process.
type PowerShellProvider struct {
	// Executable is the PowerShell binary to invoke. Empty means
	// [DefaultExecutable].
	Executable string
}

// Run executes a query script and returns its standard output. The script is
// passed as a single command in a non-interactive, profile-less session.
func (p *PowerShellProvider) Run(ctx context.Context, script string) ([]byte, error) {
	executable := p.Executable
	if executable == "" {
		executable = DefaultExecutable
	}

	cmd := exec.CommandContext(ctx, executable,
		"-NoProfile", "-NonInteractive", "-Command", script,
	)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("(spaces-powershell) query failed: %w", err)
	}

	return stdout.Bytes(), nil
}
