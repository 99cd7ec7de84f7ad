//go:build !windows

package preferences

import "os"

// replaceFile atomically replaces dst with src.
func replaceFile(src string, dst string) error {
	return os.Rename(src, dst)
}
