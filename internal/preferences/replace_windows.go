//go:build windows

package preferences

import "golang.org/x/sys/windows"

// replaceFile atomically replaces dst with src, writing through the disk
// cache so the replacement survives an immediate power loss.
func replaceFile(src string, dst string) error {
	srcPtr, err := windows.UTF16PtrFromString(src)
	if err != nil {
		return err
	}

	dstPtr, err := windows.UTF16PtrFromString(dst)
	if err != nil {
		return err
	}

	return windows.MoveFileEx(srcPtr, dstPtr,
		windows.MOVEFILE_REPLACE_EXISTING|windows.MOVEFILE_WRITE_THROUGH)
}
