//go:build linux

package sysinfo

import (
	"os"
	"path/filepath"
)

// isWholeDisk reports whether name is a block device rather than one of its
// partitions. Only whole disks are listed under /sys/block; HOST_SYS moves
// the sysfs root the same way it does for gopsutil.
func isWholeDisk(name string) bool {
	root := os.Getenv("HOST_SYS")
	if root == "" {
		root = "/sys"
	}
	_, err := os.Stat(filepath.Join(root, "block", name))
	return err == nil
}
