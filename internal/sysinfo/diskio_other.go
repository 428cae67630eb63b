//go:build !linux

package sysinfo

// isWholeDisk accepts every device: outside Linux gopsutil reports disks only.
func isWholeDisk(string) bool {
	return true
}
