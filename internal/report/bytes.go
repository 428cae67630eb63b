package report

import "fmt"

var byteUnits = []string{"", "K", "M", "G", "T", "P"}

// FormatBytes scales a byte count by 1024 until it drops below 1024 or the
// units run out, e.g. 1253656 -> "1.20MB". Values past the P range keep P.
func FormatBytes(b float64) string {
	unit := 0
	for b >= 1024 && unit < len(byteUnits)-1 {
		b /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f%sB", b, byteUnits[unit])
}

// FormatUint is FormatBytes for counters.
func FormatUint(b uint64) string {
	return FormatBytes(float64(b))
}
