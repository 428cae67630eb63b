package sysinfo

// freqRange is a CPU frequency range in MHz as reported by the OS.
type freqRange struct {
	min, max, current float64
}
