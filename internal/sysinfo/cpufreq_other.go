//go:build !linux

package sysinfo

// readFreqRange has no source outside Linux; callers fall back to cpu.Info.
func readFreqRange() (freqRange, bool) {
	return freqRange{}, false
}
