//go:build linux

package sysinfo

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var cpuSysfsRoot = "/sys/devices/system/cpu"

func readFreqRange() (freqRange, bool) {
	return readFreqRangeFrom(cpuSysfsRoot)
}

// readFreqRangeFrom averages the cpufreq values (kHz) of every core under root.
// A core without a readable current frequency is ignored.
func readFreqRangeFrom(root string) (freqRange, bool) {
	dirs, _ := filepath.Glob(filepath.Join(root, "cpu[0-9]*", "cpufreq"))

	var sum freqRange
	n := 0
	for _, dir := range dirs {
		cur, ok := readKHz(dir, "scaling_cur_freq", "cpuinfo_cur_freq")
		if !ok {
			continue
		}
		lo, _ := readKHz(dir, "scaling_min_freq", "cpuinfo_min_freq")
		hi, _ := readKHz(dir, "scaling_max_freq", "cpuinfo_max_freq")
		sum.current += cur
		sum.min += lo
		sum.max += hi
		n++
	}
	if n == 0 {
		return freqRange{}, false
	}

	const kHzPerMHz = 1000
	d := float64(n) * kHzPerMHz
	return freqRange{min: sum.min / d, max: sum.max / d, current: sum.current / d}, true
}

// readKHz returns the first of names under dir that parses as a number.
func readKHz(dir string, names ...string) (float64, bool) {
	for _, name := range names {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}
