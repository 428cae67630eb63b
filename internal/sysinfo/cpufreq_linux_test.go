//go:build linux

package sysinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFreq(t *testing.T, root, cpu string, values map[string]string) {
	t.Helper()
	dir := filepath.Join(root, cpu, "cpufreq")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, v := range values {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(v+"\n"), 0o644))
	}
}

func TestReadFreqRangeFrom(t *testing.T) {
	root := t.TempDir()
	writeFreq(t, root, "cpu0", map[string]string{
		"scaling_cur_freq": "2000000",
		"scaling_min_freq": "800000",
		"scaling_max_freq": "3600000",
	})
	writeFreq(t, root, "cpu1", map[string]string{
		"scaling_cur_freq": "3000000",
		"scaling_min_freq": "800000",
		"scaling_max_freq": "3600000",
	})
	// cpufreq directory without a current frequency does not count.
	writeFreq(t, root, "cpu2", map[string]string{"scaling_min_freq": "1"})
	require.NoError(t, os.MkdirAll(filepath.Join(root, "cpuidle"), 0o755))

	fr, ok := readFreqRangeFrom(root)
	require.True(t, ok)
	assert.InDelta(t, 800.0, fr.min, 1e-9)
	assert.InDelta(t, 3600.0, fr.max, 1e-9)
	assert.InDelta(t, 2500.0, fr.current, 1e-9)
}

func TestReadFreqRangeFromCpuinfoFallback(t *testing.T) {
	root := t.TempDir()
	writeFreq(t, root, "cpu0", map[string]string{
		"cpuinfo_cur_freq": "1500000",
		"cpuinfo_min_freq": "400000",
		"cpuinfo_max_freq": "4200000",
	})

	fr, ok := readFreqRangeFrom(root)
	require.True(t, ok)
	assert.InDelta(t, 400.0, fr.min, 1e-9)
	assert.InDelta(t, 4200.0, fr.max, 1e-9)
	assert.InDelta(t, 1500.0, fr.current, 1e-9)
}

func TestReadFreqRangeFromMissing(t *testing.T) {
	_, ok := readFreqRangeFrom(t.TempDir())
	assert.False(t, ok)
}
