package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"sysreport/internal/logger"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	gopsnet "github.com/shirou/gopsutil/v3/net"
)

// SampleInterval is how long CPU utilization is measured for.
const SampleInterval = 100 * time.Millisecond

// Collector reads the live host through gopsutil.
type Collector struct{}

var _ Provider = (*Collector)(nil)

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Identity(ctx context.Context) (*Identity, error) {
	id, err := platformIdentity(ctx)
	if err != nil {
		logger.SysInfo.Error().Err(err).Msg("Failed to get system identity")
		return nil, fmt.Errorf("failed to get system identity: %w", err)
	}

	// Processor stays empty when the model is unknown.
	if info, err := cpu.InfoWithContext(ctx); err == nil && len(info) > 0 {
		id.Processor = info[0].ModelName
	} else if err != nil {
		logger.SysInfo.Warn().Err(err).Msg("No CPU model information available")
	}

	logger.SysInfo.Debug().
		Str("system", id.System).
		Str("node", id.NodeName).
		Str("release", id.Release).
		Str("machine", id.Machine).
		Msg("Got system identity")

	return id, nil
}

func (c *Collector) BootTime(ctx context.Context) (time.Time, error) {
	bt, err := host.BootTimeWithContext(ctx)
	if err != nil {
		logger.SysInfo.Error().Err(err).Msg("Failed to get boot time")
		return time.Time{}, fmt.Errorf("failed to get boot time: %w", err)
	}
	return time.Unix(int64(bt), 0), nil
}

func (c *Collector) CPU(ctx context.Context) (*CPUInfo, error) {
	start := time.Now()

	physical, err := cpu.CountsWithContext(ctx, false)
	if err != nil {
		logger.SysInfo.Error().Err(err).Msg("Failed to get physical core count")
		return nil, fmt.Errorf("failed to get physical core count: %w", err)
	}
	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		logger.SysInfo.Error().Err(err).Msg("Failed to get logical core count")
		return nil, fmt.Errorf("failed to get logical core count: %w", err)
	}

	info := &CPUInfo{
		PhysicalCores: physical,
		LogicalCores:  logical,
	}

	if fr, ok := readFreqRange(); ok {
		info.MinMHz, info.MaxMHz, info.CurrentMHz = fr.min, fr.max, fr.current
	} else {
		stats, err := cpu.InfoWithContext(ctx)
		if err != nil {
			logger.SysInfo.Error().Err(err).Msg("Failed to get CPU frequency")
			return nil, fmt.Errorf("failed to get CPU frequency: %w", err)
		}
		if len(stats) > 0 {
			info.MaxMHz = stats[0].Mhz
			info.CurrentMHz = stats[0].Mhz
		}
	}

	perCore, err := cpu.PercentWithContext(ctx, SampleInterval, true)
	if err != nil {
		logger.SysInfo.Error().Err(err).Msg("Failed to get per-core CPU usage")
		return nil, fmt.Errorf("failed to get per-core CPU usage: %w", err)
	}
	info.PerCorePercent = perCore

	total, err := cpu.PercentWithContext(ctx, SampleInterval, false)
	if err != nil {
		logger.SysInfo.Error().Err(err).Msg("Failed to get CPU usage")
		return nil, fmt.Errorf("failed to get CPU usage: %w", err)
	}
	if len(total) > 0 {
		info.TotalPercent = total[0]
	} else {
		logger.SysInfo.Warn().Msg("No CPU usage data available")
	}

	logger.SysInfo.Debug().
		Dur("duration", time.Since(start)).
		Int("physical_cores", info.PhysicalCores).
		Int("logical_cores", info.LogicalCores).
		Float64("current_mhz", info.CurrentMHz).
		Float64("cpu_usage", info.TotalPercent).
		Msg("Got CPU information")

	return info, nil
}

func (c *Collector) Memory(ctx context.Context) (*MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		logger.SysInfo.Error().Err(err).Msg("Failed to get memory information")
		return nil, fmt.Errorf("failed to get memory information: %w", err)
	}

	logger.SysInfo.Debug().
		Uint64("memory_total", vm.Total).
		Uint64("memory_available", vm.Available).
		Float64("memory_used_percent", vm.UsedPercent).
		Msg("Got memory information")

	return &MemoryInfo{
		Total:       vm.Total,
		Available:   vm.Available,
		Used:        vm.Used,
		UsedPercent: vm.UsedPercent,
	}, nil
}

func (c *Collector) Swap(ctx context.Context) (*SwapInfo, error) {
	sw, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		logger.SysInfo.Error().Err(err).Msg("Failed to get swap information")
		return nil, fmt.Errorf("failed to get swap information: %w", err)
	}
	return &SwapInfo{
		Total:       sw.Total,
		Free:        sw.Free,
		Used:        sw.Used,
		UsedPercent: sw.UsedPercent,
	}, nil
}

func (c *Collector) Partitions(ctx context.Context) ([]PartitionResult, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		logger.SysInfo.Error().Err(err).Msg("Failed to list disk partitions")
		return nil, fmt.Errorf("failed to list disk partitions: %w", err)
	}
	return partitionResults(parts, func(path string) (*disk.UsageStat, error) {
		return disk.UsageWithContext(ctx, path)
	})
}

// partitionResults queries usage for every partition. Permission failures are
// recorded on the partition; anything else aborts.
func partitionResults(parts []disk.PartitionStat, usage func(string) (*disk.UsageStat, error)) ([]PartitionResult, error) {
	results := make([]PartitionResult, 0, len(parts))
	for _, p := range parts {
		res := PartitionResult{Partition: Partition{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			Fstype:     p.Fstype,
		}}

		u, err := usage(p.Mountpoint)
		switch {
		case err == nil:
			res.Usage = &PartitionUsage{
				Total:       u.Total,
				Used:        u.Used,
				Free:        u.Free,
				UsedPercent: u.UsedPercent,
			}
		case IsPermission(err):
			logger.SysInfo.Warn().
				Err(err).
				Str("device", p.Device).
				Str("mountpoint", p.Mountpoint).
				Msg("Partition usage not accessible")
			res.Err = err
		default:
			logger.SysInfo.Error().
				Err(err).
				Str("mountpoint", p.Mountpoint).
				Msg("Failed to get partition usage")
			return nil, fmt.Errorf("failed to get usage of %s: %w", p.Mountpoint, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// IsPermission reports whether err is a permission failure.
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

func (c *Collector) DiskIO(ctx context.Context) (*DiskIOCounters, error) {
	counters, err := disk.IOCountersWithContext(ctx)
	if err != nil {
		logger.SysInfo.Error().Err(err).Msg("Failed to get disk I/O counters")
		return nil, fmt.Errorf("failed to get disk I/O counters: %w", err)
	}

	return sumDiskIO(counters, isWholeDisk), nil
}

// sumDiskIO adds up the counters of whole disks. Partition counters are
// already included in their parent disk's.
func sumDiskIO(counters map[string]disk.IOCountersStat, wholeDisk func(string) bool) *DiskIOCounters {
	sum := &DiskIOCounters{}
	for name, counter := range counters {
		if !wholeDisk(name) {
			continue
		}
		sum.ReadBytes += counter.ReadBytes
		sum.WriteBytes += counter.WriteBytes
	}
	return sum
}

func (c *Collector) InterfaceAddresses(ctx context.Context) ([]InterfaceAddress, error) {
	ifaces, err := gopsnet.InterfacesWithContext(ctx)
	if err != nil {
		logger.SysInfo.Error().Err(err).Msg("Failed to list network interfaces")
		return nil, fmt.Errorf("failed to list network interfaces: %w", err)
	}
	sort.SliceStable(ifaces, func(i, j int) bool { return ifaces[i].Index < ifaces[j].Index })

	var addrs []InterfaceAddress
	for _, iface := range ifaces {
		addrs = append(addrs, interfaceAddresses(iface)...)
	}

	logger.SysInfo.Debug().
		Int("interfaces", len(ifaces)).
		Int("addresses", len(addrs)).
		Msg("Got network interfaces")

	return addrs, nil
}

func (c *Collector) NetIO(ctx context.Context) (*NetIOCounters, error) {
	counters, err := gopsnet.IOCountersWithContext(ctx, false)
	if err != nil {
		logger.SysInfo.Error().Err(err).Msg("Failed to get network I/O counters")
		return nil, fmt.Errorf("failed to get network I/O counters: %w", err)
	}
	if len(counters) == 0 {
		return &NetIOCounters{}, nil
	}
	return &NetIOCounters{
		BytesSent: counters[0].BytesSent,
		BytesRecv: counters[0].BytesRecv,
	}, nil
}
