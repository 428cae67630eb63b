// Package sysinfotest provides a canned sysinfo.Provider for tests.
package sysinfotest

import (
	"context"
	"time"

	"sysreport/internal/sysinfo"
)

// Provider returns canned snapshots. A non-nil entry in Errs makes the
// accessor of that name fail: "identity", "boot", "cpu", "memory", "swap",
// "partitions", "diskio", "addrs" or "netio".
type Provider struct {
	Host    sysinfo.Identity
	Boot    time.Time
	Cores   sysinfo.CPUInfo
	Mem     sysinfo.MemoryInfo
	SwapMem sysinfo.SwapInfo
	Parts   []sysinfo.PartitionResult
	Disk    sysinfo.DiskIOCounters
	Addrs   []sysinfo.InterfaceAddress
	Net     sysinfo.NetIOCounters
	Errs    map[string]error
}

var _ sysinfo.Provider = (*Provider)(nil)

func (f *Provider) Identity(context.Context) (*sysinfo.Identity, error) {
	if err := f.Errs["identity"]; err != nil {
		return nil, err
	}
	id := f.Host
	return &id, nil
}

func (f *Provider) BootTime(context.Context) (time.Time, error) {
	return f.Boot, f.Errs["boot"]
}

func (f *Provider) CPU(context.Context) (*sysinfo.CPUInfo, error) {
	if err := f.Errs["cpu"]; err != nil {
		return nil, err
	}
	c := f.Cores
	return &c, nil
}

func (f *Provider) Memory(context.Context) (*sysinfo.MemoryInfo, error) {
	if err := f.Errs["memory"]; err != nil {
		return nil, err
	}
	m := f.Mem
	return &m, nil
}

func (f *Provider) Swap(context.Context) (*sysinfo.SwapInfo, error) {
	if err := f.Errs["swap"]; err != nil {
		return nil, err
	}
	s := f.SwapMem
	return &s, nil
}

func (f *Provider) Partitions(context.Context) ([]sysinfo.PartitionResult, error) {
	if err := f.Errs["partitions"]; err != nil {
		return nil, err
	}
	return f.Parts, nil
}

func (f *Provider) DiskIO(context.Context) (*sysinfo.DiskIOCounters, error) {
	if err := f.Errs["diskio"]; err != nil {
		return nil, err
	}
	d := f.Disk
	return &d, nil
}

func (f *Provider) InterfaceAddresses(context.Context) ([]sysinfo.InterfaceAddress, error) {
	if err := f.Errs["addrs"]; err != nil {
		return nil, err
	}
	return f.Addrs, nil
}

func (f *Provider) NetIO(context.Context) (*sysinfo.NetIOCounters, error) {
	if err := f.Errs["netio"]; err != nil {
		return nil, err
	}
	n := f.Net
	return &n, nil
}

// Healthy returns a provider describing a small, fully readable host.
func Healthy() *Provider {
	return &Provider{
		Host: sysinfo.Identity{
			System:    "Linux",
			NodeName:  "build-01",
			Release:   "6.8.0-45-generic",
			Version:   "#45-Ubuntu SMP PREEMPT_DYNAMIC",
			Machine:   "x86_64",
			Processor: "AMD EPYC 7B13",
		},
		Boot: time.Date(2026, time.October, 1, 8, 30, 5, 0, time.Local),
		Cores: sysinfo.CPUInfo{
			PhysicalCores:  2,
			LogicalCores:   3,
			MinMHz:         800,
			MaxMHz:         3600,
			CurrentMHz:     2450.5,
			PerCorePercent: []float64{10.0, 20.0, 30.0},
			TotalPercent:   20.0,
		},
		Mem: sysinfo.MemoryInfo{Total: 8 << 30, Available: 6 << 30, Used: 2 << 30, UsedPercent: 25},
		Parts: []sysinfo.PartitionResult{
			{
				Partition: sysinfo.Partition{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
				Usage:     &sysinfo.PartitionUsage{Total: 100 << 30, Used: 40 << 30, Free: 60 << 30, UsedPercent: 40},
			},
		},
		Disk: sysinfo.DiskIOCounters{ReadBytes: 1253656678, WriteBytes: 1253656},
		Addrs: []sysinfo.InterfaceAddress{
			{Interface: "eth0", Family: sysinfo.FamilyLinkLayer, Address: "52:54:00:12:34:56", Broadcast: "ff:ff:ff:ff:ff:ff"},
			{Interface: "eth0", Family: sysinfo.FamilyIPv4, Address: "192.168.1.10", Netmask: "255.255.255.0", Broadcast: "192.168.1.255"},
		},
		Net: sysinfo.NetIOCounters{BytesSent: 1024, BytesRecv: 2048},
	}
}
