package sysinfo

import (
	"context"
	"time"
)

// Provider is the set of OS accessors the report is built from.
type Provider interface {
	Identity(ctx context.Context) (*Identity, error)
	BootTime(ctx context.Context) (time.Time, error)
	CPU(ctx context.Context) (*CPUInfo, error)
	Memory(ctx context.Context) (*MemoryInfo, error)
	Swap(ctx context.Context) (*SwapInfo, error)
	// Partitions returns one result per mounted partition. A partition whose
	// usage is not readable for lack of permission carries Err instead of
	// failing the whole call.
	Partitions(ctx context.Context) ([]PartitionResult, error)
	DiskIO(ctx context.Context) (*DiskIOCounters, error)
	InterfaceAddresses(ctx context.Context) ([]InterfaceAddress, error)
	NetIO(ctx context.Context) (*NetIOCounters, error)
}

type Identity struct {
	System    string `json:"system"`
	NodeName  string `json:"node_name"`
	Release   string `json:"release"`
	Version   string `json:"version"`
	Machine   string `json:"machine"`
	Processor string `json:"processor"`
}

type CPUInfo struct {
	PhysicalCores  int       `json:"physical_cores"`
	LogicalCores   int       `json:"logical_cores"`
	MinMHz         float64   `json:"min_mhz"`
	MaxMHz         float64   `json:"max_mhz"`
	CurrentMHz     float64   `json:"current_mhz"`
	PerCorePercent []float64 `json:"per_core_percent"`
	TotalPercent   float64   `json:"total_percent"`
}

type MemoryInfo struct {
	Total       uint64  `json:"total_bytes"`
	Available   uint64  `json:"available_bytes"`
	Used        uint64  `json:"used_bytes"`
	UsedPercent float64 `json:"used_percent"`
}

type SwapInfo struct {
	Total       uint64  `json:"total_bytes"`
	Free        uint64  `json:"free_bytes"`
	Used        uint64  `json:"used_bytes"`
	UsedPercent float64 `json:"used_percent"`
}

type Partition struct {
	Device     string `json:"device"`
	Mountpoint string `json:"mountpoint"`
	Fstype     string `json:"fstype"`
}

type PartitionUsage struct {
	Total       uint64  `json:"total_bytes"`
	Used        uint64  `json:"used_bytes"`
	Free        uint64  `json:"free_bytes"`
	UsedPercent float64 `json:"used_percent"`
}

// PartitionResult holds either Usage or Err, never both.
type PartitionResult struct {
	Partition
	Usage *PartitionUsage
	Err   error
}

type DiskIOCounters struct {
	ReadBytes  uint64 `json:"read_bytes"`
	WriteBytes uint64 `json:"write_bytes"`
}

// AddressFamily is the closed set of address kinds the report knows about.
type AddressFamily int

const (
	FamilyOther AddressFamily = iota
	FamilyIPv4
	FamilyLinkLayer
)

func (f AddressFamily) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyLinkLayer:
		return "link"
	default:
		return "other"
	}
}

// InterfaceAddress is one address bound to a network interface. Netmask and
// Broadcast are empty when the interface has none.
type InterfaceAddress struct {
	Interface string        `json:"interface"`
	Family    AddressFamily `json:"family"`
	Address   string        `json:"address"`
	Netmask   string        `json:"netmask"`
	Broadcast string        `json:"broadcast"`
}

type NetIOCounters struct {
	BytesSent uint64 `json:"bytes_sent"`
	BytesRecv uint64 `json:"bytes_recv"`
}
