//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package sysinfo

import (
	"context"

	"github.com/shirou/gopsutil/v3/host"
)

// platformIdentity has no uname here, so the fields come from gopsutil.
func platformIdentity(ctx context.Context) (*Identity, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, err
	}
	return &Identity{
		System:   info.OS,
		NodeName: info.Hostname,
		Release:  info.KernelVersion,
		Version:  info.PlatformVersion,
		Machine:  info.KernelArch,
	}, nil
}
