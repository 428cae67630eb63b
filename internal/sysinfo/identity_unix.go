//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package sysinfo

import (
	"context"

	"golang.org/x/sys/unix"
)

// platformIdentity fills everything but Processor from uname(2).
func platformIdentity(_ context.Context) (*Identity, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return nil, err
	}
	return &Identity{
		System:   unix.ByteSliceToString(u.Sysname[:]),
		NodeName: unix.ByteSliceToString(u.Nodename[:]),
		Release:  unix.ByteSliceToString(u.Release[:]),
		Version:  unix.ByteSliceToString(u.Version[:]),
		Machine:  unix.ByteSliceToString(u.Machine[:]),
	}, nil
}
