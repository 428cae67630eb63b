package report

import (
	"context"

	"sysreport/internal/sysinfo"
)

// NetworkInfo prints IPv4 and link-layer addresses per interface. Other
// families, IPv6 included, are left out.
func (r *Reporter) NetworkInfo(ctx context.Context) error {
	r.header(SectionNetwork)

	addrs, err := r.p.InterfaceAddresses(ctx)
	if err != nil {
		return err
	}
	for _, a := range addrs {
		switch a.Family {
		case sysinfo.FamilyIPv4:
			r.printf("=== Interface: %s ===\n", a.Interface)
			r.printf("  IP address:\t%s\n", a.Address)
			r.printf("  Netmask:\t%s\n", a.Netmask)
			r.printf("  Broadcast IP:\t%s\n", a.Broadcast)
		case sysinfo.FamilyLinkLayer:
			r.printf("=== Interface: %s ===\n", a.Interface)
			r.printf("  MAC Address:\t\t%s\n", a.Address)
			r.printf("  Netmask:\t\t%s\n", a.Netmask)
			r.printf("  Broadcast MAC:\t%s\n", a.Broadcast)
		}
	}

	io, err := r.p.NetIO(ctx)
	if err != nil {
		return err
	}
	r.printf("\nTotal bytes sent:\t%s\n", FormatUint(io.BytesSent))
	r.printf("Total bytes received:\t%s\n", FormatUint(io.BytesRecv))
	return r.err
}
