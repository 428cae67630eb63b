package sysinfo

import (
	"net"
	"slices"

	gopsnet "github.com/shirou/gopsutil/v3/net"
)

const (
	broadcastMAC = "ff:ff:ff:ff:ff:ff"
	zeroMAC      = "00:00:00:00:00:00"
)

// interfaceAddresses flattens one interface into classified addresses: the
// link-layer address first, then the bound IP addresses in OS order.
func interfaceAddresses(iface gopsnet.InterfaceStat) []InterfaceAddress {
	canBroadcast := slices.Contains(iface.Flags, "broadcast")

	// Loopback has a link-layer entry even though no hardware address is set.
	hw := iface.HardwareAddr
	if hw == "" && slices.Contains(iface.Flags, "loopback") {
		hw = zeroMAC
	}

	var out []InterfaceAddress
	if hw != "" {
		a := InterfaceAddress{
			Interface: iface.Name,
			Family:    FamilyLinkLayer,
			Address:   hw,
		}
		if canBroadcast {
			a.Broadcast = broadcastMAC
		}
		out = append(out, a)
	}

	for _, addr := range iface.Addrs {
		a := classifyAddr(addr.Addr, canBroadcast)
		a.Interface = iface.Name
		out = append(out, a)
	}
	return out
}

// classifyAddr resolves an address in CIDR (or bare) notation. Netmask and
// broadcast are only derived for IPv4.
func classifyAddr(s string, canBroadcast bool) InterfaceAddress {
	ip, ipnet, err := net.ParseCIDR(s)
	if err != nil {
		ip = net.ParseIP(s)
	}

	v4 := ip.To4()
	if v4 == nil {
		return InterfaceAddress{Family: FamilyOther, Address: s}
	}

	a := InterfaceAddress{Family: FamilyIPv4, Address: v4.String()}
	if ipnet == nil {
		return a
	}

	mask := ipnet.Mask
	if len(mask) == net.IPv6len {
		mask = mask[12:]
	}
	a.Netmask = net.IP(mask).String()

	if canBroadcast {
		bcast := make(net.IP, net.IPv4len)
		for i := range bcast {
			bcast[i] = v4[i] | ^mask[i]
		}
		a.Broadcast = bcast.String()
	}
	return a
}
