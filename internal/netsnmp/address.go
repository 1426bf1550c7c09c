package netsnmp

import (
	"net"
	"net/netip"
)

// ValidateAddress resolves input through the system resolver and returns
// the first candidate as a canonical IPv4/IPv6 literal. It performs no
// network I/O beyond name resolution and never contacts the SNMP service.
// A fresh lookup happens on every call; results are not cached.
func ValidateAddress(input string) (string, error) {
	candidates, err := net.LookupHost(input)
	if err != nil || len(candidates) == 0 {
		return "", &InvalidAddressError{Input: input}
	}

	addr, err := netip.ParseAddr(candidates[0])
	if err != nil {
		return "", &InvalidAddressError{Input: input}
	}

	return addr.String(), nil
}
