// Package oids is the read-only registry of the OIDs the poller reads.
// Initialized once at startup and never mutated.
package oids

// System and interface OIDs from SNMPv2-MIB, IF-MIB, and Q-BRIDGE-MIB.
const (
	SysName             = ".1.3.6.1.2.1.1.5.0"
	SysDescr            = ".1.3.6.1.2.1.1.1.0"
	IfNumber            = ".1.3.6.1.2.1.2.1.0"
	IfTable             = ".1.3.6.1.2.1.2.2.1"
	IfIndex             = ".1.3.6.1.2.1.2.2.1.1"
	IfDescr             = ".1.3.6.1.2.1.2.2.1.2"
	IfType              = ".1.3.6.1.2.1.2.2.1.3"
	IfPhysAddress       = ".1.3.6.1.2.1.2.2.1.6"
	IfXTable            = ".1.3.6.1.2.1.31.1.1.1"
	IfName              = ".1.3.6.1.2.1.31.1.1.1.1"
	IfAlias             = ".1.3.6.1.2.1.31.1.1.1.18"
	Dot1qVlanStaticName = ".1.3.6.1.2.1.17.7.1.4.3.1.1"
)

// IfTypeEthernet is the IANAifType code for ethernetCsmacd, a standard
// ethernet port.
const IfTypeEthernet = "6"

// nativeVlan maps a switch make to its vendor-specific untagged-VLAN
// column: vmVlan from CISCO-VLAN-MEMBERSHIP-MIB and rcVlanPortDefaultVlanId
// from RC-VLAN-MIB.
var nativeVlan = map[string]string{
	"cisco":  ".1.3.6.1.4.1.9.9.68.1.2.2.1.2",
	"nortel": ".1.3.6.1.4.1.2272.1.3.3.1.7",
}

// NativeVlan returns the native-VLAN column OID for a switch make. The
// second return is false for makes without a known mapping.
func NativeVlan(switchMake string) (string, bool) {
	oid, ok := nativeVlan[switchMake]
	return oid, ok
}
