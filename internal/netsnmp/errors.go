package netsnmp

import (
	"fmt"
	"strings"
)

// Marker substrings produced by the Net-SNMP tools. Matched byte-for-byte,
// case-sensitive.
const (
	markerNoResponse     = "No Response from"
	markerUnknownHost    = "Unknown host"
	markerNotATable      = "Was that a table?"
	markerNoSuchInstance = "No Such Instance"
	markerNoSuchObject   = "No Such Object"
)

// InvalidAddressError reports a target that failed local hostname/IP
// validation. No subprocess is spawned when this is returned.
type InvalidAddressError struct {
	Input string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("%q does not appear to be a valid hostname or IP address", e.Input)
}

// TimeoutError reports a device that did not answer within the timeout
// forwarded to the external tool.
type TimeoutError struct {
	Address string
	Port    int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout: no response received from %s:%d", e.Address, e.Port)
}

// UnknownHostError reports a target the external tool itself could not
// resolve.
type UnknownHostError struct {
	Address string
}

func (e *UnknownHostError) Error() string {
	return fmt.Sprintf("unknown host %s", e.Address)
}

// NotATableError reports an OID that snmptable could not interpret as a
// table.
type NotATableError struct {
	OID string
}

func (e *NotATableError) Error() string {
	return fmt.Sprintf("snmptable could not identify %s as a table; "+
		"check that the OID is correct and that a MIB for it is installed", e.OID)
}

// UnknownCommandError is the catch-all for command failures that match no
// known marker. It carries the attempted command line and the tool's stderr
// verbatim, and callers treat it as fatal.
type UnknownCommandError struct {
	Cmdline string
	Stderr  string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("SNMP command failed\nattempted command: %s\nerror received: %s", e.Cmdline, e.Stderr)
}

// classifyFailure maps a failed command outcome onto the error taxonomy, in
// priority order. oid and table only matter for snmptable invocations.
func classifyFailure(out Outcome, cmdline, address string, port int, oid string, table bool) error {
	stderr := string(out.Stderr)
	switch {
	case strings.Contains(stderr, markerNoResponse):
		return &TimeoutError{Address: address, Port: port}
	case strings.Contains(stderr, markerUnknownHost):
		return &UnknownHostError{Address: address}
	case table && strings.Contains(stderr, markerNotATable):
		return &NotATableError{OID: oid}
	default:
		return &UnknownCommandError{Cmdline: cmdline, Stderr: stderr}
	}
}
