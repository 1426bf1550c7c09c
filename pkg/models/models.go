// Package models holds the result types shared between the poller and the
// CLI output layers.
package models

// Switch describes a polled network switch and its ethernet ports.
type Switch struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Make    string `json:"make,omitempty"`
	Model   string `json:"model,omitempty"`
	Ports   []Port `json:"ports"`
}

// Port describes one ethernet port on a switch. VLAN and Description keep
// the textual values the device reported; VLAN is empty when native-VLAN
// detection is unsupported for the switch make.
type Port struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	VLAN        string `json:"vlan,omitempty"`
	Description string `json:"description"`
}
