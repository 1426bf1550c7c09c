// Package probe performs the pre-poll reachability check: a single
// sysDescr read over SNMP that decides whether a full switch poll should
// proceed. An unreachable or wrongly-credentialed device fails here,
// before any command-line polling starts.
package probe

import (
	"errors"
	"fmt"
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/portscout/portscout/internal/oids"
)

// Config defines the target and credentials for the reachability check.
type Config struct {
	Target    string
	Port      uint16
	Community string
	Timeout   time.Duration
	Retries   int
}

// Check reads sysDescr from the target and returns its value. An error
// means the device is unreachable, not answering SNMP, or rejecting the
// community string; callers abort the poll for that device.
func Check(config Config) (string, error) {
	config = normalizeConfig(config)
	if config.Target == "" {
		return "", errors.New("SNMP target is required")
	}

	gs := &gosnmp.GoSNMP{
		Target:    config.Target,
		Port:      config.Port,
		Version:   gosnmp.Version2c,
		Community: config.Community,
		Timeout:   config.Timeout,
		Retries:   config.Retries,
	}

	if err := gs.Connect(); err != nil {
		return "", fmt.Errorf("SNMP connect failed: %w", err)
	}
	defer func() {
		if gs.Conn != nil {
			_ = gs.Conn.Close()
		}
	}()

	packet, err := gs.Get([]string{oids.SysDescr})
	if err != nil {
		return "", fmt.Errorf("unable to communicate with %s:%d: %w", config.Target, config.Port, err)
	}
	if packet == nil || len(packet.Variables) == 0 {
		return "", fmt.Errorf("unable to communicate with %s:%d: response contained no variables", config.Target, config.Port)
	}

	return pduString(packet.Variables[0]), nil
}

func normalizeConfig(config Config) Config {
	if config.Port == 0 {
		config.Port = 161
	}
	if config.Community == "" {
		config.Community = "public"
	}
	if config.Timeout == 0 {
		config.Timeout = 2 * time.Second
	}
	if config.Retries == 0 {
		config.Retries = 1
	}
	return config
}

func pduString(pdu gosnmp.SnmpPDU) string {
	switch value := pdu.Value.(type) {
	case string:
		return value
	case []byte:
		return string(value)
	default:
		return ""
	}
}
