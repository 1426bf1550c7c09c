package switchinfo

import (
	"fmt"
	"io"
	"strings"

	"github.com/portscout/portscout/pkg/models"
)

// WriteReport prints the switch header and one aligned line per port.
// ports may be a filtered subset of sw.Ports; a nil or empty slice reports
// that nothing matched.
func WriteReport(w io.Writer, sw *models.Switch, ports []models.Port) {
	fmt.Fprintf(w, "IP: %s Name: %s Make: %s Model: %s\n",
		sw.Address, sw.Name, capitalize(sw.Make), sw.Model)

	if len(ports) == 0 {
		fmt.Fprintln(w, "No matching ports were found")
		return
	}

	for _, port := range ports {
		fmt.Fprintf(w, "   Port: %-25s   Vlan: %-14s    Desc: %s\n",
			port.Name, port.VLAN, port.Description)
	}
	fmt.Fprintf(w, "Number of ports listed: %d\n", len(ports))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
