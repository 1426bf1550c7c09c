package switchinfo

import (
	"fmt"
	"regexp"

	"github.com/portscout/portscout/pkg/models"
)

// FilterKind selects which port property a filter matches against.
type FilterKind string

const (
	// FilterDescription matches the keyword as a pattern anywhere in the
	// port description.
	FilterDescription FilterKind = "desc"

	// FilterVLAN matches the keyword as a whole word against the port's
	// native VLAN.
	FilterVLAN FilterKind = "vlan"
)

// Default keywords applied when a filter kind is requested without one.
const (
	defaultDescriptionKeyword = "UNUSED"
	defaultVLANKeyword        = "2"
)

// FilterPorts returns the ports matching the requested criterion, in their
// original order. An empty keyword falls back to the kind's default.
func FilterPorts(ports []models.Port, kind FilterKind, keyword string) ([]models.Port, error) {
	var matches func(models.Port) bool

	switch kind {
	case FilterDescription:
		if keyword == "" {
			keyword = defaultDescriptionKeyword
		}
		re, err := regexp.Compile(keyword)
		if err != nil {
			return nil, fmt.Errorf("invalid description filter %q: %w", keyword, err)
		}
		matches = func(port models.Port) bool {
			return re.MatchString(port.Description)
		}

	case FilterVLAN:
		if keyword == "" {
			keyword = defaultVLANKeyword
		}
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("invalid vlan filter %q: %w", keyword, err)
		}
		matches = func(port models.Port) bool {
			return re.MatchString(port.VLAN)
		}

	default:
		return nil, fmt.Errorf("unknown filter kind %q (want desc or vlan)", kind)
	}

	var filtered []models.Port
	for _, port := range ports {
		if matches(port) {
			filtered = append(filtered, port)
		}
	}
	return filtered, nil
}
