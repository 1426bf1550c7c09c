package switchinfo

import "regexp"

// vendorRule ties a switch make to the sysDescr patterns that identify it.
// Rules are evaluated in order and the first whose detect pattern matches
// wins.
type vendorRule struct {
	switchMake string
	detect     *regexp.Regexp
	model      *regexp.Regexp
	modelGroup int
}

var vendorRules = []vendorRule{
	{
		switchMake: "cisco",
		detect:     regexp.MustCompile(`Cisco`),
		model:      regexp.MustCompile(`Cisco IOS Software, (IOS-XE Software, )?(Catalyst )?(\S+)\b`),
		modelGroup: 3,
	},
	{
		switchMake: "nortel",
		detect:     regexp.MustCompile(`Nortel|Avaya`),
		model:      regexp.MustCompile(`Ethernet (Routing )?Switch (\S+)\b`),
		modelGroup: 2,
	},
}

// UnknownModel is reported when a make is recognized but its model pattern
// finds nothing in sysDescr.
const UnknownModel = "unknown model"

// DetectVendor identifies the switch make and model from its sysDescr
// string. Both returns are empty for unrecognized vendors.
func DetectVendor(sysDescr string) (string, string) {
	for _, rule := range vendorRules {
		if !rule.detect.MatchString(sysDescr) {
			continue
		}
		groups := rule.model.FindStringSubmatch(sysDescr)
		if groups == nil {
			return rule.switchMake, UnknownModel
		}
		return rule.switchMake, groups[rule.modelGroup]
	}
	return "", ""
}
