package utils

import (
	"fmt"
	"strings"
)

// ParseBool converts common textual flags to bool.
// It accepts 1/0, true/false, yes/no and on/off in any case.
func ParseBool(val string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", val)
	}
}

// FormatFromExtension maps an asset name's extension to a format key.
// Unknown extensions fall back to json.
func FormatFromExtension(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return "yaml"
	default:
		return "json"
	}
}
