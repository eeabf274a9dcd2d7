package util

import "strings"

// FilterOSArgs returns a copy of args with the values of any flags not named in allowed replaced by asterisks.
// Flags may be given as "--name value", "--name=value", "-name value" or "-name=value".
func FilterOSArgs(args []string, allowed []string) []string {
	var (
		sanitized     = make([]string, len(args))
		sanitizeNext  = false
		allowedByName = make(map[string]struct{}, len(allowed))
	)
	for _, name := range allowed {
		allowedByName[strings.ToLower(name)] = struct{}{}
	}
	for i, arg := range args {
		if !strings.HasPrefix(arg, "-") || arg == "-" || arg == "--" {
			if sanitizeNext {
				sanitized[i] = strings.Repeat("*", len(arg))
			} else {
				sanitized[i] = arg
			}
			sanitizeNext = false
			continue
		}
		name := strings.TrimLeft(arg, "-")
		value, hasValue := "", false
		if idx := strings.Index(name, "="); idx >= 0 {
			value, hasValue = name[idx+1:], true
			name = name[:idx]
		}
		name = strings.ToLower(name)
		_, ok := allowedByName[name]
		switch {
		case hasValue && !ok:
			sanitized[i] = strings.TrimSuffix(arg, value) + strings.Repeat("*", len(value))
			sanitizeNext = false
		case hasValue:
			sanitized[i] = arg
			sanitizeNext = false
		default:
			sanitized[i] = arg
			sanitizeNext = !ok
		}
	}
	return sanitized
}
