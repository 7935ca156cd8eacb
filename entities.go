package microxml

import (
	"fmt"
	"strconv"
	"strings"
)

// entity resolves the content between & and ; to its replacement text
func entity(name string) (string, error) {
	switch name {
	case "amp":
		return "&", nil
	case "lt":
		return "<", nil
	case "gt":
		return ">", nil
	case "quot":
		return "\"", nil
	case "apos":
		return "'", nil
	}

	if strings.HasPrefix(name, "#") {
		digits, base := name[1:], 10
		if strings.HasPrefix(digits, "x") || strings.HasPrefix(digits, "X") {
			digits, base = digits[1:], 16
		}

		code, err := strconv.ParseInt(digits, base, 32)
		if err != nil || code <= 0 {
			return "", fmt.Errorf("invalid character reference &%s;", name)
		}

		return string(rune(code)), nil
	}

	return "", fmt.Errorf("unknown entity &%s;", name)
}

// escape replaces markup characters in text content with entity references
func escape(value string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(value)
}

// escapeAttr additionally replaces quotes, attribute values are always
// rendered in double quotes
func escapeAttr(value string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;").Replace(value)
}
