package conversion

import (
	"fmt"
	"strings"
)

// Key identifies a registered conversion pair, "<input>-to-<output>".
type Key string

const keySeparator = "-to-"

// MakeKey builds the registry key for a format pair.
func MakeKey(input, output Format) Key {
	return Key(string(input) + keySeparator + string(output))
}

// ParseKey splits a key back into its input and output formats.
func ParseKey(key Key) (Format, Format, error) {
	parts := strings.SplitN(string(key), keySeparator, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed conversion key %q", key)
	}
	return Format(parts[0]), Format(parts[1]), nil
}

func (k Key) String() string { return string(k) }
