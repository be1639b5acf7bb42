package descriptor

import (
	"fmt"
	"regexp"
	"strconv"
)

// Key identifies a registered definition. Two keys are equal when both the
// name and the version match.
type Key struct {
	Name    string
	Version int
}

// NewKey creates a Key.
func NewKey(name string, version int) Key {
	return Key{Name: name, Version: version}
}

// String serializes the key into its canonical `Name@Version` form.
func (k Key) String() string {
	return fmt.Sprintf("%s@%d", k.Name, k.Version)
}

// keyRegex matches the canonical form, e.g. `SphereMask@1`.
var keyRegex = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)@(\d+)$`)

// ParseKey creates a Key from its canonical string representation.
func ParseKey(raw string) (Key, error) {
	if raw == "" {
		return Key{}, fmt.Errorf("descriptor key cannot be empty")
	}

	matches := keyRegex.FindStringSubmatch(raw)
	if matches == nil {
		return Key{}, fmt.Errorf("invalid descriptor key format: %q (expected Name@Version)", raw)
	}

	version, err := strconv.Atoi(matches[2])
	if err != nil {
		return Key{}, fmt.Errorf("invalid descriptor key version in %q: %w", raw, err)
	}

	return NewKey(matches[1], version), nil
}
