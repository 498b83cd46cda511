// internal/config/areas.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/s7probe/internal/s7"
)

// ParseArea maps a config area name to its protocol code.
func ParseArea(name string) (s7.Area, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "db":
		return s7.AreaDB, nil
	case "mk", "m":
		return s7.AreaMK, nil
	case "pa", "q":
		return s7.AreaPA, nil
	case "pe", "i":
		return s7.AreaPE, nil
	default:
		return 0, fmt.Errorf("unknown area %q", name)
	}
}

// mapped reports whether the memory map places area/db on registers.
func (m MemoryMapConfig) mapped(area s7.Area, db int) bool {
	switch area {
	case s7.AreaDB:
		_, ok := m.DB[db]
		return ok
	case s7.AreaMK:
		return m.MK != nil
	case s7.AreaPA:
		return m.PA != nil
	case s7.AreaPE:
		return m.PE != nil
	}
	return false
}
