// internal/config/config.go
package config

type Config struct {
	Probe ProbeConfig `yaml:"probe"`
}

type ProbeConfig struct {
	Source SourceConfig  `yaml:"source"`
	Poll   PollConfig    `yaml:"poll"`
	Output OutputConfig  `yaml:"output"`
	Status *StatusConfig `yaml:"status"` // optional, opt-in
	Tags   []TagConfig   `yaml:"tags"`
}

// ---- SOURCE ----

type SourceConfig struct {
	Endpoint  string          `yaml:"endpoint"`
	UnitID    uint8           `yaml:"unit_id"`
	TimeoutMs int             `yaml:"timeout_ms"`
	MemoryMap MemoryMapConfig `yaml:"memory_map"`
}

// MemoryMapConfig places controller areas on the gateway's registers.
// Missing areas are not addressable.
type MemoryMapConfig struct {
	DB map[int]uint16 `yaml:"db"` // data block number -> holding register base
	MK *uint16        `yaml:"mk"`
	PA *uint16        `yaml:"pa"`
	PE *uint16        `yaml:"pe"` // input registers
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- OUTPUT ----

type OutputConfig struct {
	Format   string `yaml:"format"` // text | json | cbor | msgpack
	Path     string `yaml:"path"`   // empty => stdout
	OnChange bool   `yaml:"on_change"`
}

// ---- DEVICE STATUS BLOCK ----

type StatusConfig struct {
	DB         int    `yaml:"db"`
	Offset     int    `yaml:"offset"`
	DeviceName string `yaml:"device_name"`
}

// ---- TAGS ----

type TagConfig struct {
	Name   string `yaml:"name"`
	Area   string `yaml:"area"` // db | mk | pa | pe
	DB     int    `yaml:"db"`
	Type   string `yaml:"type"` // codec type name, e.g. "real", "string[10]"
	Offset int    `yaml:"offset"`
	Bit    int    `yaml:"bit"`
}
