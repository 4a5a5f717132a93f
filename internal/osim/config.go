package osim

// Config models optional configuration for NewMemoryManager and
// NewResourceArbiter. A nil *Config, or any zero-valued field within one,
// falls back to the production defaults mandated by the specification
// (real-time partition [0,64), user partition [64,1024), and the resource
// unit counts below) — mirroring the BatcherConfig pattern of defaulting
// zero fields rather than requiring every caller to spell out the full
// set of constants.
type Config struct {
	// RealTimePartitionSize is the capacity, in blocks, of the real-time
	// (priority 0) memory partition. Defaults to 64.
	RealTimePartitionSize int

	// UserPartitionSize is the capacity, in blocks, of the user (priority
	// >= 1) memory partition. Defaults to 960.
	UserPartitionSize int

	// ResourceUnits overrides the initial unit counts per Resource.
	// Any Resource absent from the map falls back to its documented
	// default (Scanner 1, Printer 2, Modem 1, SataDevice 2).
	ResourceUnits map[Resource]int
}

const (
	defaultRealTimePartitionSize = 64
	defaultUserPartitionSize     = 960
)

func defaultResourceUnits() map[Resource]int {
	return map[Resource]int{
		Scanner:    1,
		Printer:    2,
		Modem:      1,
		SataDevice: 2,
	}
}

func (c *Config) realTimePartitionSize() int {
	if c == nil || c.RealTimePartitionSize == 0 {
		return defaultRealTimePartitionSize
	}
	return c.RealTimePartitionSize
}

func (c *Config) userPartitionSize() int {
	if c == nil || c.UserPartitionSize == 0 {
		return defaultUserPartitionSize
	}
	return c.UserPartitionSize
}

func (c *Config) resourceUnits() map[Resource]int {
	units := defaultResourceUnits()
	if c == nil {
		return units
	}
	for r, n := range c.ResourceUnits {
		if n > 0 {
			units[r] = n
		}
	}
	return units
}
