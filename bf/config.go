package bf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTapeSize = 1024
	DefaultTapeGrow = 128
)

// Config sets the tape geometry of an Interpreter. The zero value
// picks the defaults, so callers that don't care can pass Config{}.
type Config struct {
	// TapeSize is the initial tape length in cells.
	TapeSize int `yaml:"tape_size"`
	// TapeGrow is how many zeroed cells are appended when the data
	// pointer moves past the current end of the tape.
	TapeGrow int `yaml:"tape_grow"`
}

func DefaultConfig() Config {
	return Config{
		TapeSize: DefaultTapeSize,
		TapeGrow: DefaultTapeGrow,
	}
}

func (c Config) withDefaults() Config {
	if c.TapeSize <= 0 {
		c.TapeSize = DefaultTapeSize
	}
	if c.TapeGrow <= 0 {
		c.TapeGrow = DefaultTapeGrow
	}
	return c
}

// LoadConfig reads interpreter options from a yaml file. Fields not
// present in the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parsing options file %s: %w", path, err)
	}
	if config.TapeSize <= 0 {
		return config, fmt.Errorf("parsing options file %s: tape_size must be positive, got %d", path, config.TapeSize)
	}
	if config.TapeGrow <= 0 {
		return config, fmt.Errorf("parsing options file %s: tape_grow must be positive, got %d", path, config.TapeGrow)
	}
	return config, nil
}
