package shim

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const configFilename = "config.json"

// The slice of the bundle's OCI runtime config this runtime cares
// about: the rootfs and the process args.
type bundleConfig struct {
	Root struct {
		Path string `json:"path"`
	} `json:"root"`
	Process struct {
		Args []string `json:"args"`
		Env  []string `json:"env"`
	} `json:"process"`
}

// Config is a validated bundle: a rootfs and the brainfuck script to
// run inside it.
type Config struct {
	Root       string
	Entrypoint string
}

func isBrainfuckScript(path string) bool {
	switch filepath.Ext(path) {
	case ".bf", ".b", ".brainfuck":
		return true
	}
	return false
}

// ReadConfig reads and validates the bundle config at path. The
// process must have exactly one arg: a brainfuck script which exists
// under the rootfs.
func ReadConfig(path string) (*Config, error) {
	filePath := filepath.Join(path, configFilename)
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file %s not found in bundle %s", configFilename, path)
		}
		return nil, err
	}

	var raw bundleConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configFilename, err)
	}

	if raw.Root.Path == "" {
		return nil, fmt.Errorf("root path not set in %s", configFilename)
	}

	if len(raw.Process.Args) != 1 {
		return nil, fmt.Errorf("expected a single entrypoint arg in the CMD, got %d", len(raw.Process.Args))
	}

	entrypoint := raw.Process.Args[0]
	if !isBrainfuckScript(entrypoint) {
		return nil, fmt.Errorf("entrypoint %s is not a brainfuck script", entrypoint)
	}

	script := filepath.Join(raw.Root.Path, entrypoint)
	if _, err := os.Stat(script); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("script %s does not exist under rootfs %s: %w", entrypoint, raw.Root.Path, err)
		}
		return nil, fmt.Errorf("checking script %s: %w", entrypoint, err)
	}

	return &Config{
		Root:       raw.Root.Path,
		Entrypoint: entrypoint,
	}, nil
}

// FullPath is the resolved path of the script under the rootfs.
func (c *Config) FullPath() string {
	return filepath.Join(c.Root, c.Entrypoint)
}
