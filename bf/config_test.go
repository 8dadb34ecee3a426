package bf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MarcinKonowalczyk/bfvm/bf"
	"github.com/MarcinKonowalczyk/bfvm/utils"
)

func writeOptionsFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.yaml")
	err := os.WriteFile(path, []byte(contents), 0644)
	utils.AssertNoError(t, err)
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeOptionsFile(t, "tape_size: 16\ntape_grow: 4\n")
	config, err := bf.LoadConfig(path)
	utils.AssertNoError(t, err)
	utils.AssertEqual(t, config.TapeSize, 16)
	utils.AssertEqual(t, config.TapeGrow, 4)
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	path := writeOptionsFile(t, "tape_size: 16\n")
	config, err := bf.LoadConfig(path)
	utils.AssertNoError(t, err)
	utils.AssertEqual(t, config.TapeSize, 16)
	utils.AssertEqual(t, config.TapeGrow, bf.DefaultTapeGrow)
}

func TestLoadConfig_RejectsNonPositive(t *testing.T) {
	path := writeOptionsFile(t, "tape_size: -1\n")
	_, err := bf.LoadConfig(path)
	utils.AssertError(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := bf.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	utils.AssertError(t, err)
}

func TestDefaultConfig(t *testing.T) {
	config := bf.DefaultConfig()
	utils.AssertEqual(t, config.TapeSize, 1024)
	utils.AssertEqual(t, config.TapeGrow, 128)
}
