// Package iofs prepares the application's directories and default
// configuration file on the local file system.
package iofs

import (
	"os"

	"github.com/exobio/codexdb/pkg/config"
	"gopkg.in/yaml.v3"
)

// configHeader documents the generated config.yaml for users.
const configHeader = `# codexdb configuration.
#
# Every value below can be overridden with a CODEXDB_* environment
# variable, e.g. database.host -> CODEXDB_DATABASE_HOST.
#
# database.batch_size: number of flat rows written per batch during
#   'codexdb load'. Streaming of the input document pauses while a
#   batch is being flushed.
# load.input_file: path to the codex JSON document; the --input flag
#   takes precedence.
# log.destination: 'file', 'stdout' or 'stderr'.

`

// EnsureDirs creates the config and log directories if they are
// missing.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes a documented config.yaml with default values
// to the config directory. An existing file is never overwritten.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	data, err := yaml.Marshal(config.New())
	if err != nil {
		return WriteFileError(configPath, err)
	}

	out := append([]byte(configHeader), data...)
	if err := os.WriteFile(configPath, out, 0644); err != nil {
		return WriteFileError(configPath, err)
	}

	return nil
}
