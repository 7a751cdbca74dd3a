package configutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// reads a json5 configuration file and merges `<name>.local.<ext>` on top
// of it when present, e.g. config.json5 + config.local.json5.
// returns os.ErrNotExist when neither file exists.
func ReadConfig[T any](name string) (T, error) {
	var out T
	found := false

	contents, err := os.ReadFile(name)
	if err != nil && !os.IsNotExist(err) {
		return out, err
	}
	if len(contents) > 0 {
		err = json5.Unmarshal(contents, &out)
		if err != nil {
			return out, fmt.Errorf("parse %s: %w", name, err)
		}
		found = true
	}

	localPath := localVariant(name)
	localContents, err := os.ReadFile(localPath)
	if err != nil && !os.IsNotExist(err) {
		return out, err
	}
	if len(localContents) > 0 {
		var override T
		err = json5.Unmarshal(localContents, &override)
		if err != nil {
			return out, fmt.Errorf("parse %s: %w", localPath, err)
		}
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		slog.Debug("merged config with local overrides", "local", localPath)
		found = true
	}

	if !found {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadConfig, but values missing from the files keep what is set in
// `defaults` and a missing file is not an error.
func ReadConfigWithDefaults[T any](name string, defaults T) (T, error) {
	out := defaults
	cfg, err := ReadConfig[T](name)
	if errors.Is(err, os.ErrNotExist) {
		return out, nil
	}
	if err != nil {
		return out, err
	}
	err = mergo.Merge(&out, cfg, mergo.WithOverride)
	return out, err
}

// ReadConfig but it walks up the filesystem from the working directory
// until it finds a configuration file matching the name, the
// filesystem root included.
func ReadRecursively[T any](name string) (T, error) {
	var empty T

	root, err := filepath.Abs("/")
	if err != nil {
		return empty, err
	}
	current, err := os.Getwd()
	if err != nil {
		return empty, err
	}

	for {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if err == nil {
			return config, nil
		}
		if !os.IsNotExist(err) {
			return empty, err
		}
		if current == root {
			return empty, os.ErrNotExist
		}
		current = filepath.Dir(current)
	}
}

func localVariant(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + ".local" + ext
}
