// Package config loads the vhdlfront.json sidecar: the standard revision
// and the library-name-to-glob mapping the driver uses to assign each
// source file to a project library before folding it in.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is vhdlfront's top-level configuration.
type Config struct {
	// Standard is the VHDL revision to parse against: "1993", "2002",
	// "2008", "2019". Only "2008" is actually implemented; other values
	// are accepted and recorded but do not change parser behaviour.
	Standard string `json:"standard,omitempty"`

	// Files is an explicit list of files with optional library overrides.
	Files []FileEntry `json:"files,omitempty"`

	// Libraries maps library names to their file glob configuration.
	Libraries map[string]LibraryConfig `json:"libraries,omitempty"`
}

// LibraryConfig defines a VHDL library's files by glob pattern.
type LibraryConfig struct {
	// Files is a list of glob patterns (doublestar syntax) for VHDL files
	// belonging to this library.
	Files []string `json:"files"`

	// Exclude is a list of glob patterns to drop from Files' matches.
	Exclude []string `json:"exclude,omitempty"`
}

// FileEntry is an explicit file entry with an optional library override.
type FileEntry struct {
	File    string `json:"file"`
	Library string `json:"library,omitempty"`
}

// DefaultConfig returns the configuration used when no vhdlfront.json is
// found: every .vhd/.vhdl file under the project root belongs to "work".
func DefaultConfig() *Config {
	return &Config{
		Standard: "2008",
		Libraries: map[string]LibraryConfig{
			"work": {
				Files: []string{"**/*.vhd", "**/*.vhdl"},
			},
		},
	}
}

// Load finds and loads the configuration file. Search order:
//  1. ./vhdlfront.json (current working directory)
//  2. ./.vhdlfront.json (current working directory)
//  3. <rootPath>/vhdlfront.json (if rootPath is a directory other than cwd)
//  4. <rootPath>/.vhdlfront.json (same condition)
//  5. ~/.config/vhdlfront/config.json
//
// Returns DefaultConfig if no config file is found.
func Load(rootPath string) (*Config, error) {
	cwd, _ := os.Getwd()

	searchPaths := []string{
		filepath.Join(cwd, "vhdlfront.json"),
		filepath.Join(cwd, ".vhdlfront.json"),
	}

	if info, err := os.Stat(rootPath); err == nil && info.IsDir() {
		absRoot, _ := filepath.Abs(rootPath)
		if absRoot != cwd {
			searchPaths = append(searchPaths,
				filepath.Join(rootPath, "vhdlfront.json"),
				filepath.Join(rootPath, ".vhdlfront.json"),
			)
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(home, ".config", "vhdlfront", "config.json"))
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}

	return DefaultConfig(), nil
}

// LoadFile loads configuration from a specific file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Standard == "" {
		c.Standard = "2008"
	}
	if c.Libraries == nil {
		if len(c.Files) == 0 {
			c.Libraries = map[string]LibraryConfig{
				"work": {Files: []string{"**/*.vhd", "**/*.vhdl"}},
			}
		} else {
			c.Libraries = map[string]LibraryConfig{}
		}
	}
}

// Save writes the configuration to a file.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
