// Package config provides the project-scoped configuration store for
// chlog using koanf. One config file lives under <root>/.changelog/:
// built-in defaults are loaded first and the file is layered over them.
// A missing or corrupt file is replaced with defaults rather than
// surfaced as a fatal error.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigDirName is the project-root-scoped directory holding the
// config file, pending store and release records.
const ConfigDirName = ".changelog"

// ConfigFileName is the configuration file name inside ConfigDirName.
const ConfigFileName = "config.json"

// Project holds project metadata.
type Project struct {
	Name    string `koanf:"name" json:"name"`
	Version string `koanf:"version" json:"version"`
	Author  string `koanf:"author" json:"author"`
	License string `koanf:"license" json:"license"`
}

// Paths holds the relative locations of the persisted artifacts. All
// paths resolve against the project root.
type Paths struct {
	Changelog  string `koanf:"changelog" json:"changelog"`
	Unreleased string `koanf:"unreleased" json:"unreleased"`
	Releases   string `koanf:"releases" json:"releases"`
}

// Settings holds behavioral flags and format strings.
type Settings struct {
	AutoBackup     bool   `koanf:"auto_backup" json:"auto_backup"`
	DateFormat     string `koanf:"date_format" json:"date_format"`
	TimeFormat     string `koanf:"time_format" json:"time_format"`
	GitIntegration bool   `koanf:"git_integration" json:"git_integration"`
}

// Config is the persisted configuration record plus its project root.
type Config struct {
	Project  Project  `koanf:"project" json:"project"`
	Paths    Paths    `koanf:"paths" json:"paths"`
	Settings Settings `koanf:"settings" json:"settings"`

	root string
	path string
}

// defaults returns the default configuration values as dotted koanf
// keys. The project name defaults to the root directory's name.
func defaults(root string) map[string]interface{} {
	return map[string]interface{}{
		"project.name":             filepath.Base(root),
		"project.version":          "0.0.0",
		"project.author":           "",
		"project.license":          "MIT",
		"paths.changelog":          "CHANGELOG.md",
		"paths.unreleased":         filepath.Join(ConfigDirName, "unreleased.json"),
		"paths.releases":           filepath.Join(ConfigDirName, "releases"),
		"settings.auto_backup":     true,
		"settings.date_format":     "2006-01-02",
		"settings.time_format":     "15:04:05",
		"settings.git_integration": false,
	}
}

// Load reads the configuration for the given project root, creating the
// file with defaults when it is missing or corrupt. An empty root means
// the current working directory.
func Load(root string) (*Config, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		root = wd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	path := filepath.Join(root, ConfigDirName, ConfigFileName)

	k := koanf.New(".")
	applyDefaults(k, root)

	needsWrite := false
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("checking config file: %w", err)
		}
		needsWrite = true
	} else if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
		// Corrupt config is treated like a missing one.
		k = koanf.New(".")
		applyDefaults(k, root)
		needsWrite = true
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.root = root
	cfg.path = path

	if needsWrite {
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// applyDefaults seeds a koanf instance with the default values.
func applyDefaults(k *koanf.Koanf, root string) {
	for key, value := range defaults(root) {
		k.Set(key, value)
	}
}

// Root returns the absolute project root.
func (c *Config) Root() string {
	return c.root
}

// FilePath returns the absolute config file path.
func (c *Config) FilePath() string {
	return c.path
}

// Save persists the configuration immediately. Updates are never
// batched: every successful mutation writes the file.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ResolvePath returns the absolute path for one of the path keys
// (changelog, unreleased, releases).
func (c *Config) ResolvePath(key string) (string, error) {
	switch key {
	case "changelog":
		return filepath.Join(c.root, c.Paths.Changelog), nil
	case "unreleased":
		return filepath.Join(c.root, c.Paths.Unreleased), nil
	case "releases":
		return filepath.Join(c.root, c.Paths.Releases), nil
	default:
		return "", ErrUnknownKey{Key: "paths." + key}
	}
}

// UpdatePath sets a relative path and persists the config.
func (c *Config) UpdatePath(key, value string) error {
	switch key {
	case "changelog":
		c.Paths.Changelog = value
	case "unreleased":
		c.Paths.Unreleased = value
	case "releases":
		c.Paths.Releases = value
	default:
		return ErrUnknownKey{Key: "paths." + key}
	}
	return c.Save()
}

// UpdateSetting sets a behavioral setting and persists the config. The
// value must already be coerced to the expected type.
func (c *Config) UpdateSetting(key string, value interface{}) error {
	switch key {
	case "auto_backup":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("setting %s expects a boolean value, got %v", key, value)
		}
		c.Settings.AutoBackup = b
	case "git_integration":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("setting %s expects a boolean value, got %v", key, value)
		}
		c.Settings.GitIntegration = b
	case "date_format":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("setting %s expects a string value, got %v", key, value)
		}
		c.Settings.DateFormat = s
	case "time_format":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("setting %s expects a string value, got %v", key, value)
		}
		c.Settings.TimeFormat = s
	default:
		return ErrUnknownKey{Key: "settings." + key}
	}
	return c.Save()
}

// UpdateProject sets a project metadata field and persists the config.
func (c *Config) UpdateProject(key, value string) error {
	switch key {
	case "name":
		c.Project.Name = value
	case "version":
		c.Project.Version = value
	case "author":
		c.Project.Author = value
	case "license":
		c.Project.License = value
	default:
		return ErrUnknownKey{Key: "project." + key}
	}
	return c.Save()
}
