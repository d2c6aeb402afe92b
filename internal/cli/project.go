package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/config"
	"github.com/raveheart1/chlog/internal/git"
)

// openProject loads configuration for the project root implied by the
// global --config flag (the flag value's directory) or the working
// directory when the flag is unset.
func openProject(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")

	root := ""
	if cfgPath != "" {
		abs, err := filepath.Abs(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("resolving config path: %w", err)
		}
		root = filepath.Dir(abs)
	}
	return config.Load(root)
}

// openStore builds the pending-change store from the configured paths.
func openStore(cfg *config.Config) (*changelog.Store, error) {
	path, err := cfg.ResolvePath("unreleased")
	if err != nil {
		return nil, err
	}
	return changelog.NewStore(path, cfg.Project.Name), nil
}

// openEngine builds the release engine, wiring the configured date
// format and the go-git tagger.
func openEngine(cfg *config.Config) (*changelog.Engine, *changelog.Store, error) {
	store, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	changelogPath, err := cfg.ResolvePath("changelog")
	if err != nil {
		return nil, nil, err
	}
	releasesDir, err := cfg.ResolvePath("releases")
	if err != nil {
		return nil, nil, err
	}

	engine := changelog.NewEngine(store, changelogPath, releasesDir)
	if cfg.Settings.DateFormat != "" {
		engine.DateFormat = cfg.Settings.DateFormat
	}
	engine.Tagger = func(version, message string) error {
		return git.CreateTag(cfg.Root(), version, message)
	}
	return engine, store, nil
}
