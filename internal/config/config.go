// Package config handles feedstock discovery and conda-forge.yml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cameronsjo/pixigen/internal/pixi"
)

// ForgeFile is the feedstock configuration file that marks a feedstock root.
const ForgeFile = "conda-forge.yml"

// ErrRootNotFound indicates no conda-forge.yml was found above the start directory.
var ErrRootNotFound = errors.New("feedstock root not found (no " + ForgeFile + ")")

// ForgeConfig holds the conda-forge.yml fields that affect pixi.toml.
type ForgeConfig struct {
	// CondaBuildTool selects the build tool. Defaults to conda-build.
	CondaBuildTool string `yaml:"conda_build_tool"`

	// RecipeDir is the recipe path relative to the root. Defaults to recipe.
	RecipeDir string `yaml:"recipe_dir"`
}

// Config holds the feedstock configuration.
type Config struct {
	// Root is the feedstock root directory (contains conda-forge.yml).
	Root string

	// Forge is the parsed conda-forge.yml with defaults applied.
	Forge ForgeConfig

	// BuildTool is Forge.CondaBuildTool resolved.
	BuildTool pixi.BuildTool
}

// FindRoot searches upward from start to find the feedstock root.
// The feedstock root is identified by the presence of conda-forge.yml.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}

	for {
		info, err := os.Stat(filepath.Join(dir, ForgeFile))
		if err == nil && !info.IsDir() {
			return dir, nil
		}

		// Move up one directory
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrRootNotFound
}

// Load finds the feedstock root from start and returns a Config.
func Load(start string) (*Config, error) {
	root, err := FindRoot(start)
	if err != nil {
		return nil, err
	}

	forge, err := LoadForgeConfig(filepath.Join(root, ForgeFile))
	if err != nil {
		return nil, err
	}

	tool, err := pixi.ParseBuildTool(forge.CondaBuildTool)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ForgeFile, err)
	}

	return &Config{
		Root:      root,
		Forge:     *forge,
		BuildTool: tool,
	}, nil
}

// LoadForgeConfig parses a conda-forge.yml file and applies defaults.
// An empty file is valid and yields the defaults.
func LoadForgeConfig(path string) (*ForgeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var forge ForgeConfig
	if err := yaml.Unmarshal(data, &forge); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if forge.CondaBuildTool == "" {
		forge.CondaBuildTool = pixi.DefaultBuildTool
	}
	if forge.RecipeDir == "" {
		forge.RecipeDir = pixi.DefaultRecipeDir
	}

	return &forge, nil
}

// CISupportDir returns the path to the .ci_support directory.
func (c *Config) CISupportDir() string {
	return filepath.Join(c.Root, ".ci_support")
}

// RecipePath returns the absolute path to the recipe directory.
func (c *Config) RecipePath() string {
	return filepath.Join(c.Root, c.Forge.RecipeDir)
}

// PixiFile returns the path to the generated pixi.toml.
func (c *Config) PixiFile() string {
	return filepath.Join(c.Root, "pixi.toml")
}
