package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileRules mirrors domain.Rules for the TOML file. The required sum is
// always derived from the point set, so it has no file field.
type FileRules struct {
	PointValues  []int `toml:"point_values"`
	Finalists    int   `toml:"finalists"`
	SecondChance int   `toml:"second_chance"`
}

// FileSchema mirrors parse.Schema for the TOML file.
type FileSchema struct {
	SongColumnPrefix string `toml:"song_column_prefix"`
	NameColumnMatch  string `toml:"name_column_match"`
	PointSuffix      string `toml:"point_suffix"`
}

// FileConfig mirrors Config for TOML loading.
type FileConfig struct {
	Input  string `toml:"input"`
	Title  string `toml:"title"`
	Output string `toml:"output"`
	Chart  string `toml:"chart"`
	Strict *bool  `toml:"strict"`
	Watch  *bool  `toml:"watch"`
	Quiet  *bool  `toml:"quiet"`

	Rules  FileRules  `toml:"rules"`
	Schema FileSchema `toml:"schema"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.heattally/config.toml if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".heattally", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", fc.Input, &cfg.Input)
	s.setString("title", fc.Title, &cfg.Title)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("chart", fc.Chart, &cfg.Chart)

	s.setBool("strict", fc.Strict, &cfg.Strict)
	s.setBool("watch", fc.Watch, &cfg.Watch)
	s.setBool("quiet", fc.Quiet, &cfg.Quiet)

	s.setInts("points", fc.Rules.PointValues, &cfg.Rules.PointValues)
	s.setInt("finalists", fc.Rules.Finalists, &cfg.Rules.Finalists)
	s.setInt("second-chance", fc.Rules.SecondChance, &cfg.Rules.SecondChance)

	s.setString("song-prefix", fc.Schema.SongColumnPrefix, &cfg.Schema.SongColumnPrefix)
	s.setString("name-match", fc.Schema.NameColumnMatch, &cfg.Schema.NameColumnMatch)
	s.setString("point-suffix", fc.Schema.PointSuffix, &cfg.Schema.PointSuffix)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
