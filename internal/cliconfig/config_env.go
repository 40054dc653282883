package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (HEATTALLY_*).
// It respects flags that have been explicitly set (changed map).
// Returns an error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("HEATTALLY_INPUT"), &cfg.Input)
	s.setString("title", os.Getenv("HEATTALLY_TITLE"), &cfg.Title)
	s.setString("output", os.Getenv("HEATTALLY_OUTPUT"), &cfg.Output)
	s.setString("chart", os.Getenv("HEATTALLY_CHART"), &cfg.Chart)

	s.setBoolFromString("strict", os.Getenv("HEATTALLY_STRICT"), &cfg.Strict)
	s.setBoolFromString("watch", os.Getenv("HEATTALLY_WATCH"), &cfg.Watch)
	s.setBoolFromString("quiet", os.Getenv("HEATTALLY_QUIET"), &cfg.Quiet)

	if err := s.setIntsFromString("points", os.Getenv("HEATTALLY_POINT_VALUES"), &cfg.Rules.PointValues); err != nil {
		return err
	}
	if err := s.setIntFromString("finalists", os.Getenv("HEATTALLY_FINALISTS"), &cfg.Rules.Finalists); err != nil {
		return err
	}
	if err := s.setIntFromString("second-chance", os.Getenv("HEATTALLY_SECOND_CHANCE"), &cfg.Rules.SecondChance); err != nil {
		return err
	}

	s.setString("song-prefix", os.Getenv("HEATTALLY_SONG_PREFIX"), &cfg.Schema.SongColumnPrefix)
	s.setString("name-match", os.Getenv("HEATTALLY_NAME_MATCH"), &cfg.Schema.NameColumnMatch)
	s.setString("point-suffix", os.Getenv("HEATTALLY_POINT_SUFFIX"), &cfg.Schema.PointSuffix)

	return nil
}
