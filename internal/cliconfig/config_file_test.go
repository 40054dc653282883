package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
input = "votes.tsv"
title = "DELTÄVLING 2"
chart = "totals.png"
strict = false

[rules]
point_values = [1, 2, 3, 4, 5, 6, 7, 8, 10, 12]
finalists = 2
second_chance = 2

[schema]
song_column_prefix = "Lyssna"
name_column_match = "namn"
point_suffix = "p"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.Input != "votes.tsv" || fc.Title != "DELTÄVLING 2" || fc.Chart != "totals.png" {
		t.Errorf("unexpected file config: %+v", fc)
	}
	if fc.Strict == nil || *fc.Strict {
		t.Errorf("Strict = %v, want false", fc.Strict)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6, 7, 8, 10, 12}, fc.Rules.PointValues); diff != "" {
		t.Errorf("PointValues mismatch (-want +got):\n%s", diff)
	}
	if fc.Schema.SongColumnPrefix != "Lyssna" {
		t.Errorf("SongColumnPrefix = %q, want Lyssna", fc.Schema.SongColumnPrefix)
	}
}

func TestLoadFileConfigMissing(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadFileConfig() = nil error for missing file")
	}
}

func TestLoadFileConfigBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("LoadFileConfig() = nil error for bad TOML")
	}
}

func TestApplyFileConfig(t *testing.T) {
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		check      func(t *testing.T, cfg Config)
	}{
		{
			name: "applies all values",
			fileConfig: FileConfig{
				Input:  "heat3.tsv",
				Title:  "DELTÄVLING 3",
				Output: "report.txt",
				Strict: &falseVal,
				Rules:  FileRules{PointValues: []int{1, 2, 3}, Finalists: 3},
				Schema: FileSchema{SongColumnPrefix: "Listen", PointSuffix: "pts"},
			},
			changed: map[string]bool{},
			check: func(t *testing.T, cfg Config) {
				if cfg.Input != "heat3.tsv" || cfg.Title != "DELTÄVLING 3" || cfg.Output != "report.txt" {
					t.Errorf("strings not applied: %+v", cfg)
				}
				if cfg.Strict {
					t.Error("Strict not applied")
				}
				if diff := cmp.Diff([]int{1, 2, 3}, cfg.Rules.PointValues); diff != "" {
					t.Errorf("PointValues mismatch (-want +got):\n%s", diff)
				}
				if cfg.Rules.Finalists != 3 {
					t.Errorf("Finalists = %d, want 3", cfg.Rules.Finalists)
				}
				if cfg.Schema.SongColumnPrefix != "Listen" || cfg.Schema.PointSuffix != "pts" {
					t.Errorf("schema not applied: %+v", cfg.Schema)
				}
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Title: "FROM FILE",
				Rules: FileRules{Finalists: 4},
			},
			changed: map[string]bool{"title": true, "finalists": true},
			check: func(t *testing.T, cfg Config) {
				if cfg.Title != "HEAT RESULTS" {
					t.Errorf("Title = %q, want flag value kept", cfg.Title)
				}
				if cfg.Rules.Finalists != 2 {
					t.Errorf("Finalists = %d, want flag value kept", cfg.Rules.Finalists)
				}
			},
		},
		{
			name:       "empty file config changes nothing",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			check: func(t *testing.T, cfg Config) {
				want := DefaultConfig()
				if diff := cmp.Diff(want, cfg); diff != "" {
					t.Errorf("config changed (-want +got):\n%s", diff)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed); err != nil {
				t.Fatalf("ApplyFileConfig() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if FileExists(path) {
		t.Error("FileExists = true for missing file")
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("FileExists = false for existing file")
	}
}
