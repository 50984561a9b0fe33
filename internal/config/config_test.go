package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(body), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestLoad_DefaultWhenMissing(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != DefaultConfig().LogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, DefaultConfig().LogLevel)
	}
	if cfg.Workers != 0 {
		t.Fatalf("Workers = %d, want 0", cfg.Workers)
	}
	if cfg.SolveTimeout() != 0 {
		t.Fatalf("SolveTimeout() = %v, want 0", cfg.SolveTimeout())
	}
}

func TestLoad_OverridesFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{"workers": 3, "solve_timeout_seconds": 20, "log_level": "debug", "messages": {"SOS": "***_---_***"}}`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Workers != 3 {
		t.Fatalf("Workers = %d, want 3", cfg.Workers)
	}
	if cfg.SolveTimeout() != 20*time.Second {
		t.Fatalf("SolveTimeout() = %v, want 20s", cfg.SolveTimeout())
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Messages["SOS"] != "***_---_***" {
		t.Fatalf("Messages[SOS] = %q, want %q", cfg.Messages["SOS"], "***_---_***")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{not json}`)

	if _, err := Load(tmpDir); err == nil {
		t.Fatalf("Load() expected error, got nil")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative workers", `{"workers": -1}`},
		{"negative timeout", `{"solve_timeout_seconds": -5}`},
		{"unknown log level", `{"log_level": "loud"}`},
		{"bad message symbols", `{"messages": {"X": "abc"}}`},
		{"empty message symbols", `{"messages": {"X": ""}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeConfig(t, tmpDir, tt.body)

			if _, err := Load(tmpDir); err == nil {
				t.Fatalf("Load() expected error, got nil")
			}
		})
	}
}

func TestLoad_DisabledTools(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{"disabled_tools": ["morse_count", " morse_decode "]}`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.DisabledTools) != 2 {
		t.Fatalf("DisabledTools length = %d, want 2", len(cfg.DisabledTools))
	}
	if cfg.DisabledTools[1] != "morse_decode" {
		t.Errorf("DisabledTools[1] = %q, want trimmed %q", cfg.DisabledTools[1], "morse_decode")
	}
}

func TestLoadWithRepo_BothPresent(t *testing.T) {
	globalDir := t.TempDir()
	repoRoot := t.TempDir()

	writeConfig(t, globalDir, `{"workers": 8, "disabled_tools": ["morse_count"], "messages": {"SOS": "***_---_***", "OK": "---_-*-"}}`)
	writeConfig(t, filepath.Join(repoRoot, ".morsesub"), `{"workers": 2, "disabled_tools": ["morse_decode"], "messages": {"OK": "---"}}`)

	cfg, err := LoadWithRepo(globalDir, repoRoot)
	if err != nil {
		t.Fatalf("LoadWithRepo() error = %v", err)
	}

	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2 (repo override)", cfg.Workers)
	}
	if len(cfg.DisabledTools) != 2 {
		t.Errorf("DisabledTools length = %d, want 2", len(cfg.DisabledTools))
	}
	if len(cfg.Messages) != 2 {
		t.Errorf("Messages length = %d, want 2", len(cfg.Messages))
	}
	if cfg.Messages["OK"] != "---" {
		t.Errorf("Messages[OK] = %q, want %q (repo override)", cfg.Messages["OK"], "---")
	}
}

func TestLoadWithRepo_OnlyGlobal(t *testing.T) {
	globalDir := t.TempDir()
	repoDir := t.TempDir()

	writeConfig(t, globalDir, `{"solve_timeout_seconds": 9, "disabled_tools": ["morse_count"]}`)

	cfg, err := LoadWithRepo(globalDir, repoDir)
	if err != nil {
		t.Fatalf("LoadWithRepo() error = %v", err)
	}

	if cfg.SolveTimeoutSeconds != 9 {
		t.Errorf("SolveTimeoutSeconds = %d, want 9", cfg.SolveTimeoutSeconds)
	}
	if len(cfg.DisabledTools) != 1 || cfg.DisabledTools[0] != "morse_count" {
		t.Errorf("DisabledTools = %v, want [morse_count]", cfg.DisabledTools)
	}
}

func TestLoadWithRepo_NeitherPresent(t *testing.T) {
	cfg, err := LoadWithRepo(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("LoadWithRepo() error = %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if len(cfg.DisabledTools) != 0 {
		t.Errorf("DisabledTools = %v, want empty", cfg.DisabledTools)
	}
	if cfg.Messages != nil {
		t.Errorf("Messages = %v, want nil", cfg.Messages)
	}
}

func TestLoadWithRepo_InvalidRepoMessage(t *testing.T) {
	repoRoot := t.TempDir()
	writeConfig(t, filepath.Join(repoRoot, ".morsesub"), `{"messages": {"BAD": "*x*"}}`)

	if _, err := LoadWithRepo(t.TempDir(), repoRoot); err == nil {
		t.Fatal("LoadWithRepo() expected error, got nil")
	}
}

func TestMerge_ScalarOverride(t *testing.T) {
	base := &Config{Workers: 4, SolveTimeoutSeconds: 30, LogLevel: "info"}
	overlay := &Config{Workers: 1, LogLevel: "warn"}

	result := Merge(base, overlay)

	if result.Workers != 1 {
		t.Errorf("Workers = %d, want 1 (overlay)", result.Workers)
	}
	if result.SolveTimeoutSeconds != 30 {
		t.Errorf("SolveTimeoutSeconds = %d, want 30 (base, overlay is zero)", result.SolveTimeoutSeconds)
	}
	if result.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", result.LogLevel)
	}
}

func TestMerge_DoesNotAliasMessages(t *testing.T) {
	base := &Config{Messages: map[string]string{"A": "*-"}}
	result := Merge(base, &Config{})

	result.Messages["B"] = "-***"
	if _, ok := base.Messages["B"]; ok {
		t.Error("Merge result shares its Messages map with base")
	}
}

func TestMerge_ArrayMergeDedup(t *testing.T) {
	base := &Config{DisabledTools: []string{"morse_count", "morse_decode"}}
	overlay := &Config{DisabledTools: []string{"morse_decode", "morse_messages"}}

	result := Merge(base, overlay)

	if len(result.DisabledTools) != 3 {
		t.Errorf("DisabledTools length = %d, want 3 (merged, deduped)", len(result.DisabledTools))
	}

	has := make(map[string]bool)
	for _, s := range result.DisabledTools {
		has[s] = true
	}
	for _, want := range []string{"morse_count", "morse_decode", "morse_messages"} {
		if !has[want] {
			t.Errorf("DisabledTools missing %q", want)
		}
	}
}

func TestFindRepoConfig_InParentDir(t *testing.T) {
	// tmpDir/.morsesub/config.json
	// tmpDir/subdir/deeper/
	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ".morsesub"), `{}`)
	configPath := filepath.Join(tmpDir, ".morsesub", "config.json")

	subdir := filepath.Join(tmpDir, "subdir", "deeper")
	if err := os.MkdirAll(subdir, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	if found := FindRepoConfig(subdir); found != configPath {
		t.Errorf("FindRepoConfig() = %q, want %q", found, configPath)
	}
	if found := FindRepoConfig(tmpDir); found != configPath {
		t.Errorf("FindRepoConfig() = %q, want %q", found, configPath)
	}
}

func TestFindRepoConfig_NotFound(t *testing.T) {
	if found := FindRepoConfig(t.TempDir()); found != "" {
		t.Errorf("FindRepoConfig() = %q, want empty string", found)
	}
}
