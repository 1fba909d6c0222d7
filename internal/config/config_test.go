package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, AppName+".yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GrammarDir != "" {
		t.Errorf("expected empty grammar dir, got %q", cfg.GrammarDir)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Log.Level)
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("expected default output text, got %s", cfg.Output.Format)
	}
	if cfg.Suggest.Limit != 5 {
		t.Errorf("expected default suggest limit 5, got %d", cfg.Suggest.Limit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = "xml"
	cfg.Log.Level = "loud"
	cfg.Suggest.Limit = 0

	err := cfg.Validate()
	for _, want := range []error{ErrInvalidOutputFormat, ErrInvalidLogLevel, ErrInvalidSuggestLimit} {
		if !errors.Is(err, want) {
			t.Errorf("expected %v in %v", want, err)
		}
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, path, err := Load(LoadOptions{SearchPaths: []string{t.TempDir()}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if path != "" {
		t.Errorf("no file expected, got %q", path)
	}
	if cfg.Suggest.Limit != 5 || cfg.Output.Format != FormatText {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadFromSearchPath(t *testing.T) {
	dir := t.TempDir()
	want := writeConfig(t, dir, "grammar_dir: grammars\noutput:\n  format: json\nsuggest:\n  limit: 3\n")

	cfg, path, err := Load(LoadOptions{SearchPaths: []string{dir}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if path != want {
		t.Errorf("config path = %q, want %q", path, want)
	}
	if cfg.GrammarDir != "grammars" || cfg.Output.Format != FormatJSON || cfg.Suggest.Limit != 3 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("unset keys keep defaults, got log level %q", cfg.Log.Level)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "suggest:\n  limit: 3\n")
	t.Setenv("DATEFIELD_SUGGEST_LIMIT", "9")
	t.Setenv("DATEFIELD_LOG_LEVEL", "debug")

	cfg, _, err := Load(LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Suggest.Limit != 9 {
		t.Errorf("env should override file, got %d", cfg.Suggest.Limit)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("env log level not applied, got %q", cfg.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, _, err := Load(LoadOptions{ConfigFilePath: filepath.Join(t.TempDir(), "missing.yaml")}); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}

	bad := writeConfig(t, t.TempDir(), "output: [\n")
	if _, _, err := Load(LoadOptions{ConfigFilePath: bad}); err == nil {
		t.Errorf("expected parse error")
	}
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "output:\n  format: xml\n")
	t.Setenv("DATEFIELD_LOG_LEVEL", "loud")

	cfg, _, err := Load(LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load should not validate: %v", err)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidOutputFormat) || !errors.Is(err, ErrInvalidLogLevel) {
		t.Errorf("expected output format and log level errors, got %v", err)
	}

	// a flag override applied before validation repairs the bad values
	cfg.Output.Format = FormatJSON
	cfg.Log.Level = "debug"
	if err := cfg.Validate(); err != nil {
		t.Errorf("overridden config should validate: %v", err)
	}
}
