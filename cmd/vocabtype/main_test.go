package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/vocabtype/internal/config"
	"github.com/verte-zerg/vocabtype/internal/model"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestTopicsCommand(t *testing.T) {
	out, err := execute(t, "topics")
	if err != nil {
		t.Fatalf("topics: %v", err)
	}
	for _, want := range []string{"ID", "Vietnamese", "Contracts", "Hợp đồng", "Business Planning"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestWordsCommand(t *testing.T) {
	out, err := execute(t, "words", "--topic", "1")
	if err != nil {
		t.Fatalf("words: %v", err)
	}
	if !strings.Contains(out, "rely on") || !strings.Contains(out, "tin vào") {
		t.Fatalf("expected word pair in output:\n%s", out)
	}
}

func TestWordsCommandErrors(t *testing.T) {
	if _, err := execute(t, "words"); err == nil || !strings.Contains(err.Error(), "--topic is required") {
		t.Fatalf("expected missing topic error, got %v", err)
	}
	if _, err := execute(t, "words", "--topic", "404"); err == nil || !strings.Contains(err.Error(), "unknown topic 404") {
		t.Fatalf("expected unknown topic error, got %v", err)
	}
}

func TestConfigFileTopicIsValidated(t *testing.T) {
	writeConfig(t, "[practice]\ntopic = 99\n")
	_, err := execute(t)
	if err == nil || !strings.Contains(err.Error(), "unknown topic 99") {
		t.Fatalf("expected unknown topic from config, got %v", err)
	}
}

func TestFlagOverridesConfigFile(t *testing.T) {
	writeConfig(t, "[practice]\ntopic = 99\n")
	// The topic flag wins, so the run gets past topic lookup and stops at the terminal check.
	_, err := execute(t, "--topic", "1")
	if err == nil || !strings.Contains(err.Error(), "interactive terminal") {
		t.Fatalf("expected terminal error, got %v", err)
	}
}

func TestInvalidWidthFromConfig(t *testing.T) {
	writeConfig(t, "[display]\nwidth = 1.5\n")
	_, err := execute(t)
	if err == nil || !strings.Contains(err.Error(), "--width") {
		t.Fatalf("expected width validation error, got %v", err)
	}
}

func TestEnsureConfigFileWritesLoadableTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocabtype", "config.toml")
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("ensure config: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("template should decode: %v", err)
	}
	if cfg.Practice.Topic != nil || cfg.Display.WidthPct != nil {
		t.Fatalf("template values should be commented out: %+v", cfg)
	}
	if err := os.WriteFile(path, []byte("[practice]\ntopic = 2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("ensure config: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != "[practice]\ntopic = 2\n" {
		t.Fatalf("existing config must not be overwritten")
	}
}

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(model.Config{WidthPct: 0.7}); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	if err := validateConfig(model.Config{Topic: -1, WidthPct: 0.7}); err == nil {
		t.Fatalf("expected negative topic to be rejected")
	}
	if err := validateConfig(model.Config{WidthPct: 0}); err == nil {
		t.Fatalf("expected zero width to be rejected")
	}
}
