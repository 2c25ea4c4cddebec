package rules

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func writeUserRules(t *testing.T, doc string) {
	t.Helper()
	configDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configDir)

	dir := filepath.Join(configDir, configSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, rulesFileName), []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestResolve_ExplicitPathWins(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "rules.toml")
	if err := os.WriteFile(path, []byte(validDoc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rs, source, err := Resolve(path, zap.NewNop())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if source != path {
		t.Fatalf("source = %q, want %q", source, path)
	}
	if len(rs.Critical.Keywords) == 0 {
		t.Fatalf("Critical.Keywords is empty, want parsed rules")
	}
}

func TestResolve_MalformedExplicitFallsThroughToUserConfig(t *testing.T) {
	writeUserRules(t, validDoc)

	badPath := filepath.Join(t.TempDir(), "rules.toml")
	if err := os.WriteFile(badPath, []byte("critical = ["), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	core, logs := observer.New(zap.WarnLevel)
	rs, source, err := Resolve(badPath, zap.New(core))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if source == EmbeddedSource || source == badPath {
		t.Fatalf("source = %q, want the user config path", source)
	}
	if !filepath.IsAbs(source) {
		t.Fatalf("source = %q, want an absolute path", source)
	}
	if rs.Warning.Color != "yellow" {
		t.Fatalf("Warning.Color = %q, want %q", rs.Warning.Color, "yellow")
	}

	// The explicit path must not be skipped silently.
	if logs.FilterMessage("rules source malformed").Len() != 1 {
		t.Fatalf("want exactly one malformed-source warning, got %d entries", logs.Len())
	}
}

func TestResolve_MissingExplicitLogsWarning(t *testing.T) {
	writeUserRules(t, validDoc)

	core, logs := observer.New(zap.WarnLevel)
	_, source, err := Resolve(filepath.Join(t.TempDir(), "nope.toml"), zap.New(core))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if source == EmbeddedSource {
		t.Fatalf("source = %q, want the user config path", source)
	}
	if logs.FilterMessage("rules source unavailable").Len() == 0 {
		t.Fatalf("want an unavailable-source warning for the explicit path")
	}
}

func TestResolve_AllTiersAbsentFallsBackToEmbedded(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	rs, source, err := Resolve("", zap.NewNop())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if source != EmbeddedSource {
		t.Fatalf("source = %q, want %q", source, EmbeddedSource)
	}
	if !rs.Critical.Matches("kernel panic") {
		t.Fatalf("embedded critical rule does not match %q", "kernel panic")
	}
	if rs.Info.Matches("anything at all") {
		t.Fatalf("embedded info rule matched, want empty keyword set")
	}
}

func TestResolve_MalformedUserConfigFallsBackToEmbedded(t *testing.T) {
	writeUserRules(t, "not toml at all [")

	core, logs := observer.New(zap.WarnLevel)
	_, source, err := Resolve("", zap.New(core))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if source != EmbeddedSource {
		t.Fatalf("source = %q, want %q", source, EmbeddedSource)
	}
	if logs.FilterMessage("rules source malformed").Len() == 0 {
		t.Fatalf("want a malformed-source warning for the user config path")
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	rs, err := Parse(defaultRules)
	if err != nil {
		t.Fatalf("embedded default rules failed to parse: %v", err)
	}
	for _, c := range Categories {
		if rs.Rule(c).Icon == "" {
			t.Fatalf("embedded rule %v has no icon", c)
		}
	}
}
