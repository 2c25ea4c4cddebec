package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Pager != defaultPager {
		t.Fatalf("Pager = %q, want %q", p.Pager, defaultPager)
	}
	if p.TailLines != 0 {
		t.Fatalf("TailLines = %d, want 0", p.TailLines)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "dmsift")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("pager = \"moar\"\ntail_lines = 500\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Pager != "moar" {
		t.Fatalf("Pager = %q, want %q", p.Pager, "moar")
	}
	if p.TailLines != 500 {
		t.Fatalf("TailLines = %d, want 500", p.TailLines)
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "custom.toml")
	if err := os.WriteFile(prefsFile, []byte("pager = \"bat --paging=always\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Pager != "bat --paging=always" {
		t.Fatalf("Pager = %q, want %q", p.Pager, "bat --paging=always")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	tmp := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed toml", content: "pager = ["},
		{name: "blank pager", content: "pager = \"   \"\n"},
		{name: "negative tail", content: "tail_lines = -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefsFile := filepath.Join(tmp, tt.name+".toml")
			if err := os.WriteFile(prefsFile, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			p, err := Load(prefsFile)
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if p.Pager != defaultPager {
				t.Errorf("Pager = %q, want %q", p.Pager, defaultPager)
			}
			if p.TailLines != 0 {
				t.Errorf("TailLines = %d, want 0", p.TailLines)
			}
		})
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	want := Prefs{Pager: "less -RS", TailLines: 2000}
	if err := Save(prefsFile, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}
