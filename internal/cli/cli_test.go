package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tunedeck/tunedeck/pkg/deck"
	"github.com/tunedeck/tunedeck/pkg/source/manifest"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"html"}},
		{"json", []string{"json"}},
		{"html,json,csv", []string{"html", "json", "csv"}},
	}
	for _, tt := range tests {
		got := parseFormats(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestOutputBase(t *testing.T) {
	tests := []struct {
		output   string
		fallback string
		want     string
	}{
		{"", "deck", "deck"},
		{"party", "deck", "party"},
		{"party.html", "deck", "party"},
		{"party.json", "deck", "party"},
		{"party.toml", "deck", "party.toml"}, // not an artifact extension
	}
	for _, tt := range tests {
		if got := outputBase(tt.output, tt.fallback); got != tt.want {
			t.Errorf("outputBase(%q, %q) = %q, want %q", tt.output, tt.fallback, got, tt.want)
		}
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", appName) {
		t.Errorf("cacheDir = %q", dir)
	}
}

func TestCacheDirHome(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir in test environment")
	}
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir error: %v", err)
	}
	if dir != filepath.Join(home, ".cache", appName) {
		t.Errorf("cacheDir = %q", dir)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	want := []string{"fetch", "plan", "render", "build", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestPlanCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()

	manifestPath := filepath.Join(dir, "party.toml")
	pl := &manifest.Playlist{
		Title: "Party",
		Tracks: []deck.Track{
			{ID: "a", Title: "One", Artist: "X", ReleaseDate: "1991-02-03"},
			{ID: "b", Title: "Two", Artist: "Y", ReleaseDate: "2004"},
			{ID: "c", Title: "Three", Artist: "Z", ReleaseDate: "2015-07"},
		},
	}
	if err := manifest.Save(manifestPath, pl); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	planPath := filepath.Join(dir, "plan.json")
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"plan", manifestPath, "--rows", "2", "--cols", "2", "-o", planPath})

	if err := root.Execute(); err != nil {
		t.Fatalf("plan command error: %v", err)
	}

	data, err := os.ReadFile(planPath)
	if err != nil {
		t.Fatalf("read plan: %v", err)
	}
	var out struct {
		Title  string            `json:"title"`
		Sheets []json.RawMessage `json:"sheets"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal plan: %v", err)
	}
	if out.Title != "Party" {
		t.Errorf("title = %q, want Party", out.Title)
	}
	// 3 cards on a 2x2 grid fit one sheet
	if len(out.Sheets) != 1 {
		t.Errorf("sheets = %d, want 1", len(out.Sheets))
	}
}

func TestRenderCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()

	manifestPath := filepath.Join(dir, "party.toml")
	pl := &manifest.Playlist{
		Title: "Party",
		Tracks: []deck.Track{
			{ID: "a", Title: "One", Artist: "X"},
			{ID: "b", Title: "Two", Artist: "Y"},
		},
	}
	if err := manifest.Save(manifestPath, pl); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	base := filepath.Join(dir, "out")
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"render", manifestPath, "-f", "html,csv", "-o", base})

	if err := root.Execute(); err != nil {
		t.Fatalf("render command error: %v", err)
	}

	html, err := os.ReadFile(base + ".html")
	if err != nil {
		t.Fatalf("read html: %v", err)
	}
	if !strings.Contains(string(html), "Party") {
		t.Error("html should carry the manifest title")
	}
	if _, err := os.Stat(base + ".csv"); err != nil {
		t.Errorf("csv artifact missing: %v", err)
	}
}
