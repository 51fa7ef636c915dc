package changelog

import (
	"testing"
)

const sample = `# Changelog

- stray bullet before any release

## v1.2.0 (2026-03-01)

- Added a thing
- Fixed a long bug that
  wraps onto a second line

## 1.1.0

* Star bullet
`

func TestParse(t *testing.T) {
	entries := Parse(sample)
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	first := entries[0]
	if first.Version != "1.2.0" || first.Date != "2026-03-01" {
		t.Errorf("first = %s (%s), want 1.2.0 (2026-03-01)", first.Version, first.Date)
	}
	if len(first.Changes) != 2 {
		t.Fatalf("first changes = %v", first.Changes)
	}
	if first.Changes[1] != "Fixed a long bug that wraps onto a second line" {
		t.Errorf("wrapped change = %q", first.Changes[1])
	}

	second := entries[1]
	if second.Version != "1.1.0" || second.Date != "" {
		t.Errorf("second = %s (%s), want 1.1.0 without date", second.Version, second.Date)
	}
	if len(second.Changes) != 1 || second.Changes[0] != "Star bullet" {
		t.Errorf("second changes = %v", second.Changes)
	}
}

func TestParse_Empty(t *testing.T) {
	if entries := Parse(""); len(entries) != 0 {
		t.Errorf("Parse(\"\") = %v, want none", entries)
	}
}

func TestParse_EmbeddedContent(t *testing.T) {
	entries := Parse(Content)
	if len(entries) == 0 {
		t.Fatal("embedded changelog has no releases")
	}
	for i := 1; i < len(entries); i++ {
		if CompareVersions(entries[i-1].Version, entries[i].Version) <= 0 {
			t.Errorf("releases out of order: %s before %s", entries[i-1].Version, entries[i].Version)
		}
	}
	for _, e := range entries {
		if len(e.Changes) == 0 {
			t.Errorf("release %s has no changes", e.Version)
		}
	}
}

func TestSince(t *testing.T) {
	entries := []Entry{
		{Version: "0.4.0"},
		{Version: "0.3.0"},
		{Version: "0.2.1"},
		{Version: "0.2.0"},
	}

	tests := []struct {
		name     string
		lastSeen string
		current  string
		want     []string
	}{
		{"upgrade", "0.2.0", "0.3.0", []string{"0.3.0", "0.2.1"}},
		{"same version", "0.3.0", "0.3.0", nil},
		{"fresh install", "", "0.3.0", nil},
		{"dev build", "0.2.0", "dev", nil},
		{"prerelease", "0.3.0", "v0.4.0-rc1", []string{"0.4.0"}},
		{"downgrade", "0.4.0", "0.2.0", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Since(tt.lastSeen, tt.current, entries)
			if len(got) != len(tt.want) {
				t.Fatalf("Since() = %v, want %v", got, tt.want)
			}
			for i, e := range got {
				if e.Version != tt.want[i] {
					t.Errorf("Since()[%d] = %s, want %s", i, e.Version, tt.want[i])
				}
			}
		})
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"v1.0.0", "1.0.0", 0},
		{"1.0.1", "1.0.0", 1},
		{"1.0.0", "1.1.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"0.10.0", "0.9.0", 1},
		{"1.0.0-rc1", "1.0.0", 0},
		{"dev", "0.0.1", -1},
	}
	for _, tt := range tests {
		if got := CompareVersions(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsRelease(t *testing.T) {
	tests := []struct {
		v    string
		want bool
	}{
		{"1.2.3", true},
		{"v1.2.3", true},
		{"1.2.3-rc1", true},
		{"dev", false},
		{"0.0.0-test", true},
		{"1.2", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsRelease(tt.v); got != tt.want {
			t.Errorf("IsRelease(%q) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
