package storage

import (
	"strings"
	"testing"
)

func TestBuildObjectPath(t *testing.T) {
	key := buildObjectPath("Sources", "Quarterly Report", "TXT")
	if !strings.HasPrefix(key, CategorySources+"/") {
		t.Errorf("expected lowercased category, got %q", key)
	}
	if !strings.HasSuffix(key, "quarterly-report.txt") {
		t.Errorf("expected sanitized file name, got %q", key)
	}

	anonymous := buildObjectPath("", "", "")
	if !strings.HasPrefix(anonymous, CategoryMisc+"/") {
		t.Errorf("expected misc fallback category, got %q", anonymous)
	}
	if !strings.HasSuffix(anonymous, ".bin") {
		t.Errorf("expected bin fallback extension, got %q", anonymous)
	}
}

func TestJoinPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		key    string
		want   string
	}{
		{"", "a/b.txt", "a/b.txt"},
		{"/uploads/", "a/b.txt", "uploads/a/b.txt"},
		{"uploads", "/a/b.txt", "uploads/a/b.txt"},
	}

	for _, tt := range tests {
		if got := joinPrefix(tt.prefix, tt.key); got != tt.want {
			t.Errorf("joinPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
		}
	}
}

func TestSanitizeToken(t *testing.T) {
	if got := SanitizeToken("My File_01!"); got != "myfile_01" {
		t.Errorf("unexpected token: %q", got)
	}
}
