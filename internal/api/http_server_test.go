package api

import "testing"

func TestNormalisePublicBase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty defaults", "", "/files"},
		{"whitespace defaults", "   ", "/files"},
		{"missing leading slash", "assets", "/assets"},
		{"trailing slash trimmed", "/files/", "/files"},
		{"absolute url kept", "https://cdn.example.com/media/", "https://cdn.example.com/media"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalisePublicBase(tt.input); got != tt.want {
				t.Errorf("normalisePublicBase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPublicURL(t *testing.T) {
	h := &HTTPHandler{storagePublicBase: "/files"}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty path", "", ""},
		{"relative key", "sources/2026/01/02/notes.txt", "/files/sources/2026/01/02/notes.txt"},
		{"leading slash", "/sources/a.md", "/files/sources/a.md"},
		{"absolute url passthrough", "https://bucket.example.com/a.png", "https://bucket.example.com/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.publicURL(tt.path); got != tt.want {
				t.Errorf("publicURL(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
