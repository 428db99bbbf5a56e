package platform

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		key       string
		wantOK    bool
		wantName  string
		wantLimit int
	}{
		{key: "twitter", wantOK: true, wantName: "Twitter/X", wantLimit: 280},
		{key: "linkedin", wantOK: true, wantName: "LinkedIn", wantLimit: 3000},
		{key: "instagram", wantOK: true, wantName: "Instagram", wantLimit: 2200},
		{key: "email", wantOK: true, wantName: "Email", wantLimit: 0},
		{key: "blog", wantOK: true, wantName: "Blog Post", wantLimit: 0},
		{key: "facebook", wantOK: true, wantName: "Facebook", wantLimit: 63206},
		{key: "myspace", wantOK: false},
		{key: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg, ok := Lookup(tt.key)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			if cfg.Name != tt.wantName {
				t.Errorf("expected name %q, got %q", tt.wantName, cfg.Name)
			}
			if cfg.CharacterLimit != tt.wantLimit {
				t.Errorf("expected limit %d, got %d", tt.wantLimit, cfg.CharacterLimit)
			}
		})
	}
}

func TestValidFormat(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		format   string
		want     bool
	}{
		{"twitter thread", "twitter", "thread", true},
		{"twitter article", "twitter", "article", false},
		{"linkedin article", "linkedin", "article", true},
		{"email follow-up", "email", "follow-up", true},
		{"blog tutorial", "blog", "tutorial", true},
		{"facebook reel", "facebook", "reel", false},
		{"unknown platform", "tiktok", "post", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidFormat(tt.platform, tt.format); got != tt.want {
				t.Errorf("ValidFormat(%q, %q) = %v, want %v", tt.platform, tt.format, got, tt.want)
			}
		})
	}
}

func TestDefaultFormat(t *testing.T) {
	tests := []struct {
		platform string
		want     string
		wantOK   bool
	}{
		{"twitter", "thread", true},
		{"linkedin", "post", true},
		{"instagram", "caption", true},
		{"email", "newsletter", true},
		{"blog", "article", true},
		{"facebook", "post", true},
		{"unknown", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			got, ok := DefaultFormat(tt.platform)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAllOrderAndCompleteness(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("expected 6 platforms, got %d", len(all))
	}

	expected := []string{"twitter", "linkedin", "instagram", "email", "blog", "facebook"}
	for i, key := range expected {
		if all[i].Key != key {
			t.Errorf("position %d: expected %q, got %q", i, key, all[i].Key)
		}
		if len(all[i].Formats) == 0 {
			t.Errorf("platform %q has no formats", key)
		}
	}
}
