package generate

import (
	"context"
	"strings"
	"testing"
)

func TestMockHook(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"with period", "First sentence. Second sentence.", "First sentence."},
		{"no period", "no terminator here", "no terminator here."},
		{"leading period", ".odd input", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mockHook(tt.source); got != tt.want {
				t.Errorf("mockHook(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestMockGenerate(t *testing.T) {
	source := "EchoForge transforms your content into platform-native posts automatically. It keeps your voice intact."
	strategy := &MockStrategy{}

	tests := []struct {
		name     string
		platform string
		format   string
		contains []string
	}{
		{
			name:     "twitter thread",
			platform: "twitter",
			format:   "thread",
			contains: []string{"🧵 Thread: EchoForge transforms your content into platform-native posts automatically.", "1/ "},
		},
		{
			name:     "linkedin post",
			platform: "linkedin",
			format:   "post",
			contains: []string{"→ Distribution beats creation", "#ContentStrategy #AI #Marketing"},
		},
		{
			name:     "email follow-up lowercases hook",
			platform: "email",
			format:   "follow-up",
			contains: []string{"Following up on echoforge transforms"},
		},
		{
			name:     "unknown pair falls back",
			platform: "twitter",
			format:   "quote",
			contains: []string{"[Content adapted for twitter - quote]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := strategy.Generate(context.Background(), Request{
				SourceContent: source,
				Platform:      tt.platform,
				Format:        tt.format,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestEngagementScore(t *testing.T) {
	content := "some generated output"

	first := EngagementScore(content)
	second := EngagementScore(content)
	if first != second {
		t.Errorf("score not stable: %d vs %d", first, second)
	}
	if first < 50 || first > 149 {
		t.Errorf("score %d outside [50, 149]", first)
	}
	if EngagementScore("") < 50 {
		t.Error("empty content score below floor")
	}
}
