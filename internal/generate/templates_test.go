package generate

import (
	"context"
	"strings"
	"testing"
)

func TestTemplateHook(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"period", "Hello world. More text.", "Hello world"},
		{"exclamation", "Big news! Details follow.", "Big news"},
		{"question", "Why bother? Because.", "Why bother"},
		{"no terminator", "  just a fragment  ", "just a fragment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := templateHook(tt.source); got != tt.want {
				t.Errorf("templateHook(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestRenderTemplate(t *testing.T) {
	got := renderTemplate("{{hook}} / {{content}} / {{senderName}}", map[string]string{
		"hook":    "the hook",
		"content": "the body",
	})
	want := "the hook / the body / {{senderName}}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTemplateGenerate(t *testing.T) {
	source := "Distribution beats creation. The rest of the essay expands on that claim."
	strategy := &TemplateStrategy{}

	tests := []struct {
		name     string
		request  Request
		contains []string
	}{
		{
			name:     "tone-specific template preferred",
			request:  Request{SourceContent: source, Platform: "linkedin", Format: "post", Tone: "professional"},
			contains: []string{"Distribution beats creation", "Key insights:", "#Industry #Hashtags"},
		},
		{
			name:     "falls back to platform-format when tone variant missing",
			request:  Request{SourceContent: source, Platform: "twitter", Format: "thread", Tone: "witty"},
			contains: []string{"🧵 Distribution beats creation", "Reply below!"},
		},
		{
			name:     "generic fallback for unmapped pair",
			request:  Request{SourceContent: source, Platform: "linkedin", Format: "comment", Tone: "bold"},
			contains: []string{"Distribution beats creation", "[Optimized for linkedin - comment]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := strategy.Generate(context.Background(), tt.request)
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

func TestBuildPrompts(t *testing.T) {
	request := Request{
		SourceContent:  "Ship less, amplify more.",
		Platform:       "twitter",
		Format:         "thread",
		Tone:           "bold",
		StyleGuide:     "short declarative sentences",
		TargetAudience: "indie creators",
		ExampleTexts:   []string{"We build loud things quietly."},
	}

	system := BuildSystemPrompt(request)
	for _, want := range []string{
		"twitter-optimized thread",
		"Uses a bold tone",
		"Follows this style guide: short declarative sentences",
		"Targets: indie creators",
		"Twitter Thread Guidelines:",
	} {
		if !strings.Contains(system, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}

	user := BuildUserPrompt(request)
	for _, want := range []string{
		"SOURCE CONTENT:\nShip less, amplify more.",
		"TARGET FORMAT: thread",
		"BRAND VOICE EXAMPLES:",
		"1. We build loud things quietly.",
	} {
		if !strings.Contains(user, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}

	unknown := BuildSystemPrompt(Request{Platform: "tiktok", Format: "clip", Tone: "casual"})
	if !strings.Contains(unknown, "Follow general best practices for the platform.") {
		t.Error("expected generic guidelines for unknown platform")
	}
}
