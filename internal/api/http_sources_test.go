package api

import (
	"strings"
	"testing"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "just some text",
			want:  "just some text",
		},
		{
			name:  "tags removed",
			input: "<p>Hello <b>world</b></p>",
			want:  "Hello world",
		},
		{
			name:  "script dropped",
			input: "<p>Keep this</p><script>alert('x')</script>",
			want:  "Keep this",
		},
		{
			name:  "entities decoded",
			input: "Fish &amp; chips &lt;3",
			want:  "Fish & chips <3",
		},
		{
			name:  "paragraphs become line breaks",
			input: "<p>First</p><p>Second</p>",
			want:  "First\nSecond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripHTML(tt.input); got != tt.want {
				t.Errorf("stripHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripHTMLCollapsesBlankRuns(t *testing.T) {
	input := "<div>one</div>\n\n\n\n<div>two</div>"
	got := stripHTML(input)
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("expected blank runs collapsed, got %q", got)
	}
	if !strings.Contains(got, "one") || !strings.Contains(got, "two") {
		t.Errorf("expected both blocks kept, got %q", got)
	}
}
