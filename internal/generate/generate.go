package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Generation modes selectable per request.
const (
	ModeMock     = "mock"
	ModeTemplate = "template"
	ModeExternal = "external"
)

// ErrNotImplemented is returned by strategies whose backing provider
// is not wired up yet.
var ErrNotImplemented = errors.New("generation provider not implemented")

// Request carries everything a strategy needs to produce one output.
type Request struct {
	SourceContent  string
	Platform       string
	Format         string
	Tone           string
	StyleGuide     string
	TargetAudience string
	ExampleTexts   []string
	BrandName      string
}

// Strategy produces platform-native text from source content.
type Strategy interface {
	// Name identifies the strategy for logging and response metadata.
	Name() string

	// Generate returns the rewritten content for the request's
	// platform/format pair.
	Generate(ctx context.Context, request Request) (string, error)
}

// NewStrategy instantiates the strategy for a generation mode.
// An empty mode selects the mock strategy.
func NewStrategy(mode string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeMock:
		return &MockStrategy{}, nil
	case ModeTemplate:
		return &TemplateStrategy{}, nil
	case ModeExternal:
		return &ExternalStrategy{}, nil
	default:
		return nil, fmt.Errorf("unsupported generation mode: %s", mode)
	}
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
