package generate

import (
	"context"
	"fmt"
)

// ExternalStrategy is the seam for a real model provider. It builds
// the provider prompts but has no backend wired yet, so every call
// fails with ErrNotImplemented.
type ExternalStrategy struct{}

func (s *ExternalStrategy) Name() string {
	return ModeExternal
}

func (s *ExternalStrategy) Generate(_ context.Context, request Request) (string, error) {
	_ = BuildSystemPrompt(request)
	_ = BuildUserPrompt(request)
	return "", fmt.Errorf("external mode for %s-%s: %w", request.Platform, request.Format, ErrNotImplemented)
}
