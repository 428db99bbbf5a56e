package generate

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"echoforge/internal/platform"

	"golang.org/x/sync/errgroup"
)

// Result is one finished transformation plus its output metadata.
type Result struct {
	Platform string                 `json:"platform"`
	Format   string                 `json:"format"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata"`
}

// Transformer runs a Strategy and decorates its output with metadata.
// The delay simulates provider latency and is cancellable through the
// request context; set it to zero to disable.
type Transformer struct {
	strategy Strategy
	delay    time.Duration
}

func NewTransformer(strategy Strategy, delay time.Duration) *Transformer {
	return &Transformer{strategy: strategy, delay: delay}
}

// StrategyName reports which strategy backs this transformer.
func (t *Transformer) StrategyName() string {
	return t.strategy.Name()
}

// Transform produces one platform/format output for the request.
func (t *Transformer) Transform(ctx context.Context, request Request) (Result, error) {
	if t.delay > 0 {
		timer := time.NewTimer(t.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-timer.C:
		}
	}

	content, err := t.strategy.Generate(ctx, request)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Platform: request.Platform,
		Format:   request.Format,
		Content:  content,
		Metadata: buildMetadata(content),
	}, nil
}

// TransformMany runs one transformation per request concurrently and
// returns results in request order. The first failure cancels the
// remaining work.
func (t *Transformer) TransformMany(ctx context.Context, requests []Request) ([]Result, error) {
	results := make([]Result, len(requests))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, request := range requests {
		i, request := i, request
		group.Go(func() error {
			result, err := t.Transform(groupCtx, request)
			if err != nil {
				return fmt.Errorf("transform %s-%s: %w", request.Platform, request.Format, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func buildMetadata(content string) map[string]interface{} {
	return map[string]interface{}{
		"character_count":      len([]rune(content)),
		"word_count":           countWords(content),
		"estimated_read_time":  estimateReadTime(content),
		"estimated_engagement": EngagementScore(content),
		"generated_at":         time.Now().UTC().Format(time.RFC3339),
	}
}

// ValidateContentLength checks the content against the platform's
// character limit, if it has one.
func ValidateContentLength(content, platformKey string) error {
	cfg, ok := platform.Lookup(platformKey)
	if !ok {
		return fmt.Errorf("unknown platform: %s", platformKey)
	}
	if cfg.CharacterLimit == 0 {
		return nil
	}
	if count := len([]rune(content)); count > cfg.CharacterLimit {
		return fmt.Errorf("content exceeds %s limit of %d characters", platformKey, cfg.CharacterLimit)
	}
	return nil
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// OptimizeForPlatform normalizes whitespace before publishing. The
// same normalization currently applies to every platform.
func OptimizeForPlatform(content, platformKey string) string {
	_ = platformKey

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	result := strings.Join(lines, "\n")
	result = blankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

func estimateReadTime(text string) string {
	const wordsPerMinute = 200
	words := countWords(text)
	// Anything under a full minute's worth of reading floors to "< 1 min".
	if words < wordsPerMinute {
		return "< 1 min"
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return fmt.Sprintf("%d min", minutes)
}
