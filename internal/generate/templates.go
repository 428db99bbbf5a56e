package generate

import (
	"context"
	"fmt"
	"strings"
)

// TemplateStrategy fills a platform/format template with fragments
// extracted from the source content. Template lookup prefers the
// tone-specific variant, then the plain platform-format one.
type TemplateStrategy struct{}

func (s *TemplateStrategy) Name() string {
	return ModeTemplate
}

func (s *TemplateStrategy) Generate(_ context.Context, request Request) (string, error) {
	hook := templateHook(request.SourceContent)
	content := strings.TrimSpace(truncate(request.SourceContent, 500))

	template := lookupTemplate(request.Platform, request.Format, request.Tone)
	if template == "" {
		template = fallbackTemplate(request.Platform, request.Format)
	}

	return renderTemplate(template, map[string]string{
		"hook":           hook,
		"content":        content,
		"sourceContent":  request.SourceContent,
		"platform":       request.Platform,
		"format":         request.Format,
		"tone":           request.Tone,
		"targetAudience": request.TargetAudience,
		"brandName":      request.BrandName,
	}), nil
}

// templateHook takes the text before the first sentence terminator.
func templateHook(source string) string {
	if idx := strings.IndexAny(source, ".!?"); idx >= 0 {
		return strings.TrimSpace(source[:idx])
	}
	return strings.TrimSpace(source)
}

func lookupTemplate(platform, format, tone string) string {
	if tpl, ok := platformTemplates[platform+"-"+format+"-"+tone]; ok {
		return tpl
	}
	return platformTemplates[platform+"-"+format]
}

// renderTemplate substitutes {{name}} placeholders. Placeholders with
// no matching variable are left untouched.
func renderTemplate(template string, variables map[string]string) string {
	result := template
	for key, value := range variables {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return result
}

func fallbackTemplate(platform, format string) string {
	return fmt.Sprintf("{{hook}}\n\n{{content}}\n\n[Optimized for %s - %s]", platform, format)
}

var platformTemplates = map[string]string{
	"twitter-thread": `🧵 {{hook}}

1/ {{content}}

2/ Here's what this means for you...

[Thread continues with platform-optimized content]

What are your thoughts? Reply below! 💬`,

	"twitter-post": `{{hook}}

{{content}}

[Engaging closer or question]

#Hashtag1 #Hashtag2`,

	"linkedin-post-professional": `{{hook}}

{{content}}

Key insights:
→ Point 1
→ Point 2
→ Point 3

What's your experience with this?

#Industry #Hashtags`,

	"linkedin-post-casual": `{{hook}} 💡

Here's what I've learned:

{{content}}

Drop a comment if this resonates!

#GrowthMindset #Learning`,

	"linkedin-article": `# {{hook}}

## Introduction

{{content}}

## The Big Picture

[Detailed analysis]

## Key Takeaways

• Insight 1
• Insight 2
• Insight 3

## Conclusion

[Summary and call to action]`,

	"instagram-caption": `{{hook}} ✨

{{content}}

💡 Quick tip: [actionable advice]

Save this for later! 📌

#Hashtag #Instagram #Content`,

	"instagram-story": `{{hook}}

[Swipe up to learn more]

#ContentTip`,

	"instagram-reel": `POV: {{hook}} 🎯

{{content}}

Follow for more! 💫

#Reels #Content #Tips`,

	"email-newsletter": `Subject: {{hook}}

Hey {{firstName}},

{{content}}

Here's what you need to know:

[Key points]

[Call to action]

Talk soon,
{{senderName}}`,

	"email-announcement": `🎉 Exciting News!

{{hook}}

{{content}}

[CTA Button]

Best,
{{senderName}}`,

	"blog-article": `# {{hook}}

## Introduction

{{content}}

## Main Content

[Detailed sections]

## Conclusion

[Summary and next steps]`,

	"blog-listicle": `# [Number] Ways to {{topic}}

{{hook}}

## 1. First Point

{{content}}

## 2. Second Point

[Continue with more points]

## Conclusion

[Wrap up]`,

	"facebook-post": `{{hook}} 🎯

{{content}}

What do you think? Drop a comment! 💬

#Facebook #Content`,
}
