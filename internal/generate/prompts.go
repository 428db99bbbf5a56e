package generate

import (
	"fmt"
	"strings"
)

// BuildSystemPrompt composes the system prompt an external provider
// would receive for a transformation request.
func BuildSystemPrompt(request Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are an expert content strategist specializing in platform-native content creation.

Your task is to transform source content into %s-optimized %s that:
- Maintains the core message and value
- Adapts to %s's format and audience expectations
- Uses a %s tone
`, request.Platform, request.Format, request.Platform, request.Tone)

	if request.StyleGuide != "" {
		fmt.Fprintf(&b, "- Follows this style guide: %s\n", request.StyleGuide)
	}
	if request.TargetAudience != "" {
		fmt.Fprintf(&b, "- Targets: %s\n", request.TargetAudience)
	}

	b.WriteString(`
Key principles:
1. Platform-native content performs 3x better than generic cross-posts
2. Each platform has unique engagement patterns
3. Maintain brand voice while adapting format
4. Focus on value and clarity

`)
	b.WriteString(platformGuidelines(request.Platform, request.Format))

	return b.String()
}

// BuildUserPrompt composes the user prompt carrying the source
// content and optional brand voice examples.
func BuildUserPrompt(request Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Transform this content for %s:

SOURCE CONTENT:
%s

TARGET FORMAT: %s
TONE: %s
`, request.Platform, request.SourceContent, request.Format, request.Tone)

	if len(request.ExampleTexts) > 0 {
		b.WriteString("\nBRAND VOICE EXAMPLES:\n")
		for i, example := range request.ExampleTexts {
			fmt.Fprintf(&b, "%d. %s\n", i+1, example)
		}
	}

	fmt.Fprintf(&b, "\nGenerate platform-native content that captures the essence of the source while optimizing for %s's format and audience.", request.Platform)

	return b.String()
}

// BuildVoiceAnalysisPrompt asks a provider to extract brand voice
// characteristics from writing samples.
func BuildVoiceAnalysisPrompt(exampleTexts []string) string {
	var b strings.Builder

	b.WriteString("Analyze these writing samples and extract the brand voice characteristics:\n\n")
	for i, text := range exampleTexts {
		fmt.Fprintf(&b, "Example %d:\n%s\n\n", i+1, text)
	}
	b.WriteString(`Identify:
1. Tone (professional, casual, friendly, etc.)
2. Common phrases or vocabulary
3. Sentence structure patterns
4. Use of punctuation and formatting
5. Personality traits

Provide a detailed voice profile that can be used to generate consistent content.`)

	return b.String()
}

func platformGuidelines(platform, format string) string {
	if guideline, ok := guidelines[platform+"-"+format]; ok {
		return guideline
	}
	return "Follow general best practices for the platform."
}

var guidelines = map[string]string{
	"twitter-thread": `Twitter Thread Guidelines:
- Start with a hook that stops the scroll
- Number tweets (1/, 2/, 3/)
- Keep each tweet under 280 characters
- Use line breaks for readability
- End with a question or call to action
- Max 10-15 tweets for engagement`,
	"twitter-post": `Twitter Post Guidelines:
- Lead with value in first line
- Use 2-3 relevant hashtags
- Include emojis sparingly
- Stay under 280 characters
- End with engagement prompt`,
	"twitter-reply": `Twitter Reply Guidelines:
- Be conversational and genuine
- Add value, don't just agree
- Keep it concise
- Use @mentions appropriately`,
	"linkedin-post": `LinkedIn Post Guidelines:
- Professional yet personable tone
- Use line breaks and emojis (→ • ✓)
- Share insights, not just information
- 1300-2000 characters optimal
- End with a question
- 3-5 relevant hashtags`,
	"linkedin-article": `LinkedIn Article Guidelines:
- Long-form content (1000-2000 words)
- Clear structure with headings
- Data-driven insights
- Professional formatting
- Actionable takeaways`,
	"linkedin-comment": `LinkedIn Comment Guidelines:
- Add genuine value
- Professional tone
- Thoughtful engagement
- Build relationships`,
	"instagram-caption": `Instagram Caption Guidelines:
- Hook in first line (visible without "more")
- Emojis for visual breaks
- Tell a story
- Include call to action
- 20-30 hashtags (add at end or first comment)
- 2200 character limit`,
	"instagram-story": `Instagram Story Guidelines:
- Vertical format focus
- Text should be large and readable
- Interactive elements
- Swipe-up worthy
- Mobile-first design`,
	"instagram-reel": `Instagram Reel Guidelines:
- Hook in first 3 seconds
- Short, punchy text
- Trending audio consideration
- Mobile-optimized
- Clear value proposition`,
	"email-newsletter": `Email Newsletter Guidelines:
- Compelling subject line
- Personal greeting
- Scannable format
- Clear sections
- Strong CTA
- P.S. for extra engagement`,
	"email-announcement": `Email Announcement Guidelines:
- Exciting subject line
- Get to the point quickly
- Highlight benefits
- Clear next steps
- Professional signature`,
	"email-follow-up": `Follow-up Email Guidelines:
- Reference previous conversation
- Add value, not just "checking in"
- Clear ask or next step
- Professional but warm`,
	"blog-article": `Blog Article Guidelines:
- SEO-optimized title
- Clear structure (H2, H3)
- 1500+ words for depth
- Internal/external links
- Conclusion with CTA
- Meta description ready`,
	"blog-listicle": `Listicle Guidelines:
- Number in title
- Consistent section format
- Actionable items
- Brief but valuable
- Summary at end`,
	"blog-tutorial": `Tutorial Guidelines:
- Step-by-step format
- Screenshots/examples
- Prerequisites section
- Clear instructions
- Troubleshooting tips`,
	"facebook-post": `Facebook Post Guidelines:
- Conversational tone
- Questions to drive comments
- Visual content support
- Community-building focus
- Emojis and formatting`,
	"facebook-story": `Facebook Story Guidelines:
- Mobile-first vertical
- Interactive elements
- 24-hour relevance
- Casual, authentic tone`,
}
