package generate

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
)

// MockStrategy returns canned platform-native rewrites seeded with
// fragments of the source content. It is the default mode and needs
// no external provider.
type MockStrategy struct{}

func (s *MockStrategy) Name() string {
	return ModeMock
}

func (s *MockStrategy) Generate(_ context.Context, request Request) (string, error) {
	hook := mockHook(request.SourceContent)
	mainPoint := strings.TrimSpace(truncate(request.SourceContent, 150))

	if build, ok := mockResponses[request.Platform+"-"+request.Format]; ok {
		return build(hook, mainPoint), nil
	}
	return fmt.Sprintf("%s\n\n%s\n\n[Content adapted for %s - %s]",
		hook, mainPoint, request.Platform, request.Format), nil
}

// mockHook is the source text up to and including the first period.
func mockHook(source string) string {
	if idx := strings.Index(source, "."); idx >= 0 {
		return source[:idx+1]
	}
	return source + "."
}

// EngagementScore predicts engagement in the range [50, 149]. The
// score is a stable function of the content so repeated requests for
// the same text agree.
func EngagementScore(content string) int {
	h := fnv.New32a()
	h.Write([]byte(content))
	return int(h.Sum32()%100) + 50
}

var mockResponses = map[string]func(hook, mainPoint string) string{
	"twitter-thread": func(hook, mainPoint string) string {
		return fmt.Sprintf(`🧵 Thread: %s

1/ %s...

2/ Here's why this matters: [Platform-native content performs 3x better]

3/ The key is adapting your message to each platform's unique format and audience expectations.

4/ That's where AI comes in—maintaining your voice while optimizing for each channel.

5/ Want to see this in action? Try transforming one piece of content across all your platforms.`, hook, mainPoint)
	},
	"twitter-post": func(hook, _ string) string {
		return fmt.Sprintf(`%s...

Transform one message into platform-native content across all channels.

#ContentStrategy #AI`, truncate(hook, 220))
	},
	"twitter-reply": func(_, mainPoint string) string {
		return fmt.Sprintf(`Great point! %s...

This is exactly why platform-native content matters.`, truncate(mainPoint, 200))
	},
	"linkedin-post": func(hook, mainPoint string) string {
		return fmt.Sprintf(`%s

%s

Here's what I've learned:

→ Distribution beats creation
→ Platform-native wins every time
→ Consistency requires automation
→ Your brand voice should stay constant

The future isn't about creating more content. It's about amplifying what you already have.

What's your biggest content distribution challenge?

#ContentStrategy #AI #Marketing`, hook, mainPoint)
	},
	"linkedin-article": func(hook, mainPoint string) string {
		return fmt.Sprintf(`# %s

## The Challenge

%s

## Why This Matters

In today's digital landscape, creating great content is only half the battle. The real challenge is getting that content in front of your audience—on every platform where they spend their time.

## The Solution

Platform-native content that maintains your brand voice while adapting to each channel's unique format and audience expectations.

## Key Takeaways

• Focus on distribution, not just creation
• Adapt content for each platform's format
• Maintain consistent brand voice
• Use AI to scale without burning out

## Moving Forward

The creators and brands that thrive will be those who master the art of amplification.`, hook, mainPoint)
	},
	"linkedin-comment": func(_, mainPoint string) string {
		return fmt.Sprintf(`Insightful post! %s...

This aligns perfectly with what we're seeing in the market. Would love to hear more about your approach.`, truncate(mainPoint, 150))
	},
	"instagram-caption": func(hook, mainPoint string) string {
		return fmt.Sprintf(`%s ✨

%s...

Here's the truth: great content deserves great distribution.

💡 Tips:
• Platform-native wins
• Maintain your voice
• Automate what you can
• Focus on impact

What's your content strategy? Drop a 💭 below!

#ContentCreator #SocialMediaTips #MarketingStrategy`, truncate(hook, 100), truncate(mainPoint, 150))
	},
	"instagram-story": func(hook, _ string) string {
		return fmt.Sprintf(`%s

Swipe up to learn more 👆

#ContentStrategy`, hook)
	},
	"instagram-reel": func(_, mainPoint string) string {
		return fmt.Sprintf(`POV: You just learned how to 10x your content reach 🎯

%s...

Save this for later! 📌

#ContentTips #CreatorEconomy`, truncate(mainPoint, 100))
	},
	"email-newsletter": func(hook, mainPoint string) string {
		return fmt.Sprintf(`Subject: %s

Hey there,

%s

Here's what you need to know:

**The Problem:**
Most creators spend 70%% of their time repurposing content manually.

**The Solution:**
Platform-native content that adapts automatically while maintaining your unique voice.

**Why It Works:**
→ Consistent presence across platforms
→ Better engagement (3x on average)
→ More time for strategy

**What You Can Do:**
Start by identifying your core content pieces. Then, ask yourself: how can each piece be adapted for different platforms?

The goal isn't more content—it's better distribution.

Talk soon,
[Your Name]

P.S. Reply to this email and let me know your biggest content challenge!`, hook, mainPoint)
	},
	"email-announcement": func(hook, mainPoint string) string {
		return fmt.Sprintf(`🎉 Exciting News!

%s

%s

This changes everything for creators and marketers who want to scale their reach without burning out.

Ready to learn more? Click here →

Best,
[Your Name]`, hook, mainPoint)
	},
	"email-follow-up": func(hook, mainPoint string) string {
		return fmt.Sprintf(`Hey [Name],

Following up on %s

%s...

Wanted to make sure this was on your radar. Would love to hear your thoughts!

Best,
[Your Name]`, strings.ToLower(hook), truncate(mainPoint, 120))
	},
	"blog-article": func(hook, mainPoint string) string {
		return fmt.Sprintf(`# %s

## Introduction

%s

In this article, we'll explore why distribution has become the critical bottleneck for content creators and how AI-powered tools are changing the game.

## The Distribution Challenge

Creating great content has never been easier. But getting that content in front of your audience? That's where most creators struggle.

Research shows that successful creators spend up to 70%% of their time on content repurposing and distribution—leaving only 30%% for actual creation.

## Why Platform-Native Matters

Platform-native content consistently outperforms generic cross-posts by 3-5x. Here's why:

• Each platform has unique audience expectations
• Format matters as much as message
• Timing and context vary by channel
• Engagement patterns differ significantly

## The Solution

The future belongs to creators who can maintain their authentic voice while adapting seamlessly to each platform's unique requirements.

## Conclusion

%s The question isn't whether to distribute your content broadly—it's how to do it effectively at scale.`, hook, mainPoint, hook)
	},
	"blog-listicle": func(hook, mainPoint string) string {
		return fmt.Sprintf(`# 5 Ways to %s

%s

Here's your complete guide:

## 1. Start With Strong Source Content

Quality in = quality out. Make sure your original content is valuable and well-structured.

## 2. Understand Platform Nuances

Twitter loves threads. LinkedIn wants insights. Instagram needs visuals.

## 3. Maintain Your Brand Voice

Consistency across platforms builds trust and recognition.

## 4. Optimize for Each Format

Don't just copy-paste. Adapt the format, length, and style.

## 5. Measure and Iterate

Track what works on each platform and refine your approach.

## Conclusion

Distribution is the new creation. Master it, and you'll 10x your impact.`, strings.Replace(hook, ".", "", 1), mainPoint)
	},
	"blog-tutorial": func(hook, mainPoint string) string {
		return fmt.Sprintf(`# How to %s - Step-by-Step Guide

%s

## What You'll Need

• Your source content
• Understanding of each platform's format
• Brand voice guidelines
• Time for adaptation (or AI tools to help)

## Step 1: Identify Your Core Message

Start with your key takeaway. What's the one thing you want audiences to remember?

## Step 2: Map to Platform Formats

Twitter: Thread or single post?
LinkedIn: Post or article?
Instagram: Feed, story, or reel?

## Step 3: Adapt, Don't Duplicate

Tailor the message, format, and tone for each platform's audience.

## Step 4: Maintain Voice Consistency

Your brand should be recognizable across all channels.

## Step 5: Schedule and Publish

Use a scheduling tool or automation to maintain consistency.

## Conclusion

%s Follow this framework and watch your reach multiply.`, strings.Replace(hook, ".", "", 1), mainPoint, hook)
	},
	"facebook-post": func(hook, mainPoint string) string {
		return fmt.Sprintf(`%s 🎯

%s

Here's what I've discovered about content distribution...

[Rest of your content adapted for Facebook's format]

What do you think? Drop a comment below! 💬

#ContentStrategy #SocialMedia`, hook, mainPoint)
	},
	"facebook-story": func(hook, _ string) string {
		return fmt.Sprintf(`%s

Tap for more 👆

[Adapted for Facebook Stories format]`, truncate(hook, 80))
	},
}
