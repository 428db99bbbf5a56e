package platform

// Config describes one target platform: display metadata, the formats it
// accepts (first entry is the default), and an optional character limit.
// A zero CharacterLimit means the platform enforces none.
type Config struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	Icon           string   `json:"icon"`
	Formats        []string `json:"formats"`
	CharacterLimit int      `json:"character_limit,omitempty"`
	Color          string   `json:"color"`
}

const (
	Twitter   = "twitter"
	LinkedIn  = "linkedin"
	Instagram = "instagram"
	Email     = "email"
	Blog      = "blog"
	Facebook  = "facebook"
)

var catalogOrder = []string{Twitter, LinkedIn, Instagram, Email, Blog, Facebook}

var catalog = map[string]Config{
	Twitter: {
		Key:            Twitter,
		Name:           "Twitter/X",
		Icon:           "Twitter",
		Formats:        []string{"thread", "post", "reply"},
		CharacterLimit: 280,
		Color:          "#1DA1F2",
	},
	LinkedIn: {
		Key:            LinkedIn,
		Name:           "LinkedIn",
		Icon:           "Linkedin",
		Formats:        []string{"post", "article", "comment"},
		CharacterLimit: 3000,
		Color:          "#0A66C2",
	},
	Instagram: {
		Key:            Instagram,
		Name:           "Instagram",
		Icon:           "Instagram",
		Formats:        []string{"caption", "story", "reel"},
		CharacterLimit: 2200,
		Color:          "#E4405F",
	},
	Email: {
		Key:     Email,
		Name:    "Email",
		Icon:    "Mail",
		Formats: []string{"newsletter", "announcement", "follow-up"},
		Color:   "#EA4335",
	},
	Blog: {
		Key:     Blog,
		Name:    "Blog Post",
		Icon:    "FileText",
		Formats: []string{"article", "listicle", "tutorial"},
		Color:   "#6366F1",
	},
	Facebook: {
		Key:            Facebook,
		Name:           "Facebook",
		Icon:           "Facebook",
		Formats:        []string{"post", "story"},
		CharacterLimit: 63206,
		Color:          "#1877F2",
	},
}

// Lookup returns the configuration for a platform key.
func Lookup(key string) (Config, bool) {
	cfg, ok := catalog[key]
	return cfg, ok
}

// Known reports whether the platform key exists in the catalog.
func Known(key string) bool {
	_, ok := catalog[key]
	return ok
}

// ValidFormat reports whether the format belongs to the platform.
func ValidFormat(key, format string) bool {
	cfg, ok := catalog[key]
	if !ok {
		return false
	}
	for _, f := range cfg.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// DefaultFormat returns the platform's first listed format.
func DefaultFormat(key string) (string, bool) {
	cfg, ok := catalog[key]
	if !ok || len(cfg.Formats) == 0 {
		return "", false
	}
	return cfg.Formats[0], true
}

// All returns every platform configuration in stable display order.
func All() []Config {
	result := make([]Config, 0, len(catalogOrder))
	for _, key := range catalogOrder {
		result = append(result, catalog[key])
	}
	return result
}
