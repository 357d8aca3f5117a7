package promptgen

import "strings"

// Default phrases used when a filter value is absent. Values that are present
// but unknown to the tables below pass through verbatim: a merchant typing a
// custom scene description should see exactly that text in the prompt.
const (
	defaultBackground = "a professional studio with a clean, evenly lit backdrop"
	defaultLighting   = "professional studio lighting setup"
	defaultAngle      = "a front-facing view at eye level"
	defaultMood       = "clean, polished, and commercial"
)

var backgroundPhrases = map[string]string{
	"studio-white":    "a professional studio with a clean white background",
	"studio-gray":     "a professional studio with an elegant gray background",
	"outdoor-natural": "a beautiful outdoor natural setting",
	"lifestyle-home":  "a stylish home lifestyle environment",
	"minimal":         "a minimal, clean aesthetic background",
	"studio":          "a professional photography studio backdrop",
	"outdoor":         "an outdoor location with soft natural scenery",
	"lifestyle":       "a lived-in lifestyle setting with tasteful decor",
	"catalogue":       "a neutral catalogue backdrop with no distractions",
}

var lightingPhrases = map[string]string{
	"soft":        "soft, diffused lighting that enhances the product details",
	"dramatic":    "dramatic lighting with strong contrast and sculpted shadows",
	"natural":     "natural, warm lighting that looks authentic",
	"studio":      "professional studio lighting setup",
	"golden-hour": "golden-hour sunlight with a warm directional glow",
}

var anglePhrases = map[string]string{
	"front":         "front-facing view",
	"side":          "side profile view",
	"three-quarter": "three-quarter angle view",
	"overhead":      "overhead flat lay view",
	"closeup":       "close-up detail shot",
}

var moodPhrases = map[string]string{
	"elegant":      "elegant, luxurious, and sophisticated",
	"casual":       "casual, relaxed, and approachable",
	"vibrant":      "vibrant, energetic, and eye-catching",
	"minimal":      "minimal, clean, and modern",
	"festival":     "festive, celebratory, and richly colorful",
	"professional": "polished, confident, and business-like",
	"glamorous":    "glamorous, radiant, and editorial",
}

var bodyTypePhrases = map[string]string{
	"slim":      "a slim build",
	"athletic":  "an athletic, toned build",
	"average":   "an average build",
	"curvy":     "a curvy build",
	"plus-size": "a plus-size build",
}

var skinTonePhrases = map[string]string{
	"fair":   "fair skin",
	"light":  "light skin",
	"medium": "medium skin tone",
	"olive":  "olive skin tone",
	"tan":    "tan skin",
	"brown":  "brown skin",
	"deep":   "deep skin tone",
}

var hairTypePhrases = map[string]string{
	"straight": "straight hair",
	"wavy":     "wavy hair",
	"curly":    "curly hair",
	"coily":    "coily hair",
	"braided":  "braided hair",
	"short":    "short hair",
	"long":     "long flowing hair",
}

var hairColorPhrases = map[string]string{
	"black":  "black",
	"brown":  "brown",
	"blonde": "blonde",
	"auburn": "auburn",
	"red":    "red",
	"gray":   "gray",
}

var colorGradingPhrases = map[string]string{
	"warm":       "warm golden tones with a cozy, inviting cast",
	"cool":       "cool blue tones with a crisp, modern cast",
	"balanced":   "balanced, true-to-life color reproduction",
	"vibrant":    "vibrant, saturated colors with punchy contrast",
	"monochrome": "monochrome black-and-white treatment",
}

// normalizeKey case-folds a filter value and collapses whitespace to hyphens
// so "Studio White" and "studio-white" hit the same table entry.
func normalizeKey(value string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(value))), "-")
}

// phrase resolves a filter value against a lookup table. Empty values take
// the fallback; unknown non-empty values pass through verbatim.
func phrase(table map[string]string, value, fallback string) string {
	key := normalizeKey(value)
	if key == "" {
		return fallback
	}
	if p, ok := table[key]; ok {
		return p
	}
	return value
}
