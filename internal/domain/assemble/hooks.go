package assemble

import (
	"strings"

	"github.com/forPelevin/naijavibe/internal/types"
)

// MaxHooks caps the onscreen hook shortlist.
const MaxHooks = 5

// DefaultHookTitle is used when the SEO title is empty.
const DefaultHookTitle = "Naija Stoic Logic"

type hookGroup struct {
	keywords []string
	hooks    []string
}

// Groups are tested independently; every matching group contributes its hooks
// in this order.
var hookGroups = []hookGroup{
	{
		keywords: []string{"pay", "bills", "deserve", "entitled", "prize"},
		hooks:    []string{"POV: The Toxic Council", "POV: Entitlement Mentality", "POV: Slay Queen Logic"},
	},
	{
		keywords: []string{"man", "woman", "date", "marriage", "breakfast"},
		hooks:    []string{"POV: Modern Relationships", "POV: High Value Standards", "POV: Breakfast Served Hot"},
	},
	{
		keywords: []string{"logic", "sense", "why", "how"},
		hooks:    []string{"POV: Logic Applied", "POV: The Logic Trap", "POV: No Gree For Anybody"},
	},
}

type lessonRule struct {
	keywords []string
	lesson   string
}

// First match wins.
var lessonRules = []lessonRule{
	{
		keywords: []string{"pay", "bills", "deserve", "entitled"},
		lesson:   "Your value comes from your character, not your entitlement. No gree for sapa mentality.",
	},
	{
		keywords: []string{"prize", "worth", "standards"},
		lesson:   "A true prize doesn't need to announce its price. Character over packaging.",
	},
	{
		keywords: []string{"marriage", "man", "woman", "date"},
		lesson:   "Relationships na partnership, no be entitlement workshop. Stay logical.",
	},
	{
		keywords: []string{"why", "how", "logic"},
		lesson:   "Question everything with logic. When emotions rise, wisdom must lead.",
	},
}

const fallbackLesson = "Protect your peace and use your logic. No gree for anybody."

// OnscreenHooks builds up to MaxHooks distinct overlay hooks: the title hook
// first, then every matching topical group.
func OnscreenHooks(title string, scenes []types.Scene) []string {
	if strings.TrimSpace(title) == "" {
		title = DefaultHookTitle
	}
	text := dialogueText(scenes)

	hooks := []string{"POV: " + title}
	for _, g := range hookGroups {
		if containsAny(text, g.keywords) {
			hooks = append(hooks, g.hooks...)
		}
	}

	seen := make(map[string]struct{}, len(hooks))
	out := make([]string, 0, MaxHooks)
	for _, h := range hooks {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
		if len(out) == MaxHooks {
			break
		}
	}
	return out
}

// FinalLesson returns the closing aphorism for the dialogue.
func FinalLesson(scenes []types.Scene) string {
	text := dialogueText(scenes)
	for _, r := range lessonRules {
		if containsAny(text, r.keywords) {
			return r.lesson
		}
	}
	return fallbackLesson
}

func dialogueText(scenes []types.Scene) string {
	parts := make([]string, 0, len(scenes))
	for _, s := range scenes {
		parts = append(parts, s.Dialogue)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// containsAny matches substrings, so "man" also hits "many".
func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
