package script

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/forPelevin/naijavibe/internal/types"
)

var recreateLanguages = map[string]string{
	"pidgin":  "Nigerian Pidgin (Raw Street Vibe)",
	"mixed":   "Urban Lagos Mix (English + Spice)",
	"english": "Standard Nigerian English (Formal & Sophisticated)",
}

// RecreateLanguage names the dialogue language the recreator enforces.
// Unknown keys get Pidgin.
func RecreateLanguage(key string) string {
	if d, ok := recreateLanguages[key]; ok {
		return d
	}
	return recreateLanguages["pidgin"]
}

const recreateFormat = `{
  "long_video": {
    "title": "Viral clickbait title",
    "description": "Engaging description",
    "tags": ["tag1", "tag2", "tag3"],
    "pov": "POV instruction",
    "locations": [
      {
        "location_id": 1,
        "location_description": "Rich description of the real setting, used as the only background image of this location",
        "scenes": [
          {
            "scene_id": 1,
            "character": "name",
            "action_description": "Posture-aware action, seated or standing, never walking",
            "dialogue": "[Name] says: [Dialogue]",
            "sfx": "Short SFX description"
          }
        ]
      }
    ]
  },
  "short_video": {
    "title": "Short title",
    "description": "Short description",
    "tags": ["shorts", "naija"],
    "pov": "POV instruction",
    "scenes": [
      {
        "scene_id": 1,
        "character": "name",
        "action_description": "Quick action",
        "dialogue": "[Name] says: [Dialogue]",
        "sfx": "Relevant SFX"
      }
    ]
  }
}`

// RecreatePrompt renders the prompt that retells a transcript as a Nigerian
// drama with a long and a short cut. It carries its own persona, so no system
// prompt goes with it.
func RecreatePrompt(req types.RecreateRequest) string {
	lang := RecreateLanguage(req.Language)

	var b strings.Builder
	b.WriteString("You are a viral content creator specializing in Nigerian dramas (NaijaStoic style).\n\n")
	b.WriteString("TASK:\nRecreate the following story transcript into a viral Nigerian dramatic story.\n\n")
	fmt.Fprintf(&b, "INPUT TRANSCRIPT:\n%s\n\n", strings.TrimSpace(req.Transcript))
	b.WriteString("MANDATORY REQUIREMENTS:\n")
	b.WriteString("1. CHARACTER NAMES: Change all names to common Nigerian names. A recurring family is always " +
		"\"Odogwu (Dad)\", \"Amaka (Mom)\" and \"Triplets (Ngozi, Chioma, Princess)\". Every other role gets a unique Nigerian name.\n")
	b.WriteString("2. ONE IMAGE PER LOCATION: Take every location from the transcript. Each location_description must be a rich, " +
		"visually specific description of the real setting, never a vague label like 'kitchen' or 'office'. " +
		"All scenes of a location reuse the same background image.\n")
	b.WriteString("3. DIALOGUE FORMAT: \"[Character Name] says: [Dialogue]\", at most 12-15 words so it fits under 6 seconds.\n")
	b.WriteString("4. NIGERIANIZATION: Set the story in Nigeria with authentic context, and raise the drama for viral impact.\n")
	b.WriteString("5. SFX: Give EVERY scene a relevant sound effect.\n")
	b.WriteString("6. DUAL OUTPUT: Produce a \"Long Video\" (4 locations) and a \"Short Video\" (3-5 scenes).\n")
	fmt.Fprintf(&b, "7. LANGUAGE (STRICT): ALL dialogue MUST be written in %s. Do not mix languages.\n", lang)
	b.WriteString("8. ZERO CHARACTER MOVEMENT: Characters never walk, pace or run; locations change by scene cuts only. " +
		"In seated settings (restaurant, car, classroom, office desk, boardroom, courtroom) describe seated actions only. " +
		"In standing settings (hallway, rooftop, market, street, living room) describe standing gestures only.\n\n")
	b.WriteString("OUTPUT FORMAT (JSON ONLY):\n")
	b.WriteString(recreateFormat + "\n\n")
	b.WriteString("RULES:\n")
	b.WriteString("- Long Video: EXACTLY 4 locations with 3-4 scenes each (12-16 scenes total).\n")
	b.WriteString("- Short Video: EXACTLY 3-5 scenes.\n")
	b.WriteString("- No markdown, only raw JSON.\n")
	return b.String()
}

// ParseRecreation decodes a recreator answer. Unlike Parse there is no plain
// text fallback; an answer with neither cut holding a scene is ErrNoScenes.
func ParseRecreation(text string) (types.Recreation, error) {
	obj, err := ExtractJSONObject(text)
	if err != nil {
		return types.Recreation{Raw: text}, fmt.Errorf("%w: %v", ErrNoScenes, err)
	}
	var r types.Recreation
	if err := json.Unmarshal([]byte(obj), &r); err != nil {
		return types.Recreation{Raw: text}, fmt.Errorf("decode recreation: %w", err)
	}
	r.Raw = text
	if r.Long.Empty() && r.Short.Empty() {
		return r, ErrNoScenes
	}
	return r, nil
}
