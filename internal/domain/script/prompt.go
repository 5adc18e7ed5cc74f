// Package script builds the oracle prompt and parses whatever comes back.
package script

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/forPelevin/naijavibe/internal/types"
)

//go:embed prompts/system.txt
var systemPrompt string

// SystemPrompt returns the persona and format rules sent ahead of every request.
func SystemPrompt() string {
	return systemPrompt
}

type languageStyle struct {
	name        string
	instruction string
	endPhrase   string
}

var languageStyles = map[string]languageStyle{
	"pidgin": {
		name:        "Nigerian Vibe",
		instruction: "1. Rewrite into **Nigerian Pidgin (Vibe)** (Authentic Nigerian Pidgin English). Raw, expressive, and full of local street flavor (Warri/Lagos style).",
		endPhrase:   "No gree for anybody",
	},
	"mixed": {
		name:        "Urban Lagos Mix",
		instruction: "1. Rewrite into **Urban Lagos Mix (English + Spice)**. Characters should sound like educated Lagos professionals who switch codes naturally. Use professional English spiced with catchy Pidgin phrases and slang. Corporate but street-smart.",
		endPhrase:   "No gree for anybody",
	},
	"english": {
		name:        "Standard Nigerian English",
		instruction: "1. Rewrite into **Standard Nigerian English**. Clear, grammatically correct, and sophisticated English as spoken by educated Nigerians. Use a distinct Nigerian tone and assertiveness, but ABSOLUTELY NO PIDGIN, NO STREET SLANG (no Sapa, no breakfast, no gree, etc.). Use formal Nigerian sentence structures (e.g., 'So, how can you explain this?' instead of 'How you wan explain this?'). Target an elite, corporate Nigerian professional audience.",
		endPhrase:   "Do not back down from your principles",
	},
}

func styleFor(language string) languageStyle {
	if s, ok := languageStyles[language]; ok {
		return s
	}
	return languageStyles["pidgin"]
}

const singleModeInstruction = `2. Expand to 13 scenes (90 seconds total, 7 seconds per scene)
3. Keep protagonist calm and logical
4. Make antagonist emotional/entitled (scenes 1-6)`

const multiModeInstruction = `2. MANDATORY: Expand the story to span across **EXACTLY 4 DIFFERENT LOCATIONS** in Nigeria.
3. Under EVERY location, generate **3 to 4 scenes** (total of 12-16 scenes for the entire video).
4. Provide a distinct and detailed 'location_description' for each of the 4 locations.
5. Ensure the narrative flows logically as characters move between these 4 settings.`

const singleModeFormat = `{
  "viral_title": "...",
  "setting_description": "...",
  "scenes": [
    {
      "scene_id": 1,
      "phase": "Hook",
      "character": "antagonist",
      "camera_angle": "Medium Shot",
      "action_description": "...",
      "dialogue": "..."
    }
  ]
}`

const multiModeFormat = `{
  "viral_title": "...",
  "locations": [
    {
      "location_id": 1,
      "location_description": "Detailed description of location 1...",
      "scenes": [
        {
          "scene_id": 1,
          "character": "...",
          "camera_angle": "...",
          "action_description": "...",
          "dialogue": "..."
        }
      ]
    }
  ]
}`

// BuildPrompt renders the user prompt for one transformation request.
func BuildPrompt(req types.TransformRequest) string {
	style := styleFor(req.Language)
	language := req.Language
	if _, ok := languageStyles[language]; !ok {
		language = "pidgin"
	}
	mode := req.Mode
	if mode != types.ModeMulti {
		mode = types.ModeSingle
	}

	modeInstruction, format := singleModeInstruction, singleModeFormat
	if mode == types.ModeMulti {
		modeInstruction, format = multiModeInstruction, multiModeFormat
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Transform this Stoic Cole script into the %s format.\n\n", style.name)
	fmt.Fprintf(&b, "Target Style: %s\n", strings.ToUpper(language))
	fmt.Fprintf(&b, "Story Mode: %s\n\n", strings.ToUpper(string(mode)))
	fmt.Fprintf(&b, "Original Script:\n%s\n\n", strings.TrimSpace(req.Script))
	b.WriteString("Requirements:\n")
	b.WriteString(style.instruction + "\n")
	b.WriteString(modeInstruction + "\n")
	b.WriteString("5. Use Nigerian cultural references (Lagos, Lekki, etc.)\n")
	b.WriteString("6. Convert currency to Naira\n")
	b.WriteString("7. CRITICAL: Each scene = 10-15 words MAX (7-second dialogue)\n")
	b.WriteString("8. **Analyze the script's visual context** to create detailed setting description(s).\n")
	b.WriteString("9. **Describe specific character actions** for every scene.\n")
	b.WriteString("10. **MAINTAIN VISUAL CONTINUITY** within each location.\n\n")
	b.WriteString("Output Format: JSON ONLY.\n")
	b.WriteString(format + "\n\n")
	fmt.Fprintf(&b, "End the final scene with %q\n", style.endPhrase)
	return b.String()
}

// CombinedPrompt joins the system prompt and the request prompt for
// providers that take a single text part.
func CombinedPrompt(req types.TransformRequest) string {
	return SystemPrompt() + "\n\n" + BuildPrompt(req)
}
