package assemble

import (
	"fmt"
	"strings"

	"github.com/forPelevin/naijavibe/internal/types"
)

// Voices are the narration specs prefixed to spoken scenes.
type Voices struct {
	Female string `yaml:"female" toml:"female"`
	Male   string `yaml:"male" toml:"male"`
}

func DefaultVoices() Voices {
	return Voices{
		Female: "Female voice, Nigerian accent, expressive and emotional.",
		Male:   "Male voice, deep Nigerian accent, calm and measured.",
	}
}

type BulkOptions struct {
	DoubleSpaced bool
	Condensed    bool
	Voices       Voices
}

const lessonPOV = "[Final close-up - Odogwu's perspective, steady, eye level from Chioma's position] Final close-up"

// BulkPrompts renders one line per scene for pasting into a generator queue,
// followed by the final lesson line.
func BulkPrompts(p types.Package, opts BulkOptions) string {
	voices := opts.Voices
	def := DefaultVoices()
	if voices.Female == "" {
		voices.Female = def.Female
	}
	if voices.Male == "" {
		voices.Male = def.Male
	}

	lines := make([]string, 0, len(p.Scenes)+1)
	for _, s := range p.Scenes {
		pov := oneLine(s.POV.CameraPerspective)
		if pov == "" {
			pov = "N/A"
		}
		motion := oneLine(s.MotionPrompt)
		sfx := strings.Join(s.SFX, " ")
		dialogue := strings.TrimSpace(s.Dialogue)

		var voice, prefix string
		if dialogue != "" {
			if isFemale(s.Character, s.SceneID) {
				voice, prefix = voices.Female, "She says: "
			} else {
				voice, prefix = voices.Male, "He says: "
			}
		}

		var line string
		if opts.Condensed {
			line = fmt.Sprintf("%s [%s] %s, %s%s, %s, Character action: %s, %s %s",
				voice, pov, s.ShotType, prefix, dialogue, oneLine(s.CondensedPrompt), oneLine(s.ActionDescription), motion, sfx)
		} else {
			line = fmt.Sprintf("%s [%s] %s, %s%s, %s, %s %s",
				voice, pov, s.ShotType, prefix, dialogue, oneLine(s.ImagePrompt), motion, sfx)
		}
		lines = append(lines, line)
	}

	if lesson := p.VideoMetadata.FinalLesson; lesson != "" {
		lines = append(lines, fmt.Sprintf("%s %s, He says: %s", voices.Male, lessonPOV, lesson))
	}

	sep := "\n"
	if opts.DoubleSpaced {
		sep = "\n\n"
	}
	return strings.Join(lines, sep)
}

var (
	femaleWords = []string{"woman", "female", "she", "lady", "girl"}
	maleWords   = []string{"man", "male", "he", "guy", "boy"}
)

// isFemale decides the voice from the character label, then whole-word
// keywords, then the scene position (1..6 belong to the antagonist side).
func isFemale(character string, sceneID int) bool {
	label := " " + strings.ToLower(character) + " "
	switch {
	case strings.Contains(label, "antagonist"), strings.Contains(label, "chioma"):
		return true
	case strings.Contains(label, "protagonist"), strings.Contains(label, "odogwu"):
		return false
	}
	if hasWord(label, femaleWords) {
		return true
	}
	if hasWord(label, maleWords) {
		return false
	}
	return sceneID >= 1 && sceneID <= 6
}

func hasWord(padded string, words []string) bool {
	for _, w := range words {
		if strings.Contains(padded, " "+w+" ") {
			return true
		}
	}
	return false
}

func oneLine(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}
