package compose

import "github.com/forPelevin/naijavibe/internal/types"

// AnimationStyle is a rendering preset for image prompts.
type AnimationStyle struct {
	Name        string
	BaseStyle   string
	AspectRatio string
}

const defaultAnimation = "3d_cgi"

var animationStyles = map[string]AnimationStyle{
	"2d_lofi": {
		Name:        "2D Lofi Anime",
		BaseStyle:   "2D lofi anime style, clean flat colors, minimalist shading",
		AspectRatio: "vertical 9:16",
	},
	"3d_cgi": {
		Name:        "3D CGI Pixar Style",
		BaseStyle:   "3D CGI animated film style, large expressive eyes, smooth shading",
		AspectRatio: "vertical 9:16",
	},
}

// Animation resolves an animation key, falling back to the 3D preset.
func Animation(key string) AnimationStyle {
	if s, ok := animationStyles[key]; ok {
		return s
	}
	return animationStyles[defaultAnimation]
}

var colorGradings = map[string]string{
	"default": "Balanced Naija Lofi - Purple/Blue grading",
	"luxury":  "Enhanced Gold - Warmer purple with gold accents",
	"premium": "Deep Teal - Sophisticated purple and teal palette",
}

// ColorGrading returns the grading text for key, or "" when unknown.
func ColorGrading(key string) string {
	return colorGradings[key]
}

// Character is the fixed identity anchor of a recurring character. It never
// varies between scenes; only the continuity look is layered on top.
type Character struct {
	Name        string
	DisplayName string
	Base        string
}

var (
	Odogwu = Character{
		Name:        "Odogwu",
		DisplayName: "Odogwu (Hero)",
		Base:        "Full image of a muscular Nigerian man, 30s, dark skin, sharp goatee",
	}
	Chioma = Character{
		Name:        "Chioma",
		DisplayName: "Chioma (Antagonist)",
		Base:        "Full image of a tall, curvy Nigerian woman, 30s, medium dark skin, perfect contour and bold red lipstick",
	}
)

// styleInstruction is the trailing style clause shared by image prompts.
func styleInstruction(anim AnimationStyle, grading, visualStyle string) string {
	s := anim.BaseStyle
	if grading != "" {
		s += ", " + grading
	}
	if visualStyle != "" {
		s = "Visual Style: " + visualStyle + ". " + s
	}
	return s
}

func fullDescription(ch Character, role string, cc types.ContinuityContext) string {
	return ch.Base + ", " + cc.LookByRole[role]
}
