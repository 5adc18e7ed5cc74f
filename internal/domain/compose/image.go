package compose

import (
	"fmt"
	"strings"

	"github.com/forPelevin/naijavibe/internal/types"
)

// ImagePrompt renders the full still-image prompt, including each visible
// character's identity anchor and continuity look.
func ImagePrompt(s types.Scene, cc types.ContinuityContext, cfg types.RenderConfig) string {
	anim := Animation(cfg.Animation)

	action := ResolveAction(s)
	if strings.Contains(s.CameraAngle, "Wide") {
		action = fmt.Sprintf("%s, while %s", action, cc.Posture)
	}

	odogwu := fullDescription(Odogwu, types.RoleProtagonist, cc)
	chioma := fullDescription(Chioma, types.RoleAntagonist, cc)

	var who string
	switch s.Character {
	case types.RoleProtagonist:
		who = odogwu
	case types.RoleAntagonist:
		who = chioma
	default:
		who = odogwu + " and " + chioma
	}

	return fmt.Sprintf("%s. %s, %s. Background is a %s. %s, %s.",
		talkingContext(s.Character),
		who,
		action,
		cc.LocationFor(s),
		styleInstruction(anim, ColorGrading(cfg.ColorGrading), cc.VisualStyle),
		anim.AspectRatio,
	)
}

// CondensedPrompt drops all appearance text. Characters are expected to be
// pinned by the reference props instead.
func CondensedPrompt(s types.Scene, cc types.ContinuityContext, cfg types.RenderConfig) string {
	anim := Animation(cfg.Animation)
	return fmt.Sprintf("%s. Background is a %s. %s, %s.",
		talkingContext(s.Character),
		cc.LocationFor(s),
		styleInstruction(anim, ColorGrading(cfg.ColorGrading), cc.VisualStyle),
		anim.AspectRatio,
	)
}

func talkingContext(character string) string {
	switch character {
	case types.RoleProtagonist:
		return Odogwu.Name + " talking to " + Chioma.Name
	case types.RoleAntagonist:
		return Chioma.Name + " talking to " + Odogwu.Name
	default:
		return Odogwu.Name + " and " + Chioma.Name + " in conversation"
	}
}

// ResolveAction prefers the scene's own action and otherwise derives one from
// phase, character and position.
func ResolveAction(s types.Scene) string {
	if a := strings.TrimSpace(s.ActionDescription); a != "" {
		return a
	}
	return DefaultAction(s.Phase, s.Character, s.SceneID)
}

// DefaultAction is the staged action used when the oracle left the scene without one.
func DefaultAction(phase types.Phase, character string, sceneID int) string {
	switch phase {
	case types.PhaseHook:
		if character == types.RoleAntagonist {
			return "looking emotional or dramatic, using wild hand gestures to emphasize her point, standing with entitled expression"
		}
		return "standing calmly with arms crossed, neural expression, observing quietly"
	case types.PhaseBuild:
		if character == types.RoleAntagonist {
			return "gesturing passionately, defensive body language, maintaining strong eye contact"
		}
		return "listening calmly with hands in pockets, slight head tilt, composed expression, standing still"
	case types.PhasePivot:
		switch character {
		case types.RoleProtagonist:
			return "asking a question calmly, slight eyebrow raise, direct gaze, one hand gesturing reasonably"
		case types.RoleAntagonist:
			return "caught off guard, processing the question with confused expression, slightly defensive posture"
		default:
			return "engaged in tense dialogue, protagonist calm and analytical, antagonist reactive and emotional"
		}
	case types.PhaseDunk:
		if character == types.RoleProtagonist {
			if sceneID == 13 {
				return "delivering final point with calm authority, knowing smile, hands open in explaining gesture, standing confidently"
			}
			return "explaining logically with measured hand gestures, composed expression, making clear points while standing firm"
		}
		return "deflated posture, speechless expression, hand dropped to side, argument weakening"
	}
	return "standing naturally"
}
