package compose

import (
	"fmt"

	"github.com/forPelevin/naijavibe/internal/types"
)

// CameraPerspective describes whose eyes the camera looks through.
func CameraPerspective(character, cameraAngle string) string {
	var focal, level string
	switch character {
	case types.RoleProtagonist:
		focal, level = Odogwu.Name, "steady, eye level from "+Chioma.Name+"'s position"
	case types.RoleAntagonist:
		focal, level = Chioma.Name, "steady, eye level from "+Odogwu.Name+"'s position"
	default:
		focal, level = "Both characters", "neutral observer, slightly elevated"
	}
	return fmt.Sprintf("%s - %s's perspective, %s", cameraAngle, focal, level)
}

var narrativeFocus = map[types.Phase]map[string]string{
	types.PhaseHook: {
		types.RoleProtagonist: "Observing antagonist's demands calmly",
		types.RoleAntagonist:  "Making entitled demands/establishing conflict",
		types.RoleBoth:        "Initial confrontation - setting up the argument",
	},
	types.PhaseBuild: {
		types.RoleProtagonist: "Listening and processing the argument",
		types.RoleAntagonist:  "Defending position with passion",
		types.RoleBoth:        "Argument intensifying - both sides presenting",
	},
	types.PhasePivot: {
		types.RoleProtagonist: "Asking the critical question - shift begins",
		types.RoleAntagonist:  "Reacting to unexpected question",
		types.RoleBoth:        "Turning point - logic meets emotion",
	},
	types.PhaseDunk: {
		types.RoleProtagonist: "Delivering logical breakdown/final point",
		types.RoleAntagonist:  "Realizing the logical trap",
		types.RoleBoth:        "Resolution - protagonist's logic wins",
	},
}

// NarrativeFocus is what the viewer should read from the character in a phase.
func NarrativeFocus(character string, phase types.Phase) string {
	if f, ok := narrativeFocus[phase][character]; ok {
		return f
	}
	return fmt.Sprintf("%s in %s phase", CharacterName(character), phase)
}

// EditingNotes are editor hints per phase and character.
func EditingNotes(phase types.Phase, character string, sceneID int) string {
	switch phase {
	case types.PhaseHook:
		if character == types.RoleAntagonist {
			return "Emphasize entitled expression, wild gestures. Build initial conflict. Consider light VFX on key words."
		}
		return "Show calm composure contrast. Subtle reactions only. Establish protagonist's stoic nature."
	case types.PhaseBuild:
		if character == types.RoleAntagonist {
			return "Increase intensity. Passionate gestures. Show defensive body language building."
		}
		return "Maintain calm demeanor. Slight eyebrow raises or head tilts. Contrast against antagonist's energy."
	case types.PhasePivot:
		switch character {
		case types.RoleProtagonist:
			return "KEY MOMENT: Emphasize the question. Slight pause before delivery. This is the trap being set."
		case types.RoleAntagonist:
			return "Show confusion/surprise. Defensive posture shift. The trap is sprung."
		default:
			return "Tension peak. Both characters engaged. Show the shift in power dynamic."
		}
	case types.PhaseDunk:
		if character == types.RoleProtagonist {
			if sceneID >= 12 {
				return "PAYOFF: Strong confident delivery. Knowing smile. Final mic drop moment. Consider SFX emphasis."
			}
			return "Logical explanation. Clear, measured points. Show intelligence and confidence building."
		}
		return "Show defeat. Deflated posture. Speechless reaction. Argument crumbling."
	}
	return fmt.Sprintf("Standard %s phase execution", phase)
}

// CharacterName maps a role to its display name. Unknown roles pass through.
func CharacterName(character string) string {
	switch character {
	case types.RoleProtagonist:
		return Odogwu.Name
	case types.RoleAntagonist:
		return Chioma.Name
	case types.RoleBoth:
		return "Both Characters"
	}
	return character
}

var emotionalTones = map[types.Phase]map[string]string{
	types.PhaseHook: {
		types.RoleProtagonist: "Calm, observant",
		types.RoleAntagonist:  "Entitled, demanding",
		types.RoleBoth:        "Tense confrontation",
	},
	types.PhaseBuild: {
		types.RoleProtagonist: "Composed, analytical",
		types.RoleAntagonist:  "Passionate, defensive",
		types.RoleBoth:        "Rising conflict",
	},
	types.PhasePivot: {
		types.RoleProtagonist: "Strategic, questioning",
		types.RoleAntagonist:  "Confused, caught off-guard",
		types.RoleBoth:        "Shifting dynamics",
	},
	types.PhaseDunk: {
		types.RoleProtagonist: "Confident, logical",
		types.RoleAntagonist:  "Deflated, speechless",
		types.RoleBoth:        "Resolution, victory",
	},
}

// EmotionalTone defaults to "Neutral".
func EmotionalTone(phase types.Phase, character string) string {
	if t, ok := emotionalTones[phase][character]; ok {
		return t
	}
	return "Neutral"
}

var phasePurposes = map[types.Phase]string{
	types.PhaseHook:  "Establish conflict and grab attention",
	types.PhaseBuild: "Develop argument and raise tension",
	types.PhasePivot: "Turn the tables with logic",
	types.PhaseDunk:  "Deliver the logical knockout",
}

// PhasePurpose states the story job of a phase.
func PhasePurpose(phase types.Phase) string {
	if p, ok := phasePurposes[phase]; ok {
		return p
	}
	return "Story progression"
}

// POVFor builds the perspective block and scene metadata for one scene.
func POVFor(s types.Scene) (types.POV, types.SceneMetadata) {
	pov := types.POV{
		CameraPerspective: CameraPerspective(s.Character, s.CameraAngle),
		NarrativeFocus:    NarrativeFocus(s.Character, s.Phase),
		EditingNotes:      EditingNotes(s.Phase, s.Character, s.SceneID),
	}
	meta := types.SceneMetadata{
		FocalCharacter:   CharacterName(s.Character),
		EmotionalTone:    EmotionalTone(s.Phase, s.Character),
		ScenePurpose:     fmt.Sprintf("%s - %s", s.Phase, PhasePurpose(s.Phase)),
		TimestampSeconds: (s.SceneID - 1) * types.SceneSeconds,
		DurationSeconds:  types.SceneSeconds,
	}
	return pov, meta
}
