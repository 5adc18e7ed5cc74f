package compose

import (
	"fmt"
	"sort"

	"github.com/forPelevin/naijavibe/internal/types"
)

// SceneSetup renders the establishing wide shot with both characters.
func SceneSetup(cc types.ContinuityContext, cfg types.RenderConfig) string {
	anim := Animation(cfg.Animation)

	focal := ""
	if cc.Prop != "" {
		focal = fmt.Sprintf("The focal point features %s. ", cc.Prop)
	}

	return fmt.Sprintf(
		"Scene Setup - Wide shot: %s and %s, %s in a %s. Both characters are clearly visible in the frame, positioned naturally facing each other. %sThe composition shows the complete scene where %s and %s's conversation will take place. %s, %s.",
		fullDescription(Odogwu, types.RoleProtagonist, cc),
		fullDescription(Chioma, types.RoleAntagonist, cc),
		cc.Posture,
		cc.Location,
		focal,
		Odogwu.Name,
		Chioma.Name,
		styleInstruction(anim, "", cc.VisualStyle),
		anim.AspectRatio,
	)
}

// Props renders reference prompts: one per character and one per setting.
// Multi-location requests get a setting_loc_<id> entry per location.
func Props(cc types.ContinuityContext, cfg types.RenderConfig) map[string]string {
	anim := Animation(cfg.Animation)
	style := styleInstruction(anim, "", cc.VisualStyle)

	ref := func(ch Character, role string) string {
		return fmt.Sprintf("Character Reference Profile: %s. Standing against a plain background for reference. %s, %s.",
			fullDescription(ch, role, cc), style, anim.AspectRatio)
	}

	props := map[string]string{
		"hero":       ref(Odogwu, types.RoleProtagonist),
		"antagonist": ref(Chioma, types.RoleAntagonist),
	}

	if len(cc.Locations) == 0 {
		props["setting"] = fmt.Sprintf("Environment Reference: Full shot of the %s with no characters. Show lighting, architectural details, and atmosphere. %s, %s.",
			cc.Location, style, anim.AspectRatio)
		return props
	}

	ids := make([]int, 0, len(cc.Locations))
	for id := range cc.Locations {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		props[fmt.Sprintf("setting_loc_%d", id)] = fmt.Sprintf(
			"Environment Reference (Location %d): Full shot of the %s with no characters. Show lighting, architectural details, and atmosphere. %s, %s.",
			id, cc.Locations[id], style, anim.AspectRatio)
	}
	return props
}
