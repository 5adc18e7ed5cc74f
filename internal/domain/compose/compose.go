package compose

import (
	"strings"

	"github.com/forPelevin/naijavibe/internal/domain/scenes"
	"github.com/forPelevin/naijavibe/internal/domain/templates"
	"github.com/forPelevin/naijavibe/internal/types"
)

// Scene composes every artifact for one normalized scene. The result depends
// only on its arguments.
func Scene(s types.Scene, cc types.ContinuityContext, cfg types.RenderConfig) types.SceneBundle {
	motion := MotionPrompt(s, cc.VisualStyle, cfg.Aesthetic)
	pov, meta := POVFor(s)

	return types.SceneBundle{
		SceneID:                s.SceneID,
		ShotType:               s.ShotType,
		CameraAngle:            s.CameraAngle,
		Phase:                  s.Phase,
		Character:              s.Character,
		Beat:                   templates.Beat(s.SceneID),
		Dialogue:               s.Dialogue,
		ActionDescription:      ResolveAction(s),
		Duration:               s.Duration,
		LocationID:             s.LocationID,
		EstimatedSpeechSeconds: scenes.EstimateSpeechSeconds(s.Dialogue),
		ImagePrompt:            ImagePrompt(s, cc, cfg),
		CondensedPrompt:        CondensedPrompt(s, cc, cfg),
		MotionPrompt:           motion,
		Motion: types.MotionSpec{
			LipSyncPrompt: WithLipSync(motion, strings.TrimSpace(s.Dialogue) != ""),
			Guide:         Guide(s.Duration),
			Runway:        Runway(motion),
			Luma:          Luma(motion),
		},
		SFX:      SceneSFX(s),
		POV:      pov,
		Metadata: meta,
	}
}

// All composes scenes in order.
func All(ss []types.Scene, cc types.ContinuityContext, cfg types.RenderConfig) []types.SceneBundle {
	out := make([]types.SceneBundle, 0, len(ss))
	for _, s := range ss {
		out = append(out, Scene(s, cc, cfg))
	}
	return out
}
