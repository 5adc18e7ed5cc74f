package scenes

import (
	"fmt"
	"math"
	"strings"

	"github.com/forPelevin/naijavibe/internal/domain/templates"
	"github.com/forPelevin/naijavibe/internal/types"
)

// Normalize turns untrusted oracle scenes into canonical scenes, preserving
// order. It never fails: anything missing falls back to the template for the
// scene position, and a scene id below 1 is replaced by the position.
func Normalize(raw []types.RawScene, mode types.StoryMode) []types.Scene {
	total := len(raw)
	out := make([]types.Scene, 0, total)
	for i, r := range raw {
		id := i + 1
		if r.SceneID != nil && *r.SceneID > 0 {
			id = *r.SceneID
		}
		tpl := templates.Lookup(id, mode, total)

		desc := r.Description
		if desc == "" {
			desc = fmt.Sprintf("Scene %d", id)
		}

		out = append(out, types.Scene{
			SceneID:           id,
			ShotType:          orDefault(r.ShotType, tpl.ShotType),
			CameraAngle:       orDefault(r.CameraAngle, tpl.CameraAngle),
			Phase:             types.Phase(orDefault(r.Phase, string(tpl.Phase))),
			Character:         orDefault(r.Character, tpl.Character),
			Description:       desc,
			Dialogue:          r.Dialogue,
			ActionDescription: r.ActionDescription,
			LocationID:        r.LocationID,
			LocationContext:   r.LocationDescription,
			SFX:               strings.TrimSpace(r.SFX),
			Duration:          SlotDuration(i),
		})
	}
	return out
}

// SlotDuration is the fixed 7 second slot of the scene at zero-based position i.
// Upstream durations are ignored.
func SlotDuration(i int) string {
	return fmt.Sprintf("%d-%ds", i*types.SceneSeconds, (i+1)*types.SceneSeconds)
}

// Flatten lays out multi-location scenes as one list. Each scene inherits the
// id and description of the location it was listed under.
func Flatten(locs []types.RawLocation) []types.RawScene {
	var out []types.RawScene
	for i, loc := range locs {
		locID := loc.LocationID
		if locID <= 0 {
			locID = i + 1
		}
		for _, s := range loc.Scenes {
			s.LocationID = locID
			if loc.LocationDescription != "" {
				s.LocationDescription = loc.LocationDescription
			}
			out = append(out, s)
		}
	}
	return out
}

// EstimateSpeechSeconds assumes 2.5 spoken words per second, rounded to 0.1s.
func EstimateSpeechSeconds(dialogue string) float64 {
	words := len(strings.Fields(dialogue))
	return math.Round(float64(words)/2.5*10) / 10
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
