package compose

import "github.com/forPelevin/naijavibe/internal/types"

var (
	introSFX = []string{
		"Low-tempo slowed + reverb Afrobeats instrumental (Burna Boy style)",
		"Muffled city noise in background",
		"Soft lofi hip-hop beat starting",
	}
	pivotSFX = []string{
		"Record scratch sound effect",
		"Brief silence for dramatic pause (1-2s)",
		"Tension-building string note",
		"Subtle heartbeat sound emerging",
	}
	dunkSFX = []string{
		"Deep bass thud on key logic points",
		"Heartbeat intensifying",
		"Mic drop sound effect at end",
		"Cinematic boom/impact sound",
	}
	ambientSFX = []string{
		"Lagos city ambiance (distant traffic, city hum)",
		"Wind chime or subtle bell tones",
		"Coffee shop ambiance (very subtle)",
		"Light rain against window (optional for mood)",
	}
)

// SFX lists the primary cues for the scene position followed by the ambient bed.
func SFX(sceneID int) []string {
	var primary []string
	switch sceneID {
	case 1:
		primary = introSFX
	case 2:
		primary = pivotSFX
	default:
		primary = dunkSFX
	}
	out := make([]string, 0, len(primary)+len(ambientSFX))
	out = append(out, primary...)
	return append(out, ambientSFX...)
}

// SceneSFX is SFX for the scene position plus the cue the oracle wrote for
// the scene, if any.
func SceneSFX(s types.Scene) []string {
	out := SFX(s.SceneID)
	if s.SFX != "" {
		out = append(out, s.SFX)
	}
	return out
}

// AmbientSFX lists background loops shared by every scene.
func AmbientSFX() []string {
	return append([]string(nil), ambientSFX...)
}

// MusicTracks is the fixed three-part score.
func MusicTracks() types.MusicTracks {
	return types.MusicTracks{
		Intro: types.MusicTrack{
			Prompt:   "Slowed + reverb Afrobeats instrumental, lofi hip-hop vibe, purple aesthetic, 80 BPM, Burna Boy style, chill and moody",
			Duration: "10s",
			Fade:     "fade_in",
		},
		Pivot: types.MusicTrack{
			Prompt:   "Tension-building minimalist beat, slowed tempo, suspenseful strings, dramatic pause moment",
			Duration: "20s",
			Fade:     "crossfade",
		},
		Dunk: types.MusicTrack{
			Prompt:   "Epic bass drop, cinematic boom, triumphant undertone, Afrobeats percussion, powerful finish",
			Duration: "30s",
			Fade:     "fade_out",
		},
	}
}

var volumeLevels = map[int]types.VolumeLevels{
	1: {Music: 0.6, Dialogue: 1.0, SFX: 0.4, Ambient: 0.3},
	2: {Music: 0.3, Dialogue: 1.0, SFX: 0.7, Ambient: 0.2},
	3: {Music: 0.8, Dialogue: 1.0, SFX: 0.9, Ambient: 0.3},
}

var layerPriorities = map[int][]string{
	1: {"dialogue", "music", "ambient", "sfx"},
	2: {"dialogue", "sfx", "ambient", "music"},
	3: {"dialogue", "sfx", "music", "ambient"},
}

// Volume returns mix levels for a scene position, falling back to scene 1.
func Volume(sceneID int) types.VolumeLevels {
	if v, ok := volumeLevels[sceneID]; ok {
		return v
	}
	return volumeLevels[1]
}

// Layering returns a copy of the layer order for a scene position.
func Layering(sceneID int) []string {
	l, ok := layerPriorities[sceneID]
	if !ok {
		l = layerPriorities[1]
	}
	return append([]string(nil), l...)
}

var timingMarkers = []types.TimingMarker{
	{Cue: "intro_music_start", At: "0:00"},
	{Cue: "hook_dialogue", At: "0:02"},
	{Cue: "record_scratch", At: "0:10"},
	{Cue: "pivot_question", At: "0:12"},
	{Cue: "tension_build", At: "0:20"},
	{Cue: "first_bass_thud", At: "0:32"},
	{Cue: "second_bass_thud", At: "0:45"},
	{Cue: "mic_drop", At: "0:58"},
	{Cue: "outro_fade", At: "1:00"},
}

// Manifest collects the audio plan for the whole video.
func Manifest(scenes []types.Scene) types.SFXManifest {
	m := types.SFXManifest{
		MusicTracks:   MusicTracks(),
		AmbientLayer:  AmbientSFX(),
		SceneSFX:      make([]types.SceneSFX, 0, len(scenes)),
		TimingMarkers: append([]types.TimingMarker(nil), timingMarkers...),
	}
	for _, s := range scenes {
		m.SceneSFX = append(m.SceneSFX, types.SceneSFX{
			SceneID:  s.SceneID,
			SFX:      SceneSFX(s),
			Volume:   Volume(s.SceneID),
			Layering: Layering(s.SceneID),
		})
	}
	return m
}
