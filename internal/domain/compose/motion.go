package compose

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/forPelevin/naijavibe/internal/types"
)

// Four camera moves cycled by scene position so one still per location reads
// as four different setups.
var cameraCycle = [4]string{
	"Very slow subtle push-in toward the left side of frame, focusing on the speaking character.",
	"Very slow subtle push-in toward the right side of frame, focusing on the reacting character.",
	"Locked-off wide static shot. No camera movement. Both characters fully visible.",
	"Slow subtle pan right across the frame, then settle. Cinematic drift.",
}

var characterMotions = map[int]map[string]string{
	1: {
		types.RoleAntagonist:  "Character talking animatedly, hand gestures, head movements, facial expressions changing, blinking frequently.",
		types.RoleProtagonist: "Character listening calmly, subtle blinking, minimal head movement, coffee steam rising from cup in foreground.",
	},
	2: {
		types.RoleProtagonist: "Character speaking calmly, lips syncing to dialogue, slight eyebrow raise, minimal hand gesture, confident gaze.",
		types.RoleAntagonist:  "Character reacting with surprise, defensive body language, blinking, slight head tilt.",
	},
	3: {
		types.RoleProtagonist: "Character delivering final point, calm confident expression, slight lean forward, knowing smile forming, steady eye contact.",
		types.RoleAntagonist:  "Character looking increasingly frustrated or speechless, looking away briefly, resigned expression.",
	},
}

// CameraMovement returns the camera move for a scene position.
func CameraMovement(sceneID int) string {
	i := (sceneID - 1) % len(cameraCycle)
	if i < 0 {
		i += len(cameraCycle)
	}
	return cameraCycle[i]
}

// MotionPrompt renders the image-to-video prompt. styleHint is any free text
// describing the camera feel; aesthetic selects the 2D or 3D base clause.
func MotionPrompt(s types.Scene, styleHint, aesthetic string) string {
	var charMotion string
	if a := strings.TrimSpace(s.ActionDescription); a != "" {
		charMotion = fmt.Sprintf("Character action: %s. Facial expressions matching dialogue emotion.", a)
	} else {
		charMotion = CharacterMotion(s.SceneID, s.Character)
	}

	return fmt.Sprintf("%s %s %s%s %s",
		charMotion,
		BackgroundMotion(s.ShotType),
		CameraMovement(s.SceneID),
		cameraStyleExtra(styleHint),
		baseMotion(aesthetic),
	)
}

// CharacterMotion returns the scripted motion for a character in a scene, or idle breathing.
func CharacterMotion(sceneID int, character string) string {
	if m, ok := characterMotions[sceneID][character]; ok {
		return m
	}
	return "Subtle blinking and breathing."
}

// BackgroundMotion picks ambient background movement by shot type.
func BackgroundMotion(shotType string) string {
	switch {
	case strings.Contains(shotType, "Close-up"):
		return "Background city lights flickering subtly through window, soft bokeh lights twinkling."
	case strings.Contains(shotType, "Wide"):
		return "City skyline visible with twinkling lights, subtle curtain movement from AC, ambient room lighting pulsing gently."
	default:
		return "Background windows showing Lagos night skyline with subtle light changes, ambient purple glow."
	}
}

func cameraStyleExtra(hint string) string {
	h := strings.ToLower(hint)
	switch {
	case h == "":
		return ""
	case strings.Contains(h, "handheld"):
		return " Handheld camera shake style."
	case strings.Contains(h, "steady"), strings.Contains(h, "smooth"):
		return " Ultra smooth sleek stabilization."
	case strings.Contains(h, "dynamic"):
		return " Dynamic active camera motion."
	case strings.Contains(h, "static"):
		return " Tripod static shot."
	}
	return ""
}

func baseMotion(aesthetic string) string {
	note := "Maintain 3D aesthetic"
	if strings.Contains(strings.ToUpper(aesthetic), "2D") {
		note = "Maintain 2D aesthetic"
	}
	return "Stay on one spot at all times. Subtle movements only. " + note + "."
}

// WithLipSync appends a mouth instruction depending on whether the scene speaks.
func WithLipSync(prompt string, hasDialogue bool) string {
	if hasDialogue {
		return prompt + " Lips syncing accurately to dialogue audio track."
	}
	return prompt + " Character silent, closed mouth."
}

// Guide derives clip parameters from a "start-ends" duration.
func Guide(duration string) types.MotionGuide {
	seconds := 10
	if _, end, ok := strings.Cut(duration, "-"); ok {
		if n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(end), "s")); err == nil {
			seconds = n
		}
	}
	intensity := "moderate"
	if seconds < 15 {
		intensity = "subtle"
	}
	return types.MotionGuide{
		TotalDuration:   fmt.Sprintf("%ds", seconds),
		MotionIntensity: intensity,
		RecommendedFPS:  24,
		LoopSeamless:    false,
		MotionType:      "organic",
	}
}

// Runway wraps a motion prompt in Runway Gen-3 settings.
func Runway(prompt string) types.RunwayFormat {
	return types.RunwayFormat{
		Prompt:         prompt,
		Duration:       10,
		MotionBucketID: 127,
		Style:          "2D Animation",
		AspectRatio:    "9:16",
	}
}

// Luma wraps a motion prompt for Luma Dream Machine.
func Luma(prompt string) types.LumaFormat {
	return types.LumaFormat{
		Prompt: prompt,
		Keyframes: map[string]string{
			"frame_0":   "Starting position",
			"frame_end": "Ending position with minimal change",
		},
		Loop:        false,
		AspectRatio: "9:16",
	}
}
