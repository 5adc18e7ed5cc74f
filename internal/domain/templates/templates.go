package templates

import (
	"github.com/forPelevin/naijavibe/internal/types"
)

// Template is the framing, phase and speaking role assigned to a scene position.
type Template struct {
	ShotType    string
	CameraAngle string
	Phase       types.Phase
	Character   string
}

// SingleSceneCount is the size of the fixed single-location structure.
const SingleSceneCount = 13

var single = [SingleSceneCount]Template{
	{"Close-up (Chioma)", "Close-up", types.PhaseHook, types.RoleAntagonist},
	{"Medium shot (Chioma)", "Medium", types.PhaseHook, types.RoleAntagonist},
	{"Wide shot (Chioma)", "Wide", types.PhaseHook, types.RoleAntagonist},
	{"Over-shoulder (Chioma)", "Over-shoulder", types.PhaseBuild, types.RoleAntagonist},
	{"Close-up (Chioma)", "Close-up", types.PhaseBuild, types.RoleAntagonist},
	{"Medium shot (Odogwu)", "Medium", types.PhaseBuild, types.RoleProtagonist},
	{"Close-up (Odogwu)", "Close-up", types.PhasePivot, types.RoleProtagonist},
	{"Two-shot", "Two-shot", types.PhasePivot, types.RoleBoth},
	{"Medium shot (Chioma)", "Medium", types.PhasePivot, types.RoleAntagonist},
	{"Close-up (Odogwu)", "Close-up", types.PhaseDunk, types.RoleProtagonist},
	{"Medium shot (Odogwu)", "Medium", types.PhaseDunk, types.RoleProtagonist},
	{"Wide shot (Odogwu & Chioma)", "Wide", types.PhaseDunk, types.RoleProtagonist},
	{"Final Close-up (Odogwu)", "Close-up", types.PhaseDunk, types.RoleProtagonist},
}

var (
	phaseOrder    = [4]types.Phase{types.PhaseHook, types.PhaseBuild, types.PhasePivot, types.PhaseDunk}
	angleRotation = [4]string{"Medium", "Wide", "Over-shoulder", "Close-up"}
)

// Lookup returns the template for sceneID. Single mode uses the fixed table for
// ids 1..13; every other case goes through the dynamic rule.
func Lookup(sceneID int, mode types.StoryMode, total int) Template {
	if mode == types.ModeSingle && sceneID >= 1 && sceneID <= SingleSceneCount {
		return single[sceneID-1]
	}
	return Dynamic(sceneID, total)
}

// Dynamic derives a template from the scene position within total scenes.
// The opener and the closer are fixed; the rest rotate camera angles and fall
// into four contiguous phase bands of ceil(total/4) scenes.
func Dynamic(sceneID, total int) Template {
	if total < 1 {
		total = 1
	}
	if sceneID == 1 {
		return Template{ShotType: "Close-up", CameraAngle: "Close-up", Phase: types.PhaseHook, Character: types.RoleAntagonist}
	}
	if sceneID == total {
		return Template{ShotType: "Final Close-up", CameraAngle: "Close-up", Phase: types.PhaseDunk, Character: types.RoleProtagonist}
	}

	pos := sceneID - 1
	if pos < 0 {
		pos = 0
	}
	angle := angleRotation[pos%len(angleRotation)]

	band := (total + 3) / 4
	phaseIdx := pos / band
	if phaseIdx > len(phaseOrder)-1 {
		phaseIdx = len(phaseOrder) - 1
	}

	character := types.RoleAntagonist
	if 2*sceneID > total {
		character = types.RoleProtagonist
	}

	return Template{
		ShotType:    angle + " shot",
		CameraAngle: angle,
		Phase:       phaseOrder[phaseIdx],
		Character:   character,
	}
}

var beats = map[int]string{
	1:  "Hook - Opening trigger",
	2:  "Hook - Emotional escalation",
	3:  "Hook - Bold demand",
	4:  "Build - Argument continues",
	5:  "Build - Emotional peak",
	6:  "Build - Calm observation",
	7:  "Pivot - First trap question",
	8:  "Pivot - Tension builds",
	9:  "Pivot - Defensive reaction",
	10: "Dunk - Logic begins",
	11: "Dunk - Nigerian context",
	12: "Dunk - Conclusion",
	13: "Dunk - Mic drop",
}

// Beat names the narrative beat of a single-location scene position.
func Beat(sceneID int) string {
	if b, ok := beats[sceneID]; ok {
		return b
	}
	return "Unknown"
}

// Phases lists the narrative phases in order.
func Phases() []types.Phase {
	return phaseOrder[:]
}
