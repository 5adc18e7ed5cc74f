package scenes

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forPelevin/naijavibe/internal/types"
)

func TestNormalize_FillsFromTemplates(t *testing.T) {
	raw := make([]types.RawScene, 13)
	raw[0] = types.RawScene{Character: types.RoleAntagonist, Dialogue: "Payment deadline dey reach"}

	got := Normalize(raw, types.ModeSingle)
	require.Len(t, got, 13)

	s := got[0]
	assert.Equal(t, 1, s.SceneID)
	assert.Equal(t, types.PhaseHook, s.Phase)
	assert.Equal(t, "Close-up", s.CameraAngle)
	assert.Equal(t, "Close-up (Chioma)", s.ShotType)
	assert.Equal(t, "Scene 1", s.Description)
	assert.Equal(t, "", s.ActionDescription)
	assert.Equal(t, "0-7s", s.Duration)

	assert.Equal(t, types.RoleBoth, got[7].Character)
	assert.Equal(t, "Final Close-up (Odogwu)", got[12].ShotType)
}

func TestNormalize_KeepsSuppliedFields(t *testing.T) {
	raw := []types.RawScene{{
		SceneID:           types.IntPtr(4),
		CameraAngle:       "Medium Shot",
		Phase:             "Build",
		Character:         "protagonist",
		ActionDescription: "sipping coffee",
	}}
	got := Normalize(raw, types.ModeSingle)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].SceneID)
	assert.Equal(t, "Medium Shot", got[0].CameraAngle)
	assert.Equal(t, "Over-shoulder (Chioma)", got[0].ShotType)
	assert.Equal(t, types.RoleProtagonist, got[0].Character)
	assert.Equal(t, "sipping coffee", got[0].ActionDescription)
}

func TestNormalize_DurationAlwaysRecomputed(t *testing.T) {
	raw := make([]types.RawScene, 5)
	raw[2].Duration = "99-999s"

	got := Normalize(raw, types.ModeSingle)
	for i, s := range got {
		assert.Equal(t, fmt.Sprintf("%d-%ds", i*7, (i+1)*7), s.Duration)
	}
	assert.Equal(t, "14-21s", got[2].Duration)
}

func TestNormalize_NonPositiveIDFallsBack(t *testing.T) {
	raw := []types.RawScene{
		{SceneID: types.IntPtr(0), Dialogue: "Na me first"},
		{SceneID: types.IntPtr(-4), Dialogue: "Na me second"},
		{SceneID: types.IntPtr(3), Dialogue: "Na me third"},
	}
	got := Normalize(raw, types.ModeMulti)
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].SceneID)
	assert.Equal(t, 2, got[1].SceneID)
	assert.Equal(t, 3, got[2].SceneID)
	assert.Equal(t, types.PhaseHook, got[0].Phase)
	assert.Equal(t, "Scene 2", got[1].Description)
}

func TestNormalize_KeepsOracleSFX(t *testing.T) {
	got := Normalize([]types.RawScene{{SFX: "  Car door slam "}, {}}, types.ModeMulti)
	assert.Equal(t, "Car door slam", got[0].SFX)
	assert.Empty(t, got[1].SFX)
}

func TestNormalize_BlankFieldsFallBack(t *testing.T) {
	raw := []types.RawScene{{Character: "   ", Phase: ""}}
	got := Normalize(raw, types.ModeSingle)
	assert.Equal(t, types.RoleAntagonist, got[0].Character)
	assert.Equal(t, types.PhaseHook, got[0].Phase)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, Normalize(nil, types.ModeSingle))
}

func TestNormalize_MultiLocationOpenerAndCloser(t *testing.T) {
	locs := []types.RawLocation{
		{LocationID: 1, LocationDescription: "Lekki penthouse", Scenes: make([]types.RawScene, 3)},
		{LocationID: 2, LocationDescription: "Ikeja market", Scenes: make([]types.RawScene, 4)},
	}
	got := Normalize(Flatten(locs), types.ModeMulti)
	require.Len(t, got, 7)

	assert.Equal(t, types.PhaseHook, got[0].Phase)
	assert.Equal(t, types.RoleAntagonist, got[0].Character)
	assert.Equal(t, "Close-up", got[0].CameraAngle)

	last := got[6]
	assert.Equal(t, 7, last.SceneID)
	assert.Equal(t, types.PhaseDunk, last.Phase)
	assert.Equal(t, types.RoleProtagonist, last.Character)
	assert.Equal(t, "Close-up", last.CameraAngle)
	assert.Equal(t, 2, last.LocationID)
	assert.Equal(t, "Ikeja market", last.LocationContext)
	assert.Equal(t, "Lekki penthouse", got[2].LocationContext)
}

func TestFlatten_MissingLocationIDUsesPosition(t *testing.T) {
	locs := []types.RawLocation{
		{Scenes: []types.RawScene{{Dialogue: "a"}}},
		{Scenes: []types.RawScene{{Dialogue: "b", LocationDescription: "own"}}},
	}
	got := Flatten(locs)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].LocationID)
	assert.Equal(t, 2, got[1].LocationID)
	assert.Equal(t, "own", got[1].LocationDescription)
}

func TestValidate_WrongCountIsReportedNotFatal(t *testing.T) {
	raw := make([]types.RawScene, 10)
	for i := range raw {
		raw[i].Dialogue = "Na so e be"
	}
	scenes := Normalize(raw, types.ModeSingle)
	require.Len(t, scenes, 10)

	v := Validate(scenes)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Issues, "Expected 13 scenes, got 10")
}

func TestValidate(t *testing.T) {
	good := func() []types.Scene {
		raw := make([]types.RawScene, 13)
		for i := range raw {
			raw[i].Dialogue = "You wan make I pay all the bills abi"
		}
		return Normalize(raw, types.ModeSingle)
	}

	tests := []struct {
		name      string
		mutate    func([]types.Scene) []types.Scene
		wantValid bool
		wantIssue string
	}{
		{name: "valid", mutate: func(s []types.Scene) []types.Scene { return s }, wantValid: true},
		{
			name:      "empty dialogue",
			mutate:    func(s []types.Scene) []types.Scene { s[4].Dialogue = "  "; return s },
			wantIssue: "Scene 5 has no dialogue",
		},
		{
			name: "long dialogue",
			mutate: func(s []types.Scene) []types.Scene {
				s[2].Dialogue = strings.Repeat("word ", 21)
				return s
			},
			wantIssue: "Scene 3 has 21 words (should be 10-15 for 7 sec)",
		},
		{
			name:      "ids out of order",
			mutate:    func(s []types.Scene) []types.Scene { s[0].SceneID, s[1].SceneID = 2, 1; return s },
			wantIssue: "Scene IDs not sequential. Expected [1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13], got [2, 1, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Validate(tt.mutate(good()))
			assert.Equal(t, tt.wantValid, v.Valid)
			if tt.wantIssue != "" {
				assert.Contains(t, v.Issues, tt.wantIssue)
			} else {
				assert.Empty(t, v.Issues)
			}
		})
	}
}

func TestEstimateSpeechSeconds(t *testing.T) {
	assert.Equal(t, 0.0, EstimateSpeechSeconds(""))
	assert.Equal(t, 2.0, EstimateSpeechSeconds("one two three four five"))
	assert.Equal(t, 2.8, EstimateSpeechSeconds("a b c d e f g"))
}
