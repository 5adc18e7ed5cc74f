package scenes

import (
	"fmt"
	"strings"

	"github.com/forPelevin/naijavibe/internal/domain/templates"
	"github.com/forPelevin/naijavibe/internal/types"
)

// MaxDialogueWords is where a line stops fitting a 7 second slot.
const MaxDialogueWords = 20

// Validate checks the single-location structure. Problems are reported, never
// returned as errors.
func Validate(scenes []types.Scene) types.Validation {
	issues := []string{}

	if len(scenes) != templates.SingleSceneCount {
		issues = append(issues, fmt.Sprintf("Expected %d scenes, got %d", templates.SingleSceneCount, len(scenes)))
	}

	got := make([]int, 0, len(scenes))
	for _, s := range scenes {
		got = append(got, s.SceneID)
	}
	want := make([]int, 0, templates.SingleSceneCount)
	for i := 1; i <= templates.SingleSceneCount; i++ {
		want = append(want, i)
	}
	if !equalInts(got, want) {
		issues = append(issues, fmt.Sprintf("Scene IDs not sequential. Expected %s, got %s", formatInts(want), formatInts(got)))
	}

	for _, s := range scenes {
		d := strings.TrimSpace(s.Dialogue)
		if d == "" {
			issues = append(issues, fmt.Sprintf("Scene %d has no dialogue", s.SceneID))
			continue
		}
		if n := len(strings.Fields(d)); n > MaxDialogueWords {
			issues = append(issues, fmt.Sprintf("Scene %d has %d words (should be 10-15 for 7 sec)", s.SceneID, n))
		}
	}

	return types.Validation{Valid: len(issues) == 0, Issues: issues}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
