package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/forPelevin/naijavibe/internal/types"
)

var ErrNoScenes = errors.New("script: response contains no scenes")

// LegacySetting is the setting assumed for responses in the old SCENE format.
const LegacySetting = "Lagos rooftop lounge with modern lighting"

const legacyAction = "Standing naturally"

// Parse decodes an oracle response. JSON is tried first; when no usable JSON
// object is found the old "SCENE N" plain-text format is parsed instead.
func Parse(text string) (types.Transformation, error) {
	if obj, err := ExtractJSONObject(text); err == nil {
		var t types.Transformation
		if err := json.Unmarshal([]byte(obj), &t); err == nil && (len(t.Scenes) > 0 || len(t.Locations) > 0) {
			t.Raw = text
			return t, nil
		}
	}

	t := types.Transformation{
		Scenes:  parseLegacy(text),
		Setting: LegacySetting,
		Raw:     text,
	}
	if len(t.Scenes) == 0 {
		return types.Transformation{Raw: text}, ErrNoScenes
	}
	return t, nil
}

// ExtractJSONObject strips code fences and returns the span from the first
// '{' to the last '}'.
func ExtractJSONObject(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", errors.New("script: empty content")
	}

	if strings.HasPrefix(t, "```") {
		if i := strings.Index(t, "\n"); i >= 0 {
			t = t[i+1:]
		}
		if j := strings.LastIndex(t, "```"); j >= 0 {
			t = t[:j]
		}
		t = strings.TrimSpace(t)
	}

	start := strings.Index(t, "{")
	end := strings.LastIndex(t, "}")
	if start >= 0 && end > start {
		return t[start : end+1], nil
	}
	return "", fmt.Errorf("script: could not locate JSON object in: %q", Truncate(t, 200))
}

// parseLegacy reads blocks introduced by "SCENE <n>" lines. Lines starting
// with '[', '(' or '{' are stage directions and skipped. Template fields are
// left empty so normalization fills them.
func parseLegacy(text string) []types.RawScene {
	var (
		out      []types.RawScene
		current  int
		dialogue []string
	)
	flush := func(final bool) {
		if current == 0 {
			return
		}
		d := strings.TrimSpace(strings.Join(dialogue, "\n"))
		if final && d == "" {
			return
		}
		s := types.RawScene{SceneID: types.IntPtr(current), Dialogue: d}
		if !final {
			s.ActionDescription = legacyAction
		}
		out = append(out, s)
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToUpper(line), "SCENE ") {
			flush(false)
			dialogue = dialogue[:0]
			current = legacySceneNumber(line, len(out)+1)
			continue
		}
		if line == "" || current == 0 {
			continue
		}
		if strings.HasPrefix(line, "[") || strings.HasPrefix(line, "(") || strings.HasPrefix(line, "{") {
			continue
		}
		dialogue = append(dialogue, line)
	}
	flush(true)
	return out
}

// legacySceneNumber reads the digits of the token after "SCENE", falling back
// to the next position.
func legacySceneNumber(line string, next int) int {
	fields := strings.Fields(line[len("SCENE "):])
	if len(fields) == 0 {
		return next
	}
	var digits strings.Builder
	for _, r := range fields[0] {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil || n <= 0 {
		return next
	}
	return n
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
