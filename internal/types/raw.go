package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RawScene is one scene as the oracle produced it. Every field is optional;
// empty strings and a nil SceneID mean "not supplied".
type RawScene struct {
	SceneID             *int   `json:"scene_id,omitempty"`
	ShotType            string `json:"shot_type,omitempty"`
	CameraAngle         string `json:"camera_angle,omitempty"`
	Phase               string `json:"phase,omitempty"`
	Character           string `json:"character,omitempty"`
	Description         string `json:"description,omitempty"`
	Dialogue            string `json:"dialogue,omitempty"`
	ActionDescription   string `json:"action_description,omitempty"`
	Duration            string `json:"duration,omitempty"`
	LocationID          int    `json:"location_id,omitempty"`
	LocationDescription string `json:"location_description,omitempty"`
	SFX                 string `json:"sfx,omitempty"`
}

// UnmarshalJSON accepts whatever shape the model emitted: numbers as strings,
// strings as numbers, lists of lines, nulls. It only fails on invalid JSON or
// a non-object value.
func (r *RawScene) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("raw scene: %w", err)
	}
	*r = RawScene{}
	if v, ok := m["scene_id"]; ok {
		if id, ok := looseInt(v); ok {
			r.SceneID = &id
		}
	}
	r.ShotType = looseString(m["shot_type"])
	r.CameraAngle = looseString(m["camera_angle"])
	r.Phase = looseString(m["phase"])
	r.Character = looseString(m["character"])
	r.Description = looseString(m["description"])
	r.Dialogue = looseString(m["dialogue"])
	r.ActionDescription = looseString(m["action_description"])
	r.Duration = looseString(m["duration"])
	r.LocationDescription = looseString(m["location_description"])
	r.SFX = looseString(m["sfx"])
	if id, ok := looseInt(m["location_id"]); ok {
		r.LocationID = id
	}
	return nil
}

func IntPtr(v int) *int { return &v }

type RawLocation struct {
	LocationID          int        `json:"location_id"`
	LocationDescription string     `json:"location_description"`
	Scenes              []RawScene `json:"scenes"`
}

func (l *RawLocation) UnmarshalJSON(b []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("raw location: %w", err)
	}
	*l = RawLocation{}
	if v, ok := m["location_id"]; ok {
		var x any
		if err := json.Unmarshal(v, &x); err == nil {
			if id, ok := looseInt(x); ok {
				l.LocationID = id
			}
		}
	}
	if v, ok := m["location_description"]; ok {
		var x any
		if err := json.Unmarshal(v, &x); err == nil {
			l.LocationDescription = looseString(x)
		}
	}
	if v, ok := m["scenes"]; ok {
		l.Scenes = decodeSceneList(v)
	}
	return nil
}

func (t *Transformation) UnmarshalJSON(b []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("transformation: %w", err)
	}
	*t = Transformation{}
	t.ViralTitle = rawString(m["viral_title"])
	t.Setting = rawString(m["setting_description"])
	if v, ok := m["scenes"]; ok {
		t.Scenes = decodeSceneList(v)
	}
	if v, ok := m["locations"]; ok {
		t.Locations = decodeLocationList(v)
	}
	return nil
}

func decodeLocationList(v json.RawMessage) []RawLocation {
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		return nil
	}
	var out []RawLocation
	for _, it := range items {
		var loc RawLocation
		if err := json.Unmarshal(it, &loc); err != nil {
			continue
		}
		out = append(out, loc)
	}
	return out
}

// decodeSceneList drops entries that are not objects instead of failing the list.
func decodeSceneList(v json.RawMessage) []RawScene {
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		return nil
	}
	out := make([]RawScene, 0, len(items))
	for _, it := range items {
		var s RawScene
		if err := json.Unmarshal(it, &s); err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

func rawString(v json.RawMessage) string {
	if len(v) == 0 {
		return ""
	}
	var x any
	if err := json.Unmarshal(v, &x); err != nil {
		return ""
	}
	return looseString(x)
}

func looseString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case []any:
		parts := make([]string, 0, len(x))
		for _, it := range x {
			if s := looseString(it); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}

func looseInt(v any) (int, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
			return 0, false
		}
		return int(x), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
