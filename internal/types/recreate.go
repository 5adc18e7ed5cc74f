package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Video kinds produced by a story recreation.
const (
	VideoLong  = "long"
	VideoShort = "short"
)

type RecreateRequest struct {
	Transcript string
	Language   string
}

// RecreatedVideo is one of the two cuts of a recreated story. The long cut
// groups scenes by location, the short cut lists them flat.
type RecreatedVideo struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Tags        []string      `json:"tags"`
	POV         string        `json:"pov"`
	Locations   []RawLocation `json:"locations,omitempty"`
	Scenes      []RawScene    `json:"scenes,omitempty"`
}

// Empty reports whether the cut has no scene at all.
func (v RecreatedVideo) Empty() bool {
	if len(v.Scenes) > 0 {
		return false
	}
	for _, loc := range v.Locations {
		if len(loc.Scenes) > 0 {
			return false
		}
	}
	return true
}

func (v *RecreatedVideo) UnmarshalJSON(b []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("recreated video: %w", err)
	}
	*v = RecreatedVideo{
		Title:       rawString(m["title"]),
		Description: rawString(m["description"]),
		Tags:        rawStringList(m["tags"]),
		POV:         rawString(m["pov"]),
	}
	if raw, ok := m["locations"]; ok {
		v.Locations = decodeLocationList(raw)
	}
	if raw, ok := m["scenes"]; ok {
		v.Scenes = decodeSceneList(raw)
	}
	return nil
}

// Recreation is the oracle's retelling of a transcript as a long and a short
// video. Nothing in it is trusted.
type Recreation struct {
	Long  RecreatedVideo `json:"long_video"`
	Short RecreatedVideo `json:"short_video"`
	Raw   string         `json:"-"`
}

// Video returns the cut of the given kind.
func (r Recreation) Video(kind string) RecreatedVideo {
	if kind == VideoShort {
		return r.Short
	}
	return r.Long
}

// rawStringList accepts a JSON list or a comma separated string.
func rawStringList(v json.RawMessage) []string {
	if len(v) == 0 {
		return nil
	}
	var x any
	if err := json.Unmarshal(v, &x); err != nil {
		return nil
	}
	var items []any
	switch t := x.(type) {
	case []any:
		items = t
	case string:
		for _, p := range strings.Split(t, ",") {
			items = append(items, p)
		}
	default:
		return nil
	}
	var out []string
	for _, it := range items {
		if s := looseString(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}
