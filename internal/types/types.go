package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type StoryMode string

const (
	ModeSingle StoryMode = "single"
	ModeMulti  StoryMode = "multi"
)

type Phase string

const (
	PhaseHook  Phase = "Hook"
	PhaseBuild Phase = "Build"
	PhasePivot Phase = "Pivot"
	PhaseDunk  Phase = "Dunk"
)

// Character roles. Scene.Character may also hold a free-form name.
const (
	RoleProtagonist = "protagonist"
	RoleAntagonist  = "antagonist"
	RoleBoth        = "both"
)

// SceneSeconds is the fixed length of every scene slot.
const SceneSeconds = 7

type Scene struct {
	SceneID           int    `json:"scene_id"`
	ShotType          string `json:"shot_type"`
	CameraAngle       string `json:"camera_angle"`
	Phase             Phase  `json:"phase"`
	Character         string `json:"character"`
	Description       string `json:"description"`
	Dialogue          string `json:"dialogue"`
	ActionDescription string `json:"action_description"`
	LocationID        int    `json:"location_id,omitempty"`
	LocationContext   string `json:"location_context,omitempty"`
	SFX               string `json:"sfx,omitempty"`
	Duration          string `json:"duration"`
}

type VisualContext struct {
	Style    string `json:"style" yaml:"style" toml:"style"`
	Location string `json:"location" yaml:"location" toml:"location"`
	Posture  string `json:"posture" yaml:"posture" toml:"posture"`
}

func (v VisualContext) IsZero() bool {
	return v.Style == "" && v.Location == "" && v.Posture == ""
}

// ContinuityContext holds the request-scoped choices every scene must agree on.
// It is built once and only read afterwards.
type ContinuityContext struct {
	Location      string            `json:"location_description"`
	Locations     map[int]string    `json:"locations,omitempty"`
	Posture       string            `json:"posture"`
	VisualStyle   string            `json:"visual_style_descriptor,omitempty"`
	Prop          string            `json:"prop_description,omitempty"`
	OutfitByRole  map[string]string `json:"outfit_by_character"`
	LookByRole    map[string]string `json:"look_by_character"`
	InferenceRule string            `json:"inference_rule,omitempty"`
}

// LocationFor resolves the location text for one scene. A known location id wins,
// then the scene's own context, then the request-wide location.
func (c ContinuityContext) LocationFor(s Scene) string {
	if s.LocationID > 0 {
		if loc, ok := c.Locations[s.LocationID]; ok && loc != "" {
			return loc
		}
	}
	if s.LocationContext != "" {
		return s.LocationContext
	}
	return c.Location
}

// RenderConfig carries the style selections for one request. Pass it by value.
type RenderConfig struct {
	ColorGrading string    `json:"color_grading" yaml:"color_grading" toml:"color_grading" validate:"required,oneof=default luxury premium"`
	Animation    string    `json:"animation" yaml:"animation" toml:"animation" validate:"required,oneof=2d_lofi 3d_cgi"`
	Aesthetic    string    `json:"aesthetic" yaml:"aesthetic" toml:"aesthetic" validate:"required,oneof=2D 3D"`
	Language     string    `json:"language" yaml:"language" toml:"language" validate:"required,oneof=pidgin mixed english"`
	Mode         StoryMode `json:"mode" yaml:"mode" toml:"mode" validate:"required,oneof=single multi"`
}

func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		ColorGrading: "default",
		Animation:    "2d_lofi",
		Aesthetic:    "2D",
		Language:     "pidgin",
		Mode:         ModeSingle,
	}
}

var validate = validator.New()

func (c RenderConfig) Validate() error {
	return validate.Struct(c)
}

type TransformRequest struct {
	Script   string
	Language string
	Mode     StoryMode
}

// Transformation is the oracle's answer after parsing. Nothing in it is trusted.
type Transformation struct {
	ViralTitle string        `json:"viral_title"`
	Setting    string        `json:"setting_description"`
	Scenes     []RawScene    `json:"scenes"`
	Locations  []RawLocation `json:"locations"`
	Raw        string        `json:"-"`
}

type POV struct {
	CameraPerspective string `json:"camera_perspective"`
	NarrativeFocus    string `json:"narrative_focus"`
	EditingNotes      string `json:"editing_notes"`
}

type SceneMetadata struct {
	FocalCharacter   string `json:"focal_character"`
	EmotionalTone    string `json:"emotional_tone"`
	ScenePurpose     string `json:"scene_purpose"`
	TimestampSeconds int    `json:"timestamp_seconds"`
	DurationSeconds  int    `json:"duration_seconds"`
}

type MotionGuide struct {
	TotalDuration   string `json:"total_duration"`
	MotionIntensity string `json:"motion_intensity"`
	RecommendedFPS  int    `json:"recommended_fps"`
	LoopSeamless    bool   `json:"loop_seamless"`
	MotionType      string `json:"motion_type"`
}

type RunwayFormat struct {
	Prompt         string `json:"prompt"`
	Duration       int    `json:"duration"`
	MotionBucketID int    `json:"motion_bucket_id"`
	Style          string `json:"style"`
	AspectRatio    string `json:"aspect_ratio"`
}

type LumaFormat struct {
	Prompt      string            `json:"prompt"`
	Keyframes   map[string]string `json:"keyframes"`
	Loop        bool              `json:"loop"`
	AspectRatio string            `json:"aspect_ratio"`
}

type MotionSpec struct {
	LipSyncPrompt string       `json:"lip_sync_prompt"`
	Guide         MotionGuide  `json:"guide"`
	Runway        RunwayFormat `json:"runway"`
	Luma          LumaFormat   `json:"luma"`
}

// SceneBundle is everything composed for one scene.
type SceneBundle struct {
	SceneID                int           `json:"scene_id"`
	ShotType               string        `json:"shot_type"`
	CameraAngle            string        `json:"camera_angle"`
	Phase                  Phase         `json:"phase"`
	Character              string        `json:"character"`
	Beat                   string        `json:"beat"`
	Dialogue               string        `json:"dialogue"`
	ActionDescription      string        `json:"action_description"`
	Duration               string        `json:"duration"`
	LocationID             int           `json:"location_id,omitempty"`
	EstimatedSpeechSeconds float64       `json:"estimated_speech_seconds"`
	ImagePrompt            string        `json:"image_prompt"`
	CondensedPrompt        string        `json:"condensed_prompt"`
	MotionPrompt           string        `json:"i2v_motion_prompt"`
	Motion                 MotionSpec    `json:"i2v"`
	SFX                    []string      `json:"sfx"`
	POV                    POV           `json:"pov"`
	Metadata               SceneMetadata `json:"metadata"`
}

type MusicTrack struct {
	Prompt   string `json:"prompt"`
	Duration string `json:"duration"`
	Fade     string `json:"fade"`
}

type MusicTracks struct {
	Intro MusicTrack `json:"intro"`
	Pivot MusicTrack `json:"pivot"`
	Dunk  MusicTrack `json:"dunk"`
}

type VolumeLevels struct {
	Music    float64 `json:"music"`
	Dialogue float64 `json:"dialogue"`
	SFX      float64 `json:"sfx"`
	Ambient  float64 `json:"ambient"`
}

type SceneSFX struct {
	SceneID  int          `json:"scene_id"`
	SFX      []string     `json:"sfx_list"`
	Volume   VolumeLevels `json:"volume"`
	Layering []string     `json:"layering"`
}

type TimingMarker struct {
	Cue string `json:"cue"`
	At  string `json:"at"`
}

type SFXManifest struct {
	MusicTracks   MusicTracks    `json:"music_tracks"`
	AmbientLayer  []string       `json:"ambient_layer"`
	SceneSFX      []SceneSFX     `json:"scene_sfx"`
	TimingMarkers []TimingMarker `json:"timing_markers"`
}

type SEOData struct {
	Title            string   `json:"title"`
	Tags             []string `json:"tags"`
	Hashtags         []string `json:"hashtags"`
	RowID            int      `json:"row_id,omitempty"`
	POVContext       string   `json:"pov_context,omitempty"`
	PrimaryCharacter string   `json:"primary_character,omitempty"`
	NarrativeStyle   string   `json:"narrative_style,omitempty"`
}

// Clone returns a copy whose slices do not alias the receiver's.
func (s SEOData) Clone() SEOData {
	out := s
	out.Tags = append([]string(nil), s.Tags...)
	out.Hashtags = append([]string(nil), s.Hashtags...)
	return out
}

type SEOTitle struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type VideoMetadata struct {
	Title           string    `json:"title"`
	CreatedAt       time.Time `json:"created_at"`
	TotalScenes     int       `json:"total_scenes"`
	DurationSeconds int       `json:"duration_seconds"`
	Style           string    `json:"style"`
	Language        string    `json:"language"`
	OnscreenHooks   []string  `json:"onscreen_hooks"`
	FinalLesson     string    `json:"final_lesson"`
	Format          string    `json:"format"`
	TargetPlatform  string    `json:"target_platform"`
	ContentType     string    `json:"content_type"`
}

type Validation struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// Package is the assembled output for one request.
type Package struct {
	RunID         string            `json:"run_id,omitempty"`
	VideoMetadata VideoMetadata     `json:"video_metadata"`
	SEOData       SEOData           `json:"seo_data"`
	Validation    Validation        `json:"validation"`
	Continuity    ContinuityContext `json:"continuity"`
	SceneSetup    string            `json:"scene_setup"`
	Props         map[string]string `json:"props"`
	Scenes        []SceneBundle     `json:"scenes"`
	SFXManifest   SFXManifest       `json:"sfx_manifest"`
}
