package assemble

import (
	"time"

	"github.com/forPelevin/naijavibe/internal/domain/compose"
	"github.com/forPelevin/naijavibe/internal/types"
)

var languageNames = map[string]string{
	"pidgin":  "Nigerian Pidgin English",
	"mixed":   "Urban Lagos Mix (English + Pidgin)",
	"english": "Standard Nigerian English",
}

func LanguageName(key string) string {
	if n, ok := languageNames[key]; ok {
		return n
	}
	return key
}

// VideoMetadata derives the request-level summary from the scene list.
func VideoMetadata(title string, scenes []types.Scene, cfg types.RenderConfig, now time.Time) types.VideoMetadata {
	return types.VideoMetadata{
		Title:           title,
		CreatedAt:       now,
		TotalScenes:     len(scenes),
		DurationSeconds: len(scenes) * types.SceneSeconds,
		Style:           compose.Animation(cfg.Animation).Name,
		Language:        LanguageName(cfg.Language),
		OnscreenHooks:   OnscreenHooks(title, scenes),
		FinalLesson:     FinalLesson(scenes),
		Format:          "vertical 9:16",
		TargetPlatform:  "TikTok, Instagram Reels, YouTube Shorts",
		ContentType:     "Nigerian Stoic Logic - Relationship Commentary",
	}
}

// EnrichSEO adds the POV context derived from who carries more scenes. The
// input is not modified.
func EnrichSEO(seo types.SEOData, scenes []types.Scene) types.SEOData {
	var hero, villain int
	for _, s := range scenes {
		switch s.Character {
		case types.RoleProtagonist:
			hero++
		case types.RoleAntagonist:
			villain++
		}
	}

	out := seo.Clone()
	switch {
	case hero > villain:
		out.POVContext = "Male protagonist defending against entitled demands with stoic logic"
	case villain > hero:
		out.POVContext = "Female antagonist making demands, protagonist responds with logic"
	default:
		out.POVContext = "Balanced dialogue showing logic vs emotion conflict"
	}
	if hero >= villain {
		out.PrimaryCharacter = compose.Odogwu.Name + " (Protagonist)"
	} else {
		out.PrimaryCharacter = compose.Chioma.Name + " (Antagonist)"
	}
	out.NarrativeStyle = "Stoic Logic - No Gree For Anybody"
	return out
}
