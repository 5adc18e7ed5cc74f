// Package assemble turns normalized scenes into the final output package.
package assemble

import (
	"errors"
	"time"

	"github.com/forPelevin/naijavibe/internal/domain/compose"
	"github.com/forPelevin/naijavibe/internal/domain/scenes"
	"github.com/forPelevin/naijavibe/internal/types"
)

var ErrNoScenes = errors.New("assemble: no scenes")

type Input struct {
	RunID      string
	Scenes     []types.Scene
	Continuity types.ContinuityContext
	SEO        types.SEOData
	Render     types.RenderConfig
	Now        time.Time
}

// Build composes every scene and wraps the bundles with video metadata, SEO
// and the structural validation report. Validation issues never fail the build;
// only an empty scene list does.
func Build(in Input) (types.Package, error) {
	if len(in.Scenes) == 0 {
		return types.Package{}, ErrNoScenes
	}

	validation := types.Validation{Valid: true, Issues: []string{}}
	if in.Render.Mode != types.ModeMulti {
		validation = scenes.Validate(in.Scenes)
	}

	return types.Package{
		RunID:         in.RunID,
		VideoMetadata: VideoMetadata(in.SEO.Title, in.Scenes, in.Render, in.Now),
		SEOData:       EnrichSEO(in.SEO, in.Scenes),
		Validation:    validation,
		Continuity:    in.Continuity,
		SceneSetup:    compose.SceneSetup(in.Continuity, in.Render),
		Props:         compose.Props(in.Continuity, in.Render),
		Scenes:        compose.All(in.Scenes, in.Continuity, in.Render),
		SFXManifest:   compose.Manifest(in.Scenes),
	}, nil
}
