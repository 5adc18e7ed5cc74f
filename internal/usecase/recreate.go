package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/forPelevin/naijavibe/internal/domain/assemble"
	"github.com/forPelevin/naijavibe/internal/domain/continuity"
	"github.com/forPelevin/naijavibe/internal/domain/scenes"
	"github.com/forPelevin/naijavibe/internal/domain/seo"
	"github.com/forPelevin/naijavibe/internal/types"
)

// RecreateSetting is the location used for recreated stories when no visual
// context is given.
const RecreateSetting = "Nigeria"

type RecreateInput struct {
	RunID      string
	Transcript string
	Render     types.RenderConfig
	Visual     types.VisualContext
	Frames     []string
}

// Video is one assembled cut of a recreated story.
type Video struct {
	Kind    string
	Package types.Package
}

type RecreateResult struct {
	// Videos holds the long cut first. A cut without scenes is left out.
	Videos     []Video
	Recreation types.Recreation
}

// Recreate retells a transcript through the recreator and assembles each cut
// as a multi-location package. Both cuts share one continuity context so the
// characters look the same in the long and the short video.
func (u Usecase) Recreate(ctx context.Context, in RecreateInput) (RecreateResult, error) {
	if u.d.Recreator == nil {
		return RecreateResult{}, errors.New("usecase: no story recreator")
	}
	log := u.d.Logger.With("run_id", in.RunID)

	render := in.Render
	render.Mode = types.ModeMulti

	log.InfoContext(ctx, "oracle recreate", "language", render.Language)
	r, err := u.d.Recreator.Recreate(ctx, types.RecreateRequest{
		Transcript: in.Transcript,
		Language:   render.Language,
	})
	if err != nil {
		return RecreateResult{Recreation: r}, fmt.Errorf("recreate story: %w", err)
	}

	visual := u.visual(ctx, log, in.Visual, in.Frames, RecreateSetting)

	cuts := make(map[string][]types.Scene, 2)
	var all []types.Scene
	for _, kind := range []string{types.VideoLong, types.VideoShort} {
		v := r.Video(kind)
		raw := append([]types.RawScene(nil), v.Scenes...)
		if len(v.Locations) > 0 {
			raw = scenes.Flatten(v.Locations)
		}
		// Recreator ids restart in every location; play order numbers the cut.
		for i := range raw {
			raw[i].SceneID = nil
		}
		ss := scenes.Normalize(raw, types.ModeMulti)
		cuts[kind] = ss
		all = append(all, ss...)
	}
	cc := continuity.Build(continuity.Input{Script: in.Transcript, Visual: visual, Scenes: all}, u.d.Chooser)
	log.InfoContext(ctx, "continuity", "location", cc.Location, "rule", cc.InferenceRule)

	res := RecreateResult{Recreation: r}
	for _, kind := range []string{types.VideoLong, types.VideoShort} {
		ss := cuts[kind]
		if len(ss) == 0 {
			log.WarnContext(ctx, "recreated cut has no scenes", "video", kind)
			continue
		}
		v := r.Video(kind)
		pkg, err := assemble.Build(assemble.Input{
			RunID:      in.RunID,
			Scenes:     ss,
			Continuity: cc,
			SEO:        recreatedSEO(v),
			Render:     render,
			Now:        u.d.Now().UTC(),
		})
		if err != nil {
			return res, fmt.Errorf("assemble %s video: %w", kind, err)
		}
		log.InfoContext(ctx, "assemble", "video", kind, "scenes", len(pkg.Scenes))
		res.Videos = append(res.Videos, Video{Kind: kind, Package: pkg})
	}
	return res, nil
}

// recreatedSEO takes title and tags from the cut, the rest from the defaults.
func recreatedSEO(v types.RecreatedVideo) types.SEOData {
	d := seo.Default()
	if v.Title != "" {
		d.Title = v.Title
	}
	if len(v.Tags) > 0 {
		d.Tags = append([]string(nil), v.Tags...)
	}
	return seo.Enhance(d)
}
