package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/forPelevin/naijavibe/internal/domain/assemble"
	"github.com/forPelevin/naijavibe/internal/domain/continuity"
	"github.com/forPelevin/naijavibe/internal/domain/scenes"
	"github.com/forPelevin/naijavibe/internal/domain/script"
	"github.com/forPelevin/naijavibe/internal/domain/seo"
	"github.com/forPelevin/naijavibe/internal/ports"
	"github.com/forPelevin/naijavibe/internal/types"
)

// DefaultVisualStyle is used with the oracle's setting when no visual
// analysis is available.
const DefaultVisualStyle = "Cinematic 3D CGI Animation"

type Deps struct {
	Oracle ports.ScriptOracle
	// Recreator is only needed by Recreate.
	Recreator ports.StoryRecreator
	// Analyzer and SEO are optional.
	Analyzer ports.VisualAnalyzer
	SEO      ports.SEOLookup
	Chooser  continuity.Chooser
	Now      func() time.Time
	Logger   *slog.Logger
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase {
	if d.Chooser == nil {
		d.Chooser = continuity.NewSeeded(uint64(time.Now().UnixNano()))
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return Usecase{d: d}
}

type Input struct {
	RunID  string
	Script string
	Render types.RenderConfig
	// Visual is a preset visual context. Fields from frame analysis win.
	Visual   types.VisualContext
	Frames   []string
	SEORowID int
	Slang    bool
}

type Result struct {
	Package        types.Package
	Transformation types.Transformation
}

func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	if u.d.Oracle == nil {
		return Result{}, errors.New("usecase: no script oracle")
	}
	log := u.d.Logger.With("run_id", in.RunID)

	text := in.Script
	if in.Slang {
		text = script.ApplySlang(text)
	}

	log.InfoContext(ctx, "oracle transform", "mode", in.Render.Mode, "language", in.Render.Language)
	t, err := u.d.Oracle.Transform(ctx, types.TransformRequest{
		Script:   text,
		Language: in.Render.Language,
		Mode:     in.Render.Mode,
	})
	if err != nil {
		return Result{Transformation: t}, fmt.Errorf("transform script: %w", err)
	}

	raw := t.Scenes
	if len(t.Locations) > 0 && (in.Render.Mode == types.ModeMulti || len(raw) == 0) {
		raw = scenes.Flatten(t.Locations)
	}
	ss := scenes.Normalize(raw, in.Render.Mode)
	log.InfoContext(ctx, "scenes normalized", "scenes", len(ss), "locations", len(t.Locations))

	visual := u.visual(ctx, log, in.Visual, in.Frames, t.Setting)
	cc := continuity.Build(continuity.Input{Script: in.Script, Visual: visual, Scenes: ss}, u.d.Chooser)
	log.InfoContext(ctx, "continuity", "location", cc.Location, "rule", cc.InferenceRule)

	pkg, err := assemble.Build(assemble.Input{
		RunID:      in.RunID,
		Scenes:     ss,
		Continuity: cc,
		SEO:        u.seo(in, t),
		Render:     in.Render,
		Now:        u.d.Now().UTC(),
	})
	if err != nil {
		return Result{Transformation: t}, err
	}
	log.InfoContext(ctx, "assemble", "scenes", len(pkg.Scenes), "valid", pkg.Validation.Valid, "issues", len(pkg.Validation.Issues))
	return Result{Package: pkg, Transformation: t}, nil
}

func (u Usecase) seo(in Input, t types.Transformation) types.SEOData {
	d := seo.Default()
	if u.d.SEO != nil {
		d = u.d.SEO.Match(in.Script, in.SEORowID)
	}
	d = seo.Enhance(d)
	if t.ViralTitle != "" {
		d.Title = t.ViralTitle
	}
	return d
}

// visual merges the preset with frame analysis. A failed analysis is logged
// and skipped. With nothing at all, setting is used as the location.
func (u Usecase) visual(ctx context.Context, log *slog.Logger, preset types.VisualContext, frames []string, setting string) types.VisualContext {
	v := preset
	if u.d.Analyzer != nil && len(frames) > 0 {
		a, err := u.d.Analyzer.Analyze(ctx, frames)
		if err != nil {
			log.WarnContext(ctx, "visual analysis failed", "err", err, "frames", len(frames))
		} else {
			if a.Style != "" {
				v.Style = a.Style
			}
			if a.Location != "" {
				v.Location = a.Location
			}
			if a.Posture != "" {
				v.Posture = a.Posture
			}
		}
	}
	if v.IsZero() && setting != "" {
		v = types.VisualContext{Style: DefaultVisualStyle, Location: setting}
	}
	return v
}
