package ports

import (
	"context"

	"github.com/forPelevin/naijavibe/internal/types"
)

// ScriptOracle rewrites a script into loosely structured scenes. Its output is
// untrusted and normalized downstream.
type ScriptOracle interface {
	Transform(ctx context.Context, req types.TransformRequest) (types.Transformation, error)
}

// StoryRecreator retells a transcript as a long and a short video.
type StoryRecreator interface {
	Recreate(ctx context.Context, req types.RecreateRequest) (types.Recreation, error)
}

// VisualAnalyzer describes the look of reference frames.
type VisualAnalyzer interface {
	Analyze(ctx context.Context, framePaths []string) (types.VisualContext, error)
}

type SEOLookup interface {
	Match(script string, rowID int) types.SEOData
	Titles() []types.SEOTitle
}
