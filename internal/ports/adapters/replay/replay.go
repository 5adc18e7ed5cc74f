// Package replay answers oracle requests from a saved model response, so runs
// can be reproduced offline.
package replay

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/forPelevin/naijavibe/internal/domain/script"
	"github.com/forPelevin/naijavibe/internal/types"
)

type Adapter struct {
	path   string
	logger *slog.Logger
}

func New(path string, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{path: path, logger: logger.With("component", "replay")}
}

// Transform ignores the request content and parses the saved response.
func (a *Adapter) Transform(ctx context.Context, req types.TransformRequest) (types.Transformation, error) {
	if err := ctx.Err(); err != nil {
		return types.Transformation{}, err
	}
	b, err := os.ReadFile(a.path)
	if err != nil {
		return types.Transformation{}, fmt.Errorf("read replay response: %w", err)
	}
	t, err := script.Parse(string(b))
	if err != nil {
		return t, fmt.Errorf("replay %s: %w", a.path, err)
	}
	a.logger.InfoContext(ctx, "replayed response", "path", a.path, "mode", req.Mode, "scenes", len(t.Scenes), "locations", len(t.Locations))
	return t, nil
}

// Recreate ignores the transcript and parses the saved recreator response.
func (a *Adapter) Recreate(ctx context.Context, req types.RecreateRequest) (types.Recreation, error) {
	if err := ctx.Err(); err != nil {
		return types.Recreation{}, err
	}
	b, err := os.ReadFile(a.path)
	if err != nil {
		return types.Recreation{}, fmt.Errorf("read replay response: %w", err)
	}
	r, err := script.ParseRecreation(string(b))
	if err != nil {
		return r, fmt.Errorf("replay %s: %w", a.path, err)
	}
	a.logger.InfoContext(ctx, "replayed recreation", "path", a.path, "language", req.Language,
		"long_locations", len(r.Long.Locations), "short_scenes", len(r.Short.Scenes))
	return r, nil
}
