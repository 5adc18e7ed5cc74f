package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/time/rate"

	"github.com/forPelevin/naijavibe/internal/domain/assemble"
	"github.com/forPelevin/naijavibe/internal/domain/captions"
	"github.com/forPelevin/naijavibe/internal/domain/continuity"
	"github.com/forPelevin/naijavibe/internal/ports"
	"github.com/forPelevin/naijavibe/internal/ports/adapters/gemini"
	"github.com/forPelevin/naijavibe/internal/ports/adapters/openrouter"
	"github.com/forPelevin/naijavibe/internal/ports/adapters/replay"
	"github.com/forPelevin/naijavibe/internal/ports/adapters/seocsv"
	"github.com/forPelevin/naijavibe/internal/types"
	"github.com/forPelevin/naijavibe/internal/usecase"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderReplay     = "replay"
)

// Artifact file names inside a run directory.
const (
	PackageFile          = "package.json"
	PromptsFile          = "prompts.txt"
	CondensedPromptsFile = "prompts_condensed.txt"
	SFXManifestFile      = "sfx_manifest.json"
	OracleRawFile        = "oracle_raw.txt"
	CaptionsFile         = "captions.ass"
	RecreationFile       = "recreation.json"
)

type Config struct {
	ScriptPath string
	OutDir     string

	Render   types.RenderConfig
	Visual   types.VisualContext
	Frames   []string
	SEOCSV   string
	SEORowID int
	Slang    bool

	DoubleSpaced bool
	Voices       assemble.Voices
	// Seed fixes the continuity draws. Zero picks one per run.
	Seed uint64

	Provider          string
	ReplayFile        string
	RequestsPerMinute float64

	GeminiAPIKey string
	GeminiModel  string

	OpenRouterAPIKey       string
	OpenRouterModel        string
	OpenRouterBaseURL      string
	OpenRouterAllowedHosts []string

	Logger *slog.Logger
}

func (c Config) Validate() error {
	if c.ScriptPath == "" {
		return errors.New("script file is empty")
	}
	if _, err := os.Stat(c.ScriptPath); err != nil {
		return fmt.Errorf("stat script: %w", err)
	}
	if err := c.Render.Validate(); err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	if c.RequestsPerMinute < 0 {
		return errors.New("requests per minute must be >= 0")
	}
	for _, f := range c.Frames {
		if _, err := os.Stat(f); err != nil {
			return fmt.Errorf("stat frame: %w", err)
		}
	}
	if len(c.Frames) > 0 && c.GeminiAPIKey == "" {
		return errors.New("frame analysis needs GOOGLE_API_KEY")
	}
	switch c.Provider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return errors.New("GOOGLE_API_KEY is required for the gemini provider")
		}
	case ProviderOpenRouter:
		if c.OpenRouterAPIKey == "" {
			return errors.New("OPENROUTER_API_KEY is required for the openrouter provider")
		}
		return openrouter.ValidateBaseURL(c.OpenRouterBaseURL, c.OpenRouterAllowedHosts)
	case ProviderReplay:
		if c.ReplayFile == "" {
			return errors.New("replay provider needs a response file")
		}
		if _, err := os.Stat(c.ReplayFile); err != nil {
			return fmt.Errorf("stat replay file: %w", err)
		}
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	return nil
}

type Result struct {
	RunDir  string
	Package types.Package
}

func Run(ctx context.Context, cfg Config) (Result, error) {
	logger := loggerFor(cfg)

	text, err := readInput(cfg.ScriptPath)
	if err != nil {
		return Result{}, err
	}

	deps, closeDeps, err := newDeps(ctx, cfg, logger)
	if err != nil {
		return Result{}, err
	}
	defer closeDeps()

	if cfg.SEOCSV != "" {
		table, err := seocsv.Load(cfg.SEOCSV)
		if err != nil {
			return Result{}, err
		}
		logger.Info("seo table loaded", "rows", table.Len(), "path", cfg.SEOCSV)
		deps.SEO = table
	}

	rs, err := startRun(cfg, &deps, logger)
	if err != nil {
		return Result{}, err
	}

	res, err := usecase.New(deps).Run(ctx, usecase.Input{
		RunID:    rs.id,
		Script:   text,
		Render:   cfg.Render,
		Visual:   cfg.Visual,
		Frames:   cfg.Frames,
		SEORowID: cfg.SEORowID,
		Slang:    cfg.Slang,
	})
	keepRaw(rs.dir, res.Transformation.Raw, logger)
	if err != nil {
		return Result{RunDir: rs.dir}, err
	}

	if err := writeArtifacts(rs.dir, res.Package, bulkOptions(cfg)); err != nil {
		return Result{RunDir: rs.dir}, err
	}
	logger.Info("artifacts written",
		"run_id", rs.id,
		"scenes", len(res.Package.Scenes),
		"valid", res.Package.Validation.Valid,
		"path", rs.dir,
	)
	return Result{RunDir: rs.dir, Package: res.Package}, nil
}

type RecreateResult struct {
	RunDir string
	// Videos maps the cut kind to its assembled package.
	Videos map[string]types.Package
}

// Recreate retells the transcript at cfg.ScriptPath as a long and a short
// video. Each cut gets its own sub directory of the run dir with the usual
// artifacts; the parsed recreation is written next to them.
func Recreate(ctx context.Context, cfg Config) (RecreateResult, error) {
	logger := loggerFor(cfg)

	text, err := readInput(cfg.ScriptPath)
	if err != nil {
		return RecreateResult{}, err
	}

	deps, closeDeps, err := newDeps(ctx, cfg, logger)
	if err != nil {
		return RecreateResult{}, err
	}
	defer closeDeps()

	rs, err := startRun(cfg, &deps, logger)
	if err != nil {
		return RecreateResult{}, err
	}

	res, err := usecase.New(deps).Recreate(ctx, usecase.RecreateInput{
		RunID:      rs.id,
		Transcript: text,
		Render:     cfg.Render,
		Visual:     cfg.Visual,
		Frames:     cfg.Frames,
	})
	keepRaw(rs.dir, res.Recreation.Raw, logger)
	if err != nil {
		return RecreateResult{RunDir: rs.dir}, err
	}
	if err := writeJSON(filepath.Join(rs.dir, RecreationFile), res.Recreation); err != nil {
		return RecreateResult{RunDir: rs.dir}, err
	}

	out := RecreateResult{RunDir: rs.dir, Videos: make(map[string]types.Package, len(res.Videos))}
	for _, v := range res.Videos {
		dir := filepath.Join(rs.dir, v.Kind)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return out, err
		}
		if err := writeArtifacts(dir, v.Package, bulkOptions(cfg)); err != nil {
			return out, err
		}
		out.Videos[v.Kind] = v.Package
		logger.Info("artifacts written", "run_id", rs.id, "video", v.Kind, "scenes", len(v.Package.Scenes), "path", dir)
	}
	return out, nil
}

func loggerFor(cfg Config) *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.Default()
}

func readInput(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	text := strings.TrimSpace(string(b))
	if text == "" {
		return "", errors.New("script file is empty")
	}
	return text, nil
}

// newDeps builds the oracle adapters for cfg.Provider. The returned func
// releases them.
func newDeps(ctx context.Context, cfg Config, logger *slog.Logger) (usecase.Deps, func(), error) {
	limiter := newLimiter(cfg.RequestsPerMinute)
	deps := usecase.Deps{Logger: logger}
	closeDeps := func() {}

	var geminiClient *gemini.Client
	if cfg.Provider == ProviderGemini || len(cfg.Frames) > 0 {
		c, err := gemini.New(ctx, gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Limiter: limiter,
			Logger:  logger,
		})
		if err != nil {
			return deps, closeDeps, err
		}
		geminiClient = c
		closeDeps = func() { _ = c.Close() }
		deps.Analyzer = c
	}

	switch cfg.Provider {
	case ProviderGemini:
		deps.Oracle, deps.Recreator = geminiClient, geminiClient
	case ProviderOpenRouter:
		a := openrouter.New(openrouter.Config{
			APIKey:  cfg.OpenRouterAPIKey,
			Model:   cfg.OpenRouterModel,
			BaseURL: cfg.OpenRouterBaseURL,
			Limiter: limiter,
			Logger:  logger,
		})
		deps.Oracle, deps.Recreator = a, a
	case ProviderReplay:
		a := replay.New(cfg.ReplayFile, logger)
		deps.Oracle, deps.Recreator = a, a
	default:
		closeDeps()
		return deps, func() {}, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	return deps, closeDeps, nil
}

type runState struct {
	id  string
	dir string
}

// startRun fixes the clock and the continuity seed for the run and creates
// its output directory.
func startRun(cfg Config, deps *usecase.Deps, logger *slog.Logger) (runState, error) {
	now := time.Now().UTC()
	deps.Now = func() time.Time { return now }

	id := uuid.NewString()
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}
	deps.Chooser = continuity.NewSeeded(seed)

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "out"
	}
	dir := buildRunOutDir(outDir, cfg.ScriptPath, now, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return runState{}, err
	}
	logger.Info("output run dir", "run_id", id, "path", dir, "seed", seed)
	return runState{id: id, dir: dir}, nil
}

// keepRaw saves the oracle answer even when the run fails so it can be replayed.
func keepRaw(dir, raw string, logger *slog.Logger) {
	if raw == "" {
		return
	}
	if err := os.WriteFile(filepath.Join(dir, OracleRawFile), []byte(raw), 0o644); err != nil {
		logger.Warn("write oracle response", "err", err)
	}
}

func bulkOptions(cfg Config) assemble.BulkOptions {
	return assemble.BulkOptions{DoubleSpaced: cfg.DoubleSpaced, Voices: cfg.Voices}
}

// Titles lists the rows of the SEO table at path.
func Titles(path string) ([]types.SEOTitle, error) {
	table, err := seocsv.Load(path)
	if err != nil {
		return nil, err
	}
	var lookup ports.SEOLookup = table
	return lookup.Titles(), nil
}

func writeArtifacts(dir string, p types.Package, opts assemble.BulkOptions) error {
	if err := writeJSON(filepath.Join(dir, PackageFile), p); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, SFXManifestFile), p.SFXManifest); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, PromptsFile), []byte(assemble.BulkPrompts(p, opts)), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, CaptionsFile), []byte(captions.RenderASS(p.Scenes)), 0o644); err != nil {
		return err
	}
	opts.Condensed = true
	return os.WriteFile(filepath.Join(dir, CondensedPromptsFile), []byte(assemble.BulkPrompts(p, opts)), 0o644)
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, b, 0o644)
}

// newLimiter spaces oracle calls. rpm <= 0 means unlimited.
func newLimiter(rpm float64) *rate.Limiter {
	if rpm <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(rpm/60), 1)
}

func buildRunOutDir(outRoot, scriptPath string, now time.Time, runID string) string {
	name := slug.Make(strings.TrimSuffix(filepath.Base(scriptPath), filepath.Ext(scriptPath)))
	if name == "" {
		name = "script"
	}
	ts := now.UTC().Format("20060102-150405Z")
	suffix := strings.ReplaceAll(runID, "-", "")
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return filepath.Join(outRoot, fmt.Sprintf("%s-%s-%s", name, ts, suffix))
}

// ensure adapters implement ports
var _ ports.ScriptOracle = (*gemini.Client)(nil)
var _ ports.StoryRecreator = (*gemini.Client)(nil)
var _ ports.VisualAnalyzer = (*gemini.Client)(nil)
var _ ports.ScriptOracle = (*openrouter.Adapter)(nil)
var _ ports.StoryRecreator = (*openrouter.Adapter)(nil)
var _ ports.ScriptOracle = (*replay.Adapter)(nil)
var _ ports.StoryRecreator = (*replay.Adapter)(nil)
var _ ports.SEOLookup = (*seocsv.Table)(nil)
