package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/forPelevin/naijavibe/internal/config"
	"github.com/forPelevin/naijavibe/internal/logging"
	"github.com/forPelevin/naijavibe/internal/pipeline"
	"github.com/forPelevin/naijavibe/internal/ports/adapters/gemini"
	"github.com/forPelevin/naijavibe/internal/types"
)

func run(cmd *cobra.Command, input string) error {
	pc, err := pipelineConfig(cmd, input)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	res, err := pipeline.Run(ctx, pc)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.RunDir)
	if !res.Package.Validation.Valid {
		for _, issue := range res.Package.Validation.Issues {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", issue)
		}
	}
	return nil
}

func recreate(cmd *cobra.Command, input string) error {
	pc, err := pipelineConfig(cmd, input)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	res, err := pipeline.Recreate(ctx, pc)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.RunDir)
	for _, kind := range []string{types.VideoLong, types.VideoShort} {
		if p, ok := res.Videos[kind]; ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d scenes\t%s\n", kind, len(p.Scenes), p.SEOData.Title)
		}
	}
	return nil
}

// pipelineConfig resolves profile, flags and env into a validated pipeline
// config and installs the configured logger as the default.
func pipelineConfig(cmd *cobra.Command, input string) (pipeline.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return pipeline.Config{}, err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return pipeline.Config{}, fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return pipeline.Config{}, fmt.Errorf("logging: %w", err)
	}
	slog.SetDefault(logger)

	absIn, err := filepath.Abs(input)
	if err != nil {
		return pipeline.Config{}, err
	}

	pc := pipeline.Config{
		ScriptPath: absIn,
		OutDir:     cfg.Output.Dir,

		Render:   cfg.Render,
		Visual:   cfg.Visual,
		Frames:   limitFrames(cmd, logger),
		SEOCSV:   cfg.SEO.CSV,
		SEORowID: cfg.SEO.RowID,
		Slang:    cfg.Oracle.Slang,

		DoubleSpaced: cfg.Output.DoubleSpaced,
		Voices:       cfg.Voices,
		Seed:         cfg.Output.Seed,

		Provider:          cfg.Oracle.Provider,
		ReplayFile:        cfg.Oracle.ReplayFile,
		RequestsPerMinute: cfg.Oracle.RequestsPerMinute,

		GeminiAPIKey: os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:  getenvDefault("GEMINI_MODEL", modelFor(cfg, pipeline.ProviderGemini)),

		OpenRouterAPIKey:       os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel:        getenvDefault("OPENROUTER_MODEL", modelFor(cfg, pipeline.ProviderOpenRouter)),
		OpenRouterBaseURL:      os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterAllowedHosts: allowedHosts(cfg),

		Logger: logger,
	}
	if err := pc.Validate(); err != nil {
		return pipeline.Config{}, fmt.Errorf("config: %w", err)
	}
	return pc, nil
}

func titles(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := cfg.SEO.CSV
	if f := cmd.Flags().Lookup("seo-csv"); f != nil && f.Changed {
		path = f.Value.String()
	}
	if path == "" {
		return errors.New("an SEO table is required (--seo-csv or seo.csv in the profile)")
	}
	list, err := pipeline.Titles(path)
	if err != nil {
		return err
	}
	for _, t := range list {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", t.ID, t.Title)
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("NAIJAVIBE_CONFIG")
	}
	return config.Load(path)
}

// applyFlags overlays flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	str := func(name string, dst *string) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	str("out", &cfg.Output.Dir)
	str("provider", &cfg.Oracle.Provider)
	str("replay", &cfg.Oracle.ReplayFile)
	str("language", &cfg.Render.Language)
	str("color", &cfg.Render.ColorGrading)
	str("animation", &cfg.Render.Animation)
	str("aesthetic", &cfg.Render.Aesthetic)
	str("seo-csv", &cfg.SEO.CSV)

	if fs.Changed("mode") {
		v, _ := fs.GetString("mode")
		cfg.Render.Mode = types.StoryMode(v)
	}
	if fs.Changed("seo-row") {
		cfg.SEO.RowID, _ = fs.GetInt("seo-row")
	}
	if fs.Changed("slang") {
		cfg.Oracle.Slang, _ = fs.GetBool("slang")
	}
	if fs.Changed("double-spaced") {
		cfg.Output.DoubleSpaced, _ = fs.GetBool("double-spaced")
	}
	if fs.Changed("seed") {
		cfg.Output.Seed, _ = fs.GetUint64("seed")
	}
	if fs.Changed("rpm") {
		cfg.Oracle.RequestsPerMinute, _ = fs.GetFloat64("rpm")
	}
	// Replaying a saved answer needs no provider flag.
	if fs.Changed("replay") && !fs.Changed("provider") {
		cfg.Oracle.Provider = pipeline.ProviderReplay
	}
}

func limitFrames(cmd *cobra.Command, logger *slog.Logger) []string {
	frames, _ := cmd.Flags().GetStringSlice("frames")
	if len(frames) > gemini.MaxFrames {
		logger.Warn("too many frames, extra ones ignored", "given", len(frames), "used", gemini.MaxFrames)
		frames = frames[:gemini.MaxFrames]
	}
	return frames
}

func modelFor(cfg config.Config, provider string) string {
	if cfg.Oracle.Provider == provider {
		return cfg.Oracle.Model
	}
	return ""
}

func allowedHosts(cfg config.Config) []string {
	if v := os.Getenv("OPENROUTER_ALLOWED_HOSTS"); v != "" {
		return strings.Split(v, ",")
	}
	return cfg.Oracle.AllowedHosts
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
