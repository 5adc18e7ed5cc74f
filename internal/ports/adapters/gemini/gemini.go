// Package gemini implements the script oracle, the story recreator and the
// frame analyzer on the Gemini API.
package gemini

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

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"github.com/forPelevin/naijavibe/internal/domain/script"
	"github.com/forPelevin/naijavibe/internal/types"
)

const (
	DefaultModel = "gemini-2.5-flash"

	maxRetries      = 3
	retryBaseDelay  = time.Second
	maxOutputTokens = 8192
	defaultTemp     = 0.9

	// MaxFrames caps how many images go into one analysis request.
	MaxFrames = 4
)

type Config struct {
	APIKey string
	Model  string
	// Limiter is shared by every call made through the client. Nil means unlimited.
	Limiter *rate.Limiter
	Logger  *slog.Logger
}

type Client struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
	logger  *slog.Logger
	pause   func(context.Context, time.Duration) error
}

func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini: api key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &Client{
		client:  client,
		model:   model,
		limiter: limiter,
		logger:  logger.With("component", "gemini"),
		pause:   sleep,
	}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Transform asks the model for the localized scene list. Unparseable answers
// are retried like transport failures.
func (c *Client) Transform(ctx context.Context, req types.TransformRequest) (types.Transformation, error) {
	c.logger.InfoContext(ctx, "transform started",
		"model", c.model,
		"language", req.Language,
		"mode", req.Mode,
	)
	t, err := retry(ctx, c, "transform", func(ctx context.Context) (types.Transformation, error) {
		text, err := c.generate(ctx, script.SystemPrompt(), script.BuildPrompt(req))
		if err != nil {
			return types.Transformation{}, err
		}
		return script.Parse(text)
	})
	if err != nil {
		return types.Transformation{}, err
	}
	c.logger.InfoContext(ctx, "transform completed",
		"scenes", len(t.Scenes),
		"locations", len(t.Locations),
	)
	return t, nil
}

// Recreate retells a transcript as a long and a short video.
func (c *Client) Recreate(ctx context.Context, req types.RecreateRequest) (types.Recreation, error) {
	c.logger.InfoContext(ctx, "recreate started", "model", c.model, "language", req.Language)
	r, err := retry(ctx, c, "recreate", func(ctx context.Context) (types.Recreation, error) {
		text, err := c.generate(ctx, "", script.RecreatePrompt(req))
		if err != nil {
			return types.Recreation{}, err
		}
		return script.ParseRecreation(text)
	})
	if err != nil {
		return types.Recreation{}, err
	}
	c.logger.InfoContext(ctx, "recreate completed",
		"long_locations", len(r.Long.Locations),
		"short_scenes", len(r.Short.Scenes),
	)
	return r, nil
}

// retry runs fn up to maxRetries times with a growing pause between attempts.
// There is no pause after the last attempt.
func retry[T any](ctx context.Context, c *Client, op string, fn func(context.Context) (T, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)
	for i := 0; i < maxRetries; i++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err
		if ctx.Err() != nil || i == maxRetries-1 {
			break
		}
		c.logger.WarnContext(ctx, op+" failed, retrying",
			"attempt", i+1,
			"error", err,
		)
		if err := c.pause(ctx, retryBaseDelay*time.Duration(i+1)); err != nil {
			break
		}
	}
	return zero, fmt.Errorf("gemini %s failed after %d attempts: %w", op, maxRetries, lastErr)
}

func (c *Client) generate(ctx context.Context, system, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	model := c.client.GenerativeModel(c.model)
	configureModel(model)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(strings.ToValidUTF8(prompt, "")))
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	return c.responseText(resp)
}

const analyzePrompt = `Analyze these screenshots from a video. Return a JSON object with three keys:
1. "style": Describe the lighting, color palette, **dominant camera angles/composition** (e.g., low angle, wide shot, dutch tilt), and overall visual vibe (concise, < 50 words).
2. "location": Describe the physical setting/environment where the scene takes place (e.g., "futuristic neon bar", "cluttered living room", "sunny park") (concise, < 20 words).
3. "posture": Describe if the characters are mostly standing, sitting, or a mix (e.g., "both standing", "both sitting", "one standing, one sitting").

Output ONLY the JSON string.`

// Analyze describes up to MaxFrames images. Frames that cannot be read are
// skipped; with none left the zero context is returned.
func (c *Client) Analyze(ctx context.Context, framePaths []string) (types.VisualContext, error) {
	parts := make([]genai.Part, 0, MaxFrames+1)
	for _, p := range framePaths {
		if len(parts) == MaxFrames {
			break
		}
		data, err := os.ReadFile(p)
		if err != nil {
			c.logger.WarnContext(ctx, "skipping frame", "path", p, "error", err)
			continue
		}
		parts = append(parts, genai.ImageData(imageFormat(p), data))
	}
	if len(parts) == 0 {
		return types.VisualContext{}, nil
	}
	parts = append(parts, genai.Text(analyzePrompt))

	if err := c.limiter.Wait(ctx); err != nil {
		return types.VisualContext{}, err
	}

	model := c.client.GenerativeModel(c.model)
	configureModel(model)
	model.Temperature = toPtr(float32(0.4))

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return types.VisualContext{}, fmt.Errorf("gemini analyze failed: %w", err)
	}
	text, err := c.responseText(resp)
	if err != nil {
		return types.VisualContext{}, err
	}

	vc := ParseVisual(text)
	c.logger.InfoContext(ctx, "frames analyzed",
		"frames", len(parts)-1,
		"location", vc.Location,
		"posture", vc.Posture,
	)
	return vc, nil
}

// ParseVisual decodes the analyzer answer. Anything that is not a JSON object
// becomes the style text verbatim.
func ParseVisual(text string) types.VisualContext {
	text = strings.TrimSpace(text)
	obj, err := script.ExtractJSONObject(text)
	if err != nil {
		return types.VisualContext{Style: text}
	}
	var raw struct {
		Style    any `json:"style"`
		Location any `json:"location"`
		Posture  any `json:"posture"`
	}
	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		return types.VisualContext{Style: text}
	}
	return types.VisualContext{
		Style:    asString(raw.Style),
		Location: asString(raw.Location),
		Posture:  asString(raw.Posture),
	}
}

func asString(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case nil:
		return ""
	default:
		b, _ := json.Marshal(x)
		return string(b)
	}
}

func imageFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".webp":
		return "webp"
	case ".gif":
		return "gif"
	default:
		return "jpeg"
	}
}

func configureModel(model *genai.GenerativeModel) {
	model.ResponseMIMEType = "application/json"
	model.Temperature = toPtr(float32(defaultTemp))
	model.TopP = toPtr(float32(0.95))
	model.TopK = toPtr(int32(40))
	model.MaxOutputTokens = toPtr(int32(maxOutputTokens))
}

func (c *Client) responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from gemini")
	}
	cand := resp.Candidates[0]
	c.logger.Debug("gemini response",
		"finish_reason", cand.FinishReason,
		"parts_count", len(cand.Content.Parts),
	)

	var b strings.Builder
	for _, p := range cand.Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("gemini returned no text (finish_reason=%v)", cand.FinishReason)
	}
	return b.String(), nil
}

func toPtr[T any](v T) *T {
	return &v
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
