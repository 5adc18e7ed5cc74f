package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/forPelevin/naijavibe/internal/domain/script"
	"github.com/forPelevin/naijavibe/internal/types"
)

const (
	DefaultModel   = "google/gemini-2.5-flash"
	requestTimeout = 2 * time.Minute
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Limiter *rate.Limiter
	Logger  *slog.Logger
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

type Adapter struct {
	key     string
	model   string
	url     string
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

func New(cfg Config) *Adapter {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Minute}
	}
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		key:     cfg.APIKey,
		model:   model,
		url:     chatURL(cfg.BaseURL),
		client:  client,
		limiter: limiter,
		logger:  logger.With("component", "openrouter"),
	}
}

// Transform sends one chat completion and parses the reply into scenes.
func (a *Adapter) Transform(ctx context.Context, req types.TransformRequest) (types.Transformation, error) {
	a.logger.InfoContext(ctx, "transform started", "model", a.model, "language", req.Language, "mode", req.Mode)
	content, err := a.complete(ctx,
		message{Role: "system", Content: script.SystemPrompt()},
		message{Role: "user", Content: script.BuildPrompt(req)},
	)
	if err != nil {
		return types.Transformation{}, err
	}
	t, err := script.Parse(content)
	if err != nil {
		return t, fmt.Errorf("openrouter: %w", err)
	}
	a.logger.InfoContext(ctx, "transform completed", "scenes", len(t.Scenes), "locations", len(t.Locations))
	return t, nil
}

// Recreate retells a transcript as a long and a short video.
func (a *Adapter) Recreate(ctx context.Context, req types.RecreateRequest) (types.Recreation, error) {
	a.logger.InfoContext(ctx, "recreate started", "model", a.model, "language", req.Language)
	content, err := a.complete(ctx, message{Role: "user", Content: script.RecreatePrompt(req)})
	if err != nil {
		return types.Recreation{}, err
	}
	r, err := script.ParseRecreation(content)
	if err != nil {
		return r, fmt.Errorf("openrouter: %w", err)
	}
	a.logger.InfoContext(ctx, "recreate completed", "long_locations", len(r.Long.Locations), "short_scenes", len(r.Short.Scenes))
	return r, nil
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// complete posts one chat completion and returns the text of the first choice.
func (a *Adapter) complete(ctx context.Context, msgs ...message) (string, error) {
	payload := map[string]any{
		"model":           a.model,
		"stream":          false,
		"temperature":     0.9,
		"messages":        msgs,
		"response_format": map[string]any{"type": "json_object"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return "", err
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+a.key)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("openrouter timeout after %s (model=%s)", requestTimeout, a.model)
		}
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return "", fmt.Errorf("openrouter status %d and read body failed: %v", resp.StatusCode, readErr)
		}
		return "", fmt.Errorf("openrouter status %d: %s", resp.StatusCode, truncate(redactSecrets(string(rb), a.key), 400))
	}

	var raw struct {
		Choices []struct {
			Message struct {
				Content any `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("decode openrouter response: %w", err)
	}
	if len(raw.Choices) == 0 {
		return "", errors.New("openrouter: no choices in response")
	}
	return messageContentToString(raw.Choices[0].Message.Content)
}

func messageContentToString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		if strings.TrimSpace(x) == "" {
			return "", errors.New("openrouter: empty content")
		}
		return x, nil
	case []any:
		// Some providers return an array of {type,text} parts.
		var b strings.Builder
		for _, it := range x {
			m, ok := it.(map[string]any)
			if !ok {
				continue
			}
			if t, ok := m["text"].(string); ok {
				b.WriteString(t)
			}
		}
		s := b.String()
		if strings.TrimSpace(s) == "" {
			return "", errors.New("openrouter: empty content")
		}
		return s, nil
	default:
		return "", fmt.Errorf("openrouter: unexpected content type %T", v)
	}
}

func truncate(s string, n int) string {
	return script.Truncate(s, n)
}

var (
	bearerTokenRE = regexp.MustCompile(`(?i)\bBearer\s+[A-Za-z0-9._-]+\b`)
	authHeaderRE  = regexp.MustCompile(`(?i)(authorization\s*[:=]\s*)([^\n\r,;]+)`)
	apiKeyFieldRE = regexp.MustCompile(`(?i)(api[_-]?key\s*[:=]\s*)([^\n\r,;]+)`)
)

func redactSecrets(s, apiKey string) string {
	if s == "" {
		return s
	}
	out := s
	if apiKey != "" {
		out = strings.ReplaceAll(out, apiKey, "[REDACTED]")
	}
	out = bearerTokenRE.ReplaceAllString(out, "Bearer [REDACTED]")
	out = authHeaderRE.ReplaceAllString(out, "${1}[REDACTED]")
	out = apiKeyFieldRE.ReplaceAllString(out, "${1}[REDACTED]")
	return out
}
