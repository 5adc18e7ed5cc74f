package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/forPelevin/naijavibe/internal/domain/assemble"
	"github.com/forPelevin/naijavibe/internal/types"
)

func TestBuildRunOutDir(t *testing.T) {
	now := time.Date(2026, 2, 12, 10, 30, 45, 1234, time.UTC)
	got := buildRunOutDir("out", "/tmp/My Cool.Script.txt", now, "0f8fad5b-d9cb-469f-a165-70867728950e")
	base := filepath.Base(got)
	if filepath.Dir(got) != "out" {
		t.Fatalf("unexpected parent dir: %s", got)
	}
	if base != "my-cool-script-20260212-103045Z-0f8fad5b" {
		t.Fatalf("unexpected run dir format: %s", base)
	}

	got = buildRunOutDir("out", "/tmp/!!!.txt", now, "abc")
	if !strings.HasPrefix(filepath.Base(got), "script-20260212-103045Z-abc") {
		t.Fatalf("expected fallback name, got %s", got)
	}
}

func TestNewLimiter(t *testing.T) {
	if l := newLimiter(0); l.Limit() != rate.Inf {
		t.Fatalf("expected unlimited limiter, got %v", l.Limit())
	}
	if l := newLimiter(30); l.Limit() != rate.Limit(0.5) {
		t.Fatalf("expected 0.5 events/s, got %v", l.Limit())
	}
}

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func replayResponse(n int) string {
	var scenes []string
	for i := 1; i <= n; i++ {
		scenes = append(scenes, fmt.Sprintf(`{"scene_id":%d,"dialogue":"Abeg I no fit pay this bill number %d","duration":"99-999s"}`, i, i))
	}
	return "```json\n{\"viral_title\":\"Sapa Don Land\",\"setting_description\":\"Lekki living room\",\"scenes\":[" + strings.Join(scenes, ",") + "]}\n```"
}

func TestValidate(t *testing.T) {
	tmp := t.TempDir()
	script := writeTemp(t, tmp, "script.txt", "He wants me to pay his bills")
	resp := writeTemp(t, tmp, "resp.txt", replayResponse(13))

	base := Config{
		ScriptPath: script,
		Render:     types.DefaultRenderConfig(),
		Provider:   ProviderReplay,
		ReplayFile: resp,
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "missing script", mutate: func(c *Config) { c.ScriptPath = filepath.Join(tmp, "nope.txt") }},
		{name: "bad render", mutate: func(c *Config) { c.Render.Animation = "claymation" }},
		{name: "unknown provider", mutate: func(c *Config) { c.Provider = "llama" }},
		{name: "gemini without key", mutate: func(c *Config) { c.Provider = ProviderGemini }},
		{name: "openrouter without key", mutate: func(c *Config) { c.Provider = ProviderOpenRouter }},
		{name: "openrouter bad host", mutate: func(c *Config) {
			c.Provider = ProviderOpenRouter
			c.OpenRouterAPIKey = "k"
			c.OpenRouterBaseURL = "https://evil.example"
		}},
		{name: "frames without key", mutate: func(c *Config) { c.Frames = []string{script} }},
		{name: "missing frame", mutate: func(c *Config) {
			c.GeminiAPIKey = "k"
			c.Frames = []string{filepath.Join(tmp, "frame.png")}
		}},
		{name: "negative rate", mutate: func(c *Config) { c.RequestsPerMinute = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestRun_Replay(t *testing.T) {
	tmp := t.TempDir()
	script := writeTemp(t, tmp, "Sapa Story.txt", "After the breakup he asked me for money")
	resp := writeTemp(t, tmp, "resp.txt", replayResponse(13))
	csv := writeTemp(t, tmp, "seo.csv", "id,naija_title,tags,hashtags\n2,Sapa Table Title,\"Money,Bills\",#sapa\n")

	res, err := Run(context.Background(), Config{
		ScriptPath: script,
		OutDir:     filepath.Join(tmp, "out"),
		Render:     types.DefaultRenderConfig(),
		SEOCSV:     csv,
		Provider:   ProviderReplay,
		ReplayFile: resp,
		Seed:       7,
		Voices:     assemble.DefaultVoices(),
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(res.RunDir), "sapa-story-") {
		t.Fatalf("unexpected run dir %s", res.RunDir)
	}

	for _, name := range []string{PackageFile, PromptsFile, CondensedPromptsFile, SFXManifestFile, OracleRawFile, CaptionsFile} {
		if _, err := os.Stat(filepath.Join(res.RunDir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}

	b, err := os.ReadFile(filepath.Join(res.RunDir, PackageFile))
	if err != nil {
		t.Fatalf("read package: %v", err)
	}
	var p types.Package
	if err := json.Unmarshal(b, &p); err != nil {
		t.Fatalf("decode package: %v", err)
	}
	if len(p.Scenes) != 13 || !p.Validation.Valid {
		t.Fatalf("unexpected package: scenes=%d validation=%+v", len(p.Scenes), p.Validation)
	}
	if p.Scenes[2].Duration != "14-21s" {
		t.Fatalf("expected recomputed duration, got %q", p.Scenes[2].Duration)
	}
	if p.SEOData.Title != "Sapa Don Land" || p.SEOData.RowID != 2 {
		t.Fatalf("unexpected seo: %+v", p.SEOData)
	}
	if p.Continuity.Location != "Lekki living room" {
		t.Fatalf("expected setting as location, got %q", p.Continuity.Location)
	}
	if p.RunID == "" || p.RunID != res.Package.RunID {
		t.Fatalf("unexpected run id %q", p.RunID)
	}

	prompts, err := os.ReadFile(filepath.Join(res.RunDir, PromptsFile))
	if err != nil {
		t.Fatalf("read prompts: %v", err)
	}
	if got := strings.Count(strings.TrimSpace(string(prompts)), "\n") + 1; got != 14 {
		t.Fatalf("expected 13 scene lines and a lesson line, got %d", got)
	}
}

func TestRun_KeepsRawOnFailure(t *testing.T) {
	tmp := t.TempDir()
	script := writeTemp(t, tmp, "s.txt", "hello")
	resp := writeTemp(t, tmp, "resp.txt", `{"viral_title":"only a title"}`)

	res, err := Run(context.Background(), Config{
		ScriptPath: script,
		OutDir:     filepath.Join(tmp, "out"),
		Render:     types.DefaultRenderConfig(),
		Provider:   ProviderReplay,
		ReplayFile: resp,
	})
	if err == nil {
		t.Fatalf("expected error for a response without scenes")
	}
	if res.RunDir == "" {
		t.Fatalf("expected run dir on failure")
	}
}

func TestTitles(t *testing.T) {
	csv := writeTemp(t, t.TempDir(), "seo.csv", "id,naija_title,tags,hashtags\n7,Format Don Cast,,\n")
	got, err := Titles(csv)
	if err != nil {
		t.Fatalf("titles: %v", err)
	}
	if len(got) != 1 || got[0].ID != 7 || got[0].Title != "Format Don Cast" {
		t.Fatalf("unexpected titles %+v", got)
	}
}

func recreateResponse() string {
	var locs []string
	for l := 1; l <= 4; l++ {
		var ss []string
		for i := 1; i <= 3; i++ {
			ss = append(ss, fmt.Sprintf(`{"scene_id":%d,"character":"Odogwu","dialogue":"Odogwu says: Place %d line %d","sfx":"Thunder clap"}`, i, l, i))
		}
		locs = append(locs, fmt.Sprintf(`{"location_id":%d,"location_description":"Place %d in Lagos","scenes":[%s]}`, l, l, strings.Join(ss, ",")))
	}
	return `{"long_video":{"title":"Landlord Don Japa","description":"d","tags":["naija"],"pov":"POV: you are the tenant","locations":[` +
		strings.Join(locs, ",") +
		`]},"short_video":{"title":"Japa Short","scenes":[{"dialogue":"Amaka says: Where the rent?"},{"dialogue":"Odogwu says: Paid."},{"dialogue":"Amaka says: Ehen!"}]}}`
}

func TestRecreate_Replay(t *testing.T) {
	tmp := t.TempDir()
	transcript := writeTemp(t, tmp, "landlord.txt", "My landlord ran away with the rent")
	resp := writeTemp(t, tmp, "resp.json", recreateResponse())

	res, err := Recreate(context.Background(), Config{
		ScriptPath: transcript,
		OutDir:     filepath.Join(tmp, "out"),
		Render:     types.DefaultRenderConfig(),
		Provider:   ProviderReplay,
		ReplayFile: resp,
		Seed:       3,
	})
	if err != nil {
		t.Fatalf("recreate: %v", err)
	}
	for _, name := range []string{OracleRawFile, RecreationFile} {
		if _, err := os.Stat(filepath.Join(res.RunDir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
	for _, kind := range []string{types.VideoLong, types.VideoShort} {
		for _, name := range []string{PackageFile, PromptsFile, SFXManifestFile, CaptionsFile} {
			if _, err := os.Stat(filepath.Join(res.RunDir, kind, name)); err != nil {
				t.Fatalf("expected %s/%s: %v", kind, name, err)
			}
		}
	}

	long := res.Videos[types.VideoLong]
	if len(long.Scenes) != 12 || long.SEOData.Title != "Landlord Don Japa" {
		t.Fatalf("unexpected long video: scenes=%d seo=%+v", len(long.Scenes), long.SEOData)
	}
	if long.Props["setting_loc_4"] == "" {
		t.Fatalf("expected a setting prop per location, got %v", long.Props)
	}
	if sfx := long.Scenes[5].SFX; sfx[len(sfx)-1] != "Thunder clap" {
		t.Fatalf("expected oracle sfx, got %v", sfx)
	}
	if short := res.Videos[types.VideoShort]; len(short.Scenes) != 3 {
		t.Fatalf("unexpected short video: %d scenes", len(short.Scenes))
	}

	b, err := os.ReadFile(filepath.Join(res.RunDir, RecreationFile))
	if err != nil {
		t.Fatalf("read recreation: %v", err)
	}
	if !strings.Contains(string(b), "POV: you are the tenant") {
		t.Fatalf("expected the pov in the recreation file:\n%s", b)
	}
}
