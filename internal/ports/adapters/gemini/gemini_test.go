package gemini

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forPelevin/naijavibe/internal/types"
)

func TestParseVisual(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want types.VisualContext
	}{
		{
			name: "json",
			in:   `{"style":"neon, low angle","location":"rooftop bar","posture":"both standing"}`,
			want: types.VisualContext{Style: "neon, low angle", Location: "rooftop bar", Posture: "both standing"},
		},
		{
			name: "fenced with missing keys",
			in:   "```json\n{\"style\":\"warm\"}\n```",
			want: types.VisualContext{Style: "warm"},
		},
		{
			name: "prose",
			in:   "  Moody purple lighting  ",
			want: types.VisualContext{Style: "Moody purple lighting"},
		},
		{
			name: "broken json",
			in:   `{"style": }`,
			want: types.VisualContext{Style: `{"style": }`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVisual(tt.in))
		})
	}
}

func TestImageFormat(t *testing.T) {
	assert.Equal(t, "png", imageFormat("frames/a.PNG"))
	assert.Equal(t, "webp", imageFormat("b.webp"))
	assert.Equal(t, "jpeg", imageFormat("c.jpg"))
	assert.Equal(t, "jpeg", imageFormat("noext"))
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := New(context.Background(), Config{})
	require.Error(t, err)
}

func TestSleep_HonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, sleep(ctx, time.Hour), context.Canceled)
}

func TestRetry_NoPauseAfterLastAttempt(t *testing.T) {
	var pauses []time.Duration
	c := &Client{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		pause: func(_ context.Context, d time.Duration) error {
			pauses = append(pauses, d)
			return nil
		},
	}
	calls := 0
	boom := errors.New("boom")
	_, err := retry(context.Background(), c, "transform", func(context.Context) (types.Transformation, error) {
		calls++
		return types.Transformation{}, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, maxRetries, calls)
	assert.Equal(t, []time.Duration{retryBaseDelay, 2 * retryBaseDelay}, pauses)
}

func TestRetry_StopsOnSuccessAndCancel(t *testing.T) {
	c := &Client{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		pause:  func(context.Context, time.Duration) error { return nil },
	}
	calls := 0
	got, err := retry(context.Background(), c, "recreate", func(context.Context) (string, error) {
		calls++
		if calls < 2 {
			return "", errors.New("flaky")
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 2, calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls = 0
	_, err = retry(ctx, c, "recreate", func(ctx context.Context) (string, error) {
		calls++
		return "", ctx.Err()
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
