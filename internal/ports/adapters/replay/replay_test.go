package replay

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forPelevin/naijavibe/internal/domain/script"
	"github.com/forPelevin/naijavibe/internal/types"
)

func write(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "response.txt")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestTransform_JSON(t *testing.T) {
	p := write(t, `{"viral_title":"Sapa Season","locations":[{"location_id":1,"location_description":"Yaba market","scenes":[{"dialogue":"Wetin?"}]}]}`)

	got, err := New(p, nil).Transform(context.Background(), types.TransformRequest{Mode: types.ModeMulti})
	require.NoError(t, err)
	assert.Equal(t, "Sapa Season", got.ViralTitle)
	require.Len(t, got.Locations, 1)
	assert.Equal(t, "Yaba market", got.Locations[0].LocationDescription)
}

func TestTransform_Legacy(t *testing.T) {
	p := write(t, "SCENE 1\n(she folds her arms)\nYou no fit shout for me.\nSCENE 2\nNo gree for anybody.\n")

	got, err := New(p, nil).Transform(context.Background(), types.TransformRequest{})
	require.NoError(t, err)
	require.Len(t, got.Scenes, 2)
	assert.Equal(t, "You no fit shout for me.", got.Scenes[0].Dialogue)
}

func TestTransform_Errors(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.txt"), nil).Transform(context.Background(), types.TransformRequest{})
	require.Error(t, err)

	_, err = New(write(t, "nothing useful here"), nil).Transform(context.Background(), types.TransformRequest{})
	require.ErrorIs(t, err, script.ErrNoScenes)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(write(t, "{}"), nil).Transform(ctx, types.TransformRequest{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRecreate(t *testing.T) {
	p := write(t, "```json\n"+`{"long_video":{"title":"Odogwu Don Vex","tags":"naija, drama","locations":[{"location_id":1,"location_description":"Ikeja court","scenes":[{"character":"Odogwu","dialogue":"Odogwu says: Sit down.","sfx":"Gavel bang"}]}]},"short_video":{"scenes":[{"dialogue":"Amaka says: Wahala!"}]}}`+"\n```")

	got, err := New(p, nil).Recreate(context.Background(), types.RecreateRequest{Language: "english"})
	require.NoError(t, err)
	assert.Equal(t, "Odogwu Don Vex", got.Long.Title)
	assert.Equal(t, []string{"naija", "drama"}, got.Long.Tags)
	require.Len(t, got.Long.Locations, 1)
	assert.Equal(t, "Gavel bang", got.Long.Locations[0].Scenes[0].SFX)
	require.Len(t, got.Short.Scenes, 1)
	assert.NotEmpty(t, got.Raw)
}

func TestRecreate_Errors(t *testing.T) {
	_, err := New(write(t, `{"long_video":{"locations":[]},"short_video":{}}`), nil).Recreate(context.Background(), types.RecreateRequest{})
	require.ErrorIs(t, err, script.ErrNoScenes)

	_, err = New(filepath.Join(t.TempDir(), "nope.txt"), nil).Recreate(context.Background(), types.RecreateRequest{})
	require.Error(t, err)
}
