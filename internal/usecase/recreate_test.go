package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/forPelevin/naijavibe/internal/domain/continuity"
	"github.com/forPelevin/naijavibe/internal/types"
)

type fakeRecreator struct {
	r    types.Recreation
	err  error
	reqs []types.RecreateRequest
}

func (f *fakeRecreator) Recreate(_ context.Context, req types.RecreateRequest) (types.Recreation, error) {
	f.reqs = append(f.reqs, req)
	return f.r, f.err
}

func newRecreator(r *fakeRecreator, d Deps) Usecase {
	d.Recreator = r
	d.Chooser = continuity.Fixed(0)
	d.Now = func() time.Time { return fixedNow }
	return New(d)
}

func recreation() types.Recreation {
	long := types.RecreatedVideo{
		Title: "Odogwu And The Fake Pastor",
		Tags:  []string{"naija", "drama"},
	}
	for id, place := range []string{"Ikeja church hall", "Yaba bus stop", "Lekki restaurant", "Family parlour"} {
		loc := types.RawLocation{LocationID: id + 1, LocationDescription: place, Scenes: rawScenes(3)}
		loc.Scenes[0].SFX = "Crowd murmur"
		long.Locations = append(long.Locations, loc)
	}
	short := types.RecreatedVideo{Title: "Pastor Don Fall", Scenes: rawScenes(4)}
	return types.Recreation{Long: long, Short: short, Raw: "{}"}
}

func TestRecreate_AssemblesBothCuts(t *testing.T) {
	r := &fakeRecreator{r: recreation()}
	render := types.DefaultRenderConfig()
	render.Language = "english"

	res, err := newRecreator(r, Deps{}).Recreate(context.Background(), RecreateInput{
		RunID:      "run-2",
		Transcript: "A pastor took money from the family",
		Render:     render,
	})
	if err != nil {
		t.Fatalf("recreate: %v", err)
	}
	if len(r.reqs) != 1 || r.reqs[0].Language != "english" || r.reqs[0].Transcript != "A pastor took money from the family" {
		t.Fatalf("unexpected recreator requests: %+v", r.reqs)
	}
	if len(res.Videos) != 2 || res.Videos[0].Kind != types.VideoLong || res.Videos[1].Kind != types.VideoShort {
		t.Fatalf("unexpected videos: %+v", res.Videos)
	}

	long := res.Videos[0].Package
	if len(long.Scenes) != 12 {
		t.Fatalf("expected 12 long scenes, got %d", len(long.Scenes))
	}
	if long.Scenes[11].LocationID != 4 || long.Continuity.Locations[4] != "Family parlour" {
		t.Fatalf("expected last scene in location 4, got %+v", long.Scenes[11])
	}
	if long.SEOData.Title != "Odogwu And The Fake Pastor" || long.SEOData.Tags[0] != "naija" {
		t.Fatalf("unexpected long seo: %+v", long.SEOData)
	}
	if !long.Validation.Valid {
		t.Fatalf("recreated cuts skip the 13 scene structure, got %+v", long.Validation)
	}
	if sfx := long.Scenes[0].SFX; sfx[len(sfx)-1] != "Crowd murmur" {
		t.Fatalf("expected oracle sfx on the first scene, got %v", sfx)
	}

	short := res.Videos[1].Package
	if len(short.Scenes) != 4 || short.Scenes[3].Phase != types.PhaseDunk {
		t.Fatalf("unexpected short scenes: %+v", short.Scenes)
	}
	if short.Continuity.LookByRole[types.RoleProtagonist] != long.Continuity.LookByRole[types.RoleProtagonist] {
		t.Fatalf("expected both cuts to share the character look")
	}
	if long.Continuity.Location != RecreateSetting || long.Continuity.VisualStyle != DefaultVisualStyle {
		t.Fatalf("unexpected default visual context: %+v", long.Continuity)
	}
}

func TestRecreate_SkipsEmptyCut(t *testing.T) {
	rec := recreation()
	rec.Short = types.RecreatedVideo{}

	res, err := newRecreator(&fakeRecreator{r: rec}, Deps{}).Recreate(context.Background(), RecreateInput{Render: types.DefaultRenderConfig()})
	if err != nil {
		t.Fatalf("recreate: %v", err)
	}
	if len(res.Videos) != 1 || res.Videos[0].Kind != types.VideoLong {
		t.Fatalf("expected only the long cut, got %+v", res.Videos)
	}
}

func TestRecreate_Errors(t *testing.T) {
	boom := errors.New("boom")
	_, err := newRecreator(&fakeRecreator{err: boom}, Deps{}).Recreate(context.Background(), RecreateInput{Render: types.DefaultRenderConfig()})
	if !errors.Is(err, boom) {
		t.Fatalf("expected recreator error, got %v", err)
	}

	_, err = New(Deps{}).Recreate(context.Background(), RecreateInput{})
	if err == nil {
		t.Fatalf("expected error without recreator")
	}
}

func TestRecreate_NumbersScenesByPlayOrder(t *testing.T) {
	rec := recreation()
	for i := range rec.Long.Locations {
		for j := range rec.Long.Locations[i].Scenes {
			rec.Long.Locations[i].Scenes[j].SceneID = types.IntPtr(j + 1)
		}
	}

	res, err := newRecreator(&fakeRecreator{r: rec}, Deps{}).Recreate(context.Background(), RecreateInput{Render: types.DefaultRenderConfig()})
	if err != nil {
		t.Fatalf("recreate: %v", err)
	}
	for i, s := range res.Videos[0].Package.Scenes {
		if s.SceneID != i+1 {
			t.Fatalf("scene %d has id %d", i, s.SceneID)
		}
	}
	if rec.Long.Locations[1].Scenes[0].SceneID == nil {
		t.Fatalf("recreation must not be modified")
	}
}
