package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var rows = []Row{
	{ID: 1, Title: "Breakfast Season", Tags: []string{"breakfast"}, Hashtags: []string{"#breakfast"}},
	{ID: 2, Title: "Sapa Chronicles", Tags: []string{"money"}, Hashtags: []string{"#sapa"}},
	{ID: 5, Title: "Provider Pressure", Tags: []string{"provider"}, Hashtags: []string{"#provider"}},
	{ID: 25, Title: "Prize Mentality", Tags: []string{"prize"}, Hashtags: []string{"#prize"}},
}

func TestBestRowID(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   int
		wantOK bool
	}{
		{"nothing", "hello there", 0, false},
		{"single group first row", "She served me BREAKFAST", 1, true},
		{"money and bills pick shared row", "money for bills", 2, true},
		{"bills and provider favour 5", "provider must pay bills", 5, true},
		{"prize only", "I am the prize", 25, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BestRowID(tt.script)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatch(t *testing.T) {
	assert.Equal(t, "Prize Mentality", Match("breakfast", rows, 25).Title)
	assert.Equal(t, "Breakfast Season", Match("breakfast", rows, 99).Title)
	assert.Equal(t, 1, Match("breakfast", rows, 0).RowID)
	assert.Equal(t, Default(), Match("nothing here", rows, 0))
	// the best scored row is not in the table
	assert.Equal(t, Default(), Match("emotional", rows[:1], 0))
}

func TestMatch_DoesNotAliasRows(t *testing.T) {
	d := Match("breakfast", rows, 0)
	d.Tags[0] = "changed"
	assert.Equal(t, "breakfast", rows[0].Tags[0])
}

func TestEnhance(t *testing.T) {
	in := Default()
	out := Enhance(in)
	assert.Equal(t, []string{"#nogreeforanybody", "#naija", "#stoic", "#logic", "#fearwomen"}, out.Hashtags)
	assert.Len(t, in.Hashtags, 4)

	empty := Enhance(rows[0].Data())
	assert.Equal(t, []string{"#breakfast", "#nogreeforanybody", "#fearwomen", "#naija"}, empty.Hashtags)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b c", "d"}, SplitList(" a, b c ,,d "))
	assert.Empty(t, SplitList(""))
}
